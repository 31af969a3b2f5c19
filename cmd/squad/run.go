package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/squadhq/squad/internal/orchestrator"
	"github.com/squadhq/squad/internal/project"
	"github.com/squadhq/squad/pkg/models"
)

var runProjectPath string
var runRequest string
var runTier string

var runCmd = &cobra.Command{
	Use:   "run <role>",
	Short: "Run one agent role against a project",
	Long: `Run a single agent role against an existing project.

Roles: business_analyst, software_architect, ui_designer, developer,
ui_tester, code_reviewer. The role's result is written to the project's
staging folder and merged into the progress README.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, ok := models.ParseRole(args[0])
		if !ok {
			return fmt.Errorf("unknown role %q", args[0])
		}

		app, err := newApp()
		if err != nil {
			return err
		}

		proj, err := resolveProject(app, runProjectPath)
		if err != nil {
			return err
		}

		request := runRequest
		if request == "" {
			request = "Please review the current project status and continue with the next appropriate steps in the development workflow."
		}

		tier := models.Tier(strings.ToUpper(runTier))

		fmt.Printf("🤖 %s working on %s...\n", role.DisplayName(), proj.Folder)
		response, err := app.manager.RunRole(cmd.Context(), proj, role, orchestrator.RunRequest{
			RequestText: request,
			Tier:        tier,
		})
		if err != nil {
			return err
		}

		fmt.Println(response)
		return nil
	},
}

// resolveProject opens the project at path, or the most recent project when
// path is empty.
func resolveProject(app *app, path string) (*models.Project, error) {
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		proj, err := project.Open(abs)
		if err != nil {
			return nil, fmt.Errorf("open project: %w", err)
		}
		return proj, nil
	}

	projects, err := app.store.List()
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	if len(projects) == 0 {
		fmt.Fprintln(os.Stderr, "No projects found. Create one with `squad new`.")
		return nil, fmt.Errorf("no projects")
	}
	return projects[0], nil
}

func init() {
	runCmd.Flags().StringVarP(&runProjectPath, "project", "p", "", "Project path (default: most recent project)")
	runCmd.Flags().StringVarP(&runRequest, "request", "r", "", "Request text for the role")
	runCmd.Flags().StringVarP(&runTier, "tier", "t", "", "Complexity tier override (SIMPLE, MODERATE, COMPLEX)")
}

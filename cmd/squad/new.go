package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/squadhq/squad/pkg/models"
)

var newTitle string
var newSkipRun bool

var newCmd = &cobra.Command{
	Use:   "new [request...]",
	Short: "Create a new project from a request",
	Long: `Create a new project from a free-text request.

The request is taken from the arguments, or read from stdin when no
arguments are given. A project folder is created under the configured base
directory with the full scaffold, and the agent workflow runs against it
unless --no-run is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		request := strings.TrimSpace(strings.Join(args, " "))
		if request == "" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read request from stdin: %w", err)
			}
			request = strings.TrimSpace(string(data))
		}
		if request == "" {
			return fmt.Errorf("empty project request")
		}

		app, err := newApp()
		if err != nil {
			return err
		}

		var proj *models.Project
		if newTitle != "" {
			fmt.Println("\n🏗️  Creating new project...")
			proj, err = app.store.CreateWithTitle(cmd.Context(), request, newTitle)
			if err != nil {
				return fmt.Errorf("create project: %w", err)
			}
			fmt.Printf("%s Project created: %s\n", color.GreenString("✓"), proj.Folder)
			fmt.Printf("📁 Location: %s\n", proj.Path)
		} else {
			proj, err = app.createProject(cmd.Context(), request)
			if err != nil {
				return err
			}
		}

		if !newSkipRun {
			app.runWorkflow(cmd.Context(), proj, request)
		}
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newTitle, "title", "", "Use this title instead of deriving one from the request")
	newCmd.Flags().BoolVar(&newSkipRun, "no-run", false, "Only scaffold the project, do not run the agent workflow")
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/squadhq/squad/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "squad",
	Short: "Multi-agent software development squad",
	Long: `Squad coordinates a pipeline of specialist agents (business analyst,
software architect, UI designer, developer, UI tester, code reviewer) that
each produce documentation and code artifacts for a project.

With no arguments, launches an interactive menu to create a new project or
continue an existing one. Each project gets a fixed on-disk scaffold, a
per-agent staging summary, and a consolidated progress README that is
updated as agents run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// runInteractive loops the menu until the user quits.
func runInteractive(ctx context.Context) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	for {
		projects, err := app.store.List()
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}

		sel, err := tui.Run(projects)
		if err != nil {
			return err
		}

		switch sel.Action {
		case tui.ActionNewProject:
			proj, err := app.createProject(ctx, sel.Request)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("✗"), err)
				continue
			}
			app.runWorkflow(ctx, proj, sel.Request)

		case tui.ActionContinueProject:
			app.runWorkflow(ctx, sel.Project, sel.Request)

		default:
			fmt.Println("👋 Goodbye!")
			return nil
		}
	}
}

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/squadhq/squad/internal/watch"
)

var watchProjectPath string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Report files as they are written under a project",
	Long: `Watch a project directory and print each file an agent creates or
updates. Useful in a second terminal while a workflow is running.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		proj, err := resolveProject(app, watchProjectPath)
		if err != nil {
			return err
		}

		w, err := watch.New(proj)
		if err != nil {
			return fmt.Errorf("watch project: %w", err)
		}
		defer w.Close()

		fmt.Printf("👀 Watching %s (ctrl+c to stop)\n", proj.Folder)

		for {
			select {
			case <-cmd.Context().Done():
				return nil
			case ev, ok := <-w.Events():
				if !ok {
					return nil
				}
				verb := "updated"
				if ev.Created {
					verb = "created"
				}
				fmt.Printf("%s %s %s\n", ev.At.Format("15:04:05"),
					color.GreenString(verb), ev.Rel)
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchProjectPath, "project", "p", "", "Project path (default: most recent project)")
}

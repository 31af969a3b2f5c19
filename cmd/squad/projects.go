package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List existing projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		projects, err := app.store.List()
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}
		if len(projects) == 0 {
			fmt.Println("📂 No projects found.")
			return nil
		}

		fmt.Printf("📂 Found %d project(s):\n", len(projects))
		for i, proj := range projects {
			fmt.Printf("  %d. %s - %s\n", i+1, color.CyanString(proj.Folder), proj.Title)
		}
		return nil
	},
}

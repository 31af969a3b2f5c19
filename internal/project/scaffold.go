package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/squadhq/squad/pkg/models"
)

// mainFolders is the fixed non-staging subtree of every project. These
// relative paths are a contract with downstream tooling.
var mainFolders = []string{
	"src",
	"src/app",
	"src/tests",
	"src/config",
	"docs",
	"docs/requirements",
	"docs/architecture",
	"docs/reviews",
	"docs/api",
	"assets",
	"assets/designs",
	"assets/images",
	"assets/data",
}

// folderReadmes seeds each scaffold folder with a short purpose note.
var folderReadmes = map[string]string{
	"src":               "# Source Code\n\nApplication source code organized by modules and components.\n\n- `app/` - Main application code\n- `tests/` - Test files and test suites\n- `config/` - Configuration files and settings",
	"docs":              "# Documentation\n\nTechnical documentation, user guides, and project specifications.\n\n- `requirements/` - Business requirements and analysis\n- `architecture/` - System architecture and design\n- `reviews/` - Code review reports and assessments\n- `api/` - API documentation and specifications",
	"assets":            "# Assets\n\nStatic resources and design materials.\n\n- `designs/` - UI wireframes, mockups, and design specifications\n- `images/` - Images, icons, and graphics\n- `data/` - Sample data and test fixtures",
	"docs/requirements": "# Requirements Documentation\n\nBusiness analysis, user stories, and project requirements generated by the Business Analyst agent.",
	"docs/architecture": "# Architecture Documentation\n\nSystem architecture, technical specifications, and design decisions generated by the Software Architect agent.",
	"docs/reviews":      "# Code Review Documentation\n\nCode quality assessments, security reviews, and improvement recommendations generated by the Code Reviewer agent.",
	"docs/api":          "# API Documentation\n\nAPI specifications, endpoint documentation, and integration guides.",
	"assets/designs":    "# Design Assets\n\nUI/UX wireframes, mockups, design systems, and visual specifications generated by the UI Designer agent.",
	"assets/images":     "# Image Assets\n\nImages, icons, logos, and graphics used in the project.",
	"assets/data":       "# Data Assets\n\nSample data, test fixtures, and data files used for development and testing.",
	"src/app":           "# Application Code\n\nMain application source code organized by features and modules.",
	"src/tests":         "# Test Files\n\nTest suites, test cases, and testing utilities generated by the UI Tester agent.",
	"src/config":        "# Configuration Files\n\nApplication configuration, environment settings, and deployment configurations.",
}

// scaffold creates the full fixed subtree under the project root and seeds
// every folder with its README.
func scaffold(projectPath string) error {
	for _, sub := range mainFolders {
		if err := os.MkdirAll(filepath.Join(projectPath, sub), 0755); err != nil {
			return fmt.Errorf("create subfolder %s: %w", sub, err)
		}
	}

	for _, role := range models.Roles {
		if err := os.MkdirAll(filepath.Join(projectPath, role.StagingDir()), 0755); err != nil {
			return fmt.Errorf("create staging folder for %s: %w", role, err)
		}
	}

	for folder, content := range folderReadmes {
		readmePath := filepath.Join(projectPath, folder, "README.md")
		if err := os.WriteFile(readmePath, []byte(content), 0644); err != nil {
			return fmt.Errorf("seed readme in %s: %w", folder, err)
		}
	}

	for _, role := range models.Roles {
		content := fmt.Sprintf("# %s Staging\n\nWorking folder for the %s agent.\nFiles are generated dynamically based on task requirements.\n",
			role.DisplayName(), strings.ToLower(role.DisplayName()))
		readmePath := filepath.Join(projectPath, role.StagingDir(), "README.md")
		if err := os.WriteFile(readmePath, []byte(content), 0644); err != nil {
			return fmt.Errorf("seed staging readme for %s: %w", role, err)
		}
	}

	return nil
}

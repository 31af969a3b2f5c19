package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// Progress region markers in the project README. Everything between them is
// owned by the progress updater; everything outside is preserved verbatim.
const (
	ProgressStartMarker = "<!-- AGENT_PROGRESS_START -->"
	ProgressEndMarker   = "<!-- AGENT_PROGRESS_END -->"
)

// WriteInitialReadme writes the project-level README with static header and
// navigation boilerplate and an empty progress region.
func WriteInitialReadme(projectPath, folder, title string) error {
	if title == "" {
		title = folder
	}

	content := fmt.Sprintf(`# %s

## Project Overview

This project was generated by the squad multi-agent development system.

**Project Status:** 🚧 In Progress

## Agent Workflow Progress

%s
%s

## Project Structure

`+"```"+`
%s/
├── src/                       # Source code
├── docs/                      # Documentation
├── assets/                    # Static resources
├── staging/                   # Agent working folders
│   ├── business_analyst/      # Business analysis and requirements
│   ├── software_architect/    # System architecture and design
│   ├── ui_designer/           # UI/UX design specifications
│   ├── developer/             # Code implementation
│   ├── ui_tester/             # UI testing and validation
│   └── code_reviewer/         # Code quality review
├── PROJECT_INFO.md            # Project metadata
└── README.md                  # This file
`+"```"+`

## Getting Started

1. Review the project requirements in `+"`staging/business_analyst/`"+`
2. Check the system architecture in `+"`staging/software_architect/`"+`
3. Examine the source code in `+"`src/`"+`
4. Read the documentation in `+"`docs/`"+`

## Generated Files

Each agent creates files in their respective staging folders:
- **Business Analyst**: Requirements, user stories, stakeholder analysis
- **Software Architect**: Architecture diagrams, technology stack, design patterns
- **Ui Designer**: Wireframes, mockups, design specifications
- **Developer**: Source code, tests, documentation
- **Ui Tester**: Test reports, bug findings, accessibility audits
- **Code Reviewer**: Code quality reports, security assessments
`, title, ProgressStartMarker, ProgressEndMarker, folder)

	readmePath := filepath.Join(projectPath, "README.md")
	if err := os.WriteFile(readmePath, []byte(content), 0644); err != nil {
		return fmt.Errorf("write project readme: %w", err)
	}
	return nil
}

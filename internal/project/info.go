package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// InfoFileName is the per-project metadata file.
const InfoFileName = "PROJECT_INFO.md"

// titleLinePrefix marks the metadata line the title is parsed from.
const titleLinePrefix = "**Project Title:**"

// writeProjectInfo writes the project metadata file capturing the original
// request, the resolved title, and the creation timestamp.
func writeProjectInfo(projectPath, folder, title, requestText string, createdAt time.Time) error {
	content := fmt.Sprintf(`# Project Information

%s %s
**Created:** %s
**Folder:** %s

## Original Request
%s

## Project Structure
- `+"`src/`"+` - Source code
- `+"`docs/`"+` - Documentation
- `+"`assets/`"+` - Static resources
- `+"`staging/`"+` - Worker agent staging folders

## Status
- **Phase:** Planning
- **Progress:** Started
`, titleLinePrefix, title, createdAt.Format("2006-01-02 15:04:05"), folder, requestText)

	if err := os.WriteFile(filepath.Join(projectPath, InfoFileName), []byte(content), 0644); err != nil {
		return fmt.Errorf("write project info: %w", err)
	}
	return nil
}

// readProjectTitle extracts the title from a metadata file.
func readProjectTitle(infoPath string) (string, error) {
	data, err := os.ReadFile(infoPath)
	if err != nil {
		return "", err
	}
	return parseTitle(string(data)), nil
}

// parseTitle finds the title line in metadata content. Returns "" when no
// title line is present.
func parseTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, titleLinePrefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, titleLinePrefix))
		}
	}
	return ""
}

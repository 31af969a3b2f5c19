package progress

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/squadhq/squad/internal/project"
	"github.com/squadhq/squad/pkg/models"
)

// Status glyphs used in subsection headers. The two variants together
// identify a role's subsection regardless of its last reported status.
const (
	glyphCompleted  = "✅"
	glyphInProgress = "🔄"
)

// Updater merges role progress entries into a project's README.
type Updater struct {
	// Now supplies timestamps; overridable in tests. Nil means time.Now.
	Now func() time.Time
}

// NewUpdater creates a progress updater.
func NewUpdater() *Updater {
	return &Updater{}
}

func (u *Updater) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

// Update parses the raw capability response and merges a progress entry for
// the role into the project README. A response that does not parse is a
// logged no-op. The README is created with an empty region if missing.
// Merging the same role and result twice changes only the timestamp.
func (u *Updater) Update(proj *models.Project, role models.Role, rawResponse string) error {
	result, err := models.ParseAgentResult(rawResponse)
	if err != nil {
		log.Printf("[progress] skipping %s update: %v", role, err)
		return nil
	}

	readmePath := filepath.Join(proj.Path, "README.md")
	data, err := os.ReadFile(readmePath)
	if os.IsNotExist(err) {
		if werr := project.WriteInitialReadme(proj.Path, proj.Folder, proj.Title); werr != nil {
			return fmt.Errorf("create project readme: %w", werr)
		}
		data, err = os.ReadFile(readmePath)
	}
	if err != nil {
		return fmt.Errorf("read project readme: %w", err)
	}

	merged := MergeSection(
		string(data),
		Markers{Start: project.ProgressStartMarker, End: project.ProgressEndMarker},
		RoleHeaders(role),
		u.buildEntry(role, result),
	)

	if err := os.WriteFile(readmePath, []byte(merged), 0644); err != nil {
		return fmt.Errorf("write project readme: %w", err)
	}
	return nil
}

// RoleHeaders returns the subsection header variants for a role, one per
// status glyph.
func RoleHeaders(role models.Role) []string {
	display := role.DisplayName()
	return []string{
		subsectionPrefix + glyphCompleted + " " + display,
		subsectionPrefix + glyphInProgress + " " + display,
	}
}

// buildEntry renders the short progress subsection for one invocation.
func (u *Updater) buildEntry(role models.Role, result *models.AgentResult) string {
	glyph := glyphInProgress
	if result.Completed() {
		glyph = glyphCompleted
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s %s\n\n", subsectionPrefix, glyph, role.DisplayName())
	fmt.Fprintf(&b, "**Status:** %s | **Updated:** %s\n\n",
		strings.ToUpper(result.Status), u.now().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "%s\n\n", result.Summary)
	fmt.Fprintf(&b, "**Generated Files:** %d files\n", len(result.GeneratedFiles))

	if len(result.GeneratedFiles) > 0 {
		names := make([]string, 0, 3)
		for _, f := range result.GeneratedFiles {
			name := f.FileName
			if name == "" {
				name = "Unknown file"
			}
			names = append(names, name)
			if len(names) == 3 {
				break
			}
		}
		fmt.Fprintf(&b, "**Key Deliverables:** %s", strings.Join(names, ", "))
		if extra := len(result.GeneratedFiles) - 3; extra > 0 {
			fmt.Fprintf(&b, " and %d more", extra)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "**Details:** See `%s/README.md`\n", role.StagingDir())

	return b.String()
}

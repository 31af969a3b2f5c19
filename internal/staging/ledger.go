// Package staging maintains the per-role staging README: a rendered record
// of the latest agent invocation for that role, fully rebuilt on every run.
package staging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/squadhq/squad/pkg/models"
)

// Ledger writes per-role staging records under a project directory.
type Ledger struct {
	// Now supplies timestamps; overridable in tests. Nil means time.Now.
	Now func() time.Time
}

// NewLedger creates a staging ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// Record parses the raw capability response and overwrites the role's
// staging README with a rendering of the result. A response that does not
// parse as an AgentResult makes the call a logged no-op; bookkeeping
// failures never abort the primary operation.
func (l *Ledger) Record(project *models.Project, role models.Role, rawResponse string) error {
	result, err := models.ParseAgentResult(rawResponse)
	if err != nil {
		log.Printf("[staging] skipping %s record: %v", role, err)
		return nil
	}

	stagingDir := filepath.Join(project.Path, role.StagingDir())
	if err := os.MkdirAll(stagingDir, 0755); err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}

	content := l.render(role, result)
	readmePath := filepath.Join(stagingDir, "README.md")
	if err := os.WriteFile(readmePath, []byte(content), 0644); err != nil {
		return fmt.Errorf("write staging readme: %w", err)
	}

	return nil
}

// render produces the staging document. Deterministic given the same
// result and timestamp.
func (l *Ledger) render(role models.Role, result *models.AgentResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s - Generated Files\n\n", role.DisplayName())
	fmt.Fprintf(&b, "**Status:** %s  \n", strings.ToUpper(result.Status))
	fmt.Fprintf(&b, "**Last Updated:** %s\n\n", l.now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "## Summary\n\n%s\n\n", result.Summary)

	if len(result.GeneratedFiles) > 0 {
		b.WriteString("## Generated Files\n\n")
		for _, file := range result.GeneratedFiles {
			name := file.FileName
			if name == "" {
				name = "Unknown file"
			}
			description := file.ContentDescription
			if description == "" {
				description = "No description provided"
			}

			fmt.Fprintf(&b, "### %s\n\n", name)
			fmt.Fprintf(&b, "**Description:** %s\n\n", description)

			if len(file.KeyInsights) > 0 {
				b.WriteString("**Key Insights:**\n")
				for _, insight := range file.KeyInsights {
					fmt.Fprintf(&b, "- %s\n", insight)
				}
				b.WriteString("\n")
			}
		}
	}

	if len(result.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
		b.WriteString("\n")
	}

	if len(result.DownstreamInputs) > 0 {
		b.WriteString("## Information for Downstream Agents\n\n")
		for _, next := range downstreamOrder(result.DownstreamInputs) {
			fmt.Fprintf(&b, "### For %s\n\n", displayName(next))
			hints := result.DownstreamInputs[next]
			for _, param := range sortedKeys(hints) {
				fmt.Fprintf(&b, "**%s:** %s\n\n", param, hints[param])
			}
		}
	}

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "*Generated by the %s agent of the squad*\n", strings.ToLower(role.DisplayName()))

	return b.String()
}

// downstreamOrder yields downstream role names in the conventional workflow
// order first, then any unknown names alphabetically, so rendering is
// deterministic.
func downstreamOrder(inputs map[string]map[string]string) []string {
	var ordered []string
	seen := make(map[string]bool, len(inputs))

	for _, role := range models.Roles {
		if _, ok := inputs[string(role)]; ok {
			ordered = append(ordered, string(role))
			seen[string(role)] = true
		}
	}

	var rest []string
	for name := range inputs {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	return append(ordered, rest...)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// displayName renders an arbitrary role-ish name for headers, matching
// models.Role.DisplayName for known roles.
func displayName(name string) string {
	if role, ok := models.ParseRole(name); ok {
		return role.DisplayName()
	}
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

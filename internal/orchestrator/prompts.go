package orchestrator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/squadhq/squad/internal/complexity"
	"github.com/squadhq/squad/pkg/models"
)

// simpleContexts holds the minimal system instruction per role. Higher tiers
// layer extra guidance on top of these.
var simpleContexts = map[models.Role]string{
	models.RoleBusinessAnalyst: `# BUSINESS ANALYST AGENT
You analyze requirements and assess complexity. Create business analysis files in staging/business_analyst/.

## Core Rules
1. Assess complexity first (SIMPLE/MODERATE/COMPLEX)
2. Create proportional documentation - SIMPLE projects need minimal docs
3. Focus on essential requirements only
4. Generate user stories and functional specs
5. For risk assessment: ONLY focus on technical risks in implemented solution, not requirements/operational/management risks

## Output: JSON with status, summary, generated_files, recommendations, downstream_inputs`,

	models.RoleSoftwareArchitect: `# SOFTWARE ARCHITECT AGENT
You design system architecture. Create architecture files in staging/software_architect/.

## Core Rules
1. Design based on complexity level from Business Analyst
2. SIMPLE projects: basic architecture only
3. Focus on essential technical decisions
4. Create implementation guidelines

## Output: JSON with status, summary, generated_files, recommendations, downstream_inputs`,

	models.RoleUIDesigner: `# UI/UX DESIGNER AGENT
You create UI/UX designs. Create design files in staging/ui_designer/.

## Core Rules
1. Design based on complexity level
2. SIMPLE projects: basic wireframes and components
3. Focus on essential user experience
4. Ensure accessibility compliance

## Output: JSON with status, summary, generated_files, recommendations, downstream_inputs`,

	models.RoleDeveloper: `# DEVELOPER AGENT
You implement code based on specifications. Create code files in staging/developer/.

## Core Rules
1. Follow specifications from architect
2. SIMPLE projects: essential implementation only
3. Write clean, working code
4. Include basic tests

## Output: JSON with status, summary, generated_files, recommendations, downstream_inputs`,

	models.RoleUITester: `# UI TESTER AGENT
You test UI functionality. Create test files in staging/ui_tester/.

## Core Rules
1. Test based on complexity level
2. SIMPLE projects: essential functional tests
3. Focus on core user workflows
4. Generate test scripts

## Output: JSON with status, summary, generated_files, recommendations, downstream_inputs`,

	models.RoleCodeReviewer: `# CODE REVIEWER AGENT
You review code quality. Create review files in staging/code_reviewer/.

## Core Rules
1. Review based on complexity level
2. SIMPLE projects: essential quality checks
3. Focus on functionality and basic best practices
4. Provide actionable feedback

## Output: JSON with status, summary, generated_files, recommendations, downstream_inputs`,
}

const moderateAddendum = "\n\n## Additional Guidelines for MODERATE projects:\n" +
	"- Include more detailed documentation\n" +
	"- Add extra validation steps\n" +
	"- Consider additional edge cases"

// roleSystemContext resolves the system instruction for a role, scaled to the
// complexity tier. COMPLEX projects load the full per-role context file from
// contextsDir when one exists; a missing file falls back to the condensed
// context so an incomplete install still works.
func roleSystemContext(role models.Role, tier models.Tier, contextsDir string) string {
	base, ok := simpleContexts[role]
	if !ok {
		base = simpleContexts[models.RoleBusinessAnalyst]
	}

	switch tier {
	case models.TierComplex:
		if contextsDir != "" {
			data, err := os.ReadFile(filepath.Join(contextsDir, string(role)+".md"))
			if err == nil {
				return string(data)
			}
		}
		return base + moderateAddendum
	case models.TierModerate:
		return base + moderateAddendum
	default:
		return base
	}
}

// leanProjectContext is the minimal project framing appended to every role's
// system instruction.
func leanProjectContext(projectPath string) string {
	return fmt.Sprintf(`## PROJECT INFO
Path: %s
Staging: %s/staging/[agent_name]/
Task: Create files in staging folder, return JSON with status/files/summary.`,
		projectPath, projectPath)
}

// responseShape describes the structured reply every role must return.
const responseShape = `{
  "status": "completed",
  "summary": "Brief summary of the work completed",
  "generated_files": [
    {
      "file_path": "relative/path/to/filename.md",
      "file_name": "filename.md",
      "content_description": "Description of what this file contains",
      "key_insights": ["List", "of", "key", "insights", "from", "this", "file"]
    }
  ],
  "recommendations": ["Key", "recommendations", "from", "this", "work"],
  "downstream_inputs": {
    "next_agent_name": {
      "hint_name": "Named input for the next agent"
    }
  }
}`

// buildInstruction composes the user instruction for one role invocation:
// path conventions, the request, caller-supplied hints, the expected response
// shape, and the tier's expected deliverables.
func buildInstruction(proj *models.Project, role models.Role, requestText string,
	profile complexity.Profile, hints map[string]string) string {

	var b strings.Builder

	fmt.Fprintf(&b, "%s REQUEST:\n\n", strings.ToUpper(role.DisplayName()))
	fmt.Fprintf(&b, "Project Path: %s\n", proj.Path)
	fmt.Fprintf(&b, "Primary Output Location: %s/%s/\n", proj.Path, role.PrimaryOutputDir())
	fmt.Fprintf(&b, "Staging Folder: %s/%s/\n\n", proj.Path, role.StagingDir())
	fmt.Fprintf(&b, "Project Description: %s\n", requestText)

	if len(hints) > 0 {
		b.WriteString("\n")
		for _, key := range sortedHintKeys(hints) {
			fmt.Fprintf(&b, "%s: %s\n", titleWords(key), hints[key])
		}
	}

	fmt.Fprintf(&b, `
INSTRUCTIONS:
1. Create your files in the %s/ folder
2. Also create copies in %s/ for traceability
3. Generate whatever files you think are necessary
4. Each file should contain detailed, well-structured content
5. Keep within %d files and %d lines per file
6. Return a JSON response with the primary file locations (not staging paths)

%s
`, role.PrimaryOutputDir(), role.StagingDir(), profile.MaxFiles, profile.MaxLinesPerFile, responseShape)

	if expected := profile.ExpectedFiles(role); len(expected) > 0 {
		b.WriteString("\nExpected deliverables:\n")
		for _, name := range expected {
			fmt.Fprintf(&b, "- %s/%s\n", role.PrimaryOutputDir(), name)
		}
		fmt.Fprintf(&b, "- %s/ - Working copies of all files for traceability\n", role.StagingDir())
	}

	return strings.TrimSpace(b.String())
}

func sortedHintKeys(hints map[string]string) []string {
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// titleWords turns a snake_case hint key into a readable label,
// e.g. "business_objectives" becomes "Business Objectives".
func titleWords(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

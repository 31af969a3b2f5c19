package complexity

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/squadhq/squad/pkg/models"
)

// Profile is the resource budget for one complexity tier: how many files an
// agent may generate, how large each may be, and which deliverables each
// role is expected to produce.
type Profile struct {
	// Tier is the tier this profile belongs to.
	Tier models.Tier `yaml:"tier"`
	// MaxFiles is the maximum number of files a role should generate.
	MaxFiles int `yaml:"max_files"`
	// MaxLinesPerFile is the soft size limit for each generated file.
	MaxLinesPerFile int `yaml:"max_lines_per_file"`
	// Deliverables lists the expected output filenames per role, in order.
	Deliverables map[models.Role][]string `yaml:"deliverables"`
}

// ExpectedFiles returns the ordered deliverable names for a role, or nil if
// the profile defines none for it.
func (p Profile) ExpectedFiles(role models.Role) []string {
	return p.Deliverables[role]
}

// builtinProfiles is the static budget table. Higher tiers extend the lower
// tiers' deliverable lists.
var builtinProfiles = map[models.Tier]Profile{
	models.TierSimple: {
		Tier:            models.TierSimple,
		MaxFiles:        3,
		MaxLinesPerFile: 100,
		Deliverables: map[models.Role][]string{
			models.RoleBusinessAnalyst:   {"complexity_assessment.md", "functional_specification.md", "user_stories.md"},
			models.RoleSoftwareArchitect: {"technical_specification.md", "system_architecture.md"},
			models.RoleUIDesigner:        {"wireframes.md", "design_system.md"},
			models.RoleDeveloper:         {"source_code/", "README.md", "tests/"},
			models.RoleUITester:          {"test_plan.md", "functional_tests.py"},
			models.RoleCodeReviewer:      {"code_review_report.md", "quality_metrics.md"},
		},
	},
	models.TierModerate: {
		Tier:            models.TierModerate,
		MaxFiles:        6,
		MaxLinesPerFile: 200,
		Deliverables: map[models.Role][]string{
			models.RoleBusinessAnalyst:   {"complexity_assessment.md", "functional_specification.md", "user_stories.md", "requirements.md", "stakeholder_analysis.md"},
			models.RoleSoftwareArchitect: {"technical_specification.md", "system_architecture.md", "technology_stack.md", "api_design_spec.md"},
			models.RoleUIDesigner:        {"wireframes.md", "mockups.md", "design_system.md", "components.md"},
			models.RoleDeveloper:         {"source_code/", "README.md", "tests/", "dependencies.md", "api_documentation.md"},
			models.RoleUITester:          {"test_plan.md", "functional_tests.py", "accessibility_tests.py", "performance_tests.py"},
			models.RoleCodeReviewer:      {"code_review_report.md", "security_assessment.md", "performance_analysis.md", "quality_metrics.md"},
		},
	},
	models.TierComplex: {
		Tier:            models.TierComplex,
		MaxFiles:        12,
		MaxLinesPerFile: 500,
		Deliverables: map[models.Role][]string{
			models.RoleBusinessAnalyst:   {"complexity_assessment.md", "functional_specification.md", "user_stories.md", "requirements.md", "stakeholder_analysis.md", "risk_assessment.md", "business_processes.md", "success_metrics.md"},
			models.RoleSoftwareArchitect: {"technical_specification.md", "system_architecture.md", "technology_stack.md", "api_design_spec.md", "database_schema.md", "security_architecture.md", "deployment_architecture.md", "integration_patterns.md", "performance_strategy.md", "implementation_guidelines.md"},
			models.RoleUIDesigner:        {"wireframes.md", "mockups.md", "design_system.md", "components.md", "responsive_design.md", "accessibility.md", "interactions.md", "user_testing.md"},
			models.RoleDeveloper:         {"source_code/", "README.md", "dependencies.md", "tests/", "database/", "api_documentation.md", "deployment_config/", "implementation_notes.md", "performance_guide.md", "security_implementation.md", "development_guide.md"},
			models.RoleUITester:          {"test_plan.md", "test_cases.md", "functional_tests.py", "accessibility_tests.py", "performance_tests.py", "cross_browser_tests.py", "regression_tests.py", "test_data.json", "test_execution_report.md", "bug_reports.md", "testing_guidelines.md"},
			models.RoleCodeReviewer:      {"code_review_report.md", "security_assessment.md", "performance_analysis.md", "quality_metrics.md", "best_practices_checklist.md", "refactoring_suggestions.md", "test_coverage_analysis.md", "documentation_review.md"},
		},
	},
}

// ProfileFor returns the budget profile for a tier. Unknown tiers resolve
// to the SIMPLE profile.
func ProfileFor(tier models.Tier) Profile {
	if p, ok := builtinProfiles[tier]; ok {
		return p
	}
	return builtinProfiles[models.TierSimple]
}

// Profiles is a tier-to-profile table, either the built-in defaults or one
// loaded from a YAML override file.
type Profiles map[models.Tier]Profile

// DefaultProfiles returns the built-in budget table.
func DefaultProfiles() Profiles {
	out := make(Profiles, len(builtinProfiles))
	for tier, p := range builtinProfiles {
		out[tier] = p
	}
	return out
}

// profileFile is the YAML shape for profile overrides.
type profileFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// LoadProfiles reads tier profiles from a YAML file. Tiers not present in
// the file keep their built-in profile; entries with an unknown tier are
// rejected.
func LoadProfiles(path string) (Profiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}

	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse profiles %s: %w", path, err)
	}

	profiles := DefaultProfiles()
	for _, p := range file.Profiles {
		if !p.Tier.Valid() {
			return nil, fmt.Errorf("profiles %s: unknown tier %q", path, p.Tier)
		}
		profiles[p.Tier] = p
	}

	return profiles, nil
}

// Get returns the profile for a tier, falling back to SIMPLE for unknown
// tiers, mirroring ProfileFor for loaded tables.
func (p Profiles) Get(tier models.Tier) Profile {
	if profile, ok := p[tier]; ok {
		return profile
	}
	return p[models.TierSimple]
}

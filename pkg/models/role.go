// Package models defines the shared value types for the squad system.
package models

import "strings"

// Role identifies one of the specialist agents in the squad.
type Role string

const (
	// RoleBusinessAnalyst gathers requirements and writes user stories.
	RoleBusinessAnalyst Role = "business_analyst"
	// RoleSoftwareArchitect designs the system architecture.
	RoleSoftwareArchitect Role = "software_architect"
	// RoleUIDesigner produces wireframes and design specifications.
	RoleUIDesigner Role = "ui_designer"
	// RoleDeveloper implements the application code.
	RoleDeveloper Role = "developer"
	// RoleUITester writes test plans and functional tests.
	RoleUITester Role = "ui_tester"
	// RoleCodeReviewer reviews code quality and security.
	RoleCodeReviewer Role = "code_reviewer"
)

// Roles lists all squad roles in their conventional workflow order.
var Roles = []Role{
	RoleBusinessAnalyst,
	RoleSoftwareArchitect,
	RoleUIDesigner,
	RoleDeveloper,
	RoleUITester,
	RoleCodeReviewer,
}

// Valid returns true if the role is a known value.
func (r Role) Valid() bool {
	switch r {
	case RoleBusinessAnalyst, RoleSoftwareArchitect, RoleUIDesigner,
		RoleDeveloper, RoleUITester, RoleCodeReviewer:
		return true
	default:
		return false
	}
}

// DisplayName returns the human-readable form of the role name,
// e.g. "business_analyst" becomes "Business Analyst".
func (r Role) DisplayName() string {
	words := strings.Split(string(r), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// StagingDir returns the role's staging folder relative to the project root.
func (r Role) StagingDir() string {
	return "staging/" + string(r)
}

// PrimaryOutputDir returns the folder, relative to the project root, where
// the role writes its primary deliverables. Staging holds working copies.
func (r Role) PrimaryOutputDir() string {
	switch r {
	case RoleBusinessAnalyst:
		return "docs/requirements"
	case RoleSoftwareArchitect:
		return "docs/architecture"
	case RoleUIDesigner:
		return "assets/designs"
	case RoleDeveloper:
		return "src"
	case RoleUITester:
		return "src/tests"
	case RoleCodeReviewer:
		return "docs/reviews"
	default:
		return string(r)
	}
}

// ParseRole converts a string to a Role, accepting both the underscore form
// ("business_analyst") and the display form ("Business Analyst").
func ParseRole(s string) (Role, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")
	r := Role(normalized)
	if r.Valid() {
		return r, true
	}
	return "", false
}

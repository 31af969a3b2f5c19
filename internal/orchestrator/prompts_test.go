package orchestrator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/squadhq/squad/pkg/models"
)

func TestRoleSystemContextTierScaling(t *testing.T) {
	simple := roleSystemContext(models.RoleDeveloper, models.TierSimple, "")
	if !strings.Contains(simple, "# DEVELOPER AGENT") {
		t.Error("missing role header")
	}
	if strings.Contains(simple, "Additional Guidelines") {
		t.Error("SIMPLE context should not carry extra guidelines")
	}

	moderate := roleSystemContext(models.RoleDeveloper, models.TierModerate, "")
	if !strings.HasPrefix(moderate, simple) {
		t.Error("MODERATE context should extend the SIMPLE one")
	}
	if !strings.Contains(moderate, "Additional Guidelines for MODERATE") {
		t.Error("MODERATE context missing extra guidelines")
	}
}

func TestRoleSystemContextComplexLoadsFullFile(t *testing.T) {
	dir := t.TempDir()
	full := "# FULL ARCHITECT CONTEXT\n\nEverything in detail.\n"
	if err := os.WriteFile(filepath.Join(dir, "software_architect.md"), []byte(full), 0644); err != nil {
		t.Fatal(err)
	}

	got := roleSystemContext(models.RoleSoftwareArchitect, models.TierComplex, dir)
	if got != full {
		t.Errorf("full context file not used: %q", got)
	}

	// Missing file falls back to the condensed context.
	fallback := roleSystemContext(models.RoleUIDesigner, models.TierComplex, dir)
	if !strings.Contains(fallback, "# UI/UX DESIGNER AGENT") {
		t.Error("missing full context did not fall back")
	}
}

func TestTitleWords(t *testing.T) {
	cases := map[string]string{
		"business_objectives": "Business Objectives",
		"timeline":            "Timeline",
		"target_users":        "Target Users",
	}
	for in, want := range cases {
		if got := titleWords(in); got != want {
			t.Errorf("titleWords(%q) = %q, want %q", in, got, want)
		}
	}
}

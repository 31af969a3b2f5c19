package complexity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/squadhq/squad/pkg/models"
)

func TestProfileFor(t *testing.T) {
	simple := ProfileFor(models.TierSimple)
	if simple.MaxFiles != 3 || simple.MaxLinesPerFile != 100 {
		t.Errorf("unexpected SIMPLE budget: %d files, %d lines", simple.MaxFiles, simple.MaxLinesPerFile)
	}

	moderate := ProfileFor(models.TierModerate)
	if moderate.MaxFiles != 6 || moderate.MaxLinesPerFile != 200 {
		t.Errorf("unexpected MODERATE budget: %d files, %d lines", moderate.MaxFiles, moderate.MaxLinesPerFile)
	}

	complexP := ProfileFor(models.TierComplex)
	if complexP.MaxFiles != 12 || complexP.MaxLinesPerFile != 500 {
		t.Errorf("unexpected COMPLEX budget: %d files, %d lines", complexP.MaxFiles, complexP.MaxLinesPerFile)
	}

	// Unknown tiers fall back to SIMPLE.
	fallback := ProfileFor(models.Tier("EXTREME"))
	if fallback.MaxFiles != simple.MaxFiles {
		t.Error("expected unknown tier to resolve to the SIMPLE profile")
	}
}

func TestProfileDeliverablesGrowWithTier(t *testing.T) {
	for _, role := range models.Roles {
		simple := len(ProfileFor(models.TierSimple).ExpectedFiles(role))
		moderate := len(ProfileFor(models.TierModerate).ExpectedFiles(role))
		complexN := len(ProfileFor(models.TierComplex).ExpectedFiles(role))

		if simple == 0 {
			t.Errorf("role %s has no SIMPLE deliverables", role)
		}
		if moderate < simple || complexN < moderate {
			t.Errorf("role %s deliverables do not grow with tier: %d/%d/%d",
				role, simple, moderate, complexN)
		}
	}
}

func TestLoadProfiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")

	content := `profiles:
  - tier: SIMPLE
    max_files: 2
    max_lines_per_file: 50
    deliverables:
      business_analyst:
        - notes.md
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write profiles: %v", err)
	}

	profiles, err := LoadProfiles(path)
	if err != nil {
		t.Fatalf("LoadProfiles failed: %v", err)
	}

	simple := profiles.Get(models.TierSimple)
	if simple.MaxFiles != 2 || simple.MaxLinesPerFile != 50 {
		t.Errorf("override not applied: %+v", simple)
	}
	if got := simple.ExpectedFiles(models.RoleBusinessAnalyst); len(got) != 1 || got[0] != "notes.md" {
		t.Errorf("unexpected deliverables: %v", got)
	}

	// Tiers absent from the file keep their built-in profile.
	if profiles.Get(models.TierComplex).MaxFiles != 12 {
		t.Error("expected COMPLEX to keep built-in profile")
	}
}

func TestLoadProfilesRejectsUnknownTier(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")

	content := `profiles:
  - tier: GIGANTIC
    max_files: 99
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write profiles: %v", err)
	}

	if _, err := LoadProfiles(path); err == nil {
		t.Error("expected error for unknown tier")
	}
}

func TestLoadProfilesMissingFile(t *testing.T) {
	if _, err := LoadProfiles(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

package models

import "testing"

func TestParseAgentResult(t *testing.T) {
	raw := `{
		"status": "completed",
		"summary": "Requirements gathered",
		"generated_files": [
			{
				"file_path": "docs/requirements/user_stories.md",
				"file_name": "user_stories.md",
				"content_description": "User stories with acceptance criteria",
				"key_insights": ["Mobile-first audience", "Three personas"]
			}
		],
		"recommendations": ["Validate with stakeholders"],
		"downstream_inputs": {
			"software_architect": {
				"requirements": "REST API with three resources",
				"complexity_level": "MODERATE"
			}
		}
	}`

	result, err := ParseAgentResult(raw)
	if err != nil {
		t.Fatalf("ParseAgentResult failed: %v", err)
	}

	if result.Status != "completed" {
		t.Errorf("expected status completed, got %q", result.Status)
	}
	if len(result.GeneratedFiles) != 1 {
		t.Fatalf("expected 1 generated file, got %d", len(result.GeneratedFiles))
	}
	if result.GeneratedFiles[0].FileName != "user_stories.md" {
		t.Errorf("unexpected file name %q", result.GeneratedFiles[0].FileName)
	}
	if len(result.GeneratedFiles[0].KeyInsights) != 2 {
		t.Errorf("expected 2 insights, got %d", len(result.GeneratedFiles[0].KeyInsights))
	}
	hints, ok := result.DownstreamInputs["software_architect"]
	if !ok {
		t.Fatal("expected downstream inputs for software_architect")
	}
	if hints["complexity_level"] != "MODERATE" {
		t.Errorf("unexpected complexity hint %q", hints["complexity_level"])
	}
}

func TestParseAgentResultDefaults(t *testing.T) {
	result, err := ParseAgentResult(`{}`)
	if err != nil {
		t.Fatalf("ParseAgentResult failed: %v", err)
	}
	if result.Status != "completed" {
		t.Errorf("expected default status, got %q", result.Status)
	}
	if result.Summary != "Agent completed its tasks." {
		t.Errorf("expected default summary, got %q", result.Summary)
	}
	if !result.Completed() {
		t.Error("expected default result to report completed")
	}
}

func TestParseAgentResultRejectsNonObjects(t *testing.T) {
	invalid := []string{
		"",
		"   ",
		"not json at all",
		`"just a string"`,
		`[1, 2, 3]`,
		`{"status": 42}`,
	}

	for _, raw := range invalid {
		if _, err := ParseAgentResult(raw); err == nil {
			t.Errorf("expected parse failure for %q", raw)
		}
	}
}

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GeneratedFile describes one artifact produced by an agent invocation.
type GeneratedFile struct {
	// FilePath is the file's location relative to the project root.
	FilePath string `json:"file_path"`
	// FileName is the bare file name.
	FileName string `json:"file_name"`
	// ContentDescription summarizes what the file contains.
	ContentDescription string `json:"content_description"`
	// KeyInsights lists notable findings captured in the file.
	KeyInsights []string `json:"key_insights,omitempty"`
}

// AgentResult is the structured outcome of one role invocation, parsed from
// the capability's JSON response. It exists only long enough to drive the
// staging and progress bookkeeping for that invocation.
type AgentResult struct {
	// Status is the reported completion state, e.g. "completed".
	Status string `json:"status"`
	// Summary is a short description of the work performed.
	Summary string `json:"summary"`
	// GeneratedFiles lists the artifacts written, in the order reported.
	GeneratedFiles []GeneratedFile `json:"generated_files,omitempty"`
	// Recommendations lists follow-up suggestions from the agent.
	Recommendations []string `json:"recommendations,omitempty"`
	// DownstreamInputs maps a downstream role name to named hints for it.
	DownstreamInputs map[string]map[string]string `json:"downstream_inputs,omitempty"`
}

// ParseAgentResult parses a raw capability response as an AgentResult.
// Any response that is not a JSON object of the expected shape is a parse
// failure; callers treat that as "skip bookkeeping", not as a fatal error.
// Missing status and summary fields get the conventional defaults.
func ParseAgentResult(raw string) (*AgentResult, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("empty response")
	}

	var result AgentResult
	if err := json.Unmarshal([]byte(trimmed), &result); err != nil {
		return nil, fmt.Errorf("parse agent result: %w", err)
	}

	if result.Status == "" {
		result.Status = "completed"
	}
	if result.Summary == "" {
		result.Summary = "Agent completed its tasks."
	}

	return &result, nil
}

// Completed returns true if the result reports a completed status.
func (r *AgentResult) Completed() bool {
	return strings.EqualFold(r.Status, "completed")
}

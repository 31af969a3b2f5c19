package main

import (
	"testing"

	"github.com/squadhq/squad/internal/config"
)

func TestGetConfigValue(t *testing.T) {
	cfg := config.Default()
	cfg.Anthropic.Model = "claude-sonnet-4-5"
	cfg.Projects.BaseDir = "/data/projects"

	tests := []struct {
		key  string
		want string
	}{
		{"anthropic.model", "claude-sonnet-4-5"},
		{"anthropic.max_tokens", "4096"},
		{"bedrock.enabled", "false"},
		{"projects.base_dir", "/data/projects"},
		{"anthropic.api_key", "(not set)"},
	}

	for _, tt := range tests {
		got, err := getConfigValue(cfg, tt.key)
		if err != nil {
			t.Errorf("getConfigValue(%q) failed: %v", tt.key, err)
			continue
		}
		if got != tt.want {
			t.Errorf("getConfigValue(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}

	if _, err := getConfigValue(cfg, "nope.nothing"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestSetConfigValue(t *testing.T) {
	cfg := config.Default()

	if err := setConfigValue(cfg, "bedrock.enabled", "true"); err != nil {
		t.Fatalf("setConfigValue failed: %v", err)
	}
	if !cfg.Bedrock.Enabled {
		t.Error("bedrock.enabled not set")
	}

	if err := setConfigValue(cfg, "anthropic.max_tokens", "8192"); err != nil {
		t.Fatalf("setConfigValue failed: %v", err)
	}
	if cfg.Anthropic.MaxTokens != 8192 {
		t.Errorf("max_tokens = %d", cfg.Anthropic.MaxTokens)
	}

	if err := setConfigValue(cfg, "anthropic.max_tokens", "not-a-number"); err == nil {
		t.Error("expected error for bad integer")
	}
	if err := setConfigValue(cfg, "unknown.key", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
}

package capability

import (
	"context"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	if _, err := NewClient(ClientConfig{}); err == nil {
		t.Error("expected error without API key")
	}
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(ClientConfig{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if client.Model() != anthropic.ModelClaudeSonnet4_20250514 {
		t.Errorf("unexpected default model %q", client.Model())
	}
	if client.maxTokens != 8192 {
		t.Errorf("unexpected default max tokens %d", client.maxTokens)
	}
}

func TestTranslateModelForBedrock(t *testing.T) {
	got := translateModelForBedrock(anthropic.ModelClaudeSonnet4_20250514)
	if got != "us.anthropic.claude-sonnet-4-20250514-v1:0" {
		t.Errorf("unexpected translation %q", got)
	}

	// Unknown models pass through untouched.
	custom := anthropic.Model("us.anthropic.custom-v1:0")
	if got := translateModelForBedrock(custom); got != custom {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestInvokerFunc(t *testing.T) {
	var gotSystem, gotUser string
	fake := InvokerFunc(func(ctx context.Context, system, user string) (string, error) {
		gotSystem, gotUser = system, user
		return "response", nil
	})

	out, err := fake.Invoke(context.Background(), "sys", "usr")
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if out != "response" || gotSystem != "sys" || gotUser != "usr" {
		t.Errorf("unexpected passthrough: %q %q %q", out, gotSystem, gotUser)
	}
}

func TestTokenTracker(t *testing.T) {
	tracker := NewTokenTracker()
	tracker.Add(100, 50)
	tracker.Add(10, 5)

	in, out := tracker.Total()
	if in != 110 || out != 55 {
		t.Errorf("Total() = (%d, %d), want (110, 55)", in, out)
	}
	if tracker.Calls() != 2 {
		t.Errorf("Calls() = %d, want 2", tracker.Calls())
	}
}

package naming

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/squadhq/squad/internal/capability"
)

func TestSuggestTitleUsesCapability(t *testing.T) {
	fake := capability.InvokerFunc(func(ctx context.Context, system, user string) (string, error) {
		if !strings.Contains(user, "todo list") {
			t.Errorf("request text not forwarded: %q", user)
		}
		return "  Todo_List \n", nil
	})

	title := SuggestTitle(context.Background(), fake, "Create a todo list app")
	if title != "todo_list" {
		t.Errorf("SuggestTitle = %q, want todo_list", title)
	}
}

func TestSuggestTitleFallsBackOnError(t *testing.T) {
	fake := capability.InvokerFunc(func(ctx context.Context, system, user string) (string, error) {
		return "", errors.New("capability unavailable")
	})

	title := SuggestTitle(context.Background(), fake, "Create a todo list app")
	if title != "create_todo_list_app" {
		t.Errorf("SuggestTitle = %q, want create_todo_list_app", title)
	}
}

func TestSuggestTitleFallsBackOnEmptyResponse(t *testing.T) {
	fake := capability.InvokerFunc(func(ctx context.Context, system, user string) (string, error) {
		return "???!!!", nil // sanitizes to nothing
	})

	title := SuggestTitle(context.Background(), fake, "weather dashboard")
	if title != "weather_dashboard" {
		t.Errorf("SuggestTitle = %q, want weather_dashboard", title)
	}
}

func TestSuggestTitleNilInvoker(t *testing.T) {
	title := SuggestTitle(context.Background(), nil, "chat server")
	if title != "chat_server" {
		t.Errorf("SuggestTitle = %q, want chat_server", title)
	}
}

func TestFallbackTitle(t *testing.T) {
	tests := []struct {
		request string
		want    string
	}{
		{"Create a todo list app", "create_todo_list_app"},
		{"I want to build an order tracking dashboard", "build_order_tracking_dashboard"},
		{"the a an of", "project"},
		{"", "project"},
		{"Numbers 123 only matter as words", "numbers_only_matter_words"},
	}

	for _, tt := range tests {
		if got := FallbackTitle(tt.request); got != tt.want {
			t.Errorf("FallbackTitle(%q) = %q, want %q", tt.request, got, tt.want)
		}
	}
}

func TestSanitize(t *testing.T) {
	if got := Sanitize("hello world!@#"); got != "helloworld" {
		t.Errorf("Sanitize = %q", got)
	}
	if got := Sanitize("keep_under-scores-9"); got != "keep_under-scores-9" {
		t.Errorf("Sanitize = %q", got)
	}

	long := strings.Repeat("a", 80)
	if got := Sanitize(long); len(got) != 50 {
		t.Errorf("expected truncation to 50, got %d", len(got))
	}
}

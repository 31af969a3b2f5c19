package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/squadhq/squad/internal/project"
)

func TestWatcherReportsStagingWrites(t *testing.T) {
	store := project.NewStore(t.TempDir(), nil)
	proj, err := store.Create(context.Background(), "a small utility")
	if err != nil {
		t.Fatal(err)
	}

	w, err := New(proj)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer w.Close()

	target := filepath.Join(proj.Path, "staging", "developer", "notes.md")
	if err := os.WriteFile(target, []byte("work in progress"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-w.Events():
			if ev.Rel == filepath.Join("staging", "developer", "notes.md") {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for staging write event")
		}
	}
}

func TestWatcherRejectsNilProject(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("expected error for nil project")
	}
}

package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/squadhq/squad/internal/capability"
	"github.com/squadhq/squad/pkg/models"
)

// fixedNamer always suggests the same title.
func fixedNamer(title string) capability.Invoker {
	return capability.InvokerFunc(func(ctx context.Context, system, user string) (string, error) {
		return title, nil
	})
}

func TestCreateScaffoldsProject(t *testing.T) {
	base := t.TempDir()
	store := NewStore(base, fixedNamer("todo_list"))

	proj, err := store.Create(context.Background(), "Create a todo list app")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if matched, _ := regexp.MatchString(`^project_\d{8}_todo_list$`, proj.Folder); !matched {
		t.Errorf("unexpected folder name %q", proj.Folder)
	}
	if proj.Title != "todo_list" {
		t.Errorf("unexpected title %q", proj.Title)
	}

	// Fixed subtree.
	wantDirs := []string{
		"src/app", "src/tests", "src/config",
		"docs/requirements", "docs/architecture", "docs/reviews", "docs/api",
		"assets/designs", "assets/images", "assets/data",
	}
	for _, role := range models.Roles {
		wantDirs = append(wantDirs, role.StagingDir())
	}
	for _, dir := range wantDirs {
		info, err := os.Stat(filepath.Join(proj.Path, dir))
		if err != nil || !info.IsDir() {
			t.Errorf("missing scaffold dir %s", dir)
		}
	}

	// Seeded READMEs.
	staged, err := os.ReadFile(filepath.Join(proj.Path, "staging/business_analyst/README.md"))
	if err != nil {
		t.Fatalf("missing staging readme: %v", err)
	}
	if !strings.Contains(string(staged), "Business Analyst Staging") {
		t.Errorf("unexpected staging readme: %s", staged)
	}

	// Metadata.
	info, err := os.ReadFile(filepath.Join(proj.Path, InfoFileName))
	if err != nil {
		t.Fatalf("missing project info: %v", err)
	}
	if !strings.Contains(string(info), "**Project Title:** todo_list") {
		t.Error("project info missing title line")
	}
	if !strings.Contains(string(info), "Create a todo list app") {
		t.Error("project info missing original request")
	}

	// Initial progress README with an empty region.
	readme, err := os.ReadFile(filepath.Join(proj.Path, "README.md"))
	if err != nil {
		t.Fatalf("missing project readme: %v", err)
	}
	if !strings.Contains(string(readme), ProgressStartMarker) || !strings.Contains(string(readme), ProgressEndMarker) {
		t.Error("project readme missing progress markers")
	}
}

func TestCreateUniqueFolderNames(t *testing.T) {
	base := t.TempDir()
	store := NewStore(base, fixedNamer("todo"))

	first, err := store.Create(context.Background(), "todo tracker")
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	second, err := store.Create(context.Background(), "todo tracker")
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}
	third, err := store.Create(context.Background(), "todo tracker")
	if err != nil {
		t.Fatalf("third Create failed: %v", err)
	}

	if second.Folder != first.Folder+"_1" {
		t.Errorf("expected %s_1, got %s", first.Folder, second.Folder)
	}
	if third.Folder != first.Folder+"_2" {
		t.Errorf("expected %s_2, got %s", first.Folder, third.Folder)
	}
}

func TestCreateWithCustomTitle(t *testing.T) {
	base := t.TempDir()
	store := NewStore(base, fixedNamer("ignored"))

	proj, err := store.CreateWithTitle(context.Background(), "anything", "My Custom+Name!")
	if err != nil {
		t.Fatalf("CreateWithTitle failed: %v", err)
	}
	if proj.Title != "MyCustomName" {
		t.Errorf("expected sanitized custom title, got %q", proj.Title)
	}
}

func TestListProjects(t *testing.T) {
	base := t.TempDir()
	store := NewStore(base, fixedNamer("alpha"))

	ctx := context.Background()
	if _, err := store.CreateWithTitle(ctx, "first", "alpha"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.CreateWithTitle(ctx, "second", "beta"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// A prefixed directory without metadata is not a project.
	if err := os.MkdirAll(filepath.Join(base, "project_20200101_ghost"), 0755); err != nil {
		t.Fatal(err)
	}
	// Unrelated directories are ignored.
	if err := os.MkdirAll(filepath.Join(base, "not_a_project"), 0755); err != nil {
		t.Fatal(err)
	}

	projects, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}

	titles := []string{projects[0].Title, projects[1].Title}
	for _, want := range []string{"alpha", "beta"} {
		found := false
		for _, got := range titles {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing project %q in %v", want, titles)
		}
	}
}

func TestListToleratesCorruptMetadata(t *testing.T) {
	base := t.TempDir()
	store := NewStore(base, fixedNamer("good"))

	if _, err := store.CreateWithTitle(context.Background(), "fine", "good"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// A project whose metadata has no parseable title line.
	corrupt := filepath.Join(base, "project_20200101_broken")
	if err := os.MkdirAll(corrupt, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(corrupt, InfoFileName), []byte("garbage\x00data"), 0644); err != nil {
		t.Fatal(err)
	}

	projects, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected both projects listed, got %d", len(projects))
	}

	var corruptTitle string
	for _, p := range projects {
		if p.Folder == "project_20200101_broken" {
			corruptTitle = p.Title
		}
	}
	if corruptTitle != "project_20200101_broken" {
		t.Errorf("expected folder name as fallback title, got %q", corruptTitle)
	}
}

func TestOpen(t *testing.T) {
	base := t.TempDir()
	store := NewStore(base, fixedNamer("opened"))

	created, err := store.CreateWithTitle(context.Background(), "req", "opened")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	proj, err := Open(created.Path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if proj.Title != "opened" || proj.Folder != created.Folder {
		t.Errorf("unexpected project %+v", proj)
	}

	if _, err := Open(filepath.Join(base, "missing")); err == nil {
		t.Error("expected error opening missing project")
	}
}

func TestParseTitle(t *testing.T) {
	content := fmt.Sprintf("# Project Information\n\n%s  my_title  \n**Folder:** x\n", titleLinePrefix)
	if got := parseTitle(content); got != "my_title" {
		t.Errorf("parseTitle = %q", got)
	}
	if got := parseTitle("no title here"); got != "" {
		t.Errorf("expected empty title, got %q", got)
	}
}

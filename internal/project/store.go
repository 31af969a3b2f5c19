// Package project owns the on-disk project directory: creation with the
// fixed subfolder scaffold, metadata, and project discovery.
package project

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/squadhq/squad/internal/capability"
	"github.com/squadhq/squad/internal/naming"
	"github.com/squadhq/squad/pkg/models"
)

// folderPrefix marks a directory as a squad project.
const folderPrefix = "project_"

// Store creates and discovers projects under a base path.
type Store struct {
	basePath string
	invoker  capability.Invoker
}

// NewStore creates a store rooted at basePath. The invoker backs title
// suggestions and may be nil, in which case the deterministic fallback
// namer is used.
func NewStore(basePath string, invoker capability.Invoker) *Store {
	return &Store{basePath: basePath, invoker: invoker}
}

// BasePath returns the directory projects are created under.
func (s *Store) BasePath() string {
	return s.basePath
}

// Create scaffolds a new project for the request: resolves a title, picks a
// unique dated folder name, creates the full subtree with seeded READMEs,
// writes PROJECT_INFO.md and the initial progress README.
//
// Creation is not transactional: a filesystem error is returned as-is and
// may leave a partially-created directory behind.
func (s *Store) Create(ctx context.Context, requestText string) (*models.Project, error) {
	return s.CreateWithTitle(ctx, requestText, "")
}

// CreateWithTitle is Create with a caller-supplied title overriding the
// namer. The custom title is sanitized the same way as suggested ones.
func (s *Store) CreateWithTitle(ctx context.Context, requestText, customTitle string) (*models.Project, error) {
	title := naming.Sanitize(customTitle)
	if title == "" {
		title = naming.SuggestTitle(ctx, s.invoker, requestText)
	}

	folder := s.uniqueFolderName(fmt.Sprintf("%s%s_%s", folderPrefix, time.Now().Format("20060102"), title))
	path := filepath.Join(s.basePath, folder)

	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("create project folder: %w", err)
	}

	if err := scaffold(path); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := writeProjectInfo(path, folder, title, requestText, now); err != nil {
		return nil, err
	}

	if err := WriteInitialReadme(path, folder, title); err != nil {
		return nil, err
	}

	return &models.Project{
		Folder:    folder,
		Title:     title,
		Path:      path,
		CreatedAt: now,
	}, nil
}

// uniqueFolderName appends an incrementing numeric suffix until the name is
// free among existing siblings.
func (s *Store) uniqueFolderName(name string) string {
	candidate := name
	for counter := 1; ; counter++ {
		if _, err := os.Stat(filepath.Join(s.basePath, candidate)); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d", name, counter)
	}
}

// List returns all projects under the base path, newest first. A directory
// counts as a project if its name has the project prefix and it contains a
// metadata file. A corrupt metadata file downgrades that project's title to
// its folder name; it never aborts the listing.
func (s *Store) List() ([]*models.Project, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, fmt.Errorf("read projects dir: %w", err)
	}

	var projects []*models.Project
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), folderPrefix) {
			continue
		}

		path := filepath.Join(s.basePath, entry.Name())
		infoPath := filepath.Join(path, InfoFileName)
		if _, err := os.Stat(infoPath); err != nil {
			continue
		}

		title := entry.Name()
		if parsed, err := readProjectTitle(infoPath); err == nil && parsed != "" {
			title = parsed
		}

		created := time.Time{}
		if info, err := entry.Info(); err == nil {
			created = info.ModTime()
		}

		projects = append(projects, &models.Project{
			Folder:    entry.Name(),
			Title:     title,
			Path:      path,
			CreatedAt: created,
		})
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})

	return projects, nil
}

// Open returns the project at path if it looks like a squad project.
func Open(path string) (*models.Project, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open project: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open project: %s is not a directory", path)
	}

	folder := filepath.Base(path)
	title := folder
	if parsed, err := readProjectTitle(filepath.Join(path, InfoFileName)); err == nil && parsed != "" {
		title = parsed
	}

	return &models.Project{
		Folder:    folder,
		Title:     title,
		Path:      path,
		CreatedAt: info.ModTime(),
	}, nil
}

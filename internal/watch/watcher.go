// Package watch reports files written under a project directory, so the
// CLI can show artifacts as agents produce them.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/squadhq/squad/pkg/models"
)

// Event describes one observed file change inside a project.
type Event struct {
	// Path is the absolute path of the changed file.
	Path string
	// Rel is the path relative to the project root.
	Rel string
	// Created is true for newly created files, false for writes.
	Created bool
	// At is when the event was observed.
	At time.Time
}

// Watcher follows file activity under a project tree.
type Watcher struct {
	proj    *models.Project
	watcher *fsnotify.Watcher
	events  chan Event
	done    chan struct{}
}

// New starts watching a project. The project's scaffold directories are
// registered recursively; directories created later are picked up as they
// appear.
func New(proj *models.Project) (*Watcher, error) {
	if proj == nil {
		return nil, fmt.Errorf("watch: nil project")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		proj:    proj,
		watcher: fsw,
		events:  make(chan Event, 64),
		done:    make(chan struct{}),
	}

	if err := w.addTree(proj.Path); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.run()

	return w, nil
}

// Events returns the channel of observed file changes.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close stops the watcher and closes the event channel.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

// addTree registers a directory and all its subdirectories. The project's
// internal bookkeeping under .squad is skipped.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".squad" {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) run() {
	defer close(w.events)

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case <-w.watcher.Errors:
			// Keep watching; a lost event is not fatal here.
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return
	}

	// New directories join the watch set so files inside them are seen.
	if info.IsDir() {
		if event.Op&fsnotify.Create != 0 && filepath.Base(event.Name) != ".squad" {
			w.watcher.Add(event.Name)
		}
		return
	}

	rel, err := filepath.Rel(w.proj.Path, event.Name)
	if err != nil {
		rel = event.Name
	}
	if strings.HasPrefix(rel, ".squad") {
		return
	}

	select {
	case w.events <- Event{
		Path:    event.Name,
		Rel:     rel,
		Created: event.Op&fsnotify.Create != 0,
		At:      time.Now(),
	}:
	case <-w.done:
	}
}

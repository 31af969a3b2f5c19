package models

import "time"

// Project is a scaffolded project directory on disk.
type Project struct {
	// Folder is the directory name, e.g. "project_20250101_todo_list".
	Folder string `json:"folder"`
	// Title is the human-readable slug resolved at creation time.
	Title string `json:"title"`
	// Path is the location of the project directory.
	Path string `json:"path"`
	// CreatedAt is the directory's creation time.
	CreatedAt time.Time `json:"created_at"`
}

package state

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/squadhq/squad/pkg/models"
)

// Invocation is one recorded role run against a project.
type Invocation struct {
	ID         string
	Role       models.Role
	Tier       models.Tier
	Status     string
	Summary    string
	FileCount  int
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns how long the invocation took.
func (i Invocation) Duration() time.Duration {
	return i.FinishedAt.Sub(i.StartedAt)
}

// RecordInvocation stores one invocation. A missing ID is filled with a
// fresh UUID; the ID is returned.
func (db *DB) RecordInvocation(inv Invocation) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}

	_, err := db.conn.Exec(`
		INSERT INTO invocations (id, role, tier, status, summary, file_count, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, inv.ID, string(inv.Role), string(inv.Tier), inv.Status, inv.Summary,
		inv.FileCount, inv.StartedAt.UTC(), inv.FinishedAt.UTC())
	if err != nil {
		return "", fmt.Errorf("record invocation: %w", err)
	}

	return inv.ID, nil
}

// ListInvocations returns all recorded invocations, newest first.
func (db *DB) ListInvocations() ([]Invocation, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query(`
		SELECT id, role, tier, status, summary, file_count, started_at, finished_at
		FROM invocations
		ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list invocations: %w", err)
	}
	defer rows.Close()

	var invocations []Invocation
	for rows.Next() {
		var inv Invocation
		var role, tier string
		if err := rows.Scan(&inv.ID, &role, &tier, &inv.Status, &inv.Summary,
			&inv.FileCount, &inv.StartedAt, &inv.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan invocation: %w", err)
		}
		inv.Role = models.Role(role)
		inv.Tier = models.Tier(tier)
		invocations = append(invocations, inv)
	}

	return invocations, rows.Err()
}

// LatestInvocation returns the most recent invocation for a role, or nil if
// the role has never run.
func (db *DB) LatestInvocation(role models.Role) (*Invocation, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	row := db.conn.QueryRow(`
		SELECT id, role, tier, status, summary, file_count, started_at, finished_at
		FROM invocations
		WHERE role = ?
		ORDER BY started_at DESC
		LIMIT 1
	`, string(role))

	var inv Invocation
	var roleStr, tier string
	err := row.Scan(&inv.ID, &roleStr, &tier, &inv.Status, &inv.Summary,
		&inv.FileCount, &inv.StartedAt, &inv.FinishedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest invocation: %w", err)
	}
	inv.Role = models.Role(roleStr)
	inv.Tier = models.Tier(tier)

	return &inv, nil
}

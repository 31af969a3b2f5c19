// Package orchestrator sequences role invocations against a project and
// drives the bookkeeping that records their results.
package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/squadhq/squad/internal/capability"
	"github.com/squadhq/squad/internal/complexity"
	"github.com/squadhq/squad/internal/progress"
	"github.com/squadhq/squad/internal/staging"
	"github.com/squadhq/squad/internal/state"
	"github.com/squadhq/squad/pkg/models"
)

// RunRequest carries the inputs for one role invocation.
type RunRequest struct {
	// RequestText is the project description the role works from.
	RequestText string
	// Tier is the resolved complexity tier. When empty or unknown the
	// request text is classified instead.
	Tier models.Tier
	// Hints are optional named inputs for the role, usually lifted from a
	// prior role's downstream_inputs.
	Hints map[string]string
}

// Manager coordinates role runs: it composes instructions, calls the
// capability once per run, and feeds the result to the staging ledger,
// the progress document, and the invocation log.
type Manager struct {
	invoker     capability.Invoker
	ledger      *staging.Ledger
	updater     *progress.Updater
	profiles    complexity.Profiles
	logger      *DebugLogger
	contextsDir string
	recordState bool
	now         func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithLedger overrides the staging ledger.
func WithLedger(l *staging.Ledger) Option {
	return func(m *Manager) { m.ledger = l }
}

// WithUpdater overrides the progress document updater.
func WithUpdater(u *progress.Updater) Option {
	return func(m *Manager) { m.updater = u }
}

// WithProfiles overrides the complexity profile table.
func WithProfiles(p complexity.Profiles) Option {
	return func(m *Manager) { m.profiles = p }
}

// WithLogger sets the debug logger.
func WithLogger(l *DebugLogger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithContextsDir sets the directory holding full per-role context files
// used for COMPLEX projects.
func WithContextsDir(dir string) Option {
	return func(m *Manager) { m.contextsDir = dir }
}

// WithStateRecording toggles the per-project sqlite invocation log.
func WithStateRecording(enabled bool) Option {
	return func(m *Manager) { m.recordState = enabled }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager creates a Manager around a capability invoker.
func NewManager(invoker capability.Invoker, opts ...Option) *Manager {
	m := &Manager{
		invoker:     invoker,
		ledger:      staging.NewLedger(),
		updater:     progress.NewUpdater(),
		profiles:    complexity.DefaultProfiles(),
		logger:      NopLogger(),
		recordState: true,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RunRole invokes the capability once for a role and records the outcome.
// Capability errors are captured as a descriptive error message in the
// returned text, never propagated. Bookkeeping failures are logged and
// swallowed so the response always reaches the caller. The returned error
// covers only invalid arguments.
func (m *Manager) RunRole(ctx context.Context, proj *models.Project, role models.Role, req RunRequest) (string, error) {
	if proj == nil {
		return "", fmt.Errorf("run role: nil project")
	}
	if !role.Valid() {
		return "", fmt.Errorf("run role: unknown role %q", role)
	}

	tier := req.Tier
	if !tier.Valid() {
		tier = complexity.Classify(req.RequestText)
	}
	profile := m.profiles.Get(tier)

	system := roleSystemContext(role, tier, m.contextsDir) + "\n\n" + leanProjectContext(proj.Path)
	instruction := buildInstruction(proj, role, req.RequestText, profile, req.Hints)

	m.logger.Log("running %s for %s (tier %s)", role, proj.Folder, tier)

	started := m.now()
	response, err := m.invoke(ctx, system, instruction)
	finished := m.now()
	if err != nil {
		m.logger.Log("%s capability call failed: %v", role, err)
		response = fmt.Sprintf("An error occurred in the %s agent: %v",
			strings.ToLower(role.DisplayName()), err)
	}

	if err := m.ledger.Record(proj, role, response); err != nil {
		m.logger.Log("staging update for %s failed: %v", role, err)
	}
	if err := m.updater.Update(proj, role, response); err != nil {
		m.logger.Log("progress update for %s failed: %v", role, err)
	}
	m.recordInvocation(proj, role, tier, response, started, finished)

	return response, nil
}

func (m *Manager) invoke(ctx context.Context, system, instruction string) (string, error) {
	if m.invoker == nil {
		return "", fmt.Errorf("no capability configured")
	}
	return m.invoker.Invoke(ctx, system, instruction)
}

// recordInvocation appends one row to the project's invocation log. The log
// is best-effort bookkeeping and never aborts the run.
func (m *Manager) recordInvocation(proj *models.Project, role models.Role, tier models.Tier,
	response string, started, finished time.Time) {

	if !m.recordState {
		return
	}

	inv := state.Invocation{
		Role:       role,
		Tier:       tier,
		Status:     "error",
		StartedAt:  started,
		FinishedAt: finished,
	}
	if result, err := models.ParseAgentResult(response); err == nil {
		inv.Status = result.Status
		inv.Summary = result.Summary
		inv.FileCount = len(result.GeneratedFiles)
	}

	db, err := state.OpenProject(proj.Path)
	if err != nil {
		m.logger.Log("open invocation log: %v", err)
		return
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		m.logger.Log("migrate invocation log: %v", err)
		return
	}
	if _, err := db.RecordInvocation(inv); err != nil {
		m.logger.Log("record invocation: %v", err)
	}
}

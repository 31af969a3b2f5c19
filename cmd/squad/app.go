package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/fatih/color"

	"github.com/squadhq/squad/internal/capability"
	"github.com/squadhq/squad/internal/complexity"
	"github.com/squadhq/squad/internal/config"
	"github.com/squadhq/squad/internal/orchestrator"
	"github.com/squadhq/squad/internal/project"
	"github.com/squadhq/squad/pkg/models"
)

// app bundles the wired-up pieces every command needs.
type app struct {
	cfg     *config.Config
	store   *project.Store
	invoker capability.Invoker
	manager *orchestrator.Manager
}

// newApp loads configuration and wires the store and orchestrator. A missing
// API key is not fatal here: project creation falls back to local naming and
// role runs report the capability error in their response text.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var invoker capability.Invoker
	client, err := capability.NewClient(capability.ClientConfig{
		Model:         anthropic.Model(cfg.Anthropic.Model),
		APIKey:        cfg.Anthropic.APIKey,
		MaxTokens:     int64(cfg.Anthropic.MaxTokens),
		UseAWSBedrock: cfg.Bedrock.Enabled,
		AWSRegion:     cfg.Bedrock.Region,
		AWSProfile:    cfg.Bedrock.Profile,
	})
	if err == nil {
		invoker = client
	}

	profiles := complexity.DefaultProfiles()
	if cfg.Projects.ProfilesFile != "" {
		if loaded, err := complexity.LoadProfiles(cfg.Projects.ProfilesFile); err == nil {
			profiles = loaded
		}
	}

	manager := orchestrator.NewManager(invoker,
		orchestrator.WithProfiles(profiles),
		orchestrator.WithContextsDir(cfg.Projects.ContextsDir),
	)

	return &app{
		cfg:     cfg,
		store:   project.NewStore(cfg.Projects.BaseDir, invoker),
		invoker: invoker,
		manager: manager,
	}, nil
}

// createProject materializes a new project and reports where it landed.
func (a *app) createProject(ctx context.Context, request string) (*models.Project, error) {
	fmt.Println("\n🏗️  Creating new project...")

	proj, err := a.store.Create(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	fmt.Printf("%s Project created: %s\n", color.GreenString("✓"), proj.Folder)
	fmt.Printf("📁 Location: %s\n", proj.Path)
	return proj, nil
}

// runWorkflow runs every role in workflow order against the project,
// threading each role's downstream hints into the later roles.
func (a *app) runWorkflow(ctx context.Context, proj *models.Project, request string) {
	tier := complexity.Classify(request)
	fmt.Printf("\n🧭 Complexity: %s\n", tier)

	hints := make(map[string]map[string]string)

	for _, role := range models.Roles {
		a.runOne(ctx, proj, role, request, tier, hints[string(role)], hints)
	}

	fmt.Printf("\n%s Workflow finished for %s\n", color.GreenString("✓"), proj.Folder)
}

// runOne executes a single role and harvests its downstream hints.
func (a *app) runOne(ctx context.Context, proj *models.Project, role models.Role,
	request string, tier models.Tier, roleHints map[string]string,
	hints map[string]map[string]string) {

	fmt.Printf("\n🤖 %s working...\n", role.DisplayName())

	response, err := a.manager.RunRole(ctx, proj, role, orchestrator.RunRequest{
		RequestText: request,
		Tier:        tier,
		Hints:       roleHints,
	})
	if err != nil {
		fmt.Printf("%s %s: %v\n", color.RedString("✗"), role.DisplayName(), err)
		return
	}

	result, perr := models.ParseAgentResult(response)
	if perr != nil {
		fmt.Printf("%s %s finished (unstructured response)\n", color.YellowString("⚠"), role.DisplayName())
		return
	}

	for downstream, named := range result.DownstreamInputs {
		hints[downstream] = named
	}

	glyph := color.GreenString("✓")
	if !result.Completed() {
		glyph = color.YellowString("⚠")
	}
	fmt.Printf("%s %s: %s (%d files)\n", glyph, role.DisplayName(),
		strings.ToUpper(result.Status), len(result.GeneratedFiles))
}

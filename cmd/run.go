package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rlemos/provinha/internal/app"
	"github.com/rlemos/provinha/internal/config"
	"github.com/rlemos/provinha/internal/content"
	"github.com/rlemos/provinha/internal/effects"
	"github.com/rlemos/provinha/internal/grading"
	"github.com/rlemos/provinha/internal/llm"
	"github.com/rlemos/provinha/internal/screens/player"
	"github.com/rlemos/provinha/internal/store"
	"github.com/spf13/cobra"
)

// runApp loads the content file, opens the store, builds the grading
// collaborator and launches the TUI.
func runApp(cmd *cobra.Command, contentPath string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}

	item, err := content.LoadFile(resolveContentPath(cfg, contentPath))
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps := player.Deps{
		Events: st.EventRepo(),
		Learner: grading.Submission{
			Grade: cfg.Learner.Grade,
			Age:   cfg.Learner.Age,
		},
		Seed: cfg.Player.Seed,
	}
	if cfg.EffectsEnabled() {
		deps.Effects = effects.Sparkle{}
	}

	// The grader is optional; without a provider, written questions
	// show a retryable correction error instead.
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Written answers cannot be corrected this run.")
	} else {
		deps.Grader = grading.NewService(provider, grading.DefaultConfig())
	}

	return app.Run(app.Options{Item: item, Deps: deps})
}

// resolveContentPath lets bare names resolve against the configured
// content directory. An existing path always wins.
func resolveContentPath(cfg config.Config, arg string) string {
	if _, err := os.Stat(arg); err == nil || cfg.Content.Dir == "" {
		return arg
	}
	p := filepath.Join(cfg.Content.Dir, arg)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	if filepath.Ext(arg) == "" {
		withExt := p + ".json"
		if _, err := os.Stat(withExt); err == nil {
			return withExt
		}
	}
	return arg
}

package commands

import (
	"context"
	"os"

	"revu/internal/tui"
	"revu/internal/ui"
)

// RunTUI launches the interactive review dashboard.
func RunTUI() {
	deps, err := buildDeps(context.Background())
	if err != nil {
		ui.ShowError("Failed to start", err)
		os.Exit(1)
	}

	err = tui.Run(tui.Deps{
		Store:  deps.Store,
		Engine: deps.Engine,
		Collab: deps.Collab,
		Actor:  deps.Actor,
		Scope:  deps.Cfg.Scope(),
	})
	if err != nil {
		ui.ShowError("TUI error", err)
		os.Exit(1)
	}
}

package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"revu/internal/config"
	"revu/internal/httpserver"
	"revu/internal/monitor"
	"revu/internal/ui"
)

// RunServe starts the HTTP API daemon plus the overdue monitor. It blocks
// until interrupted.
func RunServe(addr string) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	deps, err := buildDeps(ctx)
	if err != nil {
		ui.ShowError("Failed to start", err)
		os.Exit(1)
	}
	cfg := deps.Cfg

	if len(cfg.ServeTokens) == 0 {
		token, err := generateToken()
		if err != nil {
			ui.ShowError("Failed to generate token", err)
			os.Exit(1)
		}
		cfg.ServeTokens = []string{token}
		if saveErr := config.Save(cfg); saveErr != nil {
			fmt.Fprintf(os.Stderr, "[warn] could not save generated token: %v\n", saveErr)
		}
		fmt.Printf("Generated token: %s\n", token)
		fmt.Println("(saved to ~/.revu/config.json, use this token in API clients)")
	}

	if addr == "" {
		addr = cfg.ServeAddr
	}

	mon := monitor.New(deps.Store, cfg.Scope(), deps.Notifier, cfg.MonitorCron)
	if err := mon.Start(); err != nil {
		ui.ShowError("Failed to start overdue monitor", err)
		os.Exit(1)
	}
	defer mon.Stop()

	server := httpserver.NewHTTPServer(cfg.ServeTokens, Version, deps.Store, deps.Engine, deps.Collab, deps.Registry)
	go func() {
		if err := server.ListenAndServe(addr); err != nil {
			fmt.Fprintf(os.Stderr, "[http] error: %v\n", err)
			cancel()
		}
	}()

	<-ctx.Done()
	fmt.Println("\nShutting down...")
}

// generateToken returns a random 32-character hex token.
func generateToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

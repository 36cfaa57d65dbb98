package commands

import (
	"context"
	"fmt"
	"log"
	"time"

	"revu/internal/approval"
	"revu/internal/config"
	"revu/internal/notify"
	"revu/internal/remoteapi"
	"revu/internal/team"
)

// Version information, set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Deps bundles everything a command needs to talk to the review backend.
type Deps struct {
	Cfg      *config.Config
	Remote   *remoteapi.Client
	Store    *approval.Store
	Engine   *approval.Engine
	Collab   *approval.Collab
	Registry *team.Registry
	Actor    team.Member
	Notifier notify.Notifier
}

// buildDeps loads config, connects to the dashboard backend, and loads the
// workflow working set. Every command that touches workflows goes through
// this single setup path.
func buildDeps(ctx context.Context) (*Deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := remoteapi.New(cfg.RemoteURL, cfg.RemoteToken)

	store := approval.NewStore(client)
	if err := store.Load(ctx, cfg.Scope()); err != nil {
		return nil, err
	}

	members, err := client.GetMembers(ctx, cfg.DefaultOrg)
	if err != nil {
		// Member profiles only enrich attribution; commands still work
		// with IDs when the lookup fails.
		log.Printf("[commands] member fetch failed: %v", err)
		members = nil
	}
	registry := team.NewRegistry(members)

	engine := approval.NewEngine(store, client)
	collab := approval.NewCollab(store, client, registry)

	actor := registry.Resolve(cfg.ActorID)
	if cfg.ActorID == "" {
		actor = team.Member{ID: "local", Role: team.RoleAdmin}
	}

	notifier := buildNotifier(cfg)
	engine.OnTransition(func(ev approval.TransitionEvent) {
		title := fmt.Sprintf("Workflow %s %s", ev.Workflow.ID, ev.Action)
		msg := fmt.Sprintf("%s by %s", truncateNote(ev.Workflow.Content, 120), ev.Actor.DisplayName())
		if err := notifier.Send(notify.Notification{Title: title, Message: msg}); err != nil {
			log.Printf("[commands] transition notify failed: %v", err)
		}
	})

	return &Deps{
		Cfg:      cfg,
		Remote:   client,
		Store:    store,
		Engine:   engine,
		Collab:   collab,
		Registry: registry,
		Actor:    actor,
		Notifier: notifier,
	}, nil
}

// buildNotifier picks the configured webhook or a no-op.
func buildNotifier(cfg *config.Config) notify.Notifier {
	if cfg.Webhook.URL == "" {
		return notify.Discard{}
	}
	format := cfg.Webhook.Format
	if format == "" {
		format = "slack"
	}
	return notify.NewWebhookNotifier(cfg.Webhook.URL, format, cfg.Webhook.Extra)
}

func truncateNote(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// commandContext is the default timeout wrapper for one-shot commands.
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

package commands

import (
	"fmt"
	"strings"

	"revu/internal/config"
	"revu/internal/output"
	"revu/internal/ui"
)

// configKeys maps settable keys onto config fields.
var configKeys = []string{
	"remote-url", "remote-token", "org", "company", "product",
	"actor", "serve-addr", "monitor-cron", "webhook-url", "webhook-format",
}

// RunConfigSet sets one configuration value.
func RunConfigSet(key, value string) {
	cfg, err := config.Load()
	if err != nil {
		output.PrintError(err)
		return
	}

	switch key {
	case "remote-url":
		cfg.RemoteURL = strings.TrimRight(value, "/")
	case "remote-token":
		cfg.RemoteToken = value
	case "org":
		cfg.DefaultOrg = value
	case "company":
		cfg.DefaultCompany = value
	case "product":
		cfg.DefaultProduct = value
	case "actor":
		cfg.ActorID = value
	case "serve-addr":
		cfg.ServeAddr = value
	case "monitor-cron":
		cfg.MonitorCron = value
	case "webhook-url":
		cfg.Webhook.URL = value
	case "webhook-format":
		cfg.Webhook.Format = value
	default:
		output.PrintError(fmt.Errorf("unknown key %q (valid: %s)", key, strings.Join(configKeys, ", ")))
		return
	}

	if err := config.Save(cfg); err != nil {
		output.PrintError(err)
		return
	}
	output.Print(map[string]string{key: value}, func() {
		ui.ShowSuccess("Set %s", key)
	})
}

// RunConfigGet displays the current configuration with the token redacted.
func RunConfigGet() {
	cfg, err := config.Load()
	if err != nil {
		output.PrintError(err)
		return
	}

	shown := *cfg
	if shown.RemoteToken != "" {
		shown.RemoteToken = "<redacted>"
	}
	if len(shown.ServeTokens) > 0 {
		shown.ServeTokens = []string{"<redacted>"}
	}

	output.Print(shown, func() {
		ui.ShowHeader("Configuration")
		fmt.Printf("  remote-url:     %s\n", shown.RemoteURL)
		fmt.Printf("  remote-token:   %s\n", shown.RemoteToken)
		fmt.Printf("  org:            %s\n", shown.DefaultOrg)
		fmt.Printf("  company:        %s\n", shown.DefaultCompany)
		fmt.Printf("  product:        %s\n", shown.DefaultProduct)
		fmt.Printf("  actor:          %s\n", shown.ActorID)
		fmt.Printf("  serve-addr:     %s\n", shown.ServeAddr)
		fmt.Printf("  monitor-cron:   %s\n", shown.MonitorCron)
		fmt.Printf("  webhook-url:    %s\n", shown.Webhook.URL)
		fmt.Printf("  webhook-format: %s\n", shown.Webhook.Format)
		fmt.Println()
	})
}

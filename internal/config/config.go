package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"revu/internal/approval"
)

// Config holds the dashboard connection and local daemon settings.
type Config struct {
	RemoteURL   string `json:"remoteUrl"`
	RemoteToken string `json:"remoteToken,omitempty"`

	DefaultOrg     string `json:"defaultOrg,omitempty"`
	DefaultCompany string `json:"defaultCompany,omitempty"`
	DefaultProduct string `json:"defaultProduct,omitempty"`

	// ActorID identifies the local reviewer for attribution.
	ActorID string `json:"actorId,omitempty"`

	// ServeTokens authenticate clients of `revu serve`.
	ServeTokens []string `json:"serveTokens,omitempty"`
	ServeAddr   string   `json:"serveAddr,omitempty"`

	Webhook WebhookConfig `json:"webhook,omitempty"`

	// MonitorCron drives the overdue monitor while serving (default @every 5m).
	MonitorCron string `json:"monitorCron,omitempty"`
}

// WebhookConfig configures transition and overdue notifications.
type WebhookConfig struct {
	URL    string            `json:"url,omitempty"`
	Format string            `json:"format,omitempty"` // "slack", "feishu", "dingtalk", "custom"
	Extra  map[string]string `json:"extra,omitempty"`
}

// Scope builds the default workflow scope from the config.
func (c *Config) Scope() approval.Scope {
	return approval.Scope{
		OrgID:     c.DefaultOrg,
		CompanyID: c.DefaultCompany,
		ProductID: c.DefaultProduct,
	}
}

// configPathFunc returns the config file path (~/.revu/config.json).
// It's a variable so tests can override it.
var configPathFunc = func() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".revu", "config.json")
}

// Load reads the config file. A missing file yields defaults, not an error.
func Load() (*Config, error) {
	cfg := &Config{ServeAddr: "127.0.0.1:7843", MonitorCron: "@every 5m"}

	data, err := os.ReadFile(configPathFunc())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.ServeAddr == "" {
		cfg.ServeAddr = "127.0.0.1:7843"
	}
	if cfg.MonitorCron == "" {
		cfg.MonitorCron = "@every 5m"
	}
	return cfg, nil
}

// Save writes the config file, creating ~/.revu/ if needed.
func Save(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	path := configPathFunc()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields required to reach the dashboard backend.
func (c *Config) Validate() error {
	if c.RemoteURL == "" {
		return fmt.Errorf("remoteUrl is not set (run `revu config set-remote <url>`)")
	}
	if c.DefaultOrg == "" {
		return fmt.Errorf("defaultOrg is not set (run `revu config set-org <id>`)")
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func overrideConfigPath(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	orig := configPathFunc
	configPathFunc = func() string { return path }
	t.Cleanup(func() { configPathFunc = orig })
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	overrideConfigPath(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ServeAddr != "127.0.0.1:7843" {
		t.Errorf("ServeAddr = %s", cfg.ServeAddr)
	}
	if cfg.MonitorCron != "@every 5m" {
		t.Errorf("MonitorCron = %s", cfg.MonitorCron)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	overrideConfigPath(t)

	want := &Config{
		RemoteURL:   "https://api.dash.example",
		RemoteToken: "tok",
		DefaultOrg:  "org1",
		ActorID:     "u1",
		ServeTokens: []string{"s1"},
		ServeAddr:   "127.0.0.1:9000",
		MonitorCron: "@every 1m",
	}
	if err := Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.RemoteURL != want.RemoteURL || got.DefaultOrg != want.DefaultOrg || got.ServeAddr != want.ServeAddr {
		t.Errorf("round trip = %+v", got)
	}

	scope := got.Scope()
	if scope.OrgID != "org1" || scope.CompanyID != "" {
		t.Errorf("scope = %+v", scope)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := overrideConfigPath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("empty config should not validate")
	}
	cfg.RemoteURL = "https://api.dash.example"
	if err := cfg.Validate(); err == nil {
		t.Error("config without org should not validate")
	}
	cfg.DefaultOrg = "org1"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}

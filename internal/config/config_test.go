package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Server.Port)
	}
	if cfg.Forum.PreviewLength != 80 {
		t.Errorf("expected default preview length 80, got %d", cfg.Forum.PreviewLength)
	}
	if cfg.API.BaseURL == "" {
		t.Error("expected a default API base URL")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".mintern.yml")
	content := `server:
  port: 4000
  site_name: Campus Forum
api:
  base_url: https://forum.example.edu
  timeout_seconds: 5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 4000 {
		t.Errorf("expected port 4000, got %d", cfg.Server.Port)
	}
	if cfg.Server.SiteName != "Campus Forum" {
		t.Errorf("expected site name 'Campus Forum', got %q", cfg.Server.SiteName)
	}
	if cfg.API.BaseURL != "https://forum.example.edu" {
		t.Errorf("unexpected base URL %q", cfg.API.BaseURL)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Forum.PreviewLength != 80 {
		t.Errorf("expected preview length default 80, got %d", cfg.Forum.PreviewLength)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("MINTERN_SERVER_PORT", "9999")
	t.Setenv("MINTERN_API_BASE_URL", "http://api.internal:8081")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("expected env-overridden port 9999, got %d", cfg.Server.Port)
	}
	if cfg.API.BaseURL != "http://api.internal:8081" {
		t.Errorf("expected env-overridden base URL, got %q", cfg.API.BaseURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"zero port", func(c *Config) { c.Server.Port = 0 }, true},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, true},
		{"missing base url", func(c *Config) { c.API.BaseURL = "" }, true},
		{"relative base url", func(c *Config) { c.API.BaseURL = "forum.example.edu" }, true},
		{"negative timeout", func(c *Config) { c.API.TimeoutSeconds = -1 }, true},
		{"zero preview length", func(c *Config) { c.Forum.PreviewLength = 0 }, true},
		{"missing export dir", func(c *Config) { c.Export.OutputDir = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".mintern.yml")

	cfg := DefaultConfig()
	cfg.Server.Port = 8123
	cfg.API.BaseURL = "https://forum.example.edu"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Server.Port != 8123 {
		t.Errorf("expected saved port 8123, got %d", loaded.Server.Port)
	}
	if loaded.API.BaseURL != "https://forum.example.edu" {
		t.Errorf("unexpected base URL %q", loaded.API.BaseURL)
	}
}

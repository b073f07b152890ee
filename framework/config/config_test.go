package config_test

import (
	"testing"

	"github.com/km-arc/go-components/framework/config"
)

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")

	cfg := config.Load("testdata/missing.env")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"App.Name", cfg.App.Name, "GoComponents"},
		{"App.Env", cfg.App.Env, "local"},
		{"HTTP.Port", cfg.HTTP.Port, "8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("APP_NAME", "MyApp")
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9000")

	cfg := config.Load("testdata/missing.env")

	if cfg.App.Name != "MyApp" {
		t.Errorf("App.Name: got %q want %q", cfg.App.Name, "MyApp")
	}
	if cfg.App.Env != "production" {
		t.Errorf("App.Env: got %q want %q", cfg.App.Env, "production")
	}
	if cfg.HTTP.Port != "9000" {
		t.Errorf("HTTP.Port: got %q want %q", cfg.HTTP.Port, "9000")
	}
}

func TestAddr(t *testing.T) {
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "8081")

	cfg := config.Load("testdata/missing.env")
	if got := cfg.Addr(); got != "127.0.0.1:8081" {
		t.Errorf("Addr(): got %q want %q", got, "127.0.0.1:8081")
	}
}

// ── Raw getters ──────────────────────────────────────────────────────────────

func TestGetInt(t *testing.T) {
	t.Setenv("WORKERS", "12")
	if got := config.GetInt("WORKERS", 4); got != 12 {
		t.Errorf("GetInt: got %d want 12", got)
	}
	if got := config.GetInt("MISSING_INT", 4); got != 4 {
		t.Errorf("GetInt default: got %d want 4", got)
	}
	t.Setenv("WORKERS", "not-a-number")
	if got := config.GetInt("WORKERS", 4); got != 4 {
		t.Errorf("GetInt malformed: got %d want 4", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("FLAG", "true")
	if !config.GetBool("FLAG", false) {
		t.Error("GetBool: got false want true")
	}
	if config.GetBool("MISSING_FLAG", false) {
		t.Error("GetBool default: got true want false")
	}
}

package tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/config"
	serr "github.com/IvanChernomyrdin/go-users-items-api/internal/shared/errors"
)

func TestExpandEnvStrict_ReplacesExistingEnv(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")

	in := `host: "${SERVER_HOST}"`
	out := config.ExpandEnvStrict(in)

	if out != `host: "127.0.0.1"` {
		t.Fatalf("expected env to be expanded, got %q", out)
	}
}

func TestExpandEnvStrict_LeavesUnknownEnvAsIs(t *testing.T) {
	in := `host: "${MISSING_ENV}"`
	out := config.ExpandEnvStrict(in)

	if out != in {
		t.Fatalf("expected unknown env placeholder to remain unchanged, got %q", out)
	}
}

func TestApplyDefaults_SetsExpectedDefaults(t *testing.T) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	if cfg.Env != "dev" {
		t.Fatalf("expected Env=dev, got %q", cfg.Env)
	}
	if cfg.Server.Port != 3000 {
		t.Fatalf("expected Server.Port=3000, got %d", cfg.Server.Port)
	}
	if cfg.Docs.Path != "/api-docs" {
		t.Fatalf("expected Docs.Path=/api-docs, got %q", cfg.Docs.Path)
	}
	if cfg.Items.DefaultCategory != "uncategorized" {
		t.Fatalf("expected Items.DefaultCategory=uncategorized, got %q", cfg.Items.DefaultCategory)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("expected Log.Level=info, got %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "console" {
		t.Fatalf("expected Log.Format=console, got %q", cfg.Log.Format)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Fatalf("expected ShutdownTimeout=5s, got %s", cfg.Server.ShutdownTimeout)
	}
}

func TestValidate_PortRange(t *testing.T) {
	cfg := minimalValidConfig()
	cfg.Server.Port = 70000

	if err := cfg.Validate(); err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}
}

func TestValidate_TLSRequiresCertAndKey(t *testing.T) {
	cfg := minimalValidConfig()
	cfg.TLS.Enabled = true

	if err := cfg.Validate(); err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}
}

func TestValidate_RateLimitNeedsRPSAndBurst(t *testing.T) {
	cfg := minimalValidConfig()
	cfg.Security.RateLimit.Enabled = true

	if err := cfg.Validate(); err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}

	cfg.Security.RateLimit.RPS = 10
	cfg.Security.RateLimit.Burst = 20
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidate_DocsPathShape(t *testing.T) {
	for _, p := range []string{"api-docs", "/api-docs/"} {
		cfg := minimalValidConfig()
		cfg.Docs.Path = p
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected error for docs.path=%q", p)
		}
	}
}

func TestApplyEnvOverrides_ServerPort(t *testing.T) {
	cfg := minimalValidConfig()

	t.Setenv("SERVER_PORT", "9090")
	cfg.ApplyEnvOverrides()

	if cfg.Server.Port != 9090 {
		t.Fatalf("expected port=9090, got %d", cfg.Server.Port)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != ":3000" {
		t.Fatalf("expected addr :3000, got %q", cfg.Addr())
	}
}

func TestLoad_ExpandsEnv_AppliesDefaults_AndValidates(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")

	yml := `
env: prod
server:
  host: "${SERVER_HOST}"
  port: 0
  read_timeout: 3s
items:
  default_category: misc
log:
  format: json
`
	path := filepath.Join(t.TempDir(), "server.yaml")
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr() != "127.0.0.1:3000" {
		t.Fatalf("expected addr 127.0.0.1:3000, got %q", cfg.Addr())
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Fatalf("expected read_timeout=3s, got %s", cfg.Server.ReadTimeout)
	}
	if cfg.Items.DefaultCategory != "misc" {
		t.Fatalf("expected default_category=misc, got %q", cfg.Items.DefaultCategory)
	}
	if opts := cfg.LoggerOptions(); opts.Format != "json" || opts.Level != "info" {
		t.Fatalf("unexpected logger options: %+v", opts)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	if err := os.WriteFile(path, []byte("server: [oops"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "yaml") {
		t.Fatalf("expected yaml error, got %v", err)
	}
}

func minimalValidConfig() *config.Config {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	return cfg
}

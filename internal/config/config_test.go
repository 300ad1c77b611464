package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadUsesDefaultsAndYAMLOverrides(t *testing.T) {
	clearConfigEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	yaml := `
http:
  addr: ":9090"
postgres:
  migrate: false
rencontre:
  page_size: 15
  feature_cache_ttl: 90s
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("unexpected http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Postgres.Migrate {
		t.Fatalf("postgres.migrate override should be false")
	}
	if cfg.Rencontre.PageSize != 15 {
		t.Fatalf("unexpected page size: %d", cfg.Rencontre.PageSize)
	}
	if cfg.Rencontre.FeatureCacheTTL != 90*time.Second {
		t.Fatalf("unexpected feature cache ttl: %s", cfg.Rencontre.FeatureCacheTTL)
	}

	if cfg.Rencontre.MaxPageSize != 100 {
		t.Fatalf("max_page_size default should stay 100")
	}
	if cfg.Auth.JWTAccessTTL != 15*time.Minute {
		t.Fatalf("jwt ttl default should stay 15m")
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config with missing file: %v", err)
	}

	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("unexpected default http addr: %s", cfg.HTTP.Addr)
	}
	if !cfg.Postgres.Migrate {
		t.Fatalf("postgres.migrate should default to true")
	}
	if cfg.Rencontre.PageSize != 20 || cfg.Rencontre.MaxPageSize != 100 {
		t.Fatalf("unexpected page size defaults: %d/%d", cfg.Rencontre.PageSize, cfg.Rencontre.MaxPageSize)
	}
	if cfg.Rencontre.NotifyTimeout != 2*time.Second {
		t.Fatalf("unexpected notify timeout default: %s", cfg.Rencontre.NotifyTimeout)
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("RENCONTRE_PAGE_SIZE", "7")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTP.Addr != ":7070" {
		t.Fatalf("env override for http addr not applied: %s", cfg.HTTP.Addr)
	}
	if cfg.Auth.JWTSecret != "env-secret" {
		t.Fatalf("env override for jwt secret not applied")
	}
	if cfg.Rencontre.PageSize != 7 {
		t.Fatalf("env override for page size not applied: %d", cfg.Rencontre.PageSize)
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV",
		"HTTP_ADDR",
		"HTTP_READ_TIMEOUT",
		"HTTP_WRITE_TIMEOUT",
		"HTTP_IDLE_TIMEOUT",
		"LOG_LEVEL",
		"POSTGRES_DSN",
		"POSTGRES_MIGRATE",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"JWT_SECRET",
		"JWT_ACCESS_TTL",
		"RENCONTRE_PAGE_SIZE",
		"RENCONTRE_MAX_PAGE_SIZE",
		"RENCONTRE_MATCH_PAGE_SIZE",
		"RENCONTRE_FEATURE_CACHE_TTL",
		"RENCONTRE_NOTIFY_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

// cliparse/cliparse_test.go
package cliparse

import (
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("SALT", "test-salt")
	t.Setenv("ADMIN_SALT", "test-admin-salt")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.RedisAddr != "redis:6380" {
		t.Errorf("expected redis addr from env, got %s", cfg.RedisAddr)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SALT", "env-salt")
	t.Setenv("ADMIN_SALT", "env-admin-salt")

	cfg, err := ParseFlags([]string{"-p", "8080", "-salt", "cli-salt", "-admin-salt", "cli-admin"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.Salt != "cli-salt" {
		t.Errorf("CLI should override env: expected cli-salt, got %s", cfg.Salt)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("SALT", "test-salt")
	t.Setenv("ADMIN_SALT", "test-admin-salt")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("expected default redis addr, got %s", cfg.RedisAddr)
	}
	if cfg.RateRPS != 100 {
		t.Errorf("expected default rate 100, got %v", cfg.RateRPS)
	}
	if cfg.RateBurst != 200 {
		t.Errorf("expected default burst 200, got %d", cfg.RateBurst)
	}
}

func TestParseFlags_MissingSalt(t *testing.T) {
	t.Setenv("SALT", "")
	t.Setenv("ADMIN_SALT", "")

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error when SALT is missing")
	}

	t.Setenv("SALT", "test-salt")
	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error when ADMIN_SALT is missing")
	}
}

func TestParseFlags_InvalidPortEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("SALT", "test-salt")
	t.Setenv("ADMIN_SALT", "test-admin-salt")

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for non-numeric PORT")
	}
}

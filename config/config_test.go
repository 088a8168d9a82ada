package config

import (
	"os"
	"strings"
	"testing"
)

// setValidEnv sets the minimum environment for a successful load. t.Setenv
// also registers restoration of any prior values.
func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "todo")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "tododb")
}

// unsetEnv removes a variable for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "") // register restore of the original value
	os.Unsetenv(key)
}

func TestLoadConfigDefaults(t *testing.T) {
	setValidEnv(t)
	unsetEnv(t, "DB_HOST")
	unsetEnv(t, "DB_PORT")
	unsetEnv(t, "DB_POOL_SIZE")
	unsetEnv(t, "PORT")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.DB.Host != "localhost" || cfg.DB.Port != 5432 {
		t.Errorf("db defaults = %s:%d, want localhost:5432", cfg.DB.Host, cfg.DB.Port)
	}
	if cfg.DB.MaxSize != 10 {
		t.Errorf("pool size default = %d, want 10", cfg.DB.MaxSize)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("server port default = %q, want 8080", cfg.Server.Port)
	}
}

func TestLoadConfigMissingRequired(t *testing.T) {
	setValidEnv(t)
	unsetEnv(t, "DB_USER")
	unsetEnv(t, "DB_NAME")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("LoadConfig succeeded with required variables missing")
	}
	// Both problems are reported in one aggregated error.
	if !strings.Contains(err.Error(), "DB_USER") || !strings.Contains(err.Error(), "DB_NAME") {
		t.Errorf("aggregated error does not name both missing variables: %v", err)
	}
}

func TestLoadConfigEmptyPassword(t *testing.T) {
	setValidEnv(t)
	t.Setenv("DB_PASSWORD", "")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("LoadConfig accepted an empty DB_PASSWORD")
	}
	if !strings.Contains(err.Error(), "DB_PASSWORD") {
		t.Errorf("error does not name DB_PASSWORD: %v", err)
	}
}

func TestLoadConfigBadPort(t *testing.T) {
	setValidEnv(t)
	t.Setenv("DB_PORT", "not-a-number")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("LoadConfig accepted a non-numeric DB_PORT")
	}
}

func TestLoadConfigPoolSizeClamping(t *testing.T) {
	setValidEnv(t)
	t.Setenv("DB_POOL_SIZE", "500")

	// Clamping is reported as a configuration error rather than silently
	// accepted.
	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig accepted an out-of-range DB_POOL_SIZE without error")
	}
}

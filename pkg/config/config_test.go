package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}
	if cfg.Backend.BaseURL != "http://backend:8000" {
		t.Fatalf("unexpected backend url %q", cfg.Backend.BaseURL)
	}
	if cfg.Payments.ForwardBaseURL != "http://127.0.0.1:8081" {
		t.Fatalf("expected forward url to default to the local port, got %q", cfg.Payments.ForwardBaseURL)
	}
	if cfg.Snapshot.Backend != SnapshotBackendMemory {
		t.Fatalf("expected memory snapshot backend, got %q", cfg.Snapshot.Backend)
	}
	if cfg.Session.CookieName != "ms_sid" || cfg.Jobs.Interval != 15*time.Minute || !cfg.Jobs.Enabled {
		t.Fatalf("unexpected session/housekeeping defaults %+v %+v", cfg.Session, cfg.Jobs)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsUnknownSnapshotBackend(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvSnapshotBackend, "etcd")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown snapshot backend to fail")
	}
}

func TestLoad_DBBackendBuildsDSNFromLegacyVars(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvSnapshotBackend, SnapshotBackendDB)
	t.Setenv(EnvDBHost, "db.local")
	t.Setenv(EnvDBUser, "shop")
	t.Setenv(EnvDBName, "modeststyle")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	want := "postgres://shop@db.local:5432/modeststyle?sslmode=disable"
	if cfg.DB.DSN != want {
		t.Fatalf("expected dsn %q got %q", want, cfg.DB.DSN)
	}
}

func TestLoad_DBBackendRequiresConnectionInfo(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvSnapshotBackend, SnapshotBackendDB)

	if _, err := Load(); err == nil {
		t.Fatal("expected missing db settings to fail")
	}
}

func TestLoad_RedisBackendRequiresRedis(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvSnapshotBackend, " Redis ")

	if _, err := Load(); err == nil {
		t.Fatal("expected redis backend without an endpoint to fail")
	}

	t.Setenv(EnvRedisAddr, "localhost:6379")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Snapshot.Normalized() != SnapshotBackendRedis {
		t.Fatalf("expected redis backend, got %q", cfg.Snapshot.Normalized())
	}
}

func TestCMSConfigIsConfigured(t *testing.T) {
	cases := map[string]bool{
		"":               false,
		"your_project":   false,
		"Abc123":         false,
		"abc123":         true,
		"modest-style-1": true,
	}
	for id, want := range cases {
		if got := (CMSConfig{ProjectID: id}).IsConfigured(); got != want {
			t.Fatalf("project %q: expected %v got %v", id, want, got)
		}
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvJWTSecret, "secret")
	t.Setenv(EnvJWTIssuer, "modeststyle")
	t.Setenv(EnvAPIURL, "http://backend:8000")
	unsetEnv(t, EnvForwardURL, EnvSnapshotBackend, EnvRedisURL, EnvRedisAddr, EnvDBDSN, EnvDBDriver, EnvDBHost, EnvDBUser, EnvDBName)
}

// unsetEnv clears keys for the test while restoring them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
}

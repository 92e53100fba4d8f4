// internal/config/config_test.go
package config

import (
	"testing"
)

func TestLoadRequiresFDCKey(t *testing.T) {
	t.Setenv("FDC_KEY", "")
	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded without FDC_KEY")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FDC_KEY", "test-key")
	t.Setenv("DB_PATH", "")
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")

	env, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if env.FDCKey != "test-key" {
		t.Errorf("FDCKey = %q, want test-key", env.FDCKey)
	}
	if env.DBPath != "/data/nutrack.db" {
		t.Errorf("DBPath = %q, want default", env.DBPath)
	}
	if env.Host != "0.0.0.0" || env.Port != 8012 {
		t.Errorf("addr = %s:%d, want 0.0.0.0:8012", env.Host, env.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FDC_KEY", "test-key")
	t.Setenv("DB_PATH", "/tmp/foods.db")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")

	env, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if env.DBPath != "/tmp/foods.db" || env.Host != "127.0.0.1" || env.Port != 9000 {
		t.Errorf("unexpected environment: %+v", env)
	}
}

func TestLoadBadPort(t *testing.T) {
	t.Setenv("FDC_KEY", "test-key")
	t.Setenv("PORT", "not-a-port")
	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded with non-integer PORT")
	}
}

package config

import (
	"path/filepath"
	"testing"
)

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load = %+v, want defaults", cfg)
	}
	if Exists() {
		t.Fatal("Exists() = true with an empty config dir")
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DBPath = "/tmp/ramadan.db"
	cfg.Appearance.Theme = "tokyo-night"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("Load = %+v, want %+v", got, cfg)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}
}

func TestGetDBPathPrecedence(t *testing.T) {
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)
	t.Setenv(EnvDBPath, "")

	cfg := DefaultConfig()
	if got, want := GetDBPath(cfg), filepath.Join(data, "ramtrack", "tracker.db"); got != want {
		t.Fatalf("default GetDBPath = %q, want %q", got, want)
	}

	cfg.General.DBPath = "/srv/from-config.db"
	if got := GetDBPath(cfg); got != "/srv/from-config.db" {
		t.Fatalf("config GetDBPath = %q", got)
	}

	t.Setenv(EnvDBPath, "/srv/from-env.db")
	if got := GetDBPath(cfg); got != "/srv/from-env.db" {
		t.Fatalf("env GetDBPath = %q", got)
	}
}

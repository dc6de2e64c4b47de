package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "BANKDASH_DATA", "BANKDASH_DELIMITER", "BANKDASH_TITLE", "LOG_LEVEL", "BANKDASH_DEBUG"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8050 {
		t.Errorf("Port = %d, want 8050", cfg.Port)
	}
	if cfg.DataPath != "bank-full.csv" {
		t.Errorf("DataPath = %q, want bank-full.csv", cfg.DataPath)
	}
	if cfg.DelimiterRune() != ';' {
		t.Errorf("DelimiterRune() = %q, want ';'", cfg.DelimiterRune())
	}
	if cfg.DebugLogging() {
		t.Error("debug logging should be off by default")
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "bankdash.yaml")
	os.WriteFile(path, []byte(`
port: 9000
data_path: /data/bank.csv
title: From File
debug: true
`), 0o644)

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 9000 || cfg.DataPath != "/data/bank.csv" || cfg.Title != "From File" {
			t.Errorf("cfg = %+v", cfg)
		}
		if !cfg.Debug {
			t.Error("Debug = false, want true")
		}
		if cfg.Delimiter != ";" {
			t.Errorf("Delimiter = %q, want default ';'", cfg.Delimiter)
		}
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("PORT", "9100")
		t.Setenv("BANKDASH_DEBUG", "false")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 9100 {
			t.Errorf("Port = %d, want 9100", cfg.Port)
		}
		if cfg.Debug {
			t.Error("Debug = true, want env override false")
		}
	})

	t.Run("unparsable env keeps previous value", func(t *testing.T) {
		t.Setenv("PORT", "eighty")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 9000 {
			t.Errorf("Port = %d, want 9000", cfg.Port)
		}
	})
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	badYAML := filepath.Join(dir, "bad.yaml")
	os.WriteFile(badYAML, []byte("port: [1, 2"), 0o644)

	tests := []struct {
		name string
		path string
		env  map[string]string
	}{
		{name: "missing file", path: filepath.Join(dir, "absent.yaml")},
		{name: "bad yaml", path: badYAML},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}},
		{name: "multi-character delimiter", env: map[string]string{"BANKDASH_DELIMITER": ";;"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(tt.path); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

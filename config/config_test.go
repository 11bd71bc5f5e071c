package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kevin-chtw/riichi-decomp/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.ServerID == "" || cfg.ListenAddr == "" || cfg.LogLevel == "" {
		t.Errorf("Default() left a required field empty: %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "decompose.yaml")
	body := "server_id: decompose-2\nlog_level: debug\nlut_prewarm: false\n"
	if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := config.Load(file)
	if err != nil {
		t.Fatalf("Load(%q): %v", file, err)
	}
	if cfg.ServerID != "decompose-2" {
		t.Errorf("ServerID = %q, want %q", cfg.ServerID, "decompose-2")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LutPrewarm {
		t.Errorf("LutPrewarm = true, want false (overridden by the file)")
	}
	// Fields the file left unset keep Default()'s values.
	if cfg.ListenAddr != config.Default().ListenAddr {
		t.Errorf("ListenAddr = %q, want the default %q", cfg.ListenAddr, config.Default().ListenAddr)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Load on a missing file: got nil error, want one")
	}
}

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

func TestLoadConfigFromFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	db := filepath.Join(dir, "db")
	if err := os.WriteFile(filepath.Join(dir, ".emojisel.yaml"), []byte("path: "+db+"\ncolumns: 8\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("EMOJISEL_CONFIG_PATH", dir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != db {
		t.Fatalf("BasePath = %q, want %q", cfg.BasePath(), db)
	}
	if cfg.ConfigFile() == "" {
		t.Fatalf("expected config file to be reported")
	}
	if got := viper.GetInt(KeyColumns); got != 8 {
		t.Fatalf("columns = %d, want 8", got)
	}
	if got := viper.GetString(KeyTheme); got != "#007AFF" {
		t.Fatalf("theme default = %q", got)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("EMOJISEL_CONFIG_PATH", t.TempDir())
	t.Setenv("EMOJISEL_PATH", "/tmp/emojisel-env")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != "/tmp/emojisel-env" {
		t.Fatalf("BasePath = %q", cfg.BasePath())
	}
}

func TestLoadConfigFromHome(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	home := t.TempDir()
	db := filepath.Join(home, "history-db")
	if err := os.WriteFile(filepath.Join(home, ".emojisel.yaml"), []byte("path: "+db+"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("EMOJISEL_CONFIG_PATH", "")

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != db {
		t.Fatalf("BasePath = %q, want %q", cfg.BasePath(), db)
	}
	if cfg.ConfigFile() != filepath.Join(home, ".emojisel.yaml") {
		t.Fatalf("config file = %q", cfg.ConfigFile())
	}
}

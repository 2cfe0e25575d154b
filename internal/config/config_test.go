package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.Editor.Wrap {
		t.Error("wrap should default to true")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "textwin.toml", `
[editor]
wrap = false
prompt = "> "

[log]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.Wrap {
		t.Error("wrap should be false")
	}
	if cfg.Editor.Prompt != "> " {
		t.Errorf("prompt = %q", cfg.Editor.Prompt)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "textwin.yaml", `
editor:
  wrap: false
  prompt: ":: "
log:
  level: warn
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.Wrap {
		t.Error("wrap should be false")
	}
	if cfg.Editor.Prompt != ":: " {
		t.Errorf("prompt = %q", cfg.Editor.Prompt)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "partial.toml", `
[log]
level = "error"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Editor.Wrap {
		t.Error("unset wrap should keep the default")
	}
	if cfg.Log.Level != "error" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{}`)

	_, err := Load(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault(\"\"): %v", err)
	}
	if !cfg.Editor.Wrap {
		t.Error("expected defaults")
	}

	cfg, err = LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault missing: %v", err)
	}
	if !cfg.Editor.Wrap {
		t.Error("expected defaults for missing file")
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "textwin.toml", "[editor]\nwrap = true\n")

	changed := make(chan Config, 1)
	w, err := NewWatcher(path, func(cfg Config) {
		select {
		case changed <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	writeFile(t, dir, "textwin.toml", "[editor]\nwrap = false\n")

	select {
	case cfg := <-changed:
		if cfg.Editor.Wrap {
			t.Error("reloaded config should have wrap = false")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

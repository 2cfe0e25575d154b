package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/textwin/internal/config"
	"github.com/dshills/textwin/internal/editing/cursor"
	"github.com/dshills/textwin/internal/renderer/backend"
	"github.com/dshills/textwin/internal/renderer/core"
	"github.com/dshills/textwin/internal/widget"
)

func testLogger() *Logger {
	return NewLogger(LoggerConfig{Level: LogLevelError, Output: io.Discard})
}

func mkApp(t *testing.T, text string) *App {
	t.Helper()

	path := filepath.Join(t.TempDir(), "content.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write content: %v", err)
	}

	a, err := New(backend.NewNull(10, 6), Options{File: path}, testLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.Box().SetArea(core.RectFromSize(0, 0, 6, 10))
	return a
}

func TestNewLoadsFile(t *testing.T) {
	a := mkApp(t, "one\ntwo\nthree")
	if got := a.Box().Text(); got != "one\ntwo\nthree\n" {
		t.Errorf("Text() = %q", got)
	}
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(backend.NewNull(10, 6), Options{File: "/does/not/exist"}, testLogger())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNewOpensLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "textwin.log")
	cfgPath := filepath.Join(dir, "config.toml")

	cfgText := fmt.Sprintf("[log]\nlevel = \"debug\"\nfile = %q\n", logPath)
	if err := os.WriteFile(cfgPath, []byte(cfgText), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	a, err := New(backend.NewNull(10, 6), Options{ConfigPath: cfgPath}, testLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	// ApplyConfig logs at info level, which must land in the file.
	a.ApplyConfig(config.Default())

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "configuration reloaded") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestNewBadLogFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")

	cfgText := fmt.Sprintf("[log]\nfile = %q\n", filepath.Join(dir, "no", "such", "dir", "x.log"))
	if err := os.WriteFile(cfgPath, []byte(cfgText), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := New(backend.NewNull(10, 6), Options{ConfigPath: cfgPath}, testLogger()); err == nil {
		t.Fatal("expected error for unopenable log file")
	}
}

func TestScrollForKey(t *testing.T) {
	a := mkApp(t, "one\ntwo")

	tests := []struct {
		key  backend.Key
		want widget.ScrollStyle
	}{
		{backend.KeyDown, widget.ScrollDirection2D{Dir: widget.DirDown, Size: widget.SizeCell}},
		{backend.KeyCtrlU, widget.ScrollDirection2D{Dir: widget.DirUp, Size: widget.SizeHalfPage}},
		{backend.KeyCtrlF, widget.ScrollDirection2D{Dir: widget.DirDown, Size: widget.SizePage}},
		{backend.KeyPageUp, widget.ScrollDirection2D{Dir: widget.DirUp, Size: widget.SizePage}},
	}

	for _, tt := range tests {
		style, ok := a.scrollForKey(tt.key)
		if !ok {
			t.Errorf("key %v not bound", tt.key)
			continue
		}
		got, ok := style.(widget.ScrollDirection2D)
		if !ok {
			t.Errorf("key %v bound to %T", tt.key, style)
			continue
		}
		want := tt.want.(widget.ScrollDirection2D)
		if got.Dir != want.Dir || got.Size != want.Size {
			t.Errorf("key %v = %+v, want %+v", tt.key, got, want)
		}
	}

	if _, ok := a.scrollForKey(backend.KeyTab); ok {
		t.Error("unbound key reported as bound")
	}
}

func TestCountPrefix(t *testing.T) {
	a := mkApp(t, "a\nb\nc\nd\ne\nf\ng")
	a.Box().SetWrap(false)

	// Typing "3" then scrolling down moves three lines.
	a.handleKey(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: '3'})
	a.handleKey(backend.Event{Type: backend.EventKey, Key: backend.KeyDown})

	if got := a.Box().Cursor(); !got.Equals(cursor.New(3, 0)) {
		t.Errorf("cursor = %v, want (3,0)", got)
	}

	// The count does not stick around for the next scroll.
	a.handleKey(backend.Event{Type: backend.EventKey, Key: backend.KeyDown})
	if got := a.Box().Cursor(); !got.Equals(cursor.New(4, 0)) {
		t.Errorf("cursor = %v, want (4,0)", got)
	}
}

func TestCountPrefixMultiDigit(t *testing.T) {
	a := mkApp(t, "x")

	a.pushCount(1)
	a.pushCount(2)
	if a.count == nil || *a.count != 12 {
		t.Fatalf("count = %v, want 12", a.count)
	}
}

func TestMouseWheelScrolls(t *testing.T) {
	a := mkApp(t, "a\nb\nc\nd\ne\nf\ng\nh")
	a.Box().SetWrap(false)

	a.handleMouse(backend.Event{Type: backend.EventMouse, MouseButton: backend.MouseWheelDown})
	if got := a.Box().Cursor(); !got.Equals(cursor.New(3, 0)) {
		t.Errorf("cursor = %v, want (3,0)", got)
	}
}

func TestApplyConfig(t *testing.T) {
	a := mkApp(t, "hello")

	cfg := config.Default()
	cfg.Editor.Wrap = false
	cfg.Editor.Prompt = "$ "
	a.ApplyConfig(cfg)

	if a.Box().Wrap() {
		t.Error("wrap not applied")
	}
	if a.prompt != "$ " {
		t.Errorf("prompt = %q", a.prompt)
	}
}

// Package app wires the terminal backend, buffer, and text widget into a
// runnable viewer application.
package app

import (
	"fmt"
	"os"
	"sync"

	"github.com/dshills/textwin/internal/config"
	"github.com/dshills/textwin/internal/editing/buffer"
	"github.com/dshills/textwin/internal/editing/editctx"
	"github.com/dshills/textwin/internal/renderer/backend"
	"github.com/dshills/textwin/internal/renderer/core"
	"github.com/dshills/textwin/internal/widget"
	"github.com/dshills/textwin/internal/widget/textbox"
)

// App is the running application: one buffer, one text box view, and a
// terminal backend.
type App struct {
	backend backend.Backend
	logger  *Logger
	logFile *os.File

	mu     sync.Mutex
	box    *textbox.TextBox
	prompt string
	count  *int
}

// Options configure a new App.
type Options struct {
	// ConfigPath is an optional config file to load and watch.
	ConfigPath string

	// File is an optional file whose content seeds the buffer.
	File string
}

// New creates an app over the given backend.
func New(be backend.Backend, opts Options, logger *Logger) (*App, error) {
	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(ParseLogLevel(cfg.Log.Level))

	var logFile *os.File
	if cfg.Log.File != "" {
		logFile, err = os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", cfg.Log.File, err)
		}
		logger.SetOutput(logFile)
	}

	buf := buffer.New()
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", opts.File, err)
		}
		buf.SetText(string(data))
	}

	box := textbox.New(buf)
	box.SetWrap(cfg.Editor.Wrap)

	return &App{
		backend: be,
		logger:  logger.WithComponent("app"),
		logFile: logFile,
		box:     box,
		prompt:  cfg.Editor.Prompt,
	}, nil
}

// Box returns the app's text box view.
func (a *App) Box() *textbox.TextBox {
	return a.box
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	return a.logFile.Close()
}

// ApplyConfig applies a freshly loaded configuration. Safe to call from
// the config watcher goroutine.
func (a *App) ApplyConfig(cfg config.Config) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.box.SetWrap(cfg.Editor.Wrap)
	a.prompt = cfg.Editor.Prompt
	a.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	a.logger.Info("configuration reloaded")
}

// Run drives the event loop until the user quits with Escape.
func (a *App) Run() error {
	buffered := backend.NewBuffered(a.backend)
	if err := buffered.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer buffered.Shutdown()

	a.logger.Info("event loop started")

	for {
		a.draw(buffered)

		ev := buffered.PollEvent()
		switch ev.Type {
		case backend.EventKey:
			if ev.Key == backend.KeyEscape {
				a.logger.Info("quit requested")
				return nil
			}
			a.handleKey(ev)

		case backend.EventMouse:
			a.handleMouse(ev)

		case backend.EventResize:
			// The buffered backend resizes itself; the next draw
			// picks up the new dimensions.
		}
	}
}

// draw renders the text box across the full terminal.
func (a *App) draw(be backend.Backend) {
	a.mu.Lock()
	defer a.mu.Unlock()

	width, height := be.Size()
	area := core.RectFromSize(0, 0, height, width)

	be.Clear()
	textbox.NewRenderer().Prompt(a.prompt).Render(area, be, a.box)
	pos := a.box.TermCursor()
	be.ShowCursor(pos.Col, pos.Row)
	be.Show()
}

// handleKey maps a key event to a scroll request.
func (a *App) handleKey(ev backend.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if ev.Key == backend.KeyRune && ev.Rune >= '0' && ev.Rune <= '9' {
		a.pushCount(int(ev.Rune - '0'))
		return
	}

	style, ok := a.scrollForKey(ev.Key)
	if !ok {
		a.count = nil
		return
	}

	ctx := editctx.Simple{Count: a.count}
	a.count = nil

	if err := a.box.Scroll(style, ctx); err != nil {
		a.logger.Error("scroll failed: %v", err)
	}
}

// handleMouse maps wheel events to cell scrolls.
func (a *App) handleMouse(ev backend.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var dir widget.Direction
	switch ev.MouseButton {
	case backend.MouseWheelUp:
		dir = widget.DirUp
	case backend.MouseWheelDown:
		dir = widget.DirDown
	default:
		return
	}

	style := widget.ScrollDirection2D{Dir: dir, Size: widget.SizeCell, Count: editctx.Exact(3)}
	if err := a.box.Scroll(style, editctx.Simple{}); err != nil {
		a.logger.Error("scroll failed: %v", err)
	}
}

// pushCount appends a digit to the pending count prefix.
func (a *App) pushCount(digit int) {
	n := digit
	if a.count != nil {
		n = *a.count*10 + digit
	}
	a.count = &n
}

// scrollForKey returns the scroll request bound to a key.
func (a *App) scrollForKey(key backend.Key) (widget.ScrollStyle, bool) {
	switch key {
	case backend.KeyUp:
		return widget.ScrollDirection2D{Dir: widget.DirUp, Size: widget.SizeCell, Count: editctx.Contextual()}, true
	case backend.KeyDown:
		return widget.ScrollDirection2D{Dir: widget.DirDown, Size: widget.SizeCell, Count: editctx.Contextual()}, true
	case backend.KeyLeft:
		return widget.ScrollDirection2D{Dir: widget.DirLeft, Size: widget.SizeCell, Count: editctx.Contextual()}, true
	case backend.KeyRight:
		return widget.ScrollDirection2D{Dir: widget.DirRight, Size: widget.SizeCell, Count: editctx.Contextual()}, true
	case backend.KeyCtrlE:
		return widget.ScrollDirection2D{Dir: widget.DirDown, Size: widget.SizeCell, Count: editctx.Contextual()}, true
	case backend.KeyCtrlY:
		return widget.ScrollDirection2D{Dir: widget.DirUp, Size: widget.SizeCell, Count: editctx.Contextual()}, true
	case backend.KeyCtrlD:
		return widget.ScrollDirection2D{Dir: widget.DirDown, Size: widget.SizeHalfPage, Count: editctx.Contextual()}, true
	case backend.KeyCtrlU:
		return widget.ScrollDirection2D{Dir: widget.DirUp, Size: widget.SizeHalfPage, Count: editctx.Contextual()}, true
	case backend.KeyCtrlF, backend.KeyPageDown:
		return widget.ScrollDirection2D{Dir: widget.DirDown, Size: widget.SizePage, Count: editctx.Contextual()}, true
	case backend.KeyCtrlB, backend.KeyPageUp:
		return widget.ScrollDirection2D{Dir: widget.DirUp, Size: widget.SizePage, Count: editctx.Contextual()}, true
	case backend.KeyHome:
		return widget.ScrollLinePos{Pos: widget.PosBeginning, Count: editctx.Exact(1)}, true
	case backend.KeyEnd:
		return widget.ScrollLinePos{Pos: widget.PosEnd, Count: editctx.Exact(a.box.LineCount())}, true
	default:
		return nil, false
	}
}

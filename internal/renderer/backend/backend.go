// Package backend provides terminal backend abstraction for the renderer.
package backend

import "github.com/dshills/textwin/internal/renderer/core"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlB
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlU
	KeyCtrlY
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton represents mouse button state.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseWheelUp
	MouseWheelDown
)

// Backend defines the interface for terminal/display backends.
// Implementations handle actual drawing to the terminal or other display
// surfaces.
type Backend interface {
	// Init initializes the backend for use.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// OnResize registers a callback for terminal resize events.
	OnResize(callback func(width, height int))

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns the cell at the given position.
	GetCell(x, y int) core.Cell

	// Fill fills a rectangular region with the given cell.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show synchronizes the internal buffer with the actual display.
	Show()

	// ShowCursor positions and displays the terminal cursor.
	ShowCursor(x, y int)

	// HideCursor hides the terminal cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	PollEvent() Event
}

// Null is a no-op backend for testing.
type Null struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	resizeHandler func(width, height int)
	events        chan Event
}

// NewNull creates a null backend with the given dimensions.
func NewNull(width, height int) *Null {
	return &Null{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

func (b *Null) Init() error {
	b.cells = makeCells(b.width, b.height)
	return nil
}

func (b *Null) Shutdown() {}

func (b *Null) Size() (int, int) {
	return b.width, b.height
}

func (b *Null) OnResize(callback func(width, height int)) {
	b.resizeHandler = callback
}

func (b *Null) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *Null) GetCell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *Null) Fill(rect core.ScreenRect, cell core.Cell) {
	for y := rect.Top; y < rect.Bottom && y < b.height; y++ {
		for x := rect.Left; x < rect.Right && x < b.width; x++ {
			if x >= 0 && y >= 0 {
				b.cells[y][x] = cell
			}
		}
	}
}

func (b *Null) Clear() {
	empty := core.EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *Null) Show() {}

func (b *Null) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *Null) HideCursor() {
	b.cursorVisible = false
}

func (b *Null) PollEvent() Event {
	return <-b.events
}

// PostEvent queues a synthetic event for PollEvent.
func (b *Null) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
	}
}

// CursorPosition returns the current cursor position for testing.
func (b *Null) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Resize simulates a terminal resize for testing.
func (b *Null) Resize(width, height int) {
	b.width = width
	b.height = height
	b.cells = makeCells(width, height)
	if b.resizeHandler != nil {
		b.resizeHandler(width, height)
	}
}

func makeCells(width, height int) [][]core.Cell {
	cells := make([][]core.Cell, height)
	for i := range cells {
		cells[i] = make([]core.Cell, width)
		for j := range cells[i] {
			cells[i][j] = core.EmptyCell()
		}
	}
	return cells
}

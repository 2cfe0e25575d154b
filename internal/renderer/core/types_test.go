package core

import "testing"

func TestAttributeOps(t *testing.T) {
	a := AttrNone.With(AttrBold).With(AttrReverse)
	if !a.Has(AttrBold) || !a.Has(AttrReverse) {
		t.Errorf("attributes missing: %v", a)
	}
	if a.Has(AttrDim) {
		t.Error("unexpected dim attribute")
	}

	a = a.Without(AttrBold)
	if a.Has(AttrBold) {
		t.Error("bold not removed")
	}
	if !a.Has(AttrReverse) {
		t.Error("reverse lost during removal")
	}
}

func TestColorEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want bool
	}{
		{"defaults equal", ColorDefault, Color{Default: true}, true},
		{"default vs rgb", ColorDefault, ColorFromRGB(0, 0, 0), false},
		{"same rgb", ColorFromRGB(10, 20, 30), ColorFromRGB(10, 20, 30), true},
		{"different rgb", ColorFromRGB(10, 20, 30), ColorFromRGB(10, 20, 31), false},
		{"same index", ColorFromIndex(5), ColorFromIndex(5), true},
		{"index vs rgb", ColorFromIndex(5), ColorFromRGB(5, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equals(tt.b); got != tt.want {
				t.Errorf("Equals = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStyleReverse(t *testing.T) {
	s := DefaultStyle()
	if !s.IsDefault() {
		t.Error("DefaultStyle not default")
	}

	r := s.Reverse()
	if !r.Attributes.Has(AttrReverse) {
		t.Error("Reverse did not set the attribute")
	}
	if s.Attributes.Has(AttrReverse) {
		t.Error("Reverse mutated the receiver")
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'\t', 0},
		{0x7F, 0},
		{'世', 2},
	}

	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestCellsRoundTrip(t *testing.T) {
	cells := CellsFromString("a世b", DefaultStyle())
	// Wide rune adds a continuation cell.
	if len(cells) != 4 {
		t.Fatalf("len(cells) = %d, want 4", len(cells))
	}
	if !cells[2].IsContinuation() {
		t.Error("expected continuation after wide rune")
	}
	if got := StringFromCells(cells); got != "a世b" {
		t.Errorf("StringFromCells = %q", got)
	}
}

func TestScreenRect(t *testing.T) {
	r := RectFromSize(1, 2, 3, 4)
	if r.Width() != 4 || r.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", r.Width(), r.Height())
	}
	if r.IsEmpty() {
		t.Error("non-empty rect reported empty")
	}
	if (ScreenRect{Top: 2, Left: 2, Bottom: 2, Right: 5}).IsEmpty() == false {
		t.Error("zero-height rect not empty")
	}

	if !r.Contains(ScreenPos{Row: 1, Col: 2}) {
		t.Error("top-left not contained")
	}
	if r.Contains(ScreenPos{Row: 4, Col: 2}) {
		t.Error("bottom edge should be exclusive")
	}

	other := NewScreenRect(2, 3, 10, 10)
	if !r.Intersects(other) {
		t.Error("rects should intersect")
	}
	got := r.Intersection(other)
	want := NewScreenRect(2, 3, 4, 6)
	if !got.Equals(want) {
		t.Errorf("Intersection = %+v, want %+v", got, want)
	}

	if r.Intersects(NewScreenRect(50, 50, 60, 60)) {
		t.Error("distant rects should not intersect")
	}
}

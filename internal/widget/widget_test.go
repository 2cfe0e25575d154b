package widget

import "testing"

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirUp, "up"},
		{DirDown, "down"},
		{DirLeft, "left"},
		{DirRight, "right"},
		{Direction(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestScrollStylesAreSealed(t *testing.T) {
	// Each request shape satisfies ScrollStyle.
	for _, style := range []ScrollStyle{
		ScrollDirection2D{},
		ScrollCursorPos{},
		ScrollLinePos{},
	} {
		if style == nil {
			t.Fatal("nil scroll style")
		}
	}
}

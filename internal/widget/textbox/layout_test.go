package textbox

import (
	"testing"

	"github.com/dshills/textwin/internal/editing/cursor"
)

func TestLayoutNowrap(t *testing.T) {
	lines := []string{"alpha", "beta", "gamma", "delta"}

	rows := layoutNowrap(lines, cursor.New(0, 0), 3, cursor.New(1, 2))
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	if rows[0].Text != "alpha" || rows[2].Text != "gamma" {
		t.Errorf("rows = %+v", rows)
	}
	if !rows[1].CursorRow {
		t.Error("expected row 1 to carry the cursor")
	}
	if rows[0].CursorRow || rows[2].CursorRow {
		t.Error("cursor marked on the wrong row")
	}
}

func TestLayoutNowrapCornerColumn(t *testing.T) {
	lines := []string{"1234567890", "ab"}

	rows := layoutNowrap(lines, cursor.New(0, 4), 2, cursor.New(0, 6))
	if rows[0].Text != "567890" {
		t.Errorf("row 0 text = %q, want %q", rows[0].Text, "567890")
	}
	if rows[0].Start != 4 || rows[0].End != 10 {
		t.Errorf("row 0 span = [%d,%d), want [4,10)", rows[0].Start, rows[0].End)
	}

	// Lines shorter than the corner column render empty.
	if rows[1].Text != "" {
		t.Errorf("row 1 text = %q, want empty", rows[1].Text)
	}
}

func TestLayoutWrapSplitsLongLines(t *testing.T) {
	lines := []string{"abcdefghij", "xy"}

	rows, corner := layoutWrap(lines, cursor.New(0, 0), 4, 4, cursor.New(0, 0))
	if !corner.Equals(cursor.New(0, 0)) {
		t.Errorf("corner = %v, want unchanged", corner)
	}

	want := []Row{
		{Line: 0, Start: 0, End: 4, Text: "abcd", CursorRow: true},
		{Line: 0, Start: 4, End: 8, Text: "efgh"},
		{Line: 0, Start: 8, End: 10, Text: "ij"},
		{Line: 1, Start: 0, End: 2, Text: "xy"},
	}
	if len(rows) != len(want) {
		t.Fatalf("len(rows) = %d, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestLayoutWrapRetainsCursorRow(t *testing.T) {
	// One long line whose segments alone exceed the viewport height.
	lines := []string{"aaaabbbbccccddddeeeeffffgggg", "tail"}
	cur := cursor.New(0, 25)

	rows, corner := layoutWrap(lines, cursor.New(0, 0), 4, 3, cur)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	found := false
	for _, r := range rows {
		if r.CursorRow && cur.Column >= r.Start && cur.Column <= r.End {
			found = true
		}
	}
	if !found {
		t.Errorf("cursor segment not retained: %+v", rows)
	}

	// The corner is reset to the first retained segment.
	if !corner.Equals(cursor.New(rows[0].Line, rows[0].Start)) {
		t.Errorf("corner = %v, want %v", corner, cursor.New(rows[0].Line, rows[0].Start))
	}
}

func TestLayoutWrapEmptyLineYieldsRow(t *testing.T) {
	lines := []string{"", "next"}

	rows, _ := layoutWrap(lines, cursor.New(0, 0), 4, 4, cursor.New(0, 0))
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].Text != "" || rows[0].Start != 0 || rows[0].End != 0 {
		t.Errorf("empty line row = %+v", rows[0])
	}
	if !rows[0].CursorRow {
		t.Error("cursor should land on the empty line's row")
	}
}

func TestLayoutWrapCursorFarFromCorner(t *testing.T) {
	// Several long lines separate the corner from the cursor; trimming
	// must keep the cursor's segment and move the corner forward.
	lines := []string{"aaaaaaaaaaaaaaaa", "bbbbbbbbbbbbbbbb", "target"}
	cur := cursor.New(2, 3)

	rows, corner := layoutWrap(lines, cursor.New(0, 0), 4, 3, cur)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	last := rows[len(rows)-1]
	if !last.CursorRow || last.Line != 2 {
		t.Errorf("cursor row not retained: %+v", rows)
	}
	if corner.Line == 0 && corner.Column == 0 {
		t.Error("corner was not advanced past trimmed rows")
	}
}

func TestLayoutWrapEndOfSegmentCursor(t *testing.T) {
	// A cursor sitting exactly at a segment boundary counts as being on
	// the earlier segment.
	lines := []string{"abcdefgh"}

	rows, _ := layoutWrap(lines, cursor.New(0, 0), 4, 4, cursor.New(0, 4))
	if !rows[0].CursorRow {
		t.Errorf("rows = %+v", rows)
	}
}

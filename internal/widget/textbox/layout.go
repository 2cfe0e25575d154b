package textbox

import "github.com/dshills/textwin/internal/editing/cursor"

// Row is one visual row produced by the layout engine. Start and End are
// absolute column offsets into the logical line; End is exclusive.
type Row struct {
	Line      int
	Start     int
	End       int
	Text      string
	CursorRow bool
}

// containsCursor reports whether the given cursor falls on this row. The
// end-of-row position counts so an appending cursor one past the last
// character still lands on its line's final segment.
func rowContainsCursor(line, start, end int, cur cursor.Cursor) bool {
	return line == cur.Line && cur.Column >= start && cur.Column <= end
}

// layoutNowrap produces one visual row per logical line starting at the
// corner. Each row's visible text begins at the corner column; lines
// shorter than the corner column render empty.
func layoutNowrap(lines []string, corner cursor.Cursor, height int, cur cursor.Cursor) []Row {
	rows := make([]Row, 0, height)

	for i, text := range lines {
		if len(rows) >= height {
			break
		}
		line := corner.Line + i

		start := corner.Column
		end := len(text)
		visible := ""
		if start < end {
			visible = text[start:end]
		}

		rows = append(rows, Row{
			Line:      line,
			Start:     start,
			End:       end,
			Text:      visible,
			CursorRow: rowContainsCursor(line, start, end, cur),
		})
	}

	return rows
}

// layoutWrap splits each logical line into consecutive segments of at most
// width columns, starting at the corner. Rows accumulate until at least
// height exist and the cursor's segment has been produced; the result is
// then trimmed from the front to height rows and the corner reset to the
// first retained row. Trimming never drops the cursor's row.
func layoutWrap(lines []string, corner cursor.Cursor, width, height int, cur cursor.Cursor) ([]Row, cursor.Cursor) {
	var rows []Row
	sawCursor := false

	line := corner.Line
	for i, text := range lines {
		if len(rows) >= height && sawCursor {
			break
		}

		base := 0
		if i == 0 {
			base = corner.Column
			if base > len(text) {
				base = len(text)
			}
		}

		off := base
		for off < len(text) && (len(rows) < height || !sawCursor) {
			end := off + width
			if end > len(text) {
				end = len(text)
			}

			cursorRow := rowContainsCursor(line, off, end, cur)
			rows = append(rows, Row{
				Line:      line,
				Start:     off,
				End:       end,
				Text:      text[off:end],
				CursorRow: cursorRow,
			})
			if cursorRow {
				sawCursor = true
			}

			off = end
		}

		// An empty logical line still yields one empty segment.
		if len(text) == base {
			rows = append(rows, Row{
				Line:      line,
				Start:     base,
				End:       base,
				Text:      "",
				CursorRow: line == cur.Line,
			})
		}

		line++
	}

	if len(rows) > height {
		n := len(rows) - height
		for i, r := range rows {
			if r.CursorRow {
				if n > i {
					n = i
				}
				break
			}
		}
		rows = rows[n:]
		corner = cursor.New(rows[0].Line, rows[0].Start)
	}

	return rows, corner
}

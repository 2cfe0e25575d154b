package editctx

import "testing"

func TestResolveCount(t *testing.T) {
	five := 5

	tests := []struct {
		name  string
		ctx   Simple
		count Count
		want  int
	}{
		{"exact wins", Simple{Count: &five}, Exact(3), 3},
		{"contextual uses pending", Simple{Count: &five}, Contextual(), 5},
		{"contextual defaults to one", Simple{}, Contextual(), 1},
		{"exact zero stays zero", Simple{}, Exact(0), 0},
		{"negative exact floors at zero", Simple{}, Exact(-2), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ctx.ResolveCount(tt.count); got != tt.want {
				t.Errorf("ResolveCount = %d, want %d", got, tt.want)
			}
		})
	}
}

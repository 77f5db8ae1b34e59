package tactile

import "testing"

func TestComputeWindowReference(t *testing.T) {
	w := ComputeWindow(1000, 50, 500, 1000, 5)

	if w.StartIndex != 15 {
		t.Errorf("StartIndex = %d, want 15", w.StartIndex)
	}
	if w.EndIndex != 35 {
		t.Errorf("EndIndex = %d, want 35", w.EndIndex)
	}
	if w.OffsetY != 750 {
		t.Errorf("OffsetY = %v, want 750", w.OffsetY)
	}
	if w.TotalHeight != 50000 {
		t.Errorf("TotalHeight = %v, want 50000", w.TotalHeight)
	}
}

func TestComputeWindowClamping(t *testing.T) {
	tests := []struct {
		name      string
		scrollTop float64
		wantStart int
		wantEnd   int
	}{
		{"top of list", 0, 0, 15},
		{"negative overscroll", -200, 0, 15},
		{"bottom of list", 49500, 985, 999},
		{"past the bottom", 99999, 999, 999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ComputeWindow(tt.scrollTop, 50, 500, 1000, 5)
			if w.StartIndex != tt.wantStart || w.EndIndex != tt.wantEnd {
				t.Errorf("window = [%d,%d], want [%d,%d]",
					w.StartIndex, w.EndIndex, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestComputeWindowDegenerateInputs(t *testing.T) {
	tests := []struct {
		name       string
		itemHeight float64
		itemCount  int
	}{
		{"no items", 50, 0},
		{"negative count", 50, -3},
		{"zero row height", 0, 100},
		{"negative row height", -10, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ComputeWindow(100, tt.itemHeight, 500, tt.itemCount, 5)
			if w.Len() != 0 {
				t.Errorf("Len() = %d, want empty window", w.Len())
			}
			if w.TotalHeight != 0 {
				t.Errorf("TotalHeight = %v, want 0", w.TotalHeight)
			}
		})
	}
}

func TestComputeWindowShortList(t *testing.T) {
	// Fewer items than the viewport holds: the window is the whole list.
	w := ComputeWindow(0, 50, 500, 3, 5)
	if w.StartIndex != 0 || w.EndIndex != 2 {
		t.Errorf("window = [%d,%d], want [0,2]", w.StartIndex, w.EndIndex)
	}
}

func TestComputeWindowIdempotent(t *testing.T) {
	a := ComputeWindow(1234.5, 48, 760, 5000, 3)
	b := ComputeWindow(1234.5, 48, 760, 5000, 3)
	if a != b {
		t.Errorf("identical inputs produced %+v and %+v", a, b)
	}
}

func TestComputeWindowStability(t *testing.T) {
	// A scroll delta smaller than one row shifts the range by at most one
	// index; the overscan margin absorbs the movement.
	prev := ComputeWindow(1000, 50, 500, 1000, 5)
	for scroll := 1001.0; scroll <= 1050; scroll++ {
		w := ComputeWindow(scroll, 50, 500, 1000, 5)
		if w.StartIndex < prev.StartIndex || w.StartIndex > prev.StartIndex+1 {
			t.Fatalf("scrollTop %v jumped StartIndex from %d to %d",
				scroll, prev.StartIndex, w.StartIndex)
		}
		prev = w
	}
}

func TestComputeWindowNegativeOverscan(t *testing.T) {
	w := ComputeWindow(1000, 50, 500, 1000, -7)
	if w.StartIndex != 20 || w.EndIndex != 30 {
		t.Errorf("window = [%d,%d], want bare visible range [20,30]", w.StartIndex, w.EndIndex)
	}
}

func TestVirtualWindowLen(t *testing.T) {
	tests := []struct {
		name string
		w    VirtualWindow
		want int
	}{
		{"normal", VirtualWindow{StartIndex: 15, EndIndex: 35}, 21},
		{"single row", VirtualWindow{StartIndex: 4, EndIndex: 4}, 1},
		{"empty", VirtualWindow{StartIndex: 0, EndIndex: -1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.w.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

package tactile

import "math"

// DefaultOverscan is the number of extra rows computed beyond the visible
// viewport on each side, masking pop-in during scrolling.
const DefaultOverscan = 5

// VirtualWindow is the slice of a fixed-row-height list that should be
// rendered for a given scroll position. Indices are inclusive.
type VirtualWindow struct {
	StartIndex  int
	EndIndex    int
	OffsetY     float64 // top of StartIndex's row, for positioning the slice
	TotalHeight float64 // full height of the list, for the scrollbar
}

// ComputeWindow returns the visible index range of a list with itemCount
// rows of itemHeight pixels, scrolled to scrollTop inside a viewport of
// viewportHeight pixels, padded by overscan rows on each side.
//
// It is a pure function: identical inputs always produce identical output,
// and a scroll delta smaller than one row never shifts the range by more
// than one index. Degenerate inputs (no items, non-positive row height)
// yield an empty window with EndIndex -1.
func ComputeWindow(scrollTop, itemHeight, viewportHeight float64, itemCount, overscan int) VirtualWindow {
	if itemCount <= 0 || itemHeight <= 0 {
		return VirtualWindow{EndIndex: -1}
	}
	if scrollTop < 0 {
		scrollTop = 0
	}
	if overscan < 0 {
		overscan = 0
	}

	visibleStart := int(math.Floor(scrollTop / itemHeight))
	visibleEnd := visibleStart + int(math.Ceil(viewportHeight/itemHeight))
	if visibleEnd > itemCount-1 {
		visibleEnd = itemCount - 1
	}

	start := visibleStart - overscan
	if start < 0 {
		start = 0
	}
	end := visibleEnd + overscan
	if end > itemCount-1 {
		end = itemCount - 1
	}

	return VirtualWindow{
		StartIndex:  start,
		EndIndex:    end,
		OffsetY:     float64(start) * itemHeight,
		TotalHeight: float64(itemCount) * itemHeight,
	}
}

// Len returns the number of rows in the window.
func (w VirtualWindow) Len() int {
	if w.EndIndex < w.StartIndex {
		return 0
	}
	return w.EndIndex - w.StartIndex + 1
}

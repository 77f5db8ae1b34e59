package tactile

import "time"

// Phase identifies where a pointer sample falls in an interaction session.
type Phase uint8

const (
	PhaseStart  Phase = iota // contact began (button press or touch down)
	PhaseMove                // contact moved while held
	PhaseEnd                 // contact released normally
	PhaseCancel              // contact lost (left the surface, OS grabbed it)
)

// PointerSample is one normalized input sample. Mouse and touch input are
// unified into this shape at the platform boundary; nothing past the
// boundary branches on the input source.
type PointerSample struct {
	X, Y  float64
	T     time.Time // monotonic timestamp of the sample
	Phase Phase
}

// EventType identifies a kind of gesture event.
type EventType uint8

const (
	EventTap            EventType = iota // fires on a short press with little movement
	EventSwipe                           // fires on release when displacement crosses the swipe threshold
	EventLongPressStart                  // fires while still held, once the hold deadline passes
	EventLongPressEnd                    // fires on release or cancel after a long-press started
	EventDragStart                       // fires when movement exceeds the drag dead zone
	EventDrag                            // fires for each sample while dragging
	EventDragEnd                         // fires when the pointer is released after dragging
	EventRefresh                         // fires when a pull-to-refresh crosses its threshold on release
)

// SwipeDirection is the dominant axis and sign of a swipe.
type SwipeDirection uint8

const (
	SwipeLeft SwipeDirection = iota
	SwipeRight
	SwipeUp
	SwipeDown
)

// String returns the lowercase name of the direction.
func (d SwipeDirection) String() string {
	switch d {
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	case SwipeUp:
		return "up"
	case SwipeDown:
		return "down"
	}
	return "unknown"
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// TapContext carries data for tap callbacks.
type TapContext struct {
	PointerID int
	X, Y      float64
}

// SwipeContext carries data for swipe callbacks. DX and DY are the total
// displacement of the session, in pixels.
type SwipeContext struct {
	PointerID int
	Direction SwipeDirection
	X, Y      float64
	DX, DY    float64
}

// LongPressContext carries data for long-press callbacks. X and Y are the
// session's start position; a long-press is anchored where it began.
type LongPressContext struct {
	PointerID int
	X, Y      float64
}

// DragContext carries data for drag callbacks. DeltaX/DeltaY are movement
// since the previous sample; StartX/StartY is where the session began.
type DragContext struct {
	PointerID      int
	X, Y           float64
	StartX, StartY float64
	DeltaX, DeltaY float64
}

// PullContext carries data for refresh callbacks.
type PullContext struct {
	PointerID int
	Distance  float64
}

// GestureEvent carries gesture data in a single flat record for the
// EventStore bridge. Which fields are valid depends on Type.
type GestureEvent struct {
	Type      EventType
	PointerID int
	X         float64
	Y         float64
	// Swipe fields (valid for EventSwipe)
	Direction SwipeDirection
	DX        float64
	DY        float64
	// Drag fields (valid for EventDragStart, EventDrag, EventDragEnd)
	StartX float64
	StartY float64
	DeltaX float64
	DeltaY float64
	// Pull fields (valid for EventRefresh)
	Distance float64
}

// EventStore is the interface for optional ECS integration.
// When set on a Surface, gesture events are forwarded to the ECS.
type EventStore interface {
	EmitGesture(event GestureEvent)
}

package tactile

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// driverPointer mirrors the last reported position and press state of one
// platform pointer, so releases and cancels can be synthesized when the
// platform stops reporting a contact.
type driverPointer struct {
	down  bool
	lastX float64
	lastY float64
}

// Driver polls Ebitengine mouse and touch input once per frame, normalizes
// it into PointerSamples, and feeds an attached Surface. Pointer slot 0 is
// the mouse; slots 1-9 are touches in order of appearance. Past the driver
// nothing branches on the input source.
//
// Call Update from your game's Update. While the surface has queued
// synthetic samples, real input polling is skipped.
type Driver struct {
	surface *Surface
	now     func() time.Time

	pointers     [maxPointers]driverPointer
	prevTouchIDs []ebiten.TouchID
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
}

// NewDriver creates a driver feeding the given surface.
func NewDriver(surface *Surface) *Driver {
	return &Driver{surface: surface, now: time.Now}
}

// Update polls the platform input state, feeds normalized samples to the
// surface, and advances the surface's time-driven classification. Call once
// per frame.
func (d *Driver) Update() {
	now := d.now()
	if !d.surface.injectPending() {
		d.pollMouse(now)
		d.pollTouches(now)
	}
	d.surface.Update(now)
}

// pollMouse handles mouse input (pointer 0). Any pressed button counts as
// contact; the gesture layer does not distinguish buttons.
func (d *Driver) pollMouse(now time.Time) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	d.feedPointer(0, x, y, pressed, now)
}

// pollTouches handles touch input (pointers 1-9). Touches that vanish from
// the platform's report are released at their last known position.
func (d *Driver) pollTouches(now time.Time) {
	touchIDs := ebiten.AppendTouchIDs(d.prevTouchIDs[:0])
	d.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := d.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		d.feedPointer(slot, float64(tx), float64(ty), true, now)
	}

	for i := 1; i < maxPointers; i++ {
		if d.touchUsed[i] && !activeSlots[i] {
			p := &d.pointers[i]
			if p.down {
				d.feedPointer(i, p.lastX, p.lastY, false, now)
			}
			d.touchUsed[i] = false
			d.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (d *Driver) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if d.touchUsed[i] && d.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !d.touchUsed[i] {
			d.touchUsed[i] = true
			d.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// feedPointer converts a polled pointer state into Start/Move/End phases by
// comparing against the previous frame.
func (d *Driver) feedPointer(pointerID int, x, y float64, pressed bool, now time.Time) {
	p := &d.pointers[pointerID]

	switch {
	case pressed && !p.down:
		p.down = true
		d.surface.Feed(pointerID, PointerSample{X: x, Y: y, T: now, Phase: PhaseStart})
	case pressed && p.down:
		if x != p.lastX || y != p.lastY {
			d.surface.Feed(pointerID, PointerSample{X: x, Y: y, T: now, Phase: PhaseMove})
		}
	case !pressed && p.down:
		p.down = false
		d.surface.Feed(pointerID, PointerSample{X: x, Y: y, T: now, Phase: PhaseEnd})
	}
	p.lastX = x
	p.lastY = y
}

// Cancel synthesizes a Cancel for every pressed pointer, for use when the
// window loses focus or the interactive view unmounts mid-gesture.
func (d *Driver) Cancel() {
	now := d.now()
	for i := range d.pointers {
		p := &d.pointers[i]
		if p.down {
			p.down = false
			d.surface.Feed(i, PointerSample{X: p.lastX, Y: p.lastY, T: now, Phase: PhaseCancel})
		}
	}
}

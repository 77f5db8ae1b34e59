package tactile

import (
	"math"
	"time"
)

// --- Constants ---

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

	defaultClickThreshold = 10.0 // pixels
	defaultSwipeThreshold = 50.0 // pixels
	defaultDragDeadZone   = 4.0  // pixels
	defaultLongPressDelay = 500 * time.Millisecond
)

// --- Per-pointer session state ---

type claimant uint8

const (
	claimNone claimant = iota
	claimGesture
	claimPull
)

// sessionState tracks one interaction session: the samples between a Start
// and the next End/Cancel for a single pointer slot.
type sessionState struct {
	active            bool
	claim             claimant
	startX            float64
	startY            float64
	startT            time.Time
	lastX             float64
	lastY             float64
	dragging          bool
	longPressDeadline time.Time // zero = disarmed
	longPressed       bool
}

func (ps *sessionState) reset() {
	*ps = sessionState{}
}

// pendingTap is a tap held back by the debounce delay. A new Start on the
// same pointer before the due time cancels it.
type pendingTap struct {
	pointerID int
	x, y      float64
	due       time.Time
}

// --- Handler registry ---

type tapHandler struct {
	id uint32
	fn func(TapContext)
}

type swipeHandler struct {
	id uint32
	fn func(SwipeContext)
}

type longPressHandler struct {
	id uint32
	fn func(LongPressContext)
}

type dragHandler struct {
	id uint32
	fn func(DragContext)
}

type pullHandler struct {
	id uint32
	fn func(PullContext)
}

type handlerRegistry struct {
	tap            []tapHandler
	swipe          []swipeHandler
	longPressStart []longPressHandler
	longPressEnd   []longPressHandler
	dragStart      []dragHandler
	drag           []dragHandler
	dragEnd        []dragHandler
	refresh        []pullHandler
	nextID         uint32
}

// CallbackHandle allows removing a registered surface-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventTap:
		h.reg.tap = removeTapHandler(h.reg.tap, h.id)
	case EventSwipe:
		h.reg.swipe = removeSwipeHandler(h.reg.swipe, h.id)
	case EventLongPressStart:
		h.reg.longPressStart = removeLongPressHandler(h.reg.longPressStart, h.id)
	case EventLongPressEnd:
		h.reg.longPressEnd = removeLongPressHandler(h.reg.longPressEnd, h.id)
	case EventDragStart:
		h.reg.dragStart = removeDragHandler(h.reg.dragStart, h.id)
	case EventDrag:
		h.reg.drag = removeDragHandler(h.reg.drag, h.id)
	case EventDragEnd:
		h.reg.dragEnd = removeDragHandler(h.reg.dragEnd, h.id)
	case EventRefresh:
		h.reg.refresh = removePullHandler(h.reg.refresh, h.id)
	}
}

func removeTapHandler(s []tapHandler, id uint32) []tapHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = tapHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeSwipeHandler(s []swipeHandler, id uint32) []swipeHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = swipeHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeLongPressHandler(s []longPressHandler, id uint32) []longPressHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = longPressHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeDragHandler(s []dragHandler, id uint32) []dragHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = dragHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removePullHandler(s []pullHandler, id uint32) []pullHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pullHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Surface ---

// Surface is the stateful classifier for one interactive region. It consumes
// normalized pointer samples, disambiguates them into gestures, and fires
// registered callbacks. Each pointer slot runs an independent session;
// classification within a session is deterministic given sample order.
//
// All methods must be called from the single UI goroutine.
type Surface struct {
	handlers handlerRegistry
	pointers [maxPointers]sessionState
	pull     *PullController
	store    EventStore

	clickThreshold float64
	swipeThreshold float64
	dragDeadZone   float64
	longPressDelay time.Duration
	tapDebounce    time.Duration

	pendingTaps []pendingTap
	injectQueue []syntheticSample
}

// NewSurface creates a Surface with default thresholds: 10px click, 50px
// swipe, 4px drag dead zone, 500ms long-press, no tap debounce.
func NewSurface() *Surface {
	return &Surface{
		clickThreshold: defaultClickThreshold,
		swipeThreshold: defaultSwipeThreshold,
		dragDeadZone:   defaultDragDeadZone,
		longPressDelay: defaultLongPressDelay,
	}
}

// SetClickThreshold sets the maximum movement in pixels for a tap.
func (s *Surface) SetClickThreshold(pixels float64) {
	s.clickThreshold = pixels
}

// SetSwipeThreshold sets the minimum displacement in pixels for a swipe.
func (s *Surface) SetSwipeThreshold(pixels float64) {
	s.swipeThreshold = pixels
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (s *Surface) SetDragDeadZone(pixels float64) {
	s.dragDeadZone = pixels
}

// SetLongPressDelay sets how long a pointer must be held before a
// long-press fires.
func (s *Surface) SetLongPressDelay(d time.Duration) {
	s.longPressDelay = d
}

// SetTapDebounce delays tap delivery by d so a quickly following Start can
// cancel it. Zero (the default) delivers taps immediately on release.
func (s *Surface) SetTapDebounce(d time.Duration) {
	s.tapDebounce = d
}

// SetEventStore attaches an optional ECS bridge. All gesture events are
// forwarded to the store in addition to registered callbacks.
func (s *Surface) SetEventStore(store EventStore) {
	s.store = store
}

// AttachPull attaches a pull-to-refresh controller. At Start time the
// controller gets first claim on the session; if its preconditions are not
// met the generic recognizer takes the session instead.
func (s *Surface) AttachPull(pc *PullController) {
	s.pull = pc
}

// --- Event registration ---

// OnTap registers a callback for tap events.
func (s *Surface) OnTap(fn func(TapContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.tap = append(s.handlers.tap, tapHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventTap}
}

// OnSwipe registers a callback for swipe events in any direction.
func (s *Surface) OnSwipe(fn func(SwipeContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.swipe = append(s.handlers.swipe, swipeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventSwipe}
}

// OnLongPressStart registers a callback fired while the pointer is still
// held, once the long-press delay passes.
func (s *Surface) OnLongPressStart(fn func(LongPressContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.longPressStart = append(s.handlers.longPressStart, longPressHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventLongPressStart}
}

// OnLongPressEnd registers a callback fired on release or cancel after a
// long-press started.
func (s *Surface) OnLongPressEnd(fn func(LongPressContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.longPressEnd = append(s.handlers.longPressEnd, longPressHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventLongPressEnd}
}

// OnDragStart registers a callback for drag start events.
func (s *Surface) OnDragStart(fn func(DragContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.dragStart = append(s.handlers.dragStart, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventDragStart}
}

// OnDrag registers a callback for per-sample drag delta events.
func (s *Surface) OnDrag(fn func(DragContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.drag = append(s.handlers.drag, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventDrag}
}

// OnDragEnd registers a callback for drag end events.
func (s *Surface) OnDragEnd(fn func(DragContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.dragEnd = append(s.handlers.dragEnd, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventDragEnd}
}

// OnRefresh registers a callback fired when an attached pull-to-refresh
// controller triggers.
func (s *Surface) OnRefresh(fn func(PullContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.refresh = append(s.handlers.refresh, pullHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventRefresh}
}

// --- Sample processing ---

// Feed processes one pointer sample for the given pointer slot. Samples for
// a slot must arrive in order; Move/End/Cancel samples without a preceding
// Start are dropped silently.
func (s *Surface) Feed(pointerID int, sample PointerSample) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &s.pointers[pointerID]

	switch sample.Phase {
	case PhaseStart:
		s.beginSession(pointerID, ps, sample)
	case PhaseMove:
		if !ps.active {
			return // orphan
		}
		s.moveSession(pointerID, ps, sample)
	case PhaseEnd:
		if !ps.active {
			return // orphan
		}
		s.endSession(pointerID, ps, sample)
	case PhaseCancel:
		if !ps.active {
			return
		}
		s.cancelSession(pointerID, ps)
	}
}

// beginSession starts a new session, letting the pull controller claim it
// first if its preconditions hold.
func (s *Surface) beginSession(pointerID int, ps *sessionState, sample PointerSample) {
	// A Start while a session is active means the platform dropped the
	// matching End. Reset rather than leak the stale start point.
	if ps.active {
		if ps.claim == claimPull {
			s.pull.Cancel()
		}
		ps.reset()
	}

	// Debounce cancellation: a new press swallows a not-yet-delivered tap
	// on the same pointer.
	s.cancelPendingTap(pointerID)

	ps.active = true
	ps.startX = sample.X
	ps.startY = sample.Y
	ps.startT = sample.T
	ps.lastX = sample.X
	ps.lastY = sample.Y

	if s.pull != nil && s.pull.Start(pointerID, sample) {
		ps.claim = claimPull
		return
	}

	ps.claim = claimGesture
	ps.longPressDeadline = sample.T.Add(s.longPressDelay)
}

func (s *Surface) moveSession(pointerID int, ps *sessionState, sample PointerSample) {
	if ps.claim == claimPull {
		if !s.pull.Move(sample) {
			// The pull released its claim (upward motion or the scroll
			// region left the top). The session is consumed; remaining
			// samples are dropped as orphans.
			ps.reset()
		}
		return
	}

	s.checkLongPress(pointerID, ps, sample.T)

	if sample.X != ps.lastX || sample.Y != ps.lastY {
		if !ps.dragging {
			dx := sample.X - ps.startX
			dy := sample.Y - ps.startY
			if math.Sqrt(dx*dx+dy*dy) > s.dragDeadZone {
				ps.dragging = true
				s.fireDragStart(pointerID, ps, sample)
			}
		}
		if ps.dragging {
			s.fireDrag(pointerID, ps, sample)
		}
	}
	ps.lastX = sample.X
	ps.lastY = sample.Y
}

func (s *Surface) endSession(pointerID int, ps *sessionState, sample PointerSample) {
	if ps.claim == claimPull {
		if distance, triggered := s.pull.End(sample); triggered {
			s.fireRefresh(pointerID, distance)
		}
		ps.reset()
		return
	}

	// The hold deadline may have passed between the last Update tick and
	// this sample; LongPressStart still precedes LongPressEnd.
	s.checkLongPress(pointerID, ps, sample.T)

	if ps.dragging {
		s.fireDragEnd(pointerID, ps, sample)
	}

	if ps.longPressed {
		s.fireLongPressEnd(pointerID, ps)
		ps.reset()
		return
	}

	dx := sample.X - ps.startX
	dy := sample.Y - ps.startY
	adx := math.Abs(dx)
	ady := math.Abs(dy)

	switch {
	case math.Max(adx, ady) < s.clickThreshold && sample.T.Sub(ps.startT) < s.longPressDelay:
		if s.tapDebounce > 0 {
			s.pendingTaps = append(s.pendingTaps, pendingTap{
				pointerID: pointerID,
				x:         sample.X,
				y:         sample.Y,
				due:       sample.T.Add(s.tapDebounce),
			})
		} else {
			s.fireTap(pointerID, sample.X, sample.Y)
		}
	case adx > ady && adx >= s.swipeThreshold:
		dir := SwipeRight
		if dx < 0 {
			dir = SwipeLeft
		}
		s.fireSwipe(pointerID, dir, sample, dx, dy)
	case ady > adx && ady >= s.swipeThreshold:
		dir := SwipeDown
		if dy < 0 {
			dir = SwipeUp
		}
		s.fireSwipe(pointerID, dir, sample, dx, dy)
	}
	// Anything else (ambiguous or sub-threshold motion) reports nothing.

	ps.reset()
}

// cancelSession clears all session state so nothing stale survives into the
// next session. No terminal gesture is reported; an in-flight long-press or
// drag stream is closed.
func (s *Surface) cancelSession(pointerID int, ps *sessionState) {
	if ps.claim == claimPull {
		s.pull.Cancel()
		ps.reset()
		return
	}
	if ps.dragging {
		end := PointerSample{X: ps.lastX, Y: ps.lastY}
		s.fireDragEnd(pointerID, ps, end)
	}
	if ps.longPressed {
		s.fireLongPressEnd(pointerID, ps)
	}
	ps.reset()
}

// checkLongPress fires LongPressStart once the hold deadline passes, while
// the pointer is still down.
func (s *Surface) checkLongPress(pointerID int, ps *sessionState, now time.Time) {
	if ps.longPressed || ps.longPressDeadline.IsZero() || now.Before(ps.longPressDeadline) {
		return
	}
	ps.longPressed = true
	s.fireLongPressStart(pointerID, ps)
}

// cancelPendingTap discards any undelivered debounced tap for a pointer.
func (s *Surface) cancelPendingTap(pointerID int) {
	for i := 0; i < len(s.pendingTaps); {
		if s.pendingTaps[i].pointerID == pointerID {
			s.pendingTaps = append(s.pendingTaps[:i], s.pendingTaps[i+1:]...)
			continue
		}
		i++
	}
}

// Update advances time-driven classification: pending long-press deadlines,
// debounced tap delivery, and one queued synthetic sample. Call once per
// frame with the current time.
func (s *Surface) Update(now time.Time) {
	s.consumeInjected(now)

	for i := range s.pointers {
		ps := &s.pointers[i]
		if ps.active && ps.claim == claimGesture {
			s.checkLongPress(i, ps, now)
		}
	}

	for i := 0; i < len(s.pendingTaps); {
		pt := s.pendingTaps[i]
		if now.Before(pt.due) {
			i++
			continue
		}
		s.pendingTaps = append(s.pendingTaps[:i], s.pendingTaps[i+1:]...)
		s.fireTap(pt.pointerID, pt.x, pt.y)
	}
}

// Pressed reports whether the given pointer slot has an active session.
func (s *Surface) Pressed(pointerID int) bool {
	if pointerID < 0 || pointerID >= maxPointers {
		return false
	}
	return s.pointers[pointerID].active
}

// --- Event dispatch ---

func (s *Surface) fireTap(pointerID int, x, y float64) {
	ctx := TapContext{PointerID: pointerID, X: x, Y: y}
	for _, h := range s.handlers.tap {
		h.fn(ctx)
	}
	s.emitGesture(GestureEvent{Type: EventTap, PointerID: pointerID, X: x, Y: y})
}

func (s *Surface) fireSwipe(pointerID int, dir SwipeDirection, sample PointerSample, dx, dy float64) {
	ctx := SwipeContext{
		PointerID: pointerID, Direction: dir,
		X: sample.X, Y: sample.Y, DX: dx, DY: dy,
	}
	for _, h := range s.handlers.swipe {
		h.fn(ctx)
	}
	s.emitGesture(GestureEvent{
		Type: EventSwipe, PointerID: pointerID,
		X: sample.X, Y: sample.Y, Direction: dir, DX: dx, DY: dy,
	})
}

func (s *Surface) fireLongPressStart(pointerID int, ps *sessionState) {
	ctx := LongPressContext{PointerID: pointerID, X: ps.startX, Y: ps.startY}
	for _, h := range s.handlers.longPressStart {
		h.fn(ctx)
	}
	s.emitGesture(GestureEvent{Type: EventLongPressStart, PointerID: pointerID, X: ps.startX, Y: ps.startY})
}

func (s *Surface) fireLongPressEnd(pointerID int, ps *sessionState) {
	ctx := LongPressContext{PointerID: pointerID, X: ps.startX, Y: ps.startY}
	for _, h := range s.handlers.longPressEnd {
		h.fn(ctx)
	}
	s.emitGesture(GestureEvent{Type: EventLongPressEnd, PointerID: pointerID, X: ps.startX, Y: ps.startY})
}

func (s *Surface) fireDragStart(pointerID int, ps *sessionState, sample PointerSample) {
	ctx := DragContext{
		PointerID: pointerID, X: sample.X, Y: sample.Y,
		StartX: ps.startX, StartY: ps.startY,
		DeltaX: sample.X - ps.startX, DeltaY: sample.Y - ps.startY,
	}
	for _, h := range s.handlers.dragStart {
		h.fn(ctx)
	}
	s.emitGesture(GestureEvent{
		Type: EventDragStart, PointerID: pointerID, X: sample.X, Y: sample.Y,
		StartX: ps.startX, StartY: ps.startY, DeltaX: ctx.DeltaX, DeltaY: ctx.DeltaY,
	})
}

func (s *Surface) fireDrag(pointerID int, ps *sessionState, sample PointerSample) {
	ctx := DragContext{
		PointerID: pointerID, X: sample.X, Y: sample.Y,
		StartX: ps.startX, StartY: ps.startY,
		DeltaX: sample.X - ps.lastX, DeltaY: sample.Y - ps.lastY,
	}
	for _, h := range s.handlers.drag {
		h.fn(ctx)
	}
	s.emitGesture(GestureEvent{
		Type: EventDrag, PointerID: pointerID, X: sample.X, Y: sample.Y,
		StartX: ps.startX, StartY: ps.startY, DeltaX: ctx.DeltaX, DeltaY: ctx.DeltaY,
	})
}

func (s *Surface) fireDragEnd(pointerID int, ps *sessionState, sample PointerSample) {
	ctx := DragContext{
		PointerID: pointerID, X: sample.X, Y: sample.Y,
		StartX: ps.startX, StartY: ps.startY,
		DeltaX: sample.X - ps.lastX, DeltaY: sample.Y - ps.lastY,
	}
	for _, h := range s.handlers.dragEnd {
		h.fn(ctx)
	}
	s.emitGesture(GestureEvent{
		Type: EventDragEnd, PointerID: pointerID, X: sample.X, Y: sample.Y,
		StartX: ps.startX, StartY: ps.startY, DeltaX: ctx.DeltaX, DeltaY: ctx.DeltaY,
	})
}

func (s *Surface) fireRefresh(pointerID int, distance float64) {
	ctx := PullContext{PointerID: pointerID, Distance: distance}
	for _, h := range s.handlers.refresh {
		h.fn(ctx)
	}
	s.emitGesture(GestureEvent{Type: EventRefresh, PointerID: pointerID, Distance: distance})
}

func (s *Surface) emitGesture(event GestureEvent) {
	if s.store == nil {
		return
	}
	s.store.EmitGesture(event)
}

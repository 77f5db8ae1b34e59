package tactile

import "time"

// syntheticSample is a single queued injected input event. Samples are
// consumed one per Update call and stamped with that Update's time, so an
// injected gesture spreads across frames exactly like real input.
type syntheticSample struct {
	pointerID int
	x, y      float64
	phase     Phase
}

// InjectStart queues a Start sample for pointer 0 at the given coordinates.
// The sample is consumed on the next Update call.
func (s *Surface) InjectStart(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticSample{x: x, y: y, phase: PhaseStart})
}

// InjectMove queues a Move sample for pointer 0. Use between InjectStart
// and InjectEnd to simulate a drag or pull.
func (s *Surface) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticSample{x: x, y: y, phase: PhaseMove})
}

// InjectEnd queues an End sample for pointer 0.
func (s *Surface) InjectEnd(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticSample{x: x, y: y, phase: PhaseEnd})
}

// InjectCancel queues a Cancel sample for pointer 0.
func (s *Surface) InjectCancel() {
	s.injectQueue = append(s.injectQueue, syntheticSample{phase: PhaseCancel})
}

// InjectTap is a convenience that queues a Start followed by an End at the
// same coordinates. Consumes two Update calls.
func (s *Surface) InjectTap(x, y float64) {
	s.InjectStart(x, y)
	s.InjectEnd(x, y)
}

// InjectSwipe queues a full swipe sequence: Start at (fromX, fromY),
// linearly interpolated moves over steps-2 intermediate frames, and End at
// (toX, toY). The total sequence consumes `steps` Update calls. Minimum
// steps is 2 (start + end).
func (s *Surface) InjectSwipe(fromX, fromY, toX, toY float64, steps int) {
	if steps < 2 {
		steps = 2
	}
	s.InjectStart(fromX, fromY)
	mid := steps - 2
	for i := 1; i <= mid; i++ {
		t := float64(i) / float64(mid+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(x, y)
	}
	s.InjectEnd(toX, toY)
}

// injectPending reports whether queued synthetic samples remain. While it
// returns true, platform drivers should skip polling real input so injected
// sequences are not interleaved with live samples.
func (s *Surface) injectPending() bool {
	return len(s.injectQueue) > 0
}

// consumeInjected pops one queued sample and feeds it through the normal
// classification path with the current time.
func (s *Surface) consumeInjected(now time.Time) {
	if len(s.injectQueue) == 0 {
		return
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.Feed(evt.pointerID, PointerSample{X: evt.x, Y: evt.y, T: now, Phase: evt.phase})
}

package tactile

import "time"

const (
	fpsWindow = time.Second // rolling recompute interval

	// FPS breakpoints for the adaptive policy.
	fpsReduceBelow = 30.0
	fpsSlowBelow   = 45.0

	// Animation durations chosen by the policy.
	durationSlow = 300 * time.Millisecond
	durationFast = 200 * time.Millisecond
)

// FrameSampler estimates frames per second from per-frame ticks. Call Tick
// once per rendered frame; the estimate refreshes once per rolling one
// second window and holds steady between refreshes.
//
// State is confined to the instance. Call Reset on teardown so a remounted
// view starts from a clean window.
type FrameSampler struct {
	frames      int
	windowStart time.Time
	fps         float64
	started     bool
}

// NewFrameSampler creates a sampler that reports 60 FPS until the first
// full window elapses.
func NewFrameSampler() *FrameSampler {
	return &FrameSampler{fps: 60}
}

// Tick records one frame. When a full window has elapsed the FPS estimate
// is recomputed from the frames accumulated in it and the counter resets.
func (s *FrameSampler) Tick(now time.Time) {
	if !s.started {
		// The first tick only establishes the window; the frame itself
		// belongs to time we didn't observe.
		s.started = true
		s.windowStart = now
		return
	}
	s.frames++

	elapsed := now.Sub(s.windowStart)
	if elapsed < fpsWindow {
		return
	}
	s.fps = float64(s.frames) * float64(time.Second) / float64(elapsed)
	s.frames = 0
	s.windowStart = now
}

// FPS returns the current rolling estimate.
func (s *FrameSampler) FPS() float64 {
	return s.fps
}

// Reset clears the window and counter and returns the estimate to its
// optimistic initial value.
func (s *FrameSampler) Reset() {
	*s = FrameSampler{fps: 60}
}

// RenderPolicy is the adaptive rendering decision derived from measured
// performance and the user's accessibility preference. It is recomputed,
// never cached: call ResolvePolicy whenever either input changes.
type RenderPolicy struct {
	ReducedMotion     bool
	AnimationDuration time.Duration
}

// ResolvePolicy derives the rendering policy. Motion is reduced when the
// user prefers it or the measured FPS drops below 30; otherwise animations
// run at 300ms under 45 FPS and 200ms at or above it.
func ResolvePolicy(fps float64, prefersReducedMotion bool) RenderPolicy {
	reduced := prefersReducedMotion || fps < fpsReduceBelow
	var duration time.Duration
	switch {
	case reduced:
		duration = 0
	case fps < fpsSlowBelow:
		duration = durationSlow
	default:
		duration = durationFast
	}
	return RenderPolicy{ReducedMotion: reduced, AnimationDuration: duration}
}

package tactile

// --- Constants ---

const (
	defaultPullMaxDistance = 150.0 // pixels, after damping
	defaultPullThreshold   = 80.0  // pixels of damped distance to arm a refresh
	pullDamping            = 0.5   // downward motion is halved to model resistance
)

// PullState is a snapshot of the controller for rendering a pull indicator.
type PullState struct {
	Distance   float64
	Pulling    bool
	Refreshing bool
}

// PullController turns downward drags at the top of a scrollable region into
// a continuous pull-distance signal and a discrete refresh trigger.
//
// It claims an interaction session only when the region is at rest at the
// top (scrollTop <= 0) and no refresh is in flight; otherwise the session
// stays with the generic recognizer. While a refresh is in flight all new
// pull input is rejected until the injected callback reports completion.
//
// All methods must be called from the single UI goroutine, including the
// done callback handed to the refresh function.
type PullController struct {
	scrollTop func() float64
	refresh   func(done func(err error))

	maxDistance float64
	threshold   float64

	claimed    bool
	pointerID  int
	startY     float64
	distance   float64
	refreshing bool
}

// NewPullController creates a controller reading the region's scroll offset
// from scrollTop and invoking refresh when a pull crosses the threshold.
// The refresh function must eventually call done exactly once, on the UI
// goroutine, whether the underlying work succeeded or failed; the error is
// the presentation layer's to surface, not the controller's.
func NewPullController(scrollTop func() float64, refresh func(done func(err error))) *PullController {
	return &PullController{
		scrollTop:   scrollTop,
		refresh:     refresh,
		maxDistance: defaultPullMaxDistance,
		threshold:   defaultPullThreshold,
	}
}

// SetMaxDistance sets the cap on the damped pull distance.
func (p *PullController) SetMaxDistance(pixels float64) {
	p.maxDistance = pixels
}

// SetThreshold sets the damped distance a pull must reach to trigger a
// refresh on release.
func (p *PullController) SetThreshold(pixels float64) {
	p.threshold = pixels
}

// State returns a snapshot for the pull indicator.
func (p *PullController) State() PullState {
	return PullState{
		Distance:   p.distance,
		Pulling:    p.claimed,
		Refreshing: p.refreshing,
	}
}

// CanRefresh reports whether releasing now would trigger a refresh.
func (p *PullController) CanRefresh() bool {
	return p.distance >= p.threshold
}

// Start attempts to claim a session beginning with the given sample.
// It returns false when the scroll region is not at the top, a refresh is
// in flight, or another pointer already holds the claim.
func (p *PullController) Start(pointerID int, sample PointerSample) bool {
	if p.claimed || p.refreshing {
		return false
	}
	if p.scrollTop != nil && p.scrollTop() > 0 {
		return false
	}
	p.claimed = true
	p.pointerID = pointerID
	p.startY = sample.Y
	p.distance = 0
	return true
}

// Move updates the pull distance for a claimed session. It returns false
// when the claim is released: the vertical delta went non-positive or the
// scroll offset left the top. A released session does not fire a refresh.
func (p *PullController) Move(sample PointerSample) bool {
	if !p.claimed {
		return false
	}
	if p.scrollTop != nil && p.scrollTop() > 0 {
		p.release()
		return false
	}
	dy := sample.Y - p.startY
	if dy <= 0 {
		p.release()
		return false
	}
	d := dy * pullDamping
	if d > p.maxDistance {
		d = p.maxDistance
	}
	p.distance = d
	return true
}

// End releases the claim. If the pull crossed the threshold it starts the
// injected refresh and returns the release distance and true; otherwise the
// distance resets to zero and nothing fires.
func (p *PullController) End(sample PointerSample) (float64, bool) {
	if !p.claimed {
		return 0, false
	}
	released := p.distance
	p.release()
	if released < p.threshold || p.refreshing {
		return 0, false
	}
	p.beginRefresh()
	return released, true
}

// Cancel releases the claim without firing, identical to a sub-threshold
// release.
func (p *PullController) Cancel() {
	p.release()
}

func (p *PullController) release() {
	p.claimed = false
	p.distance = 0
}

// beginRefresh latches the refreshing flag and hands the refresh function a
// done callback that clears it. The flag clears on completion regardless of
// the reported error, so the indicator can never be left spinning; a second
// done call is ignored.
func (p *PullController) beginRefresh() {
	p.refreshing = true
	finished := false
	done := func(err error) {
		if finished {
			return
		}
		finished = true
		p.refreshing = false
	}
	if p.refresh == nil {
		done(nil)
		return
	}
	p.refresh(done)
}

package tactile

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously with a duration
// taken from a RenderPolicy. Create one via the convenience constructors
// (TweenOffset, TweenFade) or NewTweenGroup, and call Update(dt) each frame.
// Under reduced motion the group snaps every field to its target on the
// first Update and reports Done.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens  [4]*gween.Tween
	targets [4]float64
	fields  [4]*float64
	count   int
	instant bool
	Done    bool
}

// NewTweenGroup creates a group animating each field to the matching target
// over the policy's animation duration. fields and targets must be the same
// length, at most 4.
func NewTweenGroup(policy RenderPolicy, fn ease.TweenFunc, fields []*float64, targets []float64) *TweenGroup {
	g := &TweenGroup{}
	n := len(fields)
	if n > len(g.fields) {
		n = len(g.fields)
	}
	g.count = n

	duration := float32(policy.AnimationDuration.Seconds())
	g.instant = policy.ReducedMotion || duration <= 0

	for i := 0; i < n; i++ {
		g.fields[i] = fields[i]
		g.targets[i] = targets[i]
		if !g.instant {
			g.tweens[i] = gween.New(float32(*fields[i]), float32(targets[i]), duration, fn)
		}
	}
	return g
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. Under reduced motion the first call writes the final values.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.instant {
		for i := 0; i < g.count; i++ {
			*g.fields[i] = g.targets[i]
		}
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenOffset creates a TweenGroup that animates a pair of offset fields
// (such as a swiped row's x and y) to the given targets. A nil y field
// animates x alone.
func TweenOffset(policy RenderPolicy, x, y *float64, toX, toY float64) *TweenGroup {
	if y == nil {
		return NewTweenGroup(policy, ease.OutQuad, []*float64{x}, []float64{toX})
	}
	return NewTweenGroup(policy, ease.OutQuad, []*float64{x, y}, []float64{toX, toY})
}

// TweenFade creates a TweenGroup that animates an alpha field to the target
// value.
func TweenFade(policy RenderPolicy, alpha *float64, to float64) *TweenGroup {
	return NewTweenGroup(policy, ease.Linear, []*float64{alpha}, []float64{to})
}

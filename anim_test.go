package tactile

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

var fullMotion = RenderPolicy{ReducedMotion: false, AnimationDuration: 200 * time.Millisecond}

func TestTweenGroupReachesTargets(t *testing.T) {
	x, y := 10.0, 20.0
	g := NewTweenGroup(fullMotion, ease.Linear, []*float64{&x, &y}, []float64{100, 200})

	// Run for the full 200ms in exact halves to avoid float32 drift.
	g.Update(0.1)
	if g.Done {
		t.Fatal("Done before the full duration")
	}
	g.Update(0.1)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(x-100) > 0.5 {
		t.Errorf("x = %f, want ~100", x)
	}
	if math.Abs(y-200) > 0.5 {
		t.Errorf("y = %f, want ~200", y)
	}
}

func TestTweenGroupReducedMotionSnaps(t *testing.T) {
	policy := ResolvePolicy(20, false) // reduced
	x := 10.0
	g := NewTweenGroup(policy, ease.Linear, []*float64{&x}, []float64{100})

	g.Update(0.001)
	if !g.Done {
		t.Fatal("reduced-motion tween must finish on the first Update")
	}
	if x != 100 {
		t.Errorf("x = %f, want snapped to 100", x)
	}
}

func TestTweenGroupUpdateAfterDone(t *testing.T) {
	x := 0.0
	g := NewTweenGroup(fullMotion, ease.Linear, []*float64{&x}, []float64{50})
	g.Update(0.2)
	if !g.Done {
		t.Fatal("expected Done")
	}

	before := x
	g.Update(1.0)
	if x != before {
		t.Errorf("Update after Done moved the field from %f to %f", before, x)
	}
}

func TestTweenGroupCapsFieldCount(t *testing.T) {
	vals := make([]float64, 6)
	fields := make([]*float64, 6)
	targets := make([]float64, 6)
	for i := range vals {
		fields[i] = &vals[i]
		targets[i] = 1
	}

	g := NewTweenGroup(fullMotion, ease.Linear, fields, targets)
	g.Update(0.2)

	for i := 0; i < 4; i++ {
		if vals[i] != 1 {
			t.Errorf("field %d = %f, want 1", i, vals[i])
		}
	}
	for i := 4; i < 6; i++ {
		if vals[i] != 0 {
			t.Errorf("field %d = %f, want untouched", i, vals[i])
		}
	}
}

func TestTweenOffsetPair(t *testing.T) {
	x, y := 0.0, 0.0
	g := TweenOffset(fullMotion, &x, &y, -320, 8)

	for i := 0; i < 4; i++ {
		g.Update(0.05)
	}
	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(x+320) > 0.5 || math.Abs(y-8) > 0.5 {
		t.Errorf("offset = (%f,%f), want (-320,8)", x, y)
	}
}

func TestTweenOffsetSingleAxis(t *testing.T) {
	x := 0.0
	g := TweenOffset(fullMotion, &x, nil, 100, 0)

	g.Update(0.1)
	g.Update(0.1)
	if !g.Done {
		t.Fatal("expected Done")
	}
	if math.Abs(x-100) > 0.5 {
		t.Errorf("x = %f, want ~100", x)
	}
}

func TestTweenFade(t *testing.T) {
	alpha := 1.0
	g := TweenFade(fullMotion, &alpha, 0)

	g.Update(0.1)
	mid := alpha
	if mid <= 0 || mid >= 1 {
		t.Errorf("mid-fade alpha = %f, want inside (0,1)", mid)
	}
	g.Update(0.1)
	if math.Abs(alpha) > 0.01 {
		t.Errorf("alpha = %f, want ~0", alpha)
	}
}

func TestTweenZeroDurationPolicySnaps(t *testing.T) {
	// A zero duration without the reduced flag behaves the same as
	// reduced motion: no division by zero, instant completion.
	policy := RenderPolicy{AnimationDuration: 0}
	x := 5.0
	g := NewTweenGroup(policy, ease.Linear, []*float64{&x}, []float64{9})

	g.Update(0.016)
	if !g.Done || x != 9 {
		t.Errorf("x = %f done = %v, want instant snap", x, g.Done)
	}
}

package tactile

import (
	"testing"
	"time"
)

func TestRippleEmitRelativePosition(t *testing.T) {
	e := NewRippleEmitter()
	bounds := Rect{X: 40, Y: 100, Width: 200, Height: 60}

	tok := e.Emit(bounds, 90, 130, at(0))

	if tok.X != 50 || tok.Y != 30 {
		t.Errorf("token at (%v,%v), want (50,30) relative to bounds", tok.X, tok.Y)
	}
	if len(e.Tokens()) != 1 {
		t.Fatalf("live tokens = %d, want 1", len(e.Tokens()))
	}
}

func TestRippleExpiry(t *testing.T) {
	e := NewRippleEmitter()
	e.Emit(Rect{}, 10, 10, at(0))

	e.Update(at(599))
	if len(e.Tokens()) != 1 {
		t.Fatal("token expired early")
	}
	e.Update(at(600))
	if len(e.Tokens()) != 0 {
		t.Fatal("token survived past its lifetime")
	}
}

func TestRippleTokensAreIndependent(t *testing.T) {
	e := NewRippleEmitter()
	e.Emit(Rect{}, 10, 10, at(0))
	e.Emit(Rect{}, 20, 20, at(300))
	e.Emit(Rect{}, 30, 30, at(500))

	// The first token expires on its own schedule; the others stay.
	e.Update(at(650))
	live := e.Tokens()
	if len(live) != 2 {
		t.Fatalf("live tokens = %d, want 2", len(live))
	}
	if live[0].X != 20 || live[1].X != 30 {
		t.Errorf("wrong tokens survived: %+v", live)
	}
}

func TestRippleIDsUnique(t *testing.T) {
	e := NewRippleEmitter()
	a := e.Emit(Rect{}, 0, 0, at(0))
	b := e.Emit(Rect{}, 0, 0, at(0))

	if a.ID == b.ID {
		t.Error("concurrent tokens share an ID")
	}
}

func TestRippleProgress(t *testing.T) {
	e := NewRippleEmitter()
	tok := e.Emit(Rect{}, 0, 0, at(0))

	if got := e.Progress(tok, at(0)); got != 0 {
		t.Errorf("progress at birth = %v, want 0", got)
	}
	if got := e.Progress(tok, at(700)); got != 1 {
		t.Errorf("progress past expiry = %v, want 1", got)
	}

	early := e.Progress(tok, at(150))
	late := e.Progress(tok, at(450))
	if early <= 0 || early >= 1 || late <= early || late >= 1 {
		t.Errorf("progress not monotonic in (0,1): early=%v late=%v", early, late)
	}
	// Ease-out: the first half covers more ground than the second.
	if mid := e.Progress(tok, at(300)); mid <= 0.5 {
		t.Errorf("eased midpoint = %v, want > 0.5", mid)
	}
}

func TestRippleProgressBeforeBirth(t *testing.T) {
	e := NewRippleEmitter()
	tok := e.Emit(Rect{}, 0, 0, at(100))

	if got := e.Progress(tok, at(50)); got != 0 {
		t.Errorf("progress before birth = %v, want 0", got)
	}
}

func TestRippleClear(t *testing.T) {
	e := NewRippleEmitter()
	e.Emit(Rect{}, 0, 0, at(0))
	e.Emit(Rect{}, 1, 1, at(0))

	e.Clear()
	if len(e.Tokens()) != 0 {
		t.Errorf("tokens after Clear = %d, want 0", len(e.Tokens()))
	}

	// The emitter stays usable after teardown-style clearing.
	e.Emit(Rect{}, 2, 2, at(100))
	if len(e.Tokens()) != 1 {
		t.Errorf("tokens after re-emit = %d, want 1", len(e.Tokens()))
	}
}

func TestRippleLifetimeConstant(t *testing.T) {
	if RippleLifetime != 600*time.Millisecond {
		t.Errorf("RippleLifetime = %v, want 600ms", RippleLifetime)
	}
}

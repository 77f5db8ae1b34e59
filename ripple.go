package tactile

import (
	"time"

	"github.com/google/uuid"
	"github.com/tanema/gween/ease"
)

// RippleLifetime is how long a feedback token lives after emission,
// regardless of further input.
const RippleLifetime = 600 * time.Millisecond

// RippleToken is one short-lived press-feedback marker. X and Y are local
// to the bounds the token was emitted against.
type RippleToken struct {
	ID        uuid.UUID
	X, Y      float64
	CreatedAt time.Time
}

// RippleEmitter owns the set of live feedback tokens for one surface.
// Tokens are independent: emitting never blocks or cancels another token,
// and each expires on its own schedule. State is confined to the instance;
// create one emitter per interactive region.
type RippleEmitter struct {
	tokens   []RippleToken
	lifetime time.Duration
}

// NewRippleEmitter creates an emitter with the standard 600ms token lifetime.
func NewRippleEmitter() *RippleEmitter {
	return &RippleEmitter{lifetime: RippleLifetime}
}

// Emit creates a token at (x, y) relative to bounds, captured at emission
// time, and adds it to the live set.
func (e *RippleEmitter) Emit(bounds Rect, x, y float64, now time.Time) RippleToken {
	tok := RippleToken{
		ID:        uuid.New(),
		X:         x - bounds.X,
		Y:         y - bounds.Y,
		CreatedAt: now,
	}
	e.tokens = append(e.tokens, tok)
	return tok
}

// Update removes tokens whose lifetime has elapsed. Call once per frame.
func (e *RippleEmitter) Update(now time.Time) {
	live := e.tokens[:0]
	for _, tok := range e.tokens {
		if now.Sub(tok.CreatedAt) < e.lifetime {
			live = append(live, tok)
		}
	}
	// Zero the tail so expired tokens don't pin memory.
	for i := len(live); i < len(e.tokens); i++ {
		e.tokens[i] = RippleToken{}
	}
	e.tokens = live
}

// Tokens returns the live token set. The slice is owned by the emitter and
// only valid until the next Emit or Update.
func (e *RippleEmitter) Tokens() []RippleToken {
	return e.tokens
}

// Progress returns the eased animation progress of a token in [0, 1]:
// 0 at emission, 1 at expiry. Renderers typically map it to radius and
// inverse alpha.
func (e *RippleEmitter) Progress(tok RippleToken, now time.Time) float64 {
	elapsed := now.Sub(tok.CreatedAt)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= e.lifetime {
		return 1
	}
	return float64(ease.OutQuad(float32(elapsed.Seconds()), 0, 1, float32(e.lifetime.Seconds())))
}

// Clear drops all live tokens. Call on teardown of the owning view.
func (e *RippleEmitter) Clear() {
	for i := range e.tokens {
		e.tokens[i] = RippleToken{}
	}
	e.tokens = e.tokens[:0]
}

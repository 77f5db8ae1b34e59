package ecs

import (
	"testing"

	"github.com/olbboy/tactile"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitGesture(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []tactile.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e tactile.GestureEvent) {
		received = append(received, e)
	})

	store.EmitGesture(tactile.GestureEvent{
		Type:      tactile.EventSwipe,
		PointerID: 1,
		Direction: tactile.SwipeLeft,
		DX:        -120,
		DY:        4,
	})

	store.EmitGesture(tactile.GestureEvent{
		Type:     tactile.EventRefresh,
		Distance: 95,
	})

	// Events are queued until processed.
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != tactile.EventSwipe || e0.Direction != tactile.SwipeLeft {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.DX != -120 || e0.PointerID != 1 {
		t.Errorf("event 0 payload: dx=%v pointer=%d", e0.DX, e0.PointerID)
	}

	e1 := received[1]
	if e1.Type != tactile.EventRefresh || e1.Distance != 95 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEventStore(t *testing.T) {
	world := donburi.NewWorld()
	var store tactile.EventStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	GestureEventType.Subscribe(world, func(w donburi.World, e tactile.GestureEvent) {
		count1++
	})
	GestureEventType.Subscribe(world, func(w donburi.World, e tactile.GestureEvent) {
		count2++
	})

	store.EmitGesture(tactile.GestureEvent{Type: tactile.EventTap})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

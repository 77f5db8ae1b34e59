// Package ecs provides ECS adapters for tactile's gesture event system.
//
// The primary adapter is [NewDonburiStore], which bridges tactile gesture
// events (tap, swipe, long-press, drag, refresh) into a [Donburi] world as
// typed events. Subscribe to [GestureEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	surface.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

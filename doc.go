// Package tactile is the client-side interaction layer for [Ebitengine]
// media applications.
//
// Tactile disambiguates raw pointer and touch input into discrete gestures
// (tap, directional swipe, long-press, drag, pull-to-refresh), emits
// short-lived press feedback tokens, and adapts rendering behavior to the
// measured capability and live frame rate of the host device. It owns no
// rendering: presentation code consumes its events and policy values and
// supplies it raw input.
//
// # Quick start
//
// Create a [Surface], register gesture callbacks, and drive it from your
// game loop with a [Driver]:
//
//	surface := tactile.NewSurface()
//	surface.OnSwipe(func(ctx tactile.SwipeContext) {
//		if ctx.Direction == tactile.SwipeLeft {
//			// reveal row actions
//		}
//	})
//
//	driver := tactile.NewDriver(surface)
//
//	func (g *Game) Update() error {
//		driver.Update()
//		return nil
//	}
//
// Samples can also be fed directly with [Surface.Feed] when input comes
// from somewhere other than Ebitengine. Mouse and touch are normalized into
// one [PointerSample] shape at the boundary; nothing past it branches on
// the input source.
//
// # Disambiguation
//
// Each pointer runs one interaction session from Start to End/Cancel, and a
// session yields at most one terminal gesture: a short, small motion is a
// tap; displacement past the swipe threshold on the dominant axis is a
// swipe; holding past the long-press delay fires LongPressStart while still
// held and suppresses tap and swipe for that session. Drag deltas stream
// past a small dead zone for reordering. An attached [PullController]
// claims sessions that begin at the top of a scrollable region and turns
// them into a damped pull-distance signal and a refresh trigger; claimed
// sessions never reach the generic recognizer.
//
// # Adaptive rendering
//
// [Probe] buckets the device's hardware and network hints into a
// [CapabilityProfile], a [FrameSampler] keeps a rolling FPS estimate, and
// [ResolvePolicy] folds the estimate and the user's reduced-motion
// preference into a [RenderPolicy]. [TweenGroup] (via [gween]) and
// [RippleEmitter] honor the policy, and [ComputeWindow] virtualizes long
// fixed-height lists.
//
// ECS integration is available via the adapter in tactile/ecs ([Donburi]).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package tactile

// Package ecs bridges dnd lifecycle events into an ECS world.
//
// The primary adapter is [NewDonburiStore], which publishes every forwarded
// [dnd.InteractionEvent] into a [Donburi] world as a typed event. Subscribe to
// [InteractionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEventStore(store)
//
// Only events whose source node carries an EntityID are forwarded.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/dnd"
)

// InteractionEventType is the Donburi event type for drag-and-drop lifecycle
// events. Subscribe to it in your ECS systems.
var InteractionEventType = events.NewEventType[dnd.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Events are queued on InteractionEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) dnd.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event dnd.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

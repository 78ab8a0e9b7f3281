package ecs

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/dnd"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []dnd.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e dnd.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(dnd.InteractionEvent{
		Type:     dnd.EventDragStart,
		SourceID: 42,
		GlobalX:  100,
		GlobalY:  200,
	})
	store.EmitEvent(dnd.InteractionEvent{
		Type:     dnd.EventDragEnd,
		SourceID: 42,
		TargetID: 7,
		Dropped:  true,
	})

	// Events are queued until processed.
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != dnd.EventDragStart || e0.SourceID != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.GlobalX != 100 || e0.GlobalY != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.GlobalX, e0.GlobalY)
	}
	e1 := received[1]
	if e1.Type != dnd.EventDragEnd || e1.TargetID != 7 || !e1.Dropped {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_SceneForwarding(t *testing.T) {
	world := donburi.NewWorld()
	scene := dnd.NewScene()
	scene.SetEventStore(NewDonburiStore(world))

	list := dnd.NewBox("list", 0, 0, 400, 100)
	item := dnd.NewBox("a", 10, 10, 50, 50, "item")
	item.EntityID = 11
	zone := dnd.NewBox("z", 200, 0, 100, 100, "zone")
	zone.EntityID = 22
	list.AddChild(item)
	list.AddChild(zone)
	scene.Root().AddChild(list)

	inst, err := scene.NewInstance(list, dnd.Config{Source: ".item", Dropzone: ".zone"})
	if err != nil {
		t.Fatal(err)
	}
	defer inst.Dispose()

	var got []dnd.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e dnd.InteractionEvent) {
		got = append(got, e)
	})

	scene.HandleInput(dnd.Input{Kind: dnd.InputPress, X: 20, Y: 20})
	scene.HandleInput(dnd.Input{Kind: dnd.InputMove, X: 250, Y: 50})
	scene.HandleInput(dnd.Input{Kind: dnd.InputRelease, X: 250, Y: 50})
	events.ProcessAllEvents(world)

	var kinds []dnd.EventKind
	for _, e := range got {
		if e.Type == dnd.EventDrag {
			continue
		}
		kinds = append(kinds, e.Type)
		if e.SourceID != 11 {
			t.Errorf("%s: SourceID = %d, want 11", e.Type, e.SourceID)
		}
	}
	want := []dnd.EventKind{dnd.EventDragStart, dnd.EventDragEnter, dnd.EventDrop, dnd.EventDragEnd}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}
	last := got[len(got)-1]
	if last.TargetID != 22 || !last.Dropped {
		t.Errorf("drag:end = %+v", last)
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e dnd.InteractionEvent) {
		count1++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e dnd.InteractionEvent) {
		count2++
	})

	store.EmitEvent(dnd.InteractionEvent{Type: dnd.EventDrop})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

package dnd

import (
	"fmt"

	"github.com/google/uuid"
)

// EventKind identifies a drag lifecycle event.
type EventKind uint8

const (
	EventDrag        EventKind = iota // fires on movement and on the native cadence while dragging
	EventDragStart                    // a drag session began
	EventDragEnter                    // a drop zone became the hovered target
	EventDragOver                     // the pointer moved over the hovered target
	EventDragLeave                    // the hovered target was left for empty space
	EventDragEnd                      // the session ended, dropped or not
	EventDrop                         // the source was released over an accepting target
	EventDragPrevent                  // a predicate rejected a source or target mid-gesture
)

var eventKindNames = [...]string{
	EventDrag:        "drag",
	EventDragStart:   "drag:start",
	EventDragEnter:   "drag:enter",
	EventDragOver:    "drag:over",
	EventDragLeave:   "drag:leave",
	EventDragEnd:     "drag:end",
	EventDrop:        "drop",
	EventDragPrevent: "drag:prevent",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event is implemented by every lifecycle payload. Payloads are snapshots
// built once per emission and shared by pointer with all listeners; they must
// not be modified.
type Event interface {
	Kind() EventKind
	Common() EventBase
}

// EventBase carries the fields common to every payload.
type EventBase struct {
	// Input is the raw input that caused the event. Cadence events carry the
	// last input seen by the adapter.
	Input Input
	// Source is the dragged element. For a start-phase DragPrevent it is the
	// rejected candidate.
	Source *Node
	// Session identifies the drag session; uuid.Nil outside a session.
	Session uuid.UUID
}

// Common returns the shared fields.
func (b EventBase) Common() EventBase { return b }

// Drag is emitted while dragging. Target is the hovered drop zone, if any.
type Drag struct {
	EventBase
	Target *Node
}

// DragStart is emitted when a source is picked up.
type DragStart struct {
	EventBase
}

// PreventPhase tells which transition a predicate rejected.
type PreventPhase uint8

const (
	PhaseStart PreventPhase = iota // IsDraggable rejected the source
	PhaseEnter                     // IsDroppable rejected the target
)

func (p PreventPhase) String() string {
	if p == PhaseEnter {
		return "enter"
	}
	return "start"
}

// DragPrevent is emitted when IsDraggable or IsDroppable rejects an element
// during a gesture. Target is the rejected zone in the enter phase.
type DragPrevent struct {
	EventBase
	Target *Node
	Phase  PreventPhase
}

// DragEnter is emitted when Target becomes the hovered drop zone. Previous is
// the zone hovered before it, left implicitly without a DragLeave.
type DragEnter struct {
	EventBase
	Target   *Node
	Previous *Node
}

// DragOver is emitted while the pointer stays over the hovered zone.
type DragOver struct {
	EventBase
	Target *Node
}

// DragLeave is emitted when the hovered zone is left for no zone.
type DragLeave struct {
	EventBase
	Target *Node
}

// DragEnd is emitted exactly once per session, after Drop when there is one.
// Target is the zone hovered at the end.
type DragEnd struct {
	EventBase
	Target   *Node
	Dropped  bool
	Canceled bool
}

// Drop is emitted when the source is released over an accepting Target.
type Drop struct {
	EventBase
	Target *Node
}

func (*Drag) Kind() EventKind        { return EventDrag }
func (*DragStart) Kind() EventKind   { return EventDragStart }
func (*DragPrevent) Kind() EventKind { return EventDragPrevent }
func (*DragEnter) Kind() EventKind   { return EventDragEnter }
func (*DragOver) Kind() EventKind    { return EventDragOver }
func (*DragLeave) Kind() EventKind   { return EventDragLeave }
func (*DragEnd) Kind() EventKind     { return EventDragEnd }
func (*Drop) Kind() EventKind        { return EventDrop }

// eventTarget extracts the target element of e, nil when the kind has none.
func eventTarget(e Event) *Node {
	switch ev := e.(type) {
	case *Drag:
		return ev.Target
	case *DragPrevent:
		return ev.Target
	case *DragEnter:
		return ev.Target
	case *DragOver:
		return ev.Target
	case *DragLeave:
		return ev.Target
	case *DragEnd:
		return ev.Target
	case *Drop:
		return ev.Target
	}
	return nil
}

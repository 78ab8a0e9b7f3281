package dnd

import (
	"fmt"
	"math"
)

// Adapter translates one family of raw input into an instance's drag
// lifecycle. The five transition methods are what every backend shares;
// HandleInput is where each backend's raw protocol is decoded.
//
// Every method is a no-op when it does not apply to the current state, so
// late or duplicate input never corrupts a session.
type Adapter interface {
	// DragStart tries to begin a drag on target. Reports whether it did.
	DragStart(in Input, target *Node) bool
	// DragEnter re-targets the drag at the drop zone target belongs to.
	DragEnter(in Input, target *Node)
	// DragLeave leaves the hovered drop zone.
	DragLeave(in Input)
	// DragEnd finishes the drag; droppable allows a drop on the hovered zone.
	DragEnd(in Input, droppable bool)
	// Cancel aborts the drag without a drop and clears pending timers.
	Cancel(in Input)

	// HandleInput consumes one raw input event.
	HandleInput(in Input)
	// Dispose stops every timer the adapter owns.
	Dispose()
}

func newAdapter(inst *Instance) (Adapter, error) {
	switch inst.cfg.Backend {
	case BackendPointer:
		return &pointerAdapter{inst: inst}, nil
	case BackendTouch:
		return &touchAdapter{inst: inst}, nil
	case BackendNative:
		return &nativeAdapter{inst: inst}, nil
	}
	return nil, fmt.Errorf("%w %s", ErrUnknownBackend, inst.cfg.Backend)
}

// hoverTracker remembers the last drop zone an adapter resolved, so a pointer
// lingering over a vetoed zone does not emit drag:prevent on every move.
type hoverTracker struct {
	zone *Node
}

// track classifies el and moves the session's hovered target accordingly.
// Staying over the hovered zone emits drag:over when emitOver is set.
func (h *hoverTracker) track(inst *Instance, in Input, el *Node, emitOver bool) {
	if !inst.Dragging() {
		return
	}
	zone := inst.MatchDropzone(el)
	if zone == h.zone {
		if emitOver && zone != nil && zone == inst.Over() {
			inst.overTarget(in)
		}
		return
	}
	h.zone = zone
	if zone == nil {
		inst.leave(in)
		return
	}
	if !inst.enter(in, zone) {
		// The pointer is over a vetoed zone, no longer over the old one.
		inst.leave(in)
	}
}

func (h *hoverTracker) reset() {
	h.zone = nil
}

func distance(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}

package dnd

// pointerAdapter drives a session from mouse-style input: press picks up
// the source (once the pointer leaves the dead zone, if one is set), every
// move emits drag and re-resolves the element under the pointer, release
// drops.
type pointerAdapter struct {
	inst *Instance

	pressed   bool
	pointerID int
	startX    float64
	startY    float64
	candidate *Node
	hover     hoverTracker
}

func (a *pointerAdapter) HandleInput(in Input) {
	if in.isEscape() {
		a.Cancel(in)
		return
	}
	switch in.Kind {
	case InputPress:
		a.press(in)
	case InputMove:
		a.move(in)
	case InputRelease:
		a.release(in)
	}
}

func (a *pointerAdapter) press(in Input) {
	if a.pressed || a.inst.Dragging() {
		return
	}
	a.pressed = true
	a.pointerID = in.PointerID
	a.startX, a.startY = in.X, in.Y
	a.candidate = a.inst.targetOf(in)
	if a.inst.cfg.DeadZone <= 0 && !a.DragStart(in, a.candidate) {
		// Not a source; ignore the rest of this press.
		a.candidate = nil
	}
}

func (a *pointerAdapter) move(in Input) {
	if !a.pressed || in.PointerID != a.pointerID {
		return
	}
	if !a.inst.Dragging() {
		if a.candidate == nil {
			return
		}
		if distance(a.startX, a.startY, in.X, in.Y) <= a.inst.cfg.DeadZone {
			return
		}
		if !a.DragStart(in, a.candidate) {
			// Not a source; ignore the rest of this press.
			a.candidate = nil
			return
		}
	}
	a.inst.drag(in)
	a.DragEnter(in, a.inst.elementAt(in.X, in.Y))
}

func (a *pointerAdapter) release(in Input) {
	if !a.pressed || in.PointerID != a.pointerID {
		return
	}
	a.pressed = false
	a.candidate = nil
	if !a.inst.Dragging() {
		return
	}
	// Settle the target under the release point without a drag:over.
	a.hover.track(a.inst, in, a.inst.elementAt(in.X, in.Y), false)
	a.DragEnd(in, true)
}

func (a *pointerAdapter) DragStart(in Input, target *Node) bool {
	a.hover.reset()
	return a.inst.start(in, target)
}

func (a *pointerAdapter) DragEnter(in Input, target *Node) {
	a.hover.track(a.inst, in, target, true)
}

func (a *pointerAdapter) DragLeave(in Input) {
	a.hover.reset()
	a.inst.leave(in)
}

func (a *pointerAdapter) DragEnd(in Input, droppable bool) {
	a.pressed = false
	a.candidate = nil
	a.hover.reset()
	a.inst.end(in, droppable)
}

func (a *pointerAdapter) Cancel(in Input) {
	a.pressed = false
	a.candidate = nil
	a.hover.reset()
	a.inst.cancel(in)
}

func (a *pointerAdapter) Dispose() {
	a.pressed = false
	a.candidate = nil
	a.hover.reset()
}

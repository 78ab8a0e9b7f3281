package dnd

// touchAdapter drives a session from touch input. A touch only becomes a
// drag after it has been held for Config.TouchDelay without wandering more
// than Config.TouchSlop; a shorter touch is a tap and a wandering one a
// scroll. Touch moves report the element the touch began on, so the element
// under the finger is resolved from the coordinates instead.
type touchAdapter struct {
	inst *Instance

	active    bool
	touchID   int
	startX    float64
	startY    float64
	candidate *Node
	pending   *Task
	hover     hoverTracker
}

func (a *touchAdapter) HandleInput(in Input) {
	if in.isEscape() {
		a.Cancel(in)
		return
	}
	switch in.Kind {
	case InputTouchStart:
		a.touchStart(in)
	case InputTouchMove:
		a.touchMove(in)
	case InputTouchEnd:
		a.touchEnd(in)
	case InputTouchCancel:
		if a.active && in.PointerID == a.touchID {
			a.Cancel(in)
		}
	}
}

func (a *touchAdapter) touchStart(in Input) {
	if a.active || a.inst.Dragging() {
		return
	}
	candidate := a.inst.targetOf(in)
	if a.inst.MatchSource(candidate) == nil {
		return
	}
	a.active = true
	a.touchID = in.PointerID
	a.startX, a.startY = in.X, in.Y
	a.candidate = candidate
	if a.inst.cfg.TouchDelay < 0 {
		a.longPress(in)
		return
	}
	a.pending = a.inst.scene.sched.After(a.inst.cfg.TouchDelay, func() {
		a.pending = nil
		a.longPress(in)
	})
}

// longPress fires when the touch has been held long enough.
func (a *touchAdapter) longPress(in Input) {
	if !a.active {
		return
	}
	if !a.DragStart(in, a.candidate) {
		a.active = false
		a.candidate = nil
	}
}

func (a *touchAdapter) touchMove(in Input) {
	if !a.active || in.PointerID != a.touchID {
		return
	}
	if a.pending != nil {
		if distance(a.startX, a.startY, in.X, in.Y) > a.inst.cfg.TouchSlop {
			a.abandon()
		}
		return
	}
	if !a.inst.Dragging() {
		return
	}
	a.inst.drag(in)
	a.DragEnter(in, a.inst.elementAt(in.X, in.Y))
}

func (a *touchAdapter) touchEnd(in Input) {
	if !a.active || in.PointerID != a.touchID {
		return
	}
	if !a.inst.Dragging() {
		a.abandon()
		return
	}
	a.hover.track(a.inst, in, a.inst.elementAt(in.X, in.Y), false)
	a.DragEnd(in, true)
}

// abandon forgets a touch that never became a drag.
func (a *touchAdapter) abandon() {
	a.pending.Stop()
	a.pending = nil
	a.active = false
	a.candidate = nil
}

func (a *touchAdapter) DragStart(in Input, target *Node) bool {
	a.hover.reset()
	return a.inst.start(in, target)
}

func (a *touchAdapter) DragEnter(in Input, target *Node) {
	a.hover.track(a.inst, in, target, true)
}

func (a *touchAdapter) DragLeave(in Input) {
	a.hover.reset()
	a.inst.leave(in)
}

func (a *touchAdapter) DragEnd(in Input, droppable bool) {
	a.abandon()
	a.hover.reset()
	a.inst.end(in, droppable)
}

func (a *touchAdapter) Cancel(in Input) {
	a.abandon()
	a.hover.reset()
	a.inst.cancel(in)
}

func (a *touchAdapter) Dispose() {
	a.abandon()
	a.hover.reset()
}

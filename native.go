package dnd

// nativeAdapter follows the platform drag protocol (dragstart, dragenter,
// dragover, dragleave, drop, dragend). Platforms deliver drag and dragover
// at irregular intervals, so while a drag is active the adapter emits its own
// drag and drag:over every Config.NativeInterval using the last input seen.
type nativeAdapter struct {
	inst *Instance

	ticker *Task
	last   Input
	hover  hoverTracker
}

func (a *nativeAdapter) HandleInput(in Input) {
	if in.isEscape() {
		a.Cancel(in)
		return
	}
	switch in.Kind {
	case InputNativeDragStart:
		a.DragStart(in, a.inst.targetOf(in))
	case InputNativeDrag:
		if a.inst.Dragging() {
			a.last = in
		}
	case InputNativeDragEnter, InputNativeDragOver:
		if !a.inst.Dragging() {
			return
		}
		a.last = in
		// Cadence drives drag:over; only re-target here.
		a.hover.track(a.inst, in, a.inst.targetOf(in), false)
	case InputNativeDragLeave:
		a.leave(in)
	case InputNativeDrop:
		if !a.inst.Dragging() {
			return
		}
		a.hover.track(a.inst, in, a.inst.targetOf(in), false)
		a.DragEnd(in, true)
	case InputNativeDragEnd:
		a.DragEnd(in, false)
	}
}

// leave handles dragleave. Platforms fire it on a zone when the pointer
// crosses into one of the zone's children, so it is only honored when the
// point no longer resolves to the hovered zone.
func (a *nativeAdapter) leave(in Input) {
	if !a.inst.Dragging() || a.hover.zone == nil {
		return
	}
	a.last = in
	if a.inst.MatchDropzone(a.inst.elementAt(in.X, in.Y)) == a.hover.zone {
		return
	}
	a.DragLeave(in)
}

func (a *nativeAdapter) tick() {
	if !a.inst.Dragging() {
		a.stopTicker()
		return
	}
	a.inst.drag(a.last)
	a.inst.overTarget(a.last)
}

func (a *nativeAdapter) stopTicker() {
	a.ticker.Stop()
	a.ticker = nil
}

func (a *nativeAdapter) DragStart(in Input, target *Node) bool {
	if a.inst.Dragging() {
		return false
	}
	a.hover.reset()
	if !a.inst.start(in, target) {
		return false
	}
	a.last = in
	a.stopTicker()
	a.ticker = a.inst.scene.sched.Every(a.inst.cfg.NativeInterval, a.tick)
	return true
}

func (a *nativeAdapter) DragEnter(in Input, target *Node) {
	a.last = in
	a.hover.track(a.inst, in, target, true)
}

func (a *nativeAdapter) DragLeave(in Input) {
	a.hover.reset()
	a.inst.leave(in)
}

func (a *nativeAdapter) DragEnd(in Input, droppable bool) {
	a.stopTicker()
	a.hover.reset()
	a.inst.end(in, droppable)
}

func (a *nativeAdapter) Cancel(in Input) {
	a.stopTicker()
	a.hover.reset()
	a.inst.cancel(in)
}

func (a *nativeAdapter) Dispose() {
	a.stopTicker()
	a.hover.reset()
}

package dnd

// Inject queues a raw input. Queued inputs are delivered one per Update, in
// order, exactly as HandleInput would deliver them.
func (s *Scene) Inject(in Input) {
	s.injectQueue = append(s.injectQueue, in)
}

// InjectPress queues a left-button press at world (x, y).
func (s *Scene) InjectPress(x, y float64) {
	s.Inject(Input{Kind: InputPress, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectMove queues a pointer move to world (x, y). Use between InjectPress
// and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.Inject(Input{Kind: InputMove, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectRelease queues a left-button release at world (x, y).
func (s *Scene) InjectRelease(x, y float64) {
	s.Inject(Input{Kind: InputRelease, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectDrag queues a full pointer drag: press at (fromX, fromY), frames-2
// linearly interpolated moves and a release at (toX, toY), so the sequence
// consumes `frames` frames. Minimum frames is 3 (press, one move, release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// InjectTouch queues a touch event (InputTouchStart, InputTouchMove,
// InputTouchEnd or InputTouchCancel) for touch id at (x, y).
func (s *Scene) InjectTouch(kind InputKind, id int, x, y float64) {
	s.Inject(Input{Kind: kind, PointerID: id, X: x, Y: y})
}

// InjectNative queues a platform drag protocol event at (x, y). The target is
// resolved from the coordinates when the event is delivered.
func (s *Scene) InjectNative(kind InputKind, x, y float64) {
	s.Inject(Input{Kind: kind, X: x, Y: y})
}

// InjectKey queues a key press.
func (s *Scene) InjectKey(key string) {
	s.Inject(Input{Kind: InputKeyDown, Key: key})
}

// PendingInput returns the number of queued inputs.
func (s *Scene) PendingInput() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one queued input and delivers it.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	in := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	s.HandleInput(in)
	return true
}

// ElementWrapper pairs a node with the ability to fire synthetic input on
// it, so tests and tools drive elements through the same path as real input.
type ElementWrapper struct {
	scene *Scene
	node  *Node
}

// Wrap returns an ElementWrapper for n.
func (s *Scene) Wrap(n *Node) ElementWrapper {
	return ElementWrapper{scene: s, node: n}
}

// Node returns the wrapped node.
func (w ElementWrapper) Node() *Node {
	return w.node
}

// Trigger delivers an input of the given kind at the node's world center,
// targeted at the node, immediately.
func (w ElementWrapper) Trigger(kind InputKind) {
	w.scene.Refresh()
	x, y := w.node.WorldCenter()
	w.TriggerAt(kind, x, y)
}

// TriggerAt delivers an input of the given kind at (x, y), targeted at the
// node, immediately.
func (w ElementWrapper) TriggerAt(kind InputKind, x, y float64) {
	w.scene.HandleInput(Input{Kind: kind, X: x, Y: y, Target: w.node, Button: MouseButtonLeft})
}

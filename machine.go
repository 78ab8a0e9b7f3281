package dnd

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Instance is one drag-and-drop zone bound to a container node. It owns the
// drag session (source and hovered target) and is the only writer of it;
// adapters drive it through the transitions below.
//
// An instance is Idle while Source() is nil and Dragging otherwise.
type Instance struct {
	scene     *Scene
	container *Node
	cfg       Config
	sel       selectors
	resolver  Resolver
	log       *zap.Logger

	bus     *Bus[EventKind, Event]
	adapter Adapter

	source  *Node
	over    *Node
	session uuid.UUID

	disposed bool
}

// Container returns the node the instance is bound to; nil once disposed.
func (i *Instance) Container() *Node { return i.container }

// Config returns the active configuration.
func (i *Instance) Config() Config { return i.cfg }

// Source returns the dragged element, nil while idle.
func (i *Instance) Source() *Node { return i.source }

// Over returns the hovered drop zone, nil when none.
func (i *Instance) Over() *Node { return i.over }

// Dragging reports whether a drag session is in progress.
func (i *Instance) Dragging() bool { return i.source != nil }

// Session returns the current session ID, uuid.Nil while idle.
func (i *Instance) Session() uuid.UUID { return i.session }

// Adapter returns the input adapter selected by Config.Backend.
func (i *Instance) Adapter() Adapter { return i.adapter }

// Disposed reports whether Dispose has been called.
func (i *Instance) Disposed() bool { return i.disposed }

// --- Subscription ---

// On registers fn for events of kind k.
func (i *Instance) On(k EventKind, fn Listener[Event]) Handle {
	return i.bus.On(k, fn)
}

// Once registers fn for the next event of kind k only.
func (i *Instance) Once(k EventKind, fn Listener[Event]) Handle {
	return i.bus.Once(k, fn)
}

// Off removes a listener registered with On, Once or a typed helper.
func (i *Instance) Off(h Handle) bool {
	return i.bus.Off(h)
}

// OnDrag registers a listener for drag events.
func (i *Instance) OnDrag(fn func(*Drag)) Handle {
	return i.bus.On(EventDrag, func(e Event) error { fn(e.(*Drag)); return nil })
}

// OnDragStart registers a listener for drag:start events.
func (i *Instance) OnDragStart(fn func(*DragStart)) Handle {
	return i.bus.On(EventDragStart, func(e Event) error { fn(e.(*DragStart)); return nil })
}

// OnDragEnter registers a listener for drag:enter events.
func (i *Instance) OnDragEnter(fn func(*DragEnter)) Handle {
	return i.bus.On(EventDragEnter, func(e Event) error { fn(e.(*DragEnter)); return nil })
}

// OnDragOver registers a listener for drag:over events.
func (i *Instance) OnDragOver(fn func(*DragOver)) Handle {
	return i.bus.On(EventDragOver, func(e Event) error { fn(e.(*DragOver)); return nil })
}

// OnDragLeave registers a listener for drag:leave events.
func (i *Instance) OnDragLeave(fn func(*DragLeave)) Handle {
	return i.bus.On(EventDragLeave, func(e Event) error { fn(e.(*DragLeave)); return nil })
}

// OnDragEnd registers a listener for drag:end events.
func (i *Instance) OnDragEnd(fn func(*DragEnd)) Handle {
	return i.bus.On(EventDragEnd, func(e Event) error { fn(e.(*DragEnd)); return nil })
}

// OnDrop registers a listener for drop events.
func (i *Instance) OnDrop(fn func(*Drop)) Handle {
	return i.bus.On(EventDrop, func(e Event) error { fn(e.(*Drop)); return nil })
}

// OnDragPrevent registers a listener for drag:prevent events.
func (i *Instance) OnDragPrevent(fn func(*DragPrevent)) Handle {
	return i.bus.On(EventDragPrevent, func(e Event) error { fn(e.(*DragPrevent)); return nil })
}

// --- Classification ---

// MatchSource returns the source el belongs to, honoring the handle
// selector, or nil.
func (i *Instance) MatchSource(el *Node) *Node {
	if i.disposed || el == nil {
		return nil
	}
	if !i.sel.handle.IsZero() {
		h := i.sel.handle.Closest(el, i.container)
		if h == nil {
			return nil
		}
		el = h
	}
	return i.sel.source.Closest(el, i.container)
}

// MatchDropzone returns the drop zone el belongs to, or nil.
func (i *Instance) MatchDropzone(el *Node) *Node {
	if i.disposed || el == nil {
		return nil
	}
	return i.sel.dropzone.Closest(el, i.container)
}

// allow runs a user predicate. A panicking predicate counts as a veto.
func (i *Instance) allow(pred func(*Node) bool, n *Node) (ok bool) {
	if pred == nil {
		return true
	}
	defer func() {
		if r := recover(); r != nil {
			i.log.Warn("predicate panicked", zap.Stringer("node", n), zap.Any("recovered", r))
			ok = false
		}
	}()
	return pred(n)
}

// --- Transitions ---

// start begins a session on the source candidate belongs to. Candidates
// outside any source are ignored; a vetoed source emits drag:prevent.
func (i *Instance) start(in Input, candidate *Node) bool {
	if i.disposed || i.source != nil {
		return false
	}
	src := i.MatchSource(candidate)
	if src == nil {
		return false
	}
	if !i.allow(i.cfg.IsDraggable, src) {
		i.emit(&DragPrevent{EventBase: EventBase{Input: in, Source: src}, Phase: PhaseStart})
		return false
	}
	i.source = src
	i.over = nil
	i.session = uuid.New()
	i.log.Debug("drag start", zap.Stringer("source", src), zap.Stringer("session", i.session))
	i.emit(&DragStart{EventBase: i.base(in)})
	return true
}

// enter makes zone the hovered target. zone must already be classified by
// MatchDropzone. Entering the hovered zone again is a no-op; entering another
// zone leaves the previous one implicitly. Returns false when the zone was
// vetoed (drag:prevent emitted, session unchanged).
func (i *Instance) enter(in Input, zone *Node) bool {
	if i.source == nil || zone == nil {
		return false
	}
	if zone == i.over {
		return true
	}
	if !i.allow(i.cfg.IsDroppable, zone) {
		i.emit(&DragPrevent{EventBase: i.base(in), Target: zone, Phase: PhaseEnter})
		return false
	}
	prev := i.over
	i.over = zone
	i.emit(&DragEnter{EventBase: i.base(in), Target: zone, Previous: prev})
	return true
}

// overTarget emits drag:over for the hovered zone.
func (i *Instance) overTarget(in Input) {
	if i.source == nil || i.over == nil {
		return
	}
	i.emit(&DragOver{EventBase: i.base(in), Target: i.over})
}

// leave clears the hovered zone.
func (i *Instance) leave(in Input) {
	if i.source == nil || i.over == nil {
		return
	}
	prev := i.over
	i.over = nil
	i.emit(&DragLeave{EventBase: i.base(in), Target: prev})
}

// drag emits the generic movement notification.
func (i *Instance) drag(in Input) {
	if i.source == nil {
		return
	}
	i.emit(&Drag{EventBase: i.base(in), Target: i.over})
}

// end finishes the session. The drop is legal when droppable is set and a
// zone is hovered. State is reset before anything is emitted, so a second
// end (or one triggered by a listener) is a no-op.
func (i *Instance) end(in Input, droppable bool) bool {
	if i.source == nil {
		return false
	}
	base := i.base(in)
	target := i.over
	i.reset()

	dropped := droppable && target != nil
	if dropped {
		i.emit(&Drop{EventBase: base, Target: target})
	}
	i.log.Debug("drag end", zap.Stringer("source", base.Source), zap.Bool("dropped", dropped))
	i.emit(&DragEnd{EventBase: base, Target: target, Dropped: dropped})
	return true
}

// cancel aborts the session without a drop.
func (i *Instance) cancel(in Input) bool {
	if i.source == nil {
		return false
	}
	base := i.base(in)
	target := i.over
	i.reset()
	i.log.Debug("drag canceled", zap.Stringer("source", base.Source))
	i.emit(&DragEnd{EventBase: base, Target: target, Canceled: true})
	return true
}

func (i *Instance) reset() {
	i.source = nil
	i.over = nil
	i.session = uuid.Nil
}

func (i *Instance) base(in Input) EventBase {
	return EventBase{Input: in, Source: i.source, Session: i.session}
}

// emit publishes e on the bus and forwards it to the scene's event store.
// Listener failures were already reported by the bus.
func (i *Instance) emit(e Event) {
	_ = i.bus.Emit(e.Kind(), e)
	if i.scene != nil {
		i.scene.forward(e)
	}
}

// reportListenerError is the bus reporter: the diagnostic channel for
// failing listeners.
func (i *Instance) reportListenerError(err *ListenerError) {
	i.log.Warn("listener failed",
		zap.String("event", err.Event),
		zap.Uint64("handle", uint64(err.Handle)),
		zap.Error(err.Err))
}

// --- Lifecycle ---

// Cancel interrupts an active drag as if the user pressed Escape.
// No-op while idle or after Dispose.
func (i *Instance) Cancel() {
	if i.disposed {
		return
	}
	i.adapter.Cancel(Input{Kind: InputKeyDown, Key: KeyEscape})
}

// Reconfigure validates cfg and swaps it in. An active drag is canceled
// first. Listeners are kept; a changed Backend replaces the adapter.
func (i *Instance) Reconfigure(cfg Config) error {
	if i.disposed {
		return ErrDisposed
	}
	sel, err := cfg.compile()
	if err != nil {
		return err
	}
	i.Cancel()
	backendChanged := cfg.Backend != i.cfg.Backend
	i.cfg = cfg.withDefaults()
	i.sel = sel
	i.resolver = i.pickResolver()
	if cfg.Logger != nil {
		i.log = cfg.Logger.Named("dnd")
	}
	if backendChanged {
		i.adapter.Dispose()
		i.adapter, err = newAdapter(i)
		if err != nil {
			return err
		}
	}
	return nil
}

// Dispose cancels any drag, stops adapter timers, drops every listener and
// detaches the instance from its scene. Safe to call more than once.
func (i *Instance) Dispose() {
	if i.disposed {
		return
	}
	i.Cancel()
	i.adapter.Dispose()
	i.bus.Destroy()
	if i.scene != nil {
		i.scene.removeInstance(i)
	}
	i.disposed = true
	i.container = nil
	i.resolver = nil
	i.reset()
}

func (i *Instance) pickResolver() Resolver {
	if i.cfg.Resolver != nil {
		return i.cfg.Resolver
	}
	return i.scene
}

// elementAt resolves the element under a point through the configured resolver.
func (i *Instance) elementAt(x, y float64) *Node {
	if i.resolver == nil {
		return nil
	}
	return i.resolver.ElementAt(x, y)
}

// targetOf returns the element an input refers to: its platform target when
// set, otherwise the element under its coordinates.
func (i *Instance) targetOf(in Input) *Node {
	if in.Target != nil {
		return in.Target
	}
	return i.elementAt(in.X, in.Y)
}

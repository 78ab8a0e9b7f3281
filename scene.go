package dnd

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventStore is the interface for optional ECS integration.
// When set on a Scene, lifecycle events of every instance are forwarded to it.
type EventStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent is the flattened form of a lifecycle event handed to an
// EventStore. Only events whose source carries an EntityID are forwarded.
type InteractionEvent struct {
	Type     EventKind
	Session  uuid.UUID
	SourceID uint32
	TargetID uint32
	GlobalX  float64
	GlobalY  float64
	Dropped  bool
	Canceled bool
}

// Scene owns the node tree, the scheduler that drives adapter timers, and the
// drag-and-drop instances bound to nodes of the tree. Scene is the default
// Resolver of its instances. Everything runs on the caller's goroutine.
type Scene struct {
	root      *Node
	sched     *Scheduler
	instances []*Instance
	store     EventStore
	log       *zap.Logger
	debug     bool

	hitBuf      []*Node
	injectQueue []Input
	runner      *ScriptRunner
}

// NewScene creates a new scene with a pre-created root node.
func NewScene() *Scene {
	return &Scene{
		root:  NewNode("root"),
		sched: NewScheduler(),
		log:   zap.NewNop(),
	}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Scheduler returns the scene's frame-driven scheduler.
func (s *Scene) Scheduler() *Scheduler {
	return s.sched
}

// SetLogger sets the logger instances inherit. nil restores a no-op logger.
func (s *Scene) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.log = l
	debugLogger = l
}

// SetEventStore sets the optional ECS bridge.
func (s *Scene) SetEventStore(store EventStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, tree operations
// on disposed nodes panic and deep trees are reported through the logger.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	debugLogger = s.log
}

// Update advances the scene by one frame of length dt: it refreshes world
// transforms, steps the attached script runner, delivers at most one injected
// input and then advances the scheduler.
func (s *Scene) Update(dt time.Duration) {
	s.Refresh()
	if s.runner != nil {
		s.runner.step(s)
	}
	s.processInjectedInput()
	s.sched.Advance(dt)
}

// Refresh recomputes dirty world transforms. Update and HandleInput call it;
// call it yourself after moving nodes when resolving points outside a frame.
func (s *Scene) Refresh() {
	updateWorldTransform(s.root, identityTransform, false)
}

// HandleInput routes one raw input event to every live instance, in creation
// order. Each instance processes it to completion before the next.
func (s *Scene) HandleInput(in Input) {
	s.Refresh()
	for _, inst := range slices.Clone(s.instances) {
		if inst.disposed {
			continue
		}
		inst.adapter.HandleInput(in)
	}
}

// ElementAt returns the topmost interactable node at the world point (x, y).
func (s *Scene) ElementAt(x, y float64) *Node {
	s.Refresh()
	var hit *Node
	hit, s.hitBuf = hitTest(s.root, s.hitBuf, x, y)
	return hit
}

// NewInstance binds a drag-and-drop instance to container, which must belong
// to this scene's tree for the default resolver to find its elements.
func (s *Scene) NewInstance(container *Node, cfg Config) (*Instance, error) {
	if container == nil {
		return nil, ErrNilContainer
	}
	sel, err := cfg.compile()
	if err != nil {
		return nil, err
	}
	inst := &Instance{
		scene:     s,
		container: container,
		cfg:       cfg.withDefaults(),
		sel:       sel,
	}
	inst.resolver = inst.pickResolver()
	if cfg.Logger != nil {
		inst.log = cfg.Logger.Named("dnd")
	} else {
		inst.log = s.log.Named("dnd")
	}
	inst.bus = NewBus[EventKind, Event](inst.reportListenerError)
	if inst.adapter, err = newAdapter(inst); err != nil {
		return nil, err
	}
	s.instances = append(s.instances, inst)
	return inst, nil
}

// Instances returns the live instances. The returned slice MUST NOT be mutated.
func (s *Scene) Instances() []*Instance {
	return s.instances
}

func (s *Scene) removeInstance(inst *Instance) {
	if i := slices.Index(s.instances, inst); i >= 0 {
		s.instances = slices.Delete(s.instances, i, i+1)
	}
}

// Dispose disposes every instance and stops all scheduled tasks.
func (s *Scene) Dispose() {
	for _, inst := range slices.Clone(s.instances) {
		inst.Dispose()
	}
	s.sched.StopAll()
	s.injectQueue = nil
	s.runner = nil
}

// forward hands e to the event store when the source has an entity.
func (s *Scene) forward(e Event) {
	if s.store == nil {
		return
	}
	base := e.Common()
	if base.Source == nil || base.Source.EntityID == 0 {
		return
	}
	ie := InteractionEvent{
		Type:     e.Kind(),
		Session:  base.Session,
		SourceID: base.Source.EntityID,
		GlobalX:  base.Input.X,
		GlobalY:  base.Input.Y,
	}
	if t := eventTarget(e); t != nil {
		ie.TargetID = t.EntityID
	}
	if end, ok := e.(*DragEnd); ok {
		ie.Dropped = end.Dropped
		ie.Canceled = end.Canceled
	}
	s.store.EmitEvent(ie)
}

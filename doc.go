// Package dnd is a drag-and-drop engine for retained-mode 2D scenes.
//
// A [Scene] owns a tree of [Node] values. Nodes are classified by selectors
// over their Name and Classes, the same way a stylesheet classifies elements:
//
//	.item          nodes carrying class "item"
//	#trash         the node named "trash"
//	.card.pinned   both classes
//	.a, .b         either
//
// An [Instance] binds one drag-and-drop zone to a container node:
//
//	scene := dnd.NewScene()
//	list := dnd.NewBox("list", 0, 0, 400, 300)
//	list.AddChild(dnd.NewBox("a", 10, 10, 80, 30, "item"))
//	list.AddChild(dnd.NewBox("bin", 200, 0, 200, 300, "zone"))
//	scene.Root().AddChild(list)
//
//	inst, err := scene.NewInstance(list, dnd.Config{Source: ".item", Dropzone: ".zone"})
//	if err != nil {
//		return err
//	}
//	inst.OnDrop(func(e *dnd.Drop) {
//		fmt.Println(e.Source.Name, "dropped on", e.Target.Name)
//	})
//
// # Lifecycle
//
// A session emits, in order: drag:start, any number of drag, drag:enter,
// drag:over and drag:leave, then drop (only for a legal drop) and exactly one
// drag:end. Entering a zone while over another leaves the first implicitly:
// only drag:enter is emitted, with [DragEnter.Previous] set. Predicates in
// [Config] can veto a source or a zone, which emits drag:prevent instead.
//
// # Input
//
// Raw input reaches instances through [Scene.HandleInput]. [Config.Backend]
// selects how it is read: pointer press / move / release, touch with a
// long-press delay, or the platform drag protocol with a synthetic cadence.
// Timers are driven by [Scene.Update], never by goroutines, so everything
// runs on the caller's goroutine. Package ebitendnd feeds Ebitengine input
// into a scene; [Scene.Inject] and [LoadScript] drive it synthetically.
//
// # Listeners
//
// Listeners run in registration order. A listener that panics or returns an
// error is reported to the instance logger as a [ListenerError]; the
// remaining listeners still run and the engine state is unaffected.
//
// # ECS integration
//
// [Scene.SetEventStore] forwards every event whose source carries an
// EntityID. Package ecs publishes them into a Donburi world.
package dnd

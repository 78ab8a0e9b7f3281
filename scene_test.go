package dnd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.root.Name != "root" {
		t.Errorf("root.Name = %q, want %q", s.root.Name, "root")
	}
	if s.Root() != s.root {
		t.Error("Root() should return the internal root node")
	}
	if s.Scheduler() == nil {
		t.Error("Scheduler() should not be nil")
	}
}

func TestSceneSetEventStore(t *testing.T) {
	s := NewScene()
	s.SetEventStore(nil) // should not panic
	if s.store != nil {
		t.Error("store should be nil")
	}
	store := &fakeStore{}
	s.SetEventStore(store)
	if s.store != store {
		t.Error("store not set")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	if !s.debug || !globalDebug {
		t.Error("debug mode should be enabled")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("debug mode should be disabled")
	}
}

func TestSceneSetLoggerNil(t *testing.T) {
	s := NewScene()
	s.SetLogger(nil)
	require.NotNil(t, s.log)
	s.log.Info("no-op") // should not panic
}

func TestSceneElementAtRefreshes(t *testing.T) {
	bd := newBoard()
	assert.Equal(t, bd.a, bd.scene.ElementAt(aX, aY))

	// Moving a node without a frame is picked up by the next query.
	bd.a.SetPosition(110, 10)
	assert.Equal(t, bd.list, bd.scene.ElementAt(aX, aY))
	assert.Equal(t, bd.a, bd.scene.ElementAt(135, aY))
}

func TestSceneHandleInputInstanceOrder(t *testing.T) {
	bd := newBoard()
	first := bd.instance(t, Config{})
	second := bd.instance(t, Config{})

	var order []string
	first.OnDragStart(func(*DragStart) { order = append(order, "first") })
	second.OnDragStart(func(*DragStart) { order = append(order, "second") })

	bd.press(aX, aY)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Len(t, bd.scene.Instances(), 2)
}

func TestSceneHandleInputSkipsInstanceDisposedMidPass(t *testing.T) {
	bd := newBoard()
	first := bd.instance(t, Config{})
	second := bd.instance(t, Config{})
	first.OnDragStart(func(*DragStart) { second.Dispose() })
	started := false
	second.OnDragStart(func(*DragStart) { started = true })

	bd.press(aX, aY)
	assert.False(t, started)
	assert.Equal(t, []*Instance{first}, bd.scene.Instances())
}

func TestSceneDisposeStopsEverything(t *testing.T) {
	bd := newBoard()
	inst := bd.instance(t, Config{Backend: BackendTouch})
	bd.scene.Scheduler().After(time.Second, func() { t.Error("task ran after Dispose") })
	bd.scene.HandleInput(Input{Kind: InputTouchStart, X: aX, Y: aY})
	bd.scene.InjectPress(aX, aY)
	require.Positive(t, bd.scene.Scheduler().Pending())

	bd.scene.Dispose()
	assert.True(t, inst.Disposed())
	assert.Empty(t, bd.scene.Instances())
	assert.Zero(t, bd.scene.Scheduler().Pending())
	assert.Zero(t, bd.scene.PendingInput())

	bd.tick(200)
	assert.False(t, inst.Dragging())
}

func TestSceneForwardSkipsNodesWithoutEntity(t *testing.T) {
	bd := newBoard()
	store := &fakeStore{}
	bd.scene.SetEventStore(store)
	bd.instance(t, Config{})

	bd.press(aX, aY)
	bd.release(z1X, z1Y)
	assert.Empty(t, store.events)
}

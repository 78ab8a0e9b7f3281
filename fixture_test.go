package dnd

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// board is the shared test layout:
//
//	list (0,0 600x200)
//	  a      .item   (10,10 50x50)
//	  b      .item   (10,100 50x50)
//	    grip .handle (0,0 10x10 inside b)
//	  z1     .zone   (200,0 100x200)
//	  z2     .zone   (350,0 100x200)
//	    inner        (10,10 30x30 inside z2)
//	outside  .item   (700,0 50x50, not in list)
type board struct {
	scene   *Scene
	list    *Node
	a, b    *Node
	grip    *Node
	z1, z2  *Node
	inner   *Node
	outside *Node
}

func newBoard() *board {
	s := NewScene()
	bd := &board{scene: s}
	bd.list = NewBox("list", 0, 0, 600, 200)
	bd.a = NewBox("a", 10, 10, 50, 50, "item")
	bd.b = NewBox("b", 10, 100, 50, 50, "item")
	bd.grip = NewBox("grip", 0, 0, 10, 10, "handle")
	bd.z1 = NewBox("z1", 200, 0, 100, 200, "zone")
	bd.z2 = NewBox("z2", 350, 0, 100, 200, "zone")
	bd.inner = NewBox("inner", 10, 10, 30, 30)
	bd.outside = NewBox("outside", 700, 0, 50, 50, "item")

	bd.b.AddChild(bd.grip)
	bd.z2.AddChild(bd.inner)
	bd.list.AddChild(bd.a)
	bd.list.AddChild(bd.b)
	bd.list.AddChild(bd.z1)
	bd.list.AddChild(bd.z2)
	s.Root().AddChild(bd.list)
	s.Root().AddChild(bd.outside)
	return bd
}

// Points in the layout.
const (
	aX, aY       = 35.0, 35.0
	bX, bY       = 35.0, 135.0
	gripX, gripY = 15.0, 105.0
	z1X, z1Y     = 250.0, 100.0
	z2X, z2Y     = 400.0, 150.0
	innerX       = 375.0
	innerY       = 25.0
	emptyX       = 120.0
	emptyY       = 100.0
)

func (bd *board) instance(t *testing.T, cfg Config) *Instance {
	t.Helper()
	if cfg.Source == "" {
		cfg.Source = ".item"
	}
	if cfg.Dropzone == "" {
		cfg.Dropzone = ".zone"
	}
	inst, err := bd.scene.NewInstance(bd.list, cfg)
	require.NoError(t, err)
	t.Cleanup(inst.Dispose)
	return inst
}

func (bd *board) press(x, y float64)   { bd.scene.HandleInput(Input{Kind: InputPress, X: x, Y: y}) }
func (bd *board) move(x, y float64)    { bd.scene.HandleInput(Input{Kind: InputMove, X: x, Y: y}) }
func (bd *board) release(x, y float64) { bd.scene.HandleInput(Input{Kind: InputRelease, X: x, Y: y}) }
func (bd *board) escape()              { bd.scene.HandleInput(Input{Kind: InputKeyDown, Key: KeyEscape}) }

// tick advances the scene clock by n frames of 10ms without injected input.
func (bd *board) tick(n int) {
	for range n {
		bd.scene.Update(frame)
	}
}

const frame = 10 * time.Millisecond

// recorder logs every lifecycle event an instance emits as a short string.
type recorder struct {
	log      []string
	withDrag bool
}

func record(inst *Instance) *recorder {
	r := &recorder{}
	for k := EventDrag; k <= EventDragPrevent; k++ {
		inst.On(k, func(e Event) error {
			if s := r.format(e); s != "" {
				r.log = append(r.log, s)
			}
			return nil
		})
	}
	return r
}

func (r *recorder) format(e Event) string {
	switch ev := e.(type) {
	case *Drag:
		if !r.withDrag {
			return ""
		}
		return "drag"
	case *DragStart:
		return "drag:start " + ev.Source.Name
	case *DragEnter:
		return "drag:enter " + ev.Target.Name
	case *DragOver:
		if !r.withDrag {
			return ""
		}
		return "drag:over " + ev.Target.Name
	case *DragLeave:
		return "drag:leave " + ev.Target.Name
	case *Drop:
		return "drop " + ev.Target.Name
	case *DragEnd:
		switch {
		case ev.Dropped:
			return "drag:end dropped"
		case ev.Canceled:
			return "drag:end canceled"
		}
		return "drag:end"
	case *DragPrevent:
		if ev.Phase == PhaseEnter {
			return "drag:prevent enter " + ev.Target.Name
		}
		return "drag:prevent start " + ev.Source.Name
	}
	return fmt.Sprintf("unexpected %T", e)
}

func (r *recorder) reset() { r.log = nil }

package dnd

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	node := NewNode("pos")
	node.X = 10
	node.Y = 20

	g := TweenPosition(node, 100, 200, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.X-100) > 0.5 {
		t.Errorf("X = %f, want ~100", node.X)
	}
	if math.Abs(node.Y-200) > 0.5 {
		t.Errorf("Y = %f, want ~200", node.Y)
	}
}

func TestTweenScaleReachesTarget(t *testing.T) {
	node := NewNode("scale")

	g := TweenScale(node, 2.0, 3.0, 0.5, ease.Linear)

	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.ScaleX-2.0) > 0.01 {
		t.Errorf("ScaleX = %f, want ~2.0", node.ScaleX)
	}
	if math.Abs(node.ScaleY-3.0) > 0.01 {
		t.Errorf("ScaleY = %f, want ~3.0", node.ScaleY)
	}
}


func TestTweenRotationReachesTarget(t *testing.T) {
	node := NewNode("rot")
	node.Rotation = 0

	tw := TweenRotation(node, math.Pi, 1.0, ease.Linear)

	tw.Update(0.5)
	tw.Update(0.5)

	if !tw.Done {
		t.Fatal("expected done after full duration")
	}
	if math.Abs(node.Rotation-math.Pi) > 0.05 {
		t.Errorf("Rotation = %f, want ~%f", node.Rotation, math.Pi)
	}
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	node := NewNode("done")
	g := TweenPosition(node, 50, 50, 0.5, ease.Linear)

	if g.Done {
		t.Fatal("should not be Done at start")
	}

	// Partway through, not done.
	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}

	// Complete.
	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}

	// Update after done is a no-op.
	g.Update(0.1)
	if !g.Done {
		t.Fatal("should remain Done")
	}
}

func TestTweenGroupMarksDirty(t *testing.T) {
	node := NewNode("dirty")

	// Clear the dirty flag first.
	node.transformDirty = false

	g := TweenPosition(node, 100, 100, 1.0, ease.Linear)
	g.Update(0.1)

	if !node.transformDirty {
		t.Fatal("expected node to be marked dirty after TweenGroup update")
	}
}

func TestTweenGroupDisposedNode(t *testing.T) {
	node := NewNode("disposed")
	node.X = 10
	node.Y = 20

	g := TweenPosition(node, 100, 200, 1.0, ease.Linear)

	// Dispose the node before tweening.
	node.Dispose()

	g.Update(0.1)

	if !g.Done {
		t.Fatal("expected Done after disposed node detected")
	}
	// Values should not have changed.
	if node.X != 10 {
		t.Errorf("X changed to %f on disposed node", node.X)
	}
	if node.Y != 20 {
		t.Errorf("Y changed to %f on disposed node", node.Y)
	}
}

func TestTweenGroupDisposedMidAnimation(t *testing.T) {
	node := NewNode("mid-dispose")

	g := TweenPosition(node, 100, 100, 1.0, ease.Linear)

	// Run a few frames.
	g.Update(0.1)
	g.Update(0.1)
	if g.Done {
		t.Fatal("should not be Done yet")
	}

	// Dispose mid-animation.
	node.Dispose()
	savedX := node.X
	savedY := node.Y

	g.Update(0.1)
	if !g.Done {
		t.Fatal("expected Done after node disposed mid-animation")
	}
	if node.X != savedX || node.Y != savedY {
		t.Error("node fields should not change after disposal")
	}
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	// Spot-check: linear vs OutCubic at the midpoint should differ.
	nodeL := NewNode("linear")
	nodeC := NewNode("cubic")

	gL := TweenPosition(nodeL, 100, 0, 1.0, ease.Linear)
	gC := TweenPosition(nodeC, 100, 0, 1.0, ease.OutCubic)

	// Advance to midpoint.
	gL.Update(0.5)
	gC.Update(0.5)

	// OutCubic should be ahead of linear at midpoint.
	if math.Abs(nodeL.X-nodeC.X) < 1.0 {
		t.Errorf("easing curves should produce different values at midpoint: linear=%f cubic=%f", nodeL.X, nodeC.X)
	}
}

func TestTweenGroupUpdateZeroAlloc(t *testing.T) {
	node := NewNode("alloc")
	g := TweenPosition(node, 100, 100, 1.0, ease.Linear)

	// Warm up; the first call might differ.
	g.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		g.Update(0.001)
	})
	if result > 0 {
		t.Errorf("TweenGroup.Update allocated %f times per run, want 0", result)
	}
}

func TestRevertReturnsToRest(t *testing.T) {
	node := NewBox("card", 10, 10, 50, 50)
	node.SetPosition(240, 90) // dragged away

	g := Revert(node, 10, 10, 0.5, nil)
	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done halfway")
	}
	if node.X <= 10 || node.X >= 240 {
		t.Errorf("X = %f, want between rest and drag position", node.X)
	}
	g.Update(0.25)
	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.X-10) > 0.5 || math.Abs(node.Y-10) > 0.5 {
		t.Errorf("position = (%f, %f), want ~(10, 10)", node.X, node.Y)
	}
}

func TestRevertZeroDurationSnaps(t *testing.T) {
	node := NewBox("card", 10, 10, 50, 50)
	node.SetPosition(240, 90)

	g := Revert(node, 10, 10, 0, ease.Linear)
	if !g.Done {
		t.Fatal("expected an already finished group")
	}
	if node.X != 10 || node.Y != 10 {
		t.Errorf("position = (%f, %f), want (10, 10)", node.X, node.Y)
	}
	g.Update(0.1) // no tweens, no panic
}

func TestRevertAfterCanceledDrag(t *testing.T) {
	bd := newBoard()
	inst := bd.instance(t, Config{})
	var g *TweenGroup
	inst.OnDrag(func(e *Drag) { e.Source.SetPosition(e.Input.X, e.Input.Y) })
	inst.OnDragEnd(func(e *DragEnd) {
		if !e.Dropped {
			g = Revert(e.Source, 10, 10, 0.2, ease.Linear)
		}
	})

	bd.press(aX, aY)
	bd.move(emptyX, emptyY)
	bd.escape()
	if g == nil {
		t.Fatal("expected a revert tween after cancel")
	}
	for !g.Done {
		g.Update(0.05)
	}
	if math.Abs(bd.a.X-10) > 0.5 || math.Abs(bd.a.Y-10) > 0.5 {
		t.Errorf("a = (%f, %f), want ~(10, 10)", bd.a.X, bd.a.Y)
	}
}

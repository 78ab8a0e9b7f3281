// Package ebitendnd feeds Ebitengine mouse, touch and keyboard state into a
// dnd.Scene once per tick.
package ebitendnd

import (
	"maps"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/dnd"
)

// Touch is one active touch point in screen coordinates.
type Touch struct {
	ID   int
	X, Y float64
}

// Frame is a snapshot of the input devices for one tick.
type Frame struct {
	CursorX, CursorY float64
	// Left mouse button held.
	Pressed   bool
	Touches   []Touch
	Escape    bool
	Modifiers dnd.KeyModifiers
}

// Driver turns successive Frames into dnd inputs. Poll reads a Frame from
// Ebitengine; Feed accepts any Frame, which is how tests drive it.
type Driver struct {
	scene *dnd.Scene

	// ScreenToWorld converts screen coordinates before delivery, usually a
	// dnd.Camera's method value. nil means screen and world coordinates
	// coincide.
	ScreenToWorld func(x, y float64) (float64, float64)

	mouseDown  bool
	lastX      float64
	lastY      float64
	touches    map[int]Touch
	seenCursor bool
	touchIDs   []ebiten.TouchID
}

// New creates a driver for scene.
func New(scene *dnd.Scene) *Driver {
	return &Driver{scene: scene, touches: make(map[int]Touch)}
}

// Scene returns the driven scene.
func (d *Driver) Scene() *dnd.Scene {
	return d.scene
}

// Update polls Ebitengine, feeds the frame and advances the scene by one tick.
// Call it from your game's Update.
func (d *Driver) Update() error {
	d.Feed(d.Poll())
	d.scene.Update(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// Poll reads the current device state from Ebitengine.
func (d *Driver) Poll() Frame {
	mx, my := ebiten.CursorPosition()
	f := Frame{
		CursorX:   float64(mx),
		CursorY:   float64(my),
		Pressed:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Escape:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Modifiers: readModifiers(),
	}
	d.touchIDs = ebiten.AppendTouchIDs(d.touchIDs[:0])
	for _, tid := range d.touchIDs {
		tx, ty := ebiten.TouchPosition(tid)
		f.Touches = append(f.Touches, Touch{ID: int(tid), X: float64(tx), Y: float64(ty)})
	}
	return f
}

// Feed diffs f against the previous frame and delivers the resulting inputs:
// mouse press, move and release, then touch start, move and end, then Escape.
func (d *Driver) Feed(f Frame) {
	d.feedMouse(f)
	d.feedTouches(f)
	if f.Escape {
		d.scene.HandleInput(dnd.Input{Kind: dnd.InputKeyDown, Key: dnd.KeyEscape, Modifiers: f.Modifiers})
	}
}

func (d *Driver) feedMouse(f Frame) {
	x, y := d.toWorld(f.CursorX, f.CursorY)
	moved := !d.seenCursor || x != d.lastX || y != d.lastY
	d.seenCursor = true
	d.lastX, d.lastY = x, y

	in := dnd.Input{X: x, Y: y, Button: dnd.MouseButtonLeft, Modifiers: f.Modifiers}
	switch {
	case f.Pressed && !d.mouseDown:
		d.mouseDown = true
		in.Kind = dnd.InputPress
	case !f.Pressed && d.mouseDown:
		d.mouseDown = false
		in.Kind = dnd.InputRelease
	case moved:
		in.Kind = dnd.InputMove
	default:
		return
	}
	d.scene.HandleInput(in)
}

func (d *Driver) feedTouches(f Frame) {
	active := make(map[int]bool, len(f.Touches))
	for _, t := range f.Touches {
		active[t.ID] = true
		x, y := d.toWorld(t.X, t.Y)
		cur := Touch{ID: t.ID, X: x, Y: y}
		prev, known := d.touches[t.ID]
		d.touches[t.ID] = cur
		switch {
		case !known:
			d.scene.HandleInput(dnd.Input{Kind: dnd.InputTouchStart, PointerID: t.ID, X: x, Y: y, Modifiers: f.Modifiers})
		case prev.X != x || prev.Y != y:
			d.scene.HandleInput(dnd.Input{Kind: dnd.InputTouchMove, PointerID: t.ID, X: x, Y: y, Modifiers: f.Modifiers})
		}
	}
	for _, id := range slices.Sorted(maps.Keys(d.touches)) {
		if active[id] {
			continue
		}
		t := d.touches[id]
		delete(d.touches, id)
		d.scene.HandleInput(dnd.Input{Kind: dnd.InputTouchEnd, PointerID: id, X: t.X, Y: t.Y, Modifiers: f.Modifiers})
	}
}

func (d *Driver) toWorld(x, y float64) (float64, float64) {
	if d.ScreenToWorld != nil {
		return d.ScreenToWorld(x, y)
	}
	return x, y
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() dnd.KeyModifiers {
	var mods dnd.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= dnd.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= dnd.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= dnd.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= dnd.ModMeta
	}
	return mods
}

package dnd

import "fmt"

// InputKind identifies a raw input event fed to a Scene.
type InputKind uint8

const (
	InputNone InputKind = iota

	// Pointer (mouse emulation).
	InputPress
	InputMove
	InputRelease

	// Touch emulation.
	InputTouchStart
	InputTouchMove
	InputTouchEnd
	InputTouchCancel

	// Platform drag protocol.
	InputNativeDragStart
	InputNativeDrag
	InputNativeDragEnter
	InputNativeDragOver
	InputNativeDragLeave
	InputNativeDrop
	InputNativeDragEnd

	InputKeyDown
)

var inputKindNames = [...]string{
	InputNone:            "none",
	InputPress:           "press",
	InputMove:            "move",
	InputRelease:         "release",
	InputTouchStart:      "touchstart",
	InputTouchMove:       "touchmove",
	InputTouchEnd:        "touchend",
	InputTouchCancel:     "touchcancel",
	InputNativeDragStart: "dragstart",
	InputNativeDrag:      "drag",
	InputNativeDragEnter: "dragenter",
	InputNativeDragOver:  "dragover",
	InputNativeDragLeave: "dragleave",
	InputNativeDrop:      "drop",
	InputNativeDragEnd:   "dragend",
	InputKeyDown:         "keydown",
}

func (k InputKind) String() string {
	if int(k) < len(inputKindNames) {
		return inputKindNames[k]
	}
	return fmt.Sprintf("InputKind(%d)", uint8(k))
}

// ParseInputKind maps a raw event name ("press", "touchmove", "dragover", ...)
// back to its InputKind.
func ParseInputKind(name string) (InputKind, error) {
	for i, n := range inputKindNames {
		if n == name && InputKind(i) != InputNone {
			return InputKind(i), nil
		}
	}
	return InputNone, fmt.Errorf("unknown input kind %q", name)
}

// Input is a raw input snapshot. Coordinates are world coordinates. Target is
// the element the platform reported the event on; when nil, adapters resolve
// the element under (X, Y) themselves.
type Input struct {
	Kind      InputKind
	X, Y      float64
	Target    *Node
	PointerID int
	Button    MouseButton
	Key       string
	Modifiers KeyModifiers
}

// isEscape reports whether in is the keyboard interrupt that cancels a drag.
func (in Input) isEscape() bool {
	return in.Kind == InputKeyDown && in.Key == KeyEscape
}

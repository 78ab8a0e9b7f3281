package dnd

import (
	"fmt"
	"strings"
	"time"

	"github.com/phanxgames/dnd/internal/util"
	"go.uber.org/zap"
)

// Backend selects the input adapter an instance listens with.
type Backend uint8

const (
	BackendPointer Backend = iota // mouse-style press / move / release
	BackendTouch                  // touchstart with long-press, touchmove, touchend
	BackendNative                 // platform dragstart / dragover / drop protocol
)

func (b Backend) String() string {
	switch b {
	case BackendPointer:
		return "pointer"
	case BackendTouch:
		return "touch"
	case BackendNative:
		return "native"
	}
	return fmt.Sprintf("Backend(%d)", uint8(b))
}

// ParseBackend maps "pointer", "touch" or "native" to a Backend.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "pointer", "mouse":
		return BackendPointer, nil
	case "touch":
		return BackendTouch, nil
	case "native":
		return BackendNative, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownBackend, name)
}

const (
	// DefaultTouchDelay is the long-press a touch must hold before it drags.
	DefaultTouchDelay = 200 * time.Millisecond

	// DefaultTouchSlop is how far (world units) a touch may wander during
	// the long-press before it is treated as a scroll and abandoned.
	DefaultTouchSlop = 10.0

	// DefaultNativeInterval is the cadence of synthetic drag / drag:over
	// notifications during a native drag.
	DefaultNativeInterval = 50 * time.Millisecond
)

// Config describes a drag-and-drop instance. Source and Dropzone are
// required; everything else has a usable zero value.
type Config struct {
	// Source selects draggable elements, e.g. ".item".
	Source string
	// Dropzone selects elements that accept drops, e.g. ".zone".
	Dropzone string
	// Handle, when set, restricts drag starts to elements inside a match.
	Handle string

	// IsDraggable vetoes a matched source. nil allows every source.
	IsDraggable func(*Node) bool
	// IsDroppable vetoes a matched drop zone. nil allows every zone.
	IsDroppable func(*Node) bool

	Backend Backend

	// DeadZone is the distance the pointer must travel after a press before
	// the drag starts. Zero starts on press.
	DeadZone float64
	// TouchDelay is the long-press delay; zero means DefaultTouchDelay,
	// a negative value starts on touchstart.
	TouchDelay time.Duration
	// TouchSlop is the allowed wander during the long-press; zero means
	// DefaultTouchSlop.
	TouchSlop float64
	// NativeInterval is the synthetic cadence; zero means DefaultNativeInterval.
	NativeInterval time.Duration

	// Resolver replaces the scene's hit test.
	Resolver Resolver
	// Logger receives diagnostics. nil inherits the scene logger.
	Logger *zap.Logger
}

// withDefaults returns c with zero-valued tunables replaced.
func (c Config) withDefaults() Config {
	if c.TouchDelay == 0 {
		c.TouchDelay = DefaultTouchDelay
	}
	if c.TouchSlop == 0 {
		c.TouchSlop = DefaultTouchSlop
	}
	if c.NativeInterval <= 0 {
		c.NativeInterval = DefaultNativeInterval
	}
	if c.DeadZone < 0 {
		c.DeadZone = 0
	}
	return c
}

// selectors holds the compiled selectors of a Config.
type selectors struct {
	source, dropzone, handle Selector
}

func (c Config) compile() (selectors, error) {
	var sel selectors
	var err error
	if sel.source, err = ParseSelector(c.Source); err != nil {
		return sel, fmt.Errorf("source selector: %w", err)
	}
	if sel.dropzone, err = ParseSelector(c.Dropzone); err != nil {
		return sel, fmt.Errorf("dropzone selector: %w", err)
	}
	if strings.TrimSpace(c.Handle) != "" {
		if sel.handle, err = ParseSelector(c.Handle); err != nil {
			return sel, fmt.Errorf("handle selector: %w", err)
		}
	}
	if c.Backend > BackendNative {
		return sel, fmt.Errorf("%w %s", ErrUnknownBackend, c.Backend)
	}
	if c.Resolver != nil && !util.IsDefined(c.Resolver) {
		return sel, fmt.Errorf("dnd: resolver is a %s", util.TypeName(c.Resolver))
	}
	return sel, nil
}

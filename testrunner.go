package dnd

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	ID     int     `yaml:"id,omitempty"`
	Key    string  `yaml:"key,omitempty"`
}

// script is the top-level structure of a gesture script.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner sequences injected input across frames. Attach it to a Scene
// with SetScriptRunner; it advances one step per Update once the inject
// queue has drained.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML (or JSON) gesture script:
//
//	steps:
//	  - {action: press, x: 10, y: 10}
//	  - {action: move, x: 120, y: 40}
//	  - {action: wait, frames: 5}
//	  - {action: release, x: 120, y: 40}
//
// Actions are the raw input names accepted by ParseInputKind ("press",
// "touchstart", "dragover", ...), plus "drag" (pointer drag from fromX/fromY
// to toX/toY over frames), "key" and "wait".
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "drag", "key", "wait":
			continue
		}
		if _, err := ParseInputKind(st.Action); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScriptRunner attaches a runner to the scene. nil detaches.
func (s *Scene) SetScriptRunner(r *ScriptRunner) {
	s.runner = r
}

// Done reports whether every step has been executed and delivered.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Scene.Update.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "key":
		key := st.Key
		if key == "" {
			key = KeyEscape
		}
		s.InjectKey(key)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	default:
		kind, _ := ParseInputKind(st.Action)
		s.Inject(Input{Kind: kind, X: st.X, Y: st.Y, PointerID: st.ID, Button: MouseButtonLeft})
	}
}

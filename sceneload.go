package dnd

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/dnd/internal/util"
)

// nodeSpec is one node in a scene description.
type nodeSpec struct {
	Name     string      `yaml:"name"`
	Class    any         `yaml:"class"`
	Rect     []float64   `yaml:"rect"`
	Z        int         `yaml:"z"`
	Entity   uint32      `yaml:"entity"`
	Hidden   bool        `yaml:"hidden"`
	Inert    bool        `yaml:"inert"`
	Children []*nodeSpec `yaml:"children"`
}

type sceneSpec struct {
	Nodes []*nodeSpec `yaml:"nodes"`
}

// LoadYAML builds nodes from a YAML (or JSON) scene description and appends
// them under the root:
//
//	nodes:
//	  - name: list
//	    rect: [0, 0, 400, 300]
//	    children:
//	      - {name: a, class: item, rect: [10, 10, 80, 30]}
//	      - {name: z1, class: [zone, wide], rect: [200, 0, 200, 300], z: 1}
//
// rect is [x, y, width, height] relative to the parent. class is a single
// class name or a list. Nothing is attached when the description is invalid.
func (s *Scene) LoadYAML(data []byte) error {
	var desc sceneSpec
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	built := make([]*Node, 0, len(desc.Nodes))
	for i, ns := range desc.Nodes {
		n, err := buildNode(ns, fmt.Sprintf("nodes[%d]", i))
		if err != nil {
			return fmt.Errorf("load scene: %w", err)
		}
		built = append(built, n)
	}
	for _, n := range built {
		s.root.AddChild(n)
	}
	return nil
}

func buildNode(ns *nodeSpec, path string) (*Node, error) {
	if ns == nil {
		return nil, fmt.Errorf("%s: empty node", path)
	}
	classes, ok := util.EnsureSlice[string](ns.Class)
	if !ok {
		return nil, fmt.Errorf("%s: class must be a string or a list of strings, got %s", path, util.TypeName(ns.Class))
	}
	n := NewNode(ns.Name, classes...)
	switch len(ns.Rect) {
	case 0:
	case 4:
		n.X, n.Y = ns.Rect[0], ns.Rect[1]
		n.Width, n.Height = ns.Rect[2], ns.Rect[3]
	default:
		return nil, fmt.Errorf("%s: rect needs 4 values, got %d", path, len(ns.Rect))
	}
	n.ZIndex = ns.Z
	n.EntityID = ns.Entity
	n.Visible = !ns.Hidden
	n.Interactable = !ns.Inert
	for i, cs := range ns.Children {
		c, err := buildNode(cs, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		n.AddChild(c)
	}
	return n, nil
}

package dnd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boardYAML = `
nodes:
  - name: list
    rect: [0, 0, 600, 200]
    children:
      - {name: a, class: item, rect: [10, 10, 50, 50], entity: 11}
      - {name: b, class: [item, heavy], rect: [10, 100, 50, 50]}
      - {name: z1, class: zone, rect: [200, 0, 100, 200], z: 2, entity: 22}
      - {name: ghost, class: zone, rect: [350, 0, 100, 200], hidden: true}
      - {name: wall, rect: [500, 0, 50, 200], inert: true}
  - name: outside
    class: item
    rect: [700, 0, 50, 50]
`

func TestLoadYAML(t *testing.T) {
	s := NewScene()
	require.NoError(t, s.LoadYAML([]byte(boardYAML)))

	top := s.Root().Children()
	require.Len(t, top, 2)
	list := top[0]
	assert.Equal(t, "list", list.Name)
	require.Len(t, list.Children(), 5)

	a := list.Children()[0]
	assert.Equal(t, []string{"item"}, a.Classes)
	assert.Equal(t, uint32(11), a.EntityID)
	assert.Equal(t, 10.0, a.X)
	assert.Equal(t, 50.0, a.Height)

	b := list.Children()[1]
	assert.True(t, b.HasClass("heavy"))

	z1 := list.Children()[2]
	assert.Equal(t, 2, z1.ZIndex)

	assert.False(t, list.Children()[3].Visible)
	assert.False(t, list.Children()[4].Interactable)
	assert.True(t, a.Visible && a.Interactable)
}

func TestLoadYAMLDrivesADrag(t *testing.T) {
	s := NewScene()
	require.NoError(t, s.LoadYAML([]byte(boardYAML)))
	inst, err := s.NewInstance(s.Root().Children()[0], Config{Source: ".item", Dropzone: ".zone"})
	require.NoError(t, err)
	t.Cleanup(inst.Dispose)

	var dropped string
	inst.OnDrop(func(e *Drop) { dropped = e.Target.Name })
	s.HandleInput(Input{Kind: InputPress, X: 35, Y: 35})
	s.HandleInput(Input{Kind: InputMove, X: 250, Y: 100})
	s.HandleInput(Input{Kind: InputRelease, X: 250, Y: 100})
	assert.Equal(t, "z1", dropped)

	// The hidden zone is never hit.
	dropped = ""
	s.HandleInput(Input{Kind: InputPress, X: 35, Y: 35})
	s.HandleInput(Input{Kind: InputRelease, X: 400, Y: 100})
	assert.Empty(t, dropped)
}

func TestLoadYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", "nodes: [", "load scene"},
		{"short rect", "nodes:\n  - {name: a, rect: [1, 2, 3]}", "nodes[0]: rect needs 4 values, got 3"},
		{"class type", "nodes:\n  - {name: a, class: 5}", "nodes[0]: class must be a string or a list of strings, got int"},
		{"nested", "nodes:\n  - name: a\n    children:\n      - {name: b}\n      - {name: c, rect: [1]}", "nodes[0].children[1]: rect"},
		{"null node", "nodes:\n  - {name: a}\n  -", "nodes[1]: empty node"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScene()
			err := s.LoadYAML([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.want), "error %q does not contain %q", err, tt.want)
			assert.Empty(t, s.Root().Children(), "nothing is attached on failure")
		})
	}
}

func TestLoadYAMLAppends(t *testing.T) {
	s := NewScene()
	require.NoError(t, s.LoadYAML([]byte("nodes:\n  - {name: one}")))
	require.NoError(t, s.LoadYAML([]byte("nodes:\n  - {name: two}")))
	require.Len(t, s.Root().Children(), 2)
	assert.Equal(t, "two", s.Root().Children()[1].Name)
}

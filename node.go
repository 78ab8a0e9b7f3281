package dnd

import "slices"

// HitShape is used for custom hit testing regions in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// nodeIDCounter is a plain counter; the tree is only touched from one goroutine.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is an element of the scene tree. Drag sources, drop zones and handles
// are all plain nodes classified by selectors over Name and Classes.
type Node struct {
	// Identity
	ID      uint32
	Name    string
	Classes []string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Size of the default rectangular hit area, in local coordinates.
	Width, Height float64

	worldTransform [6]float64
	transformDirty bool

	// Visibility & interaction
	Visible      bool
	Interactable bool
	ZIndex       int

	// Metadata
	UserData any
	EntityID uint32

	// HitShape overrides the Width x Height rectangle when set.
	HitShape HitShape

	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// NewNode creates an interactable node with the given classes and no size.
// A node without size or HitShape groups children but is never hit itself.
func NewNode(name string, classes ...string) *Node {
	n := &Node{Name: name, Classes: classes}
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Visible = true
	n.Interactable = true
	n.transformDirty = true
	n.childrenSorted = true
	return n
}

// NewBox creates a node positioned at (x, y) with a w x h hit rectangle.
func NewBox(name string, x, y, w, h float64, classes ...string) *Node {
	n := NewNode(name, classes...)
	n.X, n.Y = x, y
	n.Width, n.Height = w, h
	return n
}

// --- Classes ---

// HasClass reports whether the node carries class c.
func (n *Node) HasClass(c string) bool {
	return slices.Contains(n.Classes, c)
}

// AddClass adds each class not already present.
func (n *Node) AddClass(classes ...string) {
	for _, c := range classes {
		if !n.HasClass(c) {
			n.Classes = append(n.Classes, c)
		}
	}
}

// RemoveClass removes c if present.
func (n *Node) RemoveClass(c string) {
	n.Classes = slices.DeleteFunc(n.Classes, func(x string) bool { return x == c })
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("dnd: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("dnd: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("dnd: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("dnd: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(n.children) {
		panic("dnd: child index out of range")
	}
	child.Parent = n
	n.children = slices.Insert(n.children, index, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("dnd: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// IndexOf returns child's position among n's children, or -1.
func (n *Node) IndexOf(child *Node) int {
	return slices.Index(n.children, child)
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	return other != nil && isAncestor(n, other)
}

// Find returns the first node named name in n's subtree (depth first,
// n included), or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.HitShape = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// String returns the node's name, for logs and test output.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.Name
}

// --- Helpers ---

// isAncestor reports whether candidate is node or an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	if i := slices.Index(n.children, child); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

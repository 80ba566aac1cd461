// Package scene is the viewer's scene graph: container nodes holding
// screen-space-width line meshes.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"origamiview/internal/geom"
)

// Node is a scene graph node. A node may carry a Line; its Position offsets
// the node and all of its descendants.
type Node struct {
	Name     string
	Position mgl64.Vec3
	Visible  bool
	Line     *Line

	parent   *Node
	children []*Node
}

func NewNode(name string) *Node {
	return &Node{Name: name, Visible: true}
}

// Add attaches children, detaching each from its previous parent first.
func (n *Node) Add(children ...*Node) {
	for _, c := range children {
		if c == nil || c == n {
			continue
		}
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
}

// Remove detaches child and reports whether it was attached to n.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return true
		}
	}
	return false
}

// Clear detaches all children.
func (n *Node) Clear() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) Children() []*Node { return n.children }

// WorldPosition is the accumulated offset of n and its ancestors.
func (n *Node) WorldPosition() mgl64.Vec3 {
	var p mgl64.Vec3
	for c := n; c != nil; c = c.parent {
		p = p.Add(c.Position)
	}
	return p
}

// Walk visits n and its descendants depth first with each node's world
// offset. Returning false from fn skips that node's children.
func (n *Node) Walk(fn func(node *Node, offset mgl64.Vec3) bool) {
	var base mgl64.Vec3
	if n.parent != nil {
		base = n.parent.WorldPosition()
	}
	n.walk(base, fn)
}

func (n *Node) walk(base mgl64.Vec3, fn func(*Node, mgl64.Vec3) bool) {
	off := base.Add(n.Position)
	if !fn(n, off) {
		return
	}
	for _, c := range n.children {
		c.walk(off, fn)
	}
}

// BoundingBox returns the world-space bounds of every line point in the
// subtree, visible or not. It is empty when the subtree has no points.
func (n *Node) BoundingBox() geom.Box3 {
	b := geom.EmptyBox()
	n.Walk(func(node *Node, off mgl64.Vec3) bool {
		if node.Line != nil {
			b.ExpandByBox(geom.BoxOf(node.Line.Points).Translate(off))
		}
		return true
	})
	return b
}

// Find returns the first node named name in the subtree.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ mgl64.Vec3) bool {
		if found != nil {
			return false
		}
		if node.Name == name {
			found = node
			return false
		}
		return true
	})
	return found
}

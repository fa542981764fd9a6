// SPDX-License-Identifier: GPL-2.0-or-later

package node

import (
	"go3ds/conlog"
	"go3ds/stream"
)

// Graph holds the nodes of a scene in insertion order. Parent links are
// resolved from the parent ids by Link.
type Graph struct {
	Nodes []*Node

	parent   []int
	children [][]int
	roots    []int
	linked   bool
}

func (g *Graph) Len() int {
	return len(g.Nodes)
}

// Add appends n and returns its index. The graph is relinked on the next
// query.
func (g *Graph) Add(n *Node) int {
	g.Nodes = append(g.Nodes, n)
	g.linked = false
	return len(g.Nodes) - 1
}

// Remove deletes the node at index i together with its descendants.
func (g *Graph) Remove(i int) {
	g.ensure()
	drop := make([]bool, len(g.Nodes))
	stack := []int{i}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		drop[j] = true
		stack = append(stack, g.children[j]...)
	}
	nodes := g.Nodes[:0]
	for j, n := range g.Nodes {
		if !drop[j] {
			nodes = append(nodes, n)
		}
	}
	for j := len(nodes); j < len(g.Nodes); j++ {
		g.Nodes[j] = nil
	}
	g.Nodes = nodes
	g.Link()
}

// Link resolves the parent ids. A node whose parent id matches no node, or
// whose ancestors lead back to itself, becomes a root.
func (g *Graph) Link() {
	ids := make(map[uint16]int, len(g.Nodes))
	for i, n := range g.Nodes {
		if _, ok := ids[n.ID]; !ok {
			ids[n.ID] = i
		}
	}
	g.parent = make([]int, len(g.Nodes))
	for i, n := range g.Nodes {
		g.parent[i] = -1
		if n.ParentID == NoParent {
			continue
		}
		p, ok := ids[n.ParentID]
		if !ok {
			conlog.Debug("node parent not found", "node", n.Name, "parent", n.ParentID)
			continue
		}
		if p != i {
			g.parent[i] = p
		}
	}
	for i := range g.Nodes {
		steps := 0
		for p := g.parent[i]; p >= 0 && steps <= len(g.Nodes); p = g.parent[p] {
			if p == i {
				conlog.Warn("node parent cycle", "node", g.Nodes[i].Name)
				g.parent[i] = -1
				break
			}
			steps++
		}
	}
	g.children = make([][]int, len(g.Nodes))
	g.roots = g.roots[:0]
	for i, p := range g.parent {
		if p < 0 {
			g.roots = append(g.roots, i)
		} else {
			g.children[p] = append(g.children[p], i)
		}
	}
	g.linked = true
}

func (g *Graph) ensure() {
	if !g.linked {
		g.Link()
	}
}

// Roots returns the indices of the nodes without parent.
func (g *Graph) Roots() []int {
	g.ensure()
	return g.roots
}

func (g *Graph) Children(i int) []int {
	g.ensure()
	return g.children[i]
}

// Parent returns the index of the parent of i or -1.
func (g *Graph) Parent(i int) int {
	g.ensure()
	return g.parent[i]
}

// ByName returns the index of the first node called name of the given
// kind, or -1. A zero kind matches every kind.
func (g *Graph) ByName(name string, kind Kind) int {
	for i, n := range g.Nodes {
		if n.Name == name && (kind == 0 || n.Kind() == kind) {
			return i
		}
	}
	return -1
}

func (g *Graph) ByID(id uint16) int {
	for i, n := range g.Nodes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// Walk calls fn for every node, parents before children.
func (g *Graph) Walk(fn func(i int, n *Node) error) error {
	g.ensure()
	stack := make([]int, 0, len(g.Nodes))
	for k := len(g.roots) - 1; k >= 0; k-- {
		stack = append(stack, g.roots[k])
	}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := fn(i, g.Nodes[i]); err != nil {
			return err
		}
		c := g.children[i]
		for k := len(c) - 1; k >= 0; k-- {
			stack = append(stack, c[k])
		}
	}
	return nil
}

// Write writes all nodes depth first. Lights with a spot node of the same
// name are tagged as spot lights.
func (g *Graph) Write(w *stream.Writer) error {
	return g.Walk(func(i int, n *Node) error {
		parent := uint16(NoParent)
		if p := g.parent[i]; p >= 0 {
			parent = g.Nodes[p].ID
		}
		spot := n.Kind() == LightNode && g.ByName(n.Name, SpotNode) >= 0
		return n.Write(w, parent, spot)
	})
}

// SPDX-License-Identifier: GPL-2.0-or-later

package node

import (
	"go3ds/math/mat"
	"go3ds/math/quat"
	"go3ds/math/vec"
)

// State is a node sampled at one frame.
type State struct {
	Kind     Kind
	World    mat.Matrix
	Position vec.Vec3
	Rotation quat.Quat
	Scale    vec.Vec3
	Color    vec.Vec3
	FOV      float32
	Roll     float32
	Hotspot  float32
	Falloff  float32
	Hidden   bool
	Morph    string
}

// eval samples the tracks of n at t. parent is the world matrix of the
// parent node.
func (n *Node) eval(parent mat.Matrix, t float32) State {
	s := State{
		Kind:     n.Kind(),
		World:    parent,
		Rotation: quat.Identity(),
		Scale:    vec.Vec3{X: 1, Y: 1, Z: 1},
	}
	switch d := n.Data.(type) {
	case *AmbientData:
		s.Color = d.Color.Eval(t)
	case *ObjectData:
		s.Position = d.Pos.Eval(t)
		s.Rotation = d.Rot.Eval(t)
		s.Scale = d.Scl.Eval(t)
		s.Hidden = d.Hide.Eval(t)
		s.Morph = d.Morph.Eval(t)
		local := mat.Identity()
		local.Translate(s.Position)
		local.Rotate(s.Rotation)
		local.Scale(s.Scale)
		s.World = mat.Mul(local, parent)
	case *CameraData:
		s.Position = d.Pos.Eval(t)
		s.FOV = d.FOV.Eval(t)
		s.Roll = d.Roll.Eval(t)
		s.World.Translate(s.Position)
	case *TargetData:
		s.Position = d.Pos.Eval(t)
		s.World.Translate(s.Position)
	case *LightData:
		s.Position = d.Pos.Eval(t)
		s.Color = d.Color.Eval(t)
		s.Hotspot = d.Hotspot.Eval(t)
		s.Falloff = d.Falloff.Eval(t)
		s.Roll = d.Roll.Eval(t)
		s.World.Translate(s.Position)
	case *SpotData:
		s.Position = d.Pos.Eval(t)
		s.World.Translate(s.Position)
	}
	return s
}

// Eval evaluates every node at frame t and stores the world matrices in
// Node.Matrix.
func (g *Graph) Eval(t float32) {
	g.Walk(func(i int, n *Node) error {
		parent := mat.Identity()
		if p := g.parent[i]; p >= 0 {
			parent = g.Nodes[p].Matrix
		}
		n.Matrix = n.eval(parent, t).World
		return nil
	})
}

// Evaluate samples node i and its ancestors at frame t without touching
// the cached matrices.
func (g *Graph) Evaluate(i int, t float32) State {
	g.ensure()
	var chain []int
	for p := g.parent[i]; p >= 0; p = g.parent[p] {
		chain = append(chain, p)
	}
	world := mat.Identity()
	for k := len(chain) - 1; k >= 0; k-- {
		world = g.Nodes[chain[k]].eval(world, t).World
	}
	return g.Nodes[i].eval(world, t)
}

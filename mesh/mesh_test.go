// SPDX-License-Identifier: GPL-2.0-or-later

package mesh

import (
	"reflect"
	"testing"

	"go3ds/chunk"
	"go3ds/math/mat"
	"go3ds/math/vec"
	"go3ds/stream"
)

func roundTrip(t *testing.T, in *Mesh) *Mesh {
	t.Helper()
	buf := stream.NewBuffer(nil)
	if err := in.Write(stream.NewWriter(buf)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	buf.Seek(0, 0)
	r := stream.NewReader(buf)
	c, err := chunk.Begin(r, chunk.N_TRI_OBJECT)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	out := New(in.Name)
	if err := out.Read(r, c); err != nil {
		t.Fatalf("Read: %v", err)
	}
	return out
}

func box() *Mesh {
	m := New("box")
	m.Points = []vec.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 2},
	}
	m.PointFlags = []uint16{0, 1, 2, 3}
	m.TexCoords = [][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	m.Faces = []Face{
		{Points: [3]uint16{0, 1, 2}, Flags: 7, Smoothing: 1, Material: "red"},
		{Points: [3]uint16{0, 2, 3}, Flags: 7, Smoothing: 2},
		{Points: [3]uint16{1, 2, 3}, Flags: 3, Smoothing: 1, Material: "blue"},
		{Points: [3]uint16{0, 1, 3}, Flags: 3, Material: "red"},
	}
	m.Color = 4
	m.Matrix.Translate(vec.Vec3{X: 5, Y: 6, Z: 7})
	m.Box = [6]string{"f", "b", "l", "r", "t", "u"}
	return m
}

func TestRoundTrip(t *testing.T) {
	in := box()
	in.Map = MapData{
		Type:           MAP_CYLINDRICAL,
		Tile:           [2]float32{2, 2},
		Position:       vec.Vec3{X: 1},
		Scale:          3,
		Matrix:         mat.Identity(),
		PlanarSize:     [2]float32{4, 5},
		CylinderHeight: 6,
	}
	out := roundTrip(t, in)
	if !reflect.DeepEqual(out, in) {
		t.Errorf("Read = %+v\nwant %+v", out, in)
	}
}

func TestMaterialGroups(t *testing.T) {
	groups := box().materialGroups()
	want := []group{
		{name: "red", faces: []uint16{0, 3}},
		{name: "blue", faces: []uint16{2}},
	}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("materialGroups() = %v, want %v", groups, want)
	}
}

func TestMirroredMatrix(t *testing.T) {
	in := box()
	in.Matrix = mat.Identity()
	in.Matrix.Scale(vec.Vec3{X: -1, Y: 1, Z: 1})
	out := roundTrip(t, in)
	for i := range in.Points {
		if !vec.Near(out.Points[i], in.Points[i], 1e-5) {
			t.Errorf("Points[%d] = %v, want %v", i, out.Points[i], in.Points[i])
		}
	}
}

func TestBoundingBox(t *testing.T) {
	min, max := box().BoundingBox()
	if min != (vec.Vec3{}) || max != (vec.Vec3{X: 1, Y: 1, Z: 2}) {
		t.Errorf("BoundingBox() = %v, %v", min, max)
	}
}

func TestTooLarge(t *testing.T) {
	m := New("big")
	m.Points = make([]vec.Vec3, 0x10000)
	buf := stream.NewBuffer(nil)
	if err := m.Write(stream.NewWriter(buf)); err == nil {
		t.Errorf("Write() = nil, want error")
	}
}

// SPDX-License-Identifier: GPL-2.0-or-later

// Package model holds a complete 3DS scene: the MDATA settings, the named
// objects and the keyframer node graph.
package model

import (
	"github.com/google/uuid"

	"go3ds/atmosphere"
	"go3ds/background"
	"go3ds/camera"
	"go3ds/chunk"
	"go3ds/light"
	"go3ds/material"
	"go3ds/math/vec"
	"go3ds/mesh"
	"go3ds/node"
	"go3ds/shadow"
	"go3ds/viewport"
)

type File struct {
	// ID identifies the in-memory scene, it is not stored in the file.
	ID uuid.UUID

	MeshVersion       uint32
	KeyfRevision      uint16
	Name              string
	MasterScale       float32
	ConstructionPlane vec.Vec3
	Ambient           chunk.RGB
	Shadow            shadow.Shadow
	Background        background.Background
	Atmosphere        atmosphere.Atmosphere
	Viewport          viewport.Viewport
	ViewportKeyf      viewport.Viewport
	Frames            int32
	SegmentFrom       int32
	SegmentTo         int32
	CurrentFrame      int32

	Materials []*material.Material
	Cameras   []*camera.Camera
	Lights    []*light.Light
	Meshes    []*mesh.Mesh
	Nodes     node.Graph
}

func New() *File {
	return &File{
		ID:           uuid.Must(uuid.NewV7()),
		MeshVersion:  3,
		KeyfRevision: 5,
		Name:         "LIB3DS",
		MasterScale:  1,
		Frames:       100,
		SegmentTo:    100,
	}
}

func index[T any](s []T, name string, nameOf func(T) string) int {
	for i, v := range s {
		if nameOf(v) == name {
			return i
		}
	}
	return -1
}

// insert puts v at position at, a negative or too large at appends.
func insert[T any](s []T, v T, at int) []T {
	if at < 0 || at >= len(s) {
		return append(s, v)
	}
	s = append(s, v)
	copy(s[at+1:], s[at:])
	s[at] = v
	return s
}

func removeAt[T any](s []T, i int) []T {
	copy(s[i:], s[i+1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1]
}

func materialName(m *material.Material) string { return m.Name }
func cameraName(c *camera.Camera) string       { return c.Name }
func lightName(l *light.Light) string          { return l.Name }
func meshName(m *mesh.Mesh) string             { return m.Name }

// MaterialIndex returns the index of the first material called name or -1.
func (f *File) MaterialIndex(name string) int {
	return index(f.Materials, name, materialName)
}

func (f *File) Material(name string) *material.Material {
	if i := f.MaterialIndex(name); i >= 0 {
		return f.Materials[i]
	}
	return nil
}

// InsertMaterial inserts m before index at, at < 0 appends.
func (f *File) InsertMaterial(m *material.Material, at int) {
	f.Materials = insert(f.Materials, m, at)
}

// RemoveMaterial removes the first material called name.
func (f *File) RemoveMaterial(name string) bool {
	i := f.MaterialIndex(name)
	if i < 0 {
		return false
	}
	f.Materials = removeAt(f.Materials, i)
	return true
}

func (f *File) CameraIndex(name string) int {
	return index(f.Cameras, name, cameraName)
}

func (f *File) Camera(name string) *camera.Camera {
	if i := f.CameraIndex(name); i >= 0 {
		return f.Cameras[i]
	}
	return nil
}

func (f *File) InsertCamera(c *camera.Camera, at int) {
	f.Cameras = insert(f.Cameras, c, at)
}

func (f *File) RemoveCamera(name string) bool {
	i := f.CameraIndex(name)
	if i < 0 {
		return false
	}
	f.Cameras = removeAt(f.Cameras, i)
	return true
}

func (f *File) LightIndex(name string) int {
	return index(f.Lights, name, lightName)
}

func (f *File) Light(name string) *light.Light {
	if i := f.LightIndex(name); i >= 0 {
		return f.Lights[i]
	}
	return nil
}

func (f *File) InsertLight(l *light.Light, at int) {
	f.Lights = insert(f.Lights, l, at)
}

func (f *File) RemoveLight(name string) bool {
	i := f.LightIndex(name)
	if i < 0 {
		return false
	}
	f.Lights = removeAt(f.Lights, i)
	return true
}

func (f *File) MeshIndex(name string) int {
	return index(f.Meshes, name, meshName)
}

func (f *File) Mesh(name string) *mesh.Mesh {
	if i := f.MeshIndex(name); i >= 0 {
		return f.Meshes[i]
	}
	return nil
}

func (f *File) InsertMesh(m *mesh.Mesh, at int) {
	f.Meshes = insert(f.Meshes, m, at)
}

func (f *File) RemoveMesh(name string) bool {
	i := f.MeshIndex(name)
	if i < 0 {
		return false
	}
	f.Meshes = removeAt(f.Meshes, i)
	return true
}

// Eval evaluates the node graph at frame t, see node.Graph.Eval.
func (f *File) Eval(t float32) {
	f.Nodes.Eval(t)
}

// BoundingBox returns the bounds of all mesh points. ok is false if there
// are no points.
func (f *File) BoundingBox() (min, max vec.Vec3, ok bool) {
	var corners []vec.Vec3
	for _, m := range f.Meshes {
		if len(m.Points) == 0 {
			continue
		}
		lo, hi := m.BoundingBox()
		corners = append(corners, lo, hi)
	}
	if len(corners) == 0 {
		return vec.Vec3{}, vec.Vec3{}, false
	}
	min, max = vec.Bounds(corners)
	return min, max, true
}

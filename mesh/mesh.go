// SPDX-License-Identifier: GPL-2.0-or-later

// Package mesh reads and writes N_TRI_OBJECT chunks.
package mesh

import (
	"github.com/pkg/errors"

	"go3ds/chunk"
	"go3ds/conlog"
	"go3ds/math/mat"
	"go3ds/math/vec"
	"go3ds/stream"
)

// ErrTooLarge is returned when a list does not fit its 16 bit count.
var ErrTooLarge = errors.New("mesh list exceeds 65535 entries")

// texture mapping types
const (
	MAP_NONE        = -1
	MAP_PLANAR      = 0
	MAP_CYLINDRICAL = 1
	MAP_SPHERICAL   = 2
)

// box map sides
const (
	BoxFront = iota
	BoxBack
	BoxLeft
	BoxRight
	BoxTop
	BoxBottom
)

type Face struct {
	Points    [3]uint16
	Flags     uint16
	Smoothing uint32
	// Material is the name of the material, empty for none.
	Material string
}

// MapData describes how texture coordinates were generated.
type MapData struct {
	Type           int16
	Tile           [2]float32
	Position       vec.Vec3
	Scale          float32
	Matrix         mat.Matrix
	PlanarSize     [2]float32
	CylinderHeight float32
}

type Mesh struct {
	Name       string
	Flags      chunk.ObjectFlags
	Color      uint8
	Matrix     mat.Matrix
	Points     []vec.Vec3
	PointFlags []uint16
	TexCoords  [][2]float32
	Map        MapData
	Faces      []Face
	Box        [6]string
}

func New(name string) *Mesh {
	return &Mesh{
		Name:   name,
		Matrix: mat.Identity(),
		Map: MapData{
			Type:   MAP_NONE,
			Matrix: mat.Identity(),
		},
	}
}

// BoundingBox returns the extent of the points, zero vectors if there are
// none.
func (m *Mesh) BoundingBox() (min, max vec.Vec3) {
	return vec.Bounds(m.Points)
}

// mirror returns the matrix flipping points along x in the mesh frame. It is
// needed for meshes whose matrix has a negative determinant.
func (m *Mesh) mirror() (mat.Matrix, bool) {
	if m.Matrix.Det3() >= 0 {
		return mat.Matrix{}, false
	}
	inv, ok := m.Matrix.Inv()
	if !ok {
		return mat.Matrix{}, false
	}
	s := m.Matrix
	s.Scale(vec.Vec3{X: -1, Y: 1, Z: 1})
	return mat.Mul(inv, s), true
}

func readMatrix43(r *stream.Reader) mat.Matrix {
	m := mat.Identity()
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = r.ReadFloat32()
		}
	}
	return m
}

func writeMatrix43(w *stream.Writer, m mat.Matrix) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			w.WriteFloat32(m[i][j])
		}
	}
}

// Read fills m from the N_TRI_OBJECT chunk c.
func (m *Mesh) Read(r *stream.Reader, c *chunk.Chunk) error {
	for n := c.Next(r); n != nil; n = c.Next(r) {
		switch n.ID {
		case chunk.MESH_MATRIX:
			m.Matrix = readMatrix43(r)
		case chunk.MESH_COLOR:
			m.Color = r.ReadUint8()
		case chunk.POINT_ARRAY:
			cnt := int(r.ReadUint16())
			m.Points = make([]vec.Vec3, 0, cnt)
			for i := 0; i < cnt && r.Err() == nil; i++ {
				m.Points = append(m.Points, r.ReadVec3())
			}
		case chunk.POINT_FLAG_ARRAY:
			cnt := int(r.ReadUint16())
			m.PointFlags = make([]uint16, 0, cnt)
			for i := 0; i < cnt && r.Err() == nil; i++ {
				m.PointFlags = append(m.PointFlags, r.ReadUint16())
			}
		case chunk.TEX_VERTS:
			cnt := int(r.ReadUint16())
			m.TexCoords = make([][2]float32, 0, cnt)
			for i := 0; i < cnt && r.Err() == nil; i++ {
				m.TexCoords = append(m.TexCoords, [2]float32{r.ReadFloat32(), r.ReadFloat32()})
			}
		case chunk.MESH_TEXTURE_INFO:
			d := &m.Map
			d.Type = r.ReadInt16()
			d.Tile[0] = r.ReadFloat32()
			d.Tile[1] = r.ReadFloat32()
			d.Position = r.ReadVec3()
			d.Scale = r.ReadFloat32()
			d.Matrix = readMatrix43(r)
			d.PlanarSize[0] = r.ReadFloat32()
			d.PlanarSize[1] = r.ReadFloat32()
			d.CylinderHeight = r.ReadFloat32()
		case chunk.FACE_ARRAY:
			m.readFaces(r, n)
		default:
			chunk.Unknown(c, n)
		}
	}
	c.End(r)
	if err := r.Err(); err != nil {
		return err
	}
	if mm, ok := m.mirror(); ok {
		for i, p := range m.Points {
			m.Points[i] = mm.TransformPoint(p)
		}
	}
	return nil
}

func (m *Mesh) readFaces(r *stream.Reader, c *chunk.Chunk) {
	cnt := int(r.ReadUint16())
	m.Faces = make([]Face, 0, cnt)
	for i := 0; i < cnt && r.Err() == nil; i++ {
		var f Face
		f.Points[0] = r.ReadUint16()
		f.Points[1] = r.ReadUint16()
		f.Points[2] = r.ReadUint16()
		f.Flags = r.ReadUint16()
		m.Faces = append(m.Faces, f)
	}
	c.BeginChildren(r)
	for n := c.Next(r); n != nil; n = c.Next(r) {
		switch n.ID {
		case chunk.SMOOTH_GROUP:
			for i := range m.Faces {
				m.Faces[i].Smoothing = r.ReadUint32()
			}
		case chunk.MSH_MAT_GROUP:
			name := r.ReadString(64)
			k := int(r.ReadUint16())
			for i := 0; i < k && r.Err() == nil; i++ {
				idx := int(r.ReadUint16())
				if idx >= len(m.Faces) {
					conlog.Debug("material group face out of range", "material", name, "face", idx)
					continue
				}
				m.Faces[idx].Material = name
			}
		case chunk.MSH_BOXMAP:
			for i := range m.Box {
				m.Box[i] = r.ReadString(64)
			}
		default:
			chunk.Unknown(c, n)
		}
	}
}

func (m *Mesh) Write(w *stream.Writer) error {
	if len(m.Points) > 0xFFFF || len(m.Faces) > 0xFFFF ||
		len(m.TexCoords) > 0xFFFF || len(m.PointFlags) > 0xFFFF {
		return errors.Wrapf(ErrTooLarge, "mesh %q", m.Name)
	}
	return chunk.Write(w, chunk.N_TRI_OBJECT, func() error {
		if len(m.Points) > 0 {
			chunk.WriteHeader(w, chunk.POINT_ARRAY, uint32(8+12*len(m.Points)))
			w.WriteUint16(uint16(len(m.Points)))
			mm, mirrored := m.mirror()
			for _, p := range m.Points {
				if mirrored {
					p = mm.TransformPoint(p)
				}
				w.WriteVec3(p)
			}
		}
		if len(m.TexCoords) > 0 {
			chunk.WriteHeader(w, chunk.TEX_VERTS, uint32(8+8*len(m.TexCoords)))
			w.WriteUint16(uint16(len(m.TexCoords)))
			for _, t := range m.TexCoords {
				w.WriteFloat32(t[0])
				w.WriteFloat32(t[1])
			}
		}
		if d := &m.Map; d.Type != MAP_NONE {
			chunk.WriteHeader(w, chunk.MESH_TEXTURE_INFO, 92)
			w.WriteInt16(d.Type)
			w.WriteFloat32(d.Tile[0])
			w.WriteFloat32(d.Tile[1])
			w.WriteVec3(d.Position)
			w.WriteFloat32(d.Scale)
			writeMatrix43(w, d.Matrix)
			w.WriteFloat32(d.PlanarSize[0])
			w.WriteFloat32(d.PlanarSize[1])
			w.WriteFloat32(d.CylinderHeight)
		}
		if len(m.PointFlags) > 0 {
			chunk.WriteHeader(w, chunk.POINT_FLAG_ARRAY, uint32(8+2*len(m.PointFlags)))
			w.WriteUint16(uint16(len(m.PointFlags)))
			for _, f := range m.PointFlags {
				w.WriteUint16(f)
			}
		}
		chunk.WriteHeader(w, chunk.MESH_MATRIX, 54)
		writeMatrix43(w, m.Matrix)
		if m.Color != 0 {
			chunk.WriteHeader(w, chunk.MESH_COLOR, 7)
			w.WriteUint8(m.Color)
		}
		if len(m.Faces) > 0 {
			if err := m.writeFaces(w); err != nil {
				return err
			}
		}
		return w.Err()
	})
}

func (m *Mesh) writeFaces(w *stream.Writer) error {
	return chunk.Write(w, chunk.FACE_ARRAY, func() error {
		w.WriteUint16(uint16(len(m.Faces)))
		for _, f := range m.Faces {
			w.WriteUint16(f.Points[0])
			w.WriteUint16(f.Points[1])
			w.WriteUint16(f.Points[2])
			w.WriteUint16(f.Flags)
		}
		for _, g := range m.materialGroups() {
			name := stream.Truncate(g.name, 64)
			chunk.WriteHeader(w, chunk.MSH_MAT_GROUP, uint32(6+len(name)+1+2+2*len(g.faces)))
			w.WriteString(name, 64)
			w.WriteUint16(uint16(len(g.faces)))
			for _, i := range g.faces {
				w.WriteUint16(i)
			}
		}
		chunk.WriteHeader(w, chunk.SMOOTH_GROUP, uint32(6+4*len(m.Faces)))
		for _, f := range m.Faces {
			w.WriteUint32(f.Smoothing)
		}
		if m.Box != [6]string{} {
			err := chunk.Write(w, chunk.MSH_BOXMAP, func() error {
				for _, b := range m.Box {
					w.WriteString(b, 64)
				}
				return w.Err()
			})
			if err != nil {
				return err
			}
		}
		return w.Err()
	})
}

type group struct {
	name  string
	faces []uint16
}

// materialGroups groups the faces by material in order of first use.
func (m *Mesh) materialGroups() []group {
	var groups []group
	idx := map[string]int{}
	for i, f := range m.Faces {
		if f.Material == "" {
			continue
		}
		g, ok := idx[f.Material]
		if !ok {
			g = len(groups)
			idx[f.Material] = g
			groups = append(groups, group{name: f.Material})
		}
		groups[g].faces = append(groups[g].faces, uint16(i))
	}
	return groups
}

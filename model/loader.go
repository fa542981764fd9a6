// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"io"

	"github.com/pkg/errors"

	"go3ds/atmosphere"
	"go3ds/background"
	"go3ds/camera"
	"go3ds/chunk"
	"go3ds/conlog"
	"go3ds/light"
	"go3ds/material"
	"go3ds/mesh"
	"go3ds/node"
	"go3ds/shadow"
	"go3ds/stream"
	"go3ds/viewport"
)

var ErrUnknownFormat = errors.New("unknown file format")

var (
	loaders map[uint16]LoadFunc
)

func init() {
	loaders = make(map[uint16]LoadFunc)
	Register(chunk.M3DMAGIC, readMagic)
	Register(chunk.MLIBMAGIC, readMagic)
	Register(chunk.CMAGIC, readMagic)
	Register(chunk.MDATA, readMDATA)
}

// LoadFunc reads the root chunk c into f.
type LoadFunc func(f *File, r *stream.Reader, c *chunk.Chunk) error

// Register sets the loader for files whose root chunk has id.
func Register(id uint16, fn LoadFunc) {
	loaders[id] = fn
}

// Load reads a scene from rs. The stream is left wherever reading stopped.
func Load(rs io.ReadSeeker) (*File, error) {
	r := stream.NewReader(rs)
	c, err := chunk.Begin(r, 0)
	if err != nil {
		return nil, errors.Wrap(err, "reading root chunk")
	}
	fn, ok := loaders[c.ID]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFormat, "root chunk 0x%04X", c.ID)
	}
	f := New()
	if err := fn(f, r, c); err != nil {
		return nil, err
	}
	if err := r.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %v", c)
	}
	conlog.Debug("loaded scene", "id", f.ID, "meshes", len(f.Meshes),
		"materials", len(f.Materials), "nodes", f.Nodes.Len())
	return f, nil
}

func readMagic(f *File, r *stream.Reader, c *chunk.Chunk) error {
	for ch := c.Next(r); ch != nil; ch = c.Next(r) {
		var err error
		switch ch.ID {
		case chunk.M3D_VERSION:
			f.MeshVersion = r.ReadUint32()
		case chunk.MDATA:
			err = readMDATA(f, r, ch)
		case chunk.KFDATA:
			err = readKFDATA(f, r, ch)
		case chunk.MAT_ENTRY:
			err = f.readMaterial(r, ch)
		default:
			chunk.Unknown(c, ch)
		}
		if err != nil {
			return err
		}
	}
	c.End(r)
	return r.Err()
}

func readMDATA(f *File, r *stream.Reader, c *chunk.Chunk) error {
	for ch := c.Next(r); ch != nil; ch = c.Next(r) {
		var err error
		switch {
		case ch.ID == chunk.MESH_VERSION:
			f.MeshVersion = r.ReadUint32()
		case ch.ID == chunk.MASTER_SCALE:
			f.MasterScale = r.ReadFloat32()
		case ch.ID == chunk.O_CONSTS:
			f.ConstructionPlane = r.ReadVec3()
		case ch.ID == chunk.AMBIENT_LIGHT:
			f.Ambient = chunk.ReadColor(r, ch)
		case ch.ID == chunk.MAT_ENTRY:
			err = f.readMaterial(r, ch)
		case ch.ID == chunk.NAMED_OBJECT:
			err = f.readNamed(r, ch)
		case shadow.Handles(ch.ID):
			err = f.Shadow.Read(r, ch)
		case background.Handles(ch.ID):
			err = f.Background.Read(r, ch)
		case atmosphere.Handles(ch.ID):
			err = f.Atmosphere.Read(r, ch)
		case viewport.Handles(ch.ID):
			err = f.Viewport.Read(r, ch)
		default:
			chunk.Unknown(c, ch)
		}
		if err != nil {
			return err
		}
	}
	c.End(r)
	return r.Err()
}

func (f *File) readMaterial(r *stream.Reader, c *chunk.Chunk) error {
	m := material.New("")
	if err := m.Read(r, c); err != nil {
		return err
	}
	f.Materials = append(f.Materials, m)
	return nil
}

// readNamed reads a NAMED_OBJECT. The object flags follow the payload and
// apply to every object found in it.
func (f *File) readNamed(r *stream.Reader, c *chunk.Chunk) error {
	name := r.ReadString(64)
	c.BeginChildren(r)
	var (
		flags  chunk.ObjectFlags
		meshes []*mesh.Mesh
		cams   []*camera.Camera
		lights []*light.Light
	)
	for ch := c.Next(r); ch != nil; ch = c.Next(r) {
		switch ch.ID {
		case chunk.N_TRI_OBJECT:
			m := mesh.New(name)
			if err := m.Read(r, ch); err != nil {
				return err
			}
			meshes = append(meshes, m)
		case chunk.N_CAMERA:
			cam := camera.New(name)
			if err := cam.Read(r, ch); err != nil {
				return err
			}
			cams = append(cams, cam)
		case chunk.N_DIRECT_LIGHT:
			l := light.New(name)
			if err := l.Read(r, ch); err != nil {
				return err
			}
			lights = append(lights, l)
		default:
			if fl := chunk.ObjectFlag(ch.ID); fl != 0 {
				flags |= fl
			} else {
				chunk.Unknown(c, ch)
			}
		}
	}
	c.End(r)
	for _, m := range meshes {
		m.Flags = flags
	}
	for _, cam := range cams {
		cam.Flags = flags
	}
	for _, l := range lights {
		l.Flags = flags
	}
	f.Meshes = append(f.Meshes, meshes...)
	f.Cameras = append(f.Cameras, cams...)
	f.Lights = append(f.Lights, lights...)
	return r.Err()
}

// readKFDATA reads the keyframer section. Nodes without NODE_ID are
// numbered in file order, after the largest NODE_ID of the section.
func readKFDATA(f *File, r *stream.Reader, c *chunk.Chunk) error {
	var unnumbered []*node.Node
	for ch := c.Next(r); ch != nil; ch = c.Next(r) {
		switch {
		case ch.ID == chunk.KFHDR:
			f.KeyfRevision = r.ReadUint16()
			f.Name = r.ReadString(13)
			f.Frames = r.ReadInt32()
		case ch.ID == chunk.KFSEG:
			f.SegmentFrom = r.ReadInt32()
			f.SegmentTo = r.ReadInt32()
		case ch.ID == chunk.KFCURTIME:
			f.CurrentFrame = r.ReadInt32()
		case viewport.Handles(ch.ID):
			if err := f.ViewportKeyf.Read(r, ch); err != nil {
				return err
			}
		case node.IsTag(ch.ID):
			n, err := node.Read(r, ch, node.NoParent)
			if err != nil {
				return err
			}
			if n.ID == node.NoParent {
				unnumbered = append(unnumbered, n)
			}
			f.Nodes.Add(n)
		default:
			chunk.Unknown(c, ch)
		}
	}
	c.End(r)
	numberNodes(&f.Nodes, unnumbered)
	f.Nodes.Link()
	return r.Err()
}

// numberNodes gives ids that do not collide with any NODE_ID to the nodes
// in missing.
func numberNodes(g *node.Graph, missing []*node.Node) {
	var next uint16
	for _, n := range g.Nodes {
		if n.ID != node.NoParent && n.ID >= next {
			next = n.ID + 1
		}
	}
	for _, n := range missing {
		n.ID = next
		next++
	}
}

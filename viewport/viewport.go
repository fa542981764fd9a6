// SPDX-License-Identifier: GPL-2.0-or-later

// Package viewport holds the editor window layout and the default view. Both
// MDATA and KFDATA carry one.
package viewport

import (
	"go3ds/chunk"
	"go3ds/math/vec"
	"go3ds/stream"
)

// view types
const (
	VIEW_NOT_SET   = 0
	VIEW_TOP       = 1
	VIEW_BOTTOM    = 2
	VIEW_LEFT      = 3
	VIEW_RIGHT     = 4
	VIEW_FRONT     = 5
	VIEW_BACK      = 6
	VIEW_USER      = 7
	VIEW_SPOTLIGHT = 18
	VIEW_CAMERA    = 0xFFFF
)

// cameraLen is the size of the camera name field of a layout view.
const cameraLen = 11

type View struct {
	Type       uint16
	AxisLock   uint16
	Position   [2]int16
	Size       [2]int16
	Zoom       float32
	Center     vec.Vec3
	HorizAngle float32
	VertAngle  float32
	Camera     string
}

type Layout struct {
	Style     int16
	Active    int16
	Swap      int16
	SwapPrior int16
	SwapView  int16
	Position  [2]uint16
	Size      [2]uint16
	Views     []View
}

type DefaultView struct {
	Type       uint16
	Position   vec.Vec3
	Width      float32
	HorizAngle float32
	VertAngle  float32
	RollAngle  float32
	Camera     string
}

type Viewport struct {
	Layout  Layout
	Default DefaultView
}

var axisViews = map[uint16]uint16{
	chunk.VIEW_TOP:    VIEW_TOP,
	chunk.VIEW_BOTTOM: VIEW_BOTTOM,
	chunk.VIEW_LEFT:   VIEW_LEFT,
	chunk.VIEW_RIGHT:  VIEW_RIGHT,
	chunk.VIEW_FRONT:  VIEW_FRONT,
	chunk.VIEW_BACK:   VIEW_BACK,
}

func Handles(id uint16) bool {
	return id == chunk.VIEWPORT_LAYOUT || id == chunk.DEFAULT_VIEW
}

func (v *Viewport) Read(r *stream.Reader, c *chunk.Chunk) error {
	switch c.ID {
	case chunk.VIEWPORT_LAYOUT:
		v.Layout.read(r, c)
	case chunk.DEFAULT_VIEW:
		v.Default.read(r, c)
	}
	c.End(r)
	return r.Err()
}

func (l *Layout) read(r *stream.Reader, c *chunk.Chunk) {
	l.Style = r.ReadInt16()
	l.Active = r.ReadInt16()
	r.ReadInt16()
	l.Swap = r.ReadInt16()
	r.ReadInt16()
	l.SwapPrior = r.ReadInt16()
	l.SwapView = r.ReadInt16()
	c.BeginChildren(r)
	l.Views = nil
	for n := c.Next(r); n != nil; n = c.Next(r) {
		switch n.ID {
		case chunk.VIEWPORT_SIZE:
			l.Position[0] = r.ReadUint16()
			l.Position[1] = r.ReadUint16()
			l.Size[0] = r.ReadUint16()
			l.Size[1] = r.ReadUint16()
		case chunk.VIEWPORT_DATA_3:
			var vw View
			r.ReadInt16()
			vw.AxisLock = r.ReadUint16()
			vw.Position[0] = r.ReadInt16()
			vw.Position[1] = r.ReadInt16()
			vw.Size[0] = r.ReadInt16()
			vw.Size[1] = r.ReadInt16()
			vw.Type = r.ReadUint16()
			vw.Zoom = r.ReadFloat32()
			vw.Center = r.ReadVec3()
			vw.HorizAngle = r.ReadFloat32()
			vw.VertAngle = r.ReadFloat32()
			vw.Camera = r.ReadFixedString(cameraLen)
			l.Views = append(l.Views, vw)
		default:
			chunk.Unknown(c, n)
		}
	}
}

func (d *DefaultView) read(r *stream.Reader, c *chunk.Chunk) {
	for n := c.Next(r); n != nil; n = c.Next(r) {
		if t, ok := axisViews[n.ID]; ok {
			d.Type = t
			d.Position = r.ReadVec3()
			d.Width = r.ReadFloat32()
			continue
		}
		switch n.ID {
		case chunk.VIEW_USER:
			d.Type = VIEW_USER
			d.Position = r.ReadVec3()
			d.Width = r.ReadFloat32()
			d.HorizAngle = r.ReadFloat32()
			d.VertAngle = r.ReadFloat32()
			d.RollAngle = r.ReadFloat32()
		case chunk.VIEW_CAMERA:
			d.Type = VIEW_CAMERA
			d.Camera = r.ReadString(64)
		default:
			chunk.Unknown(c, n)
		}
	}
}

// Write writes the layout if it has views and the default view if its type
// is set.
func (v *Viewport) Write(w *stream.Writer) error {
	if len(v.Layout.Views) > 0 {
		if err := v.Layout.write(w); err != nil {
			return err
		}
	}
	if v.Default.Type != VIEW_NOT_SET {
		if err := v.Default.write(w); err != nil {
			return err
		}
	}
	return w.Err()
}

func (l *Layout) write(w *stream.Writer) error {
	return chunk.Write(w, chunk.VIEWPORT_LAYOUT, func() error {
		w.WriteInt16(l.Style)
		w.WriteInt16(l.Active)
		w.WriteInt16(0)
		w.WriteInt16(l.Swap)
		w.WriteInt16(0)
		w.WriteInt16(l.SwapPrior)
		w.WriteInt16(l.SwapView)

		chunk.WriteHeader(w, chunk.VIEWPORT_SIZE, 14)
		w.WriteUint16(l.Position[0])
		w.WriteUint16(l.Position[1])
		w.WriteUint16(l.Size[0])
		w.WriteUint16(l.Size[1])

		for _, vw := range l.Views {
			chunk.WriteHeader(w, chunk.VIEWPORT_DATA_3, 55)
			w.WriteInt16(0)
			w.WriteUint16(vw.AxisLock)
			w.WriteInt16(vw.Position[0])
			w.WriteInt16(vw.Position[1])
			w.WriteInt16(vw.Size[0])
			w.WriteInt16(vw.Size[1])
			w.WriteUint16(vw.Type)
			w.WriteFloat32(vw.Zoom)
			w.WriteVec3(vw.Center)
			w.WriteFloat32(vw.HorizAngle)
			w.WriteFloat32(vw.VertAngle)
			w.WriteFixedString(vw.Camera, cameraLen)
		}
		return w.Err()
	})
}

func (d *DefaultView) write(w *stream.Writer) error {
	return chunk.Write(w, chunk.DEFAULT_VIEW, func() error {
		for id, t := range axisViews {
			if t == d.Type {
				chunk.WriteHeader(w, id, 22)
				w.WriteVec3(d.Position)
				w.WriteFloat32(d.Width)
				return w.Err()
			}
		}
		switch d.Type {
		case VIEW_USER:
			chunk.WriteHeader(w, chunk.VIEW_USER, 34)
			w.WriteVec3(d.Position)
			w.WriteFloat32(d.Width)
			w.WriteFloat32(d.HorizAngle)
			w.WriteFloat32(d.VertAngle)
			w.WriteFloat32(d.RollAngle)
		case VIEW_CAMERA:
			chunk.WriteString(w, chunk.VIEW_CAMERA, d.Camera, 64)
		}
		return w.Err()
	})
}

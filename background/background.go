// SPDX-License-Identifier: GPL-2.0-or-later

// Package background holds the render background settings of MDATA.
package background

import (
	"go3ds/chunk"
	"go3ds/stream"
)

type Bitmap struct {
	Use  bool
	Name string
}

type Solid struct {
	Use   bool
	Color chunk.RGB
}

type Gradient struct {
	Use     bool
	Percent float32
	Top     chunk.RGB
	Middle  chunk.RGB
	Bottom  chunk.RGB
}

type Background struct {
	Bitmap   Bitmap
	Solid    Solid
	Gradient Gradient
}

// Handles reports whether id is read by Background.Read.
func Handles(id uint16) bool {
	switch id {
	case chunk.BIT_MAP, chunk.SOLID_BGND, chunk.V_GRADIENT,
		chunk.USE_BIT_MAP, chunk.USE_SOLID_BGND, chunk.USE_V_GRADIENT:
		return true
	}
	return false
}

func (b *Background) Read(r *stream.Reader, c *chunk.Chunk) error {
	switch c.ID {
	case chunk.BIT_MAP:
		b.Bitmap.Name = r.ReadString(64)
	case chunk.SOLID_BGND:
		b.Solid.Color = readSolid(r, c)
	case chunk.V_GRADIENT:
		b.Gradient.readGradient(r, c)
	case chunk.USE_BIT_MAP:
		b.Bitmap.Use = true
	case chunk.USE_SOLID_BGND:
		b.Solid.Use = true
	case chunk.USE_V_GRADIENT:
		b.Gradient.Use = true
	}
	c.End(r)
	return r.Err()
}

func readSolid(r *stream.Reader, c *chunk.Chunk) chunk.RGB {
	var col chunk.RGB
	lin := false
	for n := c.Next(r); n != nil; n = c.Next(r) {
		switch n.ID {
		case chunk.LIN_COLOR_F:
			col = r.ReadRGB()
			lin = true
		case chunk.COLOR_F:
			if !lin {
				col = r.ReadRGB()
			}
		default:
			chunk.Unknown(c, n)
		}
	}
	return col
}

// readGradient reads the percentage and three colors. Gamma and linear
// colors are counted separately, a complete linear set wins.
func (g *Gradient) readGradient(r *stream.Reader, c *chunk.Chunk) {
	var cols [2][3]chunk.RGB
	var idx [2]int
	g.Percent = r.ReadFloat32()
	c.BeginChildren(r)
	for n := c.Next(r); n != nil; n = c.Next(r) {
		k := 0
		switch n.ID {
		case chunk.COLOR_F:
		case chunk.LIN_COLOR_F:
			k = 1
		default:
			chunk.Unknown(c, n)
			continue
		}
		if idx[k] < 3 {
			cols[k][idx[k]] = r.ReadRGB()
			idx[k]++
		}
	}
	k := 0
	if idx[1] > 0 {
		k = 1
	}
	g.Top, g.Middle, g.Bottom = cols[k][0], cols[k][1], cols[k][2]
}

func (b *Background) Write(w *stream.Writer) error {
	if b.Bitmap.Name != "" {
		chunk.WriteString(w, chunk.BIT_MAP, b.Bitmap.Name, 64)
	}
	if b.Bitmap.Use {
		chunk.WriteSwitch(w, chunk.USE_BIT_MAP)
	}
	if b.Solid.Color.IsSet() {
		chunk.WriteHeader(w, chunk.SOLID_BGND, 42)
		chunk.WriteColorF(w, b.Solid.Color)
	}
	if b.Solid.Use {
		chunk.WriteSwitch(w, chunk.USE_SOLID_BGND)
	}
	g := &b.Gradient
	if g.Top.IsSet() || g.Middle.IsSet() || g.Bottom.IsSet() {
		chunk.WriteHeader(w, chunk.V_GRADIENT, 10+3*36)
		w.WriteFloat32(g.Percent)
		chunk.WriteColorF(w, g.Top)
		chunk.WriteColorF(w, g.Middle)
		chunk.WriteColorF(w, g.Bottom)
	}
	if g.Use {
		chunk.WriteSwitch(w, chunk.USE_V_GRADIENT)
	}
	return w.Err()
}

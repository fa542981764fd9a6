// SPDX-License-Identifier: GPL-2.0-or-later

package material

import (
	"go3ds/chunk"
	"go3ds/stream"
)

// texture map tiling flags
const (
	MAP_DECAL        = 0x0001
	MAP_MIRROR       = 0x0002
	MAP_NEGATE       = 0x0008
	MAP_NO_TILE      = 0x0010
	MAP_SUMMED_AREA  = 0x0020
	MAP_ALPHA_SOURCE = 0x0040
	MAP_TINT         = 0x0080
	MAP_IGNORE_ALPHA = 0x0100
	MAP_RGB_TINT     = 0x0200
)

type TextureMap struct {
	Name     string
	Flags    uint16
	Percent  float32
	Blur     float32
	Scale    [2]float32
	Offset   [2]float32
	Rotation float32
	Tint1    chunk.RGB
	Tint2    chunk.RGB
	TintR    chunk.RGB
	TintG    chunk.RGB
	TintB    chunk.RGB
}

func NewTextureMap() TextureMap {
	return TextureMap{
		Flags:   MAP_NO_TILE,
		Percent: 1,
		Scale:   [2]float32{1, 1},
	}
}

func (t *TextureMap) read(r *stream.Reader, c *chunk.Chunk) {
	for n := c.Next(r); n != nil; n = c.Next(r) {
		switch n.ID {
		case chunk.INT_PERCENTAGE:
			t.Percent = float32(r.ReadInt16()) / 100
		case chunk.FLOAT_PERCENTAGE:
			t.Percent = r.ReadFloat32()
		case chunk.MAT_MAPNAME:
			t.Name = r.ReadString(64)
		case chunk.MAT_MAP_TILING:
			t.Flags = r.ReadUint16()
		case chunk.MAT_MAP_TEXBLUR:
			t.Blur = r.ReadFloat32()
		case chunk.MAT_MAP_USCALE:
			t.Scale[0] = r.ReadFloat32()
		case chunk.MAT_MAP_VSCALE:
			t.Scale[1] = r.ReadFloat32()
		case chunk.MAT_MAP_UOFFSET:
			t.Offset[0] = r.ReadFloat32()
		case chunk.MAT_MAP_VOFFSET:
			t.Offset[1] = r.ReadFloat32()
		case chunk.MAT_MAP_ANG:
			t.Rotation = r.ReadFloat32()
		case chunk.MAT_MAP_COL1:
			t.Tint1 = chunk.ReadRGB24(r)
		case chunk.MAT_MAP_COL2:
			t.Tint2 = chunk.ReadRGB24(r)
		case chunk.MAT_MAP_RCOL:
			t.TintR = chunk.ReadRGB24(r)
		case chunk.MAT_MAP_GCOL:
			t.TintG = chunk.ReadRGB24(r)
		case chunk.MAT_MAP_BCOL:
			t.TintB = chunk.ReadRGB24(r)
		default:
			chunk.Unknown(c, n)
		}
	}
}

// write writes the map as chunk id. Maps without a file name are skipped.
func (t *TextureMap) write(w *stream.Writer, id uint16) error {
	if t.Name == "" {
		return nil
	}
	return chunk.Write(w, id, func() error {
		chunk.WriteHeader(w, chunk.INT_PERCENTAGE, 8)
		w.WriteInt16(chunk.Percent(t.Percent))
		chunk.WriteString(w, chunk.MAT_MAPNAME, t.Name, 64)
		chunk.WriteUint16(w, chunk.MAT_MAP_TILING, t.Flags)
		chunk.WriteFloat(w, chunk.MAT_MAP_TEXBLUR, t.Blur)
		chunk.WriteFloat(w, chunk.MAT_MAP_USCALE, t.Scale[0])
		chunk.WriteFloat(w, chunk.MAT_MAP_VSCALE, t.Scale[1])
		chunk.WriteFloat(w, chunk.MAT_MAP_UOFFSET, t.Offset[0])
		chunk.WriteFloat(w, chunk.MAT_MAP_VOFFSET, t.Offset[1])
		chunk.WriteFloat(w, chunk.MAT_MAP_ANG, t.Rotation)
		tints := []struct {
			id uint16
			c  chunk.RGB
		}{
			{chunk.MAT_MAP_COL1, t.Tint1},
			{chunk.MAT_MAP_COL2, t.Tint2},
			{chunk.MAT_MAP_RCOL, t.TintR},
			{chunk.MAT_MAP_GCOL, t.TintG},
			{chunk.MAT_MAP_BCOL, t.TintB},
		}
		for _, tint := range tints {
			chunk.WriteHeader(w, tint.id, 9)
			chunk.WriteRGB24(w, tint.c)
		}
		return w.Err()
	})
}

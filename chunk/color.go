// SPDX-License-Identifier: GPL-2.0-or-later

package chunk

import (
	"github.com/chewxy/math32"

	qmath "go3ds/math"
	"go3ds/stream"
)

// RGB holds color channels in [0,1].
type RGB [3]float32

// IsSet reports whether any channel is above the epsilon.
func (c RGB) IsSet() bool {
	return qmath.Significant(c[0]) || qmath.Significant(c[1]) || qmath.Significant(c[2])
}

func ReadRGB24(r *stream.Reader) RGB {
	var c RGB
	for i := range c {
		c[i] = float32(r.ReadUint8()) / 255
	}
	return c
}

func WriteRGB24(w *stream.Writer, c RGB) {
	for _, v := range c {
		w.WriteUint8(uint8(qmath.Clamp(0, math32.Floor(255*v+0.5), 255)))
	}
}

// ReadColor reads the color sub-chunks of c. Linear values win over gamma
// corrected ones.
func ReadColor(r *stream.Reader, c *Chunk) RGB {
	var col RGB
	lin := false
	for n := c.Next(r); n != nil; n = c.Next(r) {
		switch n.ID {
		case LIN_COLOR_24:
			col = ReadRGB24(r)
			lin = true
		case COLOR_24:
			if !lin {
				col = ReadRGB24(r)
			}
		case LIN_COLOR_F:
			col = r.ReadRGB()
			lin = true
		case COLOR_F:
			if !lin {
				col = r.ReadRGB()
			}
		default:
			Unknown(c, n)
		}
	}
	return col
}

// WriteColor writes c as a chunk with id holding a COLOR_24 and a
// LIN_COLOR_24 sub-chunk.
func WriteColor(w *stream.Writer, id uint16, c RGB) {
	WriteHeader(w, id, 24)
	WriteHeader(w, COLOR_24, 9)
	WriteRGB24(w, c)
	WriteHeader(w, LIN_COLOR_24, 9)
	WriteRGB24(w, c)
}

// WriteColorF writes c as COLOR_F followed by LIN_COLOR_F.
func WriteColorF(w *stream.Writer, c RGB) {
	WriteHeader(w, COLOR_F, 18)
	w.WriteRGB(c)
	WriteHeader(w, LIN_COLOR_F, 18)
	w.WriteRGB(c)
}

// ReadPercent reads the percentage sub-chunk of c.
func ReadPercent(r *stream.Reader, c *Chunk) float32 {
	var v float32
	for n := c.Next(r); n != nil; n = c.Next(r) {
		switch n.ID {
		case INT_PERCENTAGE:
			v = float32(r.ReadInt16()) / 100
		case FLOAT_PERCENTAGE:
			v = r.ReadFloat32()
		default:
			Unknown(c, n)
		}
	}
	return v
}

// WritePercent writes v as a chunk with id holding an INT_PERCENTAGE.
func WritePercent(w *stream.Writer, id uint16, v float32) {
	WriteHeader(w, id, 14)
	WriteHeader(w, INT_PERCENTAGE, 8)
	w.WriteInt16(Percent(v))
}

// Percent converts a fraction to the stored integer percentage.
func Percent(v float32) int16 {
	return int16(qmath.Clamp(-32768, math32.Floor(100*v+0.5), 32767))
}

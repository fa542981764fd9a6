// SPDX-License-Identifier: GPL-2.0-or-later

// Package light reads and writes N_DIRECT_LIGHT chunks for omni and spot
// lights.
package light

import (
	"go3ds/chunk"
	qmath "go3ds/math"
	"go3ds/math/vec"
	"go3ds/stream"
)

type Light struct {
	Name       string
	Flags      chunk.ObjectFlags
	Color      chunk.RGB
	Position   vec.Vec3
	Off        bool
	OuterRange float32
	InnerRange float32
	Multiplier float32
	Attenuate  bool

	// Spot is set for spot lights, the fields below only apply to those.
	Spot         bool
	Target       vec.Vec3
	Hotspot      float32
	Falloff      float32
	Roll         float32
	Shadowed     bool
	ShadowBias   float32
	ShadowFilter float32
	ShadowSize   int16
	SeeCone      bool
	Rectangular  bool
	Aspect       float32
	Projector    string
	Overshoot    bool
	RayShadows   bool
	RayBias      float32
}

func New(name string) *Light {
	return &Light{
		Name:       name,
		Color:      chunk.RGB{1, 1, 1},
		Multiplier: 1,
	}
}

// Read fills l from the N_DIRECT_LIGHT chunk c.
func (l *Light) Read(r *stream.Reader, c *chunk.Chunk) error {
	l.Position = r.ReadVec3()
	c.BeginChildren(r)
	lin := false
	for n := c.Next(r); n != nil; n = c.Next(r) {
		switch n.ID {
		case chunk.LIN_COLOR_F:
			l.Color = r.ReadRGB()
			lin = true
		case chunk.COLOR_F:
			if !lin {
				l.Color = r.ReadRGB()
			}
		case chunk.DL_OFF:
			l.Off = true
		case chunk.DL_OUTER_RANGE:
			l.OuterRange = r.ReadFloat32()
		case chunk.DL_INNER_RANGE:
			l.InnerRange = r.ReadFloat32()
		case chunk.DL_MULTIPLIER:
			l.Multiplier = r.ReadFloat32()
		case chunk.DL_ATTENUATE:
			l.Attenuate = true
		case chunk.DL_SPOTLIGHT:
			l.readSpot(r, n)
		default:
			chunk.Unknown(c, n)
		}
	}
	c.End(r)
	return r.Err()
}

func (l *Light) readSpot(r *stream.Reader, c *chunk.Chunk) {
	l.Spot = true
	l.Target = r.ReadVec3()
	l.Hotspot = r.ReadFloat32()
	l.Falloff = r.ReadFloat32()
	c.BeginChildren(r)
	for n := c.Next(r); n != nil; n = c.Next(r) {
		switch n.ID {
		case chunk.DL_SPOT_ROLL:
			l.Roll = r.ReadFloat32()
		case chunk.DL_SHADOWED:
			l.Shadowed = true
		case chunk.DL_LOCAL_SHADOW2:
			l.ShadowBias = r.ReadFloat32()
			l.ShadowFilter = r.ReadFloat32()
			l.ShadowSize = r.ReadInt16()
		case chunk.DL_SEE_CONE:
			l.SeeCone = true
		case chunk.DL_SPOT_RECTANGULAR:
			l.Rectangular = true
		case chunk.DL_SPOT_ASPECT:
			l.Aspect = r.ReadFloat32()
		case chunk.DL_SPOT_PROJECTOR:
			l.Projector = r.ReadString(64)
		case chunk.DL_SPOT_OVERSHOOT:
			l.Overshoot = true
		case chunk.DL_RAY_BIAS:
			l.RayBias = r.ReadFloat32()
		case chunk.DL_RAYSHAD:
			l.RayShadows = true
		default:
			chunk.Unknown(c, n)
		}
	}
}

func (l *Light) Write(w *stream.Writer) error {
	return chunk.Write(w, chunk.N_DIRECT_LIGHT, func() error {
		w.WriteVec3(l.Position)
		chunk.WriteHeader(w, chunk.COLOR_F, 18)
		w.WriteRGB(l.Color)
		if l.Off {
			chunk.WriteSwitch(w, chunk.DL_OFF)
		}
		chunk.WriteFloat(w, chunk.DL_OUTER_RANGE, l.OuterRange)
		chunk.WriteFloat(w, chunk.DL_INNER_RANGE, l.InnerRange)
		chunk.WriteFloat(w, chunk.DL_MULTIPLIER, l.Multiplier)
		if l.Attenuate {
			chunk.WriteSwitch(w, chunk.DL_ATTENUATE)
		}
		if l.Spot {
			return chunk.Write(w, chunk.DL_SPOTLIGHT, func() error {
				l.writeSpot(w)
				return w.Err()
			})
		}
		return w.Err()
	})
}

func (l *Light) writeSpot(w *stream.Writer) {
	w.WriteVec3(l.Target)
	w.WriteFloat32(l.Hotspot)
	w.WriteFloat32(l.Falloff)
	chunk.WriteFloat(w, chunk.DL_SPOT_ROLL, l.Roll)
	if l.Shadowed {
		chunk.WriteSwitch(w, chunk.DL_SHADOWED)
	}
	if qmath.Significant(l.ShadowBias) || qmath.Significant(l.ShadowFilter) || l.ShadowSize != 0 {
		chunk.WriteHeader(w, chunk.DL_LOCAL_SHADOW2, 16)
		w.WriteFloat32(l.ShadowBias)
		w.WriteFloat32(l.ShadowFilter)
		w.WriteInt16(l.ShadowSize)
	}
	if l.SeeCone {
		chunk.WriteSwitch(w, chunk.DL_SEE_CONE)
	}
	if l.Rectangular {
		chunk.WriteSwitch(w, chunk.DL_SPOT_RECTANGULAR)
	}
	if qmath.Significant(l.Aspect) {
		chunk.WriteFloat(w, chunk.DL_SPOT_ASPECT, l.Aspect)
	}
	if l.Projector != "" {
		chunk.WriteString(w, chunk.DL_SPOT_PROJECTOR, l.Projector, 64)
	}
	if l.Overshoot {
		chunk.WriteSwitch(w, chunk.DL_SPOT_OVERSHOOT)
	}
	if qmath.Significant(l.RayBias) {
		chunk.WriteFloat(w, chunk.DL_RAY_BIAS, l.RayBias)
	}
	if l.RayShadows {
		chunk.WriteSwitch(w, chunk.DL_RAYSHAD)
	}
}

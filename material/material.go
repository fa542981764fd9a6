// SPDX-License-Identifier: GPL-2.0-or-later

// Package material reads and writes MAT_ENTRY chunks.
package material

import (
	"go3ds/chunk"
	"go3ds/stream"
)

// shading modes
const (
	SHADING_WIRE    = 0
	SHADING_FLAT    = 1
	SHADING_GOURAUD = 2
	SHADING_PHONG   = 3
	SHADING_METAL   = 4
)

// texture map slots
const (
	Texture1 = iota
	Texture1Mask
	Texture2
	Texture2Mask
	Opacity
	OpacityMask
	Bump
	BumpMask
	Specular
	SpecularMask
	Shininess
	ShininessMask
	SelfIllum
	SelfIllumMask
	Reflection
	ReflectionMask
	NumMaps
)

var mapIDs = [NumMaps]uint16{
	chunk.MAT_TEXMAP, chunk.MAT_TEXMASK,
	chunk.MAT_TEX2MAP, chunk.MAT_TEX2MASK,
	chunk.MAT_OPACMAP, chunk.MAT_OPACMASK,
	chunk.MAT_BUMPMAP, chunk.MAT_BUMPMASK,
	chunk.MAT_SPECMAP, chunk.MAT_SPECMASK,
	chunk.MAT_SHINMAP, chunk.MAT_SHINMASK,
	chunk.MAT_SELFIMAP, chunk.MAT_SELFIMASK,
	chunk.MAT_REFLMAP, chunk.MAT_REFLMASK,
}

// AutoReflection describes a generated cubic reflection map.
type AutoReflection struct {
	Flags     int16
	Level     int8
	Size      int32
	FrameStep int32
}

type Material struct {
	Name            string
	Ambient         chunk.RGB
	Diffuse         chunk.RGB
	Specular        chunk.RGB
	Shininess       float32
	ShinStrength    float32
	Transparency    float32
	Falloff         float32
	SelfIllum       float32
	Blur            float32
	UseFalloff      bool
	UseBlur         bool
	SelfIlluminated bool
	Shading         int16
	TwoSided        bool
	Decal           bool
	Additive        bool
	FaceMap         bool
	Soften          bool
	Wire            bool
	WireAbs         bool
	WireSize        float32
	Maps            [NumMaps]TextureMap
	AutoReflection  AutoReflection
}

func New(name string) *Material {
	m := &Material{
		Name:      name,
		Ambient:   chunk.RGB{0.588235, 0.588235, 0.588235},
		Diffuse:   chunk.RGB{0.588235, 0.588235, 0.588235},
		Specular:  chunk.RGB{0.898039, 0.898039, 0.898039},
		Shininess: 0.1,
		WireSize:  1,
		Shading:   SHADING_PHONG,
	}
	for i := range m.Maps {
		m.Maps[i] = NewTextureMap()
	}
	return m
}

func mapSlot(id uint16) int {
	for i, m := range mapIDs {
		if m == id {
			return i
		}
	}
	return -1
}

// Read fills m from the MAT_ENTRY chunk c.
func (m *Material) Read(r *stream.Reader, c *chunk.Chunk) error {
	for n := c.Next(r); n != nil; n = c.Next(r) {
		if i := mapSlot(n.ID); i >= 0 {
			m.Maps[i].read(r, n)
			continue
		}
		switch n.ID {
		case chunk.MAT_NAME:
			m.Name = r.ReadString(64)
		case chunk.MAT_AMBIENT:
			m.Ambient = chunk.ReadColor(r, n)
		case chunk.MAT_DIFFUSE:
			m.Diffuse = chunk.ReadColor(r, n)
		case chunk.MAT_SPECULAR:
			m.Specular = chunk.ReadColor(r, n)
		case chunk.MAT_SHININESS:
			m.Shininess = chunk.ReadPercent(r, n)
		case chunk.MAT_SHIN2PCT:
			m.ShinStrength = chunk.ReadPercent(r, n)
		case chunk.MAT_TRANSPARENCY:
			m.Transparency = chunk.ReadPercent(r, n)
		case chunk.MAT_XPFALL:
			m.Falloff = chunk.ReadPercent(r, n)
		case chunk.MAT_SELF_ILPCT:
			m.SelfIllum = chunk.ReadPercent(r, n)
		case chunk.MAT_REFBLUR:
			m.Blur = chunk.ReadPercent(r, n)
		case chunk.MAT_USE_XPFALL:
			m.UseFalloff = true
		case chunk.MAT_USE_REFBLUR:
			m.UseBlur = true
		case chunk.MAT_SELF_ILLUM:
			m.SelfIlluminated = true
		case chunk.MAT_SHADING:
			m.Shading = r.ReadInt16()
		case chunk.MAT_TWO_SIDE:
			m.TwoSided = true
		case chunk.MAT_DECAL:
			m.Decal = true
		case chunk.MAT_ADDITIVE:
			m.Additive = true
		case chunk.MAT_FACEMAP:
			m.FaceMap = true
		case chunk.MAT_PHONGSOFT:
			m.Soften = true
		case chunk.MAT_WIRE:
			m.Wire = true
		case chunk.MAT_WIREABS:
			m.WireAbs = true
		case chunk.MAT_WIRE_SIZE:
			m.WireSize = r.ReadFloat32()
		case chunk.MAT_ACUBIC:
			a := &m.AutoReflection
			r.ReadUint8()
			a.Level = int8(r.ReadUint8())
			a.Flags = r.ReadInt16()
			a.Size = r.ReadInt32()
			a.FrameStep = r.ReadInt32()
		default:
			chunk.Unknown(c, n)
		}
	}
	c.End(r)
	return r.Err()
}

func (m *Material) Write(w *stream.Writer) error {
	return chunk.Write(w, chunk.MAT_ENTRY, func() error {
		chunk.WriteString(w, chunk.MAT_NAME, m.Name, 64)
		chunk.WriteColor(w, chunk.MAT_AMBIENT, m.Ambient)
		chunk.WriteColor(w, chunk.MAT_DIFFUSE, m.Diffuse)
		chunk.WriteColor(w, chunk.MAT_SPECULAR, m.Specular)
		chunk.WritePercent(w, chunk.MAT_SHININESS, m.Shininess)
		chunk.WritePercent(w, chunk.MAT_SHIN2PCT, m.ShinStrength)
		chunk.WritePercent(w, chunk.MAT_TRANSPARENCY, m.Transparency)
		chunk.WritePercent(w, chunk.MAT_XPFALL, m.Falloff)
		if m.UseFalloff {
			chunk.WriteSwitch(w, chunk.MAT_USE_XPFALL)
		}
		chunk.WriteInt16(w, chunk.MAT_SHADING, m.Shading)
		chunk.WritePercent(w, chunk.MAT_REFBLUR, m.Blur)
		if m.UseBlur {
			chunk.WriteSwitch(w, chunk.MAT_USE_REFBLUR)
		}
		if m.SelfIlluminated {
			chunk.WriteSwitch(w, chunk.MAT_SELF_ILLUM)
		}
		chunk.WritePercent(w, chunk.MAT_SELF_ILPCT, m.SelfIllum)
		switches := []struct {
			on bool
			id uint16
		}{
			{m.TwoSided, chunk.MAT_TWO_SIDE},
			{m.Decal, chunk.MAT_DECAL},
			{m.Additive, chunk.MAT_ADDITIVE},
			{m.Wire, chunk.MAT_WIRE},
			{m.WireAbs, chunk.MAT_WIREABS},
		}
		for _, s := range switches {
			if s.on {
				chunk.WriteSwitch(w, s.id)
			}
		}
		chunk.WriteFloat(w, chunk.MAT_WIRE_SIZE, m.WireSize)
		if m.FaceMap {
			chunk.WriteSwitch(w, chunk.MAT_FACEMAP)
		}
		if m.Soften {
			chunk.WriteSwitch(w, chunk.MAT_PHONGSOFT)
		}
		for i := range m.Maps {
			if err := m.Maps[i].write(w, mapIDs[i]); err != nil {
				return err
			}
		}
		if a := m.AutoReflection; a != (AutoReflection{}) {
			chunk.WriteHeader(w, chunk.MAT_ACUBIC, 18)
			w.WriteUint8(0)
			w.WriteUint8(uint8(a.Level))
			w.WriteInt16(a.Flags)
			w.WriteInt32(a.Size)
			w.WriteInt32(a.FrameStep)
		}
		return w.Err()
	})
}

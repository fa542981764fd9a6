// SPDX-License-Identifier: GPL-2.0-or-later

// Package atmosphere holds the fog, layer fog and distance cue settings of
// MDATA.
package atmosphere

import (
	"go3ds/chunk"
	"go3ds/stream"
)

type Fog struct {
	Use         bool
	Color       chunk.RGB
	Background  bool
	NearPlane   float32
	NearDensity float32
	FarPlane    float32
	FarDensity  float32
}

type LayerFog struct {
	Use     bool
	Flags   uint32
	Color   chunk.RGB
	NearY   float32
	FarY    float32
	Density float32
}

type DistanceCue struct {
	Use        bool
	Background bool
	NearPlane  float32
	NearDim    float32
	FarPlane   float32
	FarDim     float32
}

type Atmosphere struct {
	Fog         Fog
	LayerFog    LayerFog
	DistanceCue DistanceCue
}

func Handles(id uint16) bool {
	switch id {
	case chunk.FOG, chunk.LAYER_FOG, chunk.DISTANCE_CUE,
		chunk.USE_FOG, chunk.USE_LAYER_FOG, chunk.USE_DISTANCE_CUE:
		return true
	}
	return false
}

func (a *Atmosphere) Read(r *stream.Reader, c *chunk.Chunk) error {
	switch c.ID {
	case chunk.FOG:
		f := &a.Fog
		f.NearPlane = r.ReadFloat32()
		f.NearDensity = r.ReadFloat32()
		f.FarPlane = r.ReadFloat32()
		f.FarDensity = r.ReadFloat32()
		c.BeginChildren(r)
		for n := c.Next(r); n != nil; n = c.Next(r) {
			switch n.ID {
			case chunk.LIN_COLOR_F:
				f.Color = r.ReadRGB()
			case chunk.COLOR_F:
			case chunk.FOG_BGND:
				f.Background = true
			default:
				chunk.Unknown(c, n)
			}
		}
	case chunk.LAYER_FOG:
		f := &a.LayerFog
		f.NearY = r.ReadFloat32()
		f.FarY = r.ReadFloat32()
		f.Density = r.ReadFloat32()
		f.Flags = r.ReadUint32()
		c.BeginChildren(r)
		f.Color = chunk.ReadColor(r, c)
	case chunk.DISTANCE_CUE:
		d := &a.DistanceCue
		d.NearPlane = r.ReadFloat32()
		d.NearDim = r.ReadFloat32()
		d.FarPlane = r.ReadFloat32()
		d.FarDim = r.ReadFloat32()
		c.BeginChildren(r)
		for n := c.Next(r); n != nil; n = c.Next(r) {
			switch n.ID {
			case chunk.DCUE_BGND:
				d.Background = true
			default:
				chunk.Unknown(c, n)
			}
		}
	case chunk.USE_FOG:
		a.Fog.Use = true
	case chunk.USE_LAYER_FOG:
		a.LayerFog.Use = true
	case chunk.USE_DISTANCE_CUE:
		a.DistanceCue.Use = true
	}
	c.End(r)
	return r.Err()
}

// Write writes the blocks that are in use.
func (a *Atmosphere) Write(w *stream.Writer) error {
	if f := &a.Fog; f.Use {
		err := chunk.Write(w, chunk.FOG, func() error {
			w.WriteFloat32(f.NearPlane)
			w.WriteFloat32(f.NearDensity)
			w.WriteFloat32(f.FarPlane)
			w.WriteFloat32(f.FarDensity)
			chunk.WriteColorF(w, f.Color)
			if f.Background {
				chunk.WriteSwitch(w, chunk.FOG_BGND)
			}
			return w.Err()
		})
		if err != nil {
			return err
		}
	}
	if f := &a.LayerFog; f.Use {
		err := chunk.Write(w, chunk.LAYER_FOG, func() error {
			w.WriteFloat32(f.NearY)
			w.WriteFloat32(f.FarY)
			w.WriteFloat32(f.Density)
			w.WriteUint32(f.Flags)
			chunk.WriteColorF(w, f.Color)
			return w.Err()
		})
		if err != nil {
			return err
		}
	}
	if d := &a.DistanceCue; d.Use {
		err := chunk.Write(w, chunk.DISTANCE_CUE, func() error {
			w.WriteFloat32(d.NearPlane)
			w.WriteFloat32(d.NearDim)
			w.WriteFloat32(d.FarPlane)
			w.WriteFloat32(d.FarDim)
			if d.Background {
				chunk.WriteSwitch(w, chunk.DCUE_BGND)
			}
			return w.Err()
		})
		if err != nil {
			return err
		}
	}
	if a.Fog.Use {
		chunk.WriteSwitch(w, chunk.USE_FOG)
	}
	if a.LayerFog.Use {
		chunk.WriteSwitch(w, chunk.USE_LAYER_FOG)
	}
	if a.DistanceCue.Use {
		chunk.WriteSwitch(w, chunk.USE_DISTANCE_CUE)
	}
	return w.Err()
}

// SPDX-License-Identifier: GPL-2.0-or-later

// Package camera reads and writes N_CAMERA chunks.
package camera

import (
	"github.com/chewxy/math32"

	"go3ds/chunk"
	qmath "go3ds/math"
	"go3ds/math/vec"
	"go3ds/stream"
)

// DefaultFOV is used for a lens value of zero.
const DefaultFOV = 45

// lens converts between a field of view in degrees and the stored lens value.
const lens float32 = 2400

type Camera struct {
	Name      string
	Flags     chunk.ObjectFlags
	Position  vec.Vec3
	Target    vec.Vec3
	Roll      float32
	FOV       float32
	SeeCone   bool
	NearRange float32
	FarRange  float32
}

func New(name string) *Camera {
	return &Camera{
		Name: name,
		FOV:  DefaultFOV,
	}
}

// Read fills cam from the N_CAMERA chunk c. The stream is left behind c.
func (cam *Camera) Read(r *stream.Reader, c *chunk.Chunk) error {
	cam.Position = r.ReadVec3()
	cam.Target = r.ReadVec3()
	cam.Roll = r.ReadFloat32()
	l := r.ReadFloat32()
	if math32.Abs(l) < qmath.Epsilon {
		cam.FOV = DefaultFOV
	} else {
		cam.FOV = lens / l
	}
	c.BeginChildren(r)
	for n := c.Next(r); n != nil; n = c.Next(r) {
		switch n.ID {
		case chunk.CAM_SEE_CONE:
			cam.SeeCone = true
		case chunk.CAM_RANGES:
			cam.NearRange = r.ReadFloat32()
			cam.FarRange = r.ReadFloat32()
		default:
			chunk.Unknown(c, n)
		}
	}
	c.End(r)
	return r.Err()
}

func (cam *Camera) Write(w *stream.Writer) error {
	return chunk.Write(w, chunk.N_CAMERA, func() error {
		w.WriteVec3(cam.Position)
		w.WriteVec3(cam.Target)
		w.WriteFloat32(cam.Roll)
		if math32.Abs(cam.FOV) < qmath.Epsilon {
			w.WriteFloat32(lens / DefaultFOV)
		} else {
			w.WriteFloat32(lens / cam.FOV)
		}
		if cam.SeeCone {
			chunk.WriteSwitch(w, chunk.CAM_SEE_CONE)
		}
		chunk.WriteHeader(w, chunk.CAM_RANGES, 14)
		w.WriteFloat32(cam.NearRange)
		w.WriteFloat32(cam.FarRange)
		return w.Err()
	})
}

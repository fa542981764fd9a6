// SPDX-License-Identifier: GPL-2.0-or-later

// Package shadow holds the global shadow map settings. Every field is its own
// chunk directly inside MDATA.
package shadow

import (
	"go3ds/chunk"
	qmath "go3ds/math"
	"go3ds/stream"
)

type Shadow struct {
	MapSize int16
	LoBias  float32
	HiBias  float32
	Samples int16
	Range   int32
	Filter  float32
	RayBias float32
}

// Handles reports whether id is one of the shadow chunks.
func Handles(id uint16) bool {
	switch id {
	case chunk.LO_SHADOW_BIAS, chunk.HI_SHADOW_BIAS, chunk.SHADOW_MAP_SIZE,
		chunk.SHADOW_SAMPLES, chunk.SHADOW_RANGE, chunk.SHADOW_FILTER, chunk.RAY_BIAS:
		return true
	}
	return false
}

// Read reads the shadow chunk c, other chunks are skipped.
func (s *Shadow) Read(r *stream.Reader, c *chunk.Chunk) error {
	switch c.ID {
	case chunk.LO_SHADOW_BIAS:
		s.LoBias = r.ReadFloat32()
	case chunk.HI_SHADOW_BIAS:
		s.HiBias = r.ReadFloat32()
	case chunk.SHADOW_MAP_SIZE:
		s.MapSize = r.ReadInt16()
	case chunk.SHADOW_SAMPLES:
		s.Samples = r.ReadInt16()
	case chunk.SHADOW_RANGE:
		s.Range = r.ReadInt32()
	case chunk.SHADOW_FILTER:
		s.Filter = r.ReadFloat32()
	case chunk.RAY_BIAS:
		s.RayBias = r.ReadFloat32()
	}
	c.End(r)
	return r.Err()
}

// Write writes the set fields. Floats not above the epsilon and zero
// integers are left out.
func (s *Shadow) Write(w *stream.Writer) error {
	if qmath.Significant(s.LoBias) {
		chunk.WriteFloat(w, chunk.LO_SHADOW_BIAS, s.LoBias)
	}
	if qmath.Significant(s.HiBias) {
		chunk.WriteFloat(w, chunk.HI_SHADOW_BIAS, s.HiBias)
	}
	if s.MapSize != 0 {
		chunk.WriteInt16(w, chunk.SHADOW_MAP_SIZE, s.MapSize)
	}
	if s.Samples != 0 {
		chunk.WriteInt16(w, chunk.SHADOW_SAMPLES, s.Samples)
	}
	if s.Range != 0 {
		chunk.WriteInt32(w, chunk.SHADOW_RANGE, s.Range)
	}
	if qmath.Significant(s.Filter) {
		chunk.WriteFloat(w, chunk.SHADOW_FILTER, s.Filter)
	}
	if qmath.Significant(s.RayBias) {
		chunk.WriteFloat(w, chunk.RAY_BIAS, s.RayBias)
	}
	return w.Err()
}

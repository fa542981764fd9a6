// SPDX-License-Identifier: GPL-2.0-or-later

package atmosphere

import (
	"testing"

	"go3ds/chunk"
	"go3ds/stream"
)

func TestRoundTrip(t *testing.T) {
	in := Atmosphere{
		Fog: Fog{
			Use:         true,
			Color:       chunk.RGB{0.5, 0.5, 0.75},
			Background:  true,
			NearPlane:   1,
			NearDensity: 0.1,
			FarPlane:    100,
			FarDensity:  0.9,
		},
		LayerFog: LayerFog{
			Use:     true,
			Flags:   0x100003,
			Color:   chunk.RGB{0.25, 0, 1},
			NearY:   -5,
			FarY:    5,
			Density: 0.5,
		},
		DistanceCue: DistanceCue{
			Use:        true,
			Background: true,
			NearPlane:  2,
			NearDim:    0.2,
			FarPlane:   200,
			FarDim:     0.8,
		},
	}
	buf := stream.NewBuffer(nil)
	w := stream.NewWriter(buf)
	if err := chunk.Write(w, chunk.MDATA, func() error { return in.Write(w) }); err != nil {
		t.Fatalf("Write: %v", err)
	}
	buf.Seek(0, 0)
	r := stream.NewReader(buf)
	c, err := chunk.Begin(r, chunk.MDATA)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	var out Atmosphere
	for n := c.Next(r); n != nil; n = c.Next(r) {
		if !Handles(n.ID) {
			t.Errorf("unexpected chunk %v", n)
			continue
		}
		if err := out.Read(r, n); err != nil {
			t.Fatalf("Read: %v", err)
		}
	}
	if out != in {
		t.Errorf("Read = %+v, want %+v", out, in)
	}
}

func TestUnusedIsOmitted(t *testing.T) {
	in := Atmosphere{Fog: Fog{NearPlane: 3}}
	buf := stream.NewBuffer(nil)
	if err := in.Write(stream.NewWriter(buf)); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("Len() = %d, want 0", buf.Len())
	}
}

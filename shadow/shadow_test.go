// SPDX-License-Identifier: GPL-2.0-or-later

package shadow

import (
	"testing"

	"go3ds/chunk"
	"go3ds/stream"
)

func roundTrip(t *testing.T, in Shadow) Shadow {
	t.Helper()
	buf := stream.NewBuffer(nil)
	w := stream.NewWriter(buf)
	err := chunk.Write(w, chunk.MDATA, func() error {
		return in.Write(w)
	})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	buf.Seek(0, 0)
	r := stream.NewReader(buf)
	c, err := chunk.Begin(r, chunk.MDATA)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	var out Shadow
	for n := c.Next(r); n != nil; n = c.Next(r) {
		if !Handles(n.ID) {
			t.Errorf("unexpected chunk %v", n)
			continue
		}
		if err := out.Read(r, n); err != nil {
			t.Fatalf("Read: %v", err)
		}
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	in := Shadow{
		MapSize: 1024,
		LoBias:  0.5,
		HiBias:  1.5,
		Samples: 4,
		Range:   100,
		Filter:  3,
		RayBias: 0.25,
	}
	if out := roundTrip(t, in); out != in {
		t.Errorf("Read = %+v, want %+v", out, in)
	}
}

func TestRayBiasThreshold(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{1e-8, 0},
		{1e-9, 0},
		{1e-3, 1e-3},
	}
	for _, tc := range tests {
		out := roundTrip(t, Shadow{RayBias: tc.in})
		if out.RayBias != tc.want {
			t.Errorf("round trip of RayBias %v = %v, want %v", tc.in, out.RayBias, tc.want)
		}
	}
}

func TestEmptyWritesNothing(t *testing.T) {
	buf := stream.NewBuffer(nil)
	var s Shadow
	if err := s.Write(stream.NewWriter(buf)); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("Len() = %d, want 0", buf.Len())
	}
}

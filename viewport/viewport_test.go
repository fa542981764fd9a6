// SPDX-License-Identifier: GPL-2.0-or-later

package viewport

import (
	"reflect"
	"testing"

	"go3ds/chunk"
	"go3ds/math/vec"
	"go3ds/stream"
)

func roundTrip(t *testing.T, in *Viewport) *Viewport {
	t.Helper()
	buf := stream.NewBuffer(nil)
	w := stream.NewWriter(buf)
	if err := chunk.Write(w, chunk.KFDATA, func() error { return in.Write(w) }); err != nil {
		t.Fatalf("Write: %v", err)
	}
	buf.Seek(0, 0)
	r := stream.NewReader(buf)
	c, err := chunk.Begin(r, chunk.KFDATA)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	out := &Viewport{}
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

func TestLayoutRoundTrip(t *testing.T) {
	in := &Viewport{
		Layout: Layout{
			Style:     3,
			Active:    1,
			Swap:      0,
			SwapPrior: 2,
			SwapView:  1,
			Position:  [2]uint16{0, 0},
			Size:      [2]uint16{640, 480},
			Views: []View{
				{Type: VIEW_TOP, AxisLock: 0, Position: [2]int16{0, 0}, Size: [2]int16{320, 240}, Zoom: 1.5},
				{Type: VIEW_CAMERA, Position: [2]int16{320, 0}, Size: [2]int16{320, 240}, Zoom: 1,
					Center: vec.Vec3{X: 1, Y: 2, Z: 3}, HorizAngle: 30, VertAngle: -20, Camera: "Camera01"},
			},
		},
		Default: DefaultView{
			Type:       VIEW_USER,
			Position:   vec.Vec3{X: 5},
			Width:      100,
			HorizAngle: 45,
			VertAngle:  30,
			RollAngle:  2,
		},
	}
	out := roundTrip(t, in)
	if !reflect.DeepEqual(out, in) {
		t.Errorf("Read = %+v, want %+v", out, in)
	}
}

func TestDefaultViews(t *testing.T) {
	tests := []DefaultView{
		{Type: VIEW_FRONT, Position: vec.Vec3{Y: -10}, Width: 50},
		{Type: VIEW_BACK, Width: 1},
		{Type: VIEW_CAMERA, Camera: "cam"},
	}
	for _, tc := range tests {
		out := roundTrip(t, &Viewport{Default: tc})
		if out.Default != tc {
			t.Errorf("round trip of %+v = %+v", tc, out.Default)
		}
	}
}

func TestLayoutCameraTruncated(t *testing.T) {
	in := &Viewport{Layout: Layout{Views: []View{{Type: VIEW_CAMERA, Camera: "a_very_long_camera"}}}}
	out := roundTrip(t, in)
	if got := out.Layout.Views[0].Camera; got != "a_very_lon" {
		t.Errorf("Camera = %q, want %q", got, "a_very_lon")
	}
}

func TestEmptyWritesNothing(t *testing.T) {
	buf := stream.NewBuffer(nil)
	var v Viewport
	if err := v.Write(stream.NewWriter(buf)); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("Len() = %d, want 0", buf.Len())
	}
}

// SPDX-License-Identifier: GPL-2.0-or-later

package chunk

import (
	"testing"

	"go3ds/stream"
)

func TestRGB24(t *testing.T) {
	tests := []struct {
		in   RGB
		want [3]uint8
	}{
		{RGB{0, 0.5, 1}, [3]uint8{0, 128, 255}},
		{RGB{-1, 2, 0.2}, [3]uint8{0, 255, 51}},
	}
	for _, tc := range tests {
		b := stream.NewBuffer(nil)
		WriteRGB24(stream.NewWriter(b), tc.in)
		got := b.Bytes()
		if got[0] != tc.want[0] || got[1] != tc.want[1] || got[2] != tc.want[2] {
			t.Errorf("WriteRGB24(%v) = %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestColorPrefersLinear(t *testing.T) {
	b := stream.NewBuffer(nil)
	w := stream.NewWriter(b)
	Write(w, MAT_AMBIENT, func() error {
		WriteHeader(w, LIN_COLOR_24, 9)
		WriteRGB24(w, RGB{1, 0, 0})
		WriteHeader(w, COLOR_24, 9)
		WriteRGB24(w, RGB{0, 1, 0})
		return nil
	})
	r := stream.NewReader(stream.NewBuffer(b.Bytes()))
	c, err := Begin(r, MAT_AMBIENT)
	if err != nil {
		t.Fatal(err)
	}
	if got := ReadColor(r, c); got != (RGB{1, 0, 0}) {
		t.Errorf("ReadColor = %v", got)
	}
}

func TestColorRoundTrip(t *testing.T) {
	b := stream.NewBuffer(nil)
	w := stream.NewWriter(b)
	WriteColor(w, MAT_DIFFUSE, RGB{0.2, 0.4, 0.6})
	Write(w, AMBIENT_LIGHT, func() error {
		WriteColorF(w, RGB{0.25, 0.5, 0.75})
		return nil
	})
	WritePercent(w, MAT_SHININESS, 0.37)

	r := stream.NewReader(stream.NewBuffer(b.Bytes()))
	c, _ := Begin(r, MAT_DIFFUSE)
	if c.Size != 24 {
		t.Errorf("color chunk size = %d", c.Size)
	}
	col := ReadColor(r, c)
	for i, want := range []float32{0.2, 0.4, 0.6} {
		if d := col[i] - want; d > 1.0/255 || d < -1.0/255 {
			t.Errorf("channel %d = %v want %v", i, col[i], want)
		}
	}
	c.End(r)
	c, _ = Begin(r, AMBIENT_LIGHT)
	if col := ReadColor(r, c); col != (RGB{0.25, 0.5, 0.75}) {
		t.Errorf("float color = %v", col)
	}
	c.End(r)
	c, _ = Begin(r, MAT_SHININESS)
	if p := ReadPercent(r, c); p != 0.37 {
		t.Errorf("percent = %v", p)
	}
}

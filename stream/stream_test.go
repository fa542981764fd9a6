// SPDX-License-Identifier: GPL-2.0-or-later

package stream

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"

	"go3ds/math/vec"
)

func TestReadString(t *testing.T) {
	tests := []struct {
		reader     *Reader
		max        int
		shouldFail bool
		result     string
	}{
		{
			NewReader(NewBuffer([]byte{'h', 'e', 'l', 'l', 'o', 0, 's', 't', 'u', 'f', 'f'})),
			64,
			false,
			"hello",
		},
		{
			NewReader(NewBuffer([]byte{'h', 'e', 'l', 'l', 'o'})),
			64,
			true,
			"",
		},
		{
			NewReader(NewBuffer([]byte{'h', 'e', 'l', 'l', 'o', 0})),
			4,
			false,
			"hel",
		},
	}
	for i, tc := range tests {
		s := tc.reader.ReadString(tc.max)
		err := tc.reader.Err()
		if err != nil {
			if !tc.shouldFail {
				t.Errorf("Testcase %d should not return error: %v", i, err)
			}
			continue
		}
		if tc.shouldFail {
			t.Errorf("Testcase %d should return error", i)
			continue
		}
		if s != tc.result {
			t.Errorf("Testcase %d. got: %v, want %v", i, s, tc.result)
		}
	}
}

func TestShortStringError(t *testing.T) {
	r := NewReader(NewBuffer([]byte{'a'}))
	r.ReadString(64)
	if errors.Cause(r.Err()) != ErrShortString {
		t.Errorf("ReadString on unterminated input = %v", r.Err())
	}
}

func TestTruncatedStringKeepsPosition(t *testing.T) {
	r := NewReader(NewBuffer([]byte{'a', 'b', 'c', 0, 7}))
	if s := r.ReadString(2); s != "a" {
		t.Errorf("ReadString(2) = %q", s)
	}
	if v := r.ReadUint8(); v != 7 {
		t.Errorf("byte after truncated string = %v", v)
	}
}

func TestStickyError(t *testing.T) {
	r := NewReader(NewBuffer([]byte{1, 0}))
	if v := r.ReadUint16(); v != 1 {
		t.Errorf("ReadUint16 = %v", v)
	}
	r.ReadUint32()
	if r.Err() == nil {
		t.Fatalf("reading past the end should fail")
	}
	first := r.Err()
	r.Seek(0)
	if v := r.ReadUint16(); v != 0 {
		t.Errorf("read after failure = %v", v)
	}
	if r.Err() != first {
		t.Errorf("error changed after failure: %v", r.Err())
	}
}

func TestWriterRoundTrip(t *testing.T) {
	b := NewBuffer(nil)
	w := NewWriter(b)
	w.WriteUint8(9)
	w.WriteInt16(-2)
	w.WriteUint16(0xBEEF)
	w.WriteInt32(-100000)
	w.WriteUint32(0xDEADBEEF)
	w.WriteFloat32(1.5)
	w.WriteVec3(vec.Vec3{X: 1, Y: 2, Z: 3})
	w.WriteRGB([3]float32{0.1, 0.2, 0.3})
	w.WriteString("name", 64)
	w.WriteFixedString("cam", 11)
	if err := w.Err(); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if w.Tell() != int64(b.Len()) {
		t.Errorf("Tell = %d, len %d", w.Tell(), b.Len())
	}

	r := NewReader(NewBuffer(b.Bytes()))
	if v := r.ReadUint8(); v != 9 {
		t.Errorf("ReadUint8 = %v", v)
	}
	if v := r.ReadInt16(); v != -2 {
		t.Errorf("ReadInt16 = %v", v)
	}
	if v := r.ReadUint16(); v != 0xBEEF {
		t.Errorf("ReadUint16 = %x", v)
	}
	if v := r.ReadInt32(); v != -100000 {
		t.Errorf("ReadInt32 = %v", v)
	}
	if v := r.ReadUint32(); v != 0xDEADBEEF {
		t.Errorf("ReadUint32 = %x", v)
	}
	if v := r.ReadFloat32(); v != 1.5 {
		t.Errorf("ReadFloat32 = %v", v)
	}
	if v := r.ReadVec3(); v != (vec.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("ReadVec3 = %v", v)
	}
	if v := r.ReadRGB(); v != [3]float32{0.1, 0.2, 0.3} {
		t.Errorf("ReadRGB = %v", v)
	}
	if v := r.ReadString(64); v != "name" {
		t.Errorf("ReadString = %v", v)
	}
	start := r.Tell()
	if v := r.ReadString(11); v != "cam" {
		t.Errorf("fixed string = %v", v)
	}
	r.Seek(start + 11)
	if r.Err() != nil || r.Tell() != int64(b.Len()) {
		t.Errorf("fixed string size wrong: %v %d", r.Err(), r.Tell())
	}
}

func TestTruncate(t *testing.T) {
	if s := Truncate("abcdef", 4); s != "abc" {
		t.Errorf("Truncate(abcdef, 4) = %q", s)
	}
	if s := Truncate("ab", 4); s != "ab" {
		t.Errorf("Truncate(ab, 4) = %q", s)
	}
	b := NewBuffer(nil)
	NewWriter(b).WriteString("abcdef", 4)
	if !bytes.Equal(b.Bytes(), []byte{'a', 'b', 'c', 0}) {
		t.Errorf("WriteString(abcdef, 4) = %v", b.Bytes())
	}
}

func TestBufferSeekPastEnd(t *testing.T) {
	b := NewBuffer(nil)
	b.Write([]byte{1, 2})
	b.Seek(4, 0)
	b.Write([]byte{5})
	if !bytes.Equal(b.Bytes(), []byte{1, 2, 0, 0, 5}) {
		t.Errorf("buffer = %v", b.Bytes())
	}
	b.Seek(1, 0)
	b.Write([]byte{9})
	if !bytes.Equal(b.Bytes(), []byte{1, 9, 0, 0, 5}) {
		t.Errorf("overwrite = %v", b.Bytes())
	}
	if _, err := b.Seek(-1, 0); err == nil {
		t.Errorf("negative seek should fail")
	}
}

// SPDX-License-Identifier: GPL-2.0-or-later

package stream

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"go3ds/conlog"
	"go3ds/math/vec"
)

// Writer writes little endian values to a seekable sink. Like Reader the
// first failure is sticky.
type Writer struct {
	w   io.WriteSeeker
	err error
}

func NewWriter(w io.WriteSeeker) *Writer {
	return &Writer{w: w}
}

func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) write(data interface{}) {
	if w.err != nil {
		return
	}
	if err := binary.Write(w.w, binary.LittleEndian, data); err != nil {
		w.fail(errors.Wrap(err, "write"))
	}
}

func (w *Writer) Tell() int64 {
	if w.err != nil {
		return 0
	}
	p, err := w.w.Seek(0, io.SeekCurrent)
	if err != nil {
		w.fail(errors.Wrap(err, "tell"))
		return 0
	}
	return p
}

func (w *Writer) Seek(off int64) {
	if w.err != nil {
		return
	}
	if _, err := w.w.Seek(off, io.SeekStart); err != nil {
		w.fail(errors.Wrapf(err, "seek to %d", off))
	}
}

func (w *Writer) WriteUint8(v uint8) {
	w.write(v)
}

func (w *Writer) WriteInt16(v int16) {
	w.write(v)
}

func (w *Writer) WriteUint16(v uint16) {
	w.write(v)
}

func (w *Writer) WriteInt32(v int32) {
	w.write(v)
}

func (w *Writer) WriteUint32(v uint32) {
	w.write(v)
}

func (w *Writer) WriteFloat32(v float32) {
	w.write(v)
}

func (w *Writer) WriteVec3(v vec.Vec3) {
	w.write(v.Array())
}

func (w *Writer) WriteRGB(c [3]float32) {
	w.write(c)
}

// Truncate shortens s so that it fits into a NUL terminated field of max
// bytes.
func Truncate(s string, max int) string {
	if len(s) <= max-1 {
		return s
	}
	conlog.Warn("string truncated on write", "name", s, "limit", max-1)
	return s[:max-1]
}

// WriteString writes s truncated to max-1 bytes followed by a NUL.
func (w *Writer) WriteString(s string, max int) {
	s = Truncate(s, max)
	w.write(append([]byte(s), 0))
}

// WriteFixedString writes s into a zero padded field of exactly n bytes. The
// last byte is always NUL.
func (w *Writer) WriteFixedString(s string, n int) {
	b := make([]byte, n)
	copy(b, Truncate(s, n))
	w.write(b)
}

// SPDX-License-Identifier: GPL-2.0-or-later

package stream

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"

	"github.com/pkg/errors"

	"go3ds/conlog"
	"go3ds/math/vec"
)

var ErrShortString = errors.New("string is not NUL terminated")

// Reader reads little endian values from a seekable source.
// The first failure is sticky. Every later call is a no-op returning zero
// values and Err reports the failure.
type Reader struct {
	r   io.ReadSeeker
	err error
}

func NewReader(r io.ReadSeeker) *Reader {
	return &Reader{r: r}
}

// Err returns the first error the reader ran into.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Reader) read(data interface{}) {
	if r.err != nil {
		return
	}
	if err := binary.Read(r.r, binary.LittleEndian, data); err != nil {
		r.fail(errors.Wrap(err, "read"))
	}
}

// Tell returns the current offset.
func (r *Reader) Tell() int64 {
	if r.err != nil {
		return 0
	}
	p, err := r.r.Seek(0, io.SeekCurrent)
	if err != nil {
		r.fail(errors.Wrap(err, "tell"))
		return 0
	}
	return p
}

// Seek moves to the absolute offset off.
func (r *Reader) Seek(off int64) {
	if r.err != nil {
		return
	}
	if off < 0 {
		r.fail(errors.Errorf("seek to negative offset %d", off))
		return
	}
	if _, err := r.r.Seek(off, io.SeekStart); err != nil {
		r.fail(errors.Wrapf(err, "seek to %d", off))
	}
}

func (r *Reader) ReadUint8() uint8 {
	var v uint8
	r.read(&v)
	return v
}

func (r *Reader) ReadInt16() int16 {
	var v int16
	r.read(&v)
	return v
}

func (r *Reader) ReadUint16() uint16 {
	var v uint16
	r.read(&v)
	return v
}

func (r *Reader) ReadInt32() int32 {
	var v int32
	r.read(&v)
	return v
}

func (r *Reader) ReadUint32() uint32 {
	var v uint32
	r.read(&v)
	return v
}

func (r *Reader) ReadFloat32() float32 {
	var v float32
	r.read(&v)
	return v
}

func (r *Reader) ReadVec3() vec.Vec3 {
	var a [3]float32
	r.read(&a)
	return vec.VFromA(a)
}

// ReadRGB reads three floats.
func (r *Reader) ReadRGB() [3]float32 {
	var a [3]float32
	r.read(&a)
	return a
}

// ReadString reads a NUL terminated string. Only the first max-1 bytes are
// kept, the rest up to the NUL is consumed and dropped.
func (r *Reader) ReadString(max int) string {
	if r.err != nil {
		return ""
	}
	sb := strings.Builder{}
	dropped := 0
	var b [1]byte
	for {
		if _, err := io.ReadFull(r.r, b[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				err = ErrShortString
			}
			r.fail(errors.Wrap(err, "read string"))
			return ""
		}
		if b[0] == 0 {
			break
		}
		if sb.Len() < max-1 {
			sb.WriteByte(b[0])
		} else {
			dropped++
		}
	}
	if dropped > 0 {
		conlog.Warn("string truncated on read", "kept", sb.String(), "dropped", dropped)
	}
	return sb.String()
}

// ReadFixedString reads a field of n bytes and returns the bytes before the
// first NUL.
func (r *Reader) ReadFixedString(n int) string {
	b := make([]byte, n)
	r.read(b)
	if r.err != nil {
		return ""
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

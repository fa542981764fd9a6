// SPDX-License-Identifier: GPL-2.0-or-later

package stream

import (
	"io"

	"github.com/pkg/errors"
)

// Buffer is an in-memory io.ReadWriteSeeker. Writing past the end grows the
// buffer, the gap is zero filled.
type Buffer struct {
	buf []byte
	off int64
}

func NewBuffer(b []byte) *Buffer {
	return &Buffer{buf: b}
}

func (b *Buffer) Bytes() []byte {
	return b.buf
}

func (b *Buffer) Len() int {
	return len(b.buf)
}

func (b *Buffer) Read(p []byte) (int, error) {
	if b.off >= int64(len(b.buf)) {
		return 0, io.EOF
	}
	n := copy(p, b.buf[b.off:])
	b.off += int64(n)
	return n, nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	end := b.off + int64(len(p))
	if end > int64(len(b.buf)) {
		if end > int64(cap(b.buf)) {
			nb := make([]byte, end, 2*end)
			copy(nb, b.buf)
			b.buf = nb
		} else {
			old := len(b.buf)
			b.buf = b.buf[:end]
			if b.off > int64(old) {
				clear(b.buf[old:b.off])
			}
		}
	}
	copy(b.buf[b.off:], p)
	b.off = end
	return len(p), nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = b.off + offset
	case io.SeekEnd:
		abs = int64(len(b.buf)) + offset
	default:
		return 0, errors.Errorf("invalid whence %d", whence)
	}
	if abs < 0 {
		return 0, errors.New("negative position")
	}
	b.off = abs
	return abs, nil
}

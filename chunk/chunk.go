// SPDX-License-Identifier: GPL-2.0-or-later

// Package chunk implements the nested chunk framing of 3DS files. Every chunk
// is a little endian u16 id followed by a u32 size that includes the 6 byte
// header.
package chunk

import (
	"fmt"

	"github.com/pkg/errors"

	"go3ds/conlog"
	"go3ds/stream"
)

const HeaderSize = 6

var ErrUnexpected = errors.New("unexpected chunk")

// Chunk is a header seen while reading.
type Chunk struct {
	ID    uint16
	Size  uint32
	Start int64 // offset of the id
	cur   int64 // offset of the next child header
}

func (c *Chunk) String() string {
	return fmt.Sprintf("%s (0x%04X) size %d at %d", Name(c.ID), c.ID, c.Size, c.Start)
}

// Limit returns the offset just behind the chunk.
func (c *Chunk) Limit() int64 {
	return c.Start + int64(c.Size)
}

// Begin reads a chunk header at the current position. If id is not 0 the
// header must carry that id.
func Begin(r *stream.Reader, id uint16) (*Chunk, error) {
	c := &Chunk{Start: r.Tell()}
	c.ID = r.ReadUint16()
	c.Size = r.ReadUint32()
	if err := r.Err(); err != nil {
		return nil, err
	}
	if id != 0 && c.ID != id {
		return nil, errors.Wrapf(ErrUnexpected, "want %s, got %s", Name(id), Name(c.ID))
	}
	if c.Size < HeaderSize {
		conlog.Debug("chunk smaller than its header", "chunk", c.String())
		c.Size = HeaderSize
	}
	c.cur = c.Start + HeaderSize
	return c, nil
}

// BeginChildren marks the current position as the first child header. Chunks
// with a fixed payload in front of their children call it after reading the
// payload.
func (c *Chunk) BeginChildren(r *stream.Reader) {
	c.cur = r.Tell()
}

// Next reads the header of the next child and leaves the stream positioned
// at its payload. It returns nil once all children are consumed, on a
// malformed child header and on stream errors.
func (c *Chunk) Next(r *stream.Reader) *Chunk {
	if r.Err() != nil || c.cur+HeaderSize > c.Limit() {
		return nil
	}
	r.Seek(c.cur)
	n := &Chunk{Start: c.cur}
	n.ID = r.ReadUint16()
	n.Size = r.ReadUint32()
	if r.Err() != nil {
		return nil
	}
	if n.Size < HeaderSize {
		conlog.Debug("malformed child chunk", "parent", c.String(), "child", n.String())
		c.cur = c.Limit()
		return nil
	}
	n.cur = n.Start + HeaderSize
	c.cur += int64(n.Size)
	return n
}

// End positions the stream behind the chunk no matter how much of it was
// consumed.
func (c *Chunk) End(r *stream.Reader) {
	r.Seek(c.Limit())
}

// Unknown logs a child that the caller skips.
func Unknown(parent, c *Chunk) {
	conlog.Debug("skipping unknown chunk", "parent", Name(parent.ID), "chunk", c.String())
}

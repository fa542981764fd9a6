// SPDX-License-Identifier: GPL-2.0-or-later

package chunk

import (
	"go3ds/math/vec"
	"go3ds/stream"
)

// Pending is a chunk whose size is patched in by End.
type Pending struct {
	ID    uint16
	start int64
}

// BeginWrite writes the id and a placeholder size.
func BeginWrite(w *stream.Writer, id uint16) *Pending {
	p := &Pending{ID: id, start: w.Tell()}
	w.WriteUint16(id)
	w.WriteUint32(0)
	return p
}

// End patches the size of p with the number of bytes written since
// BeginWrite and returns to the end.
func (p *Pending) End(w *stream.Writer) error {
	end := w.Tell()
	w.Seek(p.start + 2)
	w.WriteUint32(uint32(end - p.start))
	w.Seek(end)
	return w.Err()
}

// Write wraps everything fn writes into a chunk with id.
func Write(w *stream.Writer, id uint16, fn func() error) error {
	p := BeginWrite(w, id)
	if err := fn(); err != nil {
		return err
	}
	return p.End(w)
}

// WriteHeader writes a header with a size known in advance.
func WriteHeader(w *stream.Writer, id uint16, size uint32) {
	w.WriteUint16(id)
	w.WriteUint32(size)
}

// WriteSwitch writes a chunk without payload.
func WriteSwitch(w *stream.Writer, id uint16) {
	WriteHeader(w, id, HeaderSize)
}

func WriteUint16(w *stream.Writer, id uint16, v uint16) {
	WriteHeader(w, id, HeaderSize+2)
	w.WriteUint16(v)
}

func WriteInt16(w *stream.Writer, id uint16, v int16) {
	WriteHeader(w, id, HeaderSize+2)
	w.WriteInt16(v)
}

func WriteInt32(w *stream.Writer, id uint16, v int32) {
	WriteHeader(w, id, HeaderSize+4)
	w.WriteInt32(v)
}

func WriteUint32(w *stream.Writer, id uint16, v uint32) {
	WriteHeader(w, id, HeaderSize+4)
	w.WriteUint32(v)
}

func WriteFloat(w *stream.Writer, id uint16, v float32) {
	WriteHeader(w, id, HeaderSize+4)
	w.WriteFloat32(v)
}

func WriteVec3(w *stream.Writer, id uint16, v vec.Vec3) {
	WriteHeader(w, id, HeaderSize+12)
	w.WriteVec3(v)
}

// WriteString writes a name chunk, names are truncated to max-1 bytes.
func WriteString(w *stream.Writer, id uint16, s string, max int) {
	s = stream.Truncate(s, max)
	WriteHeader(w, id, uint32(HeaderSize+len(s)+1))
	w.WriteString(s, max)
}

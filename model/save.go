// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"io"

	"github.com/pkg/errors"

	"go3ds/chunk"
	"go3ds/stream"
)

// Save writes f as a M3DMAGIC file.
func (f *File) Save(ws io.WriteSeeker) error {
	w := stream.NewWriter(ws)
	err := chunk.Write(w, chunk.M3DMAGIC, func() error {
		chunk.WriteUint32(w, chunk.M3D_VERSION, f.MeshVersion)
		if err := f.writeMDATA(w); err != nil {
			return err
		}
		return f.writeKFDATA(w)
	})
	return errors.Wrap(err, "saving scene")
}

func (f *File) writeMDATA(w *stream.Writer) error {
	return chunk.Write(w, chunk.MDATA, func() error {
		chunk.WriteUint32(w, chunk.MESH_VERSION, f.MeshVersion)
		chunk.WriteFloat(w, chunk.MASTER_SCALE, f.MasterScale)
		if !f.ConstructionPlane.IsZero() {
			chunk.WriteVec3(w, chunk.O_CONSTS, f.ConstructionPlane)
		}
		if f.Ambient.IsSet() {
			chunk.WriteHeader(w, chunk.AMBIENT_LIGHT, 42)
			chunk.WriteColorF(w, f.Ambient)
		}
		if err := f.Background.Write(w); err != nil {
			return err
		}
		if err := f.Atmosphere.Write(w); err != nil {
			return err
		}
		if err := f.Shadow.Write(w); err != nil {
			return err
		}
		if err := f.Viewport.Write(w); err != nil {
			return err
		}
		for _, m := range f.Materials {
			if err := m.Write(w); err != nil {
				return err
			}
		}
		for _, c := range f.Cameras {
			if err := chunk.WriteNamed(w, c.Name, c.Flags, func() error { return c.Write(w) }); err != nil {
				return err
			}
		}
		for _, l := range f.Lights {
			if err := chunk.WriteNamed(w, l.Name, l.Flags, func() error { return l.Write(w) }); err != nil {
				return err
			}
		}
		for _, m := range f.Meshes {
			if err := chunk.WriteNamed(w, m.Name, m.Flags, func() error { return m.Write(w) }); err != nil {
				return err
			}
		}
		return w.Err()
	})
}

// writeKFDATA writes the keyframer section, files without nodes have none.
func (f *File) writeKFDATA(w *stream.Writer) error {
	if f.Nodes.Len() == 0 {
		return nil
	}
	return chunk.Write(w, chunk.KFDATA, func() error {
		name := stream.Truncate(f.Name, 13)
		chunk.WriteHeader(w, chunk.KFHDR, uint32(chunk.HeaderSize+2+len(name)+1+4))
		w.WriteUint16(f.KeyfRevision)
		w.WriteString(name, 13)
		w.WriteInt32(f.Frames)

		chunk.WriteHeader(w, chunk.KFSEG, 14)
		w.WriteInt32(f.SegmentFrom)
		w.WriteInt32(f.SegmentTo)
		chunk.WriteInt32(w, chunk.KFCURTIME, f.CurrentFrame)

		if err := f.ViewportKeyf.Write(w); err != nil {
			return err
		}
		return f.Nodes.Write(w)
	})
}

// SPDX-License-Identifier: GPL-2.0-or-later

package chunk

import "go3ds/stream"

// ObjectFlags are the switches of a NAMED_OBJECT shared by meshes, cameras
// and lights.
type ObjectFlags uint32

const (
	OBJECT_HIDDEN ObjectFlags = 1 << iota
	OBJECT_VIS_LOFTER
	OBJECT_DOESNT_CAST
	OBJECT_MATTE
	OBJECT_DONT_RCVSHADOW
	OBJECT_FAST
	OBJECT_FROZEN
)

var objectSwitches = []struct {
	id   uint16
	flag ObjectFlags
}{
	{OBJ_HIDDEN, OBJECT_HIDDEN},
	{OBJ_VIS_LOFTER, OBJECT_VIS_LOFTER},
	{OBJ_DOESNT_CAST, OBJECT_DOESNT_CAST},
	{OBJ_MATTE, OBJECT_MATTE},
	{OBJ_DONT_RCVSHADOW, OBJECT_DONT_RCVSHADOW},
	{OBJ_FAST, OBJECT_FAST},
	{OBJ_FROZEN, OBJECT_FROZEN},
}

// ObjectFlag returns the flag a switch chunk with id sets, 0 for other ids.
func ObjectFlag(id uint16) ObjectFlags {
	for _, s := range objectSwitches {
		if s.id == id {
			return s.flag
		}
	}
	return 0
}

// WriteObjectFlags writes a switch chunk for every set flag.
func WriteObjectFlags(w *stream.Writer, f ObjectFlags) {
	for _, s := range objectSwitches {
		if f&s.flag != 0 {
			WriteSwitch(w, s.id)
		}
	}
}

// WriteNamed writes a NAMED_OBJECT with the payload written by fn followed by
// the object flags.
func WriteNamed(w *stream.Writer, name string, f ObjectFlags, fn func() error) error {
	return Write(w, NAMED_OBJECT, func() error {
		w.WriteString(name, 64)
		if err := fn(); err != nil {
			return err
		}
		WriteObjectFlags(w, f)
		return w.Err()
	})
}

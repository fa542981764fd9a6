// SPDX-License-Identifier: GPL-2.0-or-later

package pack

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func writePak(t *testing.T, files map[string]string, order []string) string {
	t.Helper()
	var data bytes.Buffer
	var dir []entry
	off := int32(12)
	for _, name := range order {
		var e entry
		copy(e.Name[:], name)
		e.Offset = off
		e.Size = int32(len(files[name]))
		data.WriteString(files[name])
		off += e.Size
		dir = append(dir, e)
	}
	var out bytes.Buffer
	h := header{Offset: off, Size: int32(len(dir) * entrySize)}
	copy(h.ID[:], "PACK")
	binary.Write(&out, binary.LittleEndian, h)
	out.Write(data.Bytes())
	binary.Write(&out, binary.LittleEndian, dir)

	name := filepath.Join(t.TempDir(), "test.pak")
	if err := os.WriteFile(name, out.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestPak(t *testing.T) {
	files := map[string]string{
		"doc1.txt":         "this is the first doc\r\n",
		"scenes/box.3ds":   "MM\x06\x00\x00\x00",
		"testdir/doc4.txt": "",
	}
	pakFile := writePak(t, files, []string{"doc1.txt", "scenes/box.3ds", "testdir/doc4.txt"})
	p, err := NewPackReader(pakFile)
	if err != nil {
		t.Fatalf("could not open %s: %v", pakFile, err)
	}
	defer p.Close()
	if p.String() != pakFile {
		t.Errorf("pack String error: want %v got %v", pakFile, p.String())
	}
	want := []string{"doc1.txt", "scenes/box.3ds", "testdir/doc4.txt"}
	if got := p.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	for name, content := range files {
		f, err := p.Open(name)
		if err != nil {
			t.Fatalf("Open(%q): %v", name, err)
		}
		b, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("Could not read %s: %v", name, err)
		}
		if string(b) != content {
			t.Errorf("%s contents is %q", name, b)
		}
	}
	if _, err := p.Open("doc5.txt"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open(doc5.txt) = %v", err)
	}
}

func TestNotPack(t *testing.T) {
	name := filepath.Join(t.TempDir(), "scene.3ds")
	if err := os.WriteFile(name, []byte("MM\x06\x00\x00\x00\x00\x00\x00\x00\x00\x00"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewPackReader(name); errors.Cause(err) != ErrNotPack {
		t.Errorf("NewPackReader = %v, want %v", err, ErrNotPack)
	}
}

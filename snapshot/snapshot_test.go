// SPDX-License-Identifier: GPL-2.0-or-later

package snapshot

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"go3ds/math/vec"
	"go3ds/model"
	"go3ds/node"
	"go3ds/spline"
	"go3ds/track"
)

func scene() *model.File {
	f := model.New()
	n := node.New(node.ObjectNode, "box")
	d := n.Data.(*node.ObjectData)
	d.Pos.Insert(track.Lin3Key{Value: vec.Vec3{}})
	d.Pos.Insert(track.Lin3Key{Key: spline.Key{Frame: 10}, Value: vec.Vec3{X: 10}})
	d.Hide.Insert(track.BoolKey{Key: spline.Key{Frame: 5}})
	f.Nodes.Add(n)
	f.Nodes.Link()
	return f
}

func TestTake(t *testing.T) {
	s, err := Take(scene(), 0, 10, 5)
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if len(s.Frames) != 3 {
		t.Fatalf("len(Frames) = %d, want 3", len(s.Frames))
	}
	tests := []struct {
		x      float32
		hidden bool
	}{
		{0, false},
		{5, true},
		{10, true},
	}
	for i, tc := range tests {
		n := s.Frames[i].Nodes[0]
		if !vec.Near(n.Position, vec.Vec3{X: tc.x}, 1e-4) || n.Hidden != tc.hidden {
			t.Errorf("frame %d = %+v", i, n)
		}
		if got := n.World.Translation(); !vec.Near(got, vec.Vec3{X: tc.x}, 1e-4) {
			t.Errorf("frame %d translation = %v", i, got)
		}
	}
}

func TestTakeLimits(t *testing.T) {
	if _, err := Take(scene(), 0, 10, 0); err == nil {
		t.Errorf("Take with step 0 succeeded")
	}
	if _, err := Take(scene(), 0, 1e9, 1); errors.Cause(err) != ErrTooManyFrames {
		t.Errorf("Take = %v, want %v", err, ErrTooManyFrames)
	}
}

func TestSaveLoad(t *testing.T) {
	in, err := Take(scene(), 0, 10, 2.5)
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	in.Frames[0].Nodes[0].Morph = "box2"
	name := filepath.Join(t.TempDir(), "box.pb")
	if err := in.Save(name); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := Load(name)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("Load = %+v\nwant %+v", out, in)
	}
}

func TestUnmarshalGarbage(t *testing.T) {
	if _, err := Unmarshal([]byte{0xff, 0xff, 0xff}); err == nil {
		t.Errorf("Unmarshal of garbage succeeded")
	}
}

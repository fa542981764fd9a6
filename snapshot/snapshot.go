// SPDX-License-Identifier: GPL-2.0-or-later

// Package snapshot records evaluated node states over a range of frames and
// stores them as protobuf.
package snapshot

import (
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"go3ds/math/mat"
	"go3ds/math/vec"
	"go3ds/model"
)

const (
	// keep a snapshot from growing without bounds
	maxFrames = 100000
)

var ErrTooManyFrames = errors.New("too many frames")

type Node struct {
	Name     string
	Kind     string
	World    mat.Matrix
	Position vec.Vec3
	Hidden   bool
	Morph    string
}

type Frame struct {
	Time  float32
	Nodes []Node
}

type Snapshot struct {
	Scene  uuid.UUID
	Name   string
	Frames []Frame
}

// Take evaluates f at from, from+step, ... up to and including to.
func Take(f *model.File, from, to, step float32) (*Snapshot, error) {
	if step <= 0 {
		return nil, errors.Errorf("invalid step %v", step)
	}
	if n := (to - from) / step; n+1 > maxFrames {
		return nil, errors.Wrapf(ErrTooManyFrames, "%v", n+1)
	}
	s := &Snapshot{Scene: f.ID, Name: f.Name}
	for i := 0; ; i++ {
		t := from + float32(i)*step
		if t > to {
			break
		}
		fr := Frame{Time: t}
		for j, n := range f.Nodes.Nodes {
			st := f.Nodes.Evaluate(j, t)
			fr.Nodes = append(fr.Nodes, Node{
				Name:     n.Name,
				Kind:     n.Kind().String(),
				World:    st.World,
				Position: st.Position,
				Hidden:   st.Hidden,
				Morph:    st.Morph,
			})
		}
		s.Frames = append(s.Frames, fr)
	}
	return s, nil
}

func matrixValue(m mat.Matrix) []interface{} {
	l := make([]interface{}, 0, 16)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			l = append(l, float64(m[i][j]))
		}
	}
	return l
}

func vecValue(v vec.Vec3) []interface{} {
	return []interface{}{float64(v.X), float64(v.Y), float64(v.Z)}
}

func (s *Snapshot) toStruct() (*structpb.Struct, error) {
	frames := make([]interface{}, 0, len(s.Frames))
	for _, fr := range s.Frames {
		nodes := make([]interface{}, 0, len(fr.Nodes))
		for _, n := range fr.Nodes {
			nodes = append(nodes, map[string]interface{}{
				"name":     n.Name,
				"kind":     n.Kind,
				"world":    matrixValue(n.World),
				"position": vecValue(n.Position),
				"hidden":   n.Hidden,
				"morph":    n.Morph,
			})
		}
		frames = append(frames, map[string]interface{}{
			"time":  float64(fr.Time),
			"nodes": nodes,
		})
	}
	return structpb.NewStruct(map[string]interface{}{
		"scene":  s.Scene.String(),
		"name":   s.Name,
		"frames": frames,
	})
}

func (s *Snapshot) Marshal() ([]byte, error) {
	data, err := s.toStruct()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build snapshot")
	}
	out, err := proto.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode snapshot")
	}
	return out, nil
}

func Unmarshal(in []byte) (*Snapshot, error) {
	data := &structpb.Struct{}
	if err := proto.Unmarshal(in, data); err != nil {
		return nil, errors.Wrap(err, "failed to decode snapshot")
	}
	fields := data.GetFields()
	s := &Snapshot{Name: fields["name"].GetStringValue()}
	id, err := uuid.Parse(fields["scene"].GetStringValue())
	if err != nil {
		return nil, errors.Wrap(err, "snapshot scene id")
	}
	s.Scene = id
	for _, fv := range fields["frames"].GetListValue().GetValues() {
		ff := fv.GetStructValue().GetFields()
		fr := Frame{Time: float32(ff["time"].GetNumberValue())}
		for _, nv := range ff["nodes"].GetListValue().GetValues() {
			nf := nv.GetStructValue().GetFields()
			n := Node{
				Name:   nf["name"].GetStringValue(),
				Kind:   nf["kind"].GetStringValue(),
				Hidden: nf["hidden"].GetBoolValue(),
				Morph:  nf["morph"].GetStringValue(),
			}
			w := nf["world"].GetListValue().GetValues()
			if len(w) != 16 {
				return nil, errors.Errorf("node %s: world matrix has %d values", n.Name, len(w))
			}
			for i := range w {
				n.World[i/4][i%4] = float32(w[i].GetNumberValue())
			}
			p := nf["position"].GetListValue().GetValues()
			if len(p) != 3 {
				return nil, errors.Errorf("node %s: position has %d values", n.Name, len(p))
			}
			n.Position = vec.Vec3{
				X: float32(p[0].GetNumberValue()),
				Y: float32(p[1].GetNumberValue()),
				Z: float32(p[2].GetNumberValue()),
			}
			fr.Nodes = append(fr.Nodes, n)
		}
		s.Frames = append(s.Frames, fr)
	}
	return s, nil
}

func (s *Snapshot) Save(name string) error {
	out, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(name, out, 0660); err != nil {
		return errors.Wrap(err, "failed to write snapshot file")
	}
	return nil
}

func Load(name string) (*Snapshot, error) {
	in, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return Unmarshal(in)
}

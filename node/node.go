// SPDX-License-Identifier: GPL-2.0-or-later

// Package node implements the keyframer scene graph.
package node

import (
	"fmt"

	"github.com/pkg/errors"

	"go3ds/chunk"
	qmath "go3ds/math"
	"go3ds/math/mat"
	"go3ds/math/vec"
	"go3ds/stream"
	"go3ds/track"
)

// NoParent is the parent id of root nodes.
const NoParent = 0xFFFF

var ErrUnknownTag = errors.New("unknown node tag")

type Kind int

const (
	AmbientNode Kind = iota + 1
	ObjectNode
	CameraNode
	TargetNode
	LightNode
	SpotNode
)

func (k Kind) String() string {
	switch k {
	case AmbientNode:
		return "ambient"
	case ObjectNode:
		return "object"
	case CameraNode:
		return "camera"
	case TargetNode:
		return "target"
	case LightNode:
		return "light"
	case SpotNode:
		return "spot"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// flags1
const (
	NODE_HIDDEN = 0x0800
)

// flags2
const (
	NODE_SHOW_PATH       = 0x0001
	NODE_SMOOTHING       = 0x0002
	NODE_MOTION_BLUR     = 0x0010
	NODE_MORPH_MATERIALS = 0x0040
)

// Data is the kind specific part of a node. It is one of *AmbientData,
// *ObjectData, *CameraData, *TargetData, *LightData and *SpotData.
type Data interface {
	Kind() Kind
}

type AmbientData struct {
	Color track.Lin3
}

type ObjectData struct {
	Pivot       vec.Vec3
	Instance    string
	BBoxMin     vec.Vec3
	BBoxMax     vec.Vec3
	MorphSmooth float32
	Pos         track.Lin3
	Rot         track.Quat
	Scl         track.Lin3
	Morph       track.Morph
	Hide        track.Bool
}

type CameraData struct {
	Pos  track.Lin3
	FOV  track.Lin1
	Roll track.Lin1
}

// TargetData is the point a camera looks at.
type TargetData struct {
	Pos track.Lin3
}

type LightData struct {
	Pos     track.Lin3
	Color   track.Lin3
	Hotspot track.Lin1
	Falloff track.Lin1
	Roll    track.Lin1
}

// SpotData is the point a spot light is aimed at.
type SpotData struct {
	Pos track.Lin3
}

func (*AmbientData) Kind() Kind { return AmbientNode }
func (*ObjectData) Kind() Kind  { return ObjectNode }
func (*CameraData) Kind() Kind  { return CameraNode }
func (*TargetData) Kind() Kind  { return TargetNode }
func (*LightData) Kind() Kind   { return LightNode }
func (*SpotData) Kind() Kind    { return SpotNode }

type Node struct {
	ID       uint16
	Name     string
	Flags1   uint16
	Flags2   uint16
	ParentID uint16
	Data     Data

	// Matrix is the world matrix of the last Graph.Eval.
	Matrix mat.Matrix
}

func New(kind Kind, name string) *Node {
	n := &Node{
		Name:     name,
		ParentID: NoParent,
		Matrix:   mat.Identity(),
	}
	switch kind {
	case AmbientNode:
		n.Data = &AmbientData{}
	case ObjectNode:
		d := &ObjectData{}
		d.Scl.Default = vec.Vec3{X: 1, Y: 1, Z: 1}
		n.Data = d
	case CameraNode:
		n.Data = &CameraData{}
	case TargetNode:
		n.Data = &TargetData{}
	case LightNode:
		n.Data = &LightData{}
	case SpotNode:
		n.Data = &SpotData{}
	default:
		panic(fmt.Sprintf("node.New: invalid kind %d", kind))
	}
	return n
}

func (n *Node) Kind() Kind {
	return n.Data.Kind()
}

func (n *Node) String() string {
	return fmt.Sprintf("%s node %q id %d", n.Kind(), n.Name, n.ID)
}

func (n *Node) Hidden() bool         { return n.Flags1&NODE_HIDDEN != 0 }
func (n *Node) ShowPath() bool       { return n.Flags2&NODE_SHOW_PATH != 0 }
func (n *Node) Smoothing() bool      { return n.Flags2&NODE_SMOOTHING != 0 }
func (n *Node) MotionBlur() bool     { return n.Flags2&NODE_MOTION_BLUR != 0 }
func (n *Node) MorphMaterials() bool { return n.Flags2&NODE_MORPH_MATERIALS != 0 }

var tagKinds = map[uint16]Kind{
	chunk.AMBIENT_NODE_TAG:   AmbientNode,
	chunk.OBJECT_NODE_TAG:    ObjectNode,
	chunk.CAMERA_NODE_TAG:    CameraNode,
	chunk.TARGET_NODE_TAG:    TargetNode,
	chunk.LIGHT_NODE_TAG:     LightNode,
	chunk.SPOTLIGHT_NODE_TAG: LightNode,
	chunk.L_TARGET_NODE_TAG:  SpotNode,
}

// IsTag reports whether id starts a node.
func IsTag(id uint16) bool {
	_, ok := tagKinds[id]
	return ok
}

type trackReader interface {
	Read(r *stream.Reader) error
}

// Read reads the node chunk c. id is used if the node has no NODE_ID.
func Read(r *stream.Reader, c *chunk.Chunk, id uint16) (*Node, error) {
	kind, ok := tagKinds[c.ID]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTag, "%v", c)
	}
	n := New(kind, "")
	n.ID = id
	for ch := c.Next(r); ch != nil; ch = c.Next(r) {
		switch ch.ID {
		case chunk.NODE_ID:
			n.ID = r.ReadUint16()
			continue
		case chunk.NODE_HDR:
			n.Name = r.ReadString(64)
			n.Flags1 = r.ReadUint16()
			n.Flags2 = r.ReadUint16()
			n.ParentID = r.ReadUint16()
			continue
		}
		if !n.readData(r, ch) {
			chunk.Unknown(c, ch)
		}
	}
	c.End(r)
	if err := r.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %v", c)
	}
	return n, nil
}

// readData reads a kind specific child, it returns false for children the
// kind does not have.
func (n *Node) readData(r *stream.Reader, c *chunk.Chunk) bool {
	var t trackReader
	switch d := n.Data.(type) {
	case *AmbientData:
		if c.ID == chunk.COL_TRACK_TAG {
			t = &d.Color
		}
	case *ObjectData:
		switch c.ID {
		case chunk.PIVOT:
			d.Pivot = r.ReadVec3()
			return true
		case chunk.INSTANCE_NAME:
			d.Instance = r.ReadString(64)
			return true
		case chunk.BOUNDBOX:
			d.BBoxMin = r.ReadVec3()
			d.BBoxMax = r.ReadVec3()
			return true
		case chunk.MORPH_SMOOTH:
			d.MorphSmooth = r.ReadFloat32()
			return true
		case chunk.POS_TRACK_TAG:
			t = &d.Pos
		case chunk.ROT_TRACK_TAG:
			t = &d.Rot
		case chunk.SCL_TRACK_TAG:
			t = &d.Scl
		case chunk.MORPH_TRACK_TAG:
			t = &d.Morph
		case chunk.HIDE_TRACK_TAG:
			t = &d.Hide
		}
	case *CameraData:
		switch c.ID {
		case chunk.POS_TRACK_TAG:
			t = &d.Pos
		case chunk.FOV_TRACK_TAG:
			t = &d.FOV
		case chunk.ROLL_TRACK_TAG:
			t = &d.Roll
		}
	case *TargetData:
		if c.ID == chunk.POS_TRACK_TAG {
			t = &d.Pos
		}
	case *LightData:
		switch c.ID {
		case chunk.POS_TRACK_TAG:
			t = &d.Pos
		case chunk.COL_TRACK_TAG:
			t = &d.Color
		case chunk.HOT_TRACK_TAG:
			t = &d.Hotspot
		case chunk.FALL_TRACK_TAG:
			t = &d.Falloff
		case chunk.ROLL_TRACK_TAG:
			t = &d.Roll
		}
	case *SpotData:
		if c.ID == chunk.POS_TRACK_TAG {
			t = &d.Pos
		}
	}
	if t == nil {
		return false
	}
	t.Read(r)
	return true
}

type trackWriter interface {
	Write(w *stream.Writer) error
}

func writeTrack(w *stream.Writer, id uint16, t trackWriter) error {
	return chunk.Write(w, id, func() error {
		return t.Write(w)
	})
}

// Write writes n with parent as the parent id. Light nodes are written as
// spot lights if spot is set.
func (n *Node) Write(w *stream.Writer, parent uint16, spot bool) error {
	var tag uint16
	switch n.Kind() {
	case AmbientNode:
		tag = chunk.AMBIENT_NODE_TAG
	case ObjectNode:
		tag = chunk.OBJECT_NODE_TAG
	case CameraNode:
		tag = chunk.CAMERA_NODE_TAG
	case TargetNode:
		tag = chunk.TARGET_NODE_TAG
	case LightNode:
		tag = chunk.LIGHT_NODE_TAG
		if spot {
			tag = chunk.SPOTLIGHT_NODE_TAG
		}
	case SpotNode:
		tag = chunk.L_TARGET_NODE_TAG
	}
	return chunk.Write(w, tag, func() error {
		chunk.WriteUint16(w, chunk.NODE_ID, n.ID)
		name := stream.Truncate(n.Name, 64)
		chunk.WriteHeader(w, chunk.NODE_HDR, uint32(chunk.HeaderSize+len(name)+1+6))
		w.WriteString(name, 64)
		w.WriteUint16(n.Flags1)
		w.WriteUint16(n.Flags2)
		w.WriteUint16(parent)
		return n.writeData(w, spot)
	})
}

func (n *Node) writeData(w *stream.Writer, spot bool) error {
	type tagged struct {
		id uint16
		t  trackWriter
	}
	var tracks []tagged
	switch d := n.Data.(type) {
	case *AmbientData:
		tracks = []tagged{{chunk.COL_TRACK_TAG, &d.Color}}
	case *ObjectData:
		chunk.WriteVec3(w, chunk.PIVOT, d.Pivot)
		if d.Instance != "" {
			chunk.WriteString(w, chunk.INSTANCE_NAME, d.Instance, 64)
		}
		if !d.BBoxMin.IsZero() || !d.BBoxMax.IsZero() {
			chunk.WriteHeader(w, chunk.BOUNDBOX, 30)
			w.WriteVec3(d.BBoxMin)
			w.WriteVec3(d.BBoxMax)
		}
		tracks = []tagged{
			{chunk.POS_TRACK_TAG, &d.Pos},
			{chunk.ROT_TRACK_TAG, &d.Rot},
			{chunk.SCL_TRACK_TAG, &d.Scl},
		}
		if len(d.Morph.Keys) > 0 {
			tracks = append(tracks, tagged{chunk.MORPH_TRACK_TAG, &d.Morph})
		}
		if len(d.Hide.Keys) > 0 {
			tracks = append(tracks, tagged{chunk.HIDE_TRACK_TAG, &d.Hide})
		}
	case *CameraData:
		tracks = []tagged{
			{chunk.POS_TRACK_TAG, &d.Pos},
			{chunk.FOV_TRACK_TAG, &d.FOV},
			{chunk.ROLL_TRACK_TAG, &d.Roll},
		}
	case *TargetData:
		tracks = []tagged{{chunk.POS_TRACK_TAG, &d.Pos}}
	case *LightData:
		tracks = []tagged{
			{chunk.POS_TRACK_TAG, &d.Pos},
			{chunk.COL_TRACK_TAG, &d.Color},
		}
		if spot {
			tracks = append(tracks,
				tagged{chunk.HOT_TRACK_TAG, &d.Hotspot},
				tagged{chunk.FALL_TRACK_TAG, &d.Falloff},
				tagged{chunk.ROLL_TRACK_TAG, &d.Roll},
			)
		}
	case *SpotData:
		tracks = []tagged{{chunk.POS_TRACK_TAG, &d.Pos}}
	}
	for _, t := range tracks {
		if err := writeTrack(w, t.id, t.t); err != nil {
			return err
		}
	}
	if d, ok := n.Data.(*ObjectData); ok && qmath.Significant(d.MorphSmooth) {
		chunk.WriteFloat(w, chunk.MORPH_SMOOTH, d.MorphSmooth)
	}
	return w.Err()
}

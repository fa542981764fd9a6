// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"go3ds/chunk"
	"go3ds/model"
)

type meshInfo struct {
	Name   string `json:"name" yaml:"name"`
	Points int    `json:"points" yaml:"points"`
	Faces  int    `json:"faces" yaml:"faces"`
	Hidden bool   `json:"hidden,omitempty" yaml:"hidden,omitempty"`
}

type nodeInfo struct {
	Name     string     `json:"name" yaml:"name"`
	Kind     string     `json:"kind" yaml:"kind"`
	ID       uint16     `json:"id" yaml:"id"`
	Children []nodeInfo `json:"children,omitempty" yaml:"children,omitempty"`
}

type sceneInfo struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	MeshVersion  uint32       `json:"mesh_version" yaml:"mesh_version"`
	KeyfRevision uint16       `json:"keyf_revision" yaml:"keyf_revision"`
	MasterScale  float32      `json:"master_scale" yaml:"master_scale"`
	Frames       int32        `json:"frames" yaml:"frames"`
	Segment      [2]int32     `json:"segment" yaml:"segment,flow"`
	CurrentFrame int32        `json:"current_frame" yaml:"current_frame"`
	Bounds       [][3]float32 `json:"bounds,omitempty" yaml:"bounds,omitempty,flow"`
	Materials    []string     `json:"materials" yaml:"materials"`
	Meshes       []meshInfo   `json:"meshes" yaml:"meshes"`
	Cameras      []string     `json:"cameras" yaml:"cameras"`
	Lights       []string     `json:"lights" yaml:"lights"`
	Nodes        []nodeInfo   `json:"nodes" yaml:"nodes"`
}

func describe(f *model.File) sceneInfo {
	s := sceneInfo{
		ID:           f.ID.String(),
		Name:         f.Name,
		MeshVersion:  f.MeshVersion,
		KeyfRevision: f.KeyfRevision,
		MasterScale:  f.MasterScale,
		Frames:       f.Frames,
		Segment:      [2]int32{f.SegmentFrom, f.SegmentTo},
		CurrentFrame: f.CurrentFrame,
	}
	if min, max, ok := f.BoundingBox(); ok {
		s.Bounds = [][3]float32{min.Array(), max.Array()}
	}
	for _, m := range f.Materials {
		s.Materials = append(s.Materials, m.Name)
	}
	for _, m := range f.Meshes {
		s.Meshes = append(s.Meshes, meshInfo{
			Name:   m.Name,
			Points: len(m.Points),
			Faces:  len(m.Faces),
			Hidden: m.Flags&chunk.OBJECT_HIDDEN != 0,
		})
	}
	for _, c := range f.Cameras {
		s.Cameras = append(s.Cameras, c.Name)
	}
	for _, l := range f.Lights {
		s.Lights = append(s.Lights, l.Name)
	}
	g := &f.Nodes
	var build func(i int) nodeInfo
	build = func(i int) nodeInfo {
		n := g.Nodes[i]
		ni := nodeInfo{Name: n.Name, Kind: n.Kind().String(), ID: n.ID}
		for _, c := range g.Children(i) {
			ni.Children = append(ni.Children, build(c))
		}
		return ni
	}
	for _, r := range g.Roots() {
		s.Nodes = append(s.Nodes, build(r))
	}
	return s
}

func (s sceneInfo) text(w io.Writer) error {
	fmt.Fprintf(w, "scene %s (%s)\n", s.Name, s.ID)
	fmt.Fprintf(w, "mesh version %d, keyframer revision %d, master scale %g\n", s.MeshVersion, s.KeyfRevision, s.MasterScale)
	fmt.Fprintf(w, "frames %d, segment %d..%d, current %d\n", s.Frames, s.Segment[0], s.Segment[1], s.CurrentFrame)
	if len(s.Bounds) == 2 {
		fmt.Fprintf(w, "bounds %v %v\n", s.Bounds[0], s.Bounds[1])
	}
	fmt.Fprintf(w, "materials (%d): %s\n", len(s.Materials), strings.Join(s.Materials, ", "))
	fmt.Fprintf(w, "meshes (%d):\n", len(s.Meshes))
	for _, m := range s.Meshes {
		fmt.Fprintf(w, "  %s: %d points, %d faces\n", m.Name, m.Points, m.Faces)
	}
	fmt.Fprintf(w, "cameras (%d): %s\n", len(s.Cameras), strings.Join(s.Cameras, ", "))
	fmt.Fprintf(w, "lights (%d): %s\n", len(s.Lights), strings.Join(s.Lights, ", "))
	fmt.Fprintln(w, "nodes:")
	var dump func(n nodeInfo, depth int)
	dump = func(n nodeInfo, depth int) {
		fmt.Fprintf(w, "%s%s %q id %d\n", strings.Repeat("  ", depth+1), n.Kind, n.Name, n.ID)
		for _, c := range n.Children {
			dump(c, depth+1)
		}
	}
	for _, n := range s.Nodes {
		dump(n, 0)
	}
	return nil
}

func infoCmd() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Print the contents of a scene file",
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{outputFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyOutputConfig(cmd, cfg)
			if cmd.Args().Len() != 1 {
				return cli.Exit("info needs exactly one file", 2)
			}
			f, err := loadScene(cmd.Args().First())
			if err != nil {
				return err
			}
			s := describe(f)
			return report(os.Stdout, s, s.text)
		},
	}
}

// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	qmath "go3ds/math"
	"go3ds/model"
	"go3ds/node"
)

type nodeState struct {
	Name     string        `json:"name" yaml:"name"`
	Kind     string        `json:"kind" yaml:"kind"`
	World    [4][4]float32 `json:"world" yaml:"world,flow"`
	Position [3]float32    `json:"position" yaml:"position,flow"`
	Rotation [4]float32    `json:"rotation,omitempty" yaml:"rotation,omitempty,flow"`
	Axis     [3]float32    `json:"axis,omitempty" yaml:"axis,omitempty,flow"`
	Angle    float32       `json:"angle,omitempty" yaml:"angle,omitempty"`
	Scale    [3]float32    `json:"scale,omitempty" yaml:"scale,omitempty,flow"`
	Color    [3]float32    `json:"color,omitempty" yaml:"color,omitempty,flow"`
	FOV      float32       `json:"fov,omitempty" yaml:"fov,omitempty"`
	Roll     float32       `json:"roll,omitempty" yaml:"roll,omitempty"`
	Hotspot  float32       `json:"hotspot,omitempty" yaml:"hotspot,omitempty"`
	Falloff  float32       `json:"falloff,omitempty" yaml:"falloff,omitempty"`
	Hidden   bool          `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Morph    string        `json:"morph,omitempty" yaml:"morph,omitempty"`
}

type evalReport struct {
	Frame float32     `json:"frame" yaml:"frame"`
	Nodes []nodeState `json:"nodes" yaml:"nodes"`
}

func newNodeState(n *node.Node, s node.State) nodeState {
	ns := nodeState{
		Name:     n.Name,
		Kind:     s.Kind.String(),
		World:    s.World,
		Position: s.Position.Array(),
		FOV:      s.FOV,
		Roll:     s.Roll,
		Hotspot:  s.Hotspot,
		Falloff:  s.Falloff,
		Hidden:   s.Hidden,
		Morph:    s.Morph,
	}
	switch s.Kind {
	case node.ObjectNode:
		ns.Rotation = [4]float32{s.Rotation.X, s.Rotation.Y, s.Rotation.Z, s.Rotation.W}
		ns.Scale = s.Scale.Array()
		axis, angle := s.Rotation.AxisAngleOf()
		ns.Axis = axis.Array()
		ns.Angle = qmath.AngleMod(qmath.Deg(angle))
	case node.AmbientNode, node.LightNode:
		ns.Color = s.Color.Array()
	}
	return ns
}

// evaluate samples every node, or only the nodes called name, at frame t.
func evaluate(f *model.File, t float32, name string) (evalReport, error) {
	r := evalReport{Frame: t}
	for i, n := range f.Nodes.Nodes {
		if name != "" && n.Name != name {
			continue
		}
		r.Nodes = append(r.Nodes, newNodeState(n, f.Nodes.Evaluate(i, t)))
	}
	if name != "" && len(r.Nodes) == 0 {
		return r, errors.Errorf("no node %q", name)
	}
	return r, nil
}

func (r evalReport) text(w io.Writer) error {
	fmt.Fprintf(w, "frame %g\n", r.Frame)
	for _, n := range r.Nodes {
		fmt.Fprintf(w, "%s %q\n", n.Kind, n.Name)
		fmt.Fprintf(w, "  position %v\n", n.Position)
		for _, row := range n.World {
			fmt.Fprintf(w, "  | %10.4f %10.4f %10.4f %10.4f |\n", row[0], row[1], row[2], row[3])
		}
		switch n.Kind {
		case "object":
			fmt.Fprintf(w, "  rotation %g deg around %v scale %v hidden %t", n.Angle, n.Axis, n.Scale, n.Hidden)
			if n.Morph != "" {
				fmt.Fprintf(w, " morph %q", n.Morph)
			}
			fmt.Fprintln(w)
		case "camera":
			fmt.Fprintf(w, "  fov %g roll %g\n", n.FOV, n.Roll)
		case "light":
			fmt.Fprintf(w, "  color %v hotspot %g falloff %g roll %g\n", n.Color, n.Hotspot, n.Falloff, n.Roll)
		case "ambient":
			fmt.Fprintf(w, "  color %v\n", n.Color)
		}
	}
	return nil
}

func evalCmd() *cli.Command {
	var (
		frame    float64
		nodeName string
	)
	return &cli.Command{
		Name:      "eval",
		Usage:     "Evaluate the keyframer nodes at a frame",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:        "frame",
				Aliases:     []string{"f"},
				Usage:       "frame to evaluate",
				Destination: &frame,
			},
			&cli.StringFlag{
				Name:        "node",
				Aliases:     []string{"n"},
				Usage:       "only print nodes with this name",
				Destination: &nodeName,
			},
			outputFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyOutputConfig(cmd, cfg)
			if cmd.Args().Len() != 1 {
				return cli.Exit("eval needs exactly one file", 2)
			}
			f, err := loadScene(cmd.Args().First())
			if err != nil {
				return err
			}
			r, err := evaluate(f, float32(frame), nodeName)
			if err != nil {
				return err
			}
			return report(os.Stdout, r, r.text)
		},
	}
}

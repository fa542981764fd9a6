// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"go3ds/conlog"
	"go3ds/snapshot"
)

func snapshotCmd() *cli.Command {
	var from, to, step float64
	return &cli.Command{
		Name:      "snapshot",
		Usage:     "Evaluate a frame range and store it as protobuf",
		ArgsUsage: "<file> <out.pb>",
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:        "from",
				Usage:       "first frame, defaults to the segment start",
				Destination: &from,
			},
			&cli.FloatFlag{
				Name:        "to",
				Usage:       "last frame, defaults to the segment end",
				Destination: &to,
			},
			&cli.FloatFlag{
				Name:        "step",
				Usage:       "frame step",
				Value:       1,
				Destination: &step,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cfg.FrameStep != nil && !cmd.IsSet("step") {
				step = *cfg.FrameStep
			}
			if cmd.Args().Len() != 2 {
				return cli.Exit("snapshot needs a scene and an output file", 2)
			}
			f, err := loadScene(cmd.Args().Get(0))
			if err != nil {
				return err
			}
			if !cmd.IsSet("from") {
				from = float64(f.SegmentFrom)
			}
			if !cmd.IsSet("to") {
				to = float64(f.SegmentTo)
			}
			s, err := snapshot.Take(f, float32(from), float32(to), float32(step))
			if err != nil {
				return err
			}
			if err := s.Save(cmd.Args().Get(1)); err != nil {
				return err
			}
			conlog.Info("snapshot written", "frames", len(s.Frames), "scene", s.Scene)
			return nil
		},
	}
}

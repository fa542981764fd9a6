// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"go3ds/conlog"
)

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Load a scene and write it back as a M3DMAGIC file",
		ArgsUsage: "<in> <out>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return cli.Exit("convert needs an input and an output file", 2)
			}
			in, out := cmd.Args().Get(0), cmd.Args().Get(1)
			f, err := loadScene(in)
			if err != nil {
				return err
			}
			w, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := f.Save(w); err != nil {
				w.Close()
				return errors.Wrap(err, out)
			}
			if err := w.Close(); err != nil {
				return err
			}
			conlog.Info("converted", "in", in, "out", out, "scene", f.ID)
			return nil
		},
	}
}

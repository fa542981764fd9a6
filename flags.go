// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"go3ds/conlog"
	"go3ds/model"
	"go3ds/pack"
)

var (
	pakPath   string
	logLevel  string
	logFormat string
	output    string
	cfg       Config
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "pak",
			Usage:       "read input files from entries of this PACK archive",
			Destination: &pakPath,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "warn",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (text, json)",
			Value:       "text",
			Destination: &logFormat,
		},
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:        "output",
		Aliases:     []string{"o"},
		Usage:       "output format (text, json, yaml)",
		Value:       "text",
		Destination: &output,
	}
}

func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg = LoadConfig()
	applyGlobalConfig(cmd, cfg)
	conlog.SetLogger(conlog.New(os.Stderr, conlog.ParseLevel(logLevel), logFormat))
	return ctx, nil
}

// loadScene reads name from disk or, with --pak, from the archive.
func loadScene(name string) (*model.File, error) {
	var r io.ReadSeeker
	if pakPath != "" {
		p, err := pack.NewPackReader(pakPath)
		if err != nil {
			return nil, err
		}
		defer p.Close()
		sr, err := p.Open(name)
		if err != nil {
			return nil, err
		}
		r = sr
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	m, err := model.Load(r)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return m, nil
}

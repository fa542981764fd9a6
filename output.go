// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"io"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// report writes v in the selected output format. text renders the plain
// text form.
func report(w io.Writer, v interface{}, text func(io.Writer) error) error {
	switch output {
	case "", "text":
		return text(w)
	case "json":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding json")
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return enc.Close()
	}
	return errors.Errorf("unknown output format %q", output)
}

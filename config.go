// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"go3ds/conlog"
)

// Config is the optional ~/.config/go3ds/config.yaml. Empty strings and nil
// pointers mean "not set".
type Config struct {
	LogLevel  string   `yaml:"log_level"`
	LogFormat string   `yaml:"log_format"`
	Output    string   `yaml:"output"`
	FrameStep *float64 `yaml:"frame_step"`
	Pak       string   `yaml:"pak"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "go3ds", "config.yaml")
}

// applyGlobalConfig applies config file values to the global flags that
// were not set on the command line.
func applyGlobalConfig(c *cli.Command, cfg Config) {
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
	if cfg.Pak != "" && !c.IsSet("pak") {
		pakPath = cfg.Pak
	}
}

// applyOutputConfig is called by the commands with an --output flag.
func applyOutputConfig(c *cli.Command, cfg Config) {
	if cfg.Output != "" && !c.IsSet("output") {
		output = cfg.Output
	}
}

// LoadConfig reads the config file. A missing file gives a zero Config.
func LoadConfig() Config {
	return loadConfigFile(configPath())
}

func loadConfigFile(path string) Config {
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		conlog.Warn("ignoring config file", "path", path, "err", err)
		return Config{}
	}
	return cfg
}

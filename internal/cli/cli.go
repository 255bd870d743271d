/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cli holds the pieces shared by the stepex commands.
package cli

import (
	"io"
	"os"

	"github.com/spf13/viper"

	"bennypowers.dev/stepex/config"
	"bennypowers.dev/stepex/fs"
	"bennypowers.dev/stepex/internal/logger"
)

// Load reads the config under the --dir directory and builds its engine.
// The --locale and --backend flags, or their STEPEX_ environment variables,
// override the file.
func Load(filesystem fs.FileSystem) (*config.Config, *config.Engine, error) {
	cfg := config.LoadOrDefault(filesystem, Dir())
	if locale := viper.GetString("locale"); locale != "" {
		cfg.Locale = locale
	}
	if backend := viper.GetString("backend"); backend != "" {
		cfg.Backend = backend
	}
	engine, err := cfg.NewEngine()
	if err != nil {
		return nil, nil, err
	}
	return cfg, engine, nil
}

// Dir returns the project directory, "." by default.
func Dir() string {
	if dir := viper.GetString("dir"); dir != "" {
		return dir
	}
	return "."
}

// ConfigureLogging applies --quiet and --verbose.
func ConfigureLogging() {
	logger.SetVerbose(viper.GetBool("verbose"))
	if viper.GetBool("quiet") {
		logger.SetOutput(io.Discard)
		return
	}
	logger.SetOutput(os.Stderr)
}

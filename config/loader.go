/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	stepfs "bennypowers.dev/stepex/fs"
	"bennypowers.dev/stepex/internal/logger"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "stepex"

// ConfigDir is the directory holding the config file.
const ConfigDir = ".config"

// configExtensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load reads .config/stepex.{yaml,yml,json} under rootDir. It returns nil
// and no error when there is no config file.
func Load(filesystem stepfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		path := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(path) {
			continue
		}
		data, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, err
		}
		cfg := Default()
		if err := decode(data, ext, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("config: loaded %s", path)
		return cfg, nil
	}
	return nil, nil
}

// LoadOrDefault is Load, with read or decode failures logged and the
// default config returned in their place.
func LoadOrDefault(filesystem stepfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		logger.Warn("ignoring config: %v", err)
		return Default()
	}
	if cfg == nil {
		return Default()
	}
	return cfg
}

// decode decodes YAML or, for ext ".json", JSON with comments and trailing
// commas.
func decode(data []byte, ext string, v any) error {
	if ext == ".json" {
		return json.Unmarshal(jsonc.ToJSON(data), v)
	}
	return yaml.Unmarshal(data, v)
}

// ExpandFiles resolves Files against rootDir. Patterns without glob
// metacharacters are returned as given, whether or not they exist. Matches
// of '!' patterns are removed. The result is sorted and free of duplicates.
func (c *Config) ExpandFiles(filesystem stepfs.FileSystem, rootDir string) ([]string, error) {
	var include, exclude []string
	for _, p := range c.Files {
		negated := strings.HasPrefix(p, "!")
		p = strings.TrimPrefix(p, "!")
		if !filepath.IsAbs(p) {
			p = filepath.Join(rootDir, p)
		}
		p = filepath.ToSlash(p)
		if negated {
			exclude = append(exclude, p)
			continue
		}
		matches, err := glob(filesystem, p)
		if err != nil {
			return nil, err
		}
		include = append(include, matches...)
	}

	result := slices.DeleteFunc(include, func(path string) bool {
		return slices.ContainsFunc(exclude, func(pattern string) bool {
			ok, _ := doublestar.Match(pattern, path)
			return ok
		})
	})
	slices.Sort(result)
	return slices.Compact(result), nil
}

func glob(filesystem stepfs.FileSystem, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid file pattern %q", pattern)
	}
	base, rest := doublestar.SplitPattern(pattern)
	if rest == "" || !strings.ContainsAny(rest, "*?[{") {
		return []string{pattern}, nil
	}
	if !filesystem.Exists(base) {
		logger.Debug("config: %s does not exist, skipping %s", base, pattern)
		return nil, nil
	}

	var matches []string
	err := fs.WalkDir(filesystem, base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel := path
		if base != "." {
			rel = strings.TrimPrefix(strings.TrimPrefix(path, base), "/")
		}
		if ok, _ := doublestar.Match(rest, rel); ok {
			matches = append(matches, path)
		}
		return nil
	})
	return matches, err
}

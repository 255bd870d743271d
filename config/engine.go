/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"bennypowers.dev/stepex/expression"
	"bennypowers.dev/stepex/generator"
	"bennypowers.dev/stepex/internal/logger"
	"bennypowers.dev/stepex/paramtype"
	"bennypowers.dev/stepex/pattern"
)

// Engine is the registry, back end, factory and generator a Config
// describes.
type Engine struct {
	Registry  *paramtype.Registry
	Backend   pattern.Backend
	Factory   *expression.Factory
	Generator *generator.Generator
}

// NewEngine assembles the engine. Back ends other than "re2" must have been
// linked in by importing their package.
func (c *Config) NewEngine() (*Engine, error) {
	backend, err := pattern.ByName(c.Backend)
	if err != nil {
		return nil, err
	}
	registry := paramtype.NewRegistry(c.Tag())
	if err := c.Register(registry); err != nil {
		return nil, err
	}
	logger.Debug("engine: backend %s, locale %s, %d custom parameter types",
		backend.Name(), c.Tag(), len(c.ParameterTypes))
	return &Engine{
		Registry:  registry,
		Backend:   backend,
		Factory:   expression.NewFactory(registry, backend),
		Generator: generator.New(registry, backend),
	}, nil
}

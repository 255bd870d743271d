/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config loads stepex project configuration and assembles the
// expression engine it describes.
package config

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/stepex/internal/logger"
	"bennypowers.dev/stepex/paramtype"
)

// Config is the contents of .config/stepex.{yaml,yml,json}.
type Config struct {
	// Locale is a BCP 47 tag selecting decimal and grouping symbols.
	Locale string `yaml:"locale" json:"locale"`

	// Backend names the pattern back end: "re2" or "backtrack".
	Backend string `yaml:"backend" json:"backend"`

	// Files are globs of step files checked by default. A leading '!'
	// excludes matches.
	Files []string `yaml:"files" json:"files"`

	// ParameterTypes are registered alongside the built-in types.
	ParameterTypes []ParameterTypeSpec `yaml:"parameterTypes" json:"parameterTypes"`
}

// ParameterTypeSpec declares a custom parameter type.
type ParameterTypeSpec struct {
	Name string `yaml:"name" json:"name"`

	// Regexps match the parameter. Regexp is shorthand for a single one.
	Regexp  string   `yaml:"regexp" json:"regexp"`
	Regexps []string `yaml:"regexps" json:"regexps"`

	// Kind is the Go type values convert to, e.g. "int64" or "bool".
	// Empty means string.
	Kind string `yaml:"kind" json:"kind"`

	// Enum lists literal alternatives. It replaces Regexps.
	Enum []string `yaml:"enum" json:"enum"`

	UseForSnippets      bool `yaml:"useForSnippets" json:"useForSnippets"`
	PreferForRegexMatch bool `yaml:"preferForRegexMatch" json:"preferForRegexMatch"`
	Weight              int  `yaml:"weight" json:"weight"`
}

// Kinds maps the names accepted in ParameterTypeSpec.Kind to Go types.
var Kinds = map[string]reflect.Type{
	"string":     reflect.TypeFor[string](),
	"bool":       reflect.TypeFor[bool](),
	"int":        reflect.TypeFor[int](),
	"int8":       reflect.TypeFor[int8](),
	"int16":      reflect.TypeFor[int16](),
	"int32":      reflect.TypeFor[int32](),
	"int64":      reflect.TypeFor[int64](),
	"uint":       reflect.TypeFor[uint](),
	"uint8":      reflect.TypeFor[uint8](),
	"uint16":     reflect.TypeFor[uint16](),
	"uint32":     reflect.TypeFor[uint32](),
	"uint64":     reflect.TypeFor[uint64](),
	"float32":    reflect.TypeFor[float32](),
	"float64":    reflect.TypeFor[float64](),
	"char":       reflect.TypeFor[paramtype.Char](),
	"bigint":     reflect.TypeFor[*big.Int](),
	"bigdecimal": reflect.TypeFor[*big.Float](),
}

// UnmarshalYAML accepts a bare string as a parameter type with the default
// word regexp.
func (s *ParameterTypeSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Name = node.Value
		return nil
	}
	type raw ParameterTypeSpec
	return node.Decode((*raw)(s))
}

// UnmarshalJSON accepts a bare string like UnmarshalYAML.
func (s *ParameterTypeSpec) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		s.Name = name
		return nil
	}
	type raw ParameterTypeSpec
	return json.Unmarshal(data, (*raw)(s))
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{Locale: "en"}
}

// Tag parses Locale, falling back to English.
func (c *Config) Tag() language.Tag {
	if c.Locale == "" {
		return language.English
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		logger.Warn("unknown locale %q, using en: %v", c.Locale, err)
		return language.English
	}
	return tag
}

// regexps returns the regexps in declaration order. Enum constants become
// one alternation, longest first.
func (s *ParameterTypeSpec) regexps() []string {
	if len(s.Enum) > 0 {
		return []string{paramtype.EnumRegexp(s.Enum)}
	}
	out := append([]string(nil), s.Regexps...)
	if s.Regexp != "" {
		out = append([]string{s.Regexp}, out...)
	}
	if len(out) == 0 {
		out = paramtype.WordRegexps
	}
	return out
}

func (s *ParameterTypeSpec) kind() reflect.Type {
	if s.Kind == "" {
		return Kinds["string"]
	}
	if t, ok := Kinds[s.Kind]; ok {
		return t
	}
	logger.Warn("parameter type {%s}: unknown kind %q, converting to string", s.Name, s.Kind)
	return Kinds["string"]
}

// ParameterType builds the parameter type. Values convert through the
// registry's default transformer.
func (s *ParameterTypeSpec) ParameterType(r *paramtype.Registry) *paramtype.ParameterType {
	typ := s.kind()
	return &paramtype.ParameterType{
		Name:    s.Name,
		Regexps: s.regexps(),
		Type:    typ,
		Transformer: func(args []*string) (any, error) {
			for _, a := range args {
				if a != nil {
					return r.Transform(a, typ)
				}
			}
			return r.Transform(nil, typ)
		},
		Weight:              s.Weight,
		UseForSnippets:      s.UseForSnippets,
		PreferForRegexMatch: s.PreferForRegexMatch,
	}
}

// Register defines every configured parameter type in r.
func (c *Config) Register(r *paramtype.Registry) error {
	for i := range c.ParameterTypes {
		spec := &c.ParameterTypes[i]
		if err := r.Define(spec.ParameterType(r)); err != nil {
			return fmt.Errorf("parameter type %d (%s): %w", i, spec.Name, err)
		}
	}
	return nil
}

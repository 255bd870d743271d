/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package types provides the types command for stepex.
package types

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/stepex/fs"
	"bennypowers.dev/stepex/internal/cli"
	"bennypowers.dev/stepex/paramtype"
)

// Cmd is the types cobra command.
var Cmd = &cobra.Command{
	Use:   "types",
	Short: "List registered parameter types",
	Long:  `List the built-in parameter types and those defined in .config/stepex.yaml.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("format", "table", "Output format: table, json")
	Cmd.Flags().Bool("snippets", false, "Only list types used for generating expressions")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	snippetsOnly, _ := cmd.Flags().GetBool("snippets")

	_, engine, err := cli.Load(fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	types := filterTypes(engine.Registry.ParameterTypes(), snippetsOnly)

	switch format {
	case "json":
		return outputJSON(cmd.OutOrStdout(), types)
	default:
		outputTable(cmd.OutOrStdout(), types)
		return nil
	}
}

func filterTypes(types []*paramtype.ParameterType, snippetsOnly bool) []*paramtype.ParameterType {
	filtered := make([]*paramtype.ParameterType, 0, len(types))
	for _, p := range types {
		if snippetsOnly && !p.UseForSnippets {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func flags(p *paramtype.ParameterType) string {
	var out []string
	if p.PreferForRegexMatch {
		out = append(out, "preferential")
	}
	if p.UseForSnippets {
		out = append(out, "snippets")
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ",")
}

func outputTable(w io.Writer, types []*paramtype.ParameterType) {
	for _, p := range types {
		fmt.Fprintf(w, "%-16s %-12s %-22s %s\n", p.String(), p.TypeName(), flags(p), strings.Join(p.Regexps, " | "))
	}
}

func outputJSON(w io.Writer, types []*paramtype.ParameterType) error {
	type typeOutput struct {
		Name                string   `json:"name"`
		Type                string   `json:"type"`
		Regexps             []string `json:"regexps"`
		Weight              int      `json:"weight,omitempty"`
		UseForSnippets      bool     `json:"useForSnippets,omitempty"`
		PreferForRegexMatch bool     `json:"preferForRegexMatch,omitempty"`
	}

	output := make([]typeOutput, 0, len(types))
	for _, p := range types {
		output = append(output, typeOutput{
			Name:                p.Name,
			Type:                p.TypeName(),
			Regexps:             p.Regexps,
			Weight:              p.Weight,
			UseForSnippets:      p.UseForSnippets,
			PreferForRegexMatch: p.PreferForRegexMatch,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for stepex.
package generate

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/stepex/convert"
	"bennypowers.dev/stepex/fs"
	"bennypowers.dev/stepex/generator"
	"bennypowers.dev/stepex/internal/cli"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate <text>",
	Short: "Suggest step expressions for example text",
	Long: `Suggest step expressions matching example text, best first.

Output Formats:
  text      One expression per line (default)
  json      Expressions with parameter names and Go types
  vscode    VSCode snippets expanding to a step definition
  zed       Zed snippets
  textmate  TextMate snippets

Examples:
  stepex generate 'I have 42 cucumbers in my "basket"'
  stepex generate --format vscode --prefix given- 'I have 42 cucumbers'`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format: "+strings.Join(convert.ValidFormats(), ", "))
	Cmd.Flags().IntP("limit", "n", 0, fmt.Sprintf("Maximum number of expressions (0 for all, at most %d)", generator.MaxExpressions))
	Cmd.Flags().String("prefix", "", "Prefix for snippet triggers")
	Cmd.Flags().String("receiver", "s", "Variable step definitions are registered on, in snippets")
}

func run(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	limit, _ := cmd.Flags().GetInt("limit")
	prefix, _ := cmd.Flags().GetString("prefix")
	receiver, _ := cmd.Flags().GetString("receiver")

	format, err := convert.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	_, engine, err := cli.Load(fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	return generate(cmd.OutOrStdout(), engine.Generator, args[0], format, limit, convert.Options{
		Prefix:   prefix,
		Receiver: receiver,
	})
}

// generate writes at most limit expressions for text, or all of them when
// limit is not positive.
func generate(w io.Writer, gen *generator.Generator, text string, format convert.Format, limit int, opts convert.Options) error {
	exprs, err := gen.Generate(text)
	if err != nil {
		return err
	}
	if limit > 0 && len(exprs) > limit {
		exprs = exprs[:limit]
	}

	output, err := convert.FormatExpressions(exprs, format, opts)
	if err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	if len(output) > 0 && output[len(output)-1] != '\n' {
		output = append(output, '\n')
	}
	_, err = w.Write(output)
	return err
}

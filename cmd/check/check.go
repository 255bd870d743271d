/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package check provides the check command for stepex.
package check

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/stepex/fs"
	"bennypowers.dev/stepex/internal/cli"
	"bennypowers.dev/stepex/validator"
)

// Cmd is the check cobra command.
var Cmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check step definition files",
	Long: `Check step definition files: every expression must compile, no expression
may be defined twice, and every example must match its expression.

Without arguments the files listed in .config/stepex.yaml are checked.

Step files are YAML or JSON:

  steps:
    - expression: I have {int} cucumber(s)
      examples:
        - I have 3 cucumbers
        - text: I have 1 cucumber
          hints: [int64]`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	quiet := viper.GetBool("quiet")
	filesystem := fs.NewOSFileSystem()

	cfg, engine, err := cli.Load(filesystem)
	if err != nil {
		return err
	}

	files := args
	if len(files) == 0 {
		expanded, err := cfg.ExpandFiles(filesystem, cli.Dir())
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	return checkFiles(cmd, filesystem, validator.New(engine.Factory, engine.Generator), files, quiet)
}

func checkFiles(cmd *cobra.Command, filesystem fs.FileSystem, v *validator.Validator, files []string, quiet bool) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	var problems, failed int
	for _, file := range files {
		if !quiet {
			fmt.Fprintf(out, "Checking %s...\n", file)
		}
		errs, err := v.ValidateFile(filesystem, file)
		if err != nil {
			fmt.Fprintf(errOut, "Error reading %s: %v\n", file, err)
			failed++
			continue
		}
		for _, e := range errs {
			fmt.Fprintln(errOut, e.Error())
		}
		problems += len(errs)
		if len(errs) > 0 {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d problems in %d of %d files", problems, failed, len(files))
	}
	if !quiet {
		fmt.Fprintf(out, "All %d files are valid\n", len(files))
	}
	return nil
}

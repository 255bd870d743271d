/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for stepex.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/stepex/cmd/check"
	"bennypowers.dev/stepex/cmd/generate"
	"bennypowers.dev/stepex/cmd/match"
	"bennypowers.dev/stepex/cmd/types"
	"bennypowers.dev/stepex/cmd/version"
	"bennypowers.dev/stepex/internal/cli"
	_ "bennypowers.dev/stepex/pattern/backtrack"
)

var rootCmd = &cobra.Command{
	Use:   "stepex",
	Short: "Match, generate and check step expressions",
	Long: `stepex compiles step expressions such as "I have {int} cucumber(s)",
matches text against them, suggests expressions for example text and checks
step definition files.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.ConfigureLogging()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("dir", "C", ".", "Project directory holding .config/stepex.yaml")
	flags.String("locale", "", "Locale for number parsing, e.g. de or en-US")
	flags.String("backend", "", "Pattern back end: re2 or backtrack")
	flags.BoolP("quiet", "q", false, "Only output errors")
	flags.BoolP("verbose", "v", false, "Output debug information")

	for _, name := range []string{"dir", "locale", "backend", "quiet", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
	viper.SetEnvPrefix("STEPEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(match.Cmd)
	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(types.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

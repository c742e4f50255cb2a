// Package cmd provides the root command and CLI setup for heurun.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// verboseFlag raises the log level to debug when set.
var verboseFlag bool

const rootLongDescription = `Heurun is a benchmark harness for heuristic-contest solutions. It builds
your solver, runs it against a numbered set of input cases under a bounded
worker pool, scores each case with a visualizer or a combined tester, and
reports per-case scores plus the aggregate total. The output of the last
case is copied to the clipboard.

Case files live at <in_dir>/0000.txt, 0001.txt, ... and outputs are written
to <out_dir> under the same names. Configuration comes from heurun.yaml in
the working directory (see "heurun init"), HEURUN_* environment variables,
and flags.`

const runLongDescription = `Build the solver once, then run every selected case.

Cases are given as tokens: a single index ("7") or an inclusive range
("3-5"). Without arguments the "test.cases" config value is used; when that
is empty, cases are auto-detected from the input directory starting at 0.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heurun",
		Short: "Benchmark harness for heuristic-contest solutions",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func init() {
	configureRootFlags(rootCmd)
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

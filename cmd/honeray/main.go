// Package main provides the honeray binary: an interactive evaluator for
// Honeray's modulation criterion plus an exhaustive statistics sweep over
// the full modulation space.
package main

import (
	"github.com/spf13/cobra"

	"github.com/modaltheory/honeray/logging"
)

const Version = "0.1.0"

var (
	flagStartKey  string
	flagEndKey    string
	flagStartNote string
	flagEndNote   string
	flagJSON      bool
	flagVerbose   bool
	flagNoColor   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "honeray",
		Short: "Evaluate modulations against Honeray's criterion",
		Long: `honeray evaluates whether a modulation between two keys satisfies
Honeray's criterion, the gesture-theoretic rule for well-formed key
changes in traditional Chinese pentatonic and heptatonic modal practice.

Keys and notes are given as letter names (C, C#, D, ..., B). Inputs not
supplied as flags are prompted for interactively.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logging.SetLevel(logging.DebugLevel)
			}
			if flagNoColor {
				logging.DisableColors()
			}
		},
		RunE: runEvaluate,
	}

	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit results as JSON")

	rootCmd.Flags().StringVar(&flagStartKey, "start-key", "", "tonic letter of the old key")
	rootCmd.Flags().StringVar(&flagEndKey, "end-key", "", "tonic letter of the new key")
	rootCmd.Flags().StringVar(&flagStartNote, "start-note", "", "last note sounded in the old key")
	rootCmd.Flags().StringVar(&flagEndNote, "end-note", "", "first note sounded in the new key")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Sweep every representable modulation and report frequencies",
		RunE:  runStats,
	}
	rootCmd.AddCommand(statsCmd)

	if err := rootCmd.Execute(); err != nil {
		logging.Fatal(err, "command failed")
	}
}

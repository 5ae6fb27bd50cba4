// Package cmd defines the CLI commands for the ninjacore inspection tool.
//
// The tool is a thin consumer of the library: each command builds a sequence
// from its flags, runs one public operation, and prints the outcome. It
// exists for exploring validation and erasure behavior from a shell; the
// library itself performs no I/O.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/RyanMauldin/NinjaCore/settings"
)

// version is set at build time via -ldflags.
var version = "dev"

// NewRootCmd creates the root command for ninjacore.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ninjacore",
		Short: "Inspect range validation and secure-clear behavior",
		Long: `ninjacore inspects the NinjaCore bounds/erasure core from the shell.

Each subcommand runs one library operation — validate a skip/take window,
securely clear a range, or extract an encoded window — and prints the
outcome, including every validation error the operation would raise.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "path to a settings defaults file")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newClearCmd())
	rootCmd.AddCommand(newExtractCmd())

	return rootCmd
}

// newVersionCmd creates the version subcommand.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of ninjacore",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("ninjacore %s\n", version)
		},
	}
}

// loadStore builds the defaults store for one command invocation. When the
// --config flag names a settings file, its present keys are installed as the
// store's defaults; otherwise the store is empty and the built-in fallbacks
// apply. Commands always work against their own store so that a process-wide
// default never leaks between invocations in tests.
func loadStore(cmd *cobra.Command) (*settings.Store, error) {
	st := settings.NewStore()
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return st, nil
	}
	s, err := settings.LoadFile(path)
	if err != nil {
		return nil, err
	}
	settings.Apply(s, st)
	return st, nil
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

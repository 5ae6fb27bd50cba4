package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RyanMauldin/NinjaCore/bounds"
	"github.com/RyanMauldin/NinjaCore/sequence"
)

// newValidateCmd creates the validate subcommand.
func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a skip/take window against a sequence length",
		Long: `Validate a skip/take window against a sequence of the given length.

Flags left unset stay absent and receive the mode-dependent defaults, the
same as omitting the argument in library code.

Examples:
  ninjacore validate --length 10 --skip 6 --take 2 --mode array
  ninjacore validate --length 0 --skip 10 --take 10 --mode list
  ninjacore validate --length 10 --skip -1 --mode passthrough`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			length, _ := cmd.Flags().GetInt("length")
			opts, err := windowOpts(cmd)
			if err != nil {
				return err
			}
			return runValidate(cmd, length, opts)
		},
	}

	cmd.Flags().IntP("length", "l", 0, "sequence length to validate against")
	addWindowFlags(cmd)

	return cmd
}

// runValidate validates the window and reports the result.
func runValidate(cmd *cobra.Command, length int, opts []sequence.Option) error {
	res := sequence.ValidateRange[byte](sequence.Bytes(make([]byte, length)), opts...)

	if res.OK() {
		cmd.Printf("valid: skip=%d take=%d\n", res.Skip, res.Take)
		return nil
	}

	errOut := cmd.ErrOrStderr()
	_, _ = fmt.Fprintf(errOut, "invalid: skip=%d take=%d\n", res.Skip, res.Take)
	for _, p := range res.Errors {
		_, _ = fmt.Fprintf(errOut, "  - %s\n", p)
	}
	return fmt.Errorf("%d validation error(s)", len(res.Errors))
}

// addWindowFlags registers the flags shared by every windowed command.
func addWindowFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("skip", "s", 0, "window start offset (absent when unset)")
	cmd.Flags().IntP("take", "t", 0, "window element count (absent when unset)")
	cmd.Flags().StringP("mode", "m", "", "range mode: list, ninja, array, passthrough")
}

// windowOpts translates the shared flags into per-call options. Flags the
// user did not change are omitted entirely, preserving the absent state that
// drives mode-dependent defaulting.
func windowOpts(cmd *cobra.Command) ([]sequence.Option, error) {
	st, err := loadStore(cmd)
	if err != nil {
		return nil, err
	}
	opts := []sequence.Option{sequence.WithStore(st)}

	if cmd.Flags().Changed("skip") {
		n, _ := cmd.Flags().GetInt("skip")
		opts = append(opts, sequence.WithSkip(n))
	}
	if cmd.Flags().Changed("take") {
		n, _ := cmd.Flags().GetInt("take")
		opts = append(opts, sequence.WithTake(n))
	}
	if cmd.Flags().Changed("mode") {
		name, _ := cmd.Flags().GetString("mode")
		m, err := bounds.ParseMode(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sequence.WithMode(m))
	}
	return opts, nil
}

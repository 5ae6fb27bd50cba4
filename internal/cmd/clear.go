package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RyanMauldin/NinjaCore/sequence"
)

// newClearCmd creates the clear subcommand.
func newClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Securely clear a range of a hex-encoded buffer",
		Long: `Decode a hex string into a buffer, securely clear the requested window,
and print the resulting buffer as hex.

Examples:
  ninjacore clear --hex deadbeefcafe --skip 1 --take 2 --mode array
  ninjacore clear --hex deadbeef --skip 10 --take 10 --mode list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetString("hex")
			opts, err := windowOpts(cmd)
			if err != nil {
				return err
			}
			return runClear(cmd, raw, opts)
		},
	}

	cmd.Flags().String("hex", "", "hex-encoded buffer contents")
	addWindowFlags(cmd)

	return cmd
}

// runClear clears the window of the decoded buffer and prints the result.
func runClear(cmd *cobra.Command, raw string, opts []sequence.Option) error {
	buf, err := hex.DecodeString(raw)
	if err != nil {
		return fmt.Errorf("decoding --hex: %w", err)
	}

	cleared, err := sequence.SecureClearRange[byte](sequence.Bytes(buf), opts...)
	if err != nil {
		return err
	}
	if !cleared {
		return fmt.Errorf("buffer is read-only, refusing to clear")
	}

	cmd.Printf("%s\n", hex.EncodeToString(buf))
	return nil
}

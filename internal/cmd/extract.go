package cmd

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/RyanMauldin/NinjaCore/sequence"
	"github.com/RyanMauldin/NinjaCore/settings"
	"github.com/RyanMauldin/NinjaCore/wipe"
)

// newExtractCmd creates the extract subcommand.
func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract a character window as encoded bytes",
		Long: `Encode a window of characters through a text encoding and print the
resulting bytes as hex.

With --secret the text is read from the terminal without echo instead of
from --text, and the input buffer is always erased after use.

Examples:
  ninjacore extract --text "pässword" --encoding iso-8859-1 --take 4
  ninjacore extract --secret --erase --mode array`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _ := cmd.Flags().GetString("text")
			secret, _ := cmd.Flags().GetBool("secret")
			opts, err := windowOpts(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("encoding") {
				name, _ := cmd.Flags().GetString("encoding")
				enc, err := settings.LookupEncoding(name)
				if err != nil {
					return err
				}
				opts = append(opts, sequence.WithEncoding(enc))
			}
			if cmd.Flags().Changed("erase") {
				erase, _ := cmd.Flags().GetBool("erase")
				opts = append(opts, sequence.WithErase(erase))
			}
			return runExtract(cmd, text, secret, opts)
		},
	}

	cmd.Flags().String("text", "", "characters to extract from")
	cmd.Flags().StringP("encoding", "e", "", "text encoding name (default utf-8)")
	cmd.Flags().Bool("erase", false, "erase the input buffer after use")
	cmd.Flags().Bool("secret", false, "read the text from the terminal without echo")
	addWindowFlags(cmd)

	return cmd
}

// runExtract encodes the character window and prints the bytes as hex.
func runExtract(cmd *cobra.Command, text string, secret bool, opts []sequence.Option) error {
	var chars []rune
	if secret {
		input, err := readSecret(cmd)
		if err != nil {
			return err
		}
		chars = []rune(string(input))
		wipe.Zero(input)
		// Secret input is always erased, regardless of flags or defaults.
		opts = append(opts, sequence.WithErase(true))
	} else {
		chars = []rune(text)
	}

	out, err := sequence.ExtractEncodedBytes(sequence.Chars(chars), opts...)
	if err != nil {
		return err
	}

	cmd.Printf("%s\n", hex.EncodeToString(out))
	return nil
}

// readSecret reads a line of input without echo when stdin is a terminal,
// and falls back to a plain line read otherwise so the command stays usable
// in pipes and tests.
func readSecret(cmd *cobra.Command) ([]byte, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Enter text: ")
			input, err := term.ReadPassword(fd)
			_, _ = fmt.Fprintln(cmd.ErrOrStderr())
			if err != nil {
				return nil, fmt.Errorf("reading input: %w", err)
			}
			return input, nil
		}
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

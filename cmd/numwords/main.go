// Command numwords converts between numbers and English words without
// starting the service:
//
//	numwords 1234
//	numwords -w one thousand two hundred and thirty four
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"numconv/internal/domain/service/numword"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var words bool

	command := &cobra.Command{
		Use:           "numwords [-w] <input...>",
		Short:         "Convert a number to English words, or words to a number with -w",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")

			result, err := convert(input, words)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)

			return err //nolint:wrapcheck
		},
	}

	command.Flags().BoolVarP(&words, "words", "w", false, "convert words to a number")

	return command
}

func convert(input string, words bool) (string, error) {
	if words {
		n, err := numword.ToNumber(input)
		if err != nil {
			return "", fmt.Errorf("numword.ToNumber: %w", err)
		}

		return fmt.Sprint(n), nil
	}

	n, err := numword.ParseNumber(input)
	if err != nil {
		return "", fmt.Errorf("numword.ParseNumber: %w", err)
	}

	result, err := numword.ToWords(n)
	if err != nil {
		return "", fmt.Errorf("numword.ToWords: %w", err)
	}

	return result, nil
}

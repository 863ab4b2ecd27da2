// Command advent runs Advent of Code solutions: one registered function per
// challenge part, fed the raw input text from a file or stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "advent/internal/days"
	"advent/internal/solve"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "advent:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "advent",
		Short:         "Daily puzzle solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(runCmd(), listCmd())
	return root
}

func runCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "run <solution> [input-file]",
		Short: "Run one solution over an input file (or stdin)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			fn, ok := solve.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown solution %q (try 'advent list')", name)
			}

			input, err := readInput(args[1:])
			if err != nil {
				return err
			}

			var logger *zap.Logger
			if verbose {
				if logger, err = zap.NewDevelopment(); err != nil {
					return err
				}
				defer logger.Sync()
				logger.Info("running solution",
					zap.String("solution", name),
					zap.String("input", humanize.Bytes(uint64(len(input)))))
			}

			start := time.Now()
			answer, err := fn(input)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if verbose {
				logger.Info("solved",
					zap.String("solution", name),
					zap.Duration("elapsed", time.Since(start)))
			}

			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log input size and timing")
	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered solutions in day order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range solve.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}

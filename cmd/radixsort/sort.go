package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/katalvlaran/lvlsort/radix"
	"github.com/spf13/cobra"
)

func newSortCmd() *cobra.Command {
	var (
		base    int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "sort [NUMBERS...]",
		Short: "Sorts integers given as arguments or on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, ",")
			if len(args) == 0 {
				in, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %v", err)
				}
				text = string(in)
			}

			seq, err := parseInts(text)
			if err != nil {
				return err
			}

			opts := []radix.Option{radix.WithRadix(base)}
			if verbose {
				logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags|log.Lshortfile)
				logger.Printf("sorting %d values with radix %d", len(seq), base)
				opts = append(opts, radix.WithOnPass(func(pass int, exp uint64, cur []int64) error {
					logger.Printf("pass %d exp=%d: %s", pass, exp, joinInts(cur))
					return nil
				}))
			}

			sorted, err := radix.Sort(seq, opts...)
			if err != nil {
				return fmt.Errorf("sorting: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), joinInts(sorted))
			return err
		},
	}

	cmd.Flags().IntVarP(&base, "radix", "r", radix.DefaultRadix, "number base used for digit passes (≥ 2)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every pass to stderr")

	return cmd
}

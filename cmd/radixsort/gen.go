package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlsort/builder"
	"github.com/spf13/cobra"
)

func newGenCmd() *cobra.Command {
	var (
		seed   int64
		lo, hi int64
		period int
	)

	cmd := &cobra.Command{
		Use:   "gen KIND N",
		Short: "Generates N integers of the given kind (" + strings.Join(builder.Kinds(), ", ") + ")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := builder.ParseKind(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parsing length %q: %v", args[1], err)
			}
			if period < 1 {
				return fmt.Errorf("--period must be ≥ 1, got %d", period)
			}

			seq, err := builder.Build(kind, n,
				builder.WithSeed(seed),
				builder.WithRange(lo, hi),
				builder.WithPeriod(period),
			)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), joinInts(seq))
			return err
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", builder.DefaultSeed, "RNG seed")
	cmd.Flags().Int64Var(&lo, "min", builder.DefaultMin, "smallest value")
	cmd.Flags().Int64Var(&hi, "max", builder.DefaultMax, "largest value")
	cmd.Flags().IntVar(&period, "period", builder.DefaultPeriod, "ramp length for sawtooth")

	return cmd
}

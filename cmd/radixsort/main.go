// Command radixsort sorts comma-separated integers with the LSD radix sort
// and generates test sequences to feed it.
//
//	radixsort sort 55,1,4,23,53,39,42,49,12,40,74,72
//	radixsort gen random 20 --seed 7 --min -50 --max 50 | radixsort sort --radix 2 --verbose
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "radixsort [command]",
		Short:        "LSD radix sort for comma-separated integers",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newSortCmd())
	rootCmd.AddCommand(newGenCmd())

	return rootCmd
}

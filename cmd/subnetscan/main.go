// Command subnetscan lists every subnet registered on a Bittensor
// network with validator/miner counts, emission and price.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/graytensor/subnetscan/internal/config"
)

func newRootCmd() *cobra.Command {
	list := listCmd()

	// Bare "subnetscan" runs the listing; "list" stays as the explicit
	// form. The root shares the list flags so both spellings accept them.
	root := &cobra.Command{
		Use:           "subnetscan",
		Short:         "List Bittensor subnets",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          list.RunE,
	}
	root.Flags().AddFlagSet(list.Flags())
	root.PersistentFlags().String("config", "", "Config file path (optional, built-in defaults otherwise)")

	cobra.EnablePrefixMatching = true
	root.AddCommand(
		list,
		versionCmd(),
	)

	return root
}

func main() {
	config.LoadEnv()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

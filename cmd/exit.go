package cmd

import (
	"os"

	"github.com/juanibiapina/zombie/internal/zombie"
	"github.com/spf13/cobra"
)

var exitCmd = &cobra.Command{
	Use:    zombie.ChildCommand,
	Hidden: true, // Hidden from help - only used as the generator's child
	Short:  "Exit immediately with status 0 (internal use only)",
	Args:   cobra.ArbitraryArgs,
	// Skip the root logger setup, the child does nothing at all
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(0)
	},
}

func init() {
	RootCmd.AddCommand(exitCmd)
}

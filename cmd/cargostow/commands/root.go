// Package commands implements the cargostow CLI's subcommands: one
// top-level cobra.Command per file, registered on RootCmd from init;
// command groups (waste, backup) register their own subcommands.
package commands

import (
	"github.com/spf13/cobra"
)

// RootCmd is the base cargostow command.
var RootCmd = &cobra.Command{
	Use:   "cargostow",
	Short: "3-D cargo stowage engine for space-habitat logistics",
	Long: `cargostow assigns cargo items to containers, positions, and
orientations so that nothing overlaps and everything fits, then answers
retrieval, rearrangement, and waste-management queries against the
resulting arrangement.`,
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(packCmd, searchCmd, rearrangeCmd, wasteCmd, backupCmd, serveCmd)
}

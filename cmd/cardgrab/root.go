// Package main provides the entry point for the cardgrab CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for cardgrab.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cardgrab",
		Short: "Crawler for the official One Piece card game catalog",
		Long: `cardgrab crawls the official One Piece card game catalog and keeps a
local SQLite database of card data together with downloaded card art.

Cards can be fetched individually by card number, per set, or for the
entire catalog. Repeated runs update existing records in place.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewFetchCmd())
	cmd.AddCommand(NewSetCmd())
	cmd.AddCommand(NewAllCmd())
	cmd.AddCommand(NewSetsCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "papertrade",
	Short: "Papertrade is an in-memory paper-trading account",
	Long: `Papertrade simulates a single trading account against a fixed price
table. It tracks cash, average-cost positions and a chronological trade
history, and serves the account over a small JSON API.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

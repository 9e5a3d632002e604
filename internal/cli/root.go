// Package cli wires the primebench commands.
package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "primebench",
	Short:   "Concurrency sweep benchmark for the prime-sum service",
	Version: version,
	Long: `Primebench drives concurrent HTTP requests against a prime-sum
computation service across a sweep of concurrency levels and reports
throughput, latency, and success-rate statistics for each level.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(sweepCmd)
	RootCmd.AddCommand(serveCmd)
}

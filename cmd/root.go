// Package cmd implements the tickertalk CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"
const logo = "📈"

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "tickertalk",
	Short: logo + " tickertalk — Conversational market data agent",
	Long:  logo + " tickertalk — a conversational agent that answers market questions with deterministic local tools",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(statusCmd)
}

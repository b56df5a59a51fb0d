// Package main provides the CLI entry point for the hearings orchestrator.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hmcts/sscs-hearings-go/cmd/sscs-hearings/commands"
)

var (
	version = "1.0.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sscs-hearings",
	Short: "SSCS hearings orchestrator",
	Long: `The SSCS hearings orchestrator manages the hearing lifecycle for
tribunal appeal cases.

It consumes hearing requests from the case-event queue, dispatches
create, update and cancel transitions to the hearing-scheduling
service, and reconciles the responses back onto the versioned case
record with bounded retries and compensating cancellation.`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.ProcessCmd)
	rootCmd.AddCommand(commands.CaseCmd)
}

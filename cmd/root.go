package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCmd is the base command that all subcommands are registered on.
var RootCmd = &cobra.Command{
	Use:   "base58",
	Short: "Base58(Check) encoding for ledger-style identifiers",
}

// Execute runs the root command and exits nonzero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Errorln(err)
		os.Exit(1)
	}
}

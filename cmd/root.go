package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stock-advisor",
	Short: "Educational stock advisor with a local analysis engine",
	Long:  "Runs a local REST API that scores a simulated stock catalog, generates predictions and turns them into profile-aware recommendations.",
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "langcheck",
	Short: "Validate language packages",
	Long:  `langcheck loads a language package directory and reports whether its definition is usable, as a JSON result record or a human summary.`,
}

func main() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

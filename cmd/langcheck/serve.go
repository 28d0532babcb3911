package main

import (
	"os"

	"github.com/spf13/cobra"

	langcheck "github.com/yaduha/go-langcheck"
	"github.com/yaduha/go-langcheck/pkg/worker"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Answer validation requests on stdin/stdout",
	Long:  `Reads newline-delimited JSON requests ({"id": ..., "repo_path": ...}) from stdin and writes one response per request to stdout. Exits when stdin closes.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	host := worker.NewHost(langcheck.NewLoader(), os.Stdin, os.Stdout)
	return host.Serve(cmd.Context())
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	langcheck "github.com/yaduha/go-langcheck"
	"github.com/yaduha/go-langcheck/pkg/validation"
)

var (
	validColor   = color.New(color.FgGreen, color.Bold)
	invalidColor = color.New(color.FgRed, color.Bold)
)

var validateCmd = &cobra.Command{
	Use:   "validate <package-dir>",
	Short: "Validate a language package directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

// runValidate executes one validation and prints the outcome. The process
// exits 0 for a valid package and 1 for an invalid one; only usage mistakes
// surface as command errors.
func runValidate(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	result := langcheck.Validate(cmd.Context(), args[0])

	switch format {
	case "json":
		data, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Println(string(data))
	case "pretty":
		printPretty(result)
	default:
		return fmt.Errorf("unknown format %q (want pretty or json)", format)
	}

	if !result.Valid {
		os.Exit(1)
	}
	return nil
}

func printPretty(result validation.Result) {
	if result.Valid {
		fmt.Printf("%s %s (%s)\n", validColor.Sprint("valid"), result.Name, result.Language)
		fmt.Printf("  sentence types: %s\n", strings.Join(result.SentenceTypes, ", "))
		return
	}
	fmt.Printf("%s [%s] %s\n", invalidColor.Sprint("invalid"), result.ErrorType, result.Error)
}

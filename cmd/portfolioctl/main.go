// Command portfolioctl inspects the portfolio catalog offline.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var catalogPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolioctl",
		Short:         "Inspect and validate the portfolio catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&catalogPath, "catalog", os.Getenv("CATALOG_PATH"), "catalog YAML file (defaults to the embedded catalog)")

	root.AddCommand(newPromptCmd(), newValidateCmd(), newListCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

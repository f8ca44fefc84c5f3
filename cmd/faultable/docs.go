package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Abraxas-365/faultable/docx"
)

var (
	gFlagFormat string
	gFlagOut    string
)

func init() {
	docsCmd.Flags().StringVar(&gFlagFormat, "format", "markdown", "output format, json or markdown")
	docsCmd.Flags().StringVar(&gFlagOut, "out", "docs/faults.md", "output file")
	rootCmd.AddCommand(docsCmd)
}

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "generate the catalog reference file",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch gFlagFormat {
		case "json":
			return docx.WriteJSON(gFlagOut)
		case "markdown":
			return docx.WriteMarkdown(gFlagOut)
		default:
			return fmt.Errorf("unknown format %q", gFlagFormat)
		}
	},
}

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Abraxas-365/faultable/docx"
)

var gFlagJSON bool

func init() {
	listCmd.Flags().BoolVar(&gFlagJSON, "json", false, "print the catalog as JSON")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list every registered fault kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		if gFlagJSON {
			data, err := docx.JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		for _, e := range docx.Catalog() {
			line := fmt.Sprintf("%d %s", e.Code, e.Name)
			if e.Code >= 500 {
				color.New(color.FgRed).Fprintln(cmd.OutOrStdout(), line)
			} else {
				color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), line)
			}
		}
		return nil
	},
}

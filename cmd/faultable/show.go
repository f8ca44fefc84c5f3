package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Abraxas-365/faultable/faultx"
)

var gFlagBody bool

func init() {
	showCmd.Flags().BoolVar(&gFlagBody, "body", false, "print the rendered HTML body")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <code>",
	Short: "show one fault kind with its headers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid status code %q", args[0])
		}

		kind, ok := faultx.Registered(code)
		if !ok {
			return &faultx.UnknownCodeError{Code: code}
		}

		f := kind.New()
		fmt.Fprintln(cmd.OutOrStdout(), f.Error())
		for _, h := range f.Headers() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", h.Name, h.Value)
		}
		if gFlagBody {
			fmt.Fprint(cmd.OutOrStdout(), "\n"+f.HTMLBody())
		}
		return nil
	},
}

package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/corpus-planner/internal/output"
	"github.com/spf13/cobra"
)

func (a *app) formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List report formats and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, output.TitleStyle.Render("Formats:"))
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(w, "  %s\n", name)
			}
			fmt.Fprintln(w, "  all (console, csv and detailed-csv files)")
			fmt.Fprintln(w, output.TitleStyle.Render("Aliases:"))
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(w, "  %s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
			fmt.Fprintf(w, "\nDefault: %s\n", strings.TrimSpace(a.settings.Format))
			return nil
		},
	}
}

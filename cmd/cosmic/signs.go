package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/HendryAvila/cosmic-cycles/internal/insight"
	"github.com/HendryAvila/cosmic-cycles/internal/resources"
)

var signsCmd = &cobra.Command{
	Use:   "signs",
	Short: "List the twelve sun signs",
	Args:  cobra.NoArgs,
	RunE:  runSigns,
}

var skyCmd = &cobra.Command{
	Use:   "sky",
	Short: "Show the sun sign season and moon phase of a date",
	Args:  cobra.NoArgs,
	RunE:  runSky,
}

func init() {
	signsCmd.Flags().Bool("json", false, "print JSON")
	skyCmd.Flags().String("date", "", "date (YYYY-MM-DD, default: today)")
	skyCmd.Flags().Bool("json", false, "print JSON")

	rootCmd.AddCommand(signsCmd)
	rootCmd.AddCommand(skyCmd)
}

func runSigns(cmd *cobra.Command, args []string) error {
	catalogue := resources.Catalogue()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(cmd.OutOrStdout(), catalogue)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SIGN\tDATES\tELEMENT\tQUALITY\tRULER\tSTRENGTHS")
	for _, e := range catalogue {
		fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s\t%s\t%s\n",
			e.Symbol, e.Sign, e.DateRange, e.Element, e.Quality, e.Ruler, strings.Join(e.Strengths, ", "))
	}
	return tw.Flush()
}

func runSky(cmd *cobra.Command, args []string) error {
	on, err := dateFlag(cmd, "date")
	if err != nil {
		return err
	}
	sky := insight.SkyOn(on)
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(cmd.OutOrStdout(), sky)
	}
	fmt.Fprint(cmd.OutOrStdout(), sky.Markdown())
	return nil
}

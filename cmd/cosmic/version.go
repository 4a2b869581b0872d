package main

import (
	"fmt"

	"github.com/spf13/cobra"

	cosmicserver "github.com/HendryAvila/cosmic-cycles/internal/server"
	"github.com/HendryAvila/cosmic-cycles/internal/updater"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("check", false, "also check GitHub for a newer release")
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "cosmic v%s\n", cosmicserver.Version)

	if check, _ := cmd.Flags().GetBool("check"); !check {
		return nil
	}
	result, err := updater.Check(cmd.Context(), cosmicserver.Version)
	if err != nil {
		return err
	}
	if result.UpdateAvailable {
		fmt.Fprintf(out, "Update available: v%s → v%s\n%s\n", result.CurrentVersion, result.LatestVersion, result.ReleaseURL)
	} else {
		fmt.Fprintln(out, "Already at the latest version.")
	}
	return nil
}

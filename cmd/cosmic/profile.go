package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/HendryAvila/cosmic-cycles/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage stored profiles",
	Long: `The profile command group creates, shows, imports, lists and deletes the
profiles daily insights are computed from. Profiles live in profiles.db under
the data directory.`,
}

func init() {
	profileCmd.PersistentFlags().String("profile", "", "profile name (default: configured profile)")

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update a profile",
		Long: `Creates the profile or updates it in place. Only the flags given are
changed, so "cosmic profile set --last-period 2024-02-01" records a new cycle
without touching the birth data.`,
		Args: cobra.NoArgs,
		RunE: runProfileSet,
	}
	setCmd.Flags().String("birth-date", "", "birth date (YYYY-MM-DD)")
	setCmd.Flags().String("birth-time", "", "birth time (HH:MM)")
	setCmd.Flags().String("birth-place", "", "birth place")
	setCmd.Flags().Float64("latitude", 0, "birth place latitude")
	setCmd.Flags().Float64("longitude", 0, "birth place longitude")
	setCmd.Flags().String("last-period", "", "first day of the most recent period (YYYY-MM-DD)")
	setCmd.Flags().Int("cycle-length", 0, "typical cycle length in days")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show a profile",
		Args:  cobra.NoArgs,
		RunE:  runProfileShow,
	}
	showCmd.Flags().Bool("json", false, "print JSON")
	showCmd.Flags().Bool("toml", false, "print TOML, suitable for \"profile import\"")

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace a profile with the contents of a TOML or JSON file",
		Long: `Replaces the profile with the one stored in file. Files ending in .json
are read in the JSON storage format; anything else is read as TOML.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runProfileImport,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored profiles",
		Args:  cobra.NoArgs,
		RunE:  runProfileList,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a profile",
		Args:  cobra.ExactArgs(1),
		RunE:  runProfileDelete,
	}

	profileCmd.AddCommand(setCmd, showCmd, importCmd, listCmd, deleteCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	name := profileFlag(cmd)
	flags := cmd.Flags()

	update := profile.Update{
		BirthDate:       changed(flags, "birth-date", flags.GetString),
		BirthTime:       changed(flags, "birth-time", flags.GetString),
		BirthPlace:      changed(flags, "birth-place", flags.GetString),
		Latitude:        changed(flags, "latitude", flags.GetFloat64),
		Longitude:       changed(flags, "longitude", flags.GetFloat64),
		LastPeriodStart: changed(flags, "last-period", flags.GetString),
		CycleLength:     changed(flags, "cycle-length", flags.GetInt),
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	current := profile.Default()
	rec, err := store.Load(cmd.Context(), name)
	switch {
	case err == nil:
		current = rec.Profile
	case !errors.Is(err, profile.ErrNotFound):
		return err
	}

	merged := current.Apply(update)
	if err := store.Save(cmd.Context(), name, merged); err != nil {
		return err
	}
	logger.Info("profile saved", zap.String("profile", name))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Profile %q saved.\n", name)
	if !merged.Complete() {
		fmt.Fprintln(out, "Still needed for insights: --birth-date and --last-period.")
	}
	return nil
}

// changed returns the value of the named flag, or nil when the user did not
// pass it.
func changed[T any](flags *pflag.FlagSet, name string, get func(string) (T, error)) *T {
	if !flags.Changed(name) {
		return nil
	}
	v, err := get(name)
	if err != nil {
		return nil
	}
	return &v
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	name := profileFlag(cmd)
	p, err := loadProfile(cmd, name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(out, p)
	}
	if asTOML, _ := cmd.Flags().GetBool("toml"); asTOML {
		data, err := profile.EncodeTOML(p)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	fmt.Fprintf(out, "Profile:      %s\n", name)
	fmt.Fprintf(out, "Birth date:   %s\n", orNotSet(p.BirthDate))
	fmt.Fprintf(out, "Birth time:   %s\n", orNotSet(p.BirthTime))
	fmt.Fprintf(out, "Birth place:  %s\n", orNotSet(p.BirthPlace))
	fmt.Fprintf(out, "Coordinates:  %.4f, %.4f\n", p.Latitude, p.Longitude)
	fmt.Fprintf(out, "Last period:  %s\n", orNotSet(p.LastPeriodStart))
	fmt.Fprintf(out, "Cycle length: %d days\n", p.CycleLength)
	return nil
}

func orNotSet(s string) string {
	if s == "" {
		return "not set"
	}
	return s
}

func runProfileImport(cmd *cobra.Command, args []string) error {
	name := profileFlag(cmd)

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	decode := profile.DecodeTOML
	if strings.EqualFold(filepath.Ext(args[0]), ".json") {
		decode = profile.DecodeJSON
	}
	p, err := decode(f)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(cmd.Context(), name, p); err != nil {
		return err
	}
	logger.Info("profile imported", zap.String("profile", name), zap.String("file", args[0]))
	fmt.Fprintf(cmd.OutOrStdout(), "Profile %q imported from %s.\n", name, args[0])
	return nil
}

func runProfileList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.List(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(recs) == 0 {
		fmt.Fprintln(out, "No profiles stored yet.")
		return nil
	}
	for _, r := range recs {
		fmt.Fprintf(out, "%s\t(updated %s)\n", r.Name, r.UpdatedAt)
	}
	return nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return fmt.Errorf("no profile %q", args[0])
		}
		return err
	}
	logger.Info("profile deleted", zap.String("profile", args[0]))
	fmt.Fprintf(cmd.OutOrStdout(), "Profile %q deleted.\n", args[0])
	return nil
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HendryAvila/cosmic-cycles/internal/insight"
	"github.com/HendryAvila/cosmic-cycles/internal/profile"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the daily insight for a profile",
	Long: `Shows the cycle phase, sun sign, moon phase and guidance for a day.

  --date     Day to read (YYYY-MM-DD, default: today)
  --profile  Stored profile (default: the configured profile)
  --json     Print JSON instead of markdown`,
	Args: cobra.NoArgs,
	RunE: runToday,
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show cycle phases for the days around a date",
	Long: `Marks every day in [date - radius, date + radius] with its cycle phase
and display color. Only the last period start of the profile is needed.`,
	Args: cobra.NoArgs,
	RunE: runCalendar,
}

func init() {
	todayCmd.Flags().String("date", "", "day to read (YYYY-MM-DD, default: today)")
	todayCmd.Flags().String("profile", "", "profile name (default: configured profile)")
	todayCmd.Flags().Bool("json", false, "print JSON")

	calendarCmd.Flags().String("date", "", "center date (YYYY-MM-DD, default: today)")
	calendarCmd.Flags().String("profile", "", "profile name (default: configured profile)")
	calendarCmd.Flags().Int("radius", 0, "days either side of the center (default: calendar_radius from config)")
	calendarCmd.Flags().Bool("json", false, "print JSON")

	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(calendarCmd)
}

// loadProfile reads a stored profile, pointing the user at "profile set"
// when it does not exist yet.
func loadProfile(cmd *cobra.Command, name string) (profile.Profile, error) {
	store, err := openStore()
	if err != nil {
		return profile.Profile{}, err
	}
	defer store.Close()

	rec, err := store.Load(cmd.Context(), name)
	if errors.Is(err, profile.ErrNotFound) {
		return profile.Profile{}, fmt.Errorf("no profile %q yet: run \"cosmic profile set --profile %s --birth-date YYYY-MM-DD --last-period YYYY-MM-DD\"", name, name)
	}
	if err != nil {
		return profile.Profile{}, err
	}
	return rec.Profile, nil
}

func runToday(cmd *cobra.Command, args []string) error {
	on, err := dateFlag(cmd, "date")
	if err != nil {
		return err
	}
	name := profileFlag(cmd)

	p, err := loadProfile(cmd, name)
	if err != nil {
		return err
	}

	daily, err := insight.ForProfile(p, on, cfg.InsightOptions())
	if errors.Is(err, insight.ErrIncompleteProfile) {
		return fmt.Errorf("profile %q needs a birth date and a last period start: run \"cosmic profile set\"", name)
	}
	if err != nil {
		return err
	}
	logger.Debug("daily insight",
		zap.String("profile", name),
		zap.String("date", daily.Date),
		zap.String("phase", string(daily.Cycle.Phase)),
	)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(cmd.OutOrStdout(), daily)
	}
	fmt.Fprint(cmd.OutOrStdout(), daily.Markdown())
	return nil
}

func runCalendar(cmd *cobra.Command, args []string) error {
	center, err := dateFlag(cmd, "date")
	if err != nil {
		return err
	}
	radius, _ := cmd.Flags().GetInt("radius")
	if radius == 0 {
		radius = cfg.CalendarRadius
	}

	p, err := loadProfile(cmd, profileFlag(cmd))
	if err != nil {
		return err
	}

	days, err := insight.Calendar(p, center, radius, cfg.InsightOptions())
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(cmd.OutOrStdout(), days)
	}
	fmt.Fprint(cmd.OutOrStdout(), insight.CalendarMarkdown(days))
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/HendryAvila/cosmic-cycles/internal/config"
	"github.com/HendryAvila/cosmic-cycles/internal/profile"
)

var (
	cfg    config.Config
	logger *zap.Logger

	// timeNow is a package-level variable for testability.
	timeNow = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "cosmic",
	Short: "Cycle, zodiac and moon insights",
	Long: `Cosmic Cycles places a day within the menstrual cycle, resolves the sun sign
of a birth date, estimates the moon phase and composes daily guidance from
all three.

Run "cosmic serve" to expose the same insights to an AI assistant over MCP.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default .cosmic.toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().String("data-dir", "", "directory holding profiles.db (default ~/.cosmic)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
}

// setup loads configuration and builds the logger before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := config.Init(cfgFile); err != nil {
		return err
	}

	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	logger, err = newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("configuration loaded",
		zap.String("config_file", viper.ConfigFileUsed()),
		zap.String("data_dir", cfg.DataDir),
		zap.String("profile", cfg.Profile),
	)
	return nil
}

// newLogger builds a production logger on stderr. stdout belongs to the
// MCP transport and to command output.
func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

// openStore opens the configured profile store.
func openStore() (*profile.Store, error) {
	store, err := profile.New(cfg.ProfileStore())
	if err != nil {
		return nil, fmt.Errorf("open profile store: %w", err)
	}
	return store, nil
}

// dateFlag reads a YYYY-MM-DD flag, defaulting to today.
func dateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return timeNow(), nil
	}
	d, err := profile.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %w", name, err)
	}
	return d, nil
}

// profileFlag reads --profile, defaulting to the configured profile.
func profileFlag(cmd *cobra.Command) string {
	if name, _ := cmd.Flags().GetString("profile"); name != "" {
		return name
	}
	return cfg.Profile
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

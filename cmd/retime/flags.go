package main

import (
	"fmt"

	"retime/internal/app"
	"retime/internal/config"

	"github.com/spf13/cobra"
)

// registerScheduleFlags adds the path and schedule flags to cmd. The
// defaults match config.NewConfig.
func registerScheduleFlags(cmd *cobra.Command) {
	defaults := config.NewConfig()
	f := cmd.Flags()
	f.StringP("path", "p", "", "Path to files")
	f.Uint64P("offset", "o", defaults.Offset, "offset in seconds")
	f.Int32P("year", "y", defaults.Year, "year to set")
	f.Uint8P("month", "m", defaults.Month, "month to set")
	f.Uint8P("day", "d", defaults.Day, "day to set")
	f.Uint8P("hour", "k", defaults.Hour, "hour to set")
	f.Uint8P("minute", "l", defaults.Minute, "minute to set")
	f.Uint8P("second", "s", defaults.Second, "second to set")
}

// loadConfig reads the file named by --config, or returns the built-in
// defaults when the flag is absent. Nothing is read from disk without it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.NewConfig(), nil
	}
	cfg, err := config.ReadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

// loadJournalConfig reads the file named by --config, falling back to the
// default config path. Journal commands need a config to find the journal.
func loadJournalConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		if path, err = app.DefaultConfigPath(); err != nil {
			return nil, fmt.Errorf("getting config path: %w", err)
		}
	}
	cfg, err := config.ReadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

// applyFlags overrides cfg with every schedule flag given explicitly on the
// command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	var err error

	if f.Changed("offset") {
		if cfg.Offset, err = f.GetUint64("offset"); err != nil {
			return err
		}
	}
	if f.Changed("year") {
		if cfg.Year, err = f.GetInt32("year"); err != nil {
			return err
		}
	}

	fields := []struct {
		name string
		dst  *uint8
	}{
		{"month", &cfg.Month},
		{"day", &cfg.Day},
		{"hour", &cfg.Hour},
		{"minute", &cfg.Minute},
		{"second", &cfg.Second},
	}
	for _, fl := range fields {
		if !f.Changed(fl.name) {
			continue
		}
		if *fl.dst, err = f.GetUint8(fl.name); err != nil {
			return err
		}
	}

	if verbose, _ := f.GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"retime/internal/app"
	"retime/internal/config"
	"retime/internal/retime"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp creates a RetimeApp from cfg. The caller must defer app.Close().
func newApp(cfg *config.Config) (*app.RetimeApp, error) {
	a, err := app.NewRetimeApp(cfg, retime.RealClock{}, retime.UUIDGenerator{}, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}
	return a, nil
}

// configPathArg returns args[0] when given, otherwise the default config path.
func configPathArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return app.DefaultConfigPath()
}

var rootCmd = &cobra.Command{
	Use:   "retime --path PATH_TO_FILE",
	Short: "Give a directory's files sequential modification times",
	Long: `retime sets the modification time of every entry directly inside a
directory. Entries are taken in name order; the first receives the given date
and time, each following one the previous time plus the offset.

The planned times are printed first and nothing changes unless the answer to
the confirmation question is "y" or "yes".`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Arguments parsed; later failures are not usage errors.
		cmd.SilenceUsage = true

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := applyFlags(cmd, cfg); err != nil {
			return err
		}

		path, _ := cmd.Flags().GetString("path")
		req := app.NewRequest(cfg, path)
		if err := req.Validate(); err != nil {
			return err
		}

		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Run(req, os.Stdin, os.Stdout)
	},
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Write a default configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPathArg(args)
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		dataDir, err := app.DefaultDataDir()
		if err != nil {
			return fmt.Errorf("failed to get data dir: %w", err)
		}

		cfg := config.NewConfig()
		cfg.Journal = config.JournalConfig{Type: "sqlite", DataDir: dataDir}

		if err := config.Init(path, cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", path)
		fmt.Printf("Journal:  %s\n", dataDir)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list [PATH]",
	Short: "View configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPathArg(args)
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}

		cfg, err := config.ReadFromFile(path)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", path)
		return (&config.Manager{}).Write(os.Stdout, cfg)
	},
}

// history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View journaled runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := loadJournalConfig(cmd)
		if err != nil {
			return err
		}
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		runs, err := a.History(limit)
		if err != nil {
			return err
		}

		writeRuns(os.Stdout, runs, a.Zone())
		return nil
	},
}

// log command
var logCmd = &cobra.Command{
	Use:   "log RUN_ID",
	Short: "View the changes a run applied",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadJournalConfig(cmd)
		if err != nil {
			return err
		}
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		changes, err := a.RunChanges(args[0])
		if err != nil {
			return err
		}

		writeChanges(os.Stdout, changes, a.Zone())
		return nil
	},
}

func init() {
	// root flags
	registerScheduleFlags(rootCmd)
	rootCmd.Flags().String("config", "", "Read defaults, logging, ignore patterns and journal settings from this TOML file")
	rootCmd.Flags().BoolP("verbose", "v", false, "Log debug output to stderr")
	rootCmd.MarkFlagRequired("path")

	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// journal commands
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of runs to show")
	historyCmd.Flags().String("config", "", "Config file (default $RETIME_CONFIG_PATH or ~/.config/retime.toml)")
	logCmd.Flags().String("config", "", "Config file (default $RETIME_CONFIG_PATH or ~/.config/retime.toml)")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(logCmd)
}

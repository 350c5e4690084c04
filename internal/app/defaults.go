package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the config file used by the config, history and
// log commands when no path is given. RETIME_CONFIG_PATH overrides the
// default ~/.config/retime.toml.
func DefaultConfigPath() (string, error) {
	if path := os.Getenv("RETIME_CONFIG_PATH"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "retime.toml"), nil
}

// DefaultDataDir returns where a newly initialized config keeps its journal.
// RETIME_HOME overrides the XDG default ~/.local/share/retime.
func DefaultDataDir() (string, error) {
	if path := os.Getenv("RETIME_HOME"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "retime"), nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is read from ~/.loxi.toml when present. Zero values fall back to
// the built-in defaults.
type Config struct {
	HistoryFile string `toml:"history_file"` // REPL history path
	Prompt      string `toml:"prompt"`       // REPL prompt override
	Color       string `toml:"color"`        // "auto", "always" or "never"
}

// loadConfig reads the user config. A missing file yields the defaults; a
// malformed one is reported on stderr and otherwise ignored.
func loadConfig() Config {
	cfg := Config{Color: "auto"}

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(filepath.Join(home, configFile))
	if err != nil {
		return cfg
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintln(os.Stderr, yellow(fmt.Sprintf("%s: ignoring malformed %s: %v", appName, configFile, err)))
		return Config{Color: "auto"}
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	return cfg
}

// colorEnabled decides whether diagnostics get ANSI colors. "auto" colors
// only when stderr is a terminal and NO_COLOR is unset.
func (c Config) colorEnabled() bool {
	switch c.Color {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fi, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"diagkit/internal/assert"
	"diagkit/internal/diaglog"
	"diagkit/internal/stackfilter"
)

const configFileName = "diagkit.toml"

type fileConfig struct {
	Log    logConfig    `toml:"log"`
	Assert assertConfig `toml:"assert"`
	Filter filterConfig `toml:"filter"`
}

type logConfig struct {
	Level string `toml:"level"`
}

type assertConfig struct {
	Level string `toml:"level"`
}

type filterConfig struct {
	MaxFrames           int    `toml:"max_frames"`
	Runtime             string `toml:"runtime"`
	Tests               string `toml:"tests"`
	Internal            string `toml:"internal"`
	DropNativeAnonymous *bool  `toml:"drop_native_anonymous"`
}

// loadedConfig is resolved once per invocation by setupDiagnostics.
var loadedConfig fileConfig

// setupDiagnostics loads the optional config file and configures the
// process-wide diagnostic state: log sink, severity threshold and
// assertion level. Flags still override per command.
func setupDiagnostics(cmd *cobra.Command, args []string) error {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		path, _ = findConfig()
	}
	if path != "" {
		meta, err := toml.DecodeFile(path, &loadedConfig)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown key %q in %s", undecoded[0].String(), path)
		}
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if !quiet {
		diaglog.SetSink(diaglog.NewWriterSink(os.Stderr, colorEnabled(cmd)))
	}

	if loadedConfig.Log.Level != "" {
		sev, err := diaglog.ParseSeverity(loadedConfig.Log.Level)
		if err != nil {
			return err
		}
		diaglog.SetThreshold(sev)
	}
	if loadedConfig.Assert.Level != "" {
		level, err := assert.ParseLevel(loadedConfig.Assert.Level)
		if err != nil {
			return err
		}
		assert.SetLevel(level)
	}
	return nil
}

// findConfig walks upward from the working directory looking for
// diagkit.toml.
func findConfig() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// filterOptions builds stackfilter options from the config file; flag
// overrides are layered on by the filter command.
func filterOptions() (stackfilter.Options, error) {
	opts := stackfilter.DefaultOptions()
	cfg := loadedConfig.Filter

	if cfg.MaxFrames > 0 {
		opts.MaxFrames = cfg.MaxFrames
	}
	if cfg.DropNativeAnonymous != nil {
		opts.DropNativeAnonymous = *cfg.DropNativeAnonymous
	}

	var err error
	if opts.RuntimePattern, err = overridePattern(cfg.Runtime, opts.RuntimePattern); err != nil {
		return opts, fmt.Errorf("invalid filter.runtime pattern: %w", err)
	}
	if opts.TestPattern, err = overridePattern(cfg.Tests, opts.TestPattern); err != nil {
		return opts, fmt.Errorf("invalid filter.tests pattern: %w", err)
	}
	if opts.InternalPattern, err = overridePattern(cfg.Internal, opts.InternalPattern); err != nil {
		return opts, fmt.Errorf("invalid filter.internal pattern: %w", err)
	}
	return opts, nil
}

// overridePattern compiles an override, keeping the fallback when the
// override is empty. The literal "off" disables the category.
func overridePattern(expr string, fallback *regexp.Regexp) (*regexp.Regexp, error) {
	switch expr {
	case "":
		return fallback, nil
	case "off":
		return nil, nil
	default:
		return regexp.Compile(expr)
	}
}

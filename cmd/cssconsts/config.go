package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

var k = koanf.New(".")

// resolveConfig is the fully merged configuration for a resolve run.
type resolveConfig struct {
	Paths   []string // glob patterns for stylesheets to rewrite
	File    string   // optional shared constants file
	Pattern string   // optional constant-name regex (default: no lowercase)
	Write   bool     // rewrite files in place
	OutDir  string   // write resolved files here instead of stdout
	Verbose bool
	Quiet   bool
	Color   bool
}

// loadConfig loads configuration with precedence: flags > env > file >
// defaults. It must be called after cobra parses flags (in PreRunE or
// RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssconsts.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSCONSTS_* prefix)
	if err := k.Load(env.Provider("CSSCONSTS_", ".", func(s string) string {
		// CSSCONSTS_RESOLVE_FILE -> resolve.file
		// CSSCONSTS_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "CSSCONSTS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildResolveConfig constructs the run configuration from koanf state.
// Positional args win over configured paths.
func buildResolveConfig(args []string) resolveConfig {
	cfg := resolveConfig{
		File:    getStringWithFallback("file", "resolve.file", ""),
		Pattern: getStringWithFallback("pattern", "resolve.pattern", ""),
		Write:   getBoolWithFallback("write", "resolve.write", false),
		OutDir:  getStringWithFallback("out-dir", "resolve.out-dir", ""),
		Verbose: getBoolWithFallback("verbose", "verbose", false),
		Quiet:   getBoolWithFallback("quiet", "quiet", false),
		Color:   getBoolWithFallback("color", "color", false),
	}

	switch {
	case len(args) > 0:
		cfg.Paths = args
	case len(k.Strings("resolve.paths")) > 0:
		cfg.Paths = k.Strings("resolve.paths")
	default:
		cfg.Paths = []string{"**/*.css"}
	}

	return cfg
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

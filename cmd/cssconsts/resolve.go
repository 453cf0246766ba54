package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"
	consts "github.com/wongjn/postcss-consts"
	"github.com/wongjn/postcss-consts/internal/files"
	"github.com/wongjn/postcss-consts/internal/report"
	"github.com/wongjn/postcss-consts/stylesheet"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [patterns...]",
	Short: "Resolve constant custom properties in CSS files",
	Long: `Parse the matched CSS files, harvest constants from their :root rules
(and from a shared definitions file when --file is set), strip the constant
declarations and inline their values at every var() use site.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runResolve(args)
	},
}

func init() {
	f := resolveCmd.Flags()
	f.StringP("file", "f", "", "Shared constants file seeding every stylesheet")
	f.String("pattern", "", "Constant-name regex (default: names without lowercase letters)")
	f.BoolP("write", "w", false, "Rewrite matched files in place")
	f.String("out-dir", "", "Write resolved files into this directory instead of stdout")
}

// runResolve is shared between `cssconsts resolve` and the bare `cssconsts`
// invocation.
func runResolve(args []string) error {
	cfg := buildResolveConfig(args)

	var pattern *regexp.Regexp
	if cfg.Pattern != "" {
		var err error
		pattern, err = regexp.Compile(cfg.Pattern)
		if err != nil {
			return fmt.Errorf("invalid constant pattern %q: %w", cfg.Pattern, err)
		}
	}

	paths, stats, err := files.Expand(cfg.Paths)
	if err != nil {
		return fmt.Errorf("expanding patterns: %w", err)
	}

	var out io.Writer = os.Stdout
	if cfg.Quiet {
		out = io.Discard
	}
	reporter := report.New(os.Stderr, report.UseColors(cfg.Color), cfg.Verbose)
	if cfg.Quiet {
		reporter = report.New(io.Discard, false, false)
	}

	// One cache for the whole run: the shared constants file is read
	// once no matter how many stylesheets reference it.
	resolver := consts.New(consts.Options{File: cfg.File, Pattern: pattern}, consts.NewCache())

	resolved, failed := 0, 0
	for _, path := range paths {
		if cfg.File != "" && path == cfg.File {
			// Don't rewrite the definitions file itself.
			continue
		}
		n, err := resolveFile(path, resolver, cfg, out)
		if err != nil {
			reporter.Failure(path, err)
			failed++
			continue
		}
		reporter.File(path, n)
		resolved++
	}

	reporter.Summary(resolved, failed, stats.Skipped)
	if failed > 0 {
		return fmt.Errorf("%d stylesheets failed", failed)
	}
	return nil
}

// resolveFile rewrites one stylesheet and returns the number of constants
// in its merged table.
func resolveFile(path string, resolver *consts.Resolver, cfg resolveConfig, out io.Writer) (int, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	sheet, err := stylesheet.Parse(string(blob))
	if err != nil {
		return 0, err
	}

	table, err := resolver.Resolve(sheet)
	if err != nil {
		return 0, err
	}
	rendered := sheet.String()

	switch {
	case cfg.Write:
		if err := os.WriteFile(path, []byte(rendered), 0644); err != nil {
			return 0, err
		}
	case cfg.OutDir != "":
		if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
			return 0, err
		}
		dest := filepath.Join(cfg.OutDir, filepath.Base(path))
		if err := os.WriteFile(dest, []byte(rendered), 0644); err != nil {
			return 0, err
		}
	default:
		fmt.Fprint(out, rendered)
	}

	return len(table), nil
}

package consts

import (
	"regexp"

	"github.com/wongjn/postcss-consts/stylesheet"
)

// Options configures a Resolver.
type Options struct {
	// File is an optional path to an external stylesheet whose :root
	// constants seed every resolution. File constants form the base;
	// local declarations may add to or override them.
	File string

	// Pattern overrides the constant-name pattern. Nil means
	// DefaultPattern.
	Pattern *regexp.Regexp
}

// FileOptions normalizes a bare path into an Options value.
func FileOptions(path string) Options {
	return Options{File: path}
}

// PatternOptions normalizes a bare pattern into an Options value.
func PatternOptions(re *regexp.Regexp) Options {
	return Options{Pattern: re}
}

// Resolver rewrites stylesheets by inlining constant custom properties.
type Resolver struct {
	opts  Options
	match Matcher
	cache *Cache
}

// New returns a Resolver. A nil cache gets a fresh private one; callers
// resolving multiple stylesheets against the same definitions file should
// pass a single shared Cache so the file is read once per process.
func New(opts Options, cache *Cache) *Resolver {
	if cache == nil {
		cache = NewCache()
	}
	return &Resolver{opts: opts, match: NewMatcher(opts.Pattern), cache: cache}
}

// Resolve collects constants from sheet (seeded with the external file's
// table when one is configured), removes their declarations, and rewrites
// every remaining declaration value against the merged table, which is
// returned. References to undefined names stay in place verbatim.
//
// When a file is configured, it is loaded in full before the tree is
// touched; a load failure leaves sheet unmodified.
func (r *Resolver) Resolve(sheet *stylesheet.Stylesheet) (Table, error) {
	var seed Table
	if r.opts.File != "" {
		cached, err := r.cache.Load(r.opts.File, r.match)
		if err != nil {
			return nil, err
		}
		// The cached table is an immutable snapshot; Collect mutates
		// its seed, so hand it a copy.
		seed = cached.clone()
	}

	table := Collect(sheet, r.match, seed)
	sheet.WalkDecls(func(d *stylesheet.Declaration) {
		d.Value = Substitute(d.Value, table)
	})
	return table, nil
}

package consts

import (
	"strings"

	"github.com/wongjn/postcss-consts/stylesheet"
)

// Prefix is the custom-property sigil. Only declarations whose name starts
// with it are eligible as constants.
const Prefix = "--"

// RootSelector is the rule from which constants are harvested.
const RootSelector = ":root"

// Collect walks sheet for the first rule whose selector is exactly :root
// and harvests its matching declarations into a table, removing them from
// the tree. Declarations are visited in source order and each value is
// substituted against the table built so far, so a constant may reference
// any constant declared before it — never one declared after.
//
// A non-nil seed is mutated in place and returned; this is how file-sourced
// constants merge with local ones. The walk stops once a root rule has been
// handled: rules nested inside it are not treated as further root scopes.
func Collect(sheet *stylesheet.Stylesheet, m Matcher, seed Table) Table {
	table := seed
	if table == nil {
		table = Table{}
	}
	sheet.WalkRules(func(r *stylesheet.Rule) stylesheet.WalkStatus {
		if r.AtRule || r.Selector != RootSelector {
			return stylesheet.Continue
		}
		kept := r.Decls[:0]
		for _, d := range r.Decls {
			if strings.HasPrefix(d.Prop, Prefix) && m.Matches(d.Prop) {
				table[strings.TrimPrefix(d.Prop, Prefix)] = Substitute(d.Value, table)
				continue
			}
			kept = append(kept, d)
		}
		r.Decls = kept
		return stylesheet.Stop
	})
	return table
}

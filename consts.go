// Package consts resolves constant-like custom properties in CSS.
//
// Declarations inside a :root rule whose names match a configurable pattern
// (default: no lowercase letters, e.g. --BRAND-COLOR) are harvested into a
// name→value table, removed from the stylesheet, and inlined wherever they
// are referenced with var(--NAME). Constants can also be shared across
// stylesheets through an external definitions file.
//
//	sheet, _ := stylesheet.Parse(css)
//	r := consts.New(consts.Options{File: "consts.css"}, cache)
//	table, err := r.Resolve(sheet)
//	out := sheet.String()
//
// References to names absent from the table are left untouched; unresolved
// references never fail resolution.
//
// The CLI lives in cmd/cssconsts.
package consts

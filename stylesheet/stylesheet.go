package stylesheet

import "strings"

// Stylesheet is a parsed CSS document: an ordered list of top-level rules.
type Stylesheet struct {
	Rules []*Rule
}

// Rule is a qualified rule or an at-rule. A qualified rule has a selector
// and a declaration block; an at-rule may carry a block of nested rules
// and declarations (@media) or no block at all (@import).
type Rule struct {
	Selector string // selector text, or at-rule name plus prelude
	AtRule   bool
	NoBlock  bool // at-rules terminated by a semicolon
	Decls    []*Declaration
	Rules    []*Rule
}

// Declaration is a property: value pair owned by exactly one rule.
type Declaration struct {
	Prop  string
	Value string
}

// WalkStatus controls rule traversal.
type WalkStatus int

const (
	// Continue descends into the current rule's children.
	Continue WalkStatus = iota
	// SkipChildren moves on to the next sibling rule.
	SkipChildren
	// Stop ends the walk entirely.
	Stop
)

// WalkRules visits every rule depth-first in source order. The callback's
// return value decides whether the walk descends, skips the subtree, or
// stops altogether.
func (s *Stylesheet) WalkRules(fn func(*Rule) WalkStatus) {
	walkRules(s.Rules, fn)
}

func walkRules(rules []*Rule, fn func(*Rule) WalkStatus) WalkStatus {
	for _, r := range rules {
		switch fn(r) {
		case Stop:
			return Stop
		case SkipChildren:
			continue
		}
		if walkRules(r.Rules, fn) == Stop {
			return Stop
		}
	}
	return Continue
}

// WalkDecls visits every declaration in the stylesheet in source order,
// including declarations inside nested at-rule blocks.
func (s *Stylesheet) WalkDecls(fn func(*Declaration)) {
	s.WalkRules(func(r *Rule) WalkStatus {
		for _, d := range r.Decls {
			fn(d)
		}
		return Continue
	})
}

// RemoveDeclaration removes d from the rule that owns it. It reports
// whether the declaration was found.
func (r *Rule) RemoveDeclaration(d *Declaration) bool {
	for i, have := range r.Decls {
		if have == d {
			r.Decls = append(r.Decls[:i], r.Decls[i+1:]...)
			return true
		}
	}
	return false
}

// String serializes the stylesheet as formatted CSS. Output is normalized
// (one declaration per line, two-space indent), not a byte-for-byte
// round-trip of the input.
func (s *Stylesheet) String() string {
	var w strings.Builder
	for _, r := range s.Rules {
		r.write(&w, 0)
	}
	return w.String()
}

func (r *Rule) write(w *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	w.WriteString(indent)
	w.WriteString(r.Selector)
	if r.NoBlock {
		w.WriteString(";\n")
		return
	}
	w.WriteString(" {\n")
	for _, d := range r.Decls {
		w.WriteString(indent)
		w.WriteString("  ")
		w.WriteString(d.Prop)
		w.WriteString(": ")
		w.WriteString(d.Value)
		w.WriteString(";\n")
	}
	for _, child := range r.Rules {
		child.write(w, depth+1)
	}
	w.WriteString(indent)
	w.WriteString("}\n")
}

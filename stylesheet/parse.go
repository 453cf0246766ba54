package stylesheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Parse turns raw CSS text into a Stylesheet tree. Declaration values keep
// their source text verbatim (minus surrounding whitespace); no value
// validation is performed.
func Parse(content string) (*Stylesheet, error) {
	p := css.NewParser(parse.NewInputString(content), false)

	sheet := &Stylesheet{}
	var stack []*Rule
	var pendingSelectors []string

	appendRule := func(r *Rule) {
		if len(stack) == 0 {
			sheet.Rules = append(sheet.Rules, r)
			return
		}
		parent := stack[len(stack)-1]
		parent.Rules = append(parent.Rules, r)
	}

	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("parse css: %w", err)
			}
			return sheet, nil

		case css.QualifiedRuleGrammar:
			// One selector of a comma-separated list; the final one
			// arrives with BeginRulesetGrammar below.
			pendingSelectors = append(pendingSelectors, joinValues(p.Values()))

		case css.BeginRulesetGrammar:
			sel := joinValues(p.Values())
			if len(pendingSelectors) > 0 {
				sel = strings.Join(append(pendingSelectors, sel), ", ")
				pendingSelectors = nil
			}
			r := &Rule{Selector: sel}
			appendRule(r)
			stack = append(stack, r)

		case css.BeginAtRuleGrammar:
			r := &Rule{Selector: atRuleText(data, p.Values()), AtRule: true}
			appendRule(r)
			stack = append(stack, r)

		case css.AtRuleGrammar:
			// Block-less at-rule such as @import or @charset.
			appendRule(&Rule{Selector: atRuleText(data, p.Values()), AtRule: true, NoBlock: true})

		case css.EndRulesetGrammar, css.EndAtRuleGrammar:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if len(stack) == 0 {
				continue
			}
			cur := stack[len(stack)-1]
			cur.Decls = append(cur.Decls, &Declaration{
				Prop:  string(data),
				Value: strings.TrimSpace(joinValues(p.Values())),
			})
		}
	}
}

// joinValues concatenates grammar value tokens back into source text.
func joinValues(values []css.Token) string {
	var w strings.Builder
	for _, v := range values {
		w.Write(v.Data)
	}
	return strings.TrimSpace(w.String())
}

func atRuleText(name []byte, values []css.Token) string {
	prelude := joinValues(values)
	if prelude == "" {
		return string(name)
	}
	return string(name) + " " + prelude
}

package stylesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() *Stylesheet {
	return &Stylesheet{Rules: []*Rule{
		{Selector: ":root", Decls: []*Declaration{
			{Prop: "--A", Value: "1"},
		}},
		{Selector: "@media screen", AtRule: true, Rules: []*Rule{
			{Selector: ".inner", Decls: []*Declaration{
				{Prop: "color", Value: "red"},
			}},
		}},
		{Selector: ".outer", Decls: []*Declaration{
			{Prop: "width", Value: "1px"},
		}},
	}}
}

func TestWalkRulesDepthFirst(t *testing.T) {
	var visited []string
	fixture().WalkRules(func(r *Rule) WalkStatus {
		visited = append(visited, r.Selector)
		return Continue
	})

	assert.Equal(t, []string{":root", "@media screen", ".inner", ".outer"}, visited)
}

func TestWalkRulesStop(t *testing.T) {
	var visited []string
	fixture().WalkRules(func(r *Rule) WalkStatus {
		visited = append(visited, r.Selector)
		if r.Selector == ":root" {
			return Stop
		}
		return Continue
	})

	assert.Equal(t, []string{":root"}, visited)
}

func TestWalkRulesSkipChildren(t *testing.T) {
	var visited []string
	fixture().WalkRules(func(r *Rule) WalkStatus {
		visited = append(visited, r.Selector)
		if r.AtRule {
			return SkipChildren
		}
		return Continue
	})

	assert.Equal(t, []string{":root", "@media screen", ".outer"}, visited)
}

func TestWalkDeclsVisitsNestedBlocks(t *testing.T) {
	var props []string
	fixture().WalkDecls(func(d *Declaration) {
		props = append(props, d.Prop)
	})

	assert.Equal(t, []string{"--A", "color", "width"}, props)
}

func TestRemoveDeclaration(t *testing.T) {
	a := &Declaration{Prop: "--A", Value: "1"}
	b := &Declaration{Prop: "--B", Value: "2"}
	rule := &Rule{Selector: ":root", Decls: []*Declaration{a, b}}

	require.True(t, rule.RemoveDeclaration(a))
	require.Len(t, rule.Decls, 1)
	assert.Same(t, b, rule.Decls[0])

	// Removing again is a no-op.
	assert.False(t, rule.RemoveDeclaration(a))
}

func TestStringSerialization(t *testing.T) {
	sheet := &Stylesheet{Rules: []*Rule{
		{Selector: "@import url(\"base.css\")", AtRule: true, NoBlock: true},
		{Selector: ".a", Decls: []*Declaration{
			{Prop: "color", Value: "red"},
		}},
		{Selector: "@media screen", AtRule: true, Rules: []*Rule{
			{Selector: ".b", Decls: []*Declaration{
				{Prop: "width", Value: "1px"},
			}},
		}},
	}}

	expected := `@import url("base.css");
.a {
  color: red;
}
@media screen {
  .b {
    width: 1px;
  }
}
`
	assert.Equal(t, expected, sheet.String())
}

func TestParseStringRoundTripStable(t *testing.T) {
	src := `:root {
  --WIDTH: 100px;
}
.a {
  width: var(--WIDTH);
}
`
	sheet, err := Parse(src)
	require.NoError(t, err)
	first := sheet.String()

	reparsed, err := Parse(first)
	require.NoError(t, err)
	assert.Equal(t, first, reparsed.String())
}

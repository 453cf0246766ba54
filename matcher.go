package consts

import "regexp"

// DefaultPattern selects declaration names containing no lowercase ASCII
// letters. Uppercase, digits, hyphens and underscores all qualify:
// --BRAND-COLOR is a constant, --brand-color is not.
var DefaultPattern = regexp.MustCompile(`^[^a-z]*$`)

// Matcher decides whether a declaration name denotes a constant. The zero
// value is not usable; construct with NewMatcher.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher returns a Matcher testing names against re. A nil re falls
// back to DefaultPattern.
func NewMatcher(re *regexp.Regexp) Matcher {
	if re == nil {
		re = DefaultPattern
	}
	return Matcher{re: re}
}

// Matches reports whether name (the full declaration name, sigil included)
// is a constant.
func (m Matcher) Matches(name string) bool {
	return m.re.MatchString(name)
}

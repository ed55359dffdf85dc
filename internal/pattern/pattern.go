package pattern

import (
	"regexp"
	"strings"
)

// Matcher attempts a match against text and returns an optional capture.
// When the pattern has a capture group, capture is the first group;
// otherwise it is the whole match.
type Matcher interface {
	Match(text string) (capture string, ok bool)
}

// Regex is a Matcher backed by a compiled regular expression.
type Regex struct {
	re *regexp.Regexp
}

// NewRegex compiles expr into a Regex. It panics on an invalid expression,
// so it is meant for package-level tables.
func NewRegex(expr string) Regex {
	return Regex{re: regexp.MustCompile(expr)}
}

// Match implements Matcher.
func (r Regex) Match(text string) (string, bool) {
	m := r.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	if len(m) > 1 {
		return m[1], true
	}
	return m[0], true
}

// FindAll returns the submatches of every non-overlapping match.
func (r Regex) FindAll(text string) [][]string {
	return r.re.FindAllStringSubmatch(text, -1)
}

// String returns the source expression.
func (r Regex) String() string {
	return r.re.String()
}

// Literal matches any of a fixed set of substrings.
type Literal struct {
	needles []string
}

// NewLiteral creates a Literal matching any of needles.
func NewLiteral(needles ...string) Literal {
	return Literal{needles: needles}
}

// Match implements Matcher. The capture is the first needle found, in
// needle order.
func (l Literal) Match(text string) (string, bool) {
	for _, n := range l.needles {
		if strings.Contains(text, n) {
			return n, true
		}
	}
	return "", false
}

// Any reports whether any of the matchers matches text.
func Any(text string, matchers ...Matcher) bool {
	for _, m := range matchers {
		if _, ok := m.Match(text); ok {
			return true
		}
	}
	return false
}

// Rewriter replaces every match of a pattern with a fixed replacement.
type Rewriter struct {
	// Name identifies the rule in logs and tests.
	Name string

	re          *regexp.Regexp
	replacement string
}

// NewRewriter compiles expr into a Rewriter. It panics on an invalid expression.
func NewRewriter(name, expr, replacement string) Rewriter {
	return Rewriter{Name: name, re: regexp.MustCompile(expr), replacement: replacement}
}

// Rewrite applies the rule to text. The replacement is literal, so "$" in
// it has no special meaning.
func (r Rewriter) Rewrite(text string) string {
	return r.re.ReplaceAllLiteralString(text, r.replacement)
}

// Match implements Matcher so rewriters can also be used as detectors.
func (r Rewriter) Match(text string) (string, bool) {
	loc := r.re.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return text[loc[0]:loc[1]], true
}

// gap is the whitespace tolerated between the characters of a Spaced phrase.
// RE2's \s leaves out vertical tab and NBSP, so both are listed explicitly.
const gap = `[\t\n\v\f\r \x{00A0}]*`

// Spaced builds an expression matching phrase with arbitrary whitespace
// between its characters, case-insensitively. "참가자격" becomes roughly
// (?i)참\s*가\s*자\s*격.
func Spaced(phrase string) string {
	var sb strings.Builder
	sb.WriteString("(?i)")
	first := true
	for _, r := range phrase {
		if r == ' ' {
			continue
		}
		if !first {
			sb.WriteString(gap)
		}
		sb.WriteString(regexp.QuoteMeta(string(r)))
		first = false
	}
	return sb.String()
}

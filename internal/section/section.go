package section

import (
	"regexp"
	"strings"

	"github.com/nao1215/bidscan/internal/pattern"
)

var (
	// eligibilityHeader matches the header line including its newline:
	// optional "제 3-" style numbering, optional 입찰, then 참가자격.
	eligibilityHeader = regexp.MustCompile(`(?m)^\s*(?:제?\s*\d+\s*[-.]?\s*)?(?:입찰)?\s*참가자격[^\n]*\n`)

	// headerEcho matches a body line that only repeats the header.
	headerEcho = regexp.MustCompile(`(?m)^[ \t]*(?:\d+[-.]\d*\.?[ \t]*)?(?:참가자격등록|참가자격)[ \t]*$`)

	excessBlankLines = regexp.MustCompile(`\n{3,}`)
)

// DefaultHeadings returns the heading detectors in evaluation order. Each is
// matched against a left-trimmed line.
func DefaultHeadings() []pattern.Matcher {
	return []pattern.Matcher{
		// short numbered heading: "2. 제출방법", "제 4 - 기타"
		pattern.NewRegex(`^제?\s*\d+\s*[-.]?\s*.{0,20}$`),
		// roman numeral: "IV."
		pattern.NewRegex(`^[IVX]+\.`),
		// Korean ordinal letter: "나)"
		pattern.NewRegex(`^[가-하]\)`),
		// digit paren: "2)"
		pattern.NewRegex(`^\d+\)`),
		// digit dot: "3."
		pattern.NewRegex(`^\d+\.`),
	}
}

// Extractor finds the eligibility section. The zero value is not usable;
// create one with NewExtractor.
type Extractor struct {
	headings []pattern.Matcher
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithHeading appends an extra heading detector after the defaults.
func WithHeading(m pattern.Matcher) Option {
	return func(e *Extractor) {
		e.headings = append(e.headings, m)
	}
}

// NewExtractor creates an Extractor with the default heading detectors.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{headings: DefaultHeadings()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExtractor = NewExtractor()

// ExtractEligibility returns the body of the participation eligibility
// section of normalized text, or "" when there is none.
func ExtractEligibility(normalized string) string {
	return defaultExtractor.Extract(normalized)
}

// Extract returns the eligibility body, or "" when no header is found.
func (e *Extractor) Extract(normalized string) string {
	loc := eligibilityHeader.FindStringIndex(normalized)
	if loc == nil {
		return ""
	}

	lines := strings.Split(normalized[loc[1]:], "\n")
	end := len(lines)
	// The first body line is always kept; only later lines can end the section.
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" || e.isHeading(lines[i]) {
			end = i
			break
		}
	}

	return clean(strings.Join(lines[:end], "\n"))
}

func (e *Extractor) isHeading(line string) bool {
	return pattern.Any(strings.TrimLeft(line, " \t"), e.headings...)
}

// clean drops header echoes and surplus blank lines.
func clean(body string) string {
	body = headerEcho.ReplaceAllLiteralString(body, "")
	body = excessBlankLines.ReplaceAllLiteralString(body, "\n\n")
	return strings.TrimSpace(body)
}

// Package normalize canonicalizes announcement text before section extraction.
//
// Source documents are copied out of rendered web pages and PDFs, so they
// carry mixed line endings, decorative list bullets and key phrases with
// spaces injected between characters ("참 가 자 격"). Normalize folds all of
// that into one canonical form. It is a pure function and idempotent:
// Normalize(Normalize(x)) == Normalize(x).
package normalize

import (
	"regexp"
	"strings"

	"github.com/nao1215/bidscan/internal/pattern"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Canonical phrase forms produced by the canonicalization table.
const (
	PhraseProductionCertificate = "직접생산확인증명서"
	PhraseBidEligibility        = "입찰참가자격"
	PhraseEligibility           = "참가자격"
	PhraseClassificationNumber  = "분류번호"
	PhraseManufacturedItem      = "제조물품"
)

var (
	// bulletRun matches decorative list markers.
	bulletRun = regexp.MustCompile(`[•·▶►\-–—]+`)

	// horizontalSpace matches runs of non-newline whitespace, NBSP included.
	horizontalSpace = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)

	// trailingSpace matches horizontal whitespace left before a newline.
	trailingSpace = regexp.MustCompile(`[ \t]+\n`)

	lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// canonicalRules is applied in order. The longer 입찰참가자격 runs before
// 참가자격 so the shorter rule never splits it.
var canonicalRules = []pattern.Rewriter{
	newPhraseRule("production-certificate", PhraseProductionCertificate),
	newPhraseRule("bid-eligibility", PhraseBidEligibility),
	newPhraseRule("eligibility", PhraseEligibility),
	newPhraseRule("classification-number", PhraseClassificationNumber),
	newPhraseRule("manufactured-item", PhraseManufacturedItem),
}

func newPhraseRule(name, phrase string) pattern.Rewriter {
	return pattern.NewRewriter(name, pattern.Spaced(phrase), phrase)
}

// Rules returns the canonicalization table in application order.
func Rules() []pattern.Rewriter {
	return append([]pattern.Rewriter(nil), canonicalRules...)
}

// Normalize returns the canonical form of text.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	// Fold full-width forms and compose decomposed Hangul first so the
	// regular expressions below only ever see canonical runes. Folding can
	// emit combining marks, so composition comes second.
	s := width.Fold.String(text)
	s = norm.NFC.String(s)

	s = lineEndings.Replace(s)
	s = bulletRun.ReplaceAllLiteralString(s, " ")

	for _, rule := range canonicalRules {
		s = rule.Rewrite(s)
	}

	s = horizontalSpace.ReplaceAllLiteralString(s, " ")
	s = trailingSpace.ReplaceAllLiteralString(s, "\n")
	return s
}

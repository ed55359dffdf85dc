// Package extract pulls structured entities out of raw announcement text:
// required license categories, coded line items, the contract award method
// and the bid submission channel.
//
// Extraction is precision oriented. Missing an entity is acceptable; reporting
// one that is not in the text is not.
package extract

import (
	"regexp"
	"strings"

	"github.com/nao1215/bidscan/internal/model"
	"github.com/nao1215/bidscan/internal/pattern"
)

// licensePattern is an alternation over the closed license vocabulary.
var licensePattern = buildLicensePattern()

func buildLicensePattern() pattern.Regex {
	all := model.AllLicenseCategories()
	names := make([]string, len(all))
	for i, l := range all {
		names[i] = regexp.QuoteMeta(l.String())
	}
	return pattern.NewRegex("(" + strings.Join(names, "|") + ")")
}

// itemPattern matches a Hangul label directly followed by a parenthesized
// code of ten or more digits.
var itemPattern = pattern.NewRegex(`([\p{Hangul}\s]+)\((\d{10,})\)`)

type contractRule struct {
	method  model.ContractMethod
	matcher pattern.Matcher
}

// contractRules are tried in order; the first hit wins.
var contractRules = []contractRule{
	{model.ContractNegotiated, pattern.NewLiteral("협상에 의한 계약")},
	{model.ContractQualificationReview, pattern.NewLiteral("적격심사")},
	{model.ContractLowestBid, pattern.NewLiteral("최저가")},
}

type submissionRule struct {
	channel model.SubmissionChannel
	matcher pattern.Matcher
}

// submissionRules are tried in order; electronic wins over in-person.
var submissionRules = []submissionRule{
	{model.SubmissionElectronic, pattern.NewRegex(`(?i)전자입찰|나라장터|g2b`)},
	{model.SubmissionInPerson, pattern.NewRegex(`직접방문|방문접수`)},
}

// Extract scans raw document text. It is a pure function of rawText.
func Extract(rawText string) model.ExtractedEntities {
	var e model.ExtractedEntities

	for _, m := range licensePattern.FindAll(rawText) {
		if l, ok := model.ParseLicenseCategory(m[1]); ok {
			e.AddLicense(l)
		}
	}

	for _, m := range itemPattern.FindAll(rawText) {
		label := strings.TrimSpace(m[1])
		if label == "" {
			continue
		}
		e.AddItem(model.CodedItem{Label: label, Code: m[2]})
	}

	e.ContractMethod = ContractMethod(rawText)
	e.SubmissionChannel = SubmissionChannel(rawText)

	return e
}

// ContractMethod classifies the award mechanism mentioned in text.
func ContractMethod(text string) model.ContractMethod {
	for _, rule := range contractRules {
		if _, ok := rule.matcher.Match(text); ok {
			return rule.method
		}
	}
	return model.ContractUnknown
}

// SubmissionChannel classifies the bid submission channel mentioned in text.
func SubmissionChannel(text string) model.SubmissionChannel {
	for _, rule := range submissionRules {
		if _, ok := rule.matcher.Match(text); ok {
			return rule.channel
		}
	}
	return model.SubmissionUnknown
}

package model

import (
	"slices"
	"strings"
)

// CompanyProfile lists what one company can bid with. It is supplied from
// outside the pipeline and treated as read-only.
type CompanyProfile struct {
	// Licenses are the registration categories the company holds. Entries are
	// free text; they are matched by substring against license names.
	Licenses []string `json:"licenses" yaml:"licenses"`

	// CertifiedItemCodes are the classification codes the company holds a
	// direct-production certificate for.
	CertifiedItemCodes []string `json:"certified_item_codes" yaml:"certified_item_codes"`
}

// LicenseText joins the license entries with single spaces.
func (p CompanyProfile) LicenseText() string {
	return strings.Join(p.Licenses, " ")
}

// HasItemCode reports whether code is among the certified codes.
// Codes are compared as text, never numerically.
func (p CompanyProfile) HasItemCode(code string) bool {
	return slices.Contains(p.CertifiedItemCodes, code)
}

// Company is a named roster entry.
type Company struct {
	Name    string         `json:"name"`
	Profile CompanyProfile `json:"profile"`
}

// Roster is the ordered list of companies to score announcements against.
type Roster []Company

// Names returns the company names in roster order.
func (r Roster) Names() []string {
	names := make([]string, len(r))
	for i, c := range r {
		names[i] = c.Name
	}
	return names
}

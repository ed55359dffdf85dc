package model

import (
	"fmt"
	"slices"
)

// CodedItem is a procurement line item: a free-text label followed by a
// parenthesized classification code of at least ten digits.
type CodedItem struct {
	// Label is the Korean item name, trimmed.
	Label string `json:"label"`

	// Code is the numeric classification code. It is kept as text because
	// codes can exceed the int64 range and are only ever compared for equality.
	Code string `json:"code"`
}

// String renders the item the way announcements write it: label(code).
func (c CodedItem) String() string {
	return fmt.Sprintf("%s(%s)", c.Label, c.Code)
}

// ExtractedEntities is everything the entity extractor found in one document.
// Licenses and Items behave as sets; Licenses is kept in vocabulary order and
// Items in order of first appearance so that rendering is deterministic.
type ExtractedEntities struct {
	Licenses          []LicenseCategory `json:"licenses,omitempty"`
	Items             []CodedItem       `json:"items,omitempty"`
	ContractMethod    ContractMethod    `json:"contract_method"`
	SubmissionChannel SubmissionChannel `json:"submission_channel"`
}

// AddLicense inserts l, keeping vocabulary order and ignoring duplicates.
func (e *ExtractedEntities) AddLicense(l LicenseCategory) {
	if e.HasLicense(l) {
		return
	}
	i := 0
	for i < len(e.Licenses) && e.Licenses[i] < l {
		i++
	}
	e.Licenses = slices.Insert(e.Licenses, i, l)
}

// HasLicense reports whether l was extracted.
func (e *ExtractedEntities) HasLicense(l LicenseCategory) bool {
	return slices.Contains(e.Licenses, l)
}

// AddItem appends item unless an identical (label, code) pair is present.
func (e *ExtractedEntities) AddItem(item CodedItem) {
	for _, existing := range e.Items {
		if existing == item {
			return
		}
	}
	e.Items = append(e.Items, item)
}

// LicenseNames returns the Korean names of the extracted licenses.
func (e *ExtractedEntities) LicenseNames() []string {
	names := make([]string, len(e.Licenses))
	for i, l := range e.Licenses {
		names[i] = l.String()
	}
	return names
}

// ItemStrings returns the extracted items rendered as label(code).
func (e *ExtractedEntities) ItemStrings() []string {
	out := make([]string, len(e.Items))
	for i, item := range e.Items {
		out[i] = item.String()
	}
	return out
}

// IsEmpty reports whether nothing at all was extracted.
func (e *ExtractedEntities) IsEmpty() bool {
	return len(e.Licenses) == 0 && len(e.Items) == 0 &&
		!e.ContractMethod.Known() && !e.SubmissionChannel.Known()
}

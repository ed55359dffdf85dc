package model

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Document is the raw text of one announcement detail page.
// It is created once per announcement and never mutated; the pipeline only
// reads RawText.
type Document struct {
	// RawText is the page text as handed over by the retrieval layer.
	RawText string `json:"-"`

	// SourceURL identifies where the text came from. It is opaque to the pipeline.
	SourceURL string `json:"source_url"`
}

// NewDocument creates a Document.
func NewDocument(rawText, sourceURL string) Document {
	return Document{RawText: rawText, SourceURL: sourceURL}
}

// Empty reports whether the document carries no text at all.
func (d Document) Empty() bool {
	return d.RawText == ""
}

// Fingerprint returns the hex SHA3-256 digest of RawText.
// Two documents with identical text share a fingerprint regardless of SourceURL.
func (d Document) Fingerprint() string {
	sum := sha3.Sum256([]byte(d.RawText))
	return hex.EncodeToString(sum[:])
}

package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/bidscan/internal/model"
)

// ProposalKeyword is counted on a detail page to estimate how many
// proposals an announcement asks for.
const ProposalKeyword = "제안서"

// LoadDocument reads the document at path. Files ending in .html or .htm
// are treated as saved detail pages; anything else is read as plain text.
// The path becomes the document's SourceURL.
func LoadDocument(path string) (model.Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return model.Document{}, fmt.Errorf("failed to read document: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err := LoadHTML(bytes.NewReader(data))
		if err != nil {
			return model.Document{}, fmt.Errorf("failed to load %s: %w", path, err)
		}
		return model.NewDocument(text, path), nil
	default:
		return model.NewDocument(string(data), path), nil
	}
}

// CountProposals returns how often ProposalKeyword occurs in text.
func CountProposals(text string) int {
	return strings.Count(text, ProposalKeyword)
}

package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nao1215/bidscan/internal/model"
)

// ProposalCountPrefix labels the proposal count field of a listing line.
const ProposalCountPrefix = "제안서 수:"

const (
	fieldSeparator = "|"
	minFields      = 4
	maxLineSize    = 1024 * 1024
)

// ParseListing reads one announcement per line in the form
//
//	제안서 수: N | title | summary | url
//
// The count field may sit anywhere on the line; the remaining fields are
// title, summary and, last, the URL. Blank lines, lines with fewer than four
// fields and lines whose count is not an integer are skipped.
func ParseListing(r io.Reader) ([]model.Announcement, error) {
	var anns []model.Announcement

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		ann, ok := parseListingLine(scanner.Text())
		if ok {
			anns = append(anns, ann)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listing: %w", err)
	}

	return anns, nil
}

// ReadListingFile parses the listing file at path.
func ReadListingFile(path string) ([]model.Announcement, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to open listing: %w", err)
	}
	defer f.Close()

	return ParseListing(f)
}

func parseListingLine(line string) (model.Announcement, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return model.Announcement{}, false
	}

	parts := strings.Split(line, fieldSeparator)
	if len(parts) < minFields {
		return model.Announcement{}, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	countIdx := 0
	for i, p := range parts {
		if strings.HasPrefix(p, ProposalCountPrefix) {
			countIdx = i
			break
		}
	}

	count, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(parts[countIdx], ProposalCountPrefix)))
	if err != nil {
		return model.Announcement{}, false
	}

	rest := make([]string, 0, len(parts)-1)
	rest = append(rest, parts[:countIdx]...)
	rest = append(rest, parts[countIdx+1:]...)

	return model.Announcement{
		Title:                rest[0],
		ProposalCount:        count,
		QualificationSummary: strings.Join(rest[1:len(rest)-1], " "+fieldSeparator+" "),
		URL:                  rest[len(rest)-1],
	}, true
}

// FormatListingLine renders a as one listing line without a trailing
// newline. Line breaks are folded to spaces and the field separator is
// replaced so the line always parses back into the same four fields.
func FormatListingLine(a model.Announcement) string {
	return fmt.Sprintf("%s %d %s %s %s %s %s %s",
		ProposalCountPrefix, a.ProposalCount,
		fieldSeparator, listingField(a.Title),
		fieldSeparator, listingField(a.QualificationSummary),
		fieldSeparator, listingField(a.URL),
	)
}

// WriteListing writes one line per announcement.
func WriteListing(w io.Writer, anns []model.Announcement) error {
	for _, a := range anns {
		if _, err := fmt.Fprintln(w, FormatListingLine(a)); err != nil {
			return fmt.Errorf("failed to write listing: %w", err)
		}
	}
	return nil
}

func listingField(s string) string {
	s = strings.ReplaceAll(s, fieldSeparator, "/")
	return strings.Join(strings.Fields(s), " ")
}

package source

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/nao1215/bidscan/internal/model"
	"gopkg.in/yaml.v3"
)

// Roster file field names.
const (
	FieldLicenses       = "업종"
	FieldCertifiedItems = "직접생산확인서"
)

// ErrInvalidRoster is returned when the roster file is not a mapping of
// company names to profiles.
var ErrInvalidRoster = errors.New("roster must map company names to profiles")

// itemCodeRun matches a classification code inside a certified entry.
var itemCodeRun = regexp.MustCompile(`\d{10,}`)

// RosterOption configures roster loading.
type RosterOption func(*rosterLoader)

// WithRosterLogger sets the logger that receives warnings about malformed
// entries.
func WithRosterLogger(logger *slog.Logger) RosterOption {
	return func(l *rosterLoader) {
		l.logger = logger
	}
}

type rosterLoader struct {
	logger *slog.Logger
}

// LoadRoster reads a roster file. JSON and YAML are both accepted:
//
//	{"A사": {"업종": ["정보통신공사업"], "직접생산확인서": ["볼펜(1234567890123)"]}}
//
// Companies keep file order. A company whose profile has the wrong shape
// gets an empty profile and a warning instead of failing the load.
func LoadRoster(path string, opts ...RosterOption) (model.Roster, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	roster, err := ParseRoster(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster %s: %w", path, err)
	}
	return roster, nil
}

// ParseRoster parses roster data. See LoadRoster.
func ParseRoster(data []byte, opts ...RosterOption) (model.Roster, error) {
	l := &rosterLoader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return model.Roster{}, nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, ErrInvalidRoster
	}

	roster := make(model.Roster, 0, len(root.Content)/2)
	index := make(map[string]int, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := strings.TrimSpace(root.Content[i].Value)
		profile := l.profile(name, root.Content[i+1])

		if pos, ok := index[name]; ok {
			l.logger.Warn("duplicate company in roster, keeping last entry", "company", name)
			roster[pos].Profile = profile
			continue
		}
		index[name] = len(roster)
		roster = append(roster, model.Company{Name: name, Profile: profile})
	}

	return roster, nil
}

func (l *rosterLoader) profile(company string, node *yaml.Node) model.CompanyProfile {
	var p model.CompanyProfile
	if node.Kind != yaml.MappingNode {
		l.logger.Warn("company profile is not a mapping, using empty profile", "company", company)
		return p
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		switch key {
		case FieldLicenses:
			p.Licenses = l.entries(company, key, value)
		case FieldCertifiedItems:
			p.CertifiedItemCodes = certifiedCodes(l.entries(company, key, value))
		default:
			l.logger.Debug("ignoring unknown roster field", "company", company, "field", key)
		}
	}
	return p
}

// entries returns the trimmed scalar values of a sequence node.
func (l *rosterLoader) entries(company, field string, node *yaml.Node) []string {
	if node.Kind != yaml.SequenceNode {
		l.logger.Warn("roster field is not a list, ignoring it", "company", company, "field", field)
		return nil
	}

	out := make([]string, 0, len(node.Content))
	for _, n := range node.Content {
		if n.Kind != yaml.ScalarNode {
			l.logger.Warn("roster entry is not a scalar, skipping it", "company", company, "field", field)
			continue
		}
		if v := strings.TrimSpace(n.Value); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// certifiedCodes reduces certified entries such as "볼펜(1234567890123)" to
// their classification codes. Entries without a code are kept as written.
func certifiedCodes(entries []string) []string {
	var codes []string
	for _, e := range entries {
		found := itemCodeRun.FindAllString(e, -1)
		if len(found) == 0 {
			codes = append(codes, e)
			continue
		}
		codes = append(codes, found...)
	}
	return codes
}

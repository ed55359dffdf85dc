package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "bidscan"

	// DefaultBatchSize is the number of announcements analyzed concurrently.
	// Analysis is CPU-bound, so a small pool is enough.
	DefaultBatchSize = 4

	// DefaultLicenseWeight is the score for each matching license category.
	DefaultLicenseWeight = 1

	// DefaultItemWeight is the score for each certified item code.
	DefaultItemWeight = 2

	// DefaultSuitableMin is the lowest score classified as suitable.
	DefaultSuitableMin = 2

	// DefaultReviewMin is the lowest score classified as needs-review.
	DefaultReviewMin = 1

	// DefaultHighCompetitionThreshold is the proposal count above which an
	// announcement is not analyzed.
	DefaultHighCompetitionThreshold = 8

	// DefaultImageCaseMarker is the qualification summary the crawler writes
	// for image-only notices.
	DefaultImageCaseMarker = "이미지 건"
)

// Scoring holds the suitability weights and thresholds.
type Scoring struct {
	LicenseWeight int
	ItemWeight    int
	SuitableMin   int
	ReviewMin     int
}

// Assembly holds the short-circuit rules applied before analysis.
type Assembly struct {
	// HighCompetitionThreshold is the proposal count above which an
	// announcement is not analyzed.
	HighCompetitionThreshold int

	// ImageCaseMarker is the qualification summary of image-only notices.
	ImageCaseMarker string
}

// Config holds all options of an analyze run. It is built once from
// defaults, the config file and CLI flags, then passed down explicitly.
type Config struct {
	// ListingFile is the announcement listing (results.txt).
	ListingFile string

	// DumpFile is the scraped detail page dump. When empty every analyzed
	// announcement is reported as having no content.
	DumpFile string

	// ProfilesFile is the company roster file. When empty the roster is
	// read from the profile database.
	ProfilesFile string

	// DBDir is the directory of the profile database.
	// Defaults to the XDG data directory.
	DBDir string

	Scoring  Scoring
	Assembly Assembly

	// BatchSize is the number of announcements analyzed concurrently.
	BatchSize int

	// Verbose enables debug logging.
	Verbose bool

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ShowEligibility adds the eligibility section to the text report.
	ShowEligibility bool

	// ReportFile is the output path. Empty means stdout.
	ReportFile string

	// ConfigFilePath is the config file that was applied, if any.
	ConfigFilePath string
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		DBDir: XDGDataDir(),
		Scoring: Scoring{
			LicenseWeight: DefaultLicenseWeight,
			ItemWeight:    DefaultItemWeight,
			SuitableMin:   DefaultSuitableMin,
			ReviewMin:     DefaultReviewMin,
		},
		Assembly: Assembly{
			HighCompetitionThreshold: DefaultHighCompetitionThreshold,
			ImageCaseMarker:          DefaultImageCaseMarker,
		},
		BatchSize: DefaultBatchSize,
	}
}

// XDGDataDir returns the XDG data directory for bidscan.
// On Linux: ~/.local/share/bidscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for bidscan.
// On Linux: ~/.config/bidscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if c.ListingFile == "" {
		return ErrNoListing
	}

	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.Scoring.LicenseWeight < 0 || c.Scoring.ItemWeight < 0 {
		return ErrInvalidWeight
	}

	// A zero review threshold would put companies without any match up for review.
	if c.Scoring.ReviewMin <= 0 || c.Scoring.SuitableMin < c.Scoring.ReviewMin {
		return ErrInvalidThreshold
	}

	if c.Assembly.HighCompetitionThreshold < 0 {
		return ErrInvalidThreshold
	}

	return nil
}

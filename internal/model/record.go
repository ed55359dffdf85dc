package model

// Announcement is the per-announcement metadata supplied by the listing.
type Announcement struct {
	// Title is the announcement title or search keyword.
	Title string `json:"title"`

	// ProposalCount is how often the proposal keyword appeared on the detail page.
	ProposalCount int `json:"proposal_count"`

	// QualificationSummary is the eligibility text captured at listing time,
	// or the image-case marker when none could be read.
	QualificationSummary string `json:"qualification_summary"`

	// URL identifies the detail page and keys the fetched content.
	URL string `json:"url"`
}

// Outcome says how far an announcement got through report assembly.
type Outcome int

const (
	// OutcomeAnalyzed means the full pipeline ran.
	OutcomeAnalyzed Outcome = iota

	// OutcomeImageCase means the notice is published as an image only.
	OutcomeImageCase

	// OutcomeHighCompetition means too many proposals to be worth analyzing.
	OutcomeHighCompetition

	// OutcomeNoContent means the fetched content was missing or unusable.
	OutcomeNoContent
)

// String returns the Korean marker printed for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAnalyzed:
		return "분석 완료"
	case OutcomeImageCase:
		return "이미지 건"
	case OutcomeHighCompetition:
		return "제안서 건"
	case OutcomeNoContent:
		return "콘텐츠 없음"
	default:
		return "UNKNOWN"
	}
}

// Label returns a stable ASCII identifier.
func (o Outcome) Label() string {
	switch o {
	case OutcomeAnalyzed:
		return "analyzed"
	case OutcomeImageCase:
		return "image-case"
	case OutcomeHighCompetition:
		return "high-competition"
	case OutcomeNoContent:
		return "no-content"
	default:
		return "unknown"
	}
}

// Skipped reports whether extraction was short-circuited.
func (o Outcome) Skipped() bool {
	return o != OutcomeAnalyzed
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.Label()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	v, err := parseLabel("outcome", text,
		OutcomeAnalyzed, OutcomeImageCase, OutcomeHighCompetition, OutcomeNoContent)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// AnnouncementRecord is the assembled result for one announcement. It is
// built once during report assembly and then rendered.
type AnnouncementRecord struct {
	Announcement

	// Outcome tells whether the analysis ran or which short-circuit applied.
	Outcome Outcome `json:"outcome"`

	// Eligibility is the extracted participation eligibility clause, empty if absent.
	Eligibility string `json:"eligibility,omitempty"`

	// DocumentFingerprint identifies the analyzed text.
	DocumentFingerprint string `json:"document_fingerprint,omitempty"`

	// Entities is the extraction result. Zero when Outcome is a short-circuit.
	Entities ExtractedEntities `json:"entities"`

	// Verdicts holds one verdict per roster company. Nil when skipped.
	Verdicts SuitabilityVerdict `json:"verdicts,omitempty"`
}

// NewSkippedRecord creates a record for a short-circuited announcement.
func NewSkippedRecord(a Announcement, outcome Outcome) AnnouncementRecord {
	return AnnouncementRecord{Announcement: a, Outcome: outcome}
}

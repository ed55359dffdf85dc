package model

// Verdict classifies a company's fitness to bid on one announcement.
// Values are ordered so that a larger Verdict is a better fit.
type Verdict int

const (
	// VerdictUnsuitable means nothing in the announcement matched the company.
	VerdictUnsuitable Verdict = iota

	// VerdictNeedsReview means a weak match that a person should look at.
	VerdictNeedsReview

	// VerdictSuitable means the company matched strongly enough to bid.
	VerdictSuitable
)

// String returns the Korean rendering used in reports.
func (v Verdict) String() string {
	switch v {
	case VerdictUnsuitable:
		return "부적합"
	case VerdictNeedsReview:
		return "검토필요"
	case VerdictSuitable:
		return "적합"
	default:
		return "UNKNOWN"
	}
}

// Label returns a stable ASCII identifier.
func (v Verdict) Label() string {
	switch v {
	case VerdictUnsuitable:
		return "unsuitable"
	case VerdictNeedsReview:
		return "needs-review"
	case VerdictSuitable:
		return "suitable"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.Label()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Verdict) UnmarshalText(text []byte) error {
	parsed, err := parseLabel("verdict", text,
		VerdictUnsuitable, VerdictNeedsReview, VerdictSuitable)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// CompanyVerdict is the scored result for one roster company.
type CompanyVerdict struct {
	// Company is the roster name.
	Company string `json:"company"`

	// Score is the raw weighted match count.
	Score int `json:"score"`

	// Verdict is the classification derived from Score.
	Verdict Verdict `json:"verdict"`
}

// SuitabilityVerdict holds one CompanyVerdict per roster company, in roster order.
type SuitabilityVerdict []CompanyVerdict

// Candidates returns the companies that are not unsuitable, in roster order.
func (sv SuitabilityVerdict) Candidates() []CompanyVerdict {
	out := make([]CompanyVerdict, 0, len(sv))
	for _, cv := range sv {
		if cv.Verdict != VerdictUnsuitable {
			out = append(out, cv)
		}
	}
	return out
}

// VerdictCounts tallies verdicts across announcements or companies.
type VerdictCounts struct {
	Suitable    int `json:"suitable"`
	NeedsReview int `json:"needs_review"`
	Unsuitable  int `json:"unsuitable"`
}

// Add counts every verdict in sv.
func (c *VerdictCounts) Add(sv SuitabilityVerdict) {
	for _, cv := range sv {
		switch cv.Verdict {
		case VerdictSuitable:
			c.Suitable++
		case VerdictNeedsReview:
			c.NeedsReview++
		default:
			c.Unsuitable++
		}
	}
}

// Total returns the number of counted verdicts.
func (c VerdictCounts) Total() int {
	return c.Suitable + c.NeedsReview + c.Unsuitable
}

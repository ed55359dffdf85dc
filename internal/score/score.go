// Package score rates how well each roster company fits an announcement.
//
// A company earns LicenseWeight for every required license category it holds
// and ItemWeight for every coded item it holds a production certificate for.
// The total is then bucketed into suitable, needs-review or unsuitable.
package score

import (
	"strings"

	"github.com/nao1215/bidscan/internal/model"
)

// Default weights and thresholds. A certified item code is a stronger
// signal than a matching license, so it weighs double.
const (
	// DefaultLicenseWeight is added per matching license category.
	DefaultLicenseWeight = 1

	// DefaultItemWeight is added per matching certified item code.
	DefaultItemWeight = 2

	// DefaultSuitableMin is the lowest score classified as suitable.
	DefaultSuitableMin = 2

	// DefaultReviewMin is the lowest score classified as needs-review.
	DefaultReviewMin = 1
)

// Weights are the points awarded per match.
type Weights struct {
	License int
	Item    int
}

// Thresholds are the minimum scores for each verdict above unsuitable.
type Thresholds struct {
	Suitable int
	Review   int
}

// Scorer computes suitability verdicts. It holds no mutable state and is
// safe for concurrent use.
type Scorer struct {
	weights    Weights
	thresholds Thresholds
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithWeights overrides the per-match weights.
func WithWeights(w Weights) Option {
	return func(s *Scorer) {
		s.weights = w
	}
}

// WithThresholds overrides the verdict thresholds.
func WithThresholds(t Thresholds) Option {
	return func(s *Scorer) {
		s.thresholds = t
	}
}

// New creates a Scorer with the default weights and thresholds.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		weights:    Weights{License: DefaultLicenseWeight, Item: DefaultItemWeight},
		thresholds: Thresholds{Suitable: DefaultSuitableMin, Review: DefaultReviewMin},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score returns one verdict per roster company, in roster order.
func (s *Scorer) Score(e model.ExtractedEntities, roster model.Roster) model.SuitabilityVerdict {
	out := make(model.SuitabilityVerdict, 0, len(roster))
	for _, c := range roster {
		points := s.ScoreCompany(e, c.Profile)
		out = append(out, model.CompanyVerdict{
			Company: c.Name,
			Score:   points,
			Verdict: s.Classify(points),
		})
	}
	return out
}

// ScoreCompany returns the raw score of one profile. An empty or incomplete
// profile scores zero.
func (s *Scorer) ScoreCompany(e model.ExtractedEntities, p model.CompanyProfile) int {
	points := 0

	licenseText := p.LicenseText()
	for _, l := range e.Licenses {
		if strings.Contains(licenseText, l.String()) {
			points += s.weights.License
		}
	}

	for _, item := range e.Items {
		if p.HasItemCode(item.Code) {
			points += s.weights.Item
		}
	}

	return points
}

// Classify buckets a raw score.
func (s *Scorer) Classify(points int) model.Verdict {
	switch {
	case points >= s.thresholds.Suitable:
		return model.VerdictSuitable
	case points >= s.thresholds.Review:
		return model.VerdictNeedsReview
	default:
		return model.VerdictUnsuitable
	}
}

var defaultScorer = New()

// Score scores e against roster with the default weights and thresholds.
func Score(e model.ExtractedEntities, roster model.Roster) model.SuitabilityVerdict {
	return defaultScorer.Score(e, roster)
}

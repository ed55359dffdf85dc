package report

import "github.com/nao1215/bidscan/internal/model"

// Summary counts outcomes and company verdicts across a batch.
type Summary struct {
	Total           int                 `json:"total"`
	Analyzed        int                 `json:"analyzed"`
	ImageCase       int                 `json:"image_case"`
	HighCompetition int                 `json:"high_competition"`
	NoContent       int                 `json:"no_content"`
	Verdicts        model.VerdictCounts `json:"verdicts"`
}

// NewSummary tallies records.
func NewSummary(records []model.AnnouncementRecord) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		switch r.Outcome {
		case model.OutcomeAnalyzed:
			s.Analyzed++
		case model.OutcomeImageCase:
			s.ImageCase++
		case model.OutcomeHighCompetition:
			s.HighCompetition++
		case model.OutcomeNoContent:
			s.NoContent++
		}
		s.Verdicts.Add(r.Verdicts)
	}
	return s
}

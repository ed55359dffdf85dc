package pipeline

import (
	"context"

	"github.com/nao1215/bidscan/internal/extract"
	"github.com/nao1215/bidscan/internal/model"
	"github.com/nao1215/bidscan/internal/normalize"
	"github.com/nao1215/bidscan/internal/score"
	"github.com/nao1215/bidscan/internal/section"
)

// Step names, in the order NewAnalysisPipeline runs them.
const (
	StepNormalize = "normalize"
	StepSection   = "section"
	StepEntities  = "entities"
	StepScore     = "score"
)

// NormalizeStep fills Analysis.Normalized.
type NormalizeStep struct{}

// NewNormalizeStep creates a NormalizeStep.
func NewNormalizeStep() *NormalizeStep {
	return &NormalizeStep{}
}

// Name returns the step name.
func (s *NormalizeStep) Name() string {
	return StepNormalize
}

// Do executes the step.
func (s *NormalizeStep) Do(_ context.Context, a *Analysis) error {
	a.Normalized = normalize.Normalize(a.Document.RawText)
	return nil
}

// SectionStep fills Analysis.Eligibility from the normalized text.
type SectionStep struct {
	extractor *section.Extractor
}

// NewSectionStep creates a SectionStep. A nil extractor uses the default
// heading detectors.
func NewSectionStep(extractor *section.Extractor) *SectionStep {
	if extractor == nil {
		extractor = section.NewExtractor()
	}
	return &SectionStep{extractor: extractor}
}

// Name returns the step name.
func (s *SectionStep) Name() string {
	return StepSection
}

// Do executes the step.
func (s *SectionStep) Do(_ context.Context, a *Analysis) error {
	a.Eligibility = s.extractor.Extract(a.Normalized)
	return nil
}

// EntityStep fills Analysis.Entities. It reads the raw text so that
// extraction does not depend on the normalizer.
type EntityStep struct{}

// NewEntityStep creates an EntityStep.
func NewEntityStep() *EntityStep {
	return &EntityStep{}
}

// Name returns the step name.
func (s *EntityStep) Name() string {
	return StepEntities
}

// Do executes the step.
func (s *EntityStep) Do(_ context.Context, a *Analysis) error {
	a.Entities = extract.Extract(a.Document.RawText)
	return nil
}

// ScoreStep fills Analysis.Verdicts by scoring the entities against a roster.
type ScoreStep struct {
	scorer *score.Scorer
	roster model.Roster
}

// NewScoreStep creates a ScoreStep. A nil scorer uses the default weights.
func NewScoreStep(scorer *score.Scorer, roster model.Roster) *ScoreStep {
	if scorer == nil {
		scorer = score.New()
	}
	return &ScoreStep{scorer: scorer, roster: roster}
}

// Name returns the step name.
func (s *ScoreStep) Name() string {
	return StepScore
}

// Do executes the step.
func (s *ScoreStep) Do(_ context.Context, a *Analysis) error {
	a.Verdicts = s.scorer.Score(a.Entities, s.roster)
	return nil
}

// NewAnalysisPipeline builds the standard analysis:
// normalize, section, entities, score.
func NewAnalysisPipeline(scorer *score.Scorer, roster model.Roster, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewNormalizeStep(),
		NewSectionStep(nil),
		NewEntityStep(),
		NewScoreStep(scorer, roster),
	)
	return p
}

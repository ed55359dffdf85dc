package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nao1215/bidscan/internal/model"
	"github.com/nao1215/bidscan/internal/score"
)

const (
	// DefaultHighCompetitionThreshold is the proposal count above which an
	// announcement is reported as crowded without analysis.
	DefaultHighCompetitionThreshold = 8

	// DefaultImageCaseMarker is the qualification summary recorded for
	// notices published only as images.
	DefaultImageCaseMarker = "이미지 건"
)

// notFoundMarkers appear in fetched content when the detail page had no
// readable notice.
var notFoundMarkers = []string{
	"공고문을 찾을수 없습니다",
	"[CONTENT NOT FOUND]",
}

// Assembler builds one AnnouncementRecord per announcement. It is safe for
// concurrent use: every call gets a fresh analysis pipeline.
type Assembler struct {
	roster    model.Roster
	scorer    *score.Scorer
	threshold int
	marker    string
	logger    *slog.Logger
}

// AssemblerOption configures an Assembler.
type AssemblerOption func(*Assembler)

// WithScorer sets the scorer used by the score step.
func WithScorer(s *score.Scorer) AssemblerOption {
	return func(a *Assembler) {
		a.scorer = s
	}
}

// WithHighCompetitionThreshold sets the proposal count above which analysis
// is skipped.
func WithHighCompetitionThreshold(n int) AssemblerOption {
	return func(a *Assembler) {
		a.threshold = n
	}
}

// WithImageCaseMarker sets the summary value that marks an image-only notice.
// An empty marker is ignored.
func WithImageCaseMarker(marker string) AssemblerOption {
	return func(a *Assembler) {
		if marker != "" {
			a.marker = marker
		}
	}
}

// WithAssemblerLogger sets a custom logger.
func WithAssemblerLogger(logger *slog.Logger) AssemblerOption {
	return func(a *Assembler) {
		a.logger = logger
	}
}

// NewAssembler creates an Assembler that scores against roster.
func NewAssembler(roster model.Roster, opts ...AssemblerOption) *Assembler {
	a := &Assembler{
		roster:    roster,
		threshold: DefaultHighCompetitionThreshold,
		marker:    DefaultImageCaseMarker,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.scorer == nil {
		a.scorer = score.New()
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}

	return a
}

// Classify decides whether an announcement is analyzed or short-circuited.
// The checks run in order: image case, high competition, missing content.
func (a *Assembler) Classify(ann model.Announcement, doc model.Document) model.Outcome {
	switch {
	case strings.TrimSpace(ann.QualificationSummary) == a.marker:
		return model.OutcomeImageCase
	case ann.ProposalCount > a.threshold:
		return model.OutcomeHighCompetition
	case !HasContent(doc.RawText):
		return model.OutcomeNoContent
	default:
		return model.OutcomeAnalyzed
	}
}

// Assemble produces the record for one announcement. It only fails when ctx
// is cancelled during analysis.
func (a *Assembler) Assemble(ctx context.Context, ann model.Announcement, doc model.Document) (model.AnnouncementRecord, error) {
	outcome := a.Classify(ann, doc)
	if outcome.Skipped() {
		a.logger.Debug("analysis skipped",
			"title", ann.Title,
			"outcome", outcome.Label(),
		)
		return model.NewSkippedRecord(ann, outcome), nil
	}

	analysis := NewAnalysis(doc)
	p := NewAnalysisPipeline(a.scorer, a.roster, WithLogger(a.logger))
	if err := p.Execute(ctx, analysis); err != nil {
		return model.NewSkippedRecord(ann, model.OutcomeNoContent), fmt.Errorf("failed to analyze %q: %w", ann.Title, err)
	}

	fingerprint := doc.Fingerprint()
	a.logger.Debug("announcement analyzed",
		"title", ann.Title,
		"fingerprint", fingerprint,
		"licenses", len(analysis.Entities.Licenses),
		"items", len(analysis.Entities.Items),
	)

	return model.AnnouncementRecord{
		Announcement:        ann,
		Outcome:             model.OutcomeAnalyzed,
		Eligibility:         analysis.Eligibility,
		DocumentFingerprint: fingerprint,
		Entities:            analysis.Entities,
		Verdicts:            analysis.Verdicts,
	}, nil
}

// HasContent reports whether fetched text holds a readable notice. Blank
// text, a not-found marker, and a lone PDF reference all count as no content.
func HasContent(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	for _, m := range notFoundMarkers {
		if strings.Contains(trimmed, m) {
			return false
		}
	}
	if !strings.Contains(trimmed, "\n") && strings.Contains(strings.ToLower(trimmed), "pdf") {
		return false
	}
	return true
}

package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/bidscan/internal/model"
)

// Analysis carries one document through the analysis steps. Each step reads
// what earlier steps wrote and fills in its own field.
type Analysis struct {
	// Document is the input text. Steps never modify it.
	Document model.Document

	// Normalized is the canonical form of Document.RawText.
	Normalized string

	// Eligibility is the participation eligibility section, empty if absent.
	Eligibility string

	// Entities is what the extractor found in the raw text.
	Entities model.ExtractedEntities

	// Verdicts holds one verdict per roster company.
	Verdicts model.SuitabilityVerdict

	// PerformedSteps lists the names of completed steps in order.
	PerformedSteps []string
}

// NewAnalysis creates an Analysis for doc.
func NewAnalysis(doc model.Document) *Analysis {
	return &Analysis{Document: doc}
}

// Step is one stage of the analysis.
type Step interface {
	// Do executes the step against a. Analysis steps are pure text
	// transformations; an error means the step could not run at all.
	Do(ctx context.Context, a *Analysis) error

	// Name returns the step's name for logging.
	Name() string
}

// Pipeline runs Steps in the order they were added.
type Pipeline struct {
	steps []Step

	logger *slog.Logger

	// continueOnError keeps running later steps after one fails.
	continueOnError bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError makes the pipeline run the remaining steps after one
// fails. The first error is still returned.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates an empty Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence. Cancellation is checked between steps
// only; a step that has started always finishes.
func (p *Pipeline) Execute(ctx context.Context, a *Analysis) error {
	var firstErr error

	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("analysis cancelled",
				"step", step.Name(),
				"source", a.Document.SourceURL,
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"source", a.Document.SourceURL,
		)

		if err := step.Do(ctx, a); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"source", a.Document.SourceURL,
				"error", err,
			)
			if !p.continueOnError {
				return err
			}
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		a.PerformedSteps = append(a.PerformedSteps, step.Name())
	}

	return firstErr
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}

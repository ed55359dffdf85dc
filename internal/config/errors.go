package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrNoListing is returned when no announcement listing is given.
	ErrNoListing = errors.New("no listing specified: use --results")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidWeight is returned when a scoring weight is negative.
	ErrInvalidWeight = errors.New("invalid scoring weight: must be non-negative")

	// ErrInvalidThreshold is returned when the review threshold is not
	// positive, exceeds the suitable threshold, or the high-competition
	// threshold is negative.
	ErrInvalidThreshold = errors.New("invalid threshold: need 0 < reviewMin <= suitableMin and a non-negative highCompetitionThreshold")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)

// Package config holds the settings of a bidscan run: input files, scoring
// weights and thresholds, short-circuit rules, concurrency and report format.
// Defaults come from NewConfig, an optional .bidscan YAML file overrides
// them, and command-line flags override both.
package config

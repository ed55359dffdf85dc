// Package pattern provides the small matcher objects the analysis pipeline is
// built from.
//
// Normalization rules, section heading detectors and entity matchers are all
// ordered slices of these values. Adding a new phrase variant means appending
// a matcher to a slice; the code that walks the slice does not change.
package pattern

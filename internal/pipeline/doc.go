// Package pipeline turns one announcement and its document text into an
// assembled record.
//
// The analysis itself is a list of Steps run in order over an Analysis:
// normalization, eligibility section extraction, entity extraction and
// scoring. The Assembler decides first whether the analysis runs at all
// (image-only notices, crowded tenders and missing content are reported
// without it), and the BatchProcessor fans announcements out with bounded
// concurrency while keeping results in input order.
package pipeline

// Package database provides SQLite-based storage for company rosters.
//
// A roster is imported once from a company_info file and then reused by
// every analysis run without re-reading the file. Only the roster lives
// here; analysis results are never persisted.
//
// The store uses modernc.org/sqlite, a CGO-free driver, so the binary stays
// a single static file.
package database

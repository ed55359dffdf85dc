// Package model defines the data shared by the announcement analysis pipeline.
//
// The main types are:
//   - Document: raw announcement text plus its source identifier
//   - ExtractedEntities: licenses, coded items, contract method and submission channel
//   - Roster / CompanyProfile: the companies announcements are scored against
//   - SuitabilityVerdict: one Verdict per roster company
//   - AnnouncementRecord: the assembled per-announcement report entry
//
// Closed vocabularies (LicenseCategory, ContractMethod, SubmissionChannel,
// Verdict, Outcome) are integer enums. Their Korean spelling only appears at
// the matching and rendering boundaries via String, and Label gives a stable
// ASCII form for JSON output.
package model

// Package main provides the entry point for the bidscan CLI.
//
// bidscan analyzes public tender announcements. It extracts the participation
// eligibility clause, required licenses, coded line items, contract method
// and submission channel, then scores every company in a roster for
// suitability and writes a digest.
//
// Usage:
//
//	bidscan analyze --results results.txt --dump scraped.txt --profiles company_info.json
//	bidscan extract notice.html
//
// See --help for all available options.
package main

// main is the entry point for bidscan.
func main() {
	Execute()
}

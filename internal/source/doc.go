// Package source reads the local files that feed the analysis: the
// announcement listing, the scraped detail-page dump, saved detail pages
// and the company roster.
//
// Nothing here touches the network. Fetching pages is done by other tools;
// this package only parses what they left on disk.
package source

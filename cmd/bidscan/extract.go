package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/bidscan/internal/model"
	"github.com/nao1215/bidscan/internal/normalize"
	"github.com/nao1215/bidscan/internal/pipeline"
	"github.com/nao1215/bidscan/internal/section"
	"github.com/nao1215/bidscan/internal/source"
	"github.com/spf13/cobra"
)

// NewExtractCmd creates the extract command.
func NewExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract FILE...",
		Short: "Build listing lines from saved detail pages",
		Long: `Extract reads saved announcement detail pages (HTML or plain text) and
prints one listing line per file, ready to be used with "bidscan analyze".

For each file the proposal count is the number of times 제안서 appears,
and the summary is the participation eligibility section. Files without an
eligibility section are marked as image cases.

With --dump the text of every page is also written as a dump keyed by the
file path, so both outputs can be passed to "bidscan analyze".

Examples:
  bidscan extract notice1.html notice2.html > results.txt
  bidscan extract --dump scraped.txt notice*.html > results.txt
  bidscan analyze -r results.txt -d scraped.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: runExtractCmd,
	}

	cmd.Flags().String("marker", pipeline.DefaultImageCaseMarker,
		"Summary written when no eligibility section is found")
	cmd.Flags().String("dump", "",
		"Also write the page texts to this dump file")

	return cmd
}

// runExtractCmd executes the extract command.
func runExtractCmd(cmd *cobra.Command, args []string) error {
	marker, err := cmd.Flags().GetString("marker")
	if err != nil {
		return err
	}

	dumpPath, err := cmd.Flags().GetString("dump")
	if err != nil {
		return err
	}

	announcements := make([]model.Announcement, 0, len(args))
	docs := make([]model.Document, 0, len(args))
	for _, path := range args {
		doc, err := source.LoadDocument(path)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		announcements = append(announcements, extractAnnouncement(doc, marker))
	}

	if dumpPath != "" {
		if err := writeDump(dumpPath, docs); err != nil {
			return err
		}
	}

	return source.WriteListing(cmd.OutOrStdout(), announcements)
}

// writeDump writes the loaded page texts keyed by their source path.
func writeDump(path string, docs []model.Document) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create dump file: %w", err)
	}
	defer f.Close()

	for _, doc := range docs {
		if err := source.WriteDumpBlock(f, doc.SourceURL, doc.RawText); err != nil {
			return err
		}
	}
	return f.Close()
}

// extractAnnouncement builds the listing entry of one saved detail page.
func extractAnnouncement(doc model.Document, marker string) model.Announcement {
	summary := section.ExtractEligibility(normalize.Normalize(doc.RawText))
	if summary == "" {
		summary = marker
	}

	base := filepath.Base(doc.SourceURL)
	return model.Announcement{
		Title:                strings.TrimSuffix(base, filepath.Ext(base)),
		ProposalCount:        source.CountProposals(doc.RawText),
		QualificationSummary: summary,
		URL:                  doc.SourceURL,
	}
}

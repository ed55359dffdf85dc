package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/bidscan/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// NothingExtracted notes an analyzed announcement whose text yielded no
// licenses, items, contract method or submission channel.
const NothingExtracted = "공고 본문에서 추출된 항목이 없습니다."

// MarkdownWriter outputs records as a Markdown document: a summary table,
// a verdict pie chart and one section per announcement.
type MarkdownWriter struct {
	baseWriter

	title string
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithTitle sets the document heading.
func WithTitle(title string) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		if title != "" {
			w.title = title
		}
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		title:      "입찰 공고 분석",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the records as one Markdown document.
func (w *MarkdownWriter) Write(records []model.AnnouncementRecord) (int, error) {
	md := markdown.NewMarkdown(w.output)
	summary := NewSummary(records)

	w.writeHeader(md, summary)

	for _, r := range records {
		w.writeRecord(md, r)
	}

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, s Summary) {
	md.H1(w.title)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"항목", "건수"},
		Rows: [][]string{
			{"공고", strconv.Itoa(s.Total)},
			{model.OutcomeAnalyzed.String(), strconv.Itoa(s.Analyzed)},
			{model.OutcomeImageCase.String(), strconv.Itoa(s.ImageCase)},
			{model.OutcomeHighCompetition.String(), strconv.Itoa(s.HighCompetition)},
			{model.OutcomeNoContent.String(), strconv.Itoa(s.NoContent)},
		},
	})
	md.PlainText("")

	if s.Verdicts.Total() > 0 {
		w.writePieChart(md, s.Verdicts)
	}
}

// writePieChart writes a mermaid pie chart of company verdicts.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, c model.VerdictCounts) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("업체 적합성 분포"),
		piechart.WithShowData(true),
	)

	if c.Suitable > 0 {
		chart.LabelAndIntValue(model.VerdictSuitable.String(), uint64(c.Suitable))
	}
	if c.NeedsReview > 0 {
		chart.LabelAndIntValue(model.VerdictNeedsReview.String(), uint64(c.NeedsReview))
	}
	if c.Unsuitable > 0 {
		chart.LabelAndIntValue(model.VerdictUnsuitable.String(), uint64(c.Unsuitable))
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeRecord(md *markdown.Markdown, r model.AnnouncementRecord) {
	title := r.Title
	if title == "" {
		title = "(제목 없음)"
	}
	md.H2(title)
	md.PlainText("")

	if r.URL != "" {
		md.PlainTextf("<%s>", r.URL)
		md.PlainText("")
	}

	switch r.Outcome {
	case model.OutcomeImageCase:
		md.Note(r.Outcome.String() + ": 공고문이 이미지로만 게시되어 분석하지 않았습니다.")
		md.PlainText("")
		return
	case model.OutcomeHighCompetition:
		md.Warningf("%s: 제안서 언급 %d회로 분석을 생략했습니다.", r.Outcome, r.ProposalCount)
		md.PlainText("")
		return
	case model.OutcomeNoContent:
		md.Cautionf("%s: 공고 본문을 찾지 못했습니다.", r.Outcome)
		md.PlainText("")
		return
	}

	if r.Entities.IsEmpty() {
		md.Note(NothingExtracted)
		md.PlainText("")
	}

	md.Table(markdown.TableSet{
		Header: []string{"항목", "내용"},
		Rows: [][]string{
			{"적합성", SuitabilityText(r.Verdicts)},
			{"자격", orDash(strings.Join(r.Entities.LicenseNames(), ", "))},
			{"물품", orDash(strings.Join(r.Entities.ItemStrings(), ", "))},
			{"유형", orDash(knownOrEmpty(r.Entities.ContractMethod.Known(), r.Entities.ContractMethod.String()))},
			{"제출", orDash(knownOrEmpty(r.Entities.SubmissionChannel.Known(), r.Entities.SubmissionChannel.String()))},
		},
	})
	md.PlainText("")

	if len(r.Verdicts) > 0 {
		rows := make([][]string, len(r.Verdicts))
		for i, cv := range r.Verdicts {
			rows[i] = []string{cv.Company, strconv.Itoa(cv.Score), cv.Verdict.String()}
		}
		md.Table(markdown.TableSet{
			Header: []string{"업체", "점수", "판정"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if r.Eligibility != "" {
		md.Details("참가자격", r.Eligibility)
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by bidscan*")
}

func knownOrEmpty(known bool, s string) string {
	if !known {
		return ""
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/bidscan/internal/model"
)

// NoSuitableCompany is printed when every company is unsuitable.
const NoSuitableCompany = "적합 업체 없음"

// SimpleWriter outputs the plain text digest:
//
//	**[title]**
//	*   **적합성:** A(적합), B(검토필요)
//	*   **자격:** 정보통신공사업
//	*   **물품:** 볼펜(1234567890123)
//	*   **유형:** 협상에 의한 계약
//	*   **제출:** 전자입찰
//
// Short-circuited announcements get a single "- <marker>" line instead.
// Entries are separated by one blank line.
type SimpleWriter struct {
	baseWriter

	// showEligibility appends the eligibility section to analyzed entries.
	showEligibility bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithEligibility appends the extracted eligibility section to each
// analyzed entry.
func WithEligibility(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEligibility = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs every record.
func (w *SimpleWriter) Write(records []model.AnnouncementRecord) (int, error) {
	var sb strings.Builder

	for i, r := range records {
		if i > 0 {
			sb.WriteString("\n")
		}
		w.writeEntry(&sb, r)
	}

	return io.WriteString(w.output, sb.String())
}

func (w *SimpleWriter) writeEntry(sb *strings.Builder, r model.AnnouncementRecord) {
	fmt.Fprintf(sb, "**[%s]**\n", r.Title)

	if r.Outcome.Skipped() {
		fmt.Fprintf(sb, "- %s\n", r.Outcome)
		return
	}

	writeField(sb, "적합성", SuitabilityText(r.Verdicts))
	if len(r.Entities.Licenses) > 0 {
		writeField(sb, "자격", strings.Join(r.Entities.LicenseNames(), ", "))
	}
	if len(r.Entities.Items) > 0 {
		writeField(sb, "물품", strings.Join(r.Entities.ItemStrings(), ", "))
	}
	if r.Entities.ContractMethod.Known() {
		writeField(sb, "유형", r.Entities.ContractMethod.String())
	}
	if r.Entities.SubmissionChannel.Known() {
		writeField(sb, "제출", r.Entities.SubmissionChannel.String())
	}

	if w.showEligibility && r.Eligibility != "" {
		writeField(sb, "참가자격", "")
		for _, line := range strings.Split(r.Eligibility, "\n") {
			fmt.Fprintf(sb, "    %s\n", line)
		}
	}
}

func writeField(sb *strings.Builder, label, value string) {
	if value == "" {
		fmt.Fprintf(sb, "*   **%s:**\n", label)
		return
	}
	fmt.Fprintf(sb, "*   **%s:** %s\n", label, value)
}

// SuitabilityText lists the companies that are not unsuitable as
// "name(verdict)" in roster order, or NoSuitableCompany.
func SuitabilityText(sv model.SuitabilityVerdict) string {
	candidates := sv.Candidates()
	if len(candidates) == 0 {
		return NoSuitableCompany
	}

	parts := make([]string, len(candidates))
	for i, cv := range candidates {
		parts[i] = fmt.Sprintf("%s(%s)", cv.Company, cv.Verdict)
	}
	return strings.Join(parts, ", ")
}

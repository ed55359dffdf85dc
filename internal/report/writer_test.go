package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/nao1215/bidscan/internal/model"
)

// createTestRecords returns one analyzed record and one record per
// short-circuit outcome.
func createTestRecords() []model.AnnouncementRecord {
	analyzed := model.AnnouncementRecord{
		Announcement: model.Announcement{
			Title:         "정보통신 공사",
			ProposalCount: 1,
			URL:           "https://example.com/1",
		},
		Outcome:     model.OutcomeAnalyzed,
		Eligibility: "정보통신공사업 등록업체\n품목: 볼펜(1234567890123)",
		Entities: model.ExtractedEntities{
			Licenses:          []model.LicenseCategory{model.LicenseInfoCommConstruction, model.LicenseSoftwareBusiness},
			Items:             []model.CodedItem{{Label: "볼펜", Code: "1234567890123"}},
			ContractMethod:    model.ContractNegotiated,
			SubmissionChannel: model.SubmissionElectronic,
		},
		Verdicts: model.SuitabilityVerdict{
			{Company: "A", Score: 1, Verdict: model.VerdictNeedsReview},
			{Company: "B", Score: 3, Verdict: model.VerdictSuitable},
			{Company: "C", Score: 0, Verdict: model.VerdictUnsuitable},
		},
	}

	return []model.AnnouncementRecord{
		analyzed,
		model.NewSkippedRecord(model.Announcement{Title: "이미지 공고", QualificationSummary: "이미지 건"}, model.OutcomeImageCase),
		model.NewSkippedRecord(model.Announcement{Title: "경쟁 공고", ProposalCount: 12}, model.OutcomeHighCompetition),
		model.NewSkippedRecord(model.Announcement{Title: "빈 공고"}, model.OutcomeNoContent),
	}
}

// TestSimpleWriter tests the plain text digest.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes the exact digest", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewSimpleWriter(&buf).Write(createTestRecords())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := "**[정보통신 공사]**\n" +
			"*   **적합성:** A(검토필요), B(적합)\n" +
			"*   **자격:** 정보통신공사업, 소프트웨어사업자\n" +
			"*   **물품:** 볼펜(1234567890123)\n" +
			"*   **유형:** 협상에 의한 계약\n" +
			"*   **제출:** 전자입찰\n" +
			"\n" +
			"**[이미지 공고]**\n" +
			"- 이미지 건\n" +
			"\n" +
			"**[경쟁 공고]**\n" +
			"- 제안서 건\n" +
			"\n" +
			"**[빈 공고]**\n" +
			"- 콘텐츠 없음\n"

		if buf.String() != expected {
			t.Errorf("unexpected output:\n%s\nwant:\n%s", buf.String(), expected)
		}
		if n != len(expected) {
			t.Errorf("expected %d bytes written, got %d", len(expected), n)
		}
	})

	t.Run("omits empty fields", func(t *testing.T) {
		t.Parallel()

		records := []model.AnnouncementRecord{{
			Announcement: model.Announcement{Title: "T"},
			Outcome:      model.OutcomeAnalyzed,
			Verdicts:     model.SuitabilityVerdict{{Company: "A", Verdict: model.VerdictUnsuitable}},
		}}

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(records); err != nil {
			t.Fatal(err)
		}

		expected := "**[T]**\n*   **적합성:** 적합 업체 없음\n"
		if buf.String() != expected {
			t.Errorf("expected %q, got %q", expected, buf.String())
		}
	})

	t.Run("image case prints only the marker", func(t *testing.T) {
		t.Parallel()

		records := createTestRecords()[1:2]
		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(records); err != nil {
			t.Fatal(err)
		}
		if buf.String() != "**[이미지 공고]**\n- 이미지 건\n" {
			t.Errorf("unexpected output %q", buf.String())
		}
	})

	t.Run("with eligibility", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithEligibility(true)).Write(createTestRecords()[:1]); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "*   **참가자격:**\n    정보통신공사업 등록업체\n    품목: 볼펜(1234567890123)\n") {
			t.Errorf("expected eligibility block, got:\n%s", buf.String())
		}
	})

	t.Run("no records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewSimpleWriter(&buf).Write(nil)
		if err != nil || n != 0 || buf.Len() != 0 {
			t.Errorf("expected empty output, got %d bytes, err %v", n, err)
		}
	})
}

// TestWriters_Deterministic tests that rerunning a writer on the same
// records gives byte-identical output.
func TestWriters_Deterministic(t *testing.T) {
	t.Parallel()

	factories := map[string]func(*bytes.Buffer) Writer{
		"simple":   func(b *bytes.Buffer) Writer { return NewSimpleWriter(b) },
		"markdown": func(b *bytes.Buffer) Writer { return NewMarkdownWriter(b) },
		"json":     func(b *bytes.Buffer) Writer { return NewJSONWriter(b, WithPrettyPrint()) },
	}

	for name, newWriter := range factories {
		name, newWriter := name, newWriter
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var first bytes.Buffer
			if _, err := newWriter(&first).Write(createTestRecords()); err != nil {
				t.Fatal(err)
			}
			for i := 0; i < 3; i++ {
				var again bytes.Buffer
				if _, err := newWriter(&again).Write(createTestRecords()); err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(first.Bytes(), again.Bytes()) {
					t.Fatalf("output differs between runs")
				}
			}
		})
	}
}

// TestMarkdownWriter tests the Markdown document.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf, WithTitle("주간 분석")).Write(createTestRecords()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"# 주간 분석",
		"## 정보통신 공사",
		"## 이미지 공고",
		"mermaid",
		"업체 적합성 분포",
		"A(검토필요), B(적합)",
		"볼펜(1234567890123)",
		"협상에 의한 계약",
		"<https://example.com/1>",
		"[!NOTE]",
		"[!WARNING]",
		"[!CAUTION]",
		"<details>",
		"Report generated by bidscan",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

// TestMarkdownWriter_NothingExtracted tests the note for analyzed records
// without any extracted entity.
func TestMarkdownWriter_NothingExtracted(t *testing.T) {
	t.Parallel()

	empty := model.AnnouncementRecord{
		Announcement: model.Announcement{Title: "빈 분석"},
		Outcome:      model.OutcomeAnalyzed,
		Verdicts:     model.SuitabilityVerdict{{Company: "A", Verdict: model.VerdictUnsuitable}},
	}

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write([]model.AnnouncementRecord{empty}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), NothingExtracted) {
		t.Errorf("expected nothing-extracted note, got:\n%s", buf.String())
	}

	buf.Reset()
	if _, err := NewMarkdownWriter(&buf).Write(createTestRecords()[:1]); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), NothingExtracted) {
		t.Error("unexpected note for a record with entities")
	}
}

// TestMarkdownWriter_NoVerdicts tests that the chart is left out when
// nothing was scored.
func TestMarkdownWriter_NoVerdicts(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(createTestRecords()[1:]); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "mermaid") {
		t.Error("expected no pie chart without verdicts")
	}
}

// TestJSONWriter tests JSON output.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("document structure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithVersion("v1.2.3")).Write(createTestRecords()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var doc struct {
			Version       string  `json:"version"`
			Summary       Summary `json:"summary"`
			Announcements []struct {
				Title    string `json:"title"`
				Outcome  string `json:"outcome"`
				Entities struct {
					Licenses       []string `json:"licenses"`
					ContractMethod string   `json:"contract_method"`
				} `json:"entities"`
				Verdicts []struct {
					Company string `json:"company"`
					Verdict string `json:"verdict"`
				} `json:"verdicts"`
			} `json:"announcements"`
		}
		if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}

		if doc.Version != "v1.2.3" {
			t.Errorf("expected version, got %q", doc.Version)
		}
		if doc.Summary.Total != 4 || doc.Summary.Analyzed != 1 || doc.Summary.ImageCase != 1 {
			t.Errorf("unexpected summary %+v", doc.Summary)
		}
		if doc.Summary.Verdicts.Suitable != 1 || doc.Summary.Verdicts.NeedsReview != 1 || doc.Summary.Verdicts.Unsuitable != 1 {
			t.Errorf("unexpected verdict counts %+v", doc.Summary.Verdicts)
		}
		if len(doc.Announcements) != 4 {
			t.Fatalf("expected 4 announcements, got %d", len(doc.Announcements))
		}
		first := doc.Announcements[0]
		if first.Outcome != "analyzed" || first.Entities.ContractMethod != "negotiated-contract" {
			t.Errorf("unexpected first record %+v", first)
		}
		if len(first.Entities.Licenses) != 2 || first.Entities.Licenses[0] != "info-comm-construction" {
			t.Errorf("unexpected licenses %v", first.Entities.Licenses)
		}
		if len(first.Verdicts) != 3 || first.Verdicts[1].Verdict != "suitable" {
			t.Errorf("unexpected verdicts %+v", first.Verdicts)
		}
		if doc.Announcements[1].Outcome != "image-case" {
			t.Errorf("expected image-case, got %q", doc.Announcements[1].Outcome)
		}
	})

	t.Run("decodes into its own types", func(t *testing.T) {
		t.Parallel()

		records := createTestRecords()
		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(records); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var doc JSONReport
		if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
			t.Fatalf("failed to decode report: %v", err)
		}
		if !reflect.DeepEqual(doc.Announcements, records) {
			t.Errorf("records changed in round trip:\n got %+v\nwant %+v", doc.Announcements, records)
		}
		if doc.Summary != NewSummary(records) {
			t.Errorf("summary changed in round trip: %+v", doc.Summary)
		}
	})

	t.Run("empty records encode as an empty list", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(nil); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), `"announcements":[]`) {
			t.Errorf("expected empty list, got %s", buf.String())
		}
	})

	t.Run("pretty print", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(nil); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "\n  \"summary\"") {
			t.Errorf("expected indented output, got %s", buf.String())
		}
	})
}

type failingWriter struct{}

func (failingWriter) Write([]model.AnnouncementRecord) (int, error) {
	return 0, errors.New("write failed")
}

// TestMultiWriter tests fan-out to several writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		n, err := NewMultiWriter(NewSimpleWriter(&a), NewSimpleWriter(&b)).Write(createTestRecords())
		if err != nil {
			t.Fatal(err)
		}
		if a.String() != b.String() || n != a.Len()+b.Len() {
			t.Error("expected identical output in both writers")
		}
	})

	t.Run("stops on error", func(t *testing.T) {
		t.Parallel()

		var b bytes.Buffer
		_, err := NewMultiWriter(failingWriter{}, NewSimpleWriter(&b)).Write(createTestRecords())
		if err == nil {
			t.Error("expected error")
		}
		if b.Len() != 0 {
			t.Error("writers after a failure should not run")
		}
	})
}

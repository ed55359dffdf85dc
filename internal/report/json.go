package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/bidscan/internal/model"
)

// JSONWriter outputs records as one JSON document.
type JSONWriter struct {
	baseWriter

	indent       bool
	indentPrefix string
	indentString string

	// version is recorded in the document when set.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion records the generating bidscan version in the output.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONReport is the document written by JSONWriter.
type JSONReport struct {
	// Version is the bidscan version that generated this report.
	Version string `json:"version,omitempty"`

	// Summary counts outcomes and verdicts.
	Summary Summary `json:"summary"`

	// Announcements holds one record per announcement, in input order.
	Announcements []model.AnnouncementRecord `json:"announcements"`
}

// Write outputs the records wrapped in a JSONReport.
func (w *JSONWriter) Write(records []model.AnnouncementRecord) (int, error) {
	if records == nil {
		records = []model.AnnouncementRecord{}
	}

	return w.writeJSON(JSONReport{
		Version:       w.version,
		Summary:       NewSummary(records),
		Announcements: records,
	})
}

func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}

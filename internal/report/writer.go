package report

import (
	"io"

	"github.com/nao1215/bidscan/internal/model"
)

// Writer renders announcement records to a destination.
type Writer interface {
	// Write outputs all records in order.
	// Returns the number of bytes written and any error encountered.
	Write(records []model.AnnouncementRecord) (int, error)
}

// MultiWriter writes the same records to several Writers.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the records to every Writer, stopping at the first error.
func (m *MultiWriter) Write(records []model.AnnouncementRecord) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(records)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

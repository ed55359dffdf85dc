package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	dumpBlockPrefix = "--- URL:"
	dumpBlockSuffix = "---"
	dumpBlockEnd    = "--- END ---"
)

// ParseDump reads a scraped-content dump and returns the text of every
// block keyed by URL. A block opens with
//
//	--- URL: https://example.com/notice ---
//
// and closes with "--- END ---". Lines outside blocks are ignored, blocks
// without text are dropped and a repeated URL keeps its last block.
func ParseDump(r io.Reader) (map[string]string, error) {
	contents := make(map[string]string)

	var (
		currentURL string
		inBlock    bool
		buf        []string
	)
	flush := func() {
		if inBlock && currentURL != "" && len(buf) > 0 {
			contents[currentURL] = strings.Join(buf, "\n")
		}
		currentURL, inBlock, buf = "", false, nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, dumpBlockPrefix):
			flush()
			url := strings.TrimPrefix(trimmed, dumpBlockPrefix)
			url = strings.TrimSuffix(url, dumpBlockSuffix)
			currentURL = strings.TrimSpace(url)
			inBlock = true
		case trimmed == dumpBlockEnd:
			flush()
		case inBlock:
			buf = append(buf, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dump: %w", err)
	}
	flush()

	return contents, nil
}

// ReadDumpFile parses the dump file at path.
func ReadDumpFile(path string) (map[string]string, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to open dump: %w", err)
	}
	defer f.Close()

	return ParseDump(f)
}

// WriteDumpBlock writes one dump block for url.
func WriteDumpBlock(w io.Writer, url, text string) error {
	if _, err := fmt.Fprintf(w, "%s %s %s\n%s\n%s\n", dumpBlockPrefix, url, dumpBlockSuffix, text, dumpBlockEnd); err != nil {
		return fmt.Errorf("failed to write dump block: %w", err)
	}
	return nil
}

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

const sampleNotice = "입찰 참가자격\n" +
	"정보통신공사업 등록업체\n" +
	"품목: 볼펜(1234567890123)\n" +
	"\n" +
	"2. 제출방법\n" +
	"나라장터 전자입찰\n" +
	"협상에 의한 계약"

const sampleRoster = `{
  "A": {"업종": ["정보통신공사업"]},
  "B": {"직접생산확인서": ["볼펜(1234567890123)"]},
  "C": {"업종": ["건설업자"]}
}`

// writeFile writes content to name inside dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// analyzeFixture holds the input files of an analyze run.
type analyzeFixture struct {
	dir      string
	results  string
	dump     string
	profiles string
	config   string
}

// newAnalyzeFixture writes a listing with one analyzable, one image-case and
// one high-competition announcement, plus the matching dump and roster.
func newAnalyzeFixture(t *testing.T) analyzeFixture {
	t.Helper()

	dir := t.TempDir()
	return analyzeFixture{
		dir: dir,
		results: writeFile(t, dir, "results.txt",
			"제안서 수: 0 | 사무용품 구매 | 정보통신공사업 등록업체 | https://example.com/1\n"+
				"제안서 수: 0 | 도면 출력 | 이미지 건 | https://example.com/2\n"+
				"제안서 수: 12 | 연구 용역 | 제안서 평가 | https://example.com/3\n"),
		dump: writeFile(t, dir, "scraped.txt",
			"--- URL: https://example.com/1 ---\n"+sampleNotice+"\n--- END ---\n"),
		profiles: writeFile(t, dir, "company_info.json", sampleRoster),
		// An explicit config file keeps the run independent of ~/.bidscan.
		config: writeFile(t, dir, "config.yaml", "batch: 2\n"),
	}
}

// runRoot executes the root command with args and returns stdout.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

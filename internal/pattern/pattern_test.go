package pattern

import "testing"

// TestRegexMatch tests capture handling of Regex.
func TestRegexMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		expr        string
		text        string
		wantCapture string
		wantOK      bool
	}{
		{
			name:        "whole match without group",
			expr:        `적격심사`,
			text:        "본 입찰은 적격심사 대상",
			wantCapture: "적격심사",
			wantOK:      true,
		},
		{
			name:        "first group is returned",
			expr:        `\((\d{10,})\)`,
			text:        "볼펜(1234567890123)",
			wantCapture: "1234567890123",
			wantOK:      true,
		},
		{
			name:   "no match",
			expr:   `최저가`,
			text:   "협상에 의한 계약",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := NewRegex(tt.expr).Match(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("Match() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.wantCapture {
				t.Errorf("Match() capture = %q, want %q", got, tt.wantCapture)
			}
		})
	}
}

// TestLiteralMatch tests that Literal reports the first needle in needle order.
func TestLiteralMatch(t *testing.T) {
	t.Parallel()

	l := NewLiteral("직접방문", "방문접수")

	got, ok := l.Match("방문접수 또는 직접방문")
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "직접방문" {
		t.Errorf("expected first needle, got %q", got)
	}

	if _, ok := l.Match("전자입찰"); ok {
		t.Error("expected no match")
	}
}

// TestAny tests the Any helper.
func TestAny(t *testing.T) {
	t.Parallel()

	matchers := []Matcher{NewLiteral("g2b"), NewRegex(`나라장터`)}
	if !Any("나라장터 이용", matchers...) {
		t.Error("expected Any to match")
	}
	if Any("우편 제출", matchers...) {
		t.Error("expected Any not to match")
	}
	if Any("anything") {
		t.Error("expected Any with no matchers to be false")
	}
}

// TestSpaced tests the whitespace-tolerant phrase builder.
func TestSpaced(t *testing.T) {
	t.Parallel()

	rw := NewRewriter("participation", Spaced("참가자격"), "참가자격")

	tests := []struct {
		input    string
		expected string
	}{
		{"참 가 자 격", "참가자격"},
		{"참가\t자격 안내", "참가자격 안내"},
		{"참\n가자격", "참가자격"},
		{"참가자격", "참가자격"},
		{"자격 참가", "자격 참가"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			if got := rw.Rewrite(tc.input); got != tc.expected {
				t.Errorf("Rewrite(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

// TestSpacedCaseInsensitive tests that latin phrases match any case.
func TestSpacedCaseInsensitive(t *testing.T) {
	t.Parallel()

	rw := NewRewriter("g2b", Spaced("g2b"), "g2b")
	if got := rw.Rewrite("G 2 B 이용"); got != "g2b 이용" {
		t.Errorf("got %q", got)
	}
}

// TestRewriterMatch tests that a Rewriter doubles as a detector.
func TestRewriterMatch(t *testing.T) {
	t.Parallel()

	rw := NewRewriter("classification", Spaced("분류번호"), "분류번호")
	got, ok := rw.Match("물품 분 류 번 호: 12")
	if !ok {
		t.Fatal("expected a match")
	}
	if got != "분 류 번 호" {
		t.Errorf("got %q", got)
	}
	if _, ok := rw.Match("없음"); ok {
		t.Error("expected no match")
	}
}

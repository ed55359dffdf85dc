package model

import "testing"

func TestDocument_Fingerprint(t *testing.T) {
	t.Parallel()

	a := NewDocument("입찰 참가자격", "a.html")
	b := NewDocument("입찰 참가자격", "b.html")
	c := NewDocument("입찰 참가자격 ", "a.html")

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("fingerprint should depend on text only")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("different text should give a different fingerprint")
	}
	if len(a.Fingerprint()) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a.Fingerprint()))
	}
	// SHA3-256 of the empty string.
	const emptySum = "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"
	if got := NewDocument("", "").Fingerprint(); got != emptySum {
		t.Errorf("empty fingerprint = %s", got)
	}
}

func TestDocument_Empty(t *testing.T) {
	t.Parallel()

	if !(Document{}).Empty() {
		t.Error("zero document should be empty")
	}
	if NewDocument(" ", "").Empty() {
		t.Error("whitespace is still text")
	}
}

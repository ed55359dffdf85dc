package model

import "testing"

func TestVerdict_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verdict Verdict
		name    string
		label   string
	}{
		{VerdictUnsuitable, "부적합", "unsuitable"},
		{VerdictNeedsReview, "검토필요", "needs-review"},
		{VerdictSuitable, "적합", "suitable"},
		{Verdict(42), "UNKNOWN", "unknown"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			if got := tt.verdict.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.verdict.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
		})
	}

	if !(VerdictSuitable > VerdictNeedsReview && VerdictNeedsReview > VerdictUnsuitable) {
		t.Error("verdicts should be ordered by fitness")
	}
}

func TestSuitabilityVerdict(t *testing.T) {
	t.Parallel()

	sv := SuitabilityVerdict{
		{Company: "A", Score: 1, Verdict: VerdictNeedsReview},
		{Company: "B", Score: 0, Verdict: VerdictUnsuitable},
		{Company: "C", Score: 3, Verdict: VerdictSuitable},
	}

	t.Run("candidates keep roster order", func(t *testing.T) {
		t.Parallel()
		got := sv.Candidates()
		if len(got) != 2 || got[0].Company != "A" || got[1].Company != "C" {
			t.Errorf("unexpected candidates %+v", got)
		}
	})

	t.Run("counts", func(t *testing.T) {
		t.Parallel()
		var c VerdictCounts
		c.Add(sv)
		c.Add(sv[:1])
		if c.Suitable != 1 || c.NeedsReview != 2 || c.Unsuitable != 1 {
			t.Errorf("unexpected counts %+v", c)
		}
		if c.Total() != 4 {
			t.Errorf("Total() = %d, want 4", c.Total())
		}
	})
}

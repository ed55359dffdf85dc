package source

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nao1215/bidscan/internal/model"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestParseRoster tests roster parsing from JSON and YAML.
func TestParseRoster(t *testing.T) {
	t.Parallel()

	t.Run("json keeps file order", func(t *testing.T) {
		t.Parallel()

		data := []byte(`{
  "Z전자": {"업종": ["정보통신공사업", "소프트웨어사업자"], "직접생산확인서": ["볼펜(1234567890123)", "복사용지 4414150101 외 4414150102"]},
  "A산업": {"업종": ["건설업자"]}
}`)

		got, err := ParseRoster(data, WithRosterLogger(quietLogger()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := model.Roster{
			{Name: "Z전자", Profile: model.CompanyProfile{
				Licenses:           []string{"정보통신공사업", "소프트웨어사업자"},
				CertifiedItemCodes: []string{"1234567890123", "4414150101", "4414150102"},
			}},
			{Name: "A산업", Profile: model.CompanyProfile{
				Licenses: []string{"건설업자"},
			}},
		}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("expected %+v, got %+v", expected, got)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		data := []byte("B사:\n  업종:\n    - 등록사업자\n  직접생산확인서:\n    - 인증 대기\n")

		got, err := ParseRoster(data, WithRosterLogger(quietLogger()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Name != "B사" {
			t.Fatalf("unexpected roster %+v", got)
		}
		if !reflect.DeepEqual(got[0].Profile.CertifiedItemCodes, []string{"인증 대기"}) {
			t.Errorf("entries without a code should be kept, got %v", got[0].Profile.CertifiedItemCodes)
		}
	})

	t.Run("malformed entries become empty", func(t *testing.T) {
		t.Parallel()

		data := []byte(`{"A": "not a profile", "B": {"업종": "정보통신공사업", "직접생산확인서": [["nested"], 1234567890]}, "C": {}}`)

		got, err := ParseRoster(data, WithRosterLogger(quietLogger()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 companies, got %d", len(got))
		}
		if !reflect.DeepEqual(got[0].Profile, model.CompanyProfile{}) {
			t.Errorf("A: expected empty profile, got %+v", got[0].Profile)
		}
		if got[1].Profile.Licenses != nil {
			t.Errorf("B: expected no licenses, got %v", got[1].Profile.Licenses)
		}
		if !reflect.DeepEqual(got[1].Profile.CertifiedItemCodes, []string{"1234567890"}) {
			t.Errorf("B: expected numeric code kept as text, got %v", got[1].Profile.CertifiedItemCodes)
		}
		if !reflect.DeepEqual(got[2].Profile, model.CompanyProfile{}) {
			t.Errorf("C: expected empty profile, got %+v", got[2].Profile)
		}
	})

	t.Run("duplicate keeps first position and last value", func(t *testing.T) {
		t.Parallel()

		data := []byte("A:\n  업종: [건설업자]\nB: {}\nA:\n  업종: [등록사업자]\n")

		got, err := ParseRoster(data, WithRosterLogger(quietLogger()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got.Names(), []string{"A", "B"}) {
			t.Fatalf("unexpected order %v", got.Names())
		}
		if !reflect.DeepEqual(got[0].Profile.Licenses, []string{"등록사업자"}) {
			t.Errorf("expected last value, got %v", got[0].Profile.Licenses)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		got, err := ParseRoster(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty roster, got %v", got)
		}
	})

	t.Run("root not a mapping", func(t *testing.T) {
		t.Parallel()

		_, err := ParseRoster([]byte(`["A", "B"]`))
		if !errors.Is(err, ErrInvalidRoster) {
			t.Errorf("expected ErrInvalidRoster, got %v", err)
		}
	})
}

// TestLoadRoster tests loading from disk.
func TestLoadRoster(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "company_info.json")
	if err := os.WriteFile(path, []byte(`{"A": {"업종": ["정보통신공사업"]}}`), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := LoadRoster(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Profile.LicenseText() != "정보통신공사업" {
		t.Errorf("unexpected roster %+v", got)
	}

	if _, err := LoadRoster(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

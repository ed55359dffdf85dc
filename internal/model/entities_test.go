package model

import (
	"slices"
	"testing"
)

func TestExtractedEntities_AddLicense(t *testing.T) {
	t.Parallel()

	var e ExtractedEntities
	e.AddLicense(LicenseConstruction)
	e.AddLicense(LicenseInfoCommConstruction)
	e.AddLicense(LicenseFacilityMaintenance)
	e.AddLicense(LicenseConstruction)

	want := []LicenseCategory{LicenseInfoCommConstruction, LicenseFacilityMaintenance, LicenseConstruction}
	if !slices.Equal(e.Licenses, want) {
		t.Errorf("got %v, want %v", e.Licenses, want)
	}
	if !e.HasLicense(LicenseFacilityMaintenance) {
		t.Error("expected HasLicense to find facility maintenance")
	}
	if e.HasLicense(LicenseSoftwareBusiness) {
		t.Error("unexpected software business license")
	}

	names := e.LicenseNames()
	if !slices.Equal(names, []string{"정보통신공사업", "시설물유지관리업", "건설업자"}) {
		t.Errorf("unexpected names %v", names)
	}
}

func TestExtractedEntities_AddItem(t *testing.T) {
	t.Parallel()

	var e ExtractedEntities
	e.AddItem(CodedItem{Label: "볼펜", Code: "1234567890"})
	e.AddItem(CodedItem{Label: "연필", Code: "0987654321"})
	e.AddItem(CodedItem{Label: "볼펜", Code: "1234567890"})
	e.AddItem(CodedItem{Label: "볼펜 세트", Code: "1234567890"})

	want := []string{"볼펜(1234567890)", "연필(0987654321)", "볼펜 세트(1234567890)"}
	if got := e.ItemStrings(); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtractedEntities_IsEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		e    ExtractedEntities
		want bool
	}{
		{"zero value", ExtractedEntities{}, true},
		{"license", ExtractedEntities{Licenses: []LicenseCategory{LicenseConstruction}}, false},
		{"item", ExtractedEntities{Items: []CodedItem{{Label: "a", Code: "1234567890"}}}, false},
		{"contract", ExtractedEntities{ContractMethod: ContractNegotiated}, false},
		{"submission", ExtractedEntities{SubmissionChannel: SubmissionElectronic}, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.e.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

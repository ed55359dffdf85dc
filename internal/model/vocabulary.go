package model

// LicenseCategory is a business registration class that an announcement may
// require from bidders. The set is closed: the extractor only ever reports
// categories from this list.
type LicenseCategory int

const (
	// LicenseInfoCommConstruction is 정보통신공사업.
	LicenseInfoCommConstruction LicenseCategory = iota

	// LicenseSoftwareBusiness is 소프트웨어사업자.
	LicenseSoftwareBusiness

	// LicenseMechanicalGasFacility is 기계가스설비공사업.
	LicenseMechanicalGasFacility

	// LicenseFacilityMaintenance is 시설물유지관리업.
	LicenseFacilityMaintenance

	// LicenseMetalStructureWindow is 금속구조물창호공사업.
	LicenseMetalStructureWindow

	// LicensePaintingWaterproofStone is 도장습식방수석공사업.
	LicensePaintingWaterproofStone

	// LicenseConstruction is 건설업자.
	LicenseConstruction

	// LicenseRegisteredBusiness is 등록사업자.
	LicenseRegisteredBusiness
)

// licenseNames holds the Korean names in vocabulary order.
var licenseNames = [...]string{
	LicenseInfoCommConstruction:    "정보통신공사업",
	LicenseSoftwareBusiness:        "소프트웨어사업자",
	LicenseMechanicalGasFacility:   "기계가스설비공사업",
	LicenseFacilityMaintenance:     "시설물유지관리업",
	LicenseMetalStructureWindow:    "금속구조물창호공사업",
	LicensePaintingWaterproofStone: "도장습식방수석공사업",
	LicenseConstruction:            "건설업자",
	LicenseRegisteredBusiness:      "등록사업자",
}

var licenseLabels = [...]string{
	LicenseInfoCommConstruction:    "info-comm-construction",
	LicenseSoftwareBusiness:        "software-business",
	LicenseMechanicalGasFacility:   "mechanical-gas-facility",
	LicenseFacilityMaintenance:     "facility-maintenance",
	LicenseMetalStructureWindow:    "metal-structure-window",
	LicensePaintingWaterproofStone: "painting-waterproof-stone",
	LicenseConstruction:            "construction",
	LicenseRegisteredBusiness:      "registered-business",
}

// AllLicenseCategories returns every license category in vocabulary order.
func AllLicenseCategories() []LicenseCategory {
	all := make([]LicenseCategory, len(licenseNames))
	for i := range licenseNames {
		all[i] = LicenseCategory(i)
	}
	return all
}

// String returns the Korean category name as it appears in announcements.
func (l LicenseCategory) String() string {
	if !l.valid() {
		return "UNKNOWN"
	}
	return licenseNames[l]
}

// Label returns a stable ASCII identifier for machine-readable output.
func (l LicenseCategory) Label() string {
	if !l.valid() {
		return "unknown"
	}
	return licenseLabels[l]
}

// MarshalText implements encoding.TextMarshaler.
func (l LicenseCategory) MarshalText() ([]byte, error) {
	return []byte(l.Label()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *LicenseCategory) UnmarshalText(text []byte) error {
	v, err := parseLabel("license category", text, AllLicenseCategories()...)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

func (l LicenseCategory) valid() bool {
	return l >= 0 && int(l) < len(licenseNames)
}

// ParseLicenseCategory maps a Korean category name to its LicenseCategory.
func ParseLicenseCategory(name string) (LicenseCategory, bool) {
	for i, n := range licenseNames {
		if n == name {
			return LicenseCategory(i), true
		}
	}
	return 0, false
}

// ContractMethod is the award mechanism of a tender.
type ContractMethod int

const (
	// ContractUnknown means no known award phrase was found.
	ContractUnknown ContractMethod = iota

	// ContractNegotiated is 협상에 의한 계약.
	ContractNegotiated

	// ContractQualificationReview is 적격심사.
	ContractQualificationReview

	// ContractLowestBid is 최저가낙찰.
	ContractLowestBid
)

// String returns the Korean rendering used in reports.
func (c ContractMethod) String() string {
	switch c {
	case ContractNegotiated:
		return "협상에 의한 계약"
	case ContractQualificationReview:
		return "적격심사"
	case ContractLowestBid:
		return "최저가낙찰"
	default:
		return "미확인"
	}
}

// Label returns a stable ASCII identifier.
func (c ContractMethod) Label() string {
	switch c {
	case ContractNegotiated:
		return "negotiated-contract"
	case ContractQualificationReview:
		return "qualification-review"
	case ContractLowestBid:
		return "lowest-bid"
	default:
		return "unknown"
	}
}

// Known reports whether a contract method was identified.
func (c ContractMethod) Known() bool {
	return c != ContractUnknown
}

// MarshalText implements encoding.TextMarshaler.
func (c ContractMethod) MarshalText() ([]byte, error) {
	return []byte(c.Label()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ContractMethod) UnmarshalText(text []byte) error {
	v, err := parseLabel("contract method", text,
		ContractUnknown, ContractNegotiated, ContractQualificationReview, ContractLowestBid)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// SubmissionChannel is how bids are handed in.
type SubmissionChannel int

const (
	// SubmissionUnknown means neither channel was mentioned.
	SubmissionUnknown SubmissionChannel = iota

	// SubmissionElectronic covers 전자입찰 and the national e-procurement portal.
	SubmissionElectronic

	// SubmissionInPerson covers 직접방문 and 방문접수.
	SubmissionInPerson
)

// String returns the Korean rendering used in reports.
func (s SubmissionChannel) String() string {
	switch s {
	case SubmissionElectronic:
		return "전자입찰"
	case SubmissionInPerson:
		return "직접방문"
	default:
		return "미확인"
	}
}

// Label returns a stable ASCII identifier.
func (s SubmissionChannel) Label() string {
	switch s {
	case SubmissionElectronic:
		return "electronic"
	case SubmissionInPerson:
		return "in-person"
	default:
		return "unknown"
	}
}

// Known reports whether a submission channel was identified.
func (s SubmissionChannel) Known() bool {
	return s != SubmissionUnknown
}

// MarshalText implements encoding.TextMarshaler.
func (s SubmissionChannel) MarshalText() ([]byte, error) {
	return []byte(s.Label()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SubmissionChannel) UnmarshalText(text []byte) error {
	v, err := parseLabel("submission channel", text,
		SubmissionUnknown, SubmissionElectronic, SubmissionInPerson)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

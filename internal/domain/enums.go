package domain

import "strings"

// RiskLevel is the service's ordered risk classification for a document.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Severity returns the ordinal position of the risk level (LOW=1, HIGH=3).
// Unknown values rank above HIGH so schema drift is never silently benign.
func (r RiskLevel) Severity() int {
	switch r {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	default:
		return 4
	}
}

// Jurisdiction identifies a regulatory regime the service evaluates against.
type Jurisdiction string

const (
	JurisdictionOman   Jurisdiction = "Oman"
	JurisdictionQatar  Jurisdiction = "Qatar"
	JurisdictionDIFC   Jurisdiction = "DIFC"
	JurisdictionKSA    Jurisdiction = "KSA"
	JurisdictionUAE    Jurisdiction = "UAE"
	JurisdictionKuwait Jurisdiction = "Kuwait"
)

// AllowedJurisdictions maps lowercase names to their canonical wire value.
var AllowedJurisdictions = map[string]Jurisdiction{
	"oman":   JurisdictionOman,
	"qatar":  JurisdictionQatar,
	"difc":   JurisdictionDIFC,
	"ksa":    JurisdictionKSA,
	"uae":    JurisdictionUAE,
	"kuwait": JurisdictionKuwait,
}

// ParseJurisdiction resolves a case-insensitive name to its canonical value.
func ParseJurisdiction(s string) (Jurisdiction, error) {
	j, ok := AllowedJurisdictions[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", ErrInvalidJurisdiction
	}
	return j, nil
}

// NormalizeJurisdiction resolves a case-insensitive name to its canonical
// wire value. The service's enum is exact-value, so records built from user
// input must carry the canonical form. Unknown names pass through unchanged
// for validation to report.
func NormalizeJurisdiction(s string) Jurisdiction {
	if j, err := ParseJurisdiction(s); err == nil {
		return j
	}
	return Jurisdiction(s)
}

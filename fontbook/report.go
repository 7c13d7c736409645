package fontbook

import "fmt"

// Severity grades a verification finding.
type Severity int

const (
	// SeverityCritical excludes the family from the usable set.
	SeverityCritical Severity = iota
	// SeverityMajor marks a suspect resource; the family stays usable,
	// possibly with an alternate resource preferred.
	SeverityMajor
	// SeverityMinor notes an issue with no effect on usability.
	SeverityMinor
)

// String returns a human-readable representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityMajor:
		return "MAJOR"
	case SeverityMinor:
		return "MINOR"
	default:
		return "UNKNOWN"
	}
}

// Finding is one issue discovered while verifying a font family.
// Findings are accumulated during verification and can be inspected
// after it completes; verification never stops at the first issue.
type Finding struct {
	FamilyID string   // manifest family the finding belongs to
	Resource string   // resource path, empty for record-level findings
	Issue    string   // human-readable description
	Severity Severity // grading of the finding
}

// Error implements the error interface.
func (f Finding) Error() string {
	if f.Resource != "" {
		return fmt.Sprintf("[%s] %s/%s: %s", f.Severity, f.FamilyID, f.Resource, f.Issue)
	}
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.FamilyID, f.Issue)
}

// Report accumulates findings for one verification pass, over one family
// or over a whole manifest.
type Report struct {
	findings []Finding
}

func (rp *Report) add(familyID, resource, issue string, severity Severity) {
	rp.findings = append(rp.findings, Finding{
		FamilyID: familyID,
		Resource: resource,
		Issue:    issue,
		Severity: severity,
	})
}

// Findings returns all accumulated findings in discovery order.
func (rp *Report) Findings() []Finding {
	return rp.findings
}

// HasCritical reports whether any finding excludes a family.
func (rp *Report) HasCritical() bool {
	for _, f := range rp.findings {
		if f.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// Critical returns the findings with critical severity.
func (rp *Report) Critical() []Finding {
	var crit []Finding
	for _, f := range rp.findings {
		if f.Severity == SeverityCritical {
			crit = append(crit, f)
		}
	}
	return crit
}

// merge appends another report's findings.
func (rp *Report) merge(other *Report) {
	rp.findings = append(rp.findings, other.findings...)
}

package model

// FindingType classifies a detected inconsistency or compliance gap
type FindingType string

const (
	FindingDateMismatchOpen     FindingType = "DATE_MISMATCH_OPEN"     // Open dates differ by more than the threshold
	FindingDateMismatchActivity FindingType = "DATE_MISMATCH_ACTIVITY" // Last-activity dates differ by more than the threshold
	FindingStatusMismatch       FindingType = "STATUS_MISMATCH"        // Bureaus disagree on account status
	FindingLimitMismatch        FindingType = "LIMIT_MISMATCH"         // Bureaus report different credit limits
	FindingMissingOC            FindingType = "MISSING_OC"             // Collection without an original creditor
	FindingMissingDOFD          FindingType = "MISSING_DOFD"           // Collection without a date of first delinquency
	FindingStaleInquiry         FindingType = "STALE_INQUIRY"          // Hard inquiry past the reporting window
)

// Severity indicates how strongly a finding supports a dispute
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Finding is one detected inconsistency. Findings are immutable value
// objects produced only by the detector; evidence embeds the literal
// conflicting values so downstream letter generators need no further lookup.
type Finding struct {
	ID              int         `json:"id"`
	Type            FindingType `json:"type"`
	Item            string      `json:"item"`             // Display string identifying the logical account
	BureausAffected []Bureau    `json:"bureaus_affected"` // Ordered, 1-3 entries, never empty
	Severity        Severity    `json:"severity"`
	LegalBasis      string      `json:"legal_basis"`
	Evidence        string      `json:"evidence"`
	Action          string      `json:"action"`
	ImpactScore     int         `json:"impact_score"` // 1-10
	Timeline        string      `json:"timeline"`
	ClaimIndicator  bool        `json:"claim_indicator"` // Potential violation warranting escalation
}

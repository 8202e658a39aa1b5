package model

import "time"

// Report is the complete audit output for one credit report
type Report struct {
	Subject     string         `json:"subject"`      // Usually derived from the input file name
	GeneratedAt time.Time      `json:"generated_at"` // When the audit ran
	Mode        ExtractionMode `json:"mode"`

	Client      Client          `json:"client"`
	Tradelines  []AccountRecord `json:"tradelines"`
	Collections []AccountRecord `json:"collections"`
	Inquiries   []Inquiry       `json:"inquiries,omitempty"`

	Findings []Finding `json:"findings"`
	Summary  Summary   `json:"summary"`

	// Optional LLM letter draft (separate, never affects findings)
	LLM *LetterDraft `json:"llm,omitempty"`
}

// Summary aggregates findings into the statistics downstream consumers use
type Summary struct {
	TotalFindings int `json:"total_findings"`
	Critical      int `json:"critical"`
	High          int `json:"high"`
	Medium        int `json:"medium"`
	Low           int `json:"low"`
	ClaimCount    int `json:"claim_count"`  // Findings flagged for escalation
	ImpactIndex   int `json:"impact_index"` // 0-100 aggregate dispute strength

	Signals []Signal `json:"signals,omitempty"`
}

// Signal is a diagnostic with transparent data (inputs and formula)
type Signal struct {
	Type        SignalType             `json:"type"`
	Severity    Severity               `json:"severity"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// SignalType classifies summary diagnostics
type SignalType string

const (
	SignalSeverityDistribution SignalType = "severity_distribution"
	SignalClaimEscalation      SignalType = "claim_escalation"
	SignalBureauCoverage       SignalType = "bureau_coverage"
	SignalExtractionConfidence SignalType = "extraction_confidence"
	SignalFraudFlag            SignalType = "fraud_flag"
)

// LetterDraft contains the optional LLM-generated dispute letter draft.
// It is generated after detection and never feeds back into findings.
type LetterDraft struct {
	Enabled        bool     `json:"enabled"`
	Provider       string   `json:"provider,omitempty"`
	Model          string   `json:"model,omitempty"`
	StrictEvidence bool     `json:"strict_evidence"`
	DraftMD        string   `json:"draft_md,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
}

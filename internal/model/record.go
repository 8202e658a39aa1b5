package model

// Bureau identifies one of the three national consumer-reporting agencies
type Bureau string

const (
	BureauTransUnion Bureau = "TU"
	BureauExperian   Bureau = "EX"
	BureauEquifax    Bureau = "EQ"
)

// BureauOrder is the fixed left-to-right column order used by report vendors
var BureauOrder = []Bureau{BureauTransUnion, BureauExperian, BureauEquifax}

// DisplayName returns the full agency name for a bureau code
func (b Bureau) DisplayName() string {
	switch b {
	case BureauTransUnion:
		return "TransUnion"
	case BureauExperian:
		return "Experian"
	case BureauEquifax:
		return "Equifax"
	default:
		return string(b)
	}
}

// Client holds the consumer identity extracted from the report header
type Client struct {
	Name            string `json:"name"`
	State           string `json:"state,omitempty"` // 2-letter code or empty
	FlaggedForFraud bool   `json:"flagged_for_fraud"`
}

// AccountRecord is one row per (logical account x bureau). A record never
// mixes fields from two bureaus.
type AccountRecord struct {
	ID                 int    `json:"id"`
	CreditorName       string `json:"creditor_name"`
	AccountNumberLast4 string `json:"account_number_last4,omitempty"` // 0-4 digits, never the full number
	Bureau             Bureau `json:"bureau"`
	Status             string `json:"status,omitempty"`

	// Dates in normalized YYYY-MM-DD form; empty string means unknown
	OpenDate               string `json:"open_date,omitempty"`
	DateOfLastActivity     string `json:"date_of_last_activity,omitempty"`
	LastPaymentDate        string `json:"last_payment_date,omitempty"`
	DateOfFirstDelinquency string `json:"date_of_first_delinquency,omitempty"`

	CreditLimit    *int `json:"credit_limit,omitempty"` // nil = not reported, distinct from 0
	CurrentBalance int  `json:"current_balance"`

	IsCollection     bool   `json:"is_collection"`
	CollectorName    string `json:"collector_name,omitempty"`
	OriginalCreditor string `json:"original_creditor,omitempty"` // empty = missing
	IsMedicalDebt    bool   `json:"is_medical_debt,omitempty"`

	// LowConfidence marks records synthesized by the fallback extraction
	// path rather than parsed from a structured block
	LowConfidence bool `json:"low_confidence,omitempty"`
}

// Inquiry is a hard credit pull parsed from the report's inquiry section
type Inquiry struct {
	Creditor string `json:"creditor"`
	Date     string `json:"date,omitempty"` // YYYY-MM-DD or empty
	Bureau   Bureau `json:"bureau"`
}

// ExtractionMode distinguishes structured parsing from the degraded
// fallback path
type ExtractionMode string

const (
	ModeStructured ExtractionMode = "structured"
	ModeFallback   ExtractionMode = "fallback"
)

// RecordBundle is the extractor's complete output and the detector's input
type RecordBundle struct {
	Client      Client          `json:"client"`
	Tradelines  []AccountRecord `json:"tradelines"`
	Collections []AccountRecord `json:"collections"`
	Inquiries   []Inquiry       `json:"inquiries,omitempty"`
	Mode        ExtractionMode  `json:"mode"`
}

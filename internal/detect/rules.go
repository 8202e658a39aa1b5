package detect

import "github.com/akravets/bureauscan/internal/model"

// ruleMeta carries the fixed metadata attached to every finding of a type.
// The catalog is static: severities, citations, and timelines never depend
// on the record contents.
type ruleMeta struct {
	Severity       model.Severity
	LegalBasis     string
	Action         string
	ImpactScore    int
	Timeline       string
	ClaimIndicator bool
}

var ruleCatalog = map[model.FindingType]ruleMeta{
	model.FindingDateMismatchOpen: {
		Severity:    model.SeverityHigh,
		LegalBasis:  "FCRA §611 (15 U.S.C. §1681i)",
		Action:      "Dispute the open date with each bureau reporting it inaccurately",
		ImpactScore: 7,
		Timeline:    "Bureaus must investigate within 30 days of the dispute",
	},
	model.FindingDateMismatchActivity: {
		Severity:    model.SeverityHigh,
		LegalBasis:  "FCRA §611 (15 U.S.C. §1681i)",
		Action:      "Dispute the date of last activity; a re-aged date can illegally extend the reporting window",
		ImpactScore: 7,
		Timeline:    "Bureaus must investigate within 30 days of the dispute",
	},
	model.FindingStatusMismatch: {
		Severity:    model.SeverityHigh,
		LegalBasis:  "FCRA §623 (15 U.S.C. §1681s-2)",
		Action:      "Demand the furnisher report one consistent status to all bureaus",
		ImpactScore: 8,
		Timeline:    "Furnisher must correct or verify within 30 days",
	},
	model.FindingLimitMismatch: {
		Severity:    model.SeverityLow,
		LegalBasis:  "FCRA §607(b) (15 U.S.C. §1681e(b))",
		Action:      "Request the correct credit limit from the furnisher; an understated limit inflates utilization",
		ImpactScore: 3,
		Timeline:    "Correction typically reflected within one reporting cycle",
	},
	model.FindingMissingOC: {
		Severity:       model.SeverityMedium,
		LegalBasis:     "FDCPA §809 (15 U.S.C. §1692g)",
		Action:         "Send a debt validation letter demanding the original creditor's identity",
		ImpactScore:    6,
		Timeline:       "Collector must validate within 30 days of the request",
		ClaimIndicator: true,
	},
	model.FindingMissingDOFD: {
		Severity:       model.SeverityHigh,
		LegalBasis:     "FCRA §605(c) (15 U.S.C. §1681c(c))",
		Action:         "Demand the date of first delinquency; without it the 7-year reporting window cannot be verified",
		ImpactScore:    9,
		Timeline:       "Item must be deleted if the reporting window cannot be established",
		ClaimIndicator: true,
	},
	model.FindingStaleInquiry: {
		Severity:    model.SeverityLow,
		LegalBasis:  "FCRA §604 (15 U.S.C. §1681b)",
		Action:      "Request removal of the aged inquiry",
		ImpactScore: 2,
		Timeline:    "Hard inquiries age off after two years",
	},
}

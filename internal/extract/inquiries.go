package extract

import (
	"regexp"
	"strings"

	"github.com/akravets/bureauscan/internal/extract/layouts"
	"github.com/akravets/bureauscan/internal/model"
)

var inquiryDate = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`)

// extractInquiries parses the report's inquiry section, if one exists.
// Lines pair a creditor with a pull date; a bureau heading inside the
// section switches attribution, otherwise the first bureau in column order
// is assumed so downstream findings always name a bureau.
func extractInquiries(lines []string) []model.Inquiry {
	start := -1
	for i, line := range lines {
		if inquiryHeading.MatchString(line) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var inquiries []model.Inquiry
	bureau := model.BureauOrder[0]

	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		// The section ends at the next account header
		if headerPattern.MatchString(trimmed) {
			break
		}
		if b, ok := bureauHeading(trimmed); ok {
			bureau = b
			continue
		}

		loc := inquiryDate.FindStringIndex(trimmed)
		if loc == nil {
			continue
		}

		creditor := strings.TrimSpace(trimmed[:loc[0]])
		if creditor == "" {
			continue
		}

		inq := model.Inquiry{
			Creditor: creditor,
			Date:     NormalizeDate(trimmed[loc[0]:loc[1]]),
			Bureau:   bureau,
		}

		// A trailing token may name the bureau for this single line
		if rest := strings.TrimSpace(trimmed[loc[1]:]); rest != "" {
			if b, ok := bureauHeading(rest); ok {
				inq.Bureau = b
			}
		}

		inquiries = append(inquiries, inq)
	}

	return inquiries
}

// bureauHeading resolves a bureau name or code token
func bureauHeading(s string) (model.Bureau, bool) {
	if !layouts.IsBureauHeading(s) {
		return "", false
	}
	switch strings.ToLower(strings.TrimSuffix(strings.TrimSpace(s), ":")) {
	case "experian", "ex":
		return model.BureauExperian, true
	case "equifax", "eq":
		return model.BureauEquifax, true
	default:
		return model.BureauTransUnion, true
	}
}

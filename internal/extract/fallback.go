package extract

import (
	"regexp"
	"strings"

	"github.com/akravets/bureauscan/internal/extract/layouts"
	"github.com/akravets/bureauscan/internal/model"
)

var (
	// All-caps creditor-like line: letters, digits, and common name
	// punctuation, at least three letters total
	capsLine = regexp.MustCompile(`^[A-Z][A-Z0-9&.,'\-/ ]{2,39}$`)

	fallbackDate = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`)

	// Section headings that look creditor-like but never are
	headingStopwords = []string{
		"PAGE", "REPORT", "INQUIR", "SUMMARY", "PERSONAL", "CONSUMER",
		"ADDRESS", "EMPLOY", "PUBLIC RECORD", "DISCLOSURE",
	}
)

// fallback constructs low-confidence candidate accounts when structured
// segmentation found nothing: all-caps creditor-like tokens are paired
// round-robin with dates found in document order, and one record per bureau
// is emitted per candidate. Every record is marked LowConfidence so
// downstream consumers can tell these from parsed accounts.
func (e *Extractor) fallback(lines []string, nextID int) ([]model.AccountRecord, []model.AccountRecord) {
	candidates := fallbackCandidates(lines, e.cfg.MaxFallbackCandidates)
	if len(candidates) == 0 {
		return nil, nil
	}

	var dates []string
	for _, line := range lines {
		for _, raw := range fallbackDate.FindAllString(line, -1) {
			if d := NormalizeDate(raw); d != "" {
				dates = append(dates, d)
			}
		}
	}

	var tradelines, collections []model.AccountRecord
	for i, creditor := range candidates {
		openDate := ""
		if len(dates) > 0 {
			openDate = dates[i%len(dates)]
		}

		isCollection := e.isCollectionAgency(creditor)
		isMedical := strings.Contains(strings.ToLower(creditor), "medical")

		for _, bureau := range model.BureauOrder {
			rec := model.AccountRecord{
				ID:            nextID,
				CreditorName:  creditor,
				Bureau:        bureau,
				OpenDate:      openDate,
				IsCollection:  isCollection,
				LowConfidence: true,
			}
			nextID++
			if isCollection {
				rec.CollectorName = creditor
				rec.IsMedicalDebt = isMedical
				collections = append(collections, rec)
			} else {
				tradelines = append(tradelines, rec)
			}
		}
	}

	return tradelines, collections
}

// fallbackCandidates collects unique creditor-like all-caps lines in
// document order
func fallbackCandidates(lines []string, limit int) []string {
	if limit <= 0 {
		limit = 20
	}

	seen := make(map[string]bool)
	var candidates []string

	for _, line := range lines {
		candidate := strings.TrimSpace(line)
		if !capsLine.MatchString(candidate) || letterCount(candidate) < 3 {
			continue
		}
		if layouts.IsBureauHeading(candidate) || layouts.IsFieldLabel(candidate) {
			continue
		}
		if isHeadingStopword(candidate) || seen[candidate] {
			continue
		}
		seen[candidate] = true
		candidates = append(candidates, candidate)
		if len(candidates) >= limit {
			break
		}
	}

	return candidates
}

func isHeadingStopword(s string) bool {
	for _, stop := range headingStopwords {
		if strings.Contains(s, stop) {
			return true
		}
	}
	return false
}

func letterCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			n++
		}
	}
	return n
}

package extract

import (
	"regexp"
	"strings"

	"github.com/akravets/bureauscan/internal/model"
)

var (
	// "Name: John Q Public", "Consumer Name   JOHN PUBLIC"
	namePattern = regexp.MustCompile(`(?i)^\s*(?:consumer\s+|client\s+)?name\s*[:\-]?\s+(.{2,60})$`)

	// ", TX 75001" shaped state+ZIP at the end of an address line
	statePattern = regexp.MustCompile(`,\s*([A-Z]{2})\s+\d{5}(?:-\d{4})?\b`)

	fraudToken = regexp.MustCompile(`(?i)\bfraud`)
)

// extractClient scans the report header for the consumer's identity.
// The first match for each pattern wins; absence of any match leaves the
// field empty, which is not an error.
func extractClient(lines []string, fullText string, scanLines int) model.Client {
	if scanLines <= 0 {
		scanLines = 100
	}
	if scanLines > len(lines) {
		scanLines = len(lines)
	}

	var client model.Client
	for _, line := range lines[:scanLines] {
		if client.Name == "" {
			if m := namePattern.FindStringSubmatch(line); m != nil {
				client.Name = strings.TrimSpace(m[1])
			}
		}
		if client.State == "" {
			if m := statePattern.FindStringSubmatch(line); m != nil {
				client.State = m[1]
			}
		}
		if client.Name != "" && client.State != "" {
			break
		}
	}

	// The fraud token counts anywhere in the full text, not just the header
	client.FlaggedForFraud = fraudToken.MatchString(fullText)

	return client
}

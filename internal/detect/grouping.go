package detect

import (
	"strings"

	"github.com/akravets/bureauscan/internal/model"
)

const groupKeyCreditorLen = 12

// group is the set of records reporting the same logical account
type group struct {
	key     string
	item    string // Display string for findings
	records []model.AccountRecord
}

// groupKey normalizes the creditor name to uppercase letters and digits
// (capped) and concatenates the last-4 so the same account lines up across
// bureaus despite vendor spelling differences.
func groupKey(rec model.AccountRecord) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(rec.CreditorName) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() >= groupKeyCreditorLen {
				break
			}
		}
	}
	return b.String() + "|" + rec.AccountNumberLast4
}

// groupRecords buckets records by group key, preserving first-seen order
func groupRecords(records []model.AccountRecord) []*group {
	byKey := make(map[string]*group)
	var ordered []*group

	for _, rec := range records {
		key := groupKey(rec)
		g, ok := byKey[key]
		if !ok {
			g = &group{key: key, item: displayItem(rec)}
			byKey[key] = g
			ordered = append(ordered, g)
		}
		g.records = append(g.records, rec)
	}

	return ordered
}

// displayItem builds the human-readable account identifier used in findings
func displayItem(rec model.AccountRecord) string {
	name := strings.TrimSpace(rec.CreditorName)
	if name == "" {
		name = "UNKNOWN"
	}
	if rec.AccountNumberLast4 == "" {
		return name
	}
	return name + " #" + rec.AccountNumberLast4
}

package layouts

import (
	"regexp"
	"strings"

	"github.com/akravets/bureauscan/internal/model"
)

// ColumnarLayout parses blocks whose field lines carry up to three values
// on one line, column-aligned to the bureaus in fixed left-to-right order:
//
//	Account #       ****1234        ****1234        --
//	Date Opened     1/15/2020       2/20/2020       1/15/2020
//
// A placeholder token in any column means the bureau does not report the
// field and is never recorded as a literal value.
type ColumnarLayout struct {
	placeholders map[string]bool
}

// Columns are separated by two or more spaces or a tab
var columnSplit = regexp.MustCompile(`\t+|\s{2,}`)

// Name returns the layout name
func (l *ColumnarLayout) Name() string { return "columnar" }

// Detect always returns true; columnar is the fallback layout
func (l *ColumnarLayout) Detect(block []string) bool { return true }

// Parse extracts per-bureau values from column-aligned field lines
func (l *ColumnarLayout) Parse(block []string) Values {
	values := make(Values)

	for _, line := range block {
		attr, rest, ok := MatchLabel(line)
		if !ok || strings.TrimSpace(rest) == "" {
			continue
		}

		cols := splitColumns(rest)
		for i, col := range cols {
			if i >= len(model.BureauOrder) {
				break
			}
			if col == "" || l.placeholders[strings.ToLower(col)] {
				continue
			}
			values.Set(model.BureauOrder[i], attr, col)
		}
	}

	return values
}

// splitColumns splits a field-line remainder into trimmed column tokens
func splitColumns(rest string) []string {
	parts := columnSplit.Split(strings.TrimSpace(rest), -1)
	cols := make([]string, 0, len(parts))
	for _, p := range parts {
		cols = append(cols, strings.TrimSpace(p))
	}
	return cols
}

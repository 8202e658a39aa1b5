package layouts

import (
	"strings"

	"github.com/akravets/bureauscan/internal/model"
)

// StackedLayout parses blocks that repeat the fields once per bureau under
// a bureau-name heading:
//
//	TransUnion
//	Account #: ****1234
//	Date Opened: 1/15/2020
//	Experian
//	Account #: ****1234
//	Date Opened: 2/20/2020
//
// Field lines before any bureau heading have no owner and are dropped.
type StackedLayout struct {
	placeholders map[string]bool
}

// Name returns the layout name
func (l *StackedLayout) Name() string { return "stacked" }

// Detect matches blocks containing at least one bureau heading line
func (l *StackedLayout) Detect(block []string) bool {
	for _, line := range block {
		if IsBureauHeading(line) {
			return true
		}
	}
	return false
}

// Parse walks the block tracking the current bureau context
func (l *StackedLayout) Parse(block []string) Values {
	values := make(Values)
	var current model.Bureau
	haveBureau := false

	for _, line := range block {
		if b, ok := bureauFromHeading(line); ok {
			current = b
			haveBureau = true
			continue
		}

		attr, rest, ok := MatchLabel(line)
		if !ok || !haveBureau {
			continue
		}

		value := strings.TrimSpace(rest)
		if value == "" || l.placeholders[strings.ToLower(value)] {
			continue
		}
		values.Set(current, attr, value)
	}

	return values
}

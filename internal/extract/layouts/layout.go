package layouts

import (
	"strings"

	"github.com/akravets/bureauscan/internal/model"
)

// Values holds the per-bureau field values parsed out of one account block.
// Only non-placeholder values are recorded; a bureau absent from the map
// contributed nothing.
type Values map[model.Bureau]map[Attr]string

// Set records a value, allocating the bureau map on first use
func (v Values) Set(b model.Bureau, attr Attr, value string) {
	if v[b] == nil {
		v[b] = make(map[Attr]string)
	}
	v[b][attr] = value
}

// Layout parses one vendor-specific account block shape
type Layout interface {
	// Name returns the layout name
	Name() string

	// Detect checks whether this layout matches the block's shape
	Detect(block []string) bool

	// Parse extracts per-bureau field values from the block
	Parse(block []string) Values
}

// Registry holds the known layouts and a fallback
type Registry struct {
	layouts      []Layout
	fallback     Layout
	placeholders map[string]bool
}

// NewRegistry creates a registry with the built-in layouts. The stacked
// layout is tried first because its bureau headings are unambiguous; the
// columnar layout is the fallback for everything else.
func NewRegistry(placeholders []string) *Registry {
	ph := make(map[string]bool, len(placeholders))
	for _, p := range placeholders {
		ph[strings.ToLower(p)] = true
	}

	r := &Registry{placeholders: ph}
	r.Register(&StackedLayout{placeholders: ph})
	r.fallback = &ColumnarLayout{placeholders: ph}
	return r
}

// Register adds a layout ahead of the fallback
func (r *Registry) Register(l Layout) {
	r.layouts = append(r.layouts, l)
}

// Parse finds the matching layout and parses the block with it
func (r *Registry) Parse(block []string) (Values, string) {
	for _, l := range r.layouts {
		if l.Detect(block) {
			return l.Parse(block), l.Name()
		}
	}
	return r.fallback.Parse(block), r.fallback.Name()
}

// IsPlaceholder reports whether a column token means "not reported"
func (r *Registry) IsPlaceholder(token string) bool {
	return r.placeholders[strings.ToLower(strings.TrimSpace(token))]
}

// bureauFromHeading returns the bureau named by a heading line, if any
func bureauFromHeading(line string) (model.Bureau, bool) {
	folded := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ":")))
	switch folded {
	case "transunion", "trans union", "tu":
		return model.BureauTransUnion, true
	case "experian", "ex":
		return model.BureauExperian, true
	case "equifax", "eq":
		return model.BureauEquifax, true
	}
	return "", false
}

// IsBureauHeading reports whether the line is exactly a bureau name
func IsBureauHeading(line string) bool {
	_, ok := bureauFromHeading(line)
	return ok
}

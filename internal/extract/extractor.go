package extract

import (
	"regexp"
	"strings"

	"github.com/akravets/bureauscan/internal/extract/layouts"
	"github.com/akravets/bureauscan/internal/model"
)

// Extractor converts raw credit-report text into per-bureau account records.
// It has no knowledge of detection rules and never fails on malformed
// input: text with no recognizable accounts yields empty lists.
type Extractor struct {
	cfg      model.ExtractConfig
	registry *layouts.Registry
}

// New creates an extractor with the given configuration
func New(cfg model.ExtractConfig) *Extractor {
	return &Extractor{
		cfg:      cfg,
		registry: layouts.NewRegistry(cfg.Placeholders),
	}
}

var (
	headerPattern  = regexp.MustCompile(`(?i)account\s*(#|number)`)
	pageMarker     = regexp.MustCompile(`(?i)^\s*page\s+\d+`)
	rulerLine      = regexp.MustCompile(`^[-=_*]{3,}$`)
	inquiryHeading = regexp.MustCompile(`(?i)^\s*(hard\s+)?inquiries\b`)
)

// block is one segmented account: a creditor name plus the lines between
// its header and the next header
type block struct {
	creditor string
	lines    []string
}

// Extract runs the full extraction pipeline over raw report text.
// Deterministic: identical input yields identical output, with records in
// input line order.
func (e *Extractor) Extract(rawText string) *model.RecordBundle {
	lines := splitLines(rawText)

	bundle := &model.RecordBundle{
		Client: extractClient(lines, rawText, e.cfg.ClientScanLines),
		Mode:   model.ModeStructured,
	}

	nextID := 1
	for _, blk := range e.segment(lines) {
		values, _ := e.registry.Parse(blk.lines)
		for _, rec := range e.materialize(blk, values) {
			rec.ID = nextID
			nextID++
			if rec.IsCollection {
				bundle.Collections = append(bundle.Collections, rec)
			} else {
				bundle.Tradelines = append(bundle.Tradelines, rec)
			}
		}
	}

	bundle.Inquiries = extractInquiries(lines)

	// Degraded input: structured segmentation found nothing, so fall back
	// to low-confidence synthesis and mark the whole bundle accordingly
	if len(bundle.Tradelines) == 0 && len(bundle.Collections) == 0 {
		tradelines, collections := e.fallback(lines, nextID)
		if len(tradelines) > 0 || len(collections) > 0 {
			bundle.Tradelines = tradelines
			bundle.Collections = collections
			bundle.Mode = model.ModeFallback
		}
	}

	return bundle
}

// segment walks the lines with a two-state machine (outside / in a block)
// and emits a completed block on every transition, instead of mutating one
// shared "current account" while scanning.
func (e *Extractor) segment(lines []string) []block {
	var blocks []block

	inBlock := false
	var current block
	blockStart := 0

	flush := func() {
		if inBlock {
			blocks = append(blocks, current)
			inBlock = false
		}
	}

	for i, line := range lines {
		if inquiryHeading.MatchString(line) {
			flush()
			continue
		}

		if !headerPattern.MatchString(line) {
			if inBlock {
				current.lines = append(current.lines, line)
			}
			continue
		}

		// An Account # line inside a stacked block repeats once per bureau
		// section; only a header not preceded by a bureau heading starts a
		// fresh account
		if inBlock && layouts.IsBureauHeading(previousNonEmpty(lines, i, blockStart)) {
			current.lines = append(current.lines, line)
			continue
		}

		flush()
		floor := blockStart
		current = block{
			creditor: creditorBefore(lines, i, floor),
			lines:    []string{line},
		}
		blockStart = i
		inBlock = true
	}
	flush()

	return blocks
}

// previousNonEmpty returns the nearest non-blank line above index i, not
// looking past floor
func previousNonEmpty(lines []string, i, floor int) string {
	for j := i - 1; j >= floor; j-- {
		if strings.TrimSpace(lines[j]) != "" {
			return lines[j]
		}
	}
	return ""
}

// creditorBefore reads backward from a header line for the first line that
// is not a bureau name, page marker, or field label. That line is the
// block's creditor name.
func creditorBefore(lines []string, headerIdx, floor int) string {
	lowest := headerIdx - 8
	if lowest < floor {
		lowest = floor
	}

	for j := headerIdx - 1; j >= lowest; j-- {
		candidate := strings.TrimSpace(lines[j])
		if candidate == "" {
			continue
		}
		if layouts.IsBureauHeading(candidate) || layouts.IsFieldLabel(candidate) {
			continue
		}
		if pageMarker.MatchString(candidate) || rulerLine.MatchString(candidate) {
			continue
		}
		return candidate
	}
	return "UNKNOWN"
}

// materialize emits one AccountRecord per bureau that contributed at least
// one non-placeholder value. A bureau with zero fields produces no record.
func (e *Extractor) materialize(blk block, values layouts.Values) []model.AccountRecord {
	blockText := strings.ToLower(strings.Join(blk.lines, "\n"))
	isCollection := strings.Contains(blockText, "collection") || e.isCollectionAgency(blk.creditor)
	isMedical := strings.Contains(strings.ToLower(blk.creditor), "medical")

	var records []model.AccountRecord
	for _, bureau := range model.BureauOrder {
		fields := values[bureau]
		if len(fields) == 0 {
			continue
		}

		rec := model.AccountRecord{
			CreditorName:           blk.creditor,
			AccountNumberLast4:     Last4(fields[layouts.AttrAccountNumber]),
			Bureau:                 bureau,
			Status:                 fields[layouts.AttrStatus],
			OpenDate:               NormalizeDate(fields[layouts.AttrDateOpened]),
			DateOfLastActivity:     NormalizeDate(fields[layouts.AttrLastActivity]),
			LastPaymentDate:        NormalizeDate(fields[layouts.AttrLastPayment]),
			DateOfFirstDelinquency: NormalizeDate(fields[layouts.AttrFirstDelinquency]),
			CreditLimit:            NormalizeAmount(fields[layouts.AttrCreditLimit]),
			IsCollection:           isCollection,
		}

		if balance := NormalizeAmount(fields[layouts.AttrBalance]); balance != nil {
			rec.CurrentBalance = *balance
		}

		if isCollection {
			rec.CollectorName = blk.creditor
			rec.OriginalCreditor = strings.TrimSpace(fields[layouts.AttrOriginalCreditor])
			rec.IsMedicalDebt = isMedical
		}

		records = append(records, rec)
	}

	return records
}

// isCollectionAgency matches the creditor against known agency fragments
func (e *Extractor) isCollectionAgency(creditor string) bool {
	upper := strings.ToUpper(creditor)
	for _, fragment := range e.cfg.CollectionFragments {
		if strings.Contains(upper, fragment) {
			return true
		}
	}
	return false
}

// splitLines normalizes line endings and splits the text
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

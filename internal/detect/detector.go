package detect

import (
	"fmt"
	"strings"
	"time"

	"github.com/akravets/bureauscan/internal/model"
)

// Detector applies the fixed discrepancy rule catalog to an extracted
// record bundle. It is a pure, single deterministic pass: rules that cannot
// evaluate (insufficient inputs) silently produce zero findings, and no
// rule ever fails on missing data.
type Detector struct {
	cfg model.DetectConfig
	now time.Time
}

// New creates a detector evaluating against the current time
func New(cfg model.DetectConfig) *Detector {
	return NewAt(cfg, time.Now().UTC())
}

// NewAt creates a detector with a fixed evaluation time, used by the
// inquiry age rule. Tests inject a clock here for determinism.
func NewAt(cfg model.DetectConfig, now time.Time) *Detector {
	return &Detector{cfg: cfg, now: now}
}

// Detect evaluates every rule and returns findings in fixed order:
// tradeline groups (first-seen order, rule order within a group), then
// collections (record order, rule order), then inquiries.
func (d *Detector) Detect(bundle *model.RecordBundle) []model.Finding {
	var findings []model.Finding
	nextID := 1

	emit := func(typ model.FindingType, item string, bureaus []model.Bureau, evidence string) {
		meta := ruleCatalog[typ]
		findings = append(findings, model.Finding{
			ID:              nextID,
			Type:            typ,
			Item:            item,
			BureausAffected: bureaus,
			Severity:        meta.Severity,
			LegalBasis:      meta.LegalBasis,
			Evidence:        evidence,
			Action:          meta.Action,
			ImpactScore:     meta.ImpactScore,
			Timeline:        meta.Timeline,
			ClaimIndicator:  meta.ClaimIndicator,
		})
		nextID++
	}

	// A discrepancy requires at least two independent reports to disagree,
	// so single-record groups are skipped entirely
	for _, g := range groupRecords(bundle.Tradelines) {
		if len(g.records) < 2 {
			continue
		}
		d.checkDateMismatch(g, model.FindingDateMismatchOpen, "open date",
			func(r model.AccountRecord) string { return r.OpenDate },
			d.cfg.OpenDateThresholdDays, emit)
		d.checkDateMismatch(g, model.FindingDateMismatchActivity, "date of last activity",
			func(r model.AccountRecord) string { return r.DateOfLastActivity },
			d.cfg.ActivityThresholdDays, emit)
		d.checkStatusMismatch(g, emit)
		d.checkLimitMismatch(g, emit)
	}

	for _, rec := range bundle.Collections {
		d.checkCollection(rec, emit)
	}

	for _, inq := range bundle.Inquiries {
		d.checkInquiry(inq, emit)
	}

	return findings
}

type emitFunc func(typ model.FindingType, item string, bureaus []model.Bureau, evidence string)

// checkDateMismatch compares a date field pairwise across all bureau
// records in the group. The first qualifying pair wins: one finding per
// rule per group, not one per pair.
func (d *Detector) checkDateMismatch(g *group, typ model.FindingType, fieldName string, field func(model.AccountRecord) string, thresholdDays int, emit emitFunc) {
	for i := 0; i < len(g.records); i++ {
		a := g.records[i]
		dateA := field(a)
		if dateA == "" {
			continue
		}
		for j := i + 1; j < len(g.records); j++ {
			b := g.records[j]
			dateB := field(b)
			if dateB == "" {
				continue
			}
			days, ok := calendarDays(dateA, dateB)
			if !ok || days <= thresholdDays {
				continue
			}
			evidence := fmt.Sprintf("%s reports %s %s while %s reports %s, a difference of %d days",
				a.Bureau.DisplayName(), fieldName, dateA, b.Bureau.DisplayName(), dateB, days)
			emit(typ, g.item, []model.Bureau{a.Bureau, b.Bureau}, evidence)
			return
		}
	}
}

// checkStatusMismatch fires once when the set of distinct normalized
// statuses across reporting bureaus has more than one member, listing every
// bureau with its literal status string.
func (d *Detector) checkStatusMismatch(g *group, emit emitFunc) {
	var reporting []model.AccountRecord
	distinct := make(map[string]bool)
	for _, rec := range g.records {
		if strings.TrimSpace(rec.Status) == "" {
			continue
		}
		reporting = append(reporting, rec)
		distinct[normalizeStatus(rec.Status)] = true
	}
	if len(distinct) < 2 {
		return
	}

	parts := make([]string, 0, len(reporting))
	bureaus := make([]model.Bureau, 0, len(reporting))
	for _, rec := range reporting {
		parts = append(parts, fmt.Sprintf("%s reports %q", rec.Bureau.DisplayName(), rec.Status))
		bureaus = append(bureaus, rec.Bureau)
	}
	emit(model.FindingStatusMismatch, g.item, bureaus,
		"Account status conflicts: "+strings.Join(parts, "; "))
}

// checkLimitMismatch fires once when bureaus report more than one distinct
// non-null credit limit and at least one limit is positive.
func (d *Detector) checkLimitMismatch(g *group, emit emitFunc) {
	var reporting []model.AccountRecord
	distinct := make(map[int]bool)
	anyPositive := false
	for _, rec := range g.records {
		if rec.CreditLimit == nil {
			continue
		}
		reporting = append(reporting, rec)
		distinct[*rec.CreditLimit] = true
		if *rec.CreditLimit > 0 {
			anyPositive = true
		}
	}
	if !anyPositive || len(distinct) < 2 {
		return
	}

	parts := make([]string, 0, len(reporting))
	bureaus := make([]model.Bureau, 0, len(reporting))
	for _, rec := range reporting {
		parts = append(parts, fmt.Sprintf("%s reports $%d", rec.Bureau.DisplayName(), *rec.CreditLimit))
		bureaus = append(bureaus, rec.Bureau)
	}
	emit(model.FindingLimitMismatch, g.item, bureaus,
		"Credit limit conflicts: "+strings.Join(parts, "; "))
}

// checkCollection applies the per-record collection rules
func (d *Detector) checkCollection(rec model.AccountRecord, emit emitFunc) {
	item := displayItem(rec)
	bureaus := []model.Bureau{rec.Bureau}

	if strings.TrimSpace(rec.OriginalCreditor) == "" {
		emit(model.FindingMissingOC, item, bureaus,
			fmt.Sprintf("%s reports collection %q with no original creditor named; the debt-ownership chain cannot be confirmed",
				rec.Bureau.DisplayName(), rec.CollectorName))
	}

	if rec.DateOfFirstDelinquency == "" {
		emit(model.FindingMissingDOFD, item, bureaus,
			fmt.Sprintf("%s reports collection %q with no date of first delinquency; the 7-year reporting window cannot be confirmed",
				rec.Bureau.DisplayName(), rec.CollectorName))
	}
}

// checkInquiry flags hard inquiries older than the configured window
func (d *Detector) checkInquiry(inq model.Inquiry, emit emitFunc) {
	if inq.Date == "" {
		return
	}
	pulled, err := time.Parse("2006-01-02", inq.Date)
	if err != nil {
		return
	}
	ageDays := int(d.now.Sub(pulled).Hours() / 24)
	if ageDays <= d.cfg.InquiryMaxAgeDays {
		return
	}
	emit(model.FindingStaleInquiry, inq.Creditor, []model.Bureau{inq.Bureau},
		fmt.Sprintf("%s shows a hard inquiry by %q dated %s, %d days old (limit %d)",
			inq.Bureau.DisplayName(), inq.Creditor, inq.Date, ageDays, d.cfg.InquiryMaxAgeDays))
}

// normalizeStatus reduces a status to lowercase letters only so "Paid/Closed"
// and "PAID CLOSED" compare equal
func normalizeStatus(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// calendarDays returns the absolute day difference between two normalized
// dates; ok is false if either fails to parse
func calendarDays(a, b string) (int, bool) {
	ta, errA := time.Parse("2006-01-02", a)
	tb, errB := time.Parse("2006-01-02", b)
	if errA != nil || errB != nil {
		return 0, false
	}
	days := int(ta.Sub(tb).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days, true
}

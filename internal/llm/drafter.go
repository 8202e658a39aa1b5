package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/akravets/bureauscan/internal/model"
)

// Drafter produces an optional dispute-letter draft from a finished audit
// report. Drafting always happens after detection and never feeds back into
// findings; a failed draft degrades to a warning, not a failed audit.
type Drafter struct {
	provider Provider
	config   Config
	limiter  *RequestLimiter
}

// NewDrafter creates a drafter from configuration. A nil return with nil
// error means drafting is disabled.
func NewDrafter(config Config) (*Drafter, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}

	return &Drafter{
		provider: provider,
		config:   config,
		limiter:  NewRequestLimiter(1, 2), // 1 req/s per endpoint is plenty for drafting
	}, nil
}

// IsEnabled reports whether a provider is configured
func (d *Drafter) IsEnabled() bool {
	return d != nil && d.provider != nil
}

// GenerateDraft asks the provider for a letter draft and, in strict
// evidence mode, verifies the draft cites only values present in the report.
func (d *Drafter) GenerateDraft(ctx context.Context, report *model.Report) (*model.LetterDraft, error) {
	allowed := make([]string, 0, len(report.Findings))
	for _, f := range report.Findings {
		allowed = append(allowed, f.Evidence)
	}

	if err := d.limiter.Wait(ctx, d.endpointKey()); err != nil {
		return nil, err
	}

	timeout := time.Duration(d.config.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := d.provider.Draft(callCtx, DraftRequest{
		Report:          report,
		AllowedEvidence: allowed,
		Model:           d.config.Model,
		MaxTokens:       d.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("draft letter: %w", err)
	}

	draft := &model.LetterDraft{
		Enabled:        true,
		Provider:       d.provider.Name(),
		Model:          resp.Model,
		StrictEvidence: d.config.StrictEvidence,
		DraftMD:        resp.DraftMD,
	}

	if d.config.StrictEvidence {
		draft.Warnings = verifyDraft(resp.DraftMD, report)
	}

	return draft, nil
}

func (d *Drafter) endpointKey() string {
	if d.config.BaseURL != "" {
		return d.config.BaseURL
	}
	return d.config.Provider
}

var (
	draftAmount = regexp.MustCompile(`\$[\d,]+`)
	draftLast4  = regexp.MustCompile(`#(\d{4})\b`)
)

// verifyDraft scans the draft for cited dollar amounts and account-number
// fragments that do not appear anywhere in the report. Leaks become
// warnings so a reviewer sees exactly what the model invented.
func verifyDraft(draft string, report *model.Report) []string {
	known := knownLiterals(report)

	var warnings []string
	for _, amount := range draftAmount.FindAllString(draft, -1) {
		if !known[strings.ReplaceAll(amount, ",", "")] {
			warnings = append(warnings, fmt.Sprintf("draft cites amount %s not present in the audit report", amount))
		}
	}
	for _, m := range draftLast4.FindAllStringSubmatch(draft, -1) {
		if !known[m[1]] {
			warnings = append(warnings, fmt.Sprintf("draft cites account fragment #%s not present in the audit report", m[1]))
		}
	}
	return warnings
}

// knownLiterals collects every amount and last-4 the report legitimately
// contains, normalized the way verifyDraft compares them
func knownLiterals(report *model.Report) map[string]bool {
	known := make(map[string]bool)

	addRecord := func(rec model.AccountRecord) {
		if rec.AccountNumberLast4 != "" {
			known[rec.AccountNumberLast4] = true
		}
		known[fmt.Sprintf("$%d", rec.CurrentBalance)] = true
		if rec.CreditLimit != nil {
			known[fmt.Sprintf("$%d", *rec.CreditLimit)] = true
		}
	}
	for _, rec := range report.Tradelines {
		addRecord(rec)
	}
	for _, rec := range report.Collections {
		addRecord(rec)
	}

	return known
}

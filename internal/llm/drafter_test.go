package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/akravets/bureauscan/internal/model"
)

// fakeProvider returns a canned draft without any network access
type fakeProvider struct {
	draft string
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Draft(ctx context.Context, req DraftRequest) (*DraftResponse, error) {
	return &DraftResponse{DraftMD: p.draft, Model: req.Model}, nil
}

func limitPtr(n int) *int { return &n }

func testReport() *model.Report {
	return &model.Report{
		Subject: "sample",
		Client:  model.Client{Name: "Jane Q Consumer"},
		Tradelines: []model.AccountRecord{{
			CreditorName:       "CHASE BANK",
			AccountNumberLast4: "1234",
			Bureau:             model.BureauTransUnion,
			CurrentBalance:     1200,
			CreditLimit:        limitPtr(5000),
		}},
		Findings: []model.Finding{{
			ID:       1,
			Type:     model.FindingDateMismatchOpen,
			Evidence: "TransUnion reports open date 2020-01-01 while Experian reports 2020-03-15, a difference of 74 days",
		}},
		Summary: model.Summary{TotalFindings: 1, ImpactIndex: 70},
	}
}

func TestNewDrafterDisabled(t *testing.T) {
	d, err := NewDrafter(Config{Provider: ""})
	if err != nil {
		t.Fatalf("NewDrafter: %v", err)
	}
	if d != nil {
		t.Fatal("drafter created with no provider configured")
	}
	if d.IsEnabled() {
		t.Error("nil drafter reports enabled")
	}
}

func TestNewDrafterUnknownProvider(t *testing.T) {
	if _, err := NewDrafter(Config{Provider: "carrier-pigeon"}); err == nil {
		t.Error("unknown provider = nil error, want failure")
	}
}

func TestGenerateDraftStrictEvidence(t *testing.T) {
	// The fake draft cites one legitimate amount and two inventions
	drafter := &Drafter{
		provider: &fakeProvider{draft: "Your records show a $5,000 limit, a $9,999 balance, and account #7777."},
		config:   Config{Provider: "fake", StrictEvidence: true, Timeout: 5},
		limiter:  NewRequestLimiter(100, 100),
	}

	draft, err := drafter.GenerateDraft(context.Background(), testReport())
	if err != nil {
		t.Fatalf("GenerateDraft: %v", err)
	}

	if !draft.Enabled || draft.Provider != "fake" {
		t.Errorf("draft = %+v", draft)
	}
	if len(draft.Warnings) != 2 {
		t.Fatalf("warnings = %v, want 2", draft.Warnings)
	}
	joined := strings.Join(draft.Warnings, "\n")
	if !strings.Contains(joined, "$9,999") {
		t.Errorf("warnings missing invented amount: %v", draft.Warnings)
	}
	if !strings.Contains(joined, "#7777") {
		t.Errorf("warnings missing invented account fragment: %v", draft.Warnings)
	}
}

func TestGenerateDraftWithoutStrictEvidence(t *testing.T) {
	drafter := &Drafter{
		provider: &fakeProvider{draft: "You owe $9,999."},
		config:   Config{Provider: "fake", StrictEvidence: false, Timeout: 5},
		limiter:  NewRequestLimiter(100, 100),
	}

	draft, err := drafter.GenerateDraft(context.Background(), testReport())
	if err != nil {
		t.Fatal(err)
	}
	if len(draft.Warnings) != 0 {
		t.Errorf("warnings = %v, want none when strict mode is off", draft.Warnings)
	}
}

func TestVerifyDraftCleanDraft(t *testing.T) {
	draft := "Account #1234 shows a $1,200 balance against a $5,000 limit."
	if warnings := verifyDraft(draft, testReport()); len(warnings) != 0 {
		t.Errorf("warnings = %v, want none for a draft citing only report values", warnings)
	}
}

func TestBuildPrompt(t *testing.T) {
	report := testReport()
	allowed := []string{report.Findings[0].Evidence}

	prompt := BuildPrompt(report, allowed)
	if !strings.Contains(prompt, report.Findings[0].Evidence) {
		t.Error("prompt missing allowed evidence")
	}
	if !strings.Contains(prompt, "Jane Q Consumer") {
		t.Error("prompt missing consumer name")
	}
	if !strings.Contains(prompt, "DO NOT invent") {
		t.Error("prompt missing invention prohibition")
	}
	if strings.Contains(prompt, "fallback") {
		t.Error("fallback warning present for structured extraction")
	}
}

func TestBuildPromptFallbackWarning(t *testing.T) {
	report := testReport()
	report.Mode = model.ModeFallback
	if prompt := BuildPrompt(report, nil); !strings.Contains(prompt, "low-confidence fallback") {
		t.Error("prompt missing fallback warning")
	}
}

func TestBuildPromptCapsEvidenceList(t *testing.T) {
	allowed := make([]string, 30)
	for i := range allowed {
		allowed[i] = "evidence line"
	}
	prompt := BuildPrompt(testReport(), allowed)
	if !strings.Contains(prompt, "and 10 more findings") {
		t.Error("prompt missing evidence overflow marker")
	}
}

func TestRequestLimiterPerEndpoint(t *testing.T) {
	l := NewRequestLimiter(1, 1)

	if !l.Allow("a") {
		t.Error("first request to endpoint a denied")
	}
	if l.Allow("a") {
		t.Error("second immediate request to endpoint a allowed")
	}
	// A different endpoint has its own bucket
	if !l.Allow("b") {
		t.Error("first request to endpoint b denied")
	}

	l.SetEndpointRate("a", 1000, 10)
	if !l.Allow("a") {
		t.Error("endpoint a denied after rate override")
	}
}

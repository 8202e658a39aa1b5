package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/akravets/bureauscan/internal/model"
)

const sampleReport = `Credit Report
Name: Jane Q Consumer
123 Main St
Dallas, TX 75001

CHASE BANK
Account #       ****1234        ****1234        ****1234
Date Opened     1/15/2020       3/15/2020       1/15/2020
Account Status  Open            Open            Open
Credit Limit    $5,000          $5,000          $5,000

MIDLAND FUNDING
Account #       ****9876        ****9876        ****9876
Balance Owed    $650            $650            $650
`

func newTestPipeline() *Pipeline {
	return New(model.DefaultConfig())
}

func TestAuditTextEndToEnd(t *testing.T) {
	result, err := newTestPipeline().AuditText(context.Background(), "sample", sampleReport)
	if err != nil {
		t.Fatalf("AuditText: %v", err)
	}

	report := result.Report
	if report.Subject != "sample" {
		t.Errorf("subject = %q, want sample", report.Subject)
	}
	if report.Mode != model.ModeStructured {
		t.Errorf("mode = %q, want structured", report.Mode)
	}
	if report.Client.Name != "Jane Q Consumer" {
		t.Errorf("client = %q, want Jane Q Consumer", report.Client.Name)
	}
	if len(report.Tradelines) != 3 || len(report.Collections) != 3 {
		t.Fatalf("accounts = %d/%d, want 3 tradelines and 3 collections",
			len(report.Tradelines), len(report.Collections))
	}

	// The sample carries a 60-day open-date conflict plus undocumented
	// collections, so findings are guaranteed
	if len(report.Findings) == 0 {
		t.Fatal("no findings detected")
	}
	hasOpenMismatch := false
	for _, f := range report.Findings {
		if f.Type == model.FindingDateMismatchOpen {
			hasOpenMismatch = true
		}
	}
	if !hasOpenMismatch {
		t.Error("open-date mismatch not detected")
	}
	if report.Summary.TotalFindings != len(report.Findings) {
		t.Errorf("summary total = %d, findings = %d", report.Summary.TotalFindings, len(report.Findings))
	}
	if report.LLM != nil {
		t.Error("letter draft present with LLM disabled")
	}
}

func TestAuditTextEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \n\t  "} {
		if _, err := newTestPipeline().AuditText(context.Background(), "x", input); err == nil {
			t.Errorf("AuditText(%q) = nil error, want failure", input)
		}
	}
}

func TestAuditTextDeterministicFindings(t *testing.T) {
	p := newTestPipeline()
	a, err := p.AuditText(context.Background(), "s", sampleReport)
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.AuditText(context.Background(), "s", sampleReport)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Report.Findings, b.Report.Findings) {
		t.Error("identical input produced different findings")
	}
}

func TestAuditFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample_report.txt")
	if err := os.WriteFile(path, []byte(sampleReport), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := newTestPipeline().AuditFile(context.Background(), path)
	if err != nil {
		t.Fatalf("AuditFile: %v", err)
	}
	if result.Report.Subject != "sample report" {
		t.Errorf("subject = %q, want sample report", result.Report.Subject)
	}

	if _, err := newTestPipeline().AuditFile(context.Background(), filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("AuditFile on missing path = nil error, want failure")
	}
}

func TestSubjectFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/tmp/jane_doe-2026.txt", "jane doe 2026"},
		{"report.html", "report"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		if got := subjectFromPath(tt.path); got != tt.want {
			t.Errorf("subjectFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

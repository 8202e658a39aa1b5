package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/akravets/bureauscan/internal/model"
)

// Renderer writes audit reports as JSON, Markdown, and a stdout summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Credit Report Audit: %s\n\n", report.Subject)
	fmt.Fprintf(&b, "Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04 UTC"))

	if report.Mode == model.ModeFallback {
		b.WriteString("> ⚠️ **Low-confidence extraction.** No structured account blocks were found; ")
		b.WriteString("the records below are synthesized guesses and must be verified before use.\n\n")
	}

	b.WriteString("## Consumer\n\n")
	fmt.Fprintf(&b, "- Name: %s\n", orUnknown(report.Client.Name))
	fmt.Fprintf(&b, "- State: %s\n", orUnknown(report.Client.State))
	if report.Client.FlaggedForFraud {
		b.WriteString("- ⚠️ Fraud marker present in report text\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Accounts (%d tradelines, %d collections, %d inquiries)\n\n",
		len(report.Tradelines), len(report.Collections), len(report.Inquiries))

	fmt.Fprintf(&b, "## Findings (%d)\n\n", len(report.Findings))
	for _, f := range report.Findings {
		fmt.Fprintf(&b, "### %s %s — %s\n\n", severityIcon(f.Severity), f.Type, f.Item)
		fmt.Fprintf(&b, "- Severity: %s (impact %d/10)\n", f.Severity, f.ImpactScore)
		fmt.Fprintf(&b, "- Bureaus: %s\n", joinBureaus(f.BureausAffected))
		fmt.Fprintf(&b, "- Evidence: %s\n", f.Evidence)
		fmt.Fprintf(&b, "- Legal basis: %s\n", f.LegalBasis)
		fmt.Fprintf(&b, "- Action: %s\n", f.Action)
		fmt.Fprintf(&b, "- Timeline: %s\n", f.Timeline)
		if f.ClaimIndicator {
			b.WriteString("- ⚑ Potential violation — consider escalation\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## Summary\n\n")
	s := report.Summary
	fmt.Fprintf(&b, "- Impact index: %d/100\n", s.ImpactIndex)
	fmt.Fprintf(&b, "- Severity: %d critical, %d high, %d medium, %d low\n",
		s.Critical, s.High, s.Medium, s.Low)
	fmt.Fprintf(&b, "- Escalation candidates: %d\n\n", s.ClaimCount)
	for _, sig := range s.Signals {
		fmt.Fprintf(&b, "- [%s] %s\n", sig.Type, sig.Description)
	}

	if r.includeFooter {
		b.WriteString("\n---\n\nGenerated by bureauscan. Findings describe reporting inconsistencies, not legal conclusions.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderLetterDraft writes the LLM letter draft to its own file
func (r *Renderer) RenderLetterDraft(draft *model.LetterDraft, path string) error {
	var b strings.Builder
	b.WriteString("# Dispute Letter Draft\n\n")
	fmt.Fprintf(&b, "Provider: %s/%s — review before sending; this draft is a starting point, not legal advice.\n\n",
		draft.Provider, draft.Model)
	for _, w := range draft.Warnings {
		fmt.Fprintf(&b, "> ⚠️ %s\n", w)
	}
	b.WriteString("\n")
	b.WriteString(draft.DraftMD)
	b.WriteString("\n")

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write letter draft: %w", err)
	}
	return nil
}

// RenderSummary prints the one-screen result to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\n%s\n", strings.Repeat("─", 60))
	fmt.Printf("  %s\n", report.Subject)
	fmt.Printf("%s\n", strings.Repeat("─", 60))
	fmt.Printf("  Accounts:  %d tradelines, %d collections, %d inquiries\n",
		len(report.Tradelines), len(report.Collections), len(report.Inquiries))
	fmt.Printf("  Findings:  %d (%d high+, %d escalation candidates)\n",
		report.Summary.TotalFindings,
		report.Summary.Critical+report.Summary.High,
		report.Summary.ClaimCount)
	fmt.Printf("  Impact:    %d/100\n", report.Summary.ImpactIndex)
	if report.Mode == model.ModeFallback {
		fmt.Printf("  ⚠️  Low-confidence extraction (fallback mode)\n")
	}
	fmt.Printf("%s\n", strings.Repeat("─", 60))
}

func severityIcon(s model.Severity) string {
	switch s {
	case model.SeverityCritical:
		return "🔴"
	case model.SeverityHigh:
		return "🟠"
	case model.SeverityMedium:
		return "🟡"
	default:
		return "⚪"
	}
}

func joinBureaus(bureaus []model.Bureau) string {
	names := make([]string, len(bureaus))
	for i, b := range bureaus {
		names[i] = b.DisplayName()
	}
	return strings.Join(names, ", ")
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(unknown)"
	}
	return s
}

package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akravets/bureauscan/internal/detect"
	"github.com/akravets/bureauscan/internal/extract"
	"github.com/akravets/bureauscan/internal/llm"
	"github.com/akravets/bureauscan/internal/model"
	"github.com/akravets/bureauscan/internal/summary"
)

// Pipeline orchestrates the complete audit: extract records, detect
// discrepancies, summarize, and optionally draft a dispute letter.
type Pipeline struct {
	extractor  *extract.Extractor
	detector   *detect.Detector
	summarizer *summary.Summarizer
	renderer   *Renderer
	drafter    *llm.Drafter // Optional letter drafter (nil if disabled)
	config     *model.Config
}

// New creates a pipeline from configuration
func New(cfg *model.Config) *Pipeline {
	var drafter *llm.Drafter
	if cfg.LLM.Provider != "" {
		d, err := llm.NewDrafter(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			drafter = d
		}
	}

	return &Pipeline{
		extractor:  extract.New(cfg.Extract),
		detector:   detect.New(cfg.Detect),
		summarizer: summary.New(),
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		drafter:    drafter,
		config:     cfg,
	}
}

// AuditResult contains the complete audit output
type AuditResult struct {
	Report *model.Report
}

// AuditText audits raw report text. HTML-saved reports are reduced to
// visible text first; the extractor itself only ever sees plain text.
// Empty input is the one caller-level hard failure, distinguishable from a
// clean report that simply produced zero findings.
func (p *Pipeline) AuditText(ctx context.Context, subject, rawText string) (*AuditResult, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, fmt.Errorf("no usable text in input")
	}

	if looksLikeHTML(rawText) {
		rawText = VisibleText(rawText)
	}

	bundle := p.extractor.Extract(rawText)
	findings := p.detector.Detect(bundle)
	sum := p.summarizer.Summarize(findings, bundle.Mode, bundle.Client)

	report := &model.Report{
		Subject:     subject,
		GeneratedAt: time.Now().UTC(),
		Mode:        bundle.Mode,
		Client:      bundle.Client,
		Tradelines:  bundle.Tradelines,
		Collections: bundle.Collections,
		Inquiries:   bundle.Inquiries,
		Findings:    findings,
		Summary:     sum,
	}

	// Letter draft runs AFTER detection and never affects findings
	if p.drafter != nil && p.drafter.IsEnabled() {
		draft, err := p.drafter.GenerateDraft(ctx, report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: letter draft generation failed: %v\n", err)
		} else if draft != nil {
			report.LLM = draft
		}
	}

	return &AuditResult{Report: report}, nil
}

// AuditFile reads a report file and audits its contents
func (p *Pipeline) AuditFile(ctx context.Context, path string) (*AuditResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	return p.AuditText(ctx, subjectFromPath(path), string(data))
}

// RenderReport writes the requested outputs and prints the stdout summary
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	if report.LLM != nil && report.LLM.Enabled && mdPath != "" {
		draftPath := strings.TrimSuffix(mdPath, ".md") + ".letter.md"
		if err := p.renderer.RenderLetterDraft(report.LLM, draftPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write letter draft: %v\n", err)
		} else if verbose {
			fmt.Printf("✓ Wrote Letter Draft: %s\n", draftPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}

// subjectFromPath derives a readable subject from the input file name
func subjectFromPath(path string) string {
	base := filepath.Base(path)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return base
}

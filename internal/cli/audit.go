package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/akravets/bureauscan/internal/model"
	"github.com/akravets/bureauscan/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	noFooter    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit <report.txt>",
	Short: "Audit one credit report text file for cross-bureau discrepancies",
	Long: `Audit extracts per-bureau account records from a credit report text file,
detects discrepancies between bureaus, and writes a findings report.

HTML-saved reports are reduced to visible text automatically. Reports that
defeat structured extraction fall back to low-confidence synthesis and are
clearly marked as such in the output.

Example:
  bureauscan audit report.txt
  bureauscan audit report.txt --json audit.json --md audit.md
  bureauscan audit report.txt --llm --llm-provider openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)

	// Output flags
	auditCmd.Flags().StringVar(&outJSON, "json", "audit.json", "output JSON path")
	auditCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	auditCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall audit timeout (matters only when LLM drafting is enabled)")
	auditCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	auditCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM dispute-letter drafting")
	auditCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	auditCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAudit(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Auditing: %s\n\n", path)
	}

	p := pipeline.New(cfg)

	result, err := p.AuditFile(ctx, path)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	if verbose {
		report := result.Report
		fmt.Fprintf(os.Stderr, "✓ Extracted %d tradelines, %d collections, %d inquiries\n",
			len(report.Tradelines), len(report.Collections), len(report.Inquiries))
		fmt.Fprintf(os.Stderr, "✓ Detected %d findings\n", len(report.Findings))
		fmt.Fprintf(os.Stderr, "✓ Impact index: %d/100\n", report.Summary.ImpactIndex)
		if report.Mode == model.ModeFallback {
			fmt.Fprintf(os.Stderr, "⚠ Fallback extraction: records are low-confidence\n")
		}
		if report.LLM != nil && report.LLM.Enabled {
			fmt.Fprintf(os.Stderr, "✓ Drafted dispute letter using %s/%s\n", report.LLM.Provider, report.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(result.Report, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// buildConfig merges defaults with flag overrides
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
		cfg.LLM.StrictEvidence = true // Always enforce

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}

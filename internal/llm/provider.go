package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/akravets/bureauscan/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Draft generates a dispute letter draft under strict evidence mode
	Draft(ctx context.Context, req DraftRequest) (*DraftResponse, error)
}

// DraftRequest contains the input for letter drafting
type DraftRequest struct {
	// Report is the completed audit report
	Report *model.Report

	// AllowedEvidence is the STRICT allowlist of finding evidence the LLM
	// may cite. The model must not introduce facts beyond this list.
	AllowedEvidence []string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// DraftResponse contains the provider's output
type DraftResponse struct {
	DraftMD    string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	Provider       string // "openai", "ollama", "" (disabled)
	Model          string
	APIKey         string
	BaseURL        string
	Timeout        int // seconds
	StrictEvidence bool
	MaxTokens      int
}

// ConfigFromModel converts the app config into the provider config
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:       cfg.Provider,
		Model:          cfg.Model,
		APIKey:         cfg.APIKey,
		BaseURL:        cfg.BaseURL,
		Timeout:        cfg.Timeout,
		StrictEvidence: cfg.StrictEvidence,
		MaxTokens:      cfg.MaxTokens,
	}
}

// NewProvider creates a provider based on configuration. An empty provider
// name means LLM drafting is disabled and returns nil.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)
	case "ollama":
		return NewOllamaProvider(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", config.Provider)
	}
}

// BuildPrompt constructs the drafting prompt with strict evidence mode
func BuildPrompt(report *model.Report, allowed []string) string {
	var b strings.Builder

	b.WriteString(`You are drafting a consumer credit dispute letter from an automated audit. The audit detects reporting inconsistencies - it NEVER establishes legal conclusions.

CRITICAL RULES:
1. You may ONLY cite facts from this evidence list:
`)
	if len(allowed) == 0 {
		b.WriteString("(no findings - state that the report appears consistent)\n")
	}
	for i, ev := range allowed {
		if i >= 20 {
			fmt.Fprintf(&b, "... and %d more findings\n", len(allowed)-20)
			break
		}
		fmt.Fprintf(&b, "- %s\n", ev)
	}
	b.WriteString(`
2. DO NOT invent account numbers, balances, dates, or creditor names.
3. Never assert that a law was broken - describe the inconsistency and request investigation.
4. Address the letter to a credit bureau dispute department; leave the recipient address as a placeholder.
5. Plain, firm, professional tone. No legal threats.

Audit summary:
`)
	fmt.Fprintf(&b, "- Consumer: %s\n", report.Client.Name)
	fmt.Fprintf(&b, "- Findings: %d (%d flagged for escalation)\n",
		report.Summary.TotalFindings, report.Summary.ClaimCount)
	fmt.Fprintf(&b, "- Impact index: %d/100\n", report.Summary.ImpactIndex)
	if report.Mode == model.ModeFallback {
		b.WriteString("- WARNING: extraction ran in low-confidence fallback mode; say the items need manual verification\n")
	}
	b.WriteString("\nProduce the letter in Markdown.")

	return b.String()
}

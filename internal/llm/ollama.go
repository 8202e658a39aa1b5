package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const defaultOllamaBaseURL = "http://localhost:11434/v1"

// OllamaProvider talks to a local Ollama server through its
// OpenAI-compatible endpoint; no API key is required.
type OllamaProvider struct {
	client *openai.Client
	config Config
}

// NewOllamaProvider creates a new Ollama provider
func NewOllamaProvider(config Config) (*OllamaProvider, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}

	clientConfig := openai.DefaultConfig("ollama") // Dummy key, Ollama ignores it
	clientConfig.BaseURL = baseURL

	return &OllamaProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name
func (p *OllamaProvider) Name() string {
	return "ollama"
}

// Draft generates a dispute letter draft
func (p *OllamaProvider) Draft(ctx context.Context, req DraftRequest) (*DraftResponse, error) {
	model := req.Model
	if model == "" {
		model = "llama3.1"
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1500
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(req.Report, req.AllowedEvidence),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("ollama chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from model %s", model)
	}

	return &DraftResponse{
		DraftMD:    resp.Choices[0].Message.Content,
		Model:      model,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}

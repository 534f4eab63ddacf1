package polish

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/yaklabco/wpslint/internal/logging"
	"github.com/yaklabco/wpslint/pkg/config"
)

// OpenAIClient implements Transformer against the OpenAI chat API.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

// NewOpenAIClient creates a Transformer from an API key and polish config.
// It returns nil when the key is empty, which callers treat as "polish off".
func NewOpenAIClient(apiKey string, cfg config.PolishConfig) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIClient{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// Transform sends instruction and text as a single chat completion.
func (c *OpenAIClient) Transform(ctx context.Context, instruction, text string) (string, error) {
	logger := logging.FromContext(ctx)
	logger.Debug("requesting remote rewrite", logging.FieldModel, c.model)

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPersona},
			{Role: openai.ChatMessageRoleUser, Content: instruction + "\n\n---\nOriginal:\n" + text},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

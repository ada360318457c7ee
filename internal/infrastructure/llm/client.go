package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"golang.org/x/time/rate"

	"github.com/gymcoach/backend/internal/domain"
)

// visionMaxTokens caps the food analysis completion length
const visionMaxTokens = 500

// Client wraps the OpenAI API behind the TextGenerator and
// VisionAnalyzer collaborator interfaces
type Client struct {
	api         openai.Client
	model       string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new OpenAI-backed model client. baseURL may be
// empty to use the platform default.
func NewClient(apiKey, baseURL, model string) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(3),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	// Keep a safety margin under typical per-minute completion quotas
	limiter := rate.NewLimiter(rate.Limit(2), 5)

	return &Client{
		api:         openai.NewClient(opts...),
		model:       model,
		rateLimiter: limiter,
	}
}

// SetDebug enables request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Complete sends a single-turn prompt to the text model
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return c.Chat(ctx, []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: systemPrompt},
		{Role: domain.RoleUser, Content: userPrompt},
	})
}

// Chat sends a full conversation to the text model and returns the
// completion text
func (c *Client) Chat(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)),
	}
	for _, msg := range messages {
		switch msg.Role {
		case domain.RoleSystem:
			params.Messages = append(params.Messages, openai.SystemMessage(msg.Content))
		case domain.RoleAssistant:
			params.Messages = append(params.Messages, openai.AssistantMessage(msg.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(msg.Content))
		}
	}

	if c.debug {
		log.Printf("[LLM] chat completion: model=%s messages=%d", c.model, len(messages))
	}

	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: completion returned no choices", domain.ErrUpstreamFailure)
	}

	return completion.Choices[0].Message.Content, nil
}

// AnalyzeImage sends an image to the vision model and returns its
// free-text analysis
func (c *Client) AnalyzeImage(ctx context.Context, systemPrompt string, imageData []byte, mimeType string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(imageData))

	if c.debug {
		log.Printf("[LLM] vision completion: model=%s image=%d bytes", c.model, len(imageData))
	}

	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(c.model),
		MaxTokens: openai.Int(visionMaxTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: dataURL,
				}),
			}),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: vision completion returned no choices", domain.ErrUpstreamFailure)
	}

	return completion.Choices[0].Message.Content, nil
}

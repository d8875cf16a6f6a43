package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ErrMissingAPIKey is returned by every call on a client built without credentials.
var ErrMissingAPIKey = errors.New("generation service API key is not configured")

// ErrEmptyResponse is returned by GenerateJSON when the model produced no text.
var ErrEmptyResponse = errors.New("empty response from model")

// Request is a single generation call.
type Request struct {
	Prompt string
	// SystemInstruction is the system-level directive sent alongside the prompt.
	SystemInstruction string
	// Schema constrains the response shape. Only used by GenerateJSON.
	Schema *genai.Schema
	Tier   ModelTier
}

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateContent returns free text for the request
	GenerateContent(ctx context.Context, req Request) (string, error)
	// GenerateJSON returns JSON text conforming to req.Schema
	GenerateJSON(ctx context.Context, req Request) (string, error)
	// GetModel returns the provider model name for a tier
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration.
// A missing API key does not fail construction: the returned client fails each call with
// ErrMissingAPIKey instead, so callers can fall back at generation time.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if apiKey == "" {
		return &unavailableClient{config: config}, nil
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// GenerateContent generates free text for the request
func (c *GeminiClient) GenerateContent(ctx context.Context, req Request) (string, error) {
	model, err := c.model(req)
	if err != nil {
		return "", err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp), nil
}

// GenerateJSON generates JSON constrained by req.Schema
func (c *GeminiClient) GenerateJSON(ctx context.Context, req Request) (string, error) {
	model, err := c.model(req)
	if err != nil {
		return "", err
	}
	model.ResponseMIMEType = "application/json"
	if req.Schema != nil {
		model.ResponseSchema = req.Schema
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return jsonFromResponse(resp)
}

func (c *GeminiClient) model(req Request) (*genai.GenerativeModel, error) {
	tier := req.Tier
	if tier == "" {
		tier = TierStandard
	}
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return nil, fmt.Errorf("no model configured for tier %s", tier)
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(c.config.temperature())
	if req.SystemInstruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.SystemInstruction)},
		}
	}
	return model, nil
}

// GetModel returns the model name for a tier
func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// unavailableClient stands in for a provider when no credentials are configured.
type unavailableClient struct {
	config *Config
}

func (c *unavailableClient) GenerateContent(context.Context, Request) (string, error) {
	return "", ErrMissingAPIKey
}

func (c *unavailableClient) GenerateJSON(context.Context, Request) (string, error) {
	return "", ErrMissingAPIKey
}

func (c *unavailableClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

func (c *unavailableClient) Close() error { return nil }

// extractTextFromResponse joins the text parts of the first candidate.
// A response without candidates, content or text parts yields "".
func extractTextFromResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	return strings.Join(parts, "")
}

// jsonFromResponse unwraps the JSON payload of resp. Unlike free text an
// empty payload cannot be decoded, so it is reported as ErrEmptyResponse.
func jsonFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	text := CleanJSONBlock(extractTextFromResponse(resp))
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

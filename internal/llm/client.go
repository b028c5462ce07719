// Package llm provides centralized LLM configuration and client abstractions
// over the AI gateway and direct providers.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Distinguished gateway failures. Callers treat all of them as recoverable
// and fall back to locally computed results; 429 and 402 get their own kinds
// because the user-facing message differs.
var (
	// ErrRateLimited corresponds to HTTP 429 from the gateway.
	ErrRateLimited = errors.New("ai gateway rate limit exceeded")
	// ErrPaymentRequired corresponds to HTTP 402 from the gateway.
	ErrPaymentRequired = errors.New("ai gateway requires payment")
)

// Client is an abstraction over LLM providers.
type Client interface {
	// GenerateContent generates text content using the specified model tier
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GenerateJSON generates JSON content for a system+user prompt pair using
	// the specified model tier
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, tier ModelTier) (string, error)
	// GetModel returns the underlying provider model for a tier
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	case ProviderGateway:
		return NewGatewayClient(config, apiKey)
	default:
		return NewGatewayClient(config, apiKey)
	}
}

// chatMessage is one entry of a chat-completions request.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the gateway's chat-completions request body.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// chatResponse is the subset of the gateway response we consume.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GatewayClient implements Client against a chat-completions HTTP gateway.
type GatewayClient struct {
	config     *Config
	apiKey     string
	httpClient *http.Client
}

// NewGatewayClient creates a client for the configured gateway URL.
func NewGatewayClient(config *Config, apiKey string) (*GatewayClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config.GatewayURL == "" {
		return nil, fmt.Errorf("gateway URL is required")
	}

	return &GatewayClient{
		config: config,
		apiKey: apiKey,
		// No bespoke cancellation beyond the HTTP client's own timeout; a
		// slow gateway degrades to the caller's fallback.
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// GenerateContent generates text content using the specified model tier.
func (c *GatewayClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.complete(ctx, []chatMessage{{Role: "user", Content: prompt}}, tier)
}

// GenerateJSON generates JSON content for a system+user prompt pair.
func (c *GatewayClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string, tier ModelTier) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	}
	text, err := c.complete(ctx, messages, tier)
	if err != nil {
		return "", err
	}
	// Clean any markdown code block wrappers
	return CleanJSONBlock(text), nil
}

// complete performs one chat-completions round trip.
func (c *GatewayClient) complete(ctx context.Context, messages []chatMessage, tier ModelTier) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	body, err := json.Marshal(chatRequest{
		Model:       modelName,
		Messages:    messages,
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.GatewayURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	case http.StatusPaymentRequired:
		return "", ErrPaymentRequired
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("gateway error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode gateway response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no content in gateway response")
	}

	return parsed.Choices[0].Message.Content, nil
}

// GetModel returns the model name for a tier.
func (c *GatewayClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client.
func (c *GatewayClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

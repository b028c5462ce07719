package llm

import "os"

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: recommendations, short structured lists
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: matching analysis, resume review
	TierStandard ModelTier = "standard"
	// TierAdvanced is for long-form output: roadmaps, interview packs
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGateway is the platform's chat-completions HTTP gateway (default)
	ProviderGateway Provider = "gateway"
	// ProviderGemini is the Google Gemini provider, used directly
	ProviderGemini Provider = "gemini"
)

// defaultGatewayURL is the hosted gateway endpoint.
const defaultGatewayURL = "https://ai.gateway.lovable.dev/v1/chat/completions"

// Config holds the model configuration for the application
type Config struct {
	Provider    Provider
	GatewayURL  string
	Models      map[ModelTier]string
	Temperature float64
	MaxTokens   int
}

// DefaultConfig returns the configuration selected by environment, falling
// back to the gateway provider.
func DefaultConfig() *Config {
	if Provider(os.Getenv("LLM_PROVIDER")) == ProviderGemini {
		return DefaultGeminiConfig()
	}
	return DefaultGatewayConfig()
}

// DefaultGatewayConfig returns the default gateway configuration.
func DefaultGatewayConfig() *Config {
	url := os.Getenv("AI_GATEWAY_URL")
	if url == "" {
		url = defaultGatewayURL
	}
	return &Config{
		Provider:   ProviderGateway,
		GatewayURL: url,
		Models: map[ModelTier]string{
			TierLite:     "google/gemini-2.5-flash-lite",
			TierStandard: "google/gemini-2.5-flash",
			TierAdvanced: "google/gemini-2.5-pro",
		},
		Temperature: 0.3,
		MaxTokens:   2000,
	}
}

// DefaultGeminiConfig returns the default direct-Gemini configuration.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature: 0.3,
		MaxTokens:   2000,
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return "" // No model configured
}

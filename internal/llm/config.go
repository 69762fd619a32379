// Package llm provides the text-classification client abstraction consumed
// by the segment router's zero-shot fallback.
package llm

import "time"

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// Config holds the classifier model configuration.
type Config struct {
	Provider Provider
	// Model is the model used for classification calls. Classification is a
	// lite-tier task; nothing here needs a reasoning model.
	Model string
	// Timeout bounds a single classification call. The router treats a
	// timeout the same as any other failure: no result.
	Timeout time.Duration
}

// DefaultConfig returns the default configuration (currently Gemini).
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    "gemini-2.5-flash-lite",
		Timeout:  8 * time.Second,
	}
}

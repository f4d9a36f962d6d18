// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package provider

// Kind is the provider tag written to the "type" key.
type Kind string

const (
	KindOpenAI   Kind = "OpenAI"
	KindClaude   Kind = "Claude"
	KindGemini   Kind = "Gemini"
	KindLlamaCpp Kind = "LlamaCpp"
	KindCustom   Kind = "Custom"
)

// Fixed defaults written for each provider.
const (
	DefaultOpenAIModel = "gpt-4o"
	DefaultClaudeModel = "claude-3-5-sonnet-20241022"
	DefaultGeminiModel = "gemini-1.5-pro"

	DefaultLocalModel  = "gemma-3-4b"
	DefaultContextSize = 2048
	DefaultTemperature = 0.1
	DefaultMaxTokens   = 150
	DefaultLocalPort   = 8080
)

// Record is one persisted kok configuration.
type Record interface {
	// ProviderKind returns the value of the "type" key.
	ProviderKind() Kind
	// ModelName returns the value of the "model" key.
	ModelName() string
}

// OpenAI talks to the OpenAI API. An empty APIKey means kok-cli falls back
// to OPENAI_API_KEY.
type OpenAI struct {
	Type   Kind   `json:"type"`
	APIKey string `json:"apiKey"`
	Model  string `json:"model"`
}

// NewOpenAI returns an OpenAI record with the default model.
func NewOpenAI(apiKey string) *OpenAI {
	return &OpenAI{Type: KindOpenAI, APIKey: apiKey, Model: DefaultOpenAIModel}
}

func (r *OpenAI) ProviderKind() Kind { return KindOpenAI }
func (r *OpenAI) ModelName() string  { return r.Model }

// Claude talks to the Anthropic API.
type Claude struct {
	Type   Kind   `json:"type"`
	APIKey string `json:"apiKey"`
	Model  string `json:"model"`
}

// NewClaude returns a Claude record with the default model.
func NewClaude(apiKey string) *Claude {
	return &Claude{Type: KindClaude, APIKey: apiKey, Model: DefaultClaudeModel}
}

func (r *Claude) ProviderKind() Kind { return KindClaude }
func (r *Claude) ModelName() string  { return r.Model }

// Gemini talks to the Google Generative Language API.
type Gemini struct {
	Type   Kind   `json:"type"`
	APIKey string `json:"apiKey"`
	Model  string `json:"model"`
}

// NewGemini returns a Gemini record with the default model.
func NewGemini(apiKey string) *Gemini {
	return &Gemini{Type: KindGemini, APIKey: apiKey, Model: DefaultGeminiModel}
}

func (r *Gemini) ProviderKind() Kind { return KindGemini }
func (r *Gemini) ModelName() string  { return r.Model }

// LlamaCpp runs a model through a local llama-server process.
type LlamaCpp struct {
	Type        Kind    `json:"type"`
	Model       string  `json:"model"`
	ContextSize int     `json:"contextSize"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"maxTokens"`
	Port        int     `json:"port"`
}

// NewLlamaCpp returns a local model record with the fixed server defaults.
func NewLlamaCpp(model string) *LlamaCpp {
	return &LlamaCpp{
		Type:        KindLlamaCpp,
		Model:       model,
		ContextSize: DefaultContextSize,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		Port:        DefaultLocalPort,
	}
}

func (r *LlamaCpp) ProviderKind() Kind { return KindLlamaCpp }
func (r *LlamaCpp) ModelName() string  { return r.Model }

// Custom points kok-cli at any OpenAI-compatible endpoint (Ollama, vLLM, ...).
// None of the fields are validated.
type Custom struct {
	Type    Kind   `json:"type"`
	BaseURL string `json:"baseURL"`
	Model   string `json:"model"`
	APIKey  string `json:"apiKey"`
}

// NewCustom returns a Custom record.
func NewCustom(baseURL, model, apiKey string) *Custom {
	return &Custom{Type: KindCustom, BaseURL: baseURL, Model: model, APIKey: apiKey}
}

func (r *Custom) ProviderKind() Kind { return KindCustom }
func (r *Custom) ModelName() string  { return r.Model }

// APIKey returns the key stored in r, or "" for providers without one.
func APIKey(r Record) string {
	switch v := r.(type) {
	case *OpenAI:
		return v.APIKey
	case *Claude:
		return v.APIKey
	case *Gemini:
		return v.APIKey
	case *Custom:
		return v.APIKey
	default:
		return ""
	}
}

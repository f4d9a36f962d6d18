// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package provider

// =============================================================================
// PROVIDER MENU
// =============================================================================

// Choice is one numbered entry of the provider menu.
type Choice struct {
	Key   string
	Kind  Kind
	Label string
}

// Choices is the provider menu in display order.
var Choices = []Choice{
	{Key: "1", Kind: KindOpenAI, Label: "OpenAI (GPT-4, requires API key)"},
	{Key: "2", Kind: KindClaude, Label: "Claude (Anthropic, requires API key)"},
	{Key: "3", Kind: KindGemini, Label: "Gemini (Google, requires API key)"},
	{Key: "4", Kind: KindLlamaCpp, Label: "Local models (llama.cpp, no API key needed)"},
	{Key: "5", Kind: KindCustom, Label: "Custom (Ollama, etc.)"},
}

// LookupChoice returns the provider for a menu answer. Only the exact keys
// "1".."5" match.
func LookupChoice(key string) (Choice, bool) {
	for _, c := range Choices {
		if c.Key == key {
			return c, true
		}
	}
	return Choice{}, false
}

// =============================================================================
// LOCAL MODELS
// =============================================================================

// LocalModel is one model the local llama.cpp setup can serve.
type LocalModel struct {
	Key         string
	Name        string
	Description string
}

// LocalModels is the local model submenu in display order.
var LocalModels = []LocalModel{
	{Key: "1", Name: "gemma-3-4b", Description: "Recommended, 4B parameters"},
	{Key: "2", Name: "smollm3-3b", Description: "Balanced, 3B parameters"},
	{Key: "3", Name: "tinyllama-1.1b", Description: "Fastest, 1.1B parameters"},
}

// LocalModelFor maps a submenu answer to a model name. Anything but "1".."3"
// yields DefaultLocalModel.
func LocalModelFor(key string) string {
	for _, m := range LocalModels {
		if m.Key == key {
			return m.Name
		}
	}
	return DefaultLocalModel
}

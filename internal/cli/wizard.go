// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/jeranaias/kok-setup/internal/provider"
)

// =============================================================================
// CONFIGURATION WIZARD
// =============================================================================

// Wizard asks which provider to use and collects its settings. Answers are
// never validated; an unknown menu choice falls back to OpenAI with no key.
type Wizard struct {
	Prompt  Prompter
	Console Console
}

// Run shows the provider menu and returns exactly one record. The only
// errors are prompt failures such as ErrAborted.
func (w *Wizard) Run() (provider.Record, error) {
	w.Console.Title("\nChoose your AI provider:")
	for _, c := range provider.Choices {
		w.Console.Plain(fmt.Sprintf("%s. %s", c.Key, c.Label))
	}

	answer, err := w.Prompt.Ask(fmt.Sprintf("\nEnter your choice (1-%d): ", len(provider.Choices)))
	if err != nil {
		return nil, err
	}

	choice, ok := provider.LookupChoice(answer)
	if !ok {
		w.Console.Warning("Invalid choice, using default OpenAI config")
		return provider.NewOpenAI(""), nil
	}

	switch choice.Kind {
	case provider.KindOpenAI:
		key, err := w.Prompt.AskSecret("Enter your OpenAI API key (or press Enter to use OPENAI_API_KEY env var): ")
		if err != nil {
			return nil, err
		}
		return provider.NewOpenAI(key), nil

	case provider.KindClaude:
		key, err := w.Prompt.AskSecret("Enter your Anthropic API key: ")
		if err != nil {
			return nil, err
		}
		return provider.NewClaude(key), nil

	case provider.KindGemini:
		key, err := w.Prompt.AskSecret("Enter your Google API key: ")
		if err != nil {
			return nil, err
		}
		return provider.NewGemini(key), nil

	case provider.KindLlamaCpp:
		return w.local()

	default:
		return w.custom()
	}
}

// local asks for one of the bundled models. An unknown answer silently
// selects the default model.
func (w *Wizard) local() (provider.Record, error) {
	w.Console.Title("\nChoose a local model:")
	for _, m := range provider.LocalModels {
		w.Console.Plain(fmt.Sprintf("%s. %s (%s)", m.Key, m.Name, m.Description))
	}

	answer, err := w.Prompt.Ask(fmt.Sprintf("Enter your choice (1-%d): ", len(provider.LocalModels)))
	if err != nil {
		return nil, err
	}
	record := provider.NewLlamaCpp(provider.LocalModelFor(answer))

	w.Console.Warning("\n📋 For local models, make sure to:")
	w.Console.Plain("1. Install llama.cpp: git clone https://github.com/ggerganov/llama.cpp.git")
	w.Console.Plain("2. Build it: cd llama.cpp && make llama-server")
	w.Console.Plain("3. Set LLAMA_DIR: export LLAMA_DIR=/path/to/llama.cpp")

	return record, nil
}

func (w *Wizard) custom() (provider.Record, error) {
	baseURL, err := w.Prompt.Ask("Enter base URL (e.g., http://localhost:11434/v1): ")
	if err != nil {
		return nil, err
	}
	model, err := w.Prompt.Ask("Enter model name (e.g., llama3.1): ")
	if err != nil {
		return nil, err
	}
	key, err := w.Prompt.AskSecret(`Enter API key (or "ollama" for Ollama): `)
	if err != nil {
		return nil, err
	}
	return provider.NewCustom(baseURL, model, key), nil
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package provider defines the kok configuration record and how it is stored.
//
// The record is a variant keyed by provider type. Each variant is its own
// struct so the JSON key order kok-cli expects is fixed by field order:
//
//	OpenAI   {type, apiKey, model}
//	Claude   {type, apiKey, model}
//	Gemini   {type, apiKey, model}
//	LlamaCpp {type, model, contextSize, temperature, maxTokens, port}
//	Custom   {type, baseURL, model, apiKey}
//
// Exactly one record lives on disk per user. Save always replaces the whole
// file; there is no merge and no delete.
package provider

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package provider

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jeranaias/kok-setup/internal/util"
)

// ErrUnknownKind is returned by Decode for a "type" no variant handles.
var ErrUnknownKind = errors.New("unknown provider type")

// Encode renders r the way it is stored: 2-space indented JSON, no trailing
// newline, URLs left unescaped. Identical records always encode to
// identical bytes.
func Encode(r Record) ([]byte, error) {
	if r == nil {
		return nil, errors.New("nil provider record")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode parses a stored record into its concrete variant.
func Decode(data []byte) (Record, error) {
	var head struct {
		Type Kind `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	var r Record
	switch head.Type {
	case KindOpenAI:
		r = &OpenAI{}
	case KindClaude:
		r = &Claude{}
	case KindGemini:
		r = &Gemini{}
	case KindLlamaCpp:
		r = &LlamaCpp{}
	case KindCustom:
		r = &Custom{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, head.Type)
	}

	if err := json.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("failed to decode %s config: %w", head.Type, err)
	}
	return r, nil
}

// Exists reports whether a config file is already present at path.
func Exists(path string) bool {
	return util.FileExists(path)
}

// Save writes r to path, creating parent directories as needed and
// replacing any previous file in full.
// SECURITY: 0600 because the record may hold an API key.
func Save(path string, r Record) error {
	data, err := Encode(r)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Load reads the record stored at path.
func Load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Decode(data)
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package random

import "fmt"

// DefaultAlphabet is used by [Text] and by a TextGenerator built from
// an empty configuration value.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// TextGenerator draws printable ASCII text from a fixed alphabet.
type TextGenerator struct {
	alphabet []byte
}

// NewTextGenerator validates alphabet and returns a generator over it.
// Every character must be printable ASCII (0x20 through 0x7e).
func NewTextGenerator(alphabet string) (*TextGenerator, error) {
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("random: alphabet is empty: %w", ErrRange)
	}
	for index := 0; index < len(alphabet); index++ {
		character := alphabet[index]
		if character < 0x20 || character > 0x7e {
			return nil, fmt.Errorf("random: alphabet byte %d (0x%02x) is not printable ASCII: %w", index, character, ErrRange)
		}
	}
	return &TextGenerator{alphabet: []byte(alphabet)}, nil
}

// Alphabet returns the characters the generator draws from.
func (g *TextGenerator) Alphabet() string {
	return string(g.alphabet)
}

// Fill overwrites every byte of destination with a character from the
// alphabet, using one freshly seeded session for the whole slice.
func (g *TextGenerator) Fill(destination []byte) error {
	session, err := NewSession()
	if err != nil {
		return err
	}
	for index := range destination {
		destination[index] = g.alphabet[session.index(len(g.alphabet))]
	}
	return nil
}

// Generate returns length characters of filler text.
func (g *TextGenerator) Generate(length int) (string, error) {
	if length < 0 {
		return "", fmt.Errorf("random: negative text length %d: %w", length, ErrRange)
	}
	text := make([]byte, length)
	if err := g.Fill(text); err != nil {
		return "", err
	}
	return string(text), nil
}

// Text returns length characters drawn from DefaultAlphabet.
func Text(length int) (string, error) {
	generator := &TextGenerator{alphabet: []byte(DefaultAlphabet)}
	return generator.Generate(length)
}

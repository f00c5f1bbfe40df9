// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Config holds the engine's static lookup tables.
type Config struct {
	// Abbreviations maps short room-type and subtype codes, exactly as they
	// appear in the catalog, to human-readable expansions.
	Abbreviations map[string]string `yaml:"abbreviations"`

	// StopWords are dropped from the free-text part of a query.
	StopWords []string `yaml:"stop_words"`
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithAbbreviations replaces the abbreviation table.
func WithAbbreviations(abbreviations map[string]string) ConfigOption {
	return func(c *Config) {
		c.Abbreviations = maps.Clone(abbreviations)
	}
}

// WithAbbreviation adds or overrides one abbreviation.
func WithAbbreviation(code, expansion string) ConfigOption {
	return func(c *Config) {
		if c.Abbreviations == nil {
			c.Abbreviations = make(map[string]string)
		}
		c.Abbreviations[code] = expansion
	}
}

// WithStopWords replaces the stop-word list.
func WithStopWords(words ...string) ConfigOption {
	return func(c *Config) {
		c.StopWords = slices.Clone(words)
	}
}

// DefaultAbbreviations returns the built-in abbreviation table.
func DefaultAbbreviations() map[string]string {
	return map[string]string{
		"PubRestRm": "Public Restroom",
		"Conf":      "Conference",
		"Mech":      "Mechanical",
		"Elec":      "Electrical",
		"Stor":      "Storage",
		"Off":       "Office",
		"Lab":       "Laboratory",
		"Clsrm":     "Classroom",
		"Lnge":      "Lounge",
	}
}

// DefaultStopWords returns the built-in stop-word list.
func DefaultStopWords() []string {
	return []string{"the", "and", "or", "in", "at", "on", "of", "for", "to", "with", "by"}
}

// DefaultConfig returns a Config with the built-in tables.
func DefaultConfig() *Config {
	return &Config{
		Abbreviations: DefaultAbbreviations(),
		StopWords:     DefaultStopWords(),
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize trims and lowercases stop words and drops duplicates.
// Abbreviation keys are left untouched: lookups are exact.
func (c *Config) Normalize() {
	words := make([]string, 0, len(c.StopWords))
	for _, w := range c.StopWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" && !slices.Contains(words, w) {
			words = append(words, w)
		}
	}
	c.StopWords = words
}

// Validate checks that every abbreviation has a non-blank code and expansion.
func (c *Config) Validate() error {
	for _, code := range slices.Sorted(maps.Keys(c.Abbreviations)) {
		if strings.TrimSpace(code) == "" {
			return fmt.Errorf("%w: abbreviation with empty code", ErrInvalidConfig)
		}
		if strings.TrimSpace(c.Abbreviations[code]) == "" {
			return fmt.Errorf("%w: abbreviation %q has empty expansion", ErrInvalidConfig, code)
		}
	}
	return nil
}

// StopWordSet returns the stop words as a set, trimmed and lowercased.
func (c *Config) StopWordSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.StopWords))
	for _, w := range c.StopWords {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

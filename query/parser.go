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

package query

import (
	"regexp"
	"strings"

	"github.com/poiesic/roomsearch/core"
)

var (
	tokenSeparator  = regexp.MustCompile(`[\s,]+`)
	roomNumberShape = regexp.MustCompile(`^[a-z]?\d+[a-z]?$`)
)

// Parser splits queries into search terms. It holds only read-only state and
// is safe for concurrent use.
type Parser struct {
	stopWords map[string]struct{}
}

// NewParser creates a Parser that drops the given stop words from the
// free-text remainder of a query.
func NewParser(stopWords map[string]struct{}) *Parser {
	if stopWords == nil {
		stopWords = map[string]struct{}{}
	}
	return &Parser{stopWords: stopWords}
}

// Parse converts raw into terms: pattern-group terms first, in group order,
// followed by the leftover tokens in query order. Blank input yields no terms.
func (p *Parser) Parse(raw string) []core.SearchTerm {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return nil
	}
	// Commas only separate leftover tokens; patterns never match across one.
	var terms []core.SearchTerm
	remaining := normalized
	for _, g := range groups {
		var found []core.SearchTerm
		found, remaining = g.extract(remaining)
		terms = append(terms, found...)
	}

	for _, token := range p.tokens(remaining) {
		terms = append(terms, classify(token))
	}
	return terms
}

// tokens splits the unclaimed text and removes stop words.
func (p *Parser) tokens(text string) []string {
	var out []string
	for _, token := range tokenSeparator.Split(text, -1) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if _, stop := p.stopWords[token]; stop {
			continue
		}
		out = append(out, token)
	}
	return out
}

// classify turns a leftover token into a room-number or general term.
func classify(token string) core.SearchTerm {
	if IsRoomNumber(token) {
		return core.SearchTerm{Type: core.TermRoomNumber, Value: token, Original: token, Boost: core.BoostRoomNumber}
	}
	return core.SearchTerm{Type: core.TermGeneral, Value: token, Original: token, Boost: core.BoostGeneral}
}

// IsRoomNumber reports whether token has the room-number shape: one optional
// letter, digits, one optional letter ("4214", "f4214", "4214t", "f4214t").
func IsRoomNumber(token string) bool {
	return roomNumberShape.MatchString(strings.ToLower(token))
}

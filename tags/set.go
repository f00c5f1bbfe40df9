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

package tags

import (
	"slices"
	"strings"
)

// Set is a de-duplicated collection of lowercase tags.
type Set map[string]struct{}

// add lowercases tag and inserts it. Empty tags are ignored.
func (s Set) add(tag string) {
	if tag == "" {
		return
	}
	s[strings.ToLower(tag)] = struct{}{}
}

// Has reports whether the set contains tag (compared lowercase).
func (s Set) Has(tag string) bool {
	_, ok := s[strings.ToLower(tag)]
	return ok
}

// Sorted returns the tags in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for tag := range s {
		out = append(out, tag)
	}
	slices.Sort(out)
	return out
}

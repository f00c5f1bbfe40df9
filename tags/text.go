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
	"strings"
	"unicode"
	"unicode/utf8"
)

func isSpace(r rune) bool { return unicode.IsSpace(r) }

func isSpaceOrHyphen(r rune) bool { return unicode.IsSpace(r) || r == '-' }

func isSpaceHyphenOrSlash(r rune) bool { return unicode.IsSpace(r) || r == '-' || r == '/' }

// words splits s with sep and keeps the pieces longer than minLen runes.
func words(s string, sep func(rune) bool, minLen int) []string {
	var out []string
	for _, w := range strings.FieldsFunc(s, sep) {
		if utf8.RuneCountInString(w) > minLen {
			out = append(out, w)
		}
	}
	return out
}

// StripAffixes removes a leading and a trailing run of ASCII letters, so
// "f4214t" becomes "4214". An all-letter value strips to "".
func StripAffixes(s string) string {
	s = strings.TrimLeftFunc(s, isASCIILetter)
	return strings.TrimRightFunc(s, isASCIILetter)
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

var numberWords = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}

// NumberWord returns the cardinal word for 1-10, or "".
func NumberWord(n int) string {
	if n >= 1 && n <= 10 {
		return numberWords[n-1]
	}
	return ""
}

// OrdinalSuffix returns st, nd, rd or th for n. 11, 12 and 13 always take th.
func OrdinalSuffix(n int) string {
	j, k := n%10, n%100
	switch {
	case j == 1 && k != 11:
		return "st"
	case j == 2 && k != 12:
		return "nd"
	case j == 3 && k != 13:
		return "rd"
	}
	return "th"
}

// leadingInt parses an optional sign and the leading digits of s, ignoring
// anything after them ("2A" is 2). ok is false when there are no digits.
func leadingInt(s string) (n int, ok bool) {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
		if n > 1<<31 {
			break
		}
	}
	if i == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

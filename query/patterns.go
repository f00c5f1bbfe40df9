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
	"strconv"
	"strings"

	"github.com/poiesic/roomsearch/core"
)

// extractor recognises one query pattern. value turns the submatches into the
// term value; returning false drops the match without claiming its text.
type extractor struct {
	re       *regexp.Regexp
	termType core.TermType
	boost    float64
	value    func(sub []string) (string, bool)
}

// group is a set of extractors applied in order.
type group []extractor

var floorWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
}

// firstSubmatch uses the first capture group, trimmed.
func firstSubmatch(sub []string) (string, bool) {
	v := strings.TrimSpace(sub[1])
	return v, v != ""
}

// floorWord converts an ordinal word capture to its floor number.
func floorWord(sub []string) (string, bool) {
	n, ok := floorWords[sub[1]]
	if !ok {
		return "", false
	}
	return strconv.Itoa(n), true
}

// Free-text captures start on a non-space character and end lazily at the
// next whitespace, so they claim a single word.
const (
	wordCapture  = `([a-z0-9\-][a-z0-9\-\s]*?)`
	nameCapture  = `([a-z\-\.][a-z\s\-\.]*?)`
	wordBoundary = `(?:\s|$)`
)

var floorGroup = group{
	// "floor 3", "floor-3", "floor3"
	{re: regexp.MustCompile(`(?:^|\s)floor[\s\-]?(\d+)` + wordBoundary), termType: core.TermFloor, boost: core.BoostFloor, value: firstSubmatch},
	// "3rd floor", "3 floor"
	{re: regexp.MustCompile(`(?:^|\s)(\d+)(?:st|nd|rd|th)?\s*floor` + wordBoundary), termType: core.TermFloor, boost: core.BoostFloor, value: firstSubmatch},
	// "level 3", "lv3"
	{re: regexp.MustCompile(`(?:^|\s)(?:level|lv)[\s\-]?(\d+)` + wordBoundary), termType: core.TermFloor, boost: core.BoostFloor, value: firstSubmatch},
	// "f3", "f-12"; never three or more digits
	{re: regexp.MustCompile(`(?:^|\s)f[\s\-]?(\d{1,2})` + wordBoundary), termType: core.TermFloor, boost: core.BoostFloor, value: firstSubmatch},
	// "third floor", "second level"
	{re: regexp.MustCompile(`(?:^|\s)(first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|tenth)\s*(?:floor|level)` + wordBoundary), termType: core.TermFloor, boost: core.BoostFloor, value: floorWord},
}

var buildingGroup = group{
	// "building:main", "bldg uh"
	{re: regexp.MustCompile(`(?:^|\s)(?:building|bldg)[\s\-:]\s*` + wordCapture + wordBoundary), termType: core.TermBuilding, boost: core.BoostBuilding, value: firstSubmatch},
	// "in north campus", "at annex building"
	{re: regexp.MustCompile(`(?:^|\s)(?:in|at)\s+` + wordCapture + `(?:\s+(?:building|bldg)|$)`), termType: core.TermBuilding, boost: core.BoostBuilding, value: firstSubmatch},
}

var attributeGroup = group{
	{re: regexp.MustCompile(`(?:^|\s)(?:department|dept)[\s\-:]\s*` + wordCapture + wordBoundary), termType: core.TermDepartment, boost: core.BoostAttribute, value: firstSubmatch},
	{re: regexp.MustCompile(`(?:^|\s)(?:room\s*type|type)[\s\-:]\s*` + wordCapture + wordBoundary), termType: core.TermRoomType, boost: core.BoostAttribute, value: firstSubmatch},
}

var staffGroup = group{
	{re: regexp.MustCompile(`(?:^|\s)(?:staff|person|occupant)[\s\-:]\s*` + nameCapture + wordBoundary), termType: core.TermStaff, boost: core.BoostAttribute, value: firstSubmatch},
	{re: regexp.MustCompile(`(?:^|\s)(?:doctor|professor|dr|prof)(?:\.\s*|\s+)` + nameCapture + wordBoundary), termType: core.TermStaff, boost: core.BoostAttribute, value: firstSubmatch},
}

// groups lists the pattern groups in priority order.
var groups = []group{floorGroup, buildingGroup, attributeGroup, staffGroup}

// extract claims every match of e in text, earliest first, rescanning after
// each cut so adjacent matches that shared a separator are still found.
// It returns the terms produced and the text left unclaimed.
func (e extractor) extract(text string) ([]core.SearchTerm, string) {
	var terms []core.SearchTerm
	remaining := text
	for {
		loc := e.re.FindStringSubmatchIndex(remaining)
		if loc == nil {
			break
		}
		sub := submatches(remaining, loc)
		value, ok := e.value(sub)
		if !ok {
			break
		}
		terms = append(terms, core.SearchTerm{
			Type:     e.termType,
			Value:    value,
			Original: strings.TrimSpace(sub[0]),
			Boost:    e.boost,
		})
		remaining = remaining[:loc[0]] + " " + remaining[loc[1]:]
	}
	return terms, remaining
}

// extract runs each extractor of the group in order over the shrinking text.
func (g group) extract(text string) ([]core.SearchTerm, string) {
	var terms []core.SearchTerm
	for _, e := range g {
		var found []core.SearchTerm
		found, text = e.extract(text)
		terms = append(terms, found...)
	}
	return terms, text
}

func submatches(s string, loc []int) []string {
	sub := make([]string, len(loc)/2)
	for i := range sub {
		if start, end := loc[2*i], loc[2*i+1]; start >= 0 {
			sub[i] = s[start:end]
		}
	}
	return sub
}

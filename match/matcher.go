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

package match

import (
	"strings"
	"unicode/utf8"

	"github.com/poiesic/roomsearch/core"
	"github.com/poiesic/roomsearch/tags"
)

// Score tiers.
const (
	ScoreExact = 10.0

	ScoreBuildingPartial = 7.0
	ScoreBuildingReverse = 6.0
	ScoreFieldPartial    = 6.0
	ScoreStaffPartial    = 6.0

	ScoreRoomExact   = 15.0
	ScoreRoomPartial = 12.0
	ScoreRoomReverse = 10.0
	ScoreRoomAffix   = 8.0

	ScoreGeneralRoomExact   = 12.0
	ScoreGeneralRoomPartial = 8.0
	ScoreGeneralRoomReverse = 6.0
	ScoreTagExact           = 8.0
	ScoreTagPartial         = 4.0
	ScoreTagReverse         = 3.0
	ScoreTagPrefix          = 3.0
	ScoreCodeDirect         = 5.0
	ScoreCodeExpanded       = 6.0
)

// minContainLen is the shortest value allowed to take part in a substring match.
const minContainLen = 2

// Result is the outcome of matching one term against one room.
type Result struct {
	Matched bool
	Score   float64
}

// keep raises the result to score and marks it matched.
func (r *Result) keep(score float64) {
	r.Matched = true
	if score > r.Score {
		r.Score = score
	}
}

// Matcher applies the per-type scoring rules. It only reads its abbreviation
// table and is safe for concurrent use.
type Matcher struct {
	abbreviations map[string]string
}

// NewMatcher creates a Matcher that expands room type codes with abbreviations.
// The map is read, never modified.
func NewMatcher(abbreviations map[string]string) *Matcher {
	return &Matcher{abbreviations: abbreviations}
}

// Match scores term against room. staff holds the room's staff annotations
// and unified its synthesized tags. A nil room never matches.
func (m *Matcher) Match(term core.SearchTerm, room *core.Room, staff []string, unified tags.Set) Result {
	if room == nil {
		return Result{}
	}
	value := strings.ToLower(term.Value)
	if value == "" {
		return Result{}
	}

	switch term.Type {
	case core.TermFloor:
		return matchFloor(value, room)
	case core.TermBuilding:
		return matchBuilding(value, room)
	case core.TermDepartment:
		return matchField(value, room.Department)
	case core.TermRoomType:
		return matchField(value, room.TypeFull)
	case core.TermStaff:
		return matchStaff(value, staff)
	case core.TermRoomNumber:
		return matchRoomNumber(value, room)
	default:
		return m.matchGeneral(value, room, unified)
	}
}

func matchFloor(value string, room *core.Room) Result {
	if room.Floor.IsEmpty() || room.Floor.String() != value {
		return Result{}
	}
	return Result{Matched: true, Score: ScoreExact}
}

// matchBuilding keeps the best tier across the building name and short code.
func matchBuilding(value string, room *core.Room) Result {
	var r Result
	for _, field := range []string{room.Building, room.BuildingCode} {
		if field == "" {
			continue
		}
		lower := strings.ToLower(field)
		switch {
		case lower == value:
			r.keep(ScoreExact)
			return r
		case longEnough(value) && strings.Contains(lower, value):
			r.keep(ScoreBuildingPartial)
		case longEnough(lower) && strings.Contains(value, lower):
			r.keep(ScoreBuildingReverse)
		}
	}
	return r
}

// matchField handles the department and full room type terms.
func matchField(value, field string) Result {
	if field == "" {
		return Result{}
	}
	lower := strings.ToLower(field)
	switch {
	case lower == value:
		return Result{Matched: true, Score: ScoreExact}
	case longEnough(value) && strings.Contains(lower, value):
		return Result{Matched: true, Score: ScoreFieldPartial}
	}
	return Result{}
}

// matchStaff stops at the first staff name containing the term.
func matchStaff(value string, staff []string) Result {
	if !longEnough(value) {
		return Result{}
	}
	for _, tag := range staff {
		name := strings.ToLower(core.StaffName(tag))
		if !strings.Contains(name, value) {
			continue
		}
		if name == value {
			return Result{Matched: true, Score: ScoreExact}
		}
		return Result{Matched: true, Score: ScoreStaffPartial}
	}
	return Result{}
}

func matchRoomNumber(value string, room *core.Room) Result {
	if room.RoomNumber.IsEmpty() {
		return Result{}
	}
	number := room.RoomNumber.Lower()

	var r Result
	switch {
	case number == value:
		r.keep(ScoreRoomExact)
	case longEnough(value) && strings.Contains(number, value):
		r.keep(ScoreRoomPartial)
	case longEnough(number) && strings.Contains(value, number):
		r.keep(ScoreRoomReverse)
	}
	if r.Matched {
		return r
	}

	// "4214" against "F4214T"
	stripped := tags.StripAffixes(number)
	if stripped != "" && stripped == tags.StripAffixes(value) {
		r.keep(ScoreRoomAffix)
	}
	return r
}

// matchGeneral runs the room number, unified tag and type code checks,
// keeping the best score. The code check only runs when nothing else matched.
func (m *Matcher) matchGeneral(value string, room *core.Room, unified tags.Set) Result {
	var r Result

	if !room.RoomNumber.IsEmpty() {
		number := room.RoomNumber.Lower()
		switch {
		case number == value:
			r.keep(ScoreGeneralRoomExact)
		case longEnough(value) && strings.Contains(number, value):
			r.keep(ScoreGeneralRoomPartial)
		case longEnough(number) && strings.Contains(value, number):
			r.keep(ScoreGeneralRoomReverse)
		}
	}

	for tag := range unified {
		lower := strings.ToLower(tag)
		if lower == value {
			r.keep(ScoreTagExact)
			break
		}
		switch {
		case longEnough(value) && strings.Contains(lower, value):
			r.keep(ScoreTagPartial)
		case longEnough(lower) && strings.Contains(value, lower):
			r.keep(ScoreTagReverse)
		case longEnough(value) && strings.HasPrefix(lower, value):
			r.keep(ScoreTagPrefix)
		}
	}

	if r.Matched || room.TypeCode == "" || !longEnough(value) {
		return r
	}
	if strings.Contains(strings.ToLower(room.TypeCode), value) {
		r.keep(ScoreCodeDirect)
	}
	if expansion := m.abbreviations[room.TypeCode]; expansion != "" && strings.Contains(strings.ToLower(expansion), value) {
		r.keep(ScoreCodeExpanded)
	}
	return r
}

func longEnough(s string) bool {
	return utf8.RuneCountInString(s) >= minContainLen
}

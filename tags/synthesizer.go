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
	"unicode/utf8"

	"github.com/poiesic/roomsearch/core"
)

// Synthesizer builds unified tag sets using a fixed abbreviation table.
type Synthesizer struct {
	abbreviations map[string]string
}

// NewSynthesizer creates a Synthesizer. The abbreviation table is read, never
// written, so it may be shared with other components.
func NewSynthesizer(abbreviations map[string]string) *Synthesizer {
	return &Synthesizer{abbreviations: abbreviations}
}

// Expand returns the abbreviation expansion for a type or subtype code.
func (s *Synthesizer) Expand(code string) (string, bool) {
	if code == "" || s.abbreviations == nil {
		return "", false
	}
	expansion, ok := s.abbreviations[code]
	return expansion, ok && expansion != ""
}

// Synthesize returns the unified tags for room given the custom and staff
// annotations currently attached to it. A nil room yields an empty set.
func (s *Synthesizer) Synthesize(room *core.Room, custom []core.RichTag, staff []string) Set {
	set := make(Set)
	if room == nil {
		return set
	}

	s.addBuilding(set, room)
	s.addFloor(set, room.Floor)
	s.addDepartment(set, room.Department)
	s.addRoomType(set, room)
	s.addCategories(set, room.Tags)
	s.addCustomTags(set, custom)
	s.addStaffTags(set, staff)
	s.addRoomNumber(set, room.RoomNumber)

	return set
}

func (s *Synthesizer) addBuilding(set Set, room *core.Room) {
	names := []string{room.Building}
	if room.BuildingCode != room.Building {
		names = append(names, room.BuildingCode)
	}
	for _, name := range names {
		if name == "" {
			continue
		}
		lower := strings.ToLower(name)
		set.add(lower)
		set.add("building:" + lower)
		set.add("bldg:" + lower)
		for _, w := range words(lower, isSpaceOrHyphen, 1) {
			set.add(w)
		}
	}
}

func (s *Synthesizer) addFloor(set Set, floor core.Text) {
	if floor.IsEmpty() {
		return
	}
	f := floor.Lower()

	set.add(f)
	set.add("floor:" + f)
	set.add("f" + f)
	set.add("level:" + f)
	set.add("floor " + f)
	set.add("level " + f)

	n, ok := leadingInt(f)
	suffix := "th"
	if ok {
		suffix = OrdinalSuffix(n)
	}
	set.add(f + suffix + " floor")

	if word := NumberWord(n); ok && word != "" {
		set.add(word + " floor")
		set.add(word + " level")
	}
}

func (s *Synthesizer) addDepartment(set Set, department string) {
	if department == "" {
		return
	}
	dept := strings.ToLower(department)
	set.add(dept)
	set.add("department:" + dept)
	set.add("dept:" + dept)
	for _, w := range words(dept, isSpaceHyphenOrSlash, 2) {
		set.add(w)
	}
}

func (s *Synthesizer) addRoomType(set Set, room *core.Room) {
	if room.TypeFull != "" {
		typ := strings.ToLower(room.TypeFull)
		set.add(typ)
		set.add("type:" + typ)
		set.add("room:" + typ)
		for _, w := range words(typ, isSpaceHyphenOrSlash, 2) {
			set.add(w)
		}
	}

	s.addCode(set, room.TypeCode, "type:")
	s.addCode(set, room.SubtypeCode, "subtype:")
}

// addCode adds a short type code and, when the abbreviation table knows it,
// the expansion in bare, prefixed and word form.
func (s *Synthesizer) addCode(set Set, code, prefix string) {
	if code == "" {
		return
	}
	set.add(strings.ToLower(code))

	expansion, ok := s.Expand(code)
	if !ok {
		return
	}
	lower := strings.ToLower(expansion)
	set.add(lower)
	set.add(prefix + lower)
	for _, w := range words(lower, isSpaceHyphenOrSlash, 2) {
		set.add(w)
	}
}

func (s *Synthesizer) addCategories(set Set, categories []string) {
	for _, category := range categories {
		if category == "" {
			continue
		}
		lower := strings.ToLower(category)
		set.add(lower)
		set.add("category:" + lower)
		for _, w := range words(lower, isSpaceOrHyphen, 2) {
			set.add(w)
		}
	}
}

func (s *Synthesizer) addCustomTags(set Set, custom []core.RichTag) {
	for _, tag := range custom {
		if tag.Name != "" {
			name := strings.ToLower(tag.Name)
			set.add(name)
			set.add("custom:" + name)
			for _, w := range words(name, isSpace, 1) {
				set.add(w)
			}
		}
		if tag.Type != "" {
			set.add("tagtype:" + strings.ToLower(tag.Type))
		}
		if tag.Color != "" {
			set.add("color:" + strings.ToLower(tag.Color))
		}
	}
}

func (s *Synthesizer) addStaffTags(set Set, staff []string) {
	for _, tag := range staff {
		name := strings.ToLower(core.StaffName(tag))
		if name == "" {
			continue
		}
		set.add(name)
		set.add("staff:" + name)
		set.add("person:" + name)
		set.add("occupant:" + name)
		for _, part := range words(name, isSpace, 1) {
			set.add(part)
		}
	}
}

func (s *Synthesizer) addRoomNumber(set Set, number core.Text) {
	if number.IsEmpty() {
		return
	}
	num := number.Lower()
	set.add(num)
	set.add("room:" + num)
	set.add("number:" + num)

	// Every prefix of two or more characters, so "42" and "421" reach "4214".
	if utf8.RuneCountInString(num) > 2 {
		runes := []rune(num)
		for i := 2; i <= len(runes); i++ {
			set.add(string(runes[:i]))
		}
	}

	if stripped := StripAffixes(num); stripped != "" && stripped != num {
		set.add(stripped)
	}
}

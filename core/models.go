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

package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for annotation entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// DefaultMapBase is the campus map used by Room.MapLink when no base is given.
const DefaultMapBase = "https://mgis.med.umich.edu/"

// Room is one physical space in the catalog.
// Field names follow the space-inventory export the catalog is loaded from.
type Room struct {
	Id           Text     `json:"id"`
	RoomNumber   Text     `json:"rmnbr"`
	Building     string   `json:"building"`
	BuildingCode string   `json:"bld_descrshort"`
	Floor        Text     `json:"floor"`
	Department   string   `json:"dept_descr"`
	TypeFull     string   `json:"typeFull"`
	TypeCode     string   `json:"rmtyp_descrshort"`
	SubtypeCode  string   `json:"rmsubtyp_descrshort"`
	Tags         []string `json:"tags,omitempty"`
	RecNumber    Text     `json:"rmrecnbr"`
}

// Key returns the identifier annotation maps are keyed by.
func (r *Room) Key() string {
	return r.Id.String()
}

// MapLink returns a deep link into the campus map for the room, or "" when the
// room has no rmrecnbr. An empty base selects DefaultMapBase.
func (r *Room) MapLink(base string) string {
	if r == nil || r.RecNumber.IsEmpty() {
		return ""
	}
	if base == "" {
		base = DefaultMapBase
	}
	return base + "#feature=search&rmrecnbr=" + r.RecNumber.String()
}

// StaffPrefix marks a staff annotation.
const StaffPrefix = "Staff: "

// StaffTag formats a staff name as a staff annotation.
func StaffTag(name string) string {
	return StaffPrefix + strings.TrimSpace(name)
}

// StaffName strips the staff marker from a staff annotation.
func StaffName(tag string) string {
	return strings.TrimPrefix(tag, StaffPrefix)
}

// Annotations carries the user-generated tags for a set of rooms, keyed by Room.Key.
// The maps are owned by the caller and re-read on every search.
type Annotations struct {
	CustomTags map[string][]RichTag
	StaffTags  map[string][]string
}

// CustomFor returns the custom tags attached to a room.
func (a Annotations) CustomFor(roomKey string) []RichTag {
	if a.CustomTags == nil {
		return nil
	}
	return a.CustomTags[roomKey]
}

// StaffFor returns the staff tags attached to a room.
func (a Annotations) StaffFor(roomKey string) []string {
	if a.StaffTags == nil {
		return nil
	}
	return a.StaffTags[roomKey]
}

// TermType classifies a parsed query term.
type TermType string

const (
	TermFloor      TermType = "floor"
	TermBuilding   TermType = "building"
	TermDepartment TermType = "department"
	TermRoomType   TermType = "room_type"
	TermStaff      TermType = "staff"
	TermRoomNumber TermType = "room_number"
	TermGeneral    TermType = "general"
)

// Boosts applied to each term type.
const (
	BoostFloor      = 2.0
	BoostBuilding   = 1.5
	BoostAttribute  = 1.3
	BoostRoomNumber = 3.0
	BoostGeneral    = 1.0
)

// SearchTerm is one typed unit of a parsed query.
type SearchTerm struct {
	Type     TermType
	Value    string // normalized value used for matching
	Original string // the raw text the term was extracted from
	Boost    float64
}

// HighPriority reports whether a match on this term counts toward the
// high-priority tally used by the ranking threshold.
func (t SearchTerm) HighPriority() bool {
	return t.Type == TermRoomNumber || t.Type == TermFloor
}

// MatchDetail records how one term contributed to a room's score.
type MatchDetail struct {
	Term  string
	Type  TermType
	Score float64
	Boost float64
}

// ScoredResult is the ranking outcome for one room against one query.
// Score is zero whenever Included is false.
type ScoredResult struct {
	Room                *Room
	Score               float64
	MatchedTerms        int
	TotalTerms          int
	HighPriorityMatches int
	Included            bool
	Details             []MatchDetail
}

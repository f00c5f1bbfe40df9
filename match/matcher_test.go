package match

import (
	"testing"

	"github.com/poiesic/roomsearch/config"
	"github.com/poiesic/roomsearch/core"
	"github.com/poiesic/roomsearch/tags"
	"github.com/stretchr/testify/assert"
)

func testRoom() *core.Room {
	return &core.Room{
		Id:           "1",
		RoomNumber:   "F4214T",
		Building:     "University Hospital",
		BuildingCode: "UH",
		Floor:        "4",
		Department:   "Radiology",
		TypeFull:     "Conference Room",
		TypeCode:     "Conf",
	}
}

func term(t core.TermType, value string) core.SearchTerm {
	return core.SearchTerm{Type: t, Value: value, Original: value, Boost: 1}
}

func TestMatch_Tiers(t *testing.T) {
	room := testRoom()
	staff := []string{"Staff: Jane Smith", "Staff: Bob"}
	m := NewMatcher(config.DefaultAbbreviations())
	unified := tags.NewSynthesizer(config.DefaultAbbreviations()).Synthesize(room, nil, staff)

	tests := []struct {
		name    string
		term    core.SearchTerm
		matched bool
		score   float64
	}{
		{"floor exact", term(core.TermFloor, "4"), true, 10},
		{"floor compared as string", term(core.TermFloor, "04"), false, 0},
		{"floor other", term(core.TermFloor, "3"), false, 0},

		{"building name exact", term(core.TermBuilding, "university hospital"), true, 10},
		{"building code exact", term(core.TermBuilding, "uh"), true, 10},
		{"building partial", term(core.TermBuilding, "hospital"), true, 7},
		{"building reverse", term(core.TermBuilding, "university hospital annex"), true, 6},
		{"building single letter", term(core.TermBuilding, "h"), false, 0},
		{"building miss", term(core.TermBuilding, "annex"), false, 0},

		{"department exact", term(core.TermDepartment, "radiology"), true, 10},
		{"department partial", term(core.TermDepartment, "radio"), true, 6},
		{"department single letter", term(core.TermDepartment, "r"), false, 0},
		{"department miss", term(core.TermDepartment, "cardiology"), false, 0},

		{"room type exact", term(core.TermRoomType, "conference room"), true, 10},
		{"room type partial", term(core.TermRoomType, "conference"), true, 6},
		{"room type miss", term(core.TermRoomType, "office"), false, 0},

		{"staff partial", term(core.TermStaff, "smith"), true, 6},
		{"staff exact", term(core.TermStaff, "jane smith"), true, 10},
		{"staff first hit", term(core.TermStaff, "bob"), true, 10},
		{"staff single letter", term(core.TermStaff, "j"), false, 0},
		{"staff miss", term(core.TermStaff, "alice"), false, 0},

		{"room number exact", term(core.TermRoomNumber, "f4214t"), true, 15},
		{"room number exact ignores case", term(core.TermRoomNumber, "F4214T"), true, 15},
		{"room number partial", term(core.TermRoomNumber, "4214"), true, 12},
		{"room number reverse", term(core.TermRoomNumber, "f4214tx"), true, 10},
		{"room number affix", term(core.TermRoomNumber, "a4214b"), true, 8},
		{"room number miss", term(core.TermRoomNumber, "4215"), false, 0},

		{"general room number exact", term(core.TermGeneral, "f4214t"), true, 12},
		{"general tag exact", term(core.TermGeneral, "radiology"), true, 8},
		{"general tag partial", term(core.TermGeneral, "radiol"), true, 4},
		{"general tag reverse", term(core.TermGeneral, "radiologyx"), true, 3},
		{"general expansion tag", term(core.TermGeneral, "conference"), true, 8},
		{"general miss", term(core.TermGeneral, "zzz"), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.term, room, staff, unified)
			assert.Equal(t, tt.matched, got.Matched)
			assert.Equal(t, tt.score, got.Score)
		})
	}
}

func TestMatch_GeneralRoomNumberKeepsBest(t *testing.T) {
	room := &core.Room{Id: "1", RoomNumber: "4214"}
	m := NewMatcher(nil)

	// Partial room-number hit (8) and exact tag hit (8) on the stripped number.
	got := m.Match(term(core.TermGeneral, "421"), room, nil, tags.Set{"421": {}})
	assert.True(t, got.Matched)
	assert.Equal(t, 8.0, got.Score)

	got = m.Match(term(core.TermGeneral, "4214"), room, nil, tags.Set{"4214": {}})
	assert.Equal(t, 12.0, got.Score)

	got = m.Match(term(core.TermGeneral, "x4214"), room, nil, nil)
	assert.Equal(t, 6.0, got.Score)
}

func TestMatch_CodeFallback(t *testing.T) {
	m := NewMatcher(config.DefaultAbbreviations())

	t.Run("expanded", func(t *testing.T) {
		room := &core.Room{Id: "9", TypeCode: "Conf"}
		got := m.Match(term(core.TermGeneral, "conference"), room, nil, nil)
		assert.Equal(t, Result{Matched: true, Score: 6}, got)
	})

	t.Run("direct and expanded keeps best", func(t *testing.T) {
		room := &core.Room{Id: "9", TypeCode: "Conf"}
		got := m.Match(term(core.TermGeneral, "con"), room, nil, nil)
		assert.Equal(t, Result{Matched: true, Score: 6}, got)
	})

	t.Run("direct only", func(t *testing.T) {
		room := &core.Room{Id: "9", TypeCode: "Xyz"}
		got := m.Match(term(core.TermGeneral, "xy"), room, nil, nil)
		assert.Equal(t, Result{Matched: true, Score: 5}, got)
	})

	t.Run("skipped after tag match", func(t *testing.T) {
		room := &core.Room{Id: "9", TypeCode: "Conf"}
		got := m.Match(term(core.TermGeneral, "conference"), room, nil, tags.Set{"conference room": {}})
		assert.Equal(t, Result{Matched: true, Score: 4}, got)
	})

	t.Run("single letter", func(t *testing.T) {
		room := &core.Room{Id: "9", TypeCode: "Conf"}
		got := m.Match(term(core.TermGeneral, "c"), room, nil, nil)
		assert.False(t, got.Matched)
	})
}

func TestMatch_AbbreviationExpansion(t *testing.T) {
	room := &core.Room{Id: "7", TypeCode: "Conf", RoomNumber: "100"}
	abbreviations := config.DefaultAbbreviations()
	unified := tags.NewSynthesizer(abbreviations).Synthesize(room, nil, nil)

	got := NewMatcher(abbreviations).Match(term(core.TermGeneral, "conference"), room, nil, unified)
	assert.True(t, got.Matched)
	assert.Positive(t, got.Score)
}

func TestMatch_CodeFallbackUsesGivenTable(t *testing.T) {
	room := &core.Room{Id: "9", TypeCode: "Stor"}

	t.Run("custom expansion", func(t *testing.T) {
		m := NewMatcher(map[string]string{"Stor": "Supply Closet"})
		got := m.Match(term(core.TermGeneral, "supply"), room, nil, nil)
		assert.Equal(t, Result{Matched: true, Score: ScoreCodeExpanded}, got)
	})

	t.Run("blank expansion", func(t *testing.T) {
		m := NewMatcher(map[string]string{"Stor": ""})
		got := m.Match(term(core.TermGeneral, "supply"), room, nil, nil)
		assert.False(t, got.Matched)
	})

	t.Run("no table", func(t *testing.T) {
		got := NewMatcher(nil).Match(term(core.TermGeneral, "storage"), room, nil, nil)
		assert.False(t, got.Matched)
	})
}

func TestMatch_MissingFields(t *testing.T) {
	m := NewMatcher(nil)
	empty := &core.Room{Id: "1"}

	for _, tt := range []core.TermType{
		core.TermFloor, core.TermBuilding, core.TermDepartment, core.TermRoomType,
		core.TermStaff, core.TermRoomNumber, core.TermGeneral,
	} {
		got := m.Match(term(tt, "anything"), empty, nil, nil)
		assert.False(t, got.Matched, tt)
	}

	assert.False(t, m.Match(term(core.TermFloor, "4"), nil, nil, nil).Matched)
	assert.False(t, m.Match(term(core.TermGeneral, ""), testRoom(), nil, nil).Matched)
}

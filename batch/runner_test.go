package batch

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/poiesic/roomsearch/core"
	"github.com/poiesic/roomsearch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRooms() []*core.Room {
	return []*core.Room{
		{Id: "1", RoomNumber: "4214", Floor: "4", Building: "Main"},
		{Id: "2", RoomNumber: "F4214T", Floor: "4", Building: "Main"},
		{Id: "3", RoomNumber: "9001", Floor: "9", Building: "Annex"},
	}
}

func keys(rooms []*core.Room) []string {
	out := make([]string, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.Key())
	}
	return out
}

func newTestRunner(t *testing.T, opts ...Option) *Runner {
	t.Helper()
	searcher, err := search.NewSearcher()
	require.NoError(t, err)
	r, err := NewRunner(searcher, opts...)
	require.NoError(t, err)
	t.Cleanup(r.Release)
	return r
}

func TestNewRunner(t *testing.T) {
	searcher, err := search.NewSearcher()
	require.NoError(t, err)

	t.Run("valid configuration", func(t *testing.T) {
		r, err := NewRunner(searcher)
		require.NoError(t, err)
		defer r.Release()
		assert.NotNil(t, r)
	})

	t.Run("with options", func(t *testing.T) {
		r, err := NewRunner(searcher, WithPoolSize(0), WithLogger(nil))
		require.NoError(t, err)
		defer r.Release()
		assert.Equal(t, 1, r.pool.Cap())
		assert.NotNil(t, r.logger)
	})

	t.Run("nil searcher", func(t *testing.T) {
		_, err := NewRunner(nil)
		assert.Equal(t, ErrSearcherRequired, err)
	})
}

func TestRun_PreservesOrder(t *testing.T) {
	r := newTestRunner(t, WithPoolSize(4), WithLogger(slog.Default()))
	rooms := testRooms()

	queries := []string{"4214", "annex", "", "floor 9", "nothing here"}
	results, err := r.Run(context.Background(), queries, rooms, core.Annotations{})
	require.NoError(t, err)
	require.Len(t, results, len(queries))

	for i, q := range queries {
		assert.Equal(t, q, results[i].Query)
		assert.NoError(t, results[i].Err)
	}
	assert.Equal(t, []string{"1", "2"}, keys(results[0].Rooms))
	assert.Equal(t, []string{"3"}, keys(results[1].Rooms))
	assert.Equal(t, []string{"1", "2", "3"}, keys(results[2].Rooms))
	assert.Equal(t, []string{"3"}, keys(results[3].Rooms))
	assert.Empty(t, results[4].Rooms)
}

func TestRun_MatchesSequentialSearch(t *testing.T) {
	searcher, err := search.NewSearcher()
	require.NoError(t, err)
	r, err := NewRunner(searcher, WithPoolSize(8))
	require.NoError(t, err)
	defer r.Release()

	rooms := testRooms()
	annotations := core.Annotations{StaffTags: map[string][]string{"3": {core.StaffTag("Lee")}}}
	queries := make([]string, 0, 200)
	for i := range 200 {
		queries = append(queries, []string{"4214", "main", "staff:lee", "f9", "zzz"}[i%5])
	}

	results, err := r.Run(context.Background(), queries, rooms, annotations)
	require.NoError(t, err)
	for i, q := range queries {
		want := searcher.Search(q, rooms, annotations)
		assert.Equal(t, keys(want), keys(results[i].Rooms), fmt.Sprintf("query %d %q", i, q))
	}
}

func TestRun_CancelledContext(t *testing.T) {
	r := newTestRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := r.Run(ctx, []string{"4214", "main"}, testRooms(), core.Annotations{})
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 2)
	for _, res := range results {
		assert.ErrorIs(t, res.Err, context.Canceled)
		assert.Nil(t, res.Rooms)
	}
}

func TestRun_Empty(t *testing.T) {
	r := newTestRunner(t)
	results, err := r.Run(context.Background(), nil, testRooms(), core.Annotations{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

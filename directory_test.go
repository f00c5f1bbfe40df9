package roomsearch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/roomsearch/config"
	"github.com/poiesic/roomsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRooms() []*core.Room {
	return []*core.Room{
		{Id: "1", RoomNumber: "4214", Floor: "4", Building: "Main"},
		{Id: "2", RoomNumber: "F4214T", Floor: "4", Building: "Main"},
		{Id: "3", RoomNumber: "9001", Floor: "9", Building: "Annex", TypeCode: "Aud"},
	}
}

func TestNewDirectory(t *testing.T) {
	t.Run("create new directory", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		dir, err := NewDirectory(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, dir)
		defer dir.Close()

		// Verify components are initialized
		assert.NotNil(t, dir.AnnotationRepository())
		assert.NotNil(t, dir.Config())
		assert.NotNil(t, dir.backend)
		assert.NotNil(t, dir.logger)
	})

	t.Run("in memory", func(t *testing.T) {
		dir, err := NewDirectory("", InMemory(), WithLogger(nil), WithConfig(nil))
		require.NoError(t, err)
		defer dir.Close()
		assert.Equal(t, config.DefaultConfig(), dir.Config())
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create a directory at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		dir, err := NewDirectory(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, dir)
	})

	t.Run("error with invalid config", func(t *testing.T) {
		cfg := &config.Config{Abbreviations: map[string]string{"Aud": ""}}
		_, err := NewDirectory("", InMemory(), WithConfig(cfg))
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestDirectory_Close(t *testing.T) {
	dir, err := NewDirectory(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, dir)

	// Close the directory
	err = dir.Close()
	assert.NoError(t, err)
}

func TestDirectory_FactoryMethods(t *testing.T) {
	dir, err := NewDirectory("", InMemory())
	require.NoError(t, err)
	defer dir.Close()

	t.Run("can create searcher", func(t *testing.T) {
		searcher, err := dir.NewSearcher()
		require.NoError(t, err)
		require.NotNil(t, searcher)
	})

	t.Run("can create batch runner", func(t *testing.T) {
		runner, err := dir.NewRunner()
		require.NoError(t, err)
		require.NotNil(t, runner)
		runner.Release()
	})
}

func TestDirectory_Search(t *testing.T) {
	cfg := config.NewConfig(config.WithAbbreviation("Aud", "Auditorium"))
	dir, err := NewDirectory("", InMemory(), WithConfig(cfg))
	require.NoError(t, err)
	defer dir.Close()

	ctx := context.Background()
	rooms := testRooms()

	got, err := dir.Search(ctx, "auditorium", rooms)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].Key())

	// Annotations added to the store take effect on the next search.
	tag, err := core.NewRichTag("1", "Window seat", core.RichTagOptions{})
	require.NoError(t, err)
	require.NoError(t, dir.AnnotationRepository().AddCustomTag(ctx, "1", tag))
	require.NoError(t, dir.AnnotationRepository().AddStaffTag(ctx, "2", "Jane Smith"))

	got, err = dir.Search(ctx, "window", rooms)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].Key())

	got, err = dir.Search(ctx, "dr. smith", rooms)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].Key())
}

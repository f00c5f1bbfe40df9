package storage

import (
	"context"
	"testing"

	"github.com/poiesic/roomsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTag(t *testing.T, roomKey, name string, workspace bool) *core.RichTag {
	t.Helper()
	tag, err := core.NewRichTag(roomKey, name, core.RichTagOptions{})
	require.NoError(t, err)
	tag.Workspace = workspace
	return tag
}

func TestAppendCustomTag(t *testing.T) {
	quiet := newTag(t, "1", "Quiet", false)

	tags, err := AppendCustomTag(nil, quiet)
	require.NoError(t, err)
	require.Len(t, tags, 1)

	_, err = AppendCustomTag(tags, newTag(t, "1", "QUIET", false))
	assert.ErrorIs(t, err, ErrDuplicateKey)

	_, err = AppendCustomTag(tags, nil)
	assert.ErrorIs(t, err, core.ErrInvalidRichTag)

	more, err := AppendCustomTag(tags, newTag(t, "1", "Bright", false))
	require.NoError(t, err)
	assert.Len(t, more, 2)
	assert.Len(t, tags, 1)
}

func TestDeleteCustomTag(t *testing.T) {
	quiet := newTag(t, "1", "Quiet", false)
	bright := newTag(t, "1", "Bright", false)
	tags := []core.RichTag{*quiet, *bright}

	out, err := DeleteCustomTag(tags, quiet.Id)
	require.NoError(t, err)
	assert.Equal(t, []core.RichTag{*bright}, out)
	assert.Len(t, tags, 2)

	_, err = DeleteCustomTag(out, quiet.Id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDropWorkspaceTags(t *testing.T) {
	tags := []core.RichTag{
		*newTag(t, "1", "a", true),
		*newTag(t, "1", "b", false),
		*newTag(t, "1", "c", true),
	}
	kept, dropped := DropWorkspaceTags(tags)
	assert.Equal(t, 2, dropped)
	require.Len(t, kept, 1)
	assert.Equal(t, "b", kept[0].Name)
	assert.True(t, tags[0].Workspace)
}

func TestStaffTagHelpers(t *testing.T) {
	staff, err := AppendStaffTag(nil, "  Jane Smith ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Staff: Jane Smith"}, staff)

	_, err = AppendStaffTag(staff, "jane smith")
	assert.ErrorIs(t, err, ErrDuplicateKey)

	_, err = AppendStaffTag(staff, "   ")
	assert.ErrorIs(t, err, core.ErrEmptyStaffName)

	out, err := DeleteStaffTag(staff, "JANE SMITH")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = DeleteStaffTag(out, "Jane Smith")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	quiet := newTag(t, "1", "Quiet", false)
	shared := newTag(t, "2", "Projector", true)

	require.NoError(t, store.AddCustomTag(ctx, "1", quiet))
	require.NoError(t, store.AddCustomTag(ctx, "2", shared))
	assert.ErrorIs(t, store.AddCustomTag(ctx, "1", newTag(t, "1", "quiet", false)), ErrDuplicateKey)

	require.NoError(t, store.AddStaffTag(ctx, "1", "Jane Smith"))
	assert.ErrorIs(t, store.AddStaffTag(ctx, "1", "Jane Smith"), ErrDuplicateKey)

	tags, err := store.CustomTags(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []core.RichTag{*quiet}, tags)

	staff, err := store.StaffTags(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Staff: Jane Smith"}, staff)

	snapshot, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshot.CustomTags, 2)
	assert.Equal(t, []string{"Staff: Jane Smith"}, snapshot.StaffFor("1"))

	// The snapshot is a copy.
	snapshot.CustomTags["1"][0].Name = "changed"
	tags, err = store.CustomTags(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Quiet", tags[0].Name)

	removed, err := store.ClearWorkspaceTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	tags, err = store.CustomTags(ctx, "2")
	require.NoError(t, err)
	assert.Empty(t, tags)

	require.NoError(t, store.RemoveCustomTag(ctx, "1", quiet.Id))
	assert.ErrorIs(t, store.RemoveCustomTag(ctx, "1", quiet.Id), ErrNotFound)
	require.NoError(t, store.RemoveStaffTag(ctx, "1", "jane smith"))
	assert.ErrorIs(t, store.RemoveStaffTag(ctx, "1", "jane smith"), ErrNotFound)

	snapshot, err = store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snapshot.CustomTags)
	assert.Empty(t, snapshot.StaffTags)
}

func TestMemoryStore_Closed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Close())

	assert.ErrorIs(t, store.AddCustomTag(ctx, "1", newTag(t, "1", "x", false)), ErrStorageClosed)
	_, err := store.Snapshot(ctx)
	assert.ErrorIs(t, err, ErrStorageClosed)
	_, err = store.ClearWorkspaceTags(ctx)
	assert.ErrorIs(t, err, ErrStorageClosed)
}

package storage

import (
	"context"

	"github.com/poiesic/roomsearch/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// Close closes the storage backend and releases resources.
	Close() error
}

// AnnotationRepository stores the custom and staff tags users attach to rooms.
// Rooms are identified by core.Room.Key.
type AnnotationRepository interface {
	Repository

	// AddCustomTag attaches a rich tag to a room.
	// Returns ErrDuplicateKey if the room already has a tag with the same
	// name, compared case-insensitively.
	AddCustomTag(ctx context.Context, roomKey string, tag *core.RichTag) error

	// RemoveCustomTag detaches a rich tag by ID.
	// Returns ErrNotFound if the room has no such tag.
	RemoveCustomTag(ctx context.Context, roomKey string, id core.ID) error

	// CustomTags returns the rich tags attached to a room, oldest first.
	CustomTags(ctx context.Context, roomKey string) ([]core.RichTag, error)

	// AddStaffTag attaches a staff member to a room, stored as "Staff: <name>".
	// Returns ErrDuplicateKey if the name is already attached.
	AddStaffTag(ctx context.Context, roomKey, name string) error

	// RemoveStaffTag detaches a staff member by name.
	// Returns ErrNotFound if the name is not attached.
	RemoveStaffTag(ctx context.Context, roomKey, name string) error

	// StaffTags returns the staff tags attached to a room.
	StaffTags(ctx context.Context, roomKey string) ([]string, error)

	// ClearWorkspaceTags removes every custom tag shared through a workspace
	// and returns how many were removed.
	ClearWorkspaceTags(ctx context.Context) (int, error)

	// Snapshot returns a copy of every annotation, ready to hand to a search.
	Snapshot(ctx context.Context) (core.Annotations, error)
}

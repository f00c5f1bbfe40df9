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

package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/roomsearch/core"
	"github.com/poiesic/roomsearch/storage"
)

// AnnotationRepository implements storage.AnnotationRepository for BadgerDB.
// Each room's rich tags and staff tags are stored as one value per room.
type AnnotationRepository struct {
	backend *Backend
}

var _ storage.AnnotationRepository = (*AnnotationRepository)(nil)

// NewAnnotationRepository creates a new AnnotationRepository.
func NewAnnotationRepository(backend *Backend) *AnnotationRepository {
	return &AnnotationRepository{
		backend: backend,
	}
}

// Close is a no-op; the backend is closed by its owner.
func (r *AnnotationRepository) Close() error {
	return nil
}

// AddCustomTag attaches a rich tag to a room.
func (r *AnnotationRepository) AddCustomTag(ctx context.Context, roomKey string, tag *core.RichTag) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCustomTagKey(roomKey)
		tags, err := readCustomTags(tx, key)
		if err != nil {
			return err
		}
		tags, err = storage.AppendCustomTag(tags, tag)
		if err != nil {
			return err
		}
		if err := tx.Set(key, storage.MarshalRichTags(tags)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// RemoveCustomTag detaches a rich tag by ID.
func (r *AnnotationRepository) RemoveCustomTag(ctx context.Context, roomKey string, id core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCustomTagKey(roomKey)
		tags, err := readCustomTags(tx, key)
		if err != nil {
			return err
		}
		tags, err = storage.DeleteCustomTag(tags, id)
		if err != nil {
			return err
		}
		if err := writeCustomTags(tx, key, tags); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// CustomTags returns the rich tags attached to a room.
func (r *AnnotationRepository) CustomTags(ctx context.Context, roomKey string) ([]core.RichTag, error) {
	var tags []core.RichTag
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		tags, err = readCustomTags(tx, makeCustomTagKey(roomKey))
		return err
	}, false)
	return tags, err
}

// AddStaffTag attaches a staff member to a room.
func (r *AnnotationRepository) AddStaffTag(ctx context.Context, roomKey, name string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeStaffTagKey(roomKey)
		staff, err := readStaffTags(tx, key)
		if err != nil {
			return err
		}
		staff, err = storage.AppendStaffTag(staff, name)
		if err != nil {
			return err
		}
		if err := tx.Set(key, storage.MarshalStaffTags(staff)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// RemoveStaffTag detaches a staff member by name.
func (r *AnnotationRepository) RemoveStaffTag(ctx context.Context, roomKey, name string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeStaffTagKey(roomKey)
		staff, err := readStaffTags(tx, key)
		if err != nil {
			return err
		}
		staff, err = storage.DeleteStaffTag(staff, name)
		if err != nil {
			return err
		}
		if len(staff) == 0 {
			err = tx.Delete(key)
		} else {
			err = tx.Set(key, storage.MarshalStaffTags(staff))
		}
		if err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// StaffTags returns the staff tags attached to a room.
func (r *AnnotationRepository) StaffTags(ctx context.Context, roomKey string) ([]string, error) {
	var staff []string
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		staff, err = readStaffTags(tx, makeStaffTagKey(roomKey))
		return err
	}, false)
	return staff, err
}

// ClearWorkspaceTags removes every custom tag shared through a workspace.
func (r *AnnotationRepository) ClearWorkspaceTags(ctx context.Context) (int, error) {
	removed := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Collect first; the iterator must be closed before writing.
		updates := make(map[string][]core.RichTag)
		err := scanPrefix(tx, []byte(customTagPrefix), func(key, value []byte) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tags, err := storage.UnmarshalRichTags(value)
			if err != nil {
				return err
			}
			kept, n := storage.DropWorkspaceTags(tags)
			if n > 0 {
				updates[string(key)] = kept
				removed += n
			}
			return nil
		})
		if err != nil {
			return err
		}

		for key, tags := range updates {
			if err := writeCustomTags(tx, []byte(key), tags); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return 0, err
	}
	r.backend.logger.Debug("cleared workspace tags", "removed", removed)
	return removed, nil
}

// Snapshot returns every annotation in the store.
func (r *AnnotationRepository) Snapshot(ctx context.Context) (core.Annotations, error) {
	snapshot := core.Annotations{
		CustomTags: make(map[string][]core.RichTag),
		StaffTags:  make(map[string][]string),
	}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		err := scanPrefix(tx, []byte(customTagPrefix), func(key, value []byte) error {
			tags, err := storage.UnmarshalRichTags(value)
			if err != nil {
				return err
			}
			snapshot.CustomTags[roomKeyFrom(key, customTagPrefix)] = tags
			return nil
		})
		if err != nil {
			return err
		}
		return scanPrefix(tx, []byte(staffTagPrefix), func(key, value []byte) error {
			staff, err := storage.UnmarshalStaffTags(value)
			if err != nil {
				return err
			}
			snapshot.StaffTags[roomKeyFrom(key, staffTagPrefix)] = staff
			return nil
		})
	}, false)
	if err != nil {
		return core.Annotations{}, err
	}
	return snapshot, nil
}

// readCustomTags returns the tags stored at key, or nil if there are none.
func readCustomTags(tx *badger.Txn, key []byte) ([]core.RichTag, error) {
	var tags []core.RichTag
	err := readValue(tx, key, func(val []byte) error {
		var err error
		tags, err = storage.UnmarshalRichTags(val)
		return err
	})
	return tags, err
}

// writeCustomTags stores tags at key, deleting the key when tags is empty.
func writeCustomTags(tx *badger.Txn, key []byte, tags []core.RichTag) error {
	if len(tags) == 0 {
		return tx.Delete(key)
	}
	return tx.Set(key, storage.MarshalRichTags(tags))
}

// readStaffTags returns the staff tags stored at key, or nil if there are none.
func readStaffTags(tx *badger.Txn, key []byte) ([]string, error) {
	var staff []string
	err := readValue(tx, key, func(val []byte) error {
		var err error
		staff, err = storage.UnmarshalStaffTags(val)
		return err
	})
	return staff, err
}

// readValue calls fn with the value at key. A missing key is not an error.
func readValue(tx *badger.Txn, key []byte, fn func(val []byte) error) error {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	}
	return item.Value(fn)
}

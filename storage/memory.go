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

package storage

import (
	"context"
	"slices"
	"sync"

	"github.com/poiesic/roomsearch/core"
)

// MemoryStore is an AnnotationRepository held entirely in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	custom map[string][]core.RichTag
	staff  map[string][]string
	closed bool
}

var _ AnnotationRepository = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		custom: make(map[string][]core.RichTag),
		staff:  make(map[string][]string),
	}
}

// Close marks the store closed. Later calls return ErrStorageClosed.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// AddCustomTag implements AnnotationRepository.
func (m *MemoryStore) AddCustomTag(_ context.Context, roomKey string, tag *core.RichTag) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStorageClosed
	}
	tags, err := AppendCustomTag(m.custom[roomKey], tag)
	if err != nil {
		return err
	}
	m.custom[roomKey] = tags
	return nil
}

// RemoveCustomTag implements AnnotationRepository.
func (m *MemoryStore) RemoveCustomTag(_ context.Context, roomKey string, id core.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStorageClosed
	}
	tags, err := DeleteCustomTag(m.custom[roomKey], id)
	if err != nil {
		return err
	}
	m.setCustom(roomKey, tags)
	return nil
}

// CustomTags implements AnnotationRepository.
func (m *MemoryStore) CustomTags(_ context.Context, roomKey string) ([]core.RichTag, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrStorageClosed
	}
	return slices.Clone(m.custom[roomKey]), nil
}

// AddStaffTag implements AnnotationRepository.
func (m *MemoryStore) AddStaffTag(_ context.Context, roomKey, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStorageClosed
	}
	staff, err := AppendStaffTag(m.staff[roomKey], name)
	if err != nil {
		return err
	}
	m.staff[roomKey] = staff
	return nil
}

// RemoveStaffTag implements AnnotationRepository.
func (m *MemoryStore) RemoveStaffTag(_ context.Context, roomKey, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStorageClosed
	}
	staff, err := DeleteStaffTag(m.staff[roomKey], name)
	if err != nil {
		return err
	}
	if len(staff) == 0 {
		delete(m.staff, roomKey)
	} else {
		m.staff[roomKey] = staff
	}
	return nil
}

// StaffTags implements AnnotationRepository.
func (m *MemoryStore) StaffTags(_ context.Context, roomKey string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrStorageClosed
	}
	return slices.Clone(m.staff[roomKey]), nil
}

// ClearWorkspaceTags implements AnnotationRepository.
func (m *MemoryStore) ClearWorkspaceTags(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, ErrStorageClosed
	}
	removed := 0
	for roomKey, tags := range m.custom {
		kept, n := DropWorkspaceTags(tags)
		removed += n
		m.setCustom(roomKey, kept)
	}
	return removed, nil
}

// Snapshot implements AnnotationRepository.
func (m *MemoryStore) Snapshot(_ context.Context) (core.Annotations, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return core.Annotations{}, ErrStorageClosed
	}
	snapshot := core.Annotations{
		CustomTags: make(map[string][]core.RichTag, len(m.custom)),
		StaffTags:  make(map[string][]string, len(m.staff)),
	}
	for roomKey, tags := range m.custom {
		snapshot.CustomTags[roomKey] = slices.Clone(tags)
	}
	for roomKey, staff := range m.staff {
		snapshot.StaffTags[roomKey] = slices.Clone(staff)
	}
	return snapshot, nil
}

// setCustom stores tags for roomKey, forgetting rooms left without tags.
func (m *MemoryStore) setCustom(roomKey string, tags []core.RichTag) {
	if len(tags) == 0 {
		delete(m.custom, roomKey)
		return
	}
	m.custom[roomKey] = tags
}

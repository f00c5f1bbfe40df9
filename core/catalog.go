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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LoadRooms decodes a JSON array of rooms and validates each one.
// Room IDs must be unique within the catalog.
func LoadRooms(r io.Reader) ([]*Room, error) {
	var rooms []*Room
	if err := json.NewDecoder(r).Decode(&rooms); err != nil {
		return nil, fmt.Errorf("decode rooms: %w", err)
	}

	seen := make(map[string]struct{}, len(rooms))
	for i, room := range rooms {
		if err := ValidateRoom(room); err != nil {
			return nil, fmt.Errorf("room %d: %w", i, err)
		}
		key := room.Key()
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %w: %s", ErrInvalidRoom, ErrDuplicateRoomID, key)
		}
		seen[key] = struct{}{}
	}

	return rooms, nil
}

// LoadRoomsFile reads a room catalog from a JSON file.
func LoadRoomsFile(path string) ([]*Room, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadRooms(f)
}

// Resolve finds the room an external identifier refers to. Identifiers are
// tried as rmrecnbr first, then as room ID, then as room number.
// Returns nil when nothing matches.
func Resolve(rooms []*Room, identifier string) *Room {
	if identifier == "" {
		return nil
	}
	fields := []func(*Room) Text{
		func(r *Room) Text { return r.RecNumber },
		func(r *Room) Text { return r.Id },
		func(r *Room) Text { return r.RoomNumber },
	}
	for _, field := range fields {
		for _, room := range rooms {
			if room != nil && field(room).String() == identifier {
				return room
			}
		}
	}
	return nil
}

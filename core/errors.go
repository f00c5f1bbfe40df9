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

import "errors"

// Domain validation errors
var (
	// ErrInvalidRoom indicates a Room failed validation.
	ErrInvalidRoom = errors.New("invalid room")

	// ErrEmptyRoomID indicates the room ID field is empty.
	ErrEmptyRoomID = errors.New("room id cannot be empty")

	// ErrDuplicateRoomID indicates two rooms in one catalog share an ID.
	ErrDuplicateRoomID = errors.New("duplicate room id")

	// ErrInvalidField indicates a catalog value could not be decoded.
	ErrInvalidField = errors.New("invalid field value")

	// ErrInvalidRichTag indicates a RichTag failed validation.
	ErrInvalidRichTag = errors.New("invalid rich tag")

	// ErrEmptyTagName indicates the tag Name field is empty.
	ErrEmptyTagName = errors.New("tag name cannot be empty")

	// ErrEmptyStaffName indicates a staff annotation has no name.
	ErrEmptyStaffName = errors.New("staff name cannot be empty")
)

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

import "errors"

// Errors returned by annotation repositories. Callers compare with errors.Is.
var (
	// ErrNotFound is returned when a room has no tag with the given ID or name.
	ErrNotFound = errors.New("annotation not found")

	// ErrDuplicateKey is returned when a room already carries a tag with the same name.
	ErrDuplicateKey = errors.New("annotation already exists")

	// ErrStorageClosed is returned by every operation after Close.
	ErrStorageClosed = errors.New("annotation store is closed")

	// ErrSerializationFailed wraps encoding and decoding failures of stored tag lists.
	ErrSerializationFailed = errors.New("tag list encoding failed")

	// ErrTruncatedData is returned when a stored tag list ends before its declared length.
	ErrTruncatedData = errors.New("tag list truncated")
)

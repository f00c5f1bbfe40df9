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

// Package storage provides the storage abstraction layer for room annotations.
//
// Annotations are the custom rich tags and staff tags users attach to rooms.
// The search engine never reads storage directly: callers take a Snapshot and
// pass the resulting core.Annotations to each search.
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//   - Repository: Lifecycle operations shared by all repositories
//   - AnnotationRepository: Operations for custom and staff tags
//   - MemoryStore: A process-local AnnotationRepository
//   - badger.AnnotationRepository: A persistent AnnotationRepository
//
// The list rules (case-insensitive duplicate names, removal by ID, staff tag
// formatting) live in this package and are shared by every implementation.
//
// # Usage
//
// Open a persistent repository:
//
//	backend, err := badger.OpenBackend("/path/to/db", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//	repo := badger.NewAnnotationRepository(backend)
//
// Use in tests with in-memory storage:
//
//	repo, backend, err := badger.NewMemoryRepository()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer backend.Close()
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
package storage

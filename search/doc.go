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

// Package search ranks rooms against free-text queries.
//
// The Searcher type runs a query through three stages:
//   - Parsing the query into typed, boosted terms
//   - Matching every term against every room and its unified tags
//   - Applying a sufficiency threshold and ranking the rooms that pass it
//
// Searches are synchronous and hold no state between calls. Rooms and
// annotations are passed in on every call and only read.
package search

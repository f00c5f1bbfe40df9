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

// Package match scores a single search term against a single room.
//
// Each term type has its own fixed score tiers. Structured term types
// (floor, building, department, room type, staff, room number) compare
// against the matching room field only. General terms fall back to the
// room number, then the room's unified tags, then its abbreviated type code.
package match

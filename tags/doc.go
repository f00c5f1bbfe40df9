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

// Package tags derives the unified tag set for a room.
//
// Unified tags are the lowercase tokens the general-term matcher scans: the
// room's structured fields in several spellings ("floor 3", "3rd floor",
// "bldg:main"), abbreviation expansions of its type codes, its category tags,
// and the custom and staff annotations attached to it. Synthesis is pure, so
// callers recompute the set whenever annotations may have changed.
package tags

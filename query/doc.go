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

// Package query turns a raw search string into typed, boosted search terms.
//
// Parsing runs ordered pattern groups over a buffer holding the text that is
// still unclaimed:
//
//  1. floor      ("floor 3", "3rd floor", "level 3", "lv3", "f3", "third floor")
//  2. building   ("building:main", "bldg uh", "in north campus", "at annex building")
//  3. attribute  ("dept:radiology", "type:office", "room type: lab")
//  4. staff      ("staff:smith", "occupant jones", "dr. adams", "professor lee")
//
// Each match is cut out of the buffer, so text claimed by an earlier group is
// never seen by a later one. Whatever remains is split on whitespace and
// commas; stop words are dropped and each surviving token becomes either a
// room-number term (one optional letter, digits, one optional letter) or a
// general term.
//
// The short floor form only accepts one or two digits, so "f4214" parses as a
// room number rather than floor 42.
package query

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

// Package config holds the static tables the search engine is built from.
//
// A Config carries the abbreviation table used to expand short room-type and
// subtype codes ("Conf" to "Conference") and the stop words the query parser
// drops. Both are read once at startup and never mutated afterwards:
//
//	cfg := config.NewConfig(
//	    config.WithAbbreviation("Vest", "Vestibule"),
//	)
//
// or loaded from YAML, merged over the defaults:
//
//	cfg, err := config.LoadFile("roomsearch.yaml")
//
// The YAML file recognises two keys:
//
//	abbreviations:
//	  Conf: Conference
//	  Vest: Vestibule
//	stop_words: [the, and, or]
//
// Values of the form ${VAR} or ${VAR:-default} are expanded from the
// environment before parsing.
package config

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

// Package batch runs many queries against one catalog concurrently.
//
// A Runner submits each query to a worker pool. Every query is searched
// against the same rooms and the same annotation snapshot, and results come
// back in the order the queries were given. Individual searches are still
// synchronous; the pool only spreads independent queries across goroutines.
package batch

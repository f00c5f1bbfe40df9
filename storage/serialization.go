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

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/roomsearch/core"
)

// MarshalRichTags serializes a room's rich tags to bytes.
func MarshalRichTags(tags []core.RichTag) []byte {
	size := varint.Uint64.Size(uint64(len(tags)))
	for i := range tags {
		size += richTagSize(&tags[i])
	}
	w := &writer{bs: make([]byte, size)}
	w.putUint64(uint64(len(tags)))
	for i := range tags {
		w.richTag(&tags[i])
	}
	return w.bs
}

// UnmarshalRichTags deserializes a room's rich tags from bytes.
func UnmarshalRichTags(data []byte) ([]core.RichTag, error) {
	r := &reader{bs: data}
	count := r.count()
	var tags []core.RichTag
	for i := 0; i < count && r.err == nil; i++ {
		tags = append(tags, r.richTag())
	}
	if r.err != nil {
		return nil, fmt.Errorf("%w: rich tags: %w", ErrSerializationFailed, r.err)
	}
	return tags, nil
}

// MarshalStaffTags serializes a room's staff tags to bytes.
func MarshalStaffTags(names []string) []byte {
	size := varint.Uint64.Size(uint64(len(names)))
	for _, name := range names {
		size += ord.String.Size(name)
	}
	w := &writer{bs: make([]byte, size)}
	w.putUint64(uint64(len(names)))
	for _, name := range names {
		w.putString(name)
	}
	return w.bs
}

// UnmarshalStaffTags deserializes a room's staff tags from bytes.
func UnmarshalStaffTags(data []byte) ([]string, error) {
	r := &reader{bs: data}
	count := r.count()
	var names []string
	for i := 0; i < count && r.err == nil; i++ {
		names = append(names, r.readString())
	}
	if r.err != nil {
		return nil, fmt.Errorf("%w: staff tags: %w", ErrSerializationFailed, r.err)
	}
	return names, nil
}

func richTagSize(tag *core.RichTag) int {
	return varint.Uint64.Size(uint64(tag.Id)) +
		ord.String.Size(tag.Name) +
		ord.String.Size(tag.Type) +
		ord.String.Size(tag.Description) +
		ord.String.Size(tag.Link) +
		ord.String.Size(tag.Contact) +
		ord.String.Size(tag.ImageURL) +
		ord.String.Size(tag.Color) +
		ord.Bool.Size(tag.Workspace) +
		ord.String.Size(tag.CreatedBy) +
		varint.Int64.Size(tag.Created.UnixMicro()) +
		ord.Bool.Size(tag.Rich)
}

// writer appends fields to a buffer sized up front.
type writer struct {
	bs []byte
	n  int
}

func (w *writer) putUint64(v uint64) { w.n += varint.Uint64.Marshal(v, w.bs[w.n:]) }
func (w *writer) putInt64(v int64)   { w.n += varint.Int64.Marshal(v, w.bs[w.n:]) }
func (w *writer) putString(v string) { w.n += ord.String.Marshal(v, w.bs[w.n:]) }
func (w *writer) putBool(v bool)     { w.n += ord.Bool.Marshal(v, w.bs[w.n:]) }

func (w *writer) richTag(tag *core.RichTag) {
	w.putUint64(uint64(tag.Id))
	w.putString(tag.Name)
	w.putString(tag.Type)
	w.putString(tag.Description)
	w.putString(tag.Link)
	w.putString(tag.Contact)
	w.putString(tag.ImageURL)
	w.putString(tag.Color)
	w.putBool(tag.Workspace)
	w.putString(tag.CreatedBy)
	// Microsecond timestamps
	w.putInt64(tag.Created.UnixMicro())
	w.putBool(tag.Rich)
}

// reader decodes fields in order. After the first failure every read
// returns a zero value and err keeps the failure.
type reader struct {
	bs  []byte
	n   int
	err error
}

func (r *reader) readUint64() uint64 {
	if r.err != nil {
		return 0
	}
	v, n, err := varint.Uint64.Unmarshal(r.bs[r.n:])
	r.n += n
	r.err = err
	return v
}

func (r *reader) readInt64() int64 {
	if r.err != nil {
		return 0
	}
	v, n, err := varint.Int64.Unmarshal(r.bs[r.n:])
	r.n += n
	r.err = err
	return v
}

func (r *reader) readString() string {
	if r.err != nil {
		return ""
	}
	v, n, err := ord.String.Unmarshal(r.bs[r.n:])
	r.n += n
	r.err = err
	return v
}

func (r *reader) readBool() bool {
	if r.err != nil {
		return false
	}
	v, n, err := ord.Bool.Unmarshal(r.bs[r.n:])
	r.n += n
	r.err = err
	return v
}

// count reads a list length. Every element takes at least one byte, so a
// length beyond the remaining data is reported as truncation.
func (r *reader) count() int {
	v := r.readUint64()
	if r.err == nil && v > uint64(len(r.bs)-r.n) {
		r.err = ErrTruncatedData
		return 0
	}
	return int(v)
}

func (r *reader) richTag() core.RichTag {
	var tag core.RichTag
	tag.Id = core.ID(r.readUint64())
	tag.Name = r.readString()
	tag.Type = r.readString()
	tag.Description = r.readString()
	tag.Link = r.readString()
	tag.Contact = r.readString()
	tag.ImageURL = r.readString()
	tag.Color = r.readString()
	tag.Workspace = r.readBool()
	tag.CreatedBy = r.readString()
	tag.Created = time.UnixMicro(r.readInt64()).UTC()
	tag.Rich = r.readBool()
	return tag
}

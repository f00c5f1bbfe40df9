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
	"slices"
	"strings"

	"github.com/poiesic/roomsearch/core"
)

// The helpers below implement the list rules shared by every
// AnnotationRepository. They never modify their input slices.

// AppendCustomTag returns tags with tag added.
// Returns ErrDuplicateKey if a tag with the same name, ignoring case, exists.
func AppendCustomTag(tags []core.RichTag, tag *core.RichTag) ([]core.RichTag, error) {
	if err := core.ValidateRichTag(tag); err != nil {
		return nil, err
	}
	for _, existing := range tags {
		if strings.EqualFold(existing.Name, tag.Name) {
			return nil, fmt.Errorf("%w: tag %q", ErrDuplicateKey, tag.Name)
		}
	}
	return append(slices.Clone(tags), *tag), nil
}

// DeleteCustomTag returns tags without the tag whose ID is id.
// Returns ErrNotFound if there is no such tag.
func DeleteCustomTag(tags []core.RichTag, id core.ID) ([]core.RichTag, error) {
	i := slices.IndexFunc(tags, func(t core.RichTag) bool { return t.Id == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: tag %d", ErrNotFound, id)
	}
	return slices.Delete(slices.Clone(tags), i, i+1), nil
}

// DropWorkspaceTags returns the tags that were not shared through a
// workspace, and how many were dropped.
func DropWorkspaceTags(tags []core.RichTag) ([]core.RichTag, int) {
	kept := slices.DeleteFunc(slices.Clone(tags), func(t core.RichTag) bool { return t.Workspace })
	return kept, len(tags) - len(kept)
}

// AppendStaffTag returns staff with a tag for name added.
// Returns ErrDuplicateKey if the name, ignoring case, is already present.
func AppendStaffTag(staff []string, name string) ([]string, error) {
	if err := core.ValidateStaffName(name); err != nil {
		return nil, err
	}
	tag := core.StaffTag(name)
	if indexStaff(staff, tag) >= 0 {
		return nil, fmt.Errorf("%w: staff %q", ErrDuplicateKey, core.StaffName(tag))
	}
	return append(slices.Clone(staff), tag), nil
}

// DeleteStaffTag returns staff without the tag for name.
// Returns ErrNotFound if the name is not present.
func DeleteStaffTag(staff []string, name string) ([]string, error) {
	tag := core.StaffTag(name)
	i := indexStaff(staff, tag)
	if i < 0 {
		return nil, fmt.Errorf("%w: staff %q", ErrNotFound, core.StaffName(tag))
	}
	return slices.Delete(slices.Clone(staff), i, i+1), nil
}

func indexStaff(staff []string, tag string) int {
	return slices.IndexFunc(staff, func(s string) bool { return strings.EqualFold(s, tag) })
}

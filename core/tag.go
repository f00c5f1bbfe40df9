package core

import (
	"strings"
	"time"
)

// Defaults applied by NewRichTag.
const (
	DefaultTagType  = "simple"
	DefaultTagColor = "blue"
)

// RichTag is a user-created annotation on a room.
type RichTag struct {
	Id          ID
	Name        string
	Type        string // "simple" or a richer kind such as "contact" or "link"
	Description string
	Link        string
	Contact     string
	ImageURL    string
	Color       string
	Workspace   bool   // shared through a workspace rather than kept locally
	CreatedBy   string // set for workspace tags
	Created     time.Time
	Rich        bool // carries more than a name and the default color
}

// RichTagOptions holds the optional fields of a new RichTag.
type RichTagOptions struct {
	Type        string
	Description string
	Link        string
	Contact     string
	ImageURL    string
	Color       string
}

// NewRichTag builds a tag for the room identified by roomKey.
// Text fields are trimmed, Type defaults to "simple" and Color to "blue".
// The ID is derived from the room and the lowercase name, so a room cannot
// hold two tags whose names differ only in case.
func NewRichTag(roomKey, name string, opts RichTagOptions) (*RichTag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTagName
	}

	tag := &RichTag{
		Name:        name,
		Type:        strings.TrimSpace(opts.Type),
		Description: strings.TrimSpace(opts.Description),
		Link:        strings.TrimSpace(opts.Link),
		Contact:     strings.TrimSpace(opts.Contact),
		ImageURL:    strings.TrimSpace(opts.ImageURL),
		Color:       strings.TrimSpace(opts.Color),
		Created:     time.Now().UTC(),
	}
	if tag.Type == "" {
		tag.Type = DefaultTagType
	}
	if tag.Color == "" {
		tag.Color = DefaultTagColor
	}
	tag.Id = RichTagID(roomKey, name)
	tag.Rich = tag.Type != DefaultTagType ||
		tag.Description != "" ||
		tag.Link != "" ||
		tag.Contact != "" ||
		tag.ImageURL != "" ||
		tag.Color != DefaultTagColor

	return tag, nil
}

// RichTagID returns the content-based ID of a tag named name on the room roomKey.
func RichTagID(roomKey, name string) ID {
	return IDFromContent("(" + roomKey + "," + strings.ToLower(strings.TrimSpace(name)) + ")")
}

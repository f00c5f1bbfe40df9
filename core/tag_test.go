package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRichTag_Defaults(t *testing.T) {
	before := time.Now().UTC()
	tag, err := NewRichTag("12", "  Quiet Room ", RichTagOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Quiet Room", tag.Name)
	assert.Equal(t, DefaultTagType, tag.Type)
	assert.Equal(t, DefaultTagColor, tag.Color)
	assert.False(t, tag.Rich)
	assert.False(t, tag.Workspace)
	assert.False(t, tag.Created.Before(before))
	assert.Equal(t, RichTagID("12", "quiet room"), tag.Id)
}

func TestNewRichTag_Rich(t *testing.T) {
	tests := []struct {
		name string
		opts RichTagOptions
	}{
		{"non-simple type", RichTagOptions{Type: "equipment"}},
		{"description", RichTagOptions{Description: "has a projector"}},
		{"link", RichTagOptions{Link: "https://example.edu"}},
		{"contact", RichTagOptions{Contact: "x4-1234"}},
		{"image", RichTagOptions{ImageURL: "https://example.edu/a.png"}},
		{"color", RichTagOptions{Color: "red"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, err := NewRichTag("1", "tag", tt.opts)
			require.NoError(t, err)
			assert.True(t, tag.Rich)
		})
	}
}

func TestNewRichTag_EmptyName(t *testing.T) {
	_, err := NewRichTag("1", "   ", RichTagOptions{})
	assert.ErrorIs(t, err, ErrEmptyTagName)
}

func TestRichTagID_CaseInsensitive(t *testing.T) {
	assert.Equal(t, RichTagID("1", "Projector"), RichTagID("1", "projector "))
	assert.NotEqual(t, RichTagID("1", "projector"), RichTagID("2", "projector"))
}

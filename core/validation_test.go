package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRoom(t *testing.T) {
	assert.NoError(t, ValidateRoom(&Room{Id: "1"}))
	assert.ErrorIs(t, ValidateRoom(nil), ErrInvalidRoom)
	assert.ErrorIs(t, ValidateRoom(&Room{Id: " "}), ErrEmptyRoomID)
}

func TestValidateRichTag(t *testing.T) {
	assert.NoError(t, ValidateRichTag(&RichTag{Name: "quiet"}))
	assert.ErrorIs(t, ValidateRichTag(nil), ErrInvalidRichTag)
	assert.ErrorIs(t, ValidateRichTag(&RichTag{}), ErrEmptyTagName)
}

func TestValidateStaffName(t *testing.T) {
	assert.NoError(t, ValidateStaffName("Dr. Who"))
	assert.ErrorIs(t, ValidateStaffName("  "), ErrEmptyStaffName)
}

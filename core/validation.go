package core

import "fmt"

func ValidateRoom(room *Room) error {
	if room == nil {
		return fmt.Errorf("%w: room is nil", ErrInvalidRoom)
	}

	if room.Id.IsEmpty() {
		return fmt.Errorf("%w: %w", ErrInvalidRoom, ErrEmptyRoomID)
	}

	return nil
}

func ValidateRichTag(tag *RichTag) error {
	if tag == nil {
		return fmt.Errorf("%w: tag is nil", ErrInvalidRichTag)
	}

	if tag.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRichTag, ErrEmptyTagName)
	}

	return nil
}

func ValidateStaffName(name string) error {
	if StaffName(StaffTag(name)) == "" {
		return ErrEmptyStaffName
	}
	return nil
}

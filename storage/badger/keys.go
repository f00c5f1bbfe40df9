package badger

import "strings"

// Key prefixes for different data types
const (
	customTagPrefix = "custag:"
	staffTagPrefix  = "stftag:"
)

// makeCustomTagKey generates the key holding a room's rich tags.
// Format: prefix:roomKey
func makeCustomTagKey(roomKey string) []byte {
	return []byte(customTagPrefix + roomKey)
}

// makeStaffTagKey generates the key holding a room's staff tags.
// Format: prefix:roomKey
func makeStaffTagKey(roomKey string) []byte {
	return []byte(staffTagPrefix + roomKey)
}

// roomKeyFrom recovers the room key from a tag key.
func roomKeyFrom(key []byte, prefix string) string {
	return strings.TrimPrefix(string(key), prefix)
}

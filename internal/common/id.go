package common

import "time"

// TimestampID issues a millisecond-precision identifier, bumped past prev so
// ids stay unique and ordered even when two records are created within the
// same millisecond. Pass the highest id issued so far (0 when none).
func TimestampID(prev int64) int64 {
	id := time.Now().UnixMilli()
	if id <= prev {
		id = prev + 1
	}
	return id
}

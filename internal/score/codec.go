package score

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// RecordSize is the size in bytes of a persisted best score.
const RecordSize = 4

// ErrShortRecord is returned when a persisted record is not exactly
// RecordSize bytes long.
var ErrShortRecord = errors.New("score: record is not 4 bytes")

// Encode returns the big-endian record for v.
func Encode(v uint32) []byte {
	buf := make([]byte, RecordSize)
	binary.BigEndian.PutUint32(buf, v)
	return buf
}

// Decode parses a record written by Encode.
func Decode(data []byte) (uint32, error) {
	if len(data) != RecordSize {
		return 0, fmt.Errorf("%w: got %d bytes", ErrShortRecord, len(data))
	}
	return binary.BigEndian.Uint32(data), nil
}

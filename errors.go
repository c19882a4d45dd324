package guidgen

import "errors"

var (
	// ErrInvalidFormat indicates that the GUID string format is invalid
	ErrInvalidFormat = errors.New("guidgen: invalid GUID format")

	// ErrInvalidLength indicates that the GUID byte slice has incorrect length
	ErrInvalidLength = errors.New("guidgen: invalid GUID length (expected 16 bytes)")
)

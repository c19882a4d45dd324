package guidgen

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"strings"
)

// GUID is a 128-bit (16 byte) globally unique identifier. Unlike RFC 4122
// UUIDs it carries no version or variant bits: all 128 bits come from the
// generator, so seeded GUIDs reproduce bit-for-bit.
type GUID [16]byte

// Nil is the nil GUID (all zeros)
var Nil GUID

const hexUpper = "0123456789ABCDEF"

// String returns the canonical string representation of the GUID
// in the format: XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX (uppercase hex).
func (g GUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], g)
	return string(buf[:])
}

// encodeHex encodes a GUID to its canonical uppercase hex representation.
// Hyphens follow the 4th, 6th, 8th and 10th byte (4-2-2-2-6 grouping).
func encodeHex(dst []byte, g GUID) {
	j := 0
	for i, b := range g {
		dst[j] = hexUpper[b>>4]
		dst[j+1] = hexUpper[b&0x0f]
		j += 2
		switch i {
		case 3, 5, 7, 9:
			dst[j] = '-'
			j++
		}
	}
}

// Parse parses a GUID from its string representation.
// It accepts the following formats, upper or lower case:
//   - XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX (canonical)
//   - urn:uuid:XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX
//   - {XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX}
//   - XXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXX (without hyphens)
func Parse(s string) (GUID, error) {
	var guid GUID

	// Remove common prefixes and suffixes
	s = strings.TrimPrefix(s, "urn:uuid:")
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")

	// Handle canonical format with hyphens
	if len(s) == 36 {
		if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return guid, ErrInvalidFormat
		}
		// Decode each segment
		if err := decodeHexSegment(guid[0:4], s[0:8]); err != nil {
			return guid, err
		}
		if err := decodeHexSegment(guid[4:6], s[9:13]); err != nil {
			return guid, err
		}
		if err := decodeHexSegment(guid[6:8], s[14:18]); err != nil {
			return guid, err
		}
		if err := decodeHexSegment(guid[8:10], s[19:23]); err != nil {
			return guid, err
		}
		if err := decodeHexSegment(guid[10:16], s[24:36]); err != nil {
			return guid, err
		}
		return guid, nil
	}

	// Handle format without hyphens
	if len(s) == 32 {
		if _, err := hex.Decode(guid[:], []byte(s)); err != nil {
			return guid, ErrInvalidFormat
		}
		return guid, nil
	}

	return guid, ErrInvalidFormat
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) GUID {
	guid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("guidgen: Parse(%q): %v", s, err))
	}
	return guid
}

// decodeHexSegment decodes a hex string segment into a byte slice
func decodeHexSegment(dst []byte, src string) error {
	if _, err := hex.Decode(dst, []byte(src)); err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// Bytes returns the GUID as a byte slice
func (g GUID) Bytes() []byte {
	return g[:]
}

// IsNil returns true if the GUID is the nil GUID (all zeros)
func (g GUID) IsNil() bool {
	return g == Nil
}

// MarshalText implements the encoding.TextMarshaler interface
func (g GUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeHex(buf[:], g)
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (g *GUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*g = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (g GUID) MarshalBinary() ([]byte, error) {
	return g[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (g *GUID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidLength
	}
	copy(g[:], data)
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility
func (g *GUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*g = id
		return nil
	case []byte:
		if len(src) == 16 {
			copy(g[:], src)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*g = id
		return nil
	default:
		return fmt.Errorf("guidgen: cannot scan type %T into GUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (g GUID) Value() (driver.Value, error) {
	return g.String(), nil
}

// Compare returns an integer comparing two GUIDs lexicographically.
// The result will be 0 if g==other, -1 if g < other, and +1 if g > other.
func (g GUID) Compare(other GUID) int {
	for i := 0; i < 16; i++ {
		if g[i] < other[i] {
			return -1
		}
		if g[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Equal returns true if g and other represent the same GUID
func (g GUID) Equal(other GUID) bool {
	return g == other
}

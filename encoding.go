package guidgen

import (
	"encoding/base64"
	"encoding/hex"
)

// EncodeToHex encodes the GUID to a lowercase hexadecimal string
// without hyphens. Use String for the canonical uppercase form.
func (g GUID) EncodeToHex() string {
	return hex.EncodeToString(g[:])
}

// EncodeToBase64 encodes the GUID to a base64 string (URL-safe, no padding)
func (g GUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(g[:])
}

// EncodeToBase64Std encodes the GUID to a standard base64 string
func (g GUID) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(g[:])
}

// DecodeFromHex decodes a hexadecimal string to a GUID
func DecodeFromHex(s string) (GUID, error) {
	var guid GUID
	if len(s) != 32 {
		return guid, ErrInvalidFormat
	}
	_, err := hex.Decode(guid[:], []byte(s))
	if err != nil {
		return guid, ErrInvalidFormat
	}
	return guid, nil
}

// DecodeFromBase64 decodes a base64 string to a GUID (URL-safe encoding)
func DecodeFromBase64(s string) (GUID, error) {
	var guid GUID
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return guid, ErrInvalidFormat
	}
	if len(data) != 16 {
		return guid, ErrInvalidLength
	}
	copy(guid[:], data)
	return guid, nil
}

// DecodeFromBase64Std decodes a standard base64 string to a GUID
func DecodeFromBase64Std(s string) (GUID, error) {
	var guid GUID
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return guid, ErrInvalidFormat
	}
	if len(data) != 16 {
		return guid, ErrInvalidLength
	}
	copy(guid[:], data)
	return guid, nil
}

// FromBytes creates a GUID from a byte slice
func FromBytes(b []byte) (GUID, error) {
	var guid GUID
	if len(b) != 16 {
		return guid, ErrInvalidLength
	}
	copy(guid[:], b)
	return guid, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) GUID {
	guid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return guid
}

// Package serialize centralizes the on-disk encoding used for manifests.
package serialize

import (
	"encoding/json"
)

// Marshal encodes v compactly, for manifests that will be compressed.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalIndent encodes v human-readably, for plain-text manifests.
func MarshalIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// Unmarshal decodes data into dest.
func Unmarshal(data []byte, dest any) error {
	return json.Unmarshal(data, dest)
}

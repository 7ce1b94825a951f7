package state

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCorruptSnapshot marks persisted state that fails to deserialize. The
// caller is expected to fall back to an empty Document.
var ErrCorruptSnapshot = errors.New("corrupt document snapshot")

// MarshalSnapshot serializes a Document to its persistable JSON form.
func MarshalSnapshot(doc Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalSnapshot deserializes a persisted snapshot. Malformed input
// yields ErrCorruptSnapshot.
func UnmarshalSnapshot(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return doc, nil
}

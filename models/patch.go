package models

import (
	"encoding/json"
)

// Field wraps a patch value and records whether the field appeared in the
// request at all (Set) and whether it carried a non-null value (Valid).
// encoding/json leaves omitted fields untouched, so Set stays false for them;
// for a field present with an explicit null, UnmarshalJSON runs with "null"
// and marks the field as a clear.
type Field[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Valid = false
		var zero T
		f.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

// Ptr returns the value as a nullable pointer: nil for an explicit clear.
func (f Field[T]) Ptr() *T {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

package models

import (
	"bytes"
	"encoding/json"
)

// Optional is a tri-state JSON field for partial updates: absent from the
// payload, explicit null, or a value. The zero value means absent.
//
// Merge contract: field present overwrites the stored value (including with
// null); field absent retains it.
type Optional[T any] struct {
	Present bool
	Value   *T
}

// Some returns an Optional carrying a value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: &v}
}

// Null returns an Optional carrying an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true}
}

// IsNull reports whether the field was an explicit null.
func (o Optional[T]) IsNull() bool {
	return o.Present && o.Value == nil
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// Merge resolves a nullable field update: present overwrites (including with
// null), absent retains the old value.
func Merge[T any](old *T, update Optional[T]) *T {
	if !update.Present {
		return old
	}
	return update.Value
}

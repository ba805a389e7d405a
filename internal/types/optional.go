package types

import "encoding/json"

// Optional is a tri-state field for partial updates: absent from the request
// body, explicitly null (clear the field), or set to a value. Absent fields
// are never touched by an update; explicit null is a legitimate new value.
type Optional[T any] struct {
	present bool
	null    bool
	value   T
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{present: true, value: v}
}

// Null returns an Optional explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{present: true, null: true}
}

// UnmarshalJSON implements the json.Unmarshaler interface. It is only invoked
// for keys present in the document, which is what distinguishes "absent" from
// "null".
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.present = true
	if string(data) == "null" {
		o.null = true
		return nil
	}
	return json.Unmarshal(data, &o.value)
}

// MarshalJSON implements the json.Marshaler interface.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// Present reports whether the field appeared in the request at all.
func (o Optional[T]) Present() bool {
	return o.present
}

// IsNull reports whether the field was an explicit null.
func (o Optional[T]) IsNull() bool {
	return o.present && o.null
}

// Value returns the held value. The boolean is false when the field is absent
// or explicitly null.
func (o Optional[T]) Value() (T, bool) {
	if !o.present || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

package webex

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var jsonNull = []byte("null")

// Optional holds a model field that the server may omit. The zero value is
// absent; Null marks an explicit JSON null. Fields tagged `omitzero` are left
// out of the payload while absent.
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Null returns an Optional that serializes as JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// Get returns the value and whether one is present. Null yields false.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set && !o.null
}

// Value returns the value or the zero value of T.
func (o Optional[T]) Value() T {
	return o.value
}

// OrElse returns the value, or def when absent or null.
func (o Optional[T]) OrElse(def T) T {
	if v, ok := o.Get(); ok {
		return v
	}

	return def
}

// IsSet reports whether the field was present, including as null.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// IsNull reports whether the field was present as JSON null.
func (o Optional[T]) IsNull() bool {
	return o.set && o.null
}

// IsZero reports absence. encoding/json consults it for `omitzero`.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

// Ptr returns a pointer to the value, or nil when absent or null.
func (o Optional[T]) Ptr() *T {
	if v, ok := o.Get(); ok {
		return &v
	}

	return nil
}

// String implements fmt.Stringer.
func (o Optional[T]) String() string {
	switch {
	case !o.set:
		return "<absent>"
	case o.null:
		return "<null>"
	default:
		return fmt.Sprint(o.value)
	}
}

// MarshalJSON implements json.Marshaler. An absent Optional that is not
// tagged omitzero marshals as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return jsonNull, nil
	}

	data, err := json.Marshal(o.value)
	if err != nil {
		return nil, fmt.Errorf("marshaling optional value: %w", err)
	}

	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler. It is only called for keys that
// are present, so absence survives decoding.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		var zero T

		*o = Optional[T]{value: zero, set: true, null: true}

		return nil
	}

	var value T

	err := json.Unmarshal(data, &value)
	if err != nil {
		return err //nolint:wrapcheck // keep *json.UnmarshalTypeError intact for field paths
	}

	*o = Optional[T]{value: value, set: true}

	return nil
}

// queryValue lets QueryParams see through an Optional without reflection.
func (o Optional[T]) queryValue() (any, bool) {
	v, ok := o.Get()

	return v, ok
}

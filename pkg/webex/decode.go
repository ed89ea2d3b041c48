package webex

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ShapeKind names how a response body maps to a result.
type ShapeKind string

const (
	// ShapeSingle decodes the whole body as one model.
	ShapeSingle ShapeKind = "single"
	// ShapeList decodes a list, top-level or under Key.
	ShapeList ShapeKind = "list"
	// ShapePaginated is a list under Key spread across pages.
	ShapePaginated ShapeKind = "paginated"
	// ShapeScalar extracts the single field Key.
	ShapeScalar ShapeKind = "scalar"
	// ShapeNone ignores the body.
	ShapeNone ShapeKind = "none"
)

// IsKnown implements Enum.
func (k ShapeKind) IsKnown() bool {
	switch k {
	case ShapeSingle, ShapeList, ShapePaginated, ShapeScalar, ShapeNone:
		return true
	}

	return false
}

// Shape is the declared result shape of an endpoint.
type Shape struct {
	Kind ShapeKind `json:"kind"          yaml:"kind"`
	Key  string    `json:"key,omitempty" yaml:"key,omitempty"`
}

// Validate checks that the shape is usable.
func (s Shape) Validate() error {
	if !s.Kind.IsKnown() {
		return fmt.Errorf("%w: kind %q", ErrInvalidShape, s.Kind)
	}

	if (s.Kind == ShapeScalar || s.Kind == ShapePaginated) && s.Key == "" {
		return fmt.Errorf("%w: %s shape needs a key", ErrInvalidShape, s.Kind)
	}

	return nil
}

// DecodeSingle decodes body into a T.
func DecodeSingle[T any](body []byte) (*T, error) {
	if !gjson.ValidBytes(body) {
		return nil, &DecodeError{Reason: "response is not valid JSON", Err: ErrInvalidJSON}
	}

	var result T

	err := json.Unmarshal(body, &result)
	if err != nil {
		return nil, wrapUnmarshalError("", err)
	}

	return &result, nil
}

// DecodeList decodes the array under key, or the top-level array when key is
// empty. A missing or null key is a DecodeError.
func DecodeList[T any](body []byte, key string) ([]T, error) {
	raw, err := extract(body, key)
	if err != nil {
		return nil, err
	}

	if !raw.IsArray() {
		return nil, &DecodeError{Key: key, Reason: "expected a JSON array", Err: ErrTypeMismatch}
	}

	items := make([]T, 0, len(raw.Array()))

	err = json.Unmarshal([]byte(raw.Raw), &items)
	if err != nil {
		return nil, wrapUnmarshalError(key, err)
	}

	return items, nil
}

// DecodeScalar extracts the field key, such as the "id" returned by create
// calls.
func DecodeScalar[T any](body []byte, key string) (T, error) {
	var value T

	if key == "" {
		return value, &DecodeError{Reason: "scalar extraction needs a key", Err: ErrInvalidShape}
	}

	raw, err := extract(body, key)
	if err != nil {
		return value, err
	}

	err = json.Unmarshal([]byte(raw.Raw), &value)
	if err != nil {
		return value, wrapUnmarshalError(key, err)
	}

	return value, nil
}

// DecodeShape decodes body into untyped JSON values according to shape:
// map[string]any, []any, a scalar, or nil for ShapeNone.
func DecodeShape(body []byte, shape Shape) (any, error) {
	err := shape.Validate()
	if err != nil {
		return nil, &DecodeError{Reason: err.Error(), Err: ErrInvalidShape}
	}

	switch shape.Kind {
	case ShapeNone:
		return nil, nil
	case ShapeSingle:
		result, err := DecodeSingle[any](body)
		if err != nil {
			return nil, err
		}

		return *result, nil
	case ShapeList, ShapePaginated:
		return DecodeList[any](body, shape.Key)
	default:
		return DecodeScalar[any](body, shape.Key)
	}
}

func extract(body []byte, key string) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, &DecodeError{Key: key, Reason: "response is not valid JSON", Err: ErrInvalidJSON}
	}

	if key == "" {
		return gjson.ParseBytes(body), nil
	}

	result := gjson.GetBytes(body, escapePath(key))
	if !result.Exists() || result.Type == gjson.Null {
		return gjson.Result{}, &DecodeError{Key: key, Reason: "field is absent", Err: ErrMissingField}
	}

	return result, nil
}

// escapePath makes a literal field name safe as a gjson path.
func escapePath(key string) string {
	var builder strings.Builder

	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', '!', '=', '<', '>', '%':
			builder.WriteByte('\\')
		}

		builder.WriteRune(r)
	}

	return builder.String()
}

func wrapUnmarshalError(key string, err error) error {
	typeErr := &json.UnmarshalTypeError{}
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if key != "" && field != "" {
			field = key + "." + field
		} else if field == "" {
			field = key
		}

		return &DecodeError{
			Key:    field,
			Reason: fmt.Sprintf("cannot use JSON %s as %s", typeErr.Value, typeErr.Type),
			Err:    errors.Join(ErrTypeMismatch, err),
		}
	}

	syntaxErr := &json.SyntaxError{}
	if errors.As(err, &syntaxErr) {
		return &DecodeError{Key: key, Reason: syntaxErr.Error(), Err: errors.Join(ErrInvalidJSON, err)}
	}

	return &DecodeError{Key: key, Reason: err.Error(), Err: err}
}

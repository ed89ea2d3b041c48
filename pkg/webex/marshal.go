package webex

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Serialize converts a model into a map keyed by wire names. Absent fields are
// omitted, enums become their literal token and numbers stay exact as
// json.Number.
func Serialize(model any) (map[string]any, error) {
	data, err := json.Marshal(model)
	if err != nil {
		return nil, fmt.Errorf("serializing %T: %w", model, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var result map[string]any

	err = decoder.Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("serializing %T: not a JSON object: %w", model, err)
	}

	return result, nil
}

// SerializeList serializes each model in order.
func SerializeList[T any](models []T) ([]map[string]any, error) {
	result := make([]map[string]any, 0, len(models))

	for i := range models {
		item, err := Serialize(models[i])
		if err != nil {
			return nil, fmt.Errorf("serializing item %d: %w", i, err)
		}

		result = append(result, item)
	}

	return result, nil
}

// Validate builds a T from a raw wire map. Unknown keys are ignored and
// unknown enum tokens are kept; only structurally incompatible JSON types
// fail, with a *DecodeError naming the field.
func Validate[T any](raw map[string]any) (*T, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, &DecodeError{Reason: fmt.Sprintf("raw value is not JSON encodable: %v", err), Err: ErrInvalidJSON}
	}

	return ValidateJSON[T](data)
}

// ValidateJSON builds a T from JSON bytes.
func ValidateJSON[T any](data []byte) (*T, error) {
	var model T

	err := json.Unmarshal(data, &model)
	if err != nil {
		return nil, wrapUnmarshalError("", err)
	}

	return &model, nil
}

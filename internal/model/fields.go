package model

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Fields is a decoded JSON object taken from a request body.
type Fields map[string]json.RawMessage

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseFields decodes a request body into Fields. An empty body, a non-object
// body or an empty object is ErrBadRequest.
func ParseFields(body []byte) (Fields, error) {
	if len(body) == 0 {
		return nil, ErrBadRequest
	}

	var fields Fields
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, ErrBadRequest
	}
	if len(fields) == 0 {
		return nil, ErrBadRequest
	}

	return fields, nil
}

// Without returns a copy of f without the given keys.
func (f Fields) Without(keys ...string) Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// decodeInto applies every key of f to a target through setters. Unknown keys
// and values of the wrong JSON type are ErrInvalidData.
func (f Fields) decodeInto(setters map[string]any) error {
	for key, raw := range f {
		target, ok := setters[key]
		if !ok {
			return fmt.Errorf("%w: unknown field %q", ErrInvalidData, key)
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return fmt.Errorf("%w: field %q: %s", ErrInvalidData, key, err.Error())
		}
	}
	return nil
}

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidData, err.Error())
	}
	return nil
}

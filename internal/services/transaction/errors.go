package transaction

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// Service errors
var (
	ErrInvalidPayload   = errors.New("invalid JSON format in request body")
	ErrRequestCancelled = errors.New("request cancelled before classification completed")
	ErrInvalidCount     = errors.New("count must be between 1 and 20")
)

// FieldError reports well-formed JSON carrying a field of the wrong type.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DecodeError classifies a JSON decoding error. Type mismatches become a
// *FieldError naming the field; anything else wraps ErrInvalidPayload.
func DecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &FieldError{
			Field:   typeErr.Field,
			Message: "must be a " + jsonKind(typeErr.Type),
		}
	}
	return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "valid value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64, reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

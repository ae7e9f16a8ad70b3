package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyField    = errors.New("field is required")
	ErrFieldTooShort = errors.New("field is too short")
)

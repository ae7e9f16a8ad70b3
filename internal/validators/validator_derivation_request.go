package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-gen/models"
)

const (
	FieldPepper = "pepper"
	FieldWord   = "word"
)

type DerivationRequestValidator struct {
	minLength int
}

// NewDerivationRequestValidator returns a Validator for
// [models.DerivationRequest]. Every validated field must be non-empty and at
// least minLength characters long; minLength below 1 is treated as 1.
func NewDerivationRequestValidator(minLength int) Validator {
	if minLength < 1 {
		minLength = 1
	}
	return &DerivationRequestValidator{minLength: minLength}
}

// Validate checks the named fields of a DerivationRequest, or both fields
// when none are named. Empty fields are reported before short ones, so a
// caller can tell "nothing typed yet" from "keep typing".
func (v *DerivationRequestValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var req models.DerivationRequest
	switch r := obj.(type) {
	case models.DerivationRequest:
		req = r
	case *models.DerivationRequest:
		if r == nil {
			return fmt.Errorf("%w: nil request", ErrUnsupportedType)
		}
		req = *r
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	if len(fields) == 0 {
		fields = []string{FieldPepper, FieldWord}
	}

	values := make(map[string]string, len(fields))
	for _, field := range fields {
		switch field {
		case FieldPepper:
			values[field] = req.Pepper
		case FieldWord:
			values[field] = req.Word
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	for _, field := range fields {
		if values[field] == "" {
			return fmt.Errorf("%w: %s", ErrEmptyField, field)
		}
	}
	for _, field := range fields {
		if utf8.RuneCountInString(values[field]) < v.minLength {
			return fmt.Errorf("%w: %s must be at least %d characters", ErrFieldTooShort, field, v.minLength)
		}
	}

	return nil
}

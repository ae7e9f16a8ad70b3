// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks derivation input before it reaches the engine.
//
// The generator service validates with a minimum length of one character,
// which only rejects empty fields. The terminal client validates with its own
// minimum so it does not send requests while the user is still typing.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

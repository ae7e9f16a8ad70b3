// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidInput is returned when the word or the pepper is empty.
	// No cryptographic work is done in that case.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPrimitiveUnavailable is returned when the hash or the KDF cannot
	// run. The call fails; there is no fallback derivation.
	ErrPrimitiveUnavailable = errors.New("cryptographic primitive unavailable")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// HTTP and gRPC transports of the generator server.
//
// All Msg* constants are human-readable message strings that are written into
// response bodies or status messages to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording across transports.
package app

const (
	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgBodyFieldsRequired is returned when a JSON request lacks pepper or
	// word, or either of them is empty.
	MsgBodyFieldsRequired = "Both 'pepper' and 'word' are required."

	// MsgPathSegmentsRequired is returned when a path-segment request has an
	// empty pepper or word segment.
	MsgPathSegmentsRequired = "Both pepper and word are required"

	// MsgDerivationFailed is returned when the derivation primitive fails.
	// The underlying error text is never exposed.
	MsgDerivationFailed = "Failed to generate password"

	// MsgDerivationNotAdmitted is returned when the caller gave up waiting
	// for a free derivation slot.
	MsgDerivationNotAdmitted = "Too many concurrent derivations, retry later"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "not found"
)

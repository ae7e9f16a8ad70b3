// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DerivationRequest carries the two secrets a password is derived from.
//
// Both fields are required and must be non-empty. No length policy is
// enforced on the server side; the interactive client applies its own
// minimum before sending a request.
type DerivationRequest struct {
	// Pepper is the master secret mixed into every derivation.
	Pepper string `json:"pepper"`

	// Word is the base string the generated password is anchored to.
	Word string `json:"word"`
}

// DerivationResult is the full response of the derivation endpoint.
//
// RawHash and Salt are standard base64 encodings. RawHash is the derived key
// itself, so it is exactly as sensitive as Password.
type DerivationResult struct {
	// Password is the 16-character display token.
	Password string `json:"password"`

	// RawHash is the full 32-byte PBKDF2 output, base64 encoded.
	RawHash string `json:"rawHash"`

	// Salt is the fixed salt, base64 encoded.
	Salt string `json:"salt"`

	// Iterations is the PBKDF2 iteration count.
	Iterations int `json:"iterations"`

	// Hash names the PBKDF2 pseudo-random function hash.
	Hash string `json:"hash"`
}

// PasswordResponse is the compact response of the path-segment endpoint.
type PasswordResponse struct {
	Password string `json:"password"`
}

// Package crypto implements the deterministic password derivation engine.
//
// A password is derived from a word and a pepper with PBKDF2-HMAC-SHA256 over
// a fixed, compiled-in salt and encoded as a 16-character token drawn from
// the alphabet [A-Za-z0-9@#]. The same inputs always produce the same token.
//
// The salt is shared by every caller. Two people choosing the same word and
// pepper get the same password, and a precomputed dictionary against this one
// salt is feasible. Reproducibility across installations is the point of the
// package, so the salt must never be made random or configurable.
package crypto

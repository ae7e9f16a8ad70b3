// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	gocrypto "crypto"
	_ "crypto/sha256" // registers crypto.SHA256
	"encoding/base64"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Iterations is the PBKDF2 iteration count.
	Iterations = 100_000

	// KeyLen is the derived key length in bytes (256 bits).
	KeyLen = 32

	// HashName identifies the PBKDF2 PRF hash in responses.
	HashName = "SHA-256"

	// PasswordLen is the length of the display token.
	PasswordLen = 16

	saltLiteral = "static-salt-for-deterministic-results"
)

// salt is never handed out directly; see [Salt].
var salt = []byte(saltLiteral)

var passwordReplacer = strings.NewReplacer("+", "@", "/", "#")

// keyFunc matches [pbkdf2.Key].
type keyFunc func(password, salt []byte, iter, keyLen int, h func() hash.Hash) []byte

// pbkdf2Deriver is the private implementation of [Deriver].
type pbkdf2Deriver struct {
	hash   gocrypto.Hash
	derive keyFunc
}

// NewDeriver returns the production [Deriver]: PBKDF2-HMAC-SHA256,
// 100,000 iterations, 32-byte key, fixed salt.
func NewDeriver() Deriver {
	return &pbkdf2Deriver{
		hash:   gocrypto.SHA256,
		derive: pbkdf2.Key,
	}
}

// Salt returns a copy of the fixed salt.
func Salt() []byte {
	out := make([]byte, len(salt))
	copy(out, salt)
	return out
}

// Derive implements [Deriver]. The key material is the UTF-8 bytes of word
// followed by the UTF-8 bytes of pepper.
func (d *pbkdf2Deriver) Derive(word, pepper string) (Derivation, error) {
	if word == "" {
		return Derivation{}, fmt.Errorf("%w: word is empty", ErrInvalidInput)
	}
	if pepper == "" {
		return Derivation{}, fmt.Errorf("%w: pepper is empty", ErrInvalidInput)
	}

	key, err := d.deriveKey([]byte(word + pepper))
	if err != nil {
		return Derivation{}, err
	}

	return Derivation{
		Password:   FormatPassword(key),
		Key:        key,
		Salt:       Salt(),
		Iterations: Iterations,
		Hash:       HashName,
	}, nil
}

func (d *pbkdf2Deriver) deriveKey(material []byte) (key []byte, err error) {
	if !d.hash.Available() {
		return nil, fmt.Errorf("%w: %s is not linked into the binary", ErrPrimitiveUnavailable, HashName)
	}

	defer func() {
		if r := recover(); r != nil {
			key = nil
			err = fmt.Errorf("%w: %v", ErrPrimitiveUnavailable, r)
		}
	}()

	key = d.derive(material, Salt(), Iterations, KeyLen, d.hash.New)
	if len(key) != KeyLen {
		return nil, fmt.Errorf("%w: expected %d-byte key, got %d", ErrPrimitiveUnavailable, KeyLen, len(key))
	}

	return key, nil
}

// FormatPassword encodes key with standard base64, keeps the first
// [PasswordLen] characters and replaces '+' with '@' and '/' with '#'.
func FormatPassword(key []byte) string {
	encoded := base64.StdEncoding.EncodeToString(key)
	if len(encoded) > PasswordLen {
		encoded = encoded[:PasswordLen]
	}
	return passwordReplacer.Replace(encoded)
}

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/deriver_mock.go -package=mock

// Deriver turns a (word, pepper) pair into a [Derivation].
//
// Implementations must be pure: no per-call randomness, no shared mutable
// state, safe for concurrent use.
type Deriver interface {
	// Derive validates both inputs and runs the key derivation over
	// word || pepper. It returns [ErrInvalidInput] when either value is empty
	// and [ErrPrimitiveUnavailable] when the underlying primitive cannot run.
	Derive(word, pepper string) (Derivation, error)
}

// Derivation is the outcome of a single successful derivation.
type Derivation struct {
	// Password is the 16-character display token.
	Password string

	// Key is the raw PBKDF2 output.
	Key []byte

	// Salt is a copy of the fixed salt used for the derivation.
	Salt []byte

	// Iterations is the PBKDF2 iteration count.
	Iterations int

	// Hash names the hash function behind the PBKDF2 PRF.
	Hash string
}

package service

import "errors"

var (
	// ErrDerivationNotAdmitted is returned when the caller gave up while
	// waiting for a free derivation slot.
	ErrDerivationNotAdmitted = errors.New("derivation not admitted")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

package wots

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a byte slice does not hold a whole
	// number of chain values of the expected count.
	ErrInvalidLength = errors.New("invalid length")

	// ErrUnknownHasher is returned by HasherByName.
	ErrUnknownHasher = errors.New("unknown hasher")

	// ErrInvalidBase58 is the DecodeError cause for text outside the
	// base58 alphabet.
	ErrInvalidBase58 = errors.New("invalid base58 string")

	// ErrInvalidAddressLength is the DecodeError cause for base58 text
	// that does not decode to exactly HashSize bytes.
	ErrInvalidAddressLength = errors.New("invalid address length")
)

// DecodeError is returned when address text cannot be decoded.
type DecodeError struct {
	Str string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode address %q: %v", e.Str, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

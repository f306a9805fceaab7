package hdwots

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath is returned for a derivation path that cannot be
	// parsed.
	ErrInvalidPath = errors.New("invalid derivation path")

	// ErrInvalidMnemonic is returned for a mnemonic that fails the
	// BIP-0039 word list or checksum check.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
)

// DerivationError is returned for every failure to derive a key.  The
// failure depends only on the inputs, so retrying cannot succeed.
type DerivationError struct {
	Path string
	Err  error
}

func (e *DerivationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("derive key: %v", e.Err)
	}
	return fmt.Sprintf("derive key at %q: %v", e.Path, e.Err)
}

func (e *DerivationError) Unwrap() error {
	return e.Err
}

package wots

import (
	"encoding/hex"

	"github.com/ltcsuite/ltcd/ltcutil/base58"
)

// Address is the hash of a public key's merkle root.
type Address [HashSize]byte

// DecodeAddress parses the base58 form of an address.
func DecodeAddress(s string) (*Address, error) {
	b := base58.Decode(s)
	if len(b) == 0 && len(s) > 0 {
		return nil, &DecodeError{Str: s, Err: ErrInvalidBase58}
	}
	if len(b) != HashSize {
		return nil, &DecodeError{Str: s, Err: ErrInvalidAddressLength}
	}
	return (*Address)(b), nil
}

// String returns the base58 form of the address, at most 44 characters.
func (a Address) String() string {
	return base58.Encode(a[:])
}

// Hex returns the address as a hex string.
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

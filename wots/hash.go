package wots

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ltcsuite/ltcd/chaincfg/chainhash"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// HashSize is the size in bytes of every chain value, root and address.
const HashSize = 32

// Hash is a single chain value or digest.
type Hash [HashSize]byte

// String returns the hash as a hex string.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Hasher is the one-way function a key pair is built on.  A key must be
// generated, signed with and verified under the same Hasher; mixing them
// yields signatures that never verify.
type Hasher interface {
	fmt.Stringer

	// Hash returns the digest of b.
	Hash(b []byte) Hash

	// Hashv returns the digest of the concatenation of bs.
	Hashv(bs ...[]byte) Hash

	// HashPair returns the digest of a followed by b.
	HashPair(a, b []byte) Hash

	// HashTwice returns Hash(Hash(b)).
	HashTwice(b []byte) Hash
}

var (
	// Keccak256 is the original (pre-FIPS) Keccak-256.
	Keccak256 Hasher = keccak256Hasher{}

	// SHA256 is FIPS 180-4 SHA-256.
	SHA256 Hasher = sha256Hasher{}

	// Blake3 is BLAKE3 with a 32 byte output.
	Blake3 Hasher = blake3Hasher{}
)

// HasherByName returns the Hasher registered under name.
func HasherByName(name string) (Hasher, error) {
	switch strings.ToLower(name) {
	case "keccak256", "keccak":
		return Keccak256, nil
	case "sha256":
		return SHA256, nil
	case "blake3":
		return Blake3, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, name)
}

type keccak256Hasher struct{}

func (keccak256Hasher) String() string { return "keccak256" }

func (k keccak256Hasher) Hash(b []byte) Hash {
	return k.Hashv(b)
}

func (keccak256Hasher) Hashv(bs ...[]byte) (r Hash) {
	h := sha3.NewLegacyKeccak256()
	for _, b := range bs {
		h.Write(b)
	}
	copy(r[:], h.Sum(nil))
	return
}

func (k keccak256Hasher) HashPair(a, b []byte) Hash {
	return k.Hashv(a, b)
}

func (k keccak256Hasher) HashTwice(b []byte) Hash {
	r := k.Hash(b)
	return k.Hash(r[:])
}

type sha256Hasher struct{}

func (sha256Hasher) String() string { return "sha256" }

func (sha256Hasher) Hash(b []byte) Hash {
	return Hash(chainhash.HashH(b))
}

func (sha256Hasher) Hashv(bs ...[]byte) (r Hash) {
	h := sha256.New()
	for _, b := range bs {
		h.Write(b)
	}
	copy(r[:], h.Sum(nil))
	return
}

func (s sha256Hasher) HashPair(a, b []byte) Hash {
	return s.Hashv(a, b)
}

func (sha256Hasher) HashTwice(b []byte) Hash {
	return Hash(chainhash.DoubleHashH(b))
}

type blake3Hasher struct{}

func (blake3Hasher) String() string { return "blake3" }

func (blake3Hasher) Hash(b []byte) Hash {
	return blake3.Sum256(b)
}

func (blake3Hasher) Hashv(bs ...[]byte) (r Hash) {
	h := blake3.New(HashSize, nil)
	for _, b := range bs {
		h.Write(b)
	}
	copy(r[:], h.Sum(nil))
	return
}

func (b3 blake3Hasher) HashPair(a, b []byte) Hash {
	return b3.Hashv(a, b)
}

func (b3 blake3Hasher) HashTwice(b []byte) Hash {
	r := b3.Hash(b)
	return b3.Hash(r[:])
}

package wots

import (
	"crypto/rand"
	"io"
)

// PrivateKey holds the 32 independent chain seeds of a one-time key.
type PrivateKey [NumChains]Hash

// GeneratePrivateKey returns a new key with seeds read from crypto/rand.
func GeneratePrivateKey() (*PrivateKey, error) {
	return NewPrivateKeyFromReader(rand.Reader)
}

// NewPrivateKeyFromReader reads NumChains*HashSize bytes from r and uses
// them as the chain seeds in order.
func NewPrivateKeyFromReader(r io.Reader) (*PrivateKey, error) {
	k := &PrivateKey{}
	for i := range k {
		if _, err := io.ReadFull(r, k[i][:]); err != nil {
			return nil, err
		}
	}
	return k, nil
}

// PubKey hashes every seed ChainLength times.
func (k *PrivateKey) PubKey(h Hasher) *PublicKey {
	pk := &PublicKey{}
	forEachChain(NumChains, func(i int) {
		pk[i] = chain(h, k[i], ChainLength)
	})
	return pk
}

// Sign signs msg.  A key must sign at most one message: two signatures
// from the same key reveal enough of each chain to forge others.
func (k *PrivateKey) Sign(h Hasher, msg []byte) *Signature {
	digest := h.Hash(msg)
	return k.SignPrehashed(h, &digest)
}

// SignPrehashed signs an already computed message digest.  Chain i is
// hashed ChainLength-digest[i] times, so a zero byte reveals the chain tip
// and 0xff reveals a single application.
func (k *PrivateKey) SignPrehashed(h Hasher, digest *Hash) *Signature {
	sig := &Signature{}
	forEachChain(NumChains, func(i int) {
		sig[i] = chain(h, k[i], ChainLength-int(digest[i]))
	})
	return sig
}

// Zero overwrites the seeds.
func (k *PrivateKey) Zero() {
	for i := range k {
		k[i] = Hash{}
	}
}

package wots

// Signature holds one partially hashed value per chain.
type Signature [NumChains]Hash

// RecoverPubKey finishes every chain of the signature for msg.  The result
// is only the signer's public key if the signature is valid for msg.
func (s *Signature) RecoverPubKey(h Hasher, msg []byte) *PublicKey {
	digest := h.Hash(msg)
	return s.RecoverPubKeyPrehashed(h, &digest)
}

// RecoverPubKeyPrehashed hashes chain i digest[i] more times.
func (s *Signature) RecoverPubKeyPrehashed(h Hasher, digest *Hash) *PublicKey {
	pk := &PublicKey{}
	forEachChain(NumChains, func(i int) {
		pk[i] = chain(h, s[i], int(digest[i]))
	})
	return pk
}

// Verify reports whether s is a signature of msg under pk.  Every chain
// must match.
func (s *Signature) Verify(h Hasher, msg []byte, pk *PublicKey) bool {
	return *s.RecoverPubKey(h, msg) == *pk
}

// VerifyAddress reports whether s is a signature of msg by the key pair
// behind addr.
func (s *Signature) VerifyAddress(h Hasher, msg []byte, addr *Address) bool {
	return s.RecoverPubKey(h, msg).Address(h) == *addr
}

package wots

const (
	// NumPrimeChains is the number of chains carried by a PrimeSignature.
	NumPrimeChains = 28

	// NumExecuteChains is the number of chains carried by an
	// ExecuteSignature.
	NumExecuteChains = NumChains - NumPrimeChains
)

// PrimeSignature is chains 0 through 27 of a Signature.
type PrimeSignature [NumPrimeChains]Hash

// ExecuteSignature is chains 28 through 31 of a Signature.
type ExecuteSignature [NumExecuteChains]Hash

// Split recovers the public key from sig and msg and returns the pairing
// hash of the recovered execute tips along with the two halves of sig.
func Split(h Hasher, sig *Signature, msg []byte) (Hash, *PrimeSignature,
	*ExecuteSignature) {

	pairing := sig.RecoverPubKey(h, msg).PairingHash(h)

	prime := &PrimeSignature{}
	copy(prime[:], sig[:NumPrimeChains])
	exec := &ExecuteSignature{}
	copy(exec[:], sig[NumPrimeChains:])

	return pairing, prime, exec
}

// Join reassembles the signature the two halves were split from.
func Join(prime *PrimeSignature, exec *ExecuteSignature) *Signature {
	sig := &Signature{}
	copy(sig[:NumPrimeChains], prime[:])
	copy(sig[NumPrimeChains:], exec[:])
	return sig
}

// RecoverPairingHash finishes the execute chains for msg and commits to
// the resulting tips.  Callers must compare the result to a pairing hash
// they already trust before using it with RecoverAddress.
func (e *ExecuteSignature) RecoverPairingHash(h Hasher, msg []byte) Hash {
	digest := h.Hash(msg)
	return e.RecoverPairingHashPrehashed(h, &digest)
}

// RecoverPairingHashPrehashed is RecoverPairingHash for a message digest.
// Only digest bytes 28 through 31 are used.
func (e *ExecuteSignature) RecoverPairingHashPrehashed(h Hasher,
	digest *Hash) Hash {

	var tips [NumExecuteChains]Hash
	forEachChain(NumExecuteChains, func(i int) {
		tips[i] = chain(h, e[i], int(digest[NumPrimeChains+i]))
	})
	return pairingHash(h, &tips)
}

// RecoverAddress finishes the prime chains for msg and merklizes the tips
// with pairing standing in for the execute subtree.
func (p *PrimeSignature) RecoverAddress(h Hasher, msg []byte,
	pairing *Hash) Address {

	digest := h.Hash(msg)
	return p.RecoverAddressPrehashed(h, &digest, pairing)
}

// RecoverAddressPrehashed is RecoverAddress for a message digest.  Only
// digest bytes 0 through 27 are used.
func (p *PrimeSignature) RecoverAddressPrehashed(h Hasher, digest *Hash,
	pairing *Hash) Address {

	tips := make([]Hash, NumPrimeChains)
	forEachChain(NumPrimeChains, func(i int) {
		tips[i] = chain(h, p[i], int(digest[i]))
	})

	t := &merkleTree{h: h, leaves: tips, pairing: pairing}
	root := t.root()
	return Address(h.Hash(root[:]))
}

// VerifySplit runs both phases of split verification for msg.  The
// execute phase must reproduce trusted before the prime phase is run, and
// the prime phase must reproduce addr.
func VerifySplit(h Hasher, msg []byte, prime *PrimeSignature,
	exec *ExecuteSignature, trusted *Hash, addr *Address) bool {

	digest := h.Hash(msg)

	pairing := exec.RecoverPairingHashPrehashed(h, &digest)
	if pairing != *trusted {
		log.Debugf("Rejecting split signature: pairing hash %v does "+
			"not match %v", pairing, trusted)
		return false
	}

	recovered := prime.RecoverAddressPrehashed(h, &digest, &pairing)
	if recovered != *addr {
		log.Debugf("Rejecting split signature: recovered address %v "+
			"does not match %v", recovered, addr)
		return false
	}

	return true
}

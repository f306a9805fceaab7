package wots

// PublicKey holds the tips of the 32 hash chains.
type PublicKey [NumChains]Hash

// Merklize reduces the chain tips pairwise, lower index on the left, to a
// single root.
func (pk *PublicKey) Merklize(h Hasher) Hash {
	t := &merkleTree{h: h, leaves: pk[:]}
	return t.root()
}

// PairingHash commits to the four execute chain tips.
func (pk *PublicKey) PairingHash(h Hasher) Hash {
	return pairingHash(h, (*[NumExecuteChains]Hash)(pk[NumPrimeChains:]))
}

// Address returns the hash of the merkle root.
func (pk *PublicKey) Address(h Hasher) Address {
	root := pk.Merklize(h)
	return Address(h.Hash(root[:]))
}

func pairingHash(h Hasher, tips *[NumExecuteChains]Hash) Hash {
	l := h.HashPair(tips[0][:], tips[1][:])
	r := h.HashPair(tips[2][:], tips[3][:])
	return h.HashPair(l[:], r[:])
}

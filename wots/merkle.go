package wots

const (
	// merkleHeight is the depth of the tree over NumChains leaves.
	merkleHeight = 5

	// The execute chains form the right-most subtree of height 2.  Its
	// node can be supplied precomputed as the pairing hash.
	pairingHeight = 2
	pairingPos    = NumPrimeChains >> pairingHeight
)

// merkleTree is a fixed height binary hash tree over chain tips.  When
// pairing is set, the node at (pairingHeight, pairingPos) takes its value
// and leaves only needs to cover the prime chains.
type merkleTree struct {
	h       Hasher
	leaves  []Hash
	pairing *Hash
}

func (t *merkleTree) root() Hash {
	return t.calcHash(merkleHeight, 0)
}

// calcHash returns the hash of the subtree at the given height and
// position, counting height from the leaves.
func (t *merkleTree) calcHash(height, pos uint32) Hash {
	if t.pairing != nil && height == pairingHeight && pos == pairingPos {
		return *t.pairing
	}
	if height == 0 {
		return t.leaves[pos]
	}

	left := t.calcHash(height-1, pos*2)
	right := t.calcHash(height-1, pos*2+1)
	return t.h.HashPair(left[:], right[:])
}

package wots

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testLeaves(h Hasher) *PublicKey {
	pk := &PublicKey{}
	for i := range pk {
		pk[i] = h.Hash([]byte{byte(i)})
	}
	return pk
}

// reduce merklizes level by level instead of recursively.
func reduce(h Hasher, level []Hash) Hash {
	for len(level) > 1 {
		next := make([]Hash, len(level)/2)
		for i := range next {
			next[i] = h.HashPair(level[2*i][:], level[2*i+1][:])
		}
		level = next
	}
	return level[0]
}

func TestMerklize(t *testing.T) {
	for _, h := range []Hasher{Keccak256, SHA256, Blake3} {
		pk := testLeaves(h)
		require.Equal(t, reduce(h, pk[:]), pk.Merklize(h), h.String())

		root := pk.Merklize(h)
		require.Equal(t, Address(h.Hash(root[:])), pk.Address(h))
	}
}

func TestMerklizeOrder(t *testing.T) {
	h := Keccak256
	pk := testLeaves(h)
	swapped := *pk
	swapped[0], swapped[1] = swapped[1], swapped[0]
	require.NotEqual(t, pk.Merklize(h), swapped.Merklize(h))
}

func TestMerklePairingSubtree(t *testing.T) {
	h := SHA256
	pk := testLeaves(h)
	pairing := pk.PairingHash(h)

	// The pairing hash is the node over the last four leaves.
	require.Equal(t, reduce(h, pk[NumPrimeChains:]), pairing)

	tree := &merkleTree{h: h, leaves: pk[:NumPrimeChains], pairing: &pairing}
	require.Equal(t, pk.Merklize(h), tree.root())

	wrong := h.Hash(pairing[:])
	tree.pairing = &wrong
	require.NotEqual(t, pk.Merklize(h), tree.root())
}

func TestChain(t *testing.T) {
	h := Blake3
	seed := h.Hash([]byte("seed"))
	require.Equal(t, seed, chain(h, seed, 0))
	require.Equal(t, h.Hash(seed[:]), chain(h, seed, 1))

	mid := chain(h, seed, 100)
	require.Equal(t, chain(h, seed, ChainLength), chain(h, mid, ChainLength-100))
}

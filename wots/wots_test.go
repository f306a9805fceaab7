package wots_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/ltcsuite/winternitz/wots"
	"github.com/stretchr/testify/require"
)

var (
	testMessage = []byte("test")

	hashers = []wots.Hasher{wots.Keccak256, wots.SHA256, wots.Blake3}
)

// testKey returns a deterministic key whose seeds are the digests of their
// chain index.
func testKey(t *testing.T, tag byte) *wots.PrivateKey {
	t.Helper()

	var seeds bytes.Buffer
	for i := 0; i < wots.NumChains; i++ {
		seed := wots.SHA256.Hash([]byte{tag, byte(i)})
		seeds.Write(seed[:])
	}
	k, err := wots.NewPrivateKeyFromReader(&seeds)
	require.NoError(t, err)
	return k
}

func TestGeneratePrivateKey(t *testing.T) {
	k1, err := wots.GeneratePrivateKey()
	require.NoError(t, err)
	k2, err := wots.GeneratePrivateKey()
	require.NoError(t, err)
	require.NotEqual(t, *k1, *k2)

	seen := make(map[wots.Hash]struct{})
	for _, seed := range k1 {
		seen[seed] = struct{}{}
	}
	require.Len(t, seen, wots.NumChains)
}

func TestNewPrivateKeyFromShortReader(t *testing.T) {
	_, err := wots.NewPrivateKeyFromReader(bytes.NewReader(make([]byte, 100)))
	require.Error(t, err)
}

func TestSignVerify(t *testing.T) {
	for _, h := range hashers {
		t.Run(h.String(), func(t *testing.T) {
			k, err := wots.GeneratePrivateKey()
			require.NoError(t, err)

			pk := k.PubKey(h)
			addr := pk.Address(h)
			sig := k.Sign(h, testMessage)

			require.True(t, sig.Verify(h, testMessage, pk))
			require.True(t, sig.VerifyAddress(h, testMessage, &addr))
		})
	}
}

func TestRecoveredAddressMatches(t *testing.T) {
	k, err := wots.GeneratePrivateKey()
	require.NoError(t, err)

	addr1 := k.PubKey(wots.Keccak256).Address(wots.Keccak256)
	sig := k.Sign(wots.Keccak256, testMessage)
	addr2 := sig.RecoverPubKey(wots.Keccak256, testMessage).
		Address(wots.Keccak256)
	require.Equal(t, addr1, addr2)
}

func TestVerifyModifiedMessage(t *testing.T) {
	h := wots.Keccak256
	k := testKey(t, 1)
	pk := k.PubKey(h)
	addr := pk.Address(h)
	sig := k.Sign(h, testMessage)

	for i := 0; i < len(testMessage)*8; i++ {
		msg := bytes.Clone(testMessage)
		msg[i/8] ^= 1 << (i % 8)

		require.False(t, sig.Verify(h, msg, pk), "bit %d", i)
		require.False(t, sig.VerifyAddress(h, msg, &addr), "bit %d", i)
	}
}

func TestVerifyModifiedSignature(t *testing.T) {
	h := wots.SHA256
	k := testKey(t, 2)
	pk := k.PubKey(h)
	addr := pk.Address(h)
	sig := k.Sign(h, testMessage)

	for i := 0; i < wots.NumChains; i++ {
		bad := *sig
		bad[i][i] ^= 0x01

		require.False(t, bad.Verify(h, testMessage, pk),
			"chain %d: %v", i, spew.Sdump(bad))
		require.False(t, bad.VerifyAddress(h, testMessage, &addr),
			"chain %d", i)
	}
}

func TestVerifyWrongKey(t *testing.T) {
	h := wots.Blake3
	sig := testKey(t, 3).Sign(h, testMessage)
	other := testKey(t, 4).PubKey(h)
	require.False(t, sig.Verify(h, testMessage, other))
}

func TestDeterministic(t *testing.T) {
	for _, h := range hashers {
		k := testKey(t, 5)
		require.Equal(t, k.PubKey(h), k.PubKey(h), h.String())
		require.Equal(t, k.Sign(h, testMessage), k.Sign(h, testMessage),
			h.String())
		require.Equal(t, testKey(t, 5).PubKey(h), k.PubKey(h),
			h.String())
	}
}

func TestSignPrehashedBoundaries(t *testing.T) {
	h := wots.Keccak256
	k := testKey(t, 6)
	pk := k.PubKey(h)

	// A zero digest byte reveals the whole chain.
	var zero wots.Hash
	sig := k.SignPrehashed(h, &zero)
	require.Equal(t, wots.Signature(*pk), *sig)
	require.Equal(t, *pk, *sig.RecoverPubKeyPrehashed(h, &zero))

	// 0xff reveals a single application.
	var full wots.Hash
	for i := range full {
		full[i] = 0xff
	}
	sig = k.SignPrehashed(h, &full)
	for i := range sig {
		require.Equal(t, h.Hash(k[i][:]), sig[i], "chain %d", i)
	}
	require.Equal(t, *pk, *sig.RecoverPubKeyPrehashed(h, &full))
}

func TestZeroDigestByteRevealsTip(t *testing.T) {
	h := wots.SHA256
	k := testKey(t, 7)
	pk := k.PubKey(h)

	// Find a message whose digest has a zero byte somewhere.
	for n := 0; ; n++ {
		msg := []byte(fmt.Sprintf("message %d", n))
		digest := h.Hash(msg)
		i := bytes.IndexByte(digest[:], 0)
		if i < 0 {
			continue
		}

		sig := k.Sign(h, msg)
		require.Equal(t, pk[i], sig[i])
		require.True(t, sig.Verify(h, msg, pk))
		return
	}
}

func TestCrossHasher(t *testing.T) {
	k := testKey(t, 8)
	for _, signer := range hashers {
		sig := k.Sign(signer, testMessage)
		for _, verifier := range hashers {
			pk := k.PubKey(verifier)
			addr := pk.Address(verifier)
			want := signer == verifier

			require.Equal(t, want, sig.Verify(verifier, testMessage, pk),
				"%v/%v", signer, verifier)
			require.Equal(t, want, sig.VerifyAddress(verifier,
				testMessage, &addr), "%v/%v", signer, verifier)
		}
	}
}

func TestDistinctKeysDistinctAddresses(t *testing.T) {
	seen := make(map[wots.Address]struct{})
	for i := 0; i < 16; i++ {
		addr := testKey(t, byte(i)).PubKey(wots.Blake3).Address(wots.Blake3)
		_, dup := seen[addr]
		require.False(t, dup)
		seen[addr] = struct{}{}
	}
}

func TestZero(t *testing.T) {
	k := testKey(t, 9)
	k.Zero()
	require.Equal(t, wots.PrivateKey{}, *k)
}

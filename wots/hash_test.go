package wots_test

import (
	"testing"

	"github.com/ltcsuite/winternitz/wots"
	"github.com/stretchr/testify/require"
)

func TestHasherByName(t *testing.T) {
	tests := []struct {
		name string
		want wots.Hasher
	}{
		{"keccak256", wots.Keccak256},
		{"Keccak", wots.Keccak256},
		{"sha256", wots.SHA256},
		{"BLAKE3", wots.Blake3},
	}
	for _, test := range tests {
		h, err := wots.HasherByName(test.name)
		require.NoError(t, err)
		require.Equal(t, test.want, h)
	}

	_, err := wots.HasherByName("md5")
	require.ErrorIs(t, err, wots.ErrUnknownHasher)
}

func TestHasherKnownAnswers(t *testing.T) {
	tests := []struct {
		h    wots.Hasher
		want string
	}{
		{wots.Keccak256, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{wots.SHA256, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{wots.Blake3, "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"},
	}
	for _, test := range tests {
		require.Equal(t, test.want, test.h.Hash(nil).String(), test.h.String())
		require.Equal(t, test.want, test.h.Hashv().String(), test.h.String())
	}
}

func TestHasherComposition(t *testing.T) {
	a := []byte("left")
	b := []byte("right")
	ab := append(append([]byte{}, a...), b...)

	for _, h := range hashers {
		require.Equal(t, h.Hash(ab), h.Hashv(a, b), h.String())
		require.Equal(t, h.Hash(ab), h.Hashv(a, nil, b), h.String())
		require.Equal(t, h.Hash(ab), h.HashPair(a, b), h.String())
		require.NotEqual(t, h.HashPair(a, b), h.HashPair(b, a), h.String())

		once := h.Hash(a)
		require.Equal(t, h.Hash(once[:]), h.HashTwice(a), h.String())
	}
}

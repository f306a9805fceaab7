package wots_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ltcsuite/ltcd/ltcutil/base58"
	"github.com/ltcsuite/winternitz/wots"
	"github.com/stretchr/testify/require"
)

func TestAddressString(t *testing.T) {
	for i := byte(0); i < 8; i++ {
		addr := testKey(t, i).PubKey(wots.Keccak256).Address(wots.Keccak256)
		s := addr.String()
		require.LessOrEqual(t, len(s), 44)

		decoded, err := wots.DecodeAddress(s)
		require.NoError(t, err)
		require.Equal(t, addr, *decoded)
	}

	var zero wots.Address
	decoded, err := wots.DecodeAddress(zero.String())
	require.NoError(t, err)
	require.Equal(t, zero, *decoded)

	var full wots.Address
	for i := range full {
		full[i] = 0xff
	}
	require.Len(t, full.String(), 44)
}

func TestDecodeAddressErrors(t *testing.T) {
	tests := []struct {
		name string
		str  string
		err  error
	}{
		{"empty", "", wots.ErrInvalidAddressLength},
		{"alphabet", "0OIl" + strings.Repeat("1", 40), wots.ErrInvalidBase58},
		{"short", base58.Encode(make([]byte, 31)), wots.ErrInvalidAddressLength},
		{"long", base58.Encode(append([]byte{1}, make([]byte, 32)...)),
			wots.ErrInvalidAddressLength},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := wots.DecodeAddress(test.str)
			require.ErrorIs(t, err, test.err)

			var decodeErr *wots.DecodeError
			require.True(t, errors.As(err, &decodeErr))
			require.Equal(t, test.str, decodeErr.Str)
		})
	}
}

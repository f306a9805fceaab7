package hdwots

import (
	"fmt"

	"github.com/ltcsuite/ltcd/chaincfg"
	"github.com/ltcsuite/ltcd/ltcutil/hdkeychain"
	"github.com/ltcsuite/winternitz/wots"
	"github.com/tyler-smith/go-bip39"
)

// DefaultPath is the path used when the caller has no preference.
const DefaultPath = "m/44'/2'/0'"

// NewMnemonic returns a fresh 24 word BIP-0039 mnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// SeedFromMnemonic returns the 64 byte BIP-0039 seed of mnemonic.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, &DerivationError{
			Err: fmt.Errorf("%w: %w", ErrInvalidMnemonic, err),
		}
	}
	return seed, nil
}

// NewPrivateKey derives a one-time key from a master seed.  The key at
// path is derived first, and the seed of chain i is the private key of its
// hardened child i.
func NewPrivateKey(seed []byte, path string) (*wots.PrivateKey, error) {
	return NewPrivateKeyWithParams(seed, path, &chaincfg.MainNetParams)
}

// NewPrivateKeyWithParams is NewPrivateKey for the given network.  The
// network only selects extended key versions; derived seeds are the same on
// every network.
func NewPrivateKeyWithParams(seed []byte, path string,
	net *chaincfg.Params) (*wots.PrivateKey, error) {

	indices, err := ParsePath(path)
	if err != nil {
		return nil, &DerivationError{Path: path, Err: err}
	}

	key, err := hdkeychain.NewMaster(seed, net)
	if err != nil {
		return nil, &DerivationError{Path: path, Err: err}
	}
	defer func() { key.Zero() }()
	for _, i := range indices {
		child, err := key.Derive(i)
		if err != nil {
			return nil, &DerivationError{Path: path, Err: err}
		}
		key.Zero()
		key = child
	}

	k := &wots.PrivateKey{}
	for i := range k {
		child, err := key.Derive(hdkeychain.HardenedKeyStart + uint32(i))
		if err != nil {
			return nil, &DerivationError{Path: path, Err: err}
		}
		priv, err := child.ECPrivKey()
		if err != nil {
			child.Zero()
			k.Zero()
			return nil, &DerivationError{Path: path, Err: err}
		}
		copy(k[i][:], priv.Serialize())
		priv.Zero()
		child.Zero()
	}

	log.Debugf("Derived one-time key at %v", path)

	return k, nil
}

// NewPrivateKeyFromMnemonic derives a one-time key from a mnemonic.
func NewPrivateKeyFromMnemonic(mnemonic, passphrase,
	path string) (*wots.PrivateKey, error) {

	seed, err := SeedFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	return NewPrivateKey(seed, path)
}

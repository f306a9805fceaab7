package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ltcsuite/winternitz/hdwots"
	"github.com/ltcsuite/winternitz/wots"
)

var errInvalidSignature = errors.New("signature is invalid")

func decodeHash(s string) (*wots.Hash, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != wots.HashSize {
		return nil, fmt.Errorf("%w: hash is %d bytes", wots.ErrInvalidLength,
			len(b))
	}
	return (*wots.Hash)(b), nil
}

func decodeSignature(s string) (*wots.Signature, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return wots.SignatureFromBytes(b)
}

type generateCmd struct {
	app *app

	Mnemonic    string `long:"mnemonic" description:"Derive the key from this BIP-0039 mnemonic"`
	NewMnemonic bool   `long:"newmnemonic" description:"Create a mnemonic, print it and derive the key from it"`
	Passphrase  string `long:"passphrase" description:"BIP-0039 passphrase used with the mnemonic"`
	Path        string `long:"path" default:"m/44'/2'/0'" description:"Derivation path used with the mnemonic"`
}

func (c *generateCmd) Execute(args []string) error {
	mnemonic := c.Mnemonic
	if c.NewMnemonic {
		if mnemonic != "" {
			return errors.New("--mnemonic and --newmnemonic are " +
				"mutually exclusive")
		}
		var err error
		mnemonic, err = hdwots.NewMnemonic()
		if err != nil {
			return err
		}
		c.app.printf("mnemonic: %s\n", mnemonic)
	}

	var (
		k   *wots.PrivateKey
		err error
	)
	if mnemonic != "" {
		k, err = hdwots.NewPrivateKeyFromMnemonic(mnemonic, c.Passphrase,
			c.Path)
	} else {
		k, err = wots.GeneratePrivateKey()
	}
	if err != nil {
		return err
	}
	defer k.Zero()

	store, err := c.app.openKeystore()
	if err != nil {
		return err
	}
	h := c.app.cfg.hasher
	addr, err := store.Put(h, k)
	if err != nil {
		return err
	}

	ctlLog.Infof("Generated %v key %v", h, addr)
	c.app.printf("address: %v\n", addr)
	return nil
}

type listCmd struct {
	app *app
}

func (c *listCmd) Execute(args []string) error {
	store, err := c.app.openKeystore()
	if err != nil {
		return err
	}
	addrs, err := store.Addresses()
	if err != nil {
		return err
	}
	for i := range addrs {
		entry, err := store.Get(&addrs[i])
		if err != nil {
			return err
		}
		c.app.printf("%v %v\n", addrs[i], entry.Hasher)
	}
	return nil
}

type showCmd struct {
	app *app

	Args struct {
		Address string `positional-arg-name:"address"`
	} `positional-args:"yes" required:"yes"`
}

func (c *showCmd) Execute(args []string) error {
	addr, err := wots.DecodeAddress(c.Args.Address)
	if err != nil {
		return err
	}
	store, err := c.app.openKeystore()
	if err != nil {
		return err
	}
	entry, err := store.Get(addr)
	if err != nil {
		return err
	}
	defer entry.Key.Zero()

	h := entry.Hasher
	pk := entry.Key.PubKey(h)
	c.app.printf("hash: %v\n", h)
	c.app.printf("pubkey: %x\n", pk.Bytes())
	c.app.printf("pairing: %v\n", pk.PairingHash(h))
	c.app.printf("address: %v\n", pk.Address(h))
	return nil
}

type signCmd struct {
	app *app

	Keep bool `long:"keep" description:"Keep the key after signing; signing a second message with it is insecure"`
	Args struct {
		Address string `positional-arg-name:"address"`
		Message string `positional-arg-name:"message"`
	} `positional-args:"yes" required:"yes"`
}

func (c *signCmd) Execute(args []string) error {
	addr, err := wots.DecodeAddress(c.Args.Address)
	if err != nil {
		return err
	}
	msg, err := c.app.cfg.message(c.Args.Message)
	if err != nil {
		return err
	}
	store, err := c.app.openKeystore()
	if err != nil {
		return err
	}
	entry, err := store.Get(addr)
	if err != nil {
		return err
	}
	defer entry.Key.Zero()

	sig := entry.Key.Sign(entry.Hasher, msg)

	if c.Keep {
		ctlLog.Warnf("Keeping key %v after signing", addr)
	} else if err := store.Delete(addr); err != nil {
		return err
	}

	c.app.printf("signature: %x\n", sig.Bytes())
	return nil
}

type verifyCmd struct {
	app *app

	Args struct {
		Address    string   `positional-arg-name:"address"`
		Message    string   `positional-arg-name:"message"`
		Signatures []string `positional-arg-name:"signature" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

func (c *verifyCmd) Execute(args []string) error {
	addr, err := wots.DecodeAddress(c.Args.Address)
	if err != nil {
		return err
	}
	msg, err := c.app.cfg.message(c.Args.Message)
	if err != nil {
		return err
	}

	// Repeated signatures are answered from the cache.
	allValid := true
	for _, s := range c.Args.Signatures {
		sig, err := decodeSignature(s)
		if err != nil {
			return err
		}
		valid := c.app.sigCache.VerifyAddress(msg, sig, addr)
		c.app.printf("valid: %v\n", valid)
		allValid = allValid && valid
	}
	if !allValid {
		return errInvalidSignature
	}
	return nil
}

type splitCmd struct {
	app *app

	Args struct {
		Message   string `positional-arg-name:"message"`
		Signature string `positional-arg-name:"signature"`
	} `positional-args:"yes" required:"yes"`
}

func (c *splitCmd) Execute(args []string) error {
	msg, err := c.app.cfg.message(c.Args.Message)
	if err != nil {
		return err
	}
	sig, err := decodeSignature(c.Args.Signature)
	if err != nil {
		return err
	}

	pairing, prime, exec := wots.Split(c.app.cfg.hasher, sig, msg)
	c.app.printf("pairing: %v\n", pairing)
	c.app.printf("prime: %x\n", prime.Bytes())
	c.app.printf("execute: %x\n", exec.Bytes())
	return nil
}

type verifySplitCmd struct {
	app *app

	Args struct {
		Address string `positional-arg-name:"address"`
		Message string `positional-arg-name:"message"`
		Pairing string `positional-arg-name:"pairing"`
		Prime   string `positional-arg-name:"prime"`
		Execute string `positional-arg-name:"execute"`
	} `positional-args:"yes" required:"yes"`
}

func (c *verifySplitCmd) Execute(args []string) error {
	addr, err := wots.DecodeAddress(c.Args.Address)
	if err != nil {
		return err
	}
	msg, err := c.app.cfg.message(c.Args.Message)
	if err != nil {
		return err
	}
	pairing, err := decodeHash(c.Args.Pairing)
	if err != nil {
		return err
	}
	b, err := hex.DecodeString(c.Args.Prime)
	if err != nil {
		return err
	}
	prime, err := wots.PrimeSignatureFromBytes(b)
	if err != nil {
		return err
	}
	b, err = hex.DecodeString(c.Args.Execute)
	if err != nil {
		return err
	}
	exec, err := wots.ExecuteSignatureFromBytes(b)
	if err != nil {
		return err
	}

	valid := wots.VerifySplit(c.app.cfg.hasher, msg, prime, exec, pairing,
		addr)
	c.app.printf("valid: %v\n", valid)
	if !valid {
		return errInvalidSignature
	}
	return nil
}

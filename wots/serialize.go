package wots

import (
	"fmt"
	"io"
)

// flatten lays chain values out back to back in chain order.
func flatten(chains []Hash) []byte {
	b := make([]byte, 0, len(chains)*HashSize)
	for i := range chains {
		b = append(b, chains[i][:]...)
	}
	return b
}

// unflatten fills chains from b, which must be exactly
// len(chains)*HashSize bytes long.
func unflatten(chains []Hash, b []byte) error {
	if len(b) != len(chains)*HashSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength,
			len(b), len(chains)*HashSize)
	}
	for i := range chains {
		copy(chains[i][:], b[i*HashSize:(i+1)*HashSize])
	}
	return nil
}

func readChains(r io.Reader, chains []Hash) error {
	for i := range chains {
		if _, err := io.ReadFull(r, chains[i][:]); err != nil {
			return err
		}
	}
	return nil
}

func writeChains(w io.Writer, chains []Hash) error {
	_, err := w.Write(flatten(chains))
	return err
}

// Bytes returns the 1024 byte encoding of the key.
func (k *PrivateKey) Bytes() []byte { return flatten(k[:]) }

// PrivateKeyFromBytes decodes a key encoded by Bytes.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	k := &PrivateKey{}
	if err := unflatten(k[:], b); err != nil {
		return nil, err
	}
	return k, nil
}

// Serialize writes the key to w.
func (k *PrivateKey) Serialize(w io.Writer) error { return writeChains(w, k[:]) }

// Deserialize reads a key written by Serialize.
func (k *PrivateKey) Deserialize(r io.Reader) error { return readChains(r, k[:]) }

// Bytes returns the 1024 byte encoding of the public key.
func (pk *PublicKey) Bytes() []byte { return flatten(pk[:]) }

// PublicKeyFromBytes decodes a public key encoded by Bytes.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	pk := &PublicKey{}
	if err := unflatten(pk[:], b); err != nil {
		return nil, err
	}
	return pk, nil
}

// Serialize writes the public key to w.
func (pk *PublicKey) Serialize(w io.Writer) error { return writeChains(w, pk[:]) }

// Deserialize reads a public key written by Serialize.
func (pk *PublicKey) Deserialize(r io.Reader) error { return readChains(r, pk[:]) }

// Bytes returns the 1024 byte encoding of the signature.
func (s *Signature) Bytes() []byte { return flatten(s[:]) }

// SignatureFromBytes decodes a signature encoded by Bytes.
func SignatureFromBytes(b []byte) (*Signature, error) {
	s := &Signature{}
	if err := unflatten(s[:], b); err != nil {
		return nil, err
	}
	return s, nil
}

// Serialize writes the signature to w.
func (s *Signature) Serialize(w io.Writer) error { return writeChains(w, s[:]) }

// Deserialize reads a signature written by Serialize.
func (s *Signature) Deserialize(r io.Reader) error { return readChains(r, s[:]) }

// Bytes returns the 896 byte encoding of the prime chains.
func (p *PrimeSignature) Bytes() []byte { return flatten(p[:]) }

// PrimeSignatureFromBytes decodes prime chains encoded by Bytes.
func PrimeSignatureFromBytes(b []byte) (*PrimeSignature, error) {
	p := &PrimeSignature{}
	if err := unflatten(p[:], b); err != nil {
		return nil, err
	}
	return p, nil
}

// Serialize writes the prime chains to w.
func (p *PrimeSignature) Serialize(w io.Writer) error { return writeChains(w, p[:]) }

// Deserialize reads prime chains written by Serialize.
func (p *PrimeSignature) Deserialize(r io.Reader) error { return readChains(r, p[:]) }

// Bytes returns the 128 byte encoding of the execute chains.
func (e *ExecuteSignature) Bytes() []byte { return flatten(e[:]) }

// ExecuteSignatureFromBytes decodes execute chains encoded by Bytes.
func ExecuteSignatureFromBytes(b []byte) (*ExecuteSignature, error) {
	e := &ExecuteSignature{}
	if err := unflatten(e[:], b); err != nil {
		return nil, err
	}
	return e, nil
}

// Serialize writes the execute chains to w.
func (e *ExecuteSignature) Serialize(w io.Writer) error { return writeChains(w, e[:]) }

// Deserialize reads execute chains written by Serialize.
func (e *ExecuteSignature) Deserialize(r io.Reader) error { return readChains(r, e[:]) }

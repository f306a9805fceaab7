// Package keystore persists one-time keys in a leveldb database, indexed by
// the address each key hashes to under the hasher it was stored with.
package keystore

import (
	"errors"
	"fmt"

	"github.com/ltcsuite/winternitz/wots"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var (
	// ErrKeyNotFound is returned when no key is stored for an address.
	ErrKeyNotFound = errors.New("key not found")

	// ErrCorruptEntry is returned when a stored entry cannot be decoded.
	ErrCorruptEntry = errors.New("corrupt keystore entry")
)

var keyPrefix = []byte("k")

// Entry is a stored key together with the hasher it belongs to.
type Entry struct {
	Key    *wots.PrivateKey
	Hasher wots.Hasher
}

// Store is a leveldb backed key store.  It is safe for concurrent use.
type Store struct {
	db *leveldb.DB
}

// Open opens or creates the store at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open keystore %s: %w", path, err)
	}
	log.Debugf("Opened keystore at %s", path)
	return &Store{db: db}, nil
}

// OpenMemory opens a store that lives only in memory.
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func dbKey(addr *wots.Address) []byte {
	return append(append([]byte{}, keyPrefix...), addr[:]...)
}

// encodeEntry lays an entry out as the hasher name length, the name and the
// 1024 byte key.
func encodeEntry(h wots.Hasher, k *wots.PrivateKey) []byte {
	name := h.String()
	b := make([]byte, 0, 1+len(name)+wots.NumChains*wots.HashSize)
	b = append(b, byte(len(name)))
	b = append(b, name...)
	return append(b, k.Bytes()...)
}

func decodeEntry(b []byte) (*Entry, error) {
	if len(b) < 1 || len(b) < 1+int(b[0]) {
		return nil, ErrCorruptEntry
	}
	n := int(b[0])
	h, err := wots.HasherByName(string(b[1 : 1+n]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptEntry, err)
	}
	k, err := wots.PrivateKeyFromBytes(b[1+n:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptEntry, err)
	}
	return &Entry{Key: k, Hasher: h}, nil
}

// Put stores k under the address it has with h and returns that address.
func (s *Store) Put(h wots.Hasher, k *wots.PrivateKey) (wots.Address, error) {
	addr := k.PubKey(h).Address(h)
	err := s.db.Put(dbKey(&addr), encodeEntry(h, k), &opt.WriteOptions{
		Sync: true,
	})
	if err != nil {
		return addr, err
	}
	log.Debugf("Stored %v key %v", h, addr)
	return addr, nil
}

// Get returns the entry stored for addr.
func (s *Store) Get(addr *wots.Address) (*Entry, error) {
	b, err := s.db.Get(dbKey(addr), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, addr)
	}
	if err != nil {
		return nil, err
	}
	return decodeEntry(b)
}

// Has reports whether a key is stored for addr.
func (s *Store) Has(addr *wots.Address) (bool, error) {
	return s.db.Has(dbKey(addr), nil)
}

// Delete removes the key stored for addr.  Deleting a missing key is not an
// error.
func (s *Store) Delete(addr *wots.Address) error {
	err := s.db.Delete(dbKey(addr), &opt.WriteOptions{Sync: true})
	if err != nil {
		return err
	}
	log.Debugf("Deleted key %v", addr)
	return nil
}

// Addresses returns the addresses of all stored keys in byte order.
func (s *Store) Addresses() ([]wots.Address, error) {
	var addrs []wots.Address
	iter := s.db.NewIterator(util.BytesPrefix(keyPrefix), nil)
	for iter.Next() {
		var addr wots.Address
		copy(addr[:], iter.Key()[len(keyPrefix):])
		addrs = append(addrs, addr)
	}
	iter.Release()
	return addrs, iter.Error()
}

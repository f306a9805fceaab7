// Package sigcache remembers signatures that were already verified against
// an address so repeated checks of the same signature skip chain recovery.
package sigcache

import (
	"sync"

	"github.com/decred/dcrd/lru"
	"github.com/ltcsuite/winternitz/wots"
)

// SigCache is a bounded set of (address, message digest, signature)
// triples that verified under its hasher.  Entries are evicted least
// recently used first.  It is safe for concurrent use.
type SigCache struct {
	h wots.Hasher

	// mtx guards n, which mirrors the number of entries in valid.  The
	// cache only evicts when full, so n never exceeds limit.
	mtx   sync.Mutex
	n     uint32
	limit uint32
	valid lru.Cache
}

// New returns a cache holding at most limit entries.
func New(h wots.Hasher, limit uint32) *SigCache {
	return &SigCache{
		h:     h,
		limit: limit,
		valid: lru.NewCache(uint(limit)),
	}
}

// entry commits to a triple.  Only the commitment is kept in memory.
func (c *SigCache) entry(addr *wots.Address, digest *wots.Hash,
	sig *wots.Signature) wots.Hash {

	return c.h.Hashv(addr[:], digest[:], sig.Bytes())
}

// Exists reports whether the triple was added before and not evicted.
func (c *SigCache) Exists(addr *wots.Address, digest *wots.Hash,
	sig *wots.Signature) bool {

	return c.valid.Contains(c.entry(addr, digest, sig))
}

// Add records a verified triple.
func (c *SigCache) Add(addr *wots.Address, digest *wots.Hash,
	sig *wots.Signature) {

	e := c.entry(addr, digest, sig)

	c.mtx.Lock()
	if !c.valid.Contains(e) && c.n < c.limit {
		c.n++
	}
	c.valid.Add(e)
	c.mtx.Unlock()
}

// Len returns the number of cached entries.
func (c *SigCache) Len() uint32 {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.n
}

// VerifyAddress is wots.Signature.VerifyAddress with the cache consulted
// first.  Successful verifications are added to the cache; failures are
// never cached.
func (c *SigCache) VerifyAddress(msg []byte, sig *wots.Signature,
	addr *wots.Address) bool {

	digest := c.h.Hash(msg)
	if c.Exists(addr, &digest, sig) {
		log.Tracef("Signature for %v found in cache", addr)
		return true
	}

	pk := sig.RecoverPubKeyPrehashed(c.h, &digest)
	if pk.Address(c.h) != *addr {
		return false
	}

	c.Add(addr, &digest, sig)
	return true
}

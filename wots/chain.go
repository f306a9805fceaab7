package wots

import "sync"

const (
	// NumChains is the number of hash chains in a key or signature.  Digest
	// byte i selects the position revealed on chain i.
	NumChains = HashSize

	// ChainLength is the number of hash applications from a seed to its
	// chain tip.
	ChainLength = 256
)

// chain applies h to v n times.
func chain(h Hasher, v Hash, n int) Hash {
	for i := 0; i < n; i++ {
		v = h.Hash(v[:])
	}
	return v
}

// forEachChain calls f for every chain index in [0, n) on its own goroutine
// and returns once all of them are done.  f must only write the slot of the
// index it is given.
func forEachChain(n int, f func(i int)) {
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			f(i)
		}(i)
	}
	wg.Wait()
}

/*
Package wots implements Winternitz one-time signatures over a pluggable hash
function.

A private key is 32 random seeds.  Each seed starts a hash chain of length
256 whose tip is the matching public key value.  To sign, the message is
hashed once and byte i of the digest selects how far along chain i the
signature reveals: chain i is hashed 256-d[i] times from its seed.  A
verifier hashes each signature value d[i] more times and must land on the
public chain tips.

The 32 tips are merklized pairwise into a root and the root is hashed once
more into a 32 byte Address, which is what a key pair is known by.

# Split verification

A signature can be checked against an address in two stages that never hold
all 32 chains at once.  Split packages a signature into a PrimeSignature
(chains 0-27), an ExecuteSignature (chains 28-31) and the pairing hash that
commits to the four execute tips.  The execute stage recomputes the pairing
hash; once it matches a trusted value, the prime stage rebuilds the address
with the pairing hash standing in for the execute subtree.

# Security

Keys are single use.  The scheme carries no checksum chains, so anyone
holding a signature can hash its chains forward and produce a valid
signature for any message whose digest bytes are all less than or equal to
the signed ones.  The encoding is kept as is for compatibility with existing
deployments.
*/
package wots

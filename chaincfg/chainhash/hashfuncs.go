// Copyright (c) 2015-2026 The Decred developers
// Copyright (c) 2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"crypto/sha256"
	"hash"
)

// HashB calculates hash(b) and returns the resulting bytes.  The hash function
// is a double round of SHA-256.
func HashB(b []byte) []byte {
	hash := HashH(b)
	return hash[:]
}

// HashH calculates hash(b) and returns the resulting bytes as a Hash.  The hash
// function is a double round of SHA-256.
func HashH(b []byte) Hash {
	first := sha256.Sum256(b)
	return Hash(sha256.Sum256(first[:]))
}

// DoubleHashH is an alias for HashH that makes the double round explicit at
// call sites that care about it.
func DoubleHashH(b []byte) Hash {
	return HashH(b)
}

// HashBlockSize is the block size of the underlying hash algorithm in bytes.
const HashBlockSize = sha256.BlockSize

// Hasher incrementally computes the double SHA-256 of everything written to it.
// It allows entities to be serialized directly into the hash without an
// intermediate buffer.
type Hasher struct {
	h hash.Hash
}

// NewHasher returns a new Hasher ready to accept writes.
func NewHasher() *Hasher {
	return &Hasher{h: sha256.New()}
}

// Write adds more data to the running hash.  It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.h.Write(p)
}

// Sum returns the double SHA-256 of all data written so far.  It does not
// change the underlying state.
func (h *Hasher) Sum() Hash {
	var first [HashSize]byte
	h.h.Sum(first[:0])
	return Hash(sha256.Sum256(first[:]))
}

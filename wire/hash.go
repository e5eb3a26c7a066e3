// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/decred/powcore/chaincfg/chainhash"
)

// Serializer describes a value that has a canonical encoding.
type Serializer interface {
	Serialize(w io.Writer) error
}

// Hasher describes a value that has an identity hash.
type Hasher interface {
	Hash() chainhash.Hash
}

// HashSerializable returns the identity hash of the canonical encoding of the
// passed value.  The value is serialized directly into the hash function.
func HashSerializable(s Serializer) chainhash.Hash {
	h := chainhash.NewHasher()

	// Writes to the hasher can't fail.
	_ = s.Serialize(h)
	return h.Sum()
}

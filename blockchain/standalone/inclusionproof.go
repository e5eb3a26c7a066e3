// Copyright (c) 2019-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"math/bits"

	"github.com/decred/powcore/chaincfg/chainhash"
)

// GenerateInclusionProof treats the provided slice of hashes as leaves of a
// merkle tree and generates and returns a merkle tree inclusion proof for the
// given leaf index.  The proof can be used to efficiently prove the leaf
// associated with given leaf index is a member of the tree.
//
// A merkle tree inclusion proof consists of the ceil(log2(x)) intermediate
// sibling hashes along the path from the target leaf to prove through the root
// node.  The sibling hashes, along with the original leaf hash (and its
// original leaf index), can be used to recalculate the merkle root which, in
// turn, can be verified against a known good merkle root in order to prove the
// leaf is actually a member of the tree at that position.
//
// For example, consider the following merkle tree:
//
//	       root = h1234 = h(h12 + h34)
//	      /                           \
//	h12 = h(h1 + h2)            h34 = h(h3 + h4)
//	 /            \              /            \
//	h1            h2            h3            h4
//
// Further, consider the goal is to prove inclusion of h3 at the 0-based leaf
// index of 2.  The proof will consist of the sibling hashes h4 and h12.  On the
// other hand, if the goal were to prove inclusion of h2 at the 0-based leaf
// index of 1, the proof would consist of the sibling hashes h1 and h34.
//
// Specifying a leaf index that is out of range will return nil as will a
// tree with a single leaf since the root is the leaf itself.
func GenerateInclusionProof(leaves []chainhash.Hash, leafIndex uint32) []chainhash.Hash {
	// Return an empty proof when the leaf index is out of range or the tree
	// only consists of a single leaf.
	numLeaves := uint32(len(leaves))
	if leafIndex >= numLeaves || numLeaves <= 1 {
		return nil
	}

	// Copy the leaves so they can be safely mutated by the in-place merkle root
	// calculation.  Note that the backing array is provided with space for one
	// additional item when the number of leaves is odd as an optimization for
	// the in-place calculation to avoid the need grow the backing array.
	allocLen := numLeaves + numLeaves&1
	dupLeaves := make([]chainhash.Hash, numLeaves, allocLen)
	copy(dupLeaves, leaves)
	leaves = dupLeaves

	// Create a buffer to reuse for hashing the branches and some long lived
	// slices into it to avoid reslicing.
	var buf [2 * chainhash.HashSize]byte
	var left = buf[:chainhash.HashSize]
	var right = buf[chainhash.HashSize:]
	var both = buf[:]

	// The following algorithm works by replacing the leftmost entries in the
	// slice with the concatenations of each subsequent set of 2 hashes and
	// shrinking the slice by half to account for the fact that each level of
	// the tree is half the size of the previous one.  In the case a level is
	// unbalanced (there is no final right child), the final node is duplicated
	// so it ultimately is concatenated with itself.
	//
	// Along the way, the sibling of the node on the path from the target leaf
	// to the root is stored at each level.
	proofSize := bits.Len32(numLeaves - 1)
	proof := make([]chainhash.Hash, 0, proofSize)
	for len(leaves) > 1 {
		// When there is no right child, the parent is generated by hashing the
		// concatenation of the left child with itself.
		if len(leaves)&1 != 0 {
			leaves = append(leaves, leaves[len(leaves)-1])
		}

		// Add the sibling hash to the proof.
		proof = append(proof, leaves[leafIndex^1])

		// Set the parent node to the hash of the concatenation of the left and
		// right children.
		for i := 0; i < len(leaves)/2; i++ {
			copy(left, leaves[i*2][:])
			copy(right, leaves[i*2+1][:])
			leaves[i] = chainhash.DoubleHashH(both)
		}
		leaves = leaves[:len(leaves)/2]

		// Move up to the parent of the current node.
		leafIndex >>= 1
	}

	return proof
}

// VerifyInclusionProof returns whether or not the given leaf hash, original
// leaf index, and inclusion proof result in recalculating a merkle root that
// matches the provided merkle root.  See GenerateInclusionProof for details
// about the proof.
func VerifyInclusionProof(root, leaf *chainhash.Hash, leafIndex uint32, proof []chainhash.Hash) bool {
	// The leaf index must be in range for the tree the proof describes.
	numHashes := uint32(len(proof))
	if numHashes > 32 || (numHashes < 32 && leafIndex>>numHashes != 0) {
		return false
	}

	// Create a buffer to reuse for hashing the branches and some long lived
	// slices into it to avoid reslicing.
	var buf [2 * chainhash.HashSize]byte
	var left = buf[:chainhash.HashSize]
	var right = buf[chainhash.HashSize:]
	var both = buf[:]

	// Calculate the parent of each level by concatenating the current node
	// with the sibling in the proof in the order given by the position of the
	// current node at that level.
	hash := *leaf
	for i := range proof {
		if leafIndex&1 == 1 {
			copy(left, proof[i][:])
			copy(right, hash[:])
		} else {
			copy(left, hash[:])
			copy(right, proof[i][:])
		}
		hash = chainhash.DoubleHashH(both)
		leafIndex >>= 1
	}

	return hash == *root
}

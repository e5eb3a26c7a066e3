// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"fmt"

	"github.com/decred/powcore/math/uint256"
	"github.com/decred/powcore/wire"
)

// CheckMerkleRoot ensures the merkle root calculated from the transactions of
// the provided block matches the merkle root committed to by its header.
func CheckMerkleRoot(block *wire.MsgBlock) error {
	header := &block.Header
	calculated := CalcTxTreeMerkleRoot(block.Transactions)
	if header.MerkleRoot != calculated {
		str := fmt.Sprintf("block merkle root is invalid - block header "+
			"indicates %v, but calculated value is %v", header.MerkleRoot,
			calculated)
		log.Debug(str)
		return ruleError(ErrBadMerkleRoot, str)
	}
	return nil
}

// CheckBlock performs the context-free validity checks of the provided block.
// The block is only valid when all of the following hold:
//
//   - the header proof of work is valid for the required target per
//     CheckProofOfWork
//   - the header merkle root commits to the transactions per CheckMerkleRoot
//   - the coinbase commitment is valid per CheckWitnessCommitment with the
//     provided layout
//
// The commitment check is skipped when the layout is nil.
func CheckBlock(block *wire.MsgBlock, requiredTarget *uint256.Uint256, layout CommitmentLayout) error {
	if err := CheckProofOfWork(&block.Header, requiredTarget); err != nil {
		return err
	}
	if err := CheckMerkleRoot(block); err != nil {
		return err
	}
	if layout != nil {
		if err := CheckWitnessCommitment(block, layout); err != nil {
			return err
		}
	}
	return nil
}

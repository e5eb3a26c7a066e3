// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"bytes"
	"fmt"

	"github.com/decred/powcore/chaincfg/chainhash"
	"github.com/decred/powcore/wire"
)

// CommitmentLayout describes where a block commitment is embedded in the
// coinbase transaction and how the expected commitment is derived from the
// transactions of the block.
type CommitmentLayout interface {
	// ExtractCommitment returns the commitment embedded in the provided
	// coinbase transaction.  It returns a RuleError with the kind
	// ErrBadWitnessCommitment when the coinbase does not carry exactly one
	// well-formed commitment.
	ExtractCommitment(coinbase *wire.MsgTx) (chainhash.Hash, error)

	// CalcCommitment returns the commitment the provided transactions
	// require.  The first transaction is the coinbase.
	CalcCommitment(transactions []*wire.MsgTx) chainhash.Hash
}

// ScriptPrefixCommitment is a CommitmentLayout where the commitment is the
// final 32 bytes of a coinbase output script that consists of Prefix followed
// by the commitment.  Exactly one coinbase output must have that form.
//
// The commitment is the hash of the merkle root calculated by
// CalcWitnessMerkleRoot.
type ScriptPrefixCommitment struct {
	Prefix []byte
}

// Ensure ScriptPrefixCommitment implements the CommitmentLayout interface.
var _ CommitmentLayout = ScriptPrefixCommitment{}

// ExtractCommitment returns the commitment embedded in the coinbase output
// script that starts with the layout prefix.
//
// This is part of the CommitmentLayout interface implementation.
func (l ScriptPrefixCommitment) ExtractCommitment(coinbase *wire.MsgTx) (chainhash.Hash, error) {
	var commitment chainhash.Hash
	var found int
	scriptLen := len(l.Prefix) + chainhash.HashSize
	for _, txOut := range coinbase.TxOut {
		script := txOut.PkScript
		if len(script) != scriptLen || !bytes.HasPrefix(script, l.Prefix) {
			continue
		}
		found++
		copy(commitment[:], script[len(l.Prefix):])
	}
	if found != 1 {
		str := fmt.Sprintf("coinbase transaction %v has %d commitment "+
			"outputs with prefix %x instead of exactly one", coinbase.TxHash(),
			found, l.Prefix)
		return chainhash.Hash{}, ruleError(ErrBadWitnessCommitment, str)
	}
	return commitment, nil
}

// CalcCommitment returns the hash of the witness merkle root of the provided
// transactions.
//
// This is part of the CommitmentLayout interface implementation.
func (l ScriptPrefixCommitment) CalcCommitment(transactions []*wire.MsgTx) chainhash.Hash {
	root := CalcWitnessMerkleRoot(transactions)
	return chainhash.DoubleHashH(root[:])
}

// CalcWitnessMerkleRoot returns the merkle root of the normalized hashes of the
// provided transactions with the leaf of the first transaction, which is the
// coinbase that carries the commitment, replaced by the zero hash.
func CalcWitnessMerkleRoot(transactions []*wire.MsgTx) chainhash.Hash {
	if len(transactions) == 0 {
		return chainhash.Hash{}
	}

	allocLen := len(transactions) + len(transactions)&1
	leaves := make([]chainhash.Hash, 1, allocLen)
	for _, tx := range transactions[1:] {
		leaves = append(leaves, tx.NormalizedTxHash())
	}
	return CalcMerkleRootInPlace(leaves)
}

// CheckWitnessCommitment ensures the first transaction of the provided block is
// a coinbase and that the commitment it carries per the provided layout matches
// the commitment calculated from the transactions of the block.
func CheckWitnessCommitment(block *wire.MsgBlock, layout CommitmentLayout) error {
	if len(block.Transactions) == 0 || !IsCoinBaseTx(block.Transactions[0]) {
		str := "first transaction in block is not a coinbase"
		log.Debug(str)
		return ruleError(ErrNoCoinbase, str)
	}

	commitment, err := layout.ExtractCommitment(block.Transactions[0])
	if err != nil {
		log.Debug(err)
		return err
	}
	want := layout.CalcCommitment(block.Transactions)
	if commitment != want {
		str := fmt.Sprintf("block commitment is invalid - block indicates "+
			"%v, but calculated value is %v", commitment, want)
		log.Debug(str)
		return ruleError(ErrBadWitnessCommitment, str)
	}
	return nil
}

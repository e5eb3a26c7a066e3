// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/decred/powcore/wire"
)

// genesisCoinbaseTx returns the coinbase transaction shared by the genesis
// blocks of every standard network.
func genesisCoinbaseTx() *wire.MsgTx {
	return &wire.MsgTx{
		Version: 1,
		TxIn: []*wire.TxIn{{
			// Fully null.
			PreviousOutPoint: wire.NullOutPoint(),
			Sequence:         0xffffffff,
			SignatureScript: hexDecode("04ffff001d01040f706f77636f72652067" +
				"656e65736973"),
		}},
		TxOut: []*wire.TxOut{{
			Value:    0x00000000,
			PkScript: hexDecode("51"),
		}},
		LockTime: 0,
	}
}

// newGenesisBlock returns a genesis block with the provided timestamp and
// difficulty bits.  The merkle root is calculated from the coinbase.
//
// Genesis blocks are valid by definition and are not evaluated for proof of
// work.  The only values that are ever used elsewhere are the hash, which is
// the PrevBlock of the first block, and the bits, which seed the difficulty.
func newGenesisBlock(timestamp, bits uint32) *wire.MsgBlock {
	coinbase := genesisCoinbaseTx()
	return &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version: 1,
			// PrevBlock: All zero.
			// A block with a single transaction commits to the hash of that
			// transaction.
			MerkleRoot: coinbase.TxHash(),
			Timestamp:  timestamp,
			Height:     0,
			Bits:       bits,
			Nonce:      0,
		},
		Transactions: []*wire.MsgTx{coinbase},
	}
}

// witnessCommitmentPrefix returns the coinbase output script prefix that marks
// the witness commitment on every standard network.  It is an OP_RETURN
// followed by a 36 byte push of the 4 byte magic 0xaa21a9ed and the
// commitment.
func witnessCommitmentPrefix() []byte {
	return []byte{0x6a, 0x24, 0xaa, 0x21, 0xa9, 0xed}
}

// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"errors"
	"testing"

	"github.com/decred/powcore/chaincfg"
	"github.com/decred/powcore/chaincfg/chainhash"
	"github.com/decred/powcore/wire"
)

// testBlock returns a regression test network block at height 1 that consists
// of a coinbase with a witness commitment output and a single spending
// transaction.  The block satisfies its own target with the provided nonce
// of 1 and fails it with a nonce of 0.
func testBlock(nonce uint32) *wire.MsgBlock {
	nullOut := wire.NullOutPoint()
	coinbase := wire.NewMsgTx()
	coinbase.AddTxIn(wire.NewTxIn(&nullOut, 0, []byte{0x01, 0x01}))
	coinbase.AddTxOut(wire.NewTxOut(5000000000, []byte{0x51}))
	coinbase.AddTxOut(wire.NewTxOut(0, hexToBytes("6a24aa21a9ed548f0d53665d3e"+
		"d7c4372a0d2baa6821f7baf45a8fc22f501e35c2d84920e66b")))

	prevHash := hexToHash("1a0d97fef6a769a251f180999495c9ec08c805ca84d362683f8eb11580a21be2")
	spend := wire.NewMsgTx()
	spend.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&prevHash, 0), 5000000000,
		[]byte{0x51}))
	spend.AddTxOut(wire.NewTxOut(4999990000, []byte{0x51}))

	prevBlock := hexToHash("16d9cc2134988f0aca4275619aa28bc926e1dedc7ab381eb1c57256e44fc7f51")
	merkleRoot := hexToHash("328bf7eacbd112f5557fb54f9558ca44b1467ee5a21b081e201ded7d66afed64")
	header := wire.NewBlockHeader(1, &prevBlock, &merkleRoot, 1704067300, 1,
		0x207fffff, nonce)
	block := wire.NewMsgBlock(header)
	block.AddTransaction(coinbase)
	block.AddTransaction(spend)
	return block
}

// TestTestBlock ensures the test block hashes to the expected values so the
// remaining tests exercise what they claim to.
func TestTestBlock(t *testing.T) {
	t.Parallel()

	block := testBlock(1)
	wantCoinbase := hexToHash("99b49b4aec48342f2d6261fa5cacbe9ea0df3f09450538f8dc2441dc90a9a814")
	if got := block.Transactions[0].TxHash(); got != wantCoinbase {
		t.Fatalf("unexpected coinbase hash -- got %v, want %v", got,
			wantCoinbase)
	}
	wantSpend := hexToHash("0d0c2a68b0ddd3a58eddc6b42079cfbe0d9aadde6b5cc1c2a28bc5e3f73db992")
	if got := block.Transactions[1].TxHash(); got != wantSpend {
		t.Fatalf("unexpected spend hash -- got %v, want %v", got, wantSpend)
	}
	wantBlock := hexToHash("108ea5f42f47b59e690b5d1e51cffbd25b51a1da43526c25c96bfeddc74279f8")
	if got := block.BlockHash(); got != wantBlock {
		t.Fatalf("unexpected block hash -- got %v, want %v", got, wantBlock)
	}
	wantWitnessRoot := hexToHash("dec08c3342c37bf00483e7fb90dcab977553fb0e8db4b13b3ec1a54fd046d830")
	if got := CalcWitnessMerkleRoot(block.Transactions); got != wantWitnessRoot {
		t.Fatalf("unexpected witness merkle root -- got %v, want %v", got,
			wantWitnessRoot)
	}
}

// TestCheckMerkleRoot ensures the merkle root committed to by a block header
// is validated against the transactions of the block.
func TestCheckMerkleRoot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string         // test description
		block *wire.MsgBlock // block to test
		err   error          // expected error
	}{{
		name:  "valid merkle root",
		block: testBlock(1),
		err:   nil,
	}, {
		name: "modified signature script",
		block: func() *wire.MsgBlock {
			block := testBlock(1)
			block.Transactions[1].TxIn[0].SignatureScript = []byte{0x52}
			return block
		}(),
		err: ErrBadMerkleRoot,
	}, {
		name: "swapped transactions",
		block: func() *wire.MsgBlock {
			block := testBlock(1)
			txns := block.Transactions
			txns[0], txns[1] = txns[1], txns[0]
			return block
		}(),
		err: ErrBadMerkleRoot,
	}, {
		name: "missing transaction",
		block: func() *wire.MsgBlock {
			block := testBlock(1)
			block.Transactions = block.Transactions[:1]
			return block
		}(),
		err: ErrBadMerkleRoot,
	}, {
		name: "duplicated final transaction",
		block: func() *wire.MsgBlock {
			block := testBlock(1)
			block.AddTransaction(block.Transactions[1])
			return block
		}(),
		err: ErrBadMerkleRoot,
	}, {
		name:  "mainnet genesis block",
		block: chaincfg.MainNetParams().GenesisBlock,
		err:   nil,
	}, {
		name:  "testnet genesis block",
		block: chaincfg.TestNetParams().GenesisBlock,
		err:   nil,
	}}

	for _, test := range tests {
		err := CheckMerkleRoot(test.block)
		if !errors.Is(err, test.err) {
			t.Errorf("%q: unexpected err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
	}
}

// TestCheckWitnessCommitment ensures the commitment in the coinbase is located
// and validated against the transactions of the block.
func TestCheckWitnessCommitment(t *testing.T) {
	t.Parallel()

	layout := ScriptPrefixCommitment{
		Prefix: chaincfg.RegNetParams().WitnessCommitmentPrefix,
	}
	tests := []struct {
		name   string           // test description
		block  *wire.MsgBlock   // block to test
		layout CommitmentLayout // commitment layout to use
		err    error            // expected error
	}{{
		name:   "valid commitment",
		block:  testBlock(1),
		layout: layout,
		err:    nil,
	}, {
		name: "modified signature script does not affect commitment",
		block: func() *wire.MsgBlock {
			block := testBlock(1)
			block.Transactions[1].TxIn[0].SignatureScript = []byte{0x52, 0x53}
			return block
		}(),
		layout: layout,
		err:    nil,
	}, {
		name: "modified coinbase signature script does not affect commitment",
		block: func() *wire.MsgBlock {
			block := testBlock(1)
			block.Transactions[0].TxIn[0].SignatureScript = []byte{0x02, 0x01}
			return block
		}(),
		layout: layout,
		err:    nil,
	}, {
		name: "modified output value",
		block: func() *wire.MsgBlock {
			block := testBlock(1)
			block.Transactions[1].TxOut[0].Value--
			return block
		}(),
		layout: layout,
		err:    ErrBadWitnessCommitment,
	}, {
		name: "modified commitment",
		block: func() *wire.MsgBlock {
			block := testBlock(1)
			script := block.Transactions[0].TxOut[1].PkScript
			script[len(script)-1] ^= 0x01
			return block
		}(),
		layout: layout,
		err:    ErrBadWitnessCommitment,
	}, {
		name: "duplicate commitment outputs",
		block: func() *wire.MsgBlock {
			block := testBlock(1)
			coinbase := block.Transactions[0]
			coinbase.AddTxOut(coinbase.TxOut[1])
			return block
		}(),
		layout: layout,
		err:    ErrBadWitnessCommitment,
	}, {
		name: "missing commitment output",
		block: func() *wire.MsgBlock {
			block := testBlock(1)
			coinbase := block.Transactions[0]
			coinbase.TxOut = coinbase.TxOut[:1]
			return block
		}(),
		layout: layout,
		err:    ErrBadWitnessCommitment,
	}, {
		name: "truncated commitment output",
		block: func() *wire.MsgBlock {
			block := testBlock(1)
			txOut := block.Transactions[0].TxOut[1]
			txOut.PkScript = txOut.PkScript[:len(txOut.PkScript)-1]
			return block
		}(),
		layout: layout,
		err:    ErrBadWitnessCommitment,
	}, {
		name:   "commitment with other prefix",
		block:  testBlock(1),
		layout: ScriptPrefixCommitment{Prefix: []byte{0x6a, 0x24, 0xaa, 0x21}},
		err:    ErrBadWitnessCommitment,
	}, {
		name: "first transaction is not a coinbase",
		block: func() *wire.MsgBlock {
			block := testBlock(1)
			txns := block.Transactions
			txns[0], txns[1] = txns[1], txns[0]
			return block
		}(),
		layout: layout,
		err:    ErrNoCoinbase,
	}, {
		name: "no transactions",
		block: func() *wire.MsgBlock {
			block := testBlock(1)
			block.ClearTransactions()
			return block
		}(),
		layout: layout,
		err:    ErrNoCoinbase,
	}}

	for _, test := range tests {
		err := CheckWitnessCommitment(test.block, test.layout)
		if !errors.Is(err, test.err) {
			t.Errorf("%q: unexpected err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
	}
}

// TestCalcWitnessMerkleRoot ensures the witness merkle root ignores the
// coinbase entirely.
func TestCalcWitnessMerkleRoot(t *testing.T) {
	t.Parallel()

	if got := CalcWitnessMerkleRoot(nil); got != (chainhash.Hash{}) {
		t.Fatalf("unexpected root for no transactions -- got %v", got)
	}

	block := testBlock(1)
	coinbaseOnly := block.Transactions[:1]
	if got := CalcWitnessMerkleRoot(coinbaseOnly); got != (chainhash.Hash{}) {
		t.Fatalf("unexpected root for coinbase only -- got %v", got)
	}

	want := CalcWitnessMerkleRoot(block.Transactions)
	block.Transactions[0].TxOut[0].Value++
	if got := CalcWitnessMerkleRoot(block.Transactions); got != want {
		t.Fatalf("coinbase modification changed witness root -- got %v, "+
			"want %v", got, want)
	}
}

// TestCheckBlock ensures the overall block check requires the proof of work,
// merkle root, and witness commitment to all be valid.
func TestCheckBlock(t *testing.T) {
	t.Parallel()

	params := chaincfg.RegNetParams()
	target := CompactToTarget(params.PowLimitBits)
	mainNetTarget := CompactToTarget(chaincfg.MainNetParams().PowLimitBits)
	layout := ScriptPrefixCommitment{Prefix: params.WitnessCommitmentPrefix}
	tests := []struct {
		name   string           // test description
		block  *wire.MsgBlock   // block to test
		layout CommitmentLayout // commitment layout to use
		err    error            // expected error
	}{{
		name:   "valid block",
		block:  testBlock(1),
		layout: layout,
		err:    nil,
	}, {
		name:   "valid block without commitment layout",
		block:  testBlock(1),
		layout: nil,
		err:    nil,
	}, {
		name:   "high hash",
		block:  testBlock(0),
		layout: layout,
		err:    ErrHighHash,
	}, {
		name: "bad merkle root with valid proof of work and commitment",
		block: func() *wire.MsgBlock {
			block := testBlock(1)
			block.Transactions[1].TxIn[0].SignatureScript = []byte{0x52}
			return block
		}(),
		layout: layout,
		err:    ErrBadMerkleRoot,
	}, {
		name:   "bad commitment with valid proof of work and merkle root",
		block:  testBlock(1),
		layout: ScriptPrefixCommitment{Prefix: []byte{0x6a, 0x24, 0xaa, 0x21}},
		err:    ErrBadWitnessCommitment,
	}}

	for _, test := range tests {
		err := CheckBlock(test.block, &target, test.layout)
		if !errors.Is(err, test.err) {
			t.Errorf("%q: unexpected err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
	}

	// Ensure a mismatched target is reported regardless of the other checks.
	err := CheckBlock(testBlock(1), &mainNetTarget, layout)
	if !errors.Is(err, ErrTargetMismatch) {
		t.Fatalf("unexpected err -- got %v, want %v", err, ErrTargetMismatch)
	}
}

// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"
)

// RegNetParams returns the network parameters for the regression test network.
func RegNetParams() *Params {
	// powLimit is the highest proof of work value a block can have for the
	// network.  It is the value 2^255 - 1.
	powLimit := hexToUint256("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	// powLimitBits is the proof of work limit in its compact representation.
	//
	// It is the value:
	//
	// 0x7fffff0000000000000000000000000000000000000000000000000000000000
	const powLimitBits = 0x207fffff

	genesisBlock := newGenesisBlock(1704067202, powLimitBits)
	return &Params{
		Name:         "regnet",
		Net:          0xdab5bffa,
		GenesisBlock: genesisBlock,
		GenesisHash:  genesisBlock.BlockHash(),
		PowLimit:     powLimit,
		PowLimitBits: powLimitBits,

		TargetTimePerBlock:      time.Second,
		WitnessCommitmentPrefix: witnessCommitmentPrefix(),
	}
}

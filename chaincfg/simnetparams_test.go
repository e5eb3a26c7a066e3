// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// TestSimNetGenesisBlock tests the genesis block of the simulation test network
// for validity by checking the encoded bytes and hashes.
func TestSimNetGenesisBlock(t *testing.T) {
	genesisBlockBytes, _ := hex.DecodeString("0100000000000000000000000000000000000000000000000000000000000000" +
		"0000000008016cb25573187e7781c016da048d6db2689f5bb783153c2db2c87a" +
		"e03df484830092650000000000000000ffff7f20000000000101000000000000" +
		"0001000000000000000000000000000000000000000000000000000000000000" +
		"0000ffffffffffffffff1704ffff001d01040f706f77636f72652067656e6573" +
		"69730100000000000000000151")

	// Encode the genesis block to raw bytes.
	params := SimNetParams()
	var buf bytes.Buffer
	err := params.GenesisBlock.Serialize(&buf)
	if err != nil {
		t.Fatalf("TestSimNetGenesisBlock: %v", err)
	}

	// Ensure the encoded block matches the expected bytes.
	if !bytes.Equal(buf.Bytes(), genesisBlockBytes) {
		t.Fatalf("TestSimNetGenesisBlock: Genesis block does not appear valid - "+
			"got %v, want %v", spew.Sdump(buf.Bytes()),
			spew.Sdump(genesisBlockBytes))
	}

	// Check hash of the block against expected hash.
	hash := params.GenesisBlock.BlockHash()
	if !params.GenesisHash.IsEqual(&hash) {
		t.Fatalf("TestSimNetGenesisBlock: Genesis block hash does not "+
			"appear valid - got %v, want %v", spew.Sdump(hash),
			spew.Sdump(params.GenesisHash))
	}
	wantHash := newHashFromStr("8d637d1a13b9ebcd9743d91c3680a0566e0e43580949d18f900d720034d018a8")
	if !params.GenesisHash.IsEqual(wantHash) {
		t.Fatalf("TestSimNetGenesisBlock: unexpected genesis hash - got %v, want %v",
			params.GenesisHash, wantHash)
	}
}

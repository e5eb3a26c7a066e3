// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/decred/powcore/chaincfg/chainhash"
	"github.com/decred/powcore/math/uint256"
	"github.com/decred/powcore/wire"
)

// ErrUnknownNet describes an error where the network parameters for a network
// name could not be found.
var ErrUnknownNet = errors.New("unknown network")

// Params defines a network by its parameters.  These parameters are passed to
// the validation functions which never modify them.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net uint32

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *uint256.Uint256

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// WitnessCommitmentPrefix is the public key script prefix that marks
	// the coinbase output carrying the witness commitment.  The commitment
	// itself is the 32 bytes that follow it.
	WitnessCommitmentPrefix []byte
}

// ParamsByName returns the parameters for the standard network with the
// provided name.  The names are case insensitive and include the aliases used
// on the command line.
func ParamsByName(name string) (*Params, error) {
	switch strings.ToLower(name) {
	case "mainnet", "main":
		return MainNetParams(), nil
	case "testnet", "test":
		return TestNetParams(), nil
	case "regnet", "regtest":
		return RegNetParams(), nil
	case "simnet", "sim":
		return SimNetParams(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownNet, name)
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

// hexDecode decodes the passed hex string and returns the resulting bytes.  It
// panics if an error occurs. This is only provided for the hard-coded constants
// so errors in the source code can be detected. It will only (and must only) be
// called with hard-coded values.
func hexDecode(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}

// hexToUint256 converts the passed hex string into a uint256 and will panic if
// there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected. It will only (and must only) be
// called with hard-coded values.
func hexToUint256(hexStr string) *uint256.Uint256 {
	if len(hexStr)%2 != 0 {
		hexStr = "0" + hexStr
	}
	b := hexDecode(hexStr)
	if len(b) > 32 {
		panic("hex in source file overflows mod 2^256: " + hexStr)
	}
	return new(uint256.Uint256).SetByteSlice(b)
}

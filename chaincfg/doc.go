// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines chain configuration parameters.
//
// There are four standard networks: the main network, the test network, the
// regression test network, and the simulation test network.  These networks
// are incompatible with each other (each sharing a different genesis block and
// proof of work limit) and software should handle errors where input intended
// for one network is used on an application instance running on a different
// network.
//
// The parameters are consumed by the validation code, which never modifies
// them.  Each constructor returns a new instance.
//
//	package main
//
//	import (
//		"flag"
//		"fmt"
//
//		"github.com/decred/powcore/blockchain/standalone"
//		"github.com/decred/powcore/chaincfg"
//	)
//
//	func main() {
//		var testnet = flag.Bool("testnet", false, "operate on the test network")
//		flag.Parse()
//
//		// By default (without -testnet), use mainnet.
//		var chainParams = chaincfg.MainNetParams()
//
//		// Modify active network parameters if operating on testnet.
//		if *testnet {
//			chainParams = chaincfg.TestNetParams()
//		}
//
//		// later...
//
//		header := &chainParams.GenesisBlock.Header
//		fmt.Println(standalone.CalcDifficulty(header.Bits, chainParams))
//	}
//
// If an application does not use one of the standard networks, a new Params
// struct may be created which defines the parameters for the non-standard
// network.
package chaincfg

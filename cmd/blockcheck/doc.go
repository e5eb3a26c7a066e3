// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Blockcheck decodes a serialized block header or block, reports its hash and
difficulty details, and validates its proof of work.  Blocks are additionally
validated against their merkle root and witness commitment.

The input is provided as a single argument which is either the hex encoding of
the serialized data, the path to a file containing it prefixed with @, or - to
read it from stdin.

The exit status is 0 when the input is valid and 1 otherwise.

Usage:

	blockcheck [OPTIONS] <hex | @file | ->

Application Options:

	-n, --net=          Network the header or block belongs to (mainnet,
	                    testnet, regnet, simnet) (default: mainnet)
	-r, --requiredbits= Compact difficulty bits in hex the header must commit
	                    to (default: the bits of the header itself)
	-b, --block         Decode the input as a full block instead of a block
	                    header
	    --nocommitment  Do not require a witness commitment in the coinbase of
	                    a block
	    --dump          Dump the decoded header or block structure
	-d, --debuglevel=   Logging level for all subsystems {trace, debug, info,
	                    warn, error, critical} (default: info)
	    --logdir=       Directory to log output to in addition to stderr
	    --maxlogrolls=  Number of rolled log files to keep (default: 3)

Help Options:

	-h, --help          Show this help message
*/
package main

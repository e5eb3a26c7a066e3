// Copyright (c) 2019-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package standalone provides standalone functions useful for working with the
block header and merkle consensus rules.

The functions only depend on the wire, chainhash, uint256, and chaincfg
packages and do not require any chain state.  They are ideal for applications
such as lightweight clients that need to ensure basic security properties hold.

For example, some things an SPV wallet needs to prove are that the block headers
satisfy the proof of work requirements and that a given transaction tree is
valid for a given header.

# Function categories

The provided functions fall into the following categories:

  - Proof-of-work
  - Merkle root calculation
  - Coinbase transaction identification
  - Block commitment and merkle root validation
  - Merkle tree inclusion proofs

# Proof-of-work

  - Converting to and from the compact target difficulty representation
  - Calculating work values and difficulty based on the target difficulty
  - Checking a header target matches a required target and that the header
    hash satisfies it
  - Checking a target difficulty is within a valid range

# Merkle root calculation

  - Calculation from individual leaf hashes
  - Calculation from a slice of transactions using either the full or the
    normalized transaction hashes

# Block commitment and merkle root validation

  - Checking the header merkle root commits to the transactions of a block
  - Checking the commitment carried by the coinbase with a pluggable layout
  - Checking all of the above along with the proof of work via CheckBlock

# Merkle tree inclusion proofs

  - Generate an inclusion proof for a given tree and leaf index
  - Verify a leaf is a member of the tree at a given index via the proof

# Errors

Errors returned by this package are of type standalone.RuleError and wrap an
ErrorKind.  Callers can use errors.Is to check for a specific kind, such as
ErrTargetMismatch or ErrHighHash, or errors.As to access the RuleError.
*/
package standalone

// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the canonical encoding of transactions, block headers,
and blocks.

The encoding is the single source of every identity hash, so two values that
differ in any encoded field always encode differently and decoding an encoding
always yields the original value.

# Encoding Rules

Integers are encoded little endian at their fixed width.  Hashes are written as
their raw 32 bytes.  Sequences and byte strings are prefixed with a
variable length integer (see ReadVarInt and WriteVarInt) that must use the
shortest possible form.  The layouts are:

	OutPoint:    hash | index(u32)
	TxIn:        outpoint | sequence(u32) | varbytes(signature script)
	TxOut:       value(u64) | varbytes(public key script)
	MsgTx:       version(u32) | lock time(u32) | varint | TxIn... | varint | TxOut...
	BlockHeader: version(u32) | prev block | merkle root | timestamp(u32) |
	             height(u64) | bits(u32) | nonce(u32)
	MsgBlock:    header | varint | MsgTx...

The ValueIn field of a transaction input is bookkeeping only and is not encoded.

# Errors

Decoding errors are of type MessageError and wrap an ErrorKind such as
ErrTruncated or ErrTrailingBytes, so callers can use errors.Is to determine the
reason.
*/
package wire

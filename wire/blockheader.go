// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/decred/powcore/chaincfg/chainhash"
)

// MaxBlockHeaderPayload is the number of bytes a block header can be.
// Version 4 bytes + PrevBlock 32 bytes + MerkleRoot 32 bytes + Timestamp 4
// bytes + Height 8 bytes + Bits 4 bytes + Nonce 4 bytes.
const MaxBlockHeaderPayload = 4 + (chainhash.HashSize * 2) + 4 + 8 + 4 + 4

// BlockHeader defines information about a block and is used in the block
// (MsgBlock) message.
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version uint32

	// Hash of the previous block in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created in seconds since the unix epoch.
	Timestamp uint32

	// Height is the block height in the block chain.
	Height uint64

	// Difficulty target for the block in compact form.
	Bits uint32

	// Nonce is technically a 32-bit field, but it is not interpreted here.
	Nonce uint32
}

// BlockHash computes the block identifier hash for the given block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	// Encode the header and hash everything prior to the number of
	// transactions.  Ignore the error returns since there is no way the
	// encode could fail except being out of memory which would cause a
	// run-time panic.
	buf := bytes.NewBuffer(make([]byte, 0, MaxBlockHeaderPayload))
	_ = writeBlockHeader(buf, h)
	return chainhash.HashH(buf.Bytes())
}

// Hash implements the Hasher interface.  It is identical to BlockHash.
func (h *BlockHeader) Hash() chainhash.Hash {
	return h.BlockHash()
}

// Deserialize decodes a block header from r into the receiver using the
// canonical encoding.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	return readError("BlockHeader.Deserialize", readBlockHeader(r, h))
}

// FromBytes decodes a block header from b and requires that every byte is
// consumed.
func (h *BlockHeader) FromBytes(b []byte) error {
	return fromBytes("BlockHeader.FromBytes", b, func(r io.Reader) error {
		return readBlockHeader(r, h)
	})
}

// Serialize encodes the block header to w using the canonical encoding.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return writeBlockHeader(w, h)
}

// Bytes returns the canonical encoding of the block header.
func (h *BlockHeader) Bytes() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, MaxBlockHeaderPayload))
	err := h.Serialize(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SerializeSize returns the number of bytes it would take to serialize the
// block header.
func (h *BlockHeader) SerializeSize() int {
	return MaxBlockHeaderPayload
}

// NewBlockHeader returns a new BlockHeader using the provided previous block
// hash, merkle root hash, difficulty bits, and nonce used to generate the
// block with defaults for the remaining fields.
func NewBlockHeader(version uint32, prevHash, merkleRootHash *chainhash.Hash,
	timestamp uint32, height uint64, bits, nonce uint32) *BlockHeader {

	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  timestamp,
		Height:     height,
		Bits:       bits,
		Nonce:      nonce,
	}
}

// readBlockHeader reads a block header from r.
func readBlockHeader(r io.Reader, bh *BlockHeader) error {
	return readElements(r, &bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		&bh.Timestamp, &bh.Height, &bh.Bits, &bh.Nonce)
}

// writeBlockHeader writes a block header to w.
func writeBlockHeader(w io.Writer, bh *BlockHeader) error {
	return writeElements(w, bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		bh.Timestamp, bh.Height, bh.Bits, bh.Nonce)
}

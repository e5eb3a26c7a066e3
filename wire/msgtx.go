// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/decred/powcore/chaincfg/chainhash"
)

const (
	// TxVersion is the default version of a transaction.
	TxVersion uint32 = 1

	// MaxPrevOutIndex is the maximum index the index field of a previous
	// outpoint can be.
	MaxPrevOutIndex uint32 = 0xffffffff

	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// MaxScriptSize is the maximum number of bytes allowed in a signature or
	// public key script.
	MaxScriptSize = MaxBlockPayload

	// minTxInPayload is the minimum payload size for a transaction input.
	// PreviousOutPoint.Hash + PreviousOutPoint.Index 4 bytes + Sequence 4
	// bytes + varint for SignatureScript length 1 byte.
	minTxInPayload = chainhash.HashSize + 4 + 4 + 1

	// maxTxInPerMessage is the maximum number of transaction inputs that a
	// transaction which fits into a block could possibly have.
	maxTxInPerMessage = (MaxBlockPayload / minTxInPayload) + 1

	// minTxOutPayload is the minimum payload size for a transaction output.
	// Value 8 bytes + varint for PkScript length 1 byte.
	minTxOutPayload = 9

	// maxTxOutPerMessage is the maximum number of transaction outputs that a
	// transaction which fits into a block could possibly have.
	maxTxOutPerMessage = (MaxBlockPayload / minTxOutPayload) + 1

	// minTxPayload is the minimum payload size for a transaction.  Note
	// that any realistically usable transaction must have at least one
	// input or output, but that is a rule enforced at a higher layer, so
	// it is intentionally not included here.
	// Version 4 bytes + LockTime 4 bytes + Varint number of transaction
	// inputs 1 byte + Varint number of transaction outputs 1 byte.
	minTxPayload = 10
)

// OutPoint defines a data type that is used to track previous transaction
// outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new transaction outpoint point with the provided hash
// and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// NullOutPoint returns the outpoint referenced by the single input of a
// coinbase transaction, which is the all zero hash with the maximum index.
func NullOutPoint() OutPoint {
	return OutPoint{Index: MaxPrevOutIndex}
}

// IsNull returns whether or not the outpoint is the null outpoint.
func (o *OutPoint) IsNull() bool {
	return o.Index == MaxPrevOutIndex && o.Hash == chainhash.Hash{}
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	// Allocate enough for hash string, colon, and 10 digits.  Although
	// at the time of writing, the number of digits can be no greater than
	// the length of the decimal representation of maxTxOutPerMessage, the
	// maximum message payload may increase in the future and this
	// optimization may go unnoticed, so allocate space for 10 decimal
	// digits, which will fit any uint32.
	buf := make([]byte, 2*chainhash.HashSize+1, 2*chainhash.HashSize+1+10)
	copy(buf, o.Hash.String())
	buf[2*chainhash.HashSize] = ':'
	buf = strconv.AppendUint(buf, uint64(o.Index), 10)
	return string(buf)
}

// TxIn defines a transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	Sequence         uint32
	SignatureScript  []byte

	// ValueIn is the amount of the output being spent.  It is bookkeeping
	// for higher layers only and is not part of the canonical encoding, so
	// it does not contribute to the transaction hash.
	ValueIn int64
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction input.
func (t *TxIn) SerializeSize() int {
	// Outpoint Hash 32 bytes + Outpoint Index 4 bytes + Sequence 4 bytes +
	// serialized varint size for the length of SignatureScript +
	// SignatureScript bytes.
	return chainhash.HashSize + 4 + 4 + VarBytesSerializeSize(t.SignatureScript)
}

// NewTxIn returns a new transaction input with the provided previous outpoint
// point and signature script with a default sequence of MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, valueIn int64, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		Sequence:         MaxTxInSequenceNum,
		SignatureScript:  signatureScript,
		ValueIn:          valueIn,
	}
}

// TxOut defines a transaction output.
type TxOut struct {
	Value    uint64
	PkScript []byte
}

// SerializeSize returns the number of bytes it would take to serialize the
// the transaction output.
func (t *TxOut) SerializeSize() int {
	// Value 8 bytes + serialized varint size for the length of PkScript +
	// PkScript bytes.
	return 8 + VarBytesSerializeSize(t.PkScript)
}

// NewTxOut returns a new transaction output with the provided value and public
// key script.
func NewTxOut(value uint64, pkScript []byte) *TxOut {
	return &TxOut{
		Value:    value,
		PkScript: pkScript,
	}
}

// MsgTx implements the Serializer interface and represents a transaction.
//
// Use the AddTxIn and AddTxOut functions to build up the list of transaction
// inputs and outputs.
type MsgTx struct {
	Version  uint32
	LockTime uint32
	TxIn     []*TxIn
	TxOut    []*TxOut
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// TxHash generates the hash for the transaction.  It commits to every field
// of the canonical encoding including the signature scripts.
func (msg *MsgTx) TxHash() chainhash.Hash {
	return HashSerializable(msg)
}

// Hash implements the Hasher interface.  It is identical to TxHash.
func (msg *MsgTx) Hash() chainhash.Hash {
	return msg.TxHash()
}

// NormalizedTxHash generates the hash of the transaction with every signature
// script treated as empty.  It does not change when a transaction is re-signed
// and is never used to reference outputs.
func (msg *MsgTx) NormalizedTxHash() chainhash.Hash {
	h := chainhash.NewHasher()

	// Writes to the hasher can't fail.
	_ = msg.serialize(h, true)
	return h.Sum()
}

// Copy creates a deep copy of a transaction so that the original does not get
// modified when the copy is manipulated.
func (msg *MsgTx) Copy() *MsgTx {
	// Create new tx and start by copying primitive values and making space
	// for the transaction inputs and outputs.
	newTx := MsgTx{
		Version:  msg.Version,
		LockTime: msg.LockTime,
		TxIn:     make([]*TxIn, 0, len(msg.TxIn)),
		TxOut:    make([]*TxOut, 0, len(msg.TxOut)),
	}

	// Deep copy the old TxIn data.
	for _, oldTxIn := range msg.TxIn {
		newTxIn := *oldTxIn
		if oldTxIn.SignatureScript != nil {
			newTxIn.SignatureScript = make([]byte, len(oldTxIn.SignatureScript))
			copy(newTxIn.SignatureScript, oldTxIn.SignatureScript)
		}
		newTx.TxIn = append(newTx.TxIn, &newTxIn)
	}

	// Deep copy the old TxOut data.
	for _, oldTxOut := range msg.TxOut {
		newTxOut := *oldTxOut
		if oldTxOut.PkScript != nil {
			newTxOut.PkScript = make([]byte, len(oldTxOut.PkScript))
			copy(newTxOut.PkScript, oldTxOut.PkScript)
		}
		newTx.TxOut = append(newTx.TxOut, &newTxOut)
	}

	return &newTx
}

// readOutPoint reads the next sequence of bytes from r as an OutPoint.
func readOutPoint(r io.Reader, op *OutPoint) error {
	return readElements(r, &op.Hash, &op.Index)
}

// writeOutPoint encodes op to the canonical encoding for an OutPoint to w.
func writeOutPoint(w io.Writer, op *OutPoint) error {
	return writeElements(w, &op.Hash, op.Index)
}

// readTxIn reads the next sequence of bytes from r as a transaction input.
func readTxIn(r io.Reader, ti *TxIn) error {
	err := readOutPoint(r, &ti.PreviousOutPoint)
	if err != nil {
		return err
	}
	err = readElement(r, &ti.Sequence)
	if err != nil {
		return err
	}
	ti.SignatureScript, err = ReadVarBytes(r, MaxScriptSize,
		"transaction input signature script")
	return err
}

// writeTxIn encodes ti to the canonical encoding for a transaction input to w.
// The signature script is written as empty when normalized is set.
func writeTxIn(w io.Writer, ti *TxIn, normalized bool) error {
	err := writeOutPoint(w, &ti.PreviousOutPoint)
	if err != nil {
		return err
	}
	err = writeElement(w, ti.Sequence)
	if err != nil {
		return err
	}
	if normalized {
		return WriteVarInt(w, 0)
	}
	return WriteVarBytes(w, ti.SignatureScript)
}

// readTxOut reads the next sequence of bytes from r as a transaction output.
func readTxOut(r io.Reader, to *TxOut) error {
	err := readElement(r, &to.Value)
	if err != nil {
		return err
	}
	to.PkScript, err = ReadVarBytes(r, MaxScriptSize,
		"transaction output public key script")
	return err
}

// writeTxOut encodes to into the canonical encoding for a transaction output
// to w.
func writeTxOut(w io.Writer, to *TxOut) error {
	err := writeElement(w, to.Value)
	if err != nil {
		return err
	}
	return WriteVarBytes(w, to.PkScript)
}

// decode reads the canonical encoding of a transaction from r without
// converting end of input conditions.
func (msg *MsgTx) decode(r io.Reader) error {
	const op = "MsgTx.Deserialize"
	err := readElements(r, &msg.Version, &msg.LockTime)
	if err != nil {
		return err
	}

	count, err := ReadVarInt(r)
	if err != nil {
		return err
	}

	// Prevent more input transactions than could possibly fit into a
	// message.  It would be possible to cause memory exhaustion and panics
	// without a sane upper bound on this count.
	err = checkCount(r, op, ErrTooManyTxIns, "transaction inputs", count,
		maxTxInPerMessage, minTxInPayload)
	if err != nil {
		return err
	}

	// Deserialize the inputs.  A single contiguous backing array is used
	// for all of them to reduce the number of allocations.
	txIns := make([]TxIn, count)
	msg.TxIn = make([]*TxIn, count)
	for i := uint64(0); i < count; i++ {
		ti := &txIns[i]
		msg.TxIn[i] = ti
		err = readTxIn(r, ti)
		if err != nil {
			return err
		}
	}

	count, err = ReadVarInt(r)
	if err != nil {
		return err
	}

	// Prevent more output transactions than could possibly fit into a
	// message.
	err = checkCount(r, op, ErrTooManyTxOuts, "transaction outputs", count,
		maxTxOutPerMessage, minTxOutPayload)
	if err != nil {
		return err
	}

	txOuts := make([]TxOut, count)
	msg.TxOut = make([]*TxOut, count)
	for i := uint64(0); i < count; i++ {
		to := &txOuts[i]
		msg.TxOut[i] = to
		err = readTxOut(r, to)
		if err != nil {
			return err
		}
	}

	return nil
}

// Deserialize decodes a transaction from r into the receiver using the
// canonical encoding.  ValueIn of every decoded input is zero since it is not
// part of the encoding.  Short input is reported as ErrTruncated.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	return readError("MsgTx.Deserialize", msg.decode(r))
}

// FromBytes decodes a transaction from b and requires that every byte is
// consumed.
func (msg *MsgTx) FromBytes(b []byte) error {
	return fromBytes("MsgTx.FromBytes", b, msg.decode)
}

// serialize encodes the transaction to w, optionally with every signature
// script emptied.
func (msg *MsgTx) serialize(w io.Writer, normalized bool) error {
	err := writeElements(w, msg.Version, msg.LockTime)
	if err != nil {
		return err
	}

	err = WriteVarInt(w, uint64(len(msg.TxIn)))
	if err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		err = writeTxIn(w, ti, normalized)
		if err != nil {
			return err
		}
	}

	err = WriteVarInt(w, uint64(len(msg.TxOut)))
	if err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		err = writeTxOut(w, to)
		if err != nil {
			return err
		}
	}

	return nil
}

// Serialize encodes the transaction to w using the canonical encoding.
func (msg *MsgTx) Serialize(w io.Writer) error {
	return msg.serialize(w, false)
}

// Bytes returns the canonical encoding of the transaction.
func (msg *MsgTx) Bytes() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSize()))
	err := msg.Serialize(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction.
func (msg *MsgTx) SerializeSize() int {
	// Version 4 bytes + LockTime 4 bytes + Serialized varint size for the
	// number of transaction inputs and outputs.
	n := 8 + VarIntSerializeSize(uint64(len(msg.TxIn))) +
		VarIntSerializeSize(uint64(len(msg.TxOut)))

	for _, txIn := range msg.TxIn {
		n += txIn.SerializeSize()
	}
	for _, txOut := range msg.TxOut {
		n += txOut.SerializeSize()
	}

	return n
}

// String returns a short human-readable summary of the transaction.
func (msg *MsgTx) String() string {
	return fmt.Sprintf("tx %v (version %d, %d inputs, %d outputs)",
		msg.TxHash(), msg.Version, len(msg.TxIn), len(msg.TxOut))
}

// NewMsgTx returns a new transaction that conforms to the Serializer interface.
// The return instance has a default version of TxVersion and there are no
// transaction inputs or outputs.  Also, the lock time is set to zero to
// indicate the transaction is valid immediately as opposed to some time in
// future.
func NewMsgTx() *MsgTx {
	return &MsgTx{
		Version: TxVersion,
		TxIn:    make([]*TxIn, 0, defaultTxInOutAlloc),
		TxOut:   make([]*TxOut, 0, defaultTxInOutAlloc),
	}
}

// defaultTxInOutAlloc is the default size used for the backing array for
// transaction inputs and outputs.  The array will dynamically grow as needed,
// but this figure is intended to provide enough space for the number of
// inputs and outputs in a typical transaction without needing to grow the
// backing array multiple times.
const defaultTxInOutAlloc = 15

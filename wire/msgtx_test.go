// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
	"testing/iotest"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/powcore/chaincfg/chainhash"
)

// multiTx is a coinbase transaction with one input and two outputs used
// throughout the tests.
var multiTx = &MsgTx{
	Version: 1,
	TxIn: []*TxIn{{
		PreviousOutPoint: OutPoint{
			Hash:  chainhash.Hash{},
			Index: 0xffffffff,
		},
		Sequence:        0xffffffff,
		SignatureScript: hexToBytes("0431dc001b0162"),
	}},
	TxOut: []*TxOut{{
		Value:    5000000000,
		PkScript: hexToBytes("76a914111111111111111111111111111111111111111188ac"),
	}, {
		Value:    1000,
		PkScript: []byte{0x51},
	}},
	LockTime: 0,
}

// multiTxEncoded is the canonical encoding for multiTx.
var multiTxEncoded = hexToBytes("0100000000000000" + // Version, LockTime
	"01" + // Varint for number of input transactions
	"0000000000000000000000000000000000000000000000000000000000000000" +
	"ffffffff" + // Prevous output index
	"ffffffff" + // Sequence
	"070431dc001b0162" + // Varint + signature script
	"02" + // Varint for number of output transactions
	"00f2052a01000000" + // Transaction amount
	"1976a914111111111111111111111111111111111111111188ac" +
	"e803000000000000" + // Transaction amount
	"0151") // Varint + public key script

// TestTx tests the MsgTx API.
func TestTx(t *testing.T) {
	t.Parallel()

	// Ensure we get the same transaction output point data back out.
	// NOTE: This is a block hash and made up index, but we're only
	// testing package functionality.
	prevOutIndex := uint32(1)
	prevHash := hexToHash("000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f")
	prevOut := NewOutPoint(&prevHash, prevOutIndex)
	if !prevOut.Hash.IsEqual(&prevHash) {
		t.Errorf("NewOutPoint: wrong hash - got %v, want %v",
			spew.Sprint(&prevOut.Hash), spew.Sprint(&prevHash))
	}
	if prevOut.Index != prevOutIndex {
		t.Errorf("NewOutPoint: wrong index - got %v, want %v",
			prevOut.Index, prevOutIndex)
	}
	wantStr := "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f:1"
	if s := prevOut.String(); s != wantStr {
		t.Errorf("OutPoint.String: wrong string - got %v, want %v", s, wantStr)
	}
	if prevOut.IsNull() {
		t.Error("OutPoint.IsNull: non-null outpoint reported as null")
	}
	nullOut := NullOutPoint()
	if !nullOut.IsNull() {
		t.Error("OutPoint.IsNull: null outpoint not reported as null")
	}

	// Ensure we get the same transaction input back out.
	sigScript := []byte{0x04, 0x31, 0xdc, 0x00, 0x1b, 0x01, 0x62}
	txIn := NewTxIn(prevOut, 2500, sigScript)
	if !reflect.DeepEqual(&txIn.PreviousOutPoint, prevOut) {
		t.Errorf("NewTxIn: wrong prev outpoint - got %v, want %v",
			spew.Sprint(&txIn.PreviousOutPoint), spew.Sprint(prevOut))
	}
	if txIn.Sequence != MaxTxInSequenceNum {
		t.Errorf("NewTxIn: wrong sequence - got %d, want %d", txIn.Sequence,
			MaxTxInSequenceNum)
	}
	if txIn.ValueIn != 2500 {
		t.Errorf("NewTxIn: wrong value in - got %d, want %d", txIn.ValueIn,
			2500)
	}
	if !bytes.Equal(txIn.SignatureScript, sigScript) {
		t.Errorf("NewTxIn: wrong signature script - got %v, want %v",
			spew.Sdump(txIn.SignatureScript), spew.Sdump(sigScript))
	}

	// Ensure we get the same transaction output back out.
	txValue := uint64(5000000000)
	pkScript := []byte{0x51}
	txOut := NewTxOut(txValue, pkScript)
	if txOut.Value != txValue {
		t.Errorf("NewTxOut: wrong pk script - got %v, want %v", txOut.Value,
			txValue)
	}
	if !bytes.Equal(txOut.PkScript, pkScript) {
		t.Errorf("NewTxOut: wrong pk script - got %v, want %v",
			spew.Sdump(txOut.PkScript), spew.Sdump(pkScript))
	}

	// Ensure transaction inputs and outputs are added properly.
	msg := NewMsgTx()
	if msg.Version != TxVersion {
		t.Errorf("NewMsgTx: wrong version - got %d, want %d", msg.Version,
			TxVersion)
	}
	msg.AddTxIn(txIn)
	if !reflect.DeepEqual(msg.TxIn[0], txIn) {
		t.Errorf("AddTxIn: wrong transaction input added - got %v, want %v",
			spew.Sprint(msg.TxIn[0]), spew.Sprint(txIn))
	}
	msg.AddTxOut(txOut)
	if !reflect.DeepEqual(msg.TxOut[0], txOut) {
		t.Errorf("AddTxIn: wrong transaction output added - got %v, want %v",
			spew.Sprint(msg.TxOut[0]), spew.Sprint(txOut))
	}

	// Ensure the copy produced an identical transaction message that does
	// not share script memory.
	newMsg := msg.Copy()
	if !reflect.DeepEqual(newMsg, msg) {
		t.Errorf("Copy: mismatched tx messages - got %v, want %v",
			spew.Sdump(newMsg), spew.Sdump(msg))
	}
	newMsg.TxIn[0].SignatureScript[0] ^= 0xff
	if bytes.Equal(msg.TxIn[0].SignatureScript, newMsg.TxIn[0].SignatureScript) {
		t.Error("Copy: copied signature script shares memory with original")
	}
}

// TestTxHash tests the ability to generate the hash of a transaction
// accurately.
func TestTxHash(t *testing.T) {
	t.Parallel()

	wantHash := hexToHash("1a0d97fef6a769a251f180999495c9ec08c805ca84d362683f8eb11580a21be2")
	if txHash := multiTx.TxHash(); !txHash.IsEqual(&wantHash) {
		t.Errorf("TxHash: wrong hash - got %v, want %v", txHash, wantHash)
	}
	if txHash := multiTx.Hash(); txHash != wantHash {
		t.Errorf("Hash: wrong hash - got %v, want %v", txHash, wantHash)
	}
	if txHash := HashSerializable(multiTx); txHash != wantHash {
		t.Errorf("HashSerializable: wrong hash - got %v, want %v", txHash,
			wantHash)
	}
	var hasher Hasher = multiTx
	if txHash := hasher.Hash(); txHash != wantHash {
		t.Errorf("Hasher: wrong hash - got %v, want %v", txHash, wantHash)
	}

	// The auxiliary input value must not contribute to the hash.
	tx := multiTx.Copy()
	tx.TxIn[0].ValueIn = 5000000000
	if txHash := tx.TxHash(); txHash != wantHash {
		t.Errorf("TxHash: value in changed hash - got %v, want %v", txHash,
			wantHash)
	}
}

// TestNormalizedTxHash ensures the normalized hash ignores signature scripts
// while the regular hash does not.
func TestNormalizedTxHash(t *testing.T) {
	t.Parallel()

	wantNormalized := hexToHash("0a660b53fc0465ca9944d942e8f2e5f11e575021a526de469ee64b8540a3207d")
	wantResigned := hexToHash("0234ea2d22a6b3b0c7dad02ccc0e531294cd857f160e439b3fa1f89a59255acf")

	if got := multiTx.NormalizedTxHash(); got != wantNormalized {
		t.Errorf("NormalizedTxHash: wrong hash - got %v, want %v", got,
			wantNormalized)
	}

	// Replace the signature script and ensure only the regular hash
	// changes.
	resigned := multiTx.Copy()
	resigned.TxIn[0].SignatureScript = []byte{0x51}
	if got := resigned.TxHash(); got != wantResigned {
		t.Errorf("TxHash: wrong hash after resign - got %v, want %v", got,
			wantResigned)
	}
	if got := resigned.NormalizedTxHash(); got != wantNormalized {
		t.Errorf("NormalizedTxHash: hash changed after resign - got %v, "+
			"want %v", got, wantNormalized)
	}

	// The normalized hash is the hash of the transaction with all signature
	// scripts removed.
	stripped := multiTx.Copy()
	stripped.TxIn[0].SignatureScript = nil
	if got := stripped.TxHash(); got != wantNormalized {
		t.Errorf("TxHash: stripped hash mismatch - got %v, want %v", got,
			wantNormalized)
	}

	// Computing the normalized hash must not modify the transaction.
	if !bytes.Equal(multiTx.TxIn[0].SignatureScript, hexToBytes("0431dc001b0162")) {
		t.Error("NormalizedTxHash: modified the signature script")
	}
}

// TestTxSerialize tests MsgTx serialize and deserialize.
func TestTxSerialize(t *testing.T) {
	t.Parallel()

	noTx := NewMsgTx()
	noTx.Version = 1
	noTxEncoded := []byte{
		0x01, 0x00, 0x00, 0x00, // Version
		0x00, 0x00, 0x00, 0x00, // Lock time
		0x00, // Varint for number of input transactions
		0x00, // Varint for number of output transactions
	}

	tests := []struct {
		in  *MsgTx // Message to encode
		out *MsgTx // Expected decoded message
		buf []byte // Serialized data
	}{
		// No transactions.
		{
			noTx,
			noTx,
			noTxEncoded,
		},

		// Multiple transactions.
		{
			multiTx,
			multiTx,
			multiTxEncoded,
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		// Serialize the transaction.
		var buf bytes.Buffer
		err := test.in.Serialize(&buf)
		if err != nil {
			t.Errorf("Serialize #%d error %v", i, err)
			continue
		}
		if !bytes.Equal(buf.Bytes(), test.buf) {
			t.Errorf("Serialize #%d\n got: %s want: %s", i,
				spew.Sdump(buf.Bytes()), spew.Sdump(test.buf))
			continue
		}
		b, err := test.in.Bytes()
		if err != nil {
			t.Errorf("Bytes #%d error %v", i, err)
			continue
		}
		if !bytes.Equal(b, test.buf) {
			t.Errorf("Bytes #%d\n got: %s want: %s", i, spew.Sdump(b),
				spew.Sdump(test.buf))
			continue
		}
		if size := test.in.SerializeSize(); size != len(test.buf) {
			t.Errorf("SerializeSize #%d: wrong size - got %d, want %d", i,
				size, len(test.buf))
			continue
		}

		// Deserialize the transaction.
		var tx MsgTx
		err = tx.Deserialize(bytes.NewReader(test.buf))
		if err != nil {
			t.Errorf("Deserialize #%d error %v", i, err)
			continue
		}
		if !reflect.DeepEqual(&tx, test.out) {
			t.Errorf("Deserialize #%d\n got: %s want: %s", i,
				spew.Sdump(&tx), spew.Sdump(test.out))
			continue
		}

		var tx2 MsgTx
		err = tx2.FromBytes(test.buf)
		if err != nil {
			t.Errorf("FromBytes #%d error %v", i, err)
			continue
		}
		if !reflect.DeepEqual(&tx2, test.out) {
			t.Errorf("FromBytes #%d\n got: %s want: %s", i,
				spew.Sdump(&tx2), spew.Sdump(test.out))
			continue
		}
	}
}

// TestTxSerializeErrors performs negative tests against the canonical encoding
// of transactions to confirm error paths work correctly.
func TestTxSerializeErrors(t *testing.T) {
	t.Parallel()

	// Every strict prefix of a valid encoding is truncated.  Stream readers
	// can only detect that once the input runs out, while in-memory input
	// may be rejected earlier due to length prefixes that exceed what
	// remains.
	for i := 0; i < len(multiTxEncoded); i++ {
		var tx MsgTx
		r := iotest.OneByteReader(bytes.NewReader(multiTxEncoded[:i]))
		err := tx.Deserialize(r)
		if !errors.Is(err, ErrTruncated) {
			t.Errorf("Deserialize prefix %d: unexpected error %v", i, err)
			continue
		}

		var tx2 MsgTx
		err = tx2.FromBytes(multiTxEncoded[:i])
		switch {
		case errors.Is(err, ErrTruncated):
		case errors.Is(err, ErrVarBytesTooLong):
		case errors.Is(err, ErrTooManyTxIns):
		case errors.Is(err, ErrTooManyTxOuts):
		default:
			t.Errorf("FromBytes prefix %d: unexpected error %v", i, err)
			continue
		}
	}

	tests := []struct {
		name string // Test name for easier identification
		buf  []byte // Serialized data
		err  error  // Expected error
	}{{
		name: "trailing bytes",
		buf:  append(append([]byte(nil), multiTxEncoded...), 0x00),
		err:  ErrTrailingBytes,
	}, {
		name: "input count exceeds max",
		buf:  hexToBytes("0100000000000000ff0000000001000000"),
		err:  ErrTooManyTxIns,
	}, {
		name: "input count exceeds remaining input",
		buf:  hexToBytes("010000000000000002" + "00"),
		err:  ErrTooManyTxIns,
	}, {
		name: "output count exceeds max",
		buf:  hexToBytes("010000000000000000ff0000000001000000"),
		err:  ErrTooManyTxOuts,
	}, {
		name: "output count exceeds remaining input",
		buf:  hexToBytes("01000000000000000003" + "0000000000000000"),
		err:  ErrTooManyTxOuts,
	}, {
		name: "non-canonical input count",
		buf:  hexToBytes("0100000000000000fd0100"),
		err:  ErrNonCanonicalVarInt,
	}}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		var tx MsgTx
		err := tx.FromBytes(test.buf)
		if !errors.Is(err, test.err) {
			t.Errorf("FromBytes %q: unexpected error -- got %v, want %v",
				test.name, err, test.err)
			continue
		}

		var mErr MessageError
		if !errors.As(err, &mErr) {
			t.Errorf("FromBytes %q: error is not a MessageError: %T",
				test.name, err)
			continue
		}
	}
}

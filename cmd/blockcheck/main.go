// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/powcore/blockchain/standalone"
	"github.com/decred/powcore/wire"
	flags "github.com/jessevdk/go-flags"
)

// validationError reports that the input was decoded but failed validation as
// opposed to being malformed.
type validationError struct {
	err error
}

// Error satisfies the error interface.
func (e validationError) Error() string {
	return "validation failed: " + e.err.Error()
}

// Unwrap returns the underlying rule error.
func (e validationError) Unwrap() error {
	return e.err
}

// requiredTargetBits returns the compact difficulty bits the header is checked
// against.
func (cfg *config) requiredTargetBits(header *wire.BlockHeader) uint32 {
	if cfg.haveRequired {
		return cfg.requiredBits
	}
	return header.Bits
}

// reportHeader writes the identifying and difficulty details of the provided
// header to w.
func reportHeader(w io.Writer, cfg *config, header *wire.BlockHeader) {
	hash := header.BlockHash()
	target := standalone.HeaderTarget(header)
	work := standalone.CalcWork(header.Bits)
	fmt.Fprintf(w, "hash:        %v\n", hash)
	fmt.Fprintf(w, "version:     %d\n", header.Version)
	fmt.Fprintf(w, "prev block:  %v\n", header.PrevBlock)
	fmt.Fprintf(w, "merkle root: %v\n", header.MerkleRoot)
	fmt.Fprintf(w, "timestamp:   %v\n",
		time.Unix(int64(header.Timestamp), 0).UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "height:      %d\n", header.Height)
	fmt.Fprintf(w, "bits:        %08x\n", header.Bits)
	fmt.Fprintf(w, "nonce:       %d\n", header.Nonce)
	fmt.Fprintf(w, "target:      %064x\n", &target)
	fmt.Fprintf(w, "work:        %v\n", &work)
	fmt.Fprintf(w, "difficulty:  %d (%s)\n",
		standalone.CalcDifficulty(header.Bits, cfg.params), cfg.params.Name)
}

// checkHeader decodes, reports, and validates a serialized block header.
func checkHeader(w io.Writer, cfg *config, data []byte) error {
	var header wire.BlockHeader
	if err := header.FromBytes(data); err != nil {
		return err
	}
	if cfg.Dump {
		spew.Fdump(w, &header)
	}
	reportHeader(w, cfg, &header)

	if err := standalone.CheckProofOfWorkRange(header.Bits,
		cfg.params.PowLimit); err != nil {

		return validationError{err}
	}
	required := standalone.CompactToTarget(cfg.requiredTargetBits(&header))
	if err := standalone.CheckProofOfWork(&header, &required); err != nil {
		return validationError{err}
	}
	return nil
}

// checkBlock decodes, reports, and validates a serialized block.
func checkBlock(w io.Writer, cfg *config, data []byte) error {
	var block wire.MsgBlock
	if err := block.FromBytes(data); err != nil {
		return err
	}
	if cfg.Dump {
		spew.Fdump(w, &block)
	}
	header := &block.Header
	reportHeader(w, cfg, header)

	fmt.Fprintf(w, "txns:        %d\n", len(block.Transactions))
	fmt.Fprintf(w, "calc merkle: %v\n",
		standalone.CalcTxTreeMerkleRoot(block.Transactions))
	if len(block.Transactions) > 0 {
		coinbase := block.Transactions[0]
		fmt.Fprintf(w, "coinbase:    %v (valid coinbase: %v)\n",
			coinbase.TxHash(), standalone.IsCoinBaseTx(coinbase))
		fmt.Fprintf(w, "witness:     %v\n",
			standalone.CalcWitnessMerkleRoot(block.Transactions))
	}

	if err := standalone.CheckProofOfWorkRange(header.Bits,
		cfg.params.PowLimit); err != nil {

		return validationError{err}
	}
	var layout standalone.CommitmentLayout
	if !cfg.NoCommitment {
		layout = standalone.ScriptPrefixCommitment{
			Prefix: cfg.params.WitnessCommitmentPrefix,
		}
	}
	required := standalone.CompactToTarget(cfg.requiredTargetBits(header))
	if err := standalone.CheckBlock(&block, &required, layout); err != nil {
		return validationError{err}
	}
	return nil
}

// check decodes the provided serialized header or block depending on the
// configuration, writes a report about it to w, and returns any error that
// results from decoding or validating it.
func check(w io.Writer, cfg *config, data []byte) error {
	if cfg.Block {
		return checkBlock(w, cfg, data)
	}
	return checkHeader(w, cfg, data)
}

// run parses the arguments, performs the requested check, and returns the
// process exit code.
func run(args []string, stdin io.Reader, stdout io.Writer) int {
	cfg, remaining, err := loadConfig(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type == flags.ErrHelp {
				return 0
			}
			// The parser already printed the error.
			return 1
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if cfg.LogDir != "" {
		logFile := filepath.Join(cfg.LogDir, defaultLogFile)
		if err := initLogRotator(logFile, cfg.MaxLogRolls); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer func() {
			logRotator.Close()
			logRotator = nil
		}()
	}

	data, err := readInput(remaining[0], stdin)
	if err != nil {
		bchkLog.Error(err)
		return 1
	}
	bchkLog.Debugf("Checking %d bytes on %s", len(data), cfg.params.Name)

	// Buffer the report so it is written in one piece after any log output
	// from the checks.
	var report bytes.Buffer
	err = check(&report, cfg, data)
	stdout.Write(report.Bytes())
	if err != nil {
		bchkLog.Error(err)
		var vErr validationError
		if errors.As(err, &vErr) {
			fmt.Fprintln(stdout, "result:      INVALID")
		}
		return 1
	}
	fmt.Fprintln(stdout, "result:      VALID")
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

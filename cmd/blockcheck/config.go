// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/decred/powcore/chaincfg"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultNet        = "mainnet"
	defaultLogLevel   = "info"
	defaultLogFile    = "blockcheck.log"
	defaultMaxLogRoll = 3
)

// config defines the configuration options for blockcheck.
type config struct {
	Net          string `short:"n" long:"net" description:"Network the header or block belongs to (mainnet, testnet, regnet, simnet)"`
	RequiredBits string `short:"r" long:"requiredbits" description:"Compact difficulty bits in hex the header must commit to (default: the bits of the header itself)"`
	Block        bool   `short:"b" long:"block" description:"Decode the input as a full block instead of a block header"`
	NoCommitment bool   `long:"nocommitment" description:"Do not require a witness commitment in the coinbase of a block"`
	Dump         bool   `long:"dump" description:"Dump the decoded header or block structure"`
	DebugLevel   string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	LogDir       string `long:"logdir" description:"Directory to log output to in addition to stderr"`
	MaxLogRolls  int    `long:"maxlogrolls" description:"Number of rolled log files to keep"`

	params       *chaincfg.Params
	requiredBits uint32
	haveRequired bool
}

// loadConfig parses the command line arguments into a config and returns it
// along with the remaining positional arguments.  The network parameters and
// required bits are resolved and validated.
func loadConfig(args []string) (*config, []string, error) {
	cfg := config{
		Net:         defaultNet,
		DebugLevel:  defaultLogLevel,
		MaxLogRolls: defaultMaxLogRoll,
	}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] <hex | @file | ->"
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	cfg.params, err = chaincfg.ParamsByName(cfg.Net)
	if err != nil {
		return nil, nil, err
	}

	if cfg.RequiredBits != "" {
		bitsStr := strings.TrimPrefix(strings.ToLower(cfg.RequiredBits), "0x")
		bits, err := strconv.ParseUint(bitsStr, 16, 32)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid required bits %q: %w",
				cfg.RequiredBits, err)
		}
		cfg.requiredBits = uint32(bits)
		cfg.haveRequired = true
	}

	if cfg.MaxLogRolls < 0 {
		return nil, nil, errors.New("the maximum number of log rolls may " +
			"not be negative")
	}

	if len(remaining) != 1 {
		var buf strings.Builder
		parser.WriteHelp(&buf)
		return nil, nil, fmt.Errorf("a single hex argument is required\n\n%s",
			buf.String())
	}
	return &cfg, remaining, nil
}

// readInput returns the serialized bytes described by the provided argument.
// The argument is either the hex encoding itself, the path to a file
// containing it when prefixed with @, or - to read it from stdin.
func readInput(arg string, stdin io.Reader) ([]byte, error) {
	var hexStr string
	switch {
	case arg == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		hexStr = string(b)

	case strings.HasPrefix(arg, "@"):
		b, err := os.ReadFile(filepath.Clean(arg[1:]))
		if err != nil {
			return nil, err
		}
		hexStr = string(b)

	default:
		hexStr = arg
	}

	b, err := hex.DecodeString(strings.TrimSpace(hexStr))
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return b, nil
}

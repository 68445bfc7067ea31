// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/audittracker/configuration"
	"github.com/bitmark-inc/audittracker/fault"
	"github.com/bitmark-inc/audittracker/ledger"
	"github.com/bitmark-inc/audittracker/storage"
	"github.com/bitmark-inc/audittracker/transactionrecord"
)

// setup command handler
//
// commands that cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "submit", "s", "wallets", "w", "bootstrap", "boot", "history", "hist":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  submit FILE...             (s)      - submit hex transactions, one per line,\n")
		fmt.Printf("                                        and commit the accepted ones as a block\n")
		fmt.Printf("\n")

		fmt.Printf("  wallets [FILE]             (w)      - dump all wallets as JSON to stdout/file\n")
		fmt.Printf("\n")

		fmt.Printf("  bootstrap                  (boot)   - rebuild derived wallet state from history\n")
		fmt.Printf("\n")

		fmt.Printf("  history TXID...            (hist)   - show whether transactions are committed\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *configuration.Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the ledger is ready and bootstrapped so these commands can access
// and change the database
func processDataCommand(log *logger.L, arguments []string, l *ledger.Ledger, store *storage.Store) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "submit", "s":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing file name argument")
		}

		block := []*transactionrecord.Transaction{}
		for _, filename := range arguments {
			txs, err := readTransactions(filename)
			if nil != err {
				exitwithstatus.Message("error: reading: %q error: %s", filename, err)
			}
			for _, tx := range txs {
				txId, err := l.SubmitTransaction(tx)
				if nil != err {
					fmt.Printf("rejected: %s  kind: %s  error: %s\n", txId, tx.Kind, err)
					log.Warnf("rejected: %s  error: %s", txId, err)
					continue
				}
				fmt.Printf("accepted: %s  kind: %s\n", txId, tx.Kind)
				block = append(block, tx)
			}
		}

		if 0 == len(block) {
			exitwithstatus.Message("no transactions accepted")
		}
		err := l.Commit(block)
		if nil != err {
			exitwithstatus.Message("commit error: %s", err)
		}
		fmt.Printf("committed: %d transactions\n", len(block))

	case "wallets", "w":
		fd := os.Stdout
		if len(arguments) > 0 && "-" != arguments[0] {
			var err error
			fd, err = os.Create(strings.TrimSpace(arguments[0]))
			if nil != err {
				exitwithstatus.Message("error: creating: %q error: %s", arguments[0], err)
			}
			defer fd.Close()
		}

		wallets, err := store.Wallets()
		if nil != err {
			exitwithstatus.Message("read wallets error: %s", err)
		}
		s, err := json.MarshalIndent(wallets, "", "  ")
		if nil != err {
			exitwithstatus.Message("wallets JSON error: %s", err)
		}
		fmt.Fprintf(fd, "%s\n", s)

	case "bootstrap", "boot":
		// already done during start up
		fmt.Printf("history: %d transactions replayed\n", store.HistoryCount())

	case "history", "hist":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing transaction id argument")
		}
		for _, s := range arguments {
			txId, err := parseTxId(s)
			if nil != err {
				exitwithstatus.Message("error: transaction id: %q error: %s", s, err)
			}
			if store.HasTransaction(txId) {
				fmt.Printf("committed: %s\n", txId)
			} else {
				fmt.Printf("unknown: %s\n", txId)
			}
		}

	default:
		exitwithstatus.Message("error: no such command: %q", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// a transaction id in hex with nothing else but surrounding spaces
func parseTxId(s string) (transactionrecord.Link, error) {
	var txId transactionrecord.Link
	_, err := fmt.Sscan(s, &txId)
	if nil != err {
		return transactionrecord.Link{}, err
	}
	if txId.String() != strings.ToLower(strings.TrimSpace(s)) {
		return transactionrecord.Link{}, fault.ErrHashLength
	}
	return txId, nil
}

// hex encoded packed transactions, one per line, blank lines and
// lines starting with # are skipped
func readTransactions(filename string) ([]*transactionrecord.Transaction, error) {
	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	txs := []*transactionrecord.Transaction{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 65536), 1048576)
	line := 0
	for scanner.Scan() {
		line += 1
		text := strings.TrimSpace(scanner.Text())
		if "" == text || strings.HasPrefix(text, "#") {
			continue
		}

		var packed transactionrecord.Packed
		err := packed.UnmarshalText([]byte(text))
		if nil != err {
			return nil, fmt.Errorf("line: %d  error: %s", line, err)
		}
		tx, err := packed.Unpack()
		if nil != err {
			return nil, fmt.Errorf("line: %d  error: %s", line, err)
		}
		txs = append(txs, tx)
	}
	return txs, scanner.Err()
}

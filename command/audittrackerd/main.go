// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/audittracker/background"
	"github.com/bitmark-inc/audittracker/configuration"
	"github.com/bitmark-inc/audittracker/handler"
	"github.com/bitmark-inc/audittracker/ledger"
	"github.com/bitmark-inc/audittracker/messagebus"
	"github.com/bitmark-inc/audittracker/reservoir"
	"github.com/bitmark-inc/audittracker/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := configuration.Get(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("chain: %s", theConfiguration.Chain)
	log.Infof("activated: %v", theConfiguration.Activated)
	log.Infof("database: %q", theConfiguration.Database.Name)

	// start the data storage
	log.Info("initialise storage")
	store, err := storage.Open(theConfiguration.Database.Name)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer store.Close()

	// pending transaction pool
	expiry, _ := theConfiguration.PoolExpiry()
	log.Info("initialise reservoir")
	pool, err := reservoir.New(reservoir.Configuration{
		Expiry: expiry,
		Rate:   theConfiguration.Pool.Rate,
		Burst:  theConfiguration.Pool.Burst,
	})
	if nil != err {
		log.Criticalf("reservoir initialise error: %s", err)
		exitwithstatus.Message("reservoir initialise error: %s", err)
	}
	defer pool.Close()

	registry, err := handler.NewInvoiceRegistry(theConfiguration.Activated)
	if nil != err {
		log.Criticalf("handler registry error: %s", err)
		exitwithstatus.Message("handler registry error: %s", err)
	}

	bus := messagebus.New()
	defer bus.Close()

	log.Info("initialise ledger")
	theLedger, err := ledger.New(ledger.Options{
		Chain:      theConfiguration.Chain,
		AddonBytes: theConfiguration.Fees.AddonBytes,
		FeePerByte: theConfiguration.Fees.FeePerByte,
		BatchSize:  theConfiguration.Bootstrap.BatchSize,
	}, registry, store, pool, bus)
	if nil != err {
		log.Criticalf("ledger initialise error: %s", err)
		exitwithstatus.Message("ledger initialise error: %s", err)
	}

	err = fundGenesis(log, theLedger, store, theConfiguration.Genesis)
	if nil != err {
		log.Criticalf("genesis error: %s", err)
		exitwithstatus.Message("genesis error: %s", err)
	}

	log.Info("bootstrap")
	err = theLedger.Bootstrap()
	if nil != err {
		log.Criticalf("bootstrap error: %s", err)
		exitwithstatus.Message("bootstrap error: %s", err)
	}

	// event listener runs for data commands too
	processes := background.Start(background.Processes{
		newEventLogger(bus),
	}, nil)

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, theLedger, store) {
		processes.Stop()
		return
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	processes.Stop()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/audittracker/account"
	"github.com/bitmark-inc/audittracker/chain"
	"github.com/bitmark-inc/audittracker/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultBitmarkDatabase  = chain.Bitmark + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "audittrackerd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultPoolExpiry = "2h"
	defaultPoolRate   = 100
	defaultPoolBurst  = 200

	defaultStaticFee  = 5000000000
	defaultAddonBytes = 500
	defaultFeePerByte = 3000

	defaultBatchSize = 1000
)

// DatabaseType - leveldb location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// PoolType - pending pool limits
type PoolType struct {
	Expiry string  `gluamapper:"expiry" json:"expiry"`
	Rate   float64 `gluamapper:"rate" json:"rate"`
	Burst  int     `gluamapper:"burst" json:"burst"`
}

// FeesType - fee parameters
//
// the minimum fee of a sized kind is (addon_bytes + size) * fee_per_byte
type FeesType struct {
	Static     uint64 `gluamapper:"static" json:"static"`
	AddonBytes uint64 `gluamapper:"addon_bytes" json:"addon_bytes"`
	FeePerByte uint64 `gluamapper:"fee_per_byte" json:"fee_per_byte"`
}

// BootstrapType - replay parameters
type BootstrapType struct {
	BatchSize int `gluamapper:"batch_size" json:"batch_size"`
}

// GenesisType - initial balance of an account
type GenesisType struct {
	Account string `gluamapper:"account" json:"account"`
	Balance uint64 `gluamapper:"balance" json:"balance"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Chain         string               `gluamapper:"chain" json:"chain"`
	Activated     bool                 `gluamapper:"activated" json:"activated"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Pool          PoolType             `gluamapper:"pool" json:"pool"`
	Fees          FeesType             `gluamapper:"fees" json:"fees"`
	Bootstrap     BootstrapType        `gluamapper:"bootstrap" json:"bootstrap"`
	Genesis       []GenesisType        `gluamapper:"genesis" json:"genesis"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Get - read decode and verify the configuration
func Get(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Bitmark,
		Activated:     true,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultBitmarkDatabase,
		},

		Pool: PoolType{
			Expiry: defaultPoolExpiry,
			Rate:   defaultPoolRate,
			Burst:  defaultPoolBurst,
		},

		Fees: FeesType{
			Static:     defaultStaticFee,
			AddonBytes: defaultAddonBytes,
			FeePerByte: defaultFeePerByte,
		},

		Bootstrap: BootstrapType{
			BatchSize: defaultBatchSize,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	variables := map[string]string{
		"config_directory": dataDirectory,
	}
	if err := ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// Abort if the chain name is not recognised
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default
	if options.Database.Name == defaultBitmarkDatabase {
		switch options.Chain {
		case chain.Bitmark:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		default:
			return nil, fmt.Errorf("Chain: %s no default database setting", options.Chain)
		}
	}

	if _, err := options.PoolExpiry(); nil != err {
		return nil, fmt.Errorf("Pool: expiry: %q error: %s", options.Pool.Expiry, err)
	}
	if options.Bootstrap.BatchSize <= 0 {
		return nil, fmt.Errorf("Bootstrap: batch_size: %d must be positive", options.Bootstrap.BatchSize)
	}
	for i, g := range options.Genesis {
		acc, err := account.AccountFromBase58(g.Account)
		if nil != err {
			return nil, fmt.Errorf("Genesis[%d]: account: %q error: %s", i, g.Account, err)
		}
		if acc.IsTesting() != chain.IsTesting(options.Chain) {
			return nil, fmt.Errorf("Genesis[%d]: account: %q is not for chain: %s", i, g.Account, options.Chain)
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if !util.IsDirectory(options.DataDirectory) {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	options.Database.Directory = util.EnsureAbsolute(options.DataDirectory, options.Database.Directory)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := util.EnsureDirectory(*d); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// PoolExpiry - lifetime of a pending transaction
func (c *Configuration) PoolExpiry() (time.Duration, error) {
	d, err := time.ParseDuration(c.Pool.Expiry)
	if nil != err {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration: %s is not positive", d)
	}
	return d, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/audittracker/account"
	"github.com/bitmark-inc/audittracker/configuration"
)

func writeConfiguration(t *testing.T, text string) string {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "audittrackerd.conf")
	err := os.WriteFile(fileName, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}

func testAccount(t *testing.T) string {
	privateKey, err := account.PrivateKeyFromSeed(true, bytes.Repeat([]byte{0x44}, 32))
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	return privateKey.Account().String()
}

func TestDefaults(t *testing.T) {
	fileName := writeConfiguration(t, `
return {
    data_directory = ".",
}
`)
	dir := filepath.Dir(fileName)

	c, err := configuration.Get(fileName)
	assert.Nil(t, err, "get")

	assert.Equal(t, filepath.Clean(dir), c.DataDirectory, "data directory")
	assert.Equal(t, "bitmark", c.Chain, "chain")
	assert.True(t, c.Activated, "activated")
	assert.Equal(t, filepath.Join(dir, "data"), c.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(dir, "data", "bitmark.leveldb"), c.Database.Name, "database name")
	assert.Equal(t, uint64(5000000000), c.Fees.Static, "static fee")
	assert.Equal(t, uint64(500), c.Fees.AddonBytes, "addon bytes")
	assert.Equal(t, uint64(3000), c.Fees.FeePerByte, "fee per byte")
	assert.Equal(t, 1000, c.Bootstrap.BatchSize, "batch size")
	assert.Equal(t, 0, len(c.Genesis), "genesis")
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "audittrackerd.log", c.Logging.File, "log file")

	expiry, err := c.PoolExpiry()
	assert.Nil(t, err, "expiry")
	assert.Equal(t, 2*time.Hour, expiry, "expiry")

	_, err = os.Stat(c.Logging.Directory)
	assert.Nil(t, err, "log directory not created")
}

func TestFullConfiguration(t *testing.T) {
	acc := testAccount(t)
	fileName := writeConfiguration(t, fmt.Sprintf(`
local M = {}

M.data_directory = config_directory
M.chain = "Testing"
M.activated = false

M.pool = {
    expiry = "30m",
    rate = 5,
    burst = 10,
}

M.fees = {
    static = 1000,
    addon_bytes = 100,
    fee_per_byte = 2,
}

M.bootstrap = {
    batch_size = 7,
}

M.genesis = {
    { account = "%s", balance = 100000000000 },
}

M.logging = {
    size = 4096,
    count = 3,
    levels = {
        DEFAULT = "info",
        ledger = "debug",
    },
}

return M
`, acc))

	c, err := configuration.Get(fileName)
	assert.Nil(t, err, "get")

	assert.Equal(t, "testing", c.Chain, "chain")
	assert.False(t, c.Activated, "activated")
	assert.Equal(t, filepath.Join(c.DataDirectory, "data", "testing.leveldb"), c.Database.Name, "database name")
	assert.Equal(t, 5.0, c.Pool.Rate, "rate")
	assert.Equal(t, 10, c.Pool.Burst, "burst")
	assert.Equal(t, uint64(1000), c.Fees.Static, "static fee")
	assert.Equal(t, uint64(100), c.Fees.AddonBytes, "addon bytes")
	assert.Equal(t, uint64(2), c.Fees.FeePerByte, "fee per byte")
	assert.Equal(t, 7, c.Bootstrap.BatchSize, "batch size")
	assert.Equal(t, []configuration.GenesisType{
		{Account: acc, Balance: 100000000000},
	}, c.Genesis, "genesis")
	assert.Equal(t, 4096, c.Logging.Size, "log size")
	assert.Equal(t, "info", c.Logging.Levels["DEFAULT"], "default level")
	assert.Equal(t, "debug", c.Logging.Levels["ledger"], "ledger level")

	expiry, err := c.PoolExpiry()
	assert.Nil(t, err, "expiry")
	assert.Equal(t, 30*time.Minute, expiry, "expiry")
}

func TestInvalidConfigurations(t *testing.T) {
	acc := testAccount(t)

	items := []string{
		`return { data_directory = ".", chain = "nowhere" }`,
		`return { data_directory = "" }`,
		`return { data_directory = ".", pool = { expiry = "soon" } }`,
		`return { data_directory = ".", bootstrap = { batch_size = 0 } }`,
		`return { data_directory = ".", genesis = { { account = "xyz", balance = 1 } } }`,
		// testing account on the live chain
		fmt.Sprintf(`return { data_directory = ".", genesis = { { account = "%s", balance = 1 } } }`, acc),
		`return { data_directory = ".", logging = { file = "a/b.log" } }`,
		`return 42`,
		`this is not lua`,
	}

	for i, text := range items {
		_, err := configuration.Get(writeConfiguration(t, text))
		assert.NotNil(t, err, "item: %d", i)
	}
}

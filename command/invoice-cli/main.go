// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/audittracker/builder"
	"github.com/bitmark-inc/audittracker/chain"
)

type metadata struct {
	network string
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "invoice-cli"
	app.Usage = "build, sign and decode invoice transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "bitmark",
			Usage: " transactions for `NETWORK` [bitmark|testing|local]",
		},
	}

	signing := []cli.Flag{
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  "*hex private key or seed `KEY`",
			EnvVar: "INVOICE_CLI_KEY",
		},
		cli.Uint64Flag{
			Name:  "nonce",
			Value: 1,
			Usage: " sender nonce `NUMBER`",
		},
		cli.Uint64Flag{
			Name:  "fee",
			Value: builder.StaticFee,
			Usage: " transaction fee `AMOUNT`",
		},
	}

	valueFlags := []cli.Flag{
		cli.Uint64Flag{
			Name:  "amount, a",
			Usage: "*invoice amount in minor units `AMOUNT`",
		},
		cli.StringFlag{
			Name:  "currency, c",
			Value: "",
			Usage: "*currency code `CODE`",
		},
		cli.StringFlag{
			Name:  "date, d",
			Value: "",
			Usage: "*invoice date `RFC3339`",
		},
		cli.StringFlag{
			Name:  "invoice, i",
			Value: "",
			Usage: "*invoice identifier `ID`",
		},
	}

	batchFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "hash, H",
			Value: "",
			Usage: "*batch hash `HEX`",
		},
		cli.StringSliceFlag{
			Name:  "id",
			Usage: "*invoice identifier, repeat for each invoice `ID`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a private key and its account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "added",
			Usage:     "signed InvoiceAdded transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: join(signing, valueFlags, []cli.Flag{
				cli.StringFlag{
					Name:  "customer, C",
					Value: "",
					Usage: "*customer name `NAME`",
				},
			}),
			Action: runAdded,
		},
		{
			Name:      "paid",
			Usage:     "signed InvoicePaid transaction",
			ArgsUsage: "\n   (* = required)",
			Flags:     join(signing, batchFlags),
			Action:    runPaid,
		},
		{
			Name:      "canceled",
			Usage:     "signed InvoiceCanceled transaction",
			ArgsUsage: "\n   (* = required)",
			Flags:     join(signing, batchFlags),
			Action:    runCanceled,
		},
		{
			Name:      "split",
			Usage:     "signed InvoiceSplit transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: join(signing, valueFlags, []cli.Flag{
				cli.StringFlag{
					Name:  "parent, P",
					Value: "",
					Usage: "*parent invoice identifier `ID`",
				},
			}),
			Action: runSplit,
		},
		{
			Name:      "decode",
			Usage:     "decode a hex transaction to JSON",
			ArgsUsage: "HEX\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runDecode,
		},
		{
			Name:      "fee",
			Usage:     "minimum fee of a hex transaction",
			ArgsUsage: "HEX\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "addon-bytes",
					Value: 500,
					Usage: " bytes added to the transaction size `COUNT`",
				},
				cli.Uint64Flag{
					Name:  "fee-per-byte",
					Value: 3000,
					Usage: " fee for each byte `AMOUNT`",
				},
			},
			Action: runFee,
		},
		{
			Name:   "version",
			Usage:  "display invoice-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		network := c.GlobalString("network")
		switch network {
		case "bitmark", "live":
			network = chain.Bitmark
		case "testing", "test":
			network = chain.Testing
		case "local", "regression":
			network = chain.Local
		default:
			return fmt.Errorf("network: %q can only be bitmark/testing/local", network)
		}

		c.App.Metadata["config"] = &metadata{
			network: network,
			testnet: chain.IsTesting(network),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

func join(groups ...[]cli.Flag) []cli.Flag {
	flags := []cli.Flag{}
	for _, g := range groups {
		flags = append(flags, g...)
	}
	return flags
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/formana/formana/account"
	"github.com/formana/formana/configuration"
	"github.com/formana/formana/layout"
	"github.com/formana/formana/util"
)

type metadata struct {
	file    string
	config  *configuration.Configuration // nil for offline use without a file
	program account.Identifier
	version layout.Version
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultConfigurationFile = "formana.conf"

// commands that never contact the ledger
var offlineCommands = map[string]struct{}{
	"form-address":       {},
	"submission-address": {},
	"encode-form":        {},
	"encode-submission":  {},
	"decode-form":        {},
	"decode-submission":  {},
	"decode-instruction": {},
}

func main() {
	defer exitwithstatus.Handler()

	app := newApp()

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "formana-cli"
	app.Usage = "derive, encode and submit form program accounts"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: defaultConfigurationFile,
			Usage: " configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "program, p",
			Value: "",
			Usage: " override the configured program `ID`",
		},
		cli.UintFlag{
			Name:  "schema-version, s",
			Value: 0,
			Usage: " override the configured schema `VERSION` [1|2]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "form-address",
			Usage:     "derive the account address of a form",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "creator, r",
					Value: "",
					Usage: "*creator account `ID`",
				},
				cli.StringFlag{
					Name:  "code, n",
					Value: "",
					Usage: "*form `CODE`",
				},
			},
			Action: runFormAddress,
		},
		{
			Name:      "submission-address",
			Usage:     "derive the account address of a submission",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "author, a",
					Value: "",
					Usage: "*author account `ID`",
				},
				cli.StringFlag{
					Name:  "code, n",
					Value: "",
					Usage: "*form `CODE`",
				},
			},
			Action: runSubmissionAddress,
		},
		{
			Name:      "encode-form",
			Usage:     "encode a create form instruction payload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "code, n",
					Value: "",
					Usage: "*form `CODE`",
				},
				cli.StringFlag{
					Name:  "schema-url, u",
					Value: "",
					Usage: "*schema `URL`",
				},
				cli.StringFlag{
					Name:  "encryption-key, k",
					Value: "",
					Usage: " encryption key `HEX`",
				},
			},
			Action: runEncodeForm,
		},
		{
			Name:      "encode-submission",
			Usage:     "encode a create submission instruction payload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "content-url, u",
					Value: "",
					Usage: "*content `URL`",
				},
			},
			Action: runEncodeSubmission,
		},
		{
			Name:      "decode-form",
			Usage:     "decode form account data",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: "*account data `HEX`",
				},
			},
			Action: runDecodeForm,
		},
		{
			Name:      "decode-submission",
			Usage:     "decode submission account data",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: "*account data `HEX`",
				},
			},
			Action: runDecodeSubmission,
		},
		{
			Name:      "decode-instruction",
			Usage:     "decode an instruction payload",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: "*instruction payload `HEX`",
				},
			},
			Action: runDecodeInstruction,
		},
		{
			Name:      "create-form",
			Usage:     "create a form owned by the configured keypair",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "code, n",
					Value: "",
					Usage: "*form `CODE`",
				},
				cli.StringFlag{
					Name:  "schema-url, u",
					Value: "",
					Usage: "*schema `URL`",
				},
				cli.StringFlag{
					Name:  "encryption-key, k",
					Value: "",
					Usage: " encryption key `HEX`",
				},
			},
			Action: runCreateForm,
		},
		{
			Name:      "create-submission",
			Usage:     "submit content to a form as the configured keypair",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "creator, r",
					Value: "",
					Usage: "*form creator account `ID`",
				},
				cli.StringFlag{
					Name:  "code, n",
					Value: "",
					Usage: "*form `CODE`",
				},
				cli.StringFlag{
					Name:  "content-url, u",
					Value: "",
					Usage: "*content `URL`",
				},
			},
			Action: runCreateSubmission,
		},
		{
			Name:      "form",
			Usage:     "fetch and decode a form account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "creator, r",
					Value: "",
					Usage: " creator account `ID` default is the configured keypair",
				},
				cli.StringFlag{
					Name:  "code, n",
					Value: "",
					Usage: "*form `CODE`",
				},
			},
			Action: runForm,
		},
		{
			Name:      "submission",
			Usage:     "fetch and decode a submission account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "author, a",
					Value: "",
					Usage: " author account `ID` default is the configured keypair",
				},
				cli.StringFlag{
					Name:  "code, n",
					Value: "",
					Usage: "*form `CODE`",
				},
			},
			Action: runSubmission,
		},
		{
			Name:  "version",
			Usage: "display formana-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		m := &metadata{
			file:    c.GlobalString("config"),
			verbose: verbose,
			e:       e,
			w:       w,
		}

		_, offline := offlineCommands[command]
		if offline && "" != c.GlobalString("program") && !util.IsRegularFile(m.file) {
			if verbose {
				fmt.Fprintf(e, "no config file: %q\n", m.file)
			}
			m.version = layout.VersionEncrypted
		} else {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", m.file)
			}

			config, err := configuration.Get(m.file, nil)
			if nil != err {
				return err
			}
			m.config = config
			m.program = config.Program
			m.version = config.Version
		}

		if err := applyOverrides(c, m); nil != err {
			return err
		}

		// only commands using the ledger write a log
		if nil != m.config && !offline {
			if err := os.MkdirAll(m.config.Logging.Directory, 0700); nil != err {
				return err
			}
			if err := logger.Initialise(m.config.Logging); nil != err {
				return err
			}
			m.log = logger.New("main")
			m.log.Infof("%s version: %s  command: %s", app.Name, version, command)
		}

		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if nil != m.log {
			m.log.Info("finished")
			logger.Finalise()
		}
		return nil
	}

	return app
}

func applyOverrides(c *cli.Context, m *metadata) error {
	if s := c.GlobalString("program"); "" != s {
		program, err := account.IdentifierFromBase58(s)
		if nil != err {
			return fmt.Errorf("program: %q: %w", s, err)
		}
		m.program = program
	}
	if n := c.GlobalUint("schema-version"); 0 != n {
		v, err := layout.VersionFromUint(uint64(n))
		if nil != err {
			return fmt.Errorf("schema-version: %d: %w", n, err)
		}
		m.version = v
	}
	return nil
}

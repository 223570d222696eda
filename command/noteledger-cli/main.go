// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/noteledger/command/noteledger-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "noteledger-cli"
	app.Usage = "notes and token ledger client"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	noteIdFlag := cli.StringFlag{
		Name:  "id, n",
		Value: "",
		Usage: "*note `ID`",
	}
	titleFlag := cli.StringFlag{
		Name:  "title, t",
		Value: "",
		Usage: "*note `TITLE`",
	}
	contentFlag := cli.StringFlag{
		Name:  "content, c",
		Value: "",
		Usage: " note `CONTENT`",
	}
	receiverFlag := cli.StringFlag{
		Name:  "receiver, r",
		Value: "",
		Usage: "*identity name or base58 `IDENTITY` to receive tokens",
	}
	amountFlag := cli.StringFlag{
		Name:  "amount, a",
		Value: "",
		Usage: "*decimal `AMOUNT`",
	}
	seedFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "description, d",
			Value: "",
			Usage: "*identity description `STRING`",
		},
		cli.StringFlag{
			Name:  "seed, s",
			Value: "",
			Usage: "+existing ed25519 hex `SEED`",
		},
		cli.BoolFlag{
			Name:  "new, N",
			Usage: "+generate a new seed",
		},
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
		cli.BoolFlag{
			Name:  "anonymous, A",
			Usage: " send requests without credentials",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "initialise noteledger-cli configuration",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*noteledgerd host/IP and port, `HOST:PORT`",
				},
			}, seedFlags...),
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.BoolFlag{
					Name:  "default, D",
					Usage: " make it the default identity",
				},
			}, seedFlags...),
			Action: runAdd,
		},
		{
			Name:   "info",
			Usage:  "display noteledger-cli configuration",
			Action: runInfo,
		},
		{
			Name:   "noteledgerInfo",
			Usage:  "display noteledgerd status",
			Action: runNoteledgerInfo,
		},
		{
			Name:   "whoami",
			Usage:  "display the identity noteledgerd resolves",
			Action: runWhoami,
		},
		{
			Name:   "list",
			Usage:  "list notes of the identity",
			Action: runList,
		},
		{
			Name:      "create",
			Usage:     "create a new note",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{titleFlag, contentFlag},
			Action:    runCreate,
		},
		{
			Name:      "update",
			Usage:     "replace the title and content of a note",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{noteIdFlag, titleFlag, contentFlag},
			Action:    runUpdate,
		},
		{
			Name:      "delete",
			Usage:     "delete a note",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{noteIdFlag},
			Action:    runDelete,
		},
		{
			Name:      "balance",
			Usage:     "display balance of any identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*identity name or base58 `IDENTITY`",
				},
			},
			Action: runBalance,
		},
		{
			Name:   "myBalance",
			Usage:  "display balance of the identity",
			Action: runMyBalance,
		},
		{
			Name:      "transfer",
			Usage:     "transfer tokens to another identity",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{receiverFlag, amountFlag},
			Action:    runTransfer,
		},
		{
			Name:      "mint",
			Usage:     "create tokens for an identity (controllers only)",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{receiverFlag, amountFlag},
			Action:    runMint,
		},
		{
			Name:   "transfers",
			Usage:  "list transfers sent or received by the identity",
			Action: runTransfers,
		},
		{
			Name:  "version",
			Usage: "display noteledger-cli version",
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
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		config, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || !m.save {
			return nil
		}
		if m.verbose {
			fmt.Fprintf(m.e, "updating config file: %s\n", m.file)
		}
		return configuration.Save(m.file, m.config)
	}

	return app
}

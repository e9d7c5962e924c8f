// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver"
	cfg "github.com/dusk-network/base58/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var app = cli.NewApp()

func initLog() {
	log = logrus.WithFields(logrus.Fields{
		"app":    "base58",
		"prefix": "main",
	})
}

func init() {
	initLog()

	app.Action = action
	app.Copyright = "Copyright (c) 2021 DUSK"
	app.Name = "base58"
	app.Usage = "Base58 encoding and decoding utility"
	app.Author = "DUSK 2021"
	app.Version = semver.MustParse(cfg.CoreVersion).String()
	app.Flags = append(app.Flags, CLIFlags...)
	app.Flags = append(app.Flags, GlobalFlags...)
}

func main() {
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

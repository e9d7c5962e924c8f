// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"github.com/urfave/cli"
)

var (
	// DecodeFlag switches the tool from encoding to decoding.
	DecodeFlag = cli.BoolFlag{
		Name:  "decode, d",
		Usage: "decode Base58 input instead of encoding",
	}
	// AlphabetFlag selects the alphabet variant by name.
	AlphabetFlag = cli.StringFlag{
		Name:  "alphabet, a",
		Usage: "alphabet variant to use (bitcoin, ripple, flickr)",
	}
	// InputFlag reads input from a file instead of stdin.
	InputFlag = cli.StringFlag{
		Name:  "input, i",
		Usage: "read input from `FILE` instead of stdin",
	}
	// VerbosityFlag flag to set mode to verbose.
	VerbosityFlag = cli.StringFlag{
		Name:  "verbosity",
		Usage: "verbosity",
	}
	// ConfigFlag flag to use configuration file.
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "base58.toml configuration file",
	}
)

var (
	// CLIFlags flags usable in a CLI context.
	CLIFlags = []cli.Flag{
		DecodeFlag,
		AlphabetFlag,
		InputFlag,
		VerbosityFlag,
	}
	// GlobalFlags flags usable in a global context.
	GlobalFlags = []cli.Flag{
		ConfigFlag,
	}
)

// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/dusk-network/base58/pkg/config"
	"github.com/dusk-network/base58/pkg/crypto/base58"
	"github.com/dusk-network/base58/pkg/util/nativeutils/logging"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var log *logrus.Entry

func action(ctx *cli.Context) error {
	// check arguments
	if arguments := ctx.Args(); len(arguments) > 0 {
		return fmt.Errorf("failed to read command argument: %q", arguments[0])
	}

	// Loading all tool configurations. Fail-fast if critical error occurs
	if err := config.Load(ctx.GlobalString("config")); err != nil {
		log.WithError(err).Fatal("Could not load config")
	}

	// Set up logging. Diagnostics go to stderr so that stdout stays clean
	// for the encoded or decoded payload.
	logging.InitLog(os.Stderr)

	if level := ctx.String("verbosity"); level != "" {
		logging.SetToLevel(level)
	}

	if used := config.Get().UsedConfigFile; used != "" {
		log.WithField("file", used).Info("Loaded config file")
	}

	name := config.Get().General.Alphabet
	if flagName := ctx.String("alphabet"); flagName != "" {
		name = flagName
	}

	alphabet, err := base58.AlphabetFromName(name)
	if err != nil {
		return err
	}

	log.WithField("alphabet", name).Debug("Selected alphabet")

	input, err := readInput(ctx.String("input"))
	if err != nil {
		return err
	}

	if ctx.Bool("decode") {
		decoded, derr := base58.DecodingAlphabet(strings.TrimSpace(string(input)), alphabet)
		if derr != nil {
			return derr
		}

		if _, werr := os.Stdout.Write(decoded); werr != nil {
			return errors.Wrap(werr, "writing output")
		}

		return nil
	}

	fmt.Println(base58.EncodingAlphabet(input, alphabet))

	return nil
}

func readInput(file string) ([]byte, error) {
	if file != "" {
		b, err := ioutil.ReadFile(file)
		if err != nil {
			return nil, errors.Wrap(err, "reading input file")
		}

		return b, nil
	}

	b, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.Wrap(err, "reading stdin")
	}

	return b, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strconv"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/noteledger/amount"
	"github.com/bitmark-inc/noteledger/command/noteledger-cli/configuration"
	"github.com/bitmark-inc/noteledger/identity"
)

// identity name, falling back to the configured default
func checkName(name string, config *configuration.Configuration) (string, error) {
	if "" == name && nil != config {
		name = config.DefaultIdentity
	}
	if "" == name {
		return "", ErrRequiredIdentity
	}
	return name, nil
}

func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}
	return connect, nil
}

func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}
	return description, nil
}

// either a hex seed or a freshly generated one
func checkSeed(seed string, generate bool) ([]byte, error) {
	if generate {
		b := make([]byte, ed25519.SeedSize)
		if _, err := rand.Read(b); nil != err {
			return nil, err
		}
		return b, nil
	}
	if "" == seed {
		return nil, ErrRequiredSeed
	}
	b, err := hex.DecodeString(seed)
	if nil != err {
		return nil, err
	}
	if ed25519.SeedSize != len(b) {
		return nil, configuration.ErrInvalidSeed
	}
	return b, nil
}

// a configured identity name or a base58 identity
func checkRecipient(recipient string, config *configuration.Configuration) (identity.Identity, error) {
	if "" == recipient {
		return nil, ErrRequiredReceiver
	}
	if nil != config {
		if id, err := config.Lookup(recipient); nil == err {
			return identity.FromBase58(id.Identity)
		}
	}
	return identity.FromBase58(recipient)
}

func checkAmount(value string) (amount.Amount, error) {
	if "" == value {
		return amount.Amount{}, ErrRequiredAmount
	}
	return amount.Parse(value)
}

func checkNoteId(id string) (uint64, error) {
	if "" == id {
		return 0, ErrRequiredId
	}
	return strconv.ParseUint(id, 10, 64)
}

func checkTitle(title string) (string, error) {
	if "" == title {
		return "", ErrRequiredTitle
	}
	return title, nil
}

// check if file exists, and whether it is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}

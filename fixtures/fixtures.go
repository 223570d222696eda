// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/noteledger/identity"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// fixed identities for tests
var (
	Alice = identity.Identity{0x0a, 0x11, 0x1c, 0xe0}
	Bob   = identity.Identity{0x0b, 0x0b}
	Carol = identity.Identity{0x0c, 0xa7, 0x01}
)

// SetupTestLogger - log to a scratch directory, critical only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - flush and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// DatabaseName - a database path inside the scratch directory
func DatabaseName(name string) string {
	return filepath.Join(dir, name+".leveldb")
}

// Keypair - deterministic ed25519 key from a single seed byte
func Keypair(seed byte) (ed25519.PublicKey, ed25519.PrivateKey) {
	publicKey, privateKey, err := ed25519.GenerateKey(bytes.NewReader(bytes.Repeat([]byte{seed}, ed25519.SeedSize)))
	if nil != err {
		panic(err)
	}
	return publicKey, privateKey
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

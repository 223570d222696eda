// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc tests
package fixtures

import (
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/noteledger/auth"
	"github.com/bitmark-inc/noteledger/fixtures"
	"github.com/bitmark-inc/noteledger/identity"
)

// LogCategory - logger channel used by tests
const LogCategory = fixtures.LogCategory

// resolved callers for service tests
var (
	Anonymous  = auth.Caller{Identity: identity.Anonymous()}
	Alice      = auth.Caller{Identity: fixtures.Alice}
	Controller = auth.Caller{Identity: fixtures.Carol, Controller: true}
)

var pair struct {
	sync.Once
	certificate string
	key         string
}

// SetupTestLogger - start a critical only logger
func SetupTestLogger() {
	fixtures.SetupTestLogger()
}

// TeardownTestLogger - stop the logger
func TeardownTestLogger() {
	fixtures.TeardownTestLogger()
}

// CertificatePair - a self signed PEM certificate and key for 127.0.0.1
func CertificatePair() (string, string) {
	pair.Do(func() {
		cert, key, err := certgen.NewTLSCertPair("noteledger test", time.Now().Add(24*time.Hour), false, []string{"127.0.0.1"})
		if nil != err {
			panic(err)
		}
		pair.certificate = string(cert)
		pair.key = string(key)
	})
	return pair.certificate, pair.key
}

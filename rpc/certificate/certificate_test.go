// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/rpc/certificate"
	"github.com/bitmark-inc/noteledger/rpc/fixtures"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key := fixtures.CertificatePair()

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
}

func TestGetInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "not a certificate", "not a key")
	assert.NotNil(t, err, "invalid pem")
}

func TestMakeSelfSigned(t *testing.T) {
	dir, err := ioutil.TempDir("", "noteledger-certificate")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	cer := filepath.Join(dir, "rpc.crt")
	key := filepath.Join(dir, "rpc.key")

	err = certificate.MakeSelfSigned("rpc", cer, key, false, nil)
	assert.Nil(t, err, "generate")

	_, err = tls.LoadX509KeyPair(cer, key)
	assert.Nil(t, err, "loadable pair")

	err = certificate.MakeSelfSigned("rpc", cer, key, false, nil)
	assert.Equal(t, fault.ErrCertificateFileExists, err, "no overwrite")

	assert.Nil(t, os.Remove(cer), "remove certificate")
	err = certificate.MakeSelfSigned("rpc", cer, key, false, nil)
	assert.Equal(t, fault.ErrKeyFileExists, err, "key still present")
}

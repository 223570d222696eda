// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noteledger/fixtures"
)

func writeConfiguration(t *testing.T, body string) (string, string) {
	dir, err := ioutil.TempDir("", "noteledgerd")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "noteledgerd.conf")
	if err := ioutil.WriteFile(fileName, []byte(body), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, fileName
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, "return { data_directory = \".\" }\n")
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong getConfiguration")

	assert.Equal(t, filepath.Join(dir, "data", defaultDatabase), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, defaultCertificateFile), options.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, uint64(defaultRPCClients), options.ClientRPC.MaximumConnections, "wrong maximum connections")
	assert.Equal(t, 300, options.CredentialSkew, "wrong skew")
	assert.False(t, options.ReadOnly, "wrong readonly")
	assert.Equal(t, "", options.PidFile, "wrong pid file")

	info, err := os.Stat(filepath.Join(dir, "data"))
	assert.Nil(t, err, "database directory not created")
	assert.True(t, info.IsDir(), "database directory not a directory")
}

func TestGetConfigurationSample(t *testing.T) {
	sample, err := ioutil.ReadFile("noteledgerd.conf.sample")
	assert.Nil(t, err, "read sample")

	dir, fileName := writeConfiguration(t, string(sample))
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong getConfiguration")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, options.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, uint64(50), options.ClientRPC.MaximumConnections, "wrong maximum connections")
	assert.Equal(t, 65536, options.Limits.MaximumContent, "wrong content limit")
	assert.Equal(t, "info", options.Logging.Levels["DEFAULT"], "wrong log level")
}

func TestGetConfigurationControllers(t *testing.T) {
	body := "return { data_directory = \".\", controllers = { \"" + fixtures.Alice.String() + "\" } }\n"
	dir, fileName := writeConfiguration(t, body)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong getConfiguration")

	controllers, err := parseControllers(options.Controllers)
	assert.Nil(t, err, "wrong parseControllers")
	assert.Equal(t, 1, len(controllers), "wrong controller count")
	assert.True(t, fixtures.Alice.Equal(controllers[0]), "wrong controller")
}

func TestGetConfigurationErrors(t *testing.T) {
	bodies := []string{
		"return { }\n",
		"return { data_directory = \"/no/such/directory\" }\n",
		"return { data_directory = \".\", controllers = { \"not-base58-0OIl\" } }\n",
		"return { data_directory = \".\", credential_skew = 0 }\n",
		"return { data_directory = \".\", database = { name = \"sub/dir.leveldb\" } }\n",
	}
	for _, body := range bodies {
		dir, fileName := writeConfiguration(t, body)
		_, err := getConfiguration(fileName)
		assert.NotNil(t, err, "accepted: %s", body)
		os.RemoveAll(dir)
	}
}

func TestLoadCertificates(t *testing.T) {
	dir, fileName := writeConfiguration(t, "return { data_directory = \".\" }\n")
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong getConfiguration")

	err = loadCertificates(options)
	assert.NotNil(t, err, "missing certificate accepted")

	_ = ioutil.WriteFile(options.ClientRPC.Certificate, []byte("CERT"), 0600)
	_ = ioutil.WriteFile(options.ClientRPC.PrivateKey, []byte("KEY"), 0600)

	err = loadCertificates(options)
	assert.Nil(t, err, "wrong loadCertificates")
	assert.Equal(t, "CERT", options.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, "KEY", options.ClientRPC.PrivateKey, "wrong key")
}

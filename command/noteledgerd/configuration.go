// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/auth"
	"github.com/bitmark-inc/noteledger/canister"
	"github.com/bitmark-inc/noteledger/configuration"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/rpc/listeners"
	"github.com/bitmark-inc/noteledger/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "noteledger.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "noteledgerd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB directory
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// LimitsType - note size limits in bytes
type LimitsType struct {
	MaximumTitle   int `gluamapper:"maximum_title" json:"maximum_title"`
	MaximumContent int `gluamapper:"maximum_content" json:"maximum_content"`
}

// Configuration - the daemon configuration file
type Configuration struct {
	DataDirectory  string                       `gluamapper:"data_directory" json:"data_directory"`
	PidFile        string                       `gluamapper:"pidfile" json:"pidfile"`
	ReadOnly       bool                         `gluamapper:"readonly" json:"readonly"`
	Database       DatabaseType                 `gluamapper:"database" json:"database"`
	Controllers    []string                     `gluamapper:"controllers" json:"controllers"`
	CredentialSkew int                          `gluamapper:"credential_skew" json:"credential_skew"` // seconds
	Limits         LimitsType                   `gluamapper:"limits" json:"limits"`
	ClientRPC      listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC       listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Logging        logger.Configuration         `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory:  defaultDataDirectory,
		PidFile:        "", // no PidFile by default
		CredentialSkew: int(auth.DefaultSkew / time.Second),

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Limits: LimitsType{
			MaximumTitle:   canister.DefaultMaximumTitle,
			MaximumContent: canister.DefaultMaximumContent,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// default: share config with normal RPC
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	if options.CredentialSkew <= 0 {
		return nil, fmt.Errorf("credential_skew: %d must be positive", options.CredentialSkew)
	}

	// controllers must all decode
	if _, err := parseControllers(options.Controllers); nil != err {
		return nil, err
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpsRPC.Certificate,
		&options.HttpsRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// parseControllers - decode base58 controller identities
func parseControllers(controllers []string) ([]identity.Identity, error) {
	ids := make([]identity.Identity, 0, len(controllers))
	for _, s := range controllers {
		id, err := identity.FromBase58(s)
		if nil != err {
			return nil, fmt.Errorf("controller: %q  error: %s", s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// loadCertificates - replace the certificate and key file names by their PEM contents
func loadCertificates(options *Configuration) error {
	files := []*string{
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
	}
	if 0 != len(options.HttpsRPC.Listen) {
		files = append(files, &options.HttpsRPC.Certificate, &options.HttpsRPC.PrivateKey)
	}
	for _, f := range files {
		data, err := ioutil.ReadFile(*f)
		if nil != err {
			return err
		}
		*f = string(data)
	}
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"os"
	"sort"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/noteledger/identity"
)

// Identity - one stored key, the seed is only kept encrypted
type Identity struct {
	Description string `json:"description"`
	Identity    string `json:"identity"`   // base58
	PublicKey   string `json:"public_key"` // hex
	Data        string `json:"data"`       // encrypted seed, hex
	Salt        string `json:"salt"`
}

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	Connect         string              `json:"connect"`
	Identities      map[string]Identity `json:"identities"`
}

// InfoIdentity - restricted view of an identity (excludes private items)
type InfoIdentity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Identity    string `json:"identity"`
	PublicKey   string `json:"public_key"`
}

// InfoConfiguration - restricted view of configuration
type InfoConfiguration struct {
	DefaultIdentity string         `json:"default_identity"`
	Connect         string         `json:"connect"`
	Identities      []InfoIdentity `json:"identities"`
}

// GetConfiguration - read and check a configuration file
func GetConfiguration(filename string) (*Configuration, error) {

	b, err := ioutil.ReadFile(filename)
	if nil != err {
		return nil, err
	}

	config := &Configuration{}
	err = json.Unmarshal(b, config)
	if nil != err {
		return nil, err
	}

	if "" == config.Connect {
		return nil, ErrRequiredConnect
	}
	if nil == config.Identities {
		config.Identities = make(map[string]Identity)
	}

	return config, nil
}

// Save - write the configuration, keeping the previous file as a backup
func Save(filename string, config *Configuration) error {

	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	b, err := json.MarshalIndent(config, "", "  ")
	if nil != err {
		return err
	}

	err = ioutil.WriteFile(tempFile, append(b, '\n'), 0600)
	if nil != err {
		return err
	}

	err = os.Remove(previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	err = os.Rename(filename, previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, filename)
}

// AddIdentity - encrypt a seed under a password and store it by name
func (config *Configuration) AddIdentity(name string, description string, seed []byte, password string) error {

	if _, ok := config.Identities[name]; ok {
		return ErrIdentityNameAlreadyExists
	}

	if ed25519.SeedSize != len(seed) {
		return ErrInvalidSeed
	}

	privateKey := ed25519.NewKeyFromSeed(seed)
	publicKey := privateKey.Public().(ed25519.PublicKey)

	id, err := identity.FromPublicKey(publicKey)
	if nil != err {
		return err
	}

	salt, key, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(seed, key)
	if nil != err {
		return err
	}

	if nil == config.Identities {
		config.Identities = make(map[string]Identity)
	}
	config.Identities[name] = Identity{
		Description: description,
		Identity:    id.String(),
		PublicKey:   hex.EncodeToString(publicKey),
		Data:        encrypted,
		Salt:        salt.String(),
	}

	return nil
}

// Lookup - stored identity by name
func (config *Configuration) Lookup(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, ErrIdentityNameNotFound
	}
	return &id, nil
}

// PrivateKey - unlock the named identity with its password
func (config *Configuration) PrivateKey(name string, password string) (ed25519.PrivateKey, error) {

	id, err := config.Lookup(name)
	if nil != err {
		return nil, err
	}

	salt := new(Salt)
	err = salt.UnmarshalText([]byte(id.Salt))
	if nil != err || "" == id.Data {
		return nil, ErrNotPrivateKey
	}

	seed, err := decryptData(id.Data, generateKey(password, salt))
	if nil != err {
		return nil, ErrWrongPassword
	}
	if ed25519.SeedSize != len(seed) {
		return nil, ErrInvalidSeed
	}

	privateKey := ed25519.NewKeyFromSeed(seed)
	if hex.EncodeToString(privateKey.Public().(ed25519.PublicKey)) != id.PublicKey {
		return nil, ErrWrongPassword
	}
	return privateKey, nil
}

// Info - configuration without any private data, identities sorted by name
func (config *Configuration) Info() *InfoConfiguration {

	info := &InfoConfiguration{
		DefaultIdentity: config.DefaultIdentity,
		Connect:         config.Connect,
		Identities:      make([]InfoIdentity, 0, len(config.Identities)),
	}

	for name, id := range config.Identities {
		info.Identities = append(info.Identities, InfoIdentity{
			Name:        name,
			Description: id.Description,
			Identity:    id.Identity,
			PublicKey:   id.PublicKey,
		})
	}

	sort.Slice(info.Identities, func(i, j int) bool {
		return info.Identities[i].Name < info.Identities[j].Name
	})

	return info
}

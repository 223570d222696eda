// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"
)

// argon2i parameters
const (
	hashIterations  = 5
	hashMemory      = 1 << 16 // KiB
	hashParallelism = 4
	hashLength      = 32
)

func hashPassword(password string) (*Salt, *[32]byte, error) {
	salt, err := MakeSalt()
	if nil != err {
		return nil, nil, err
	}

	return salt, generateKey(password, salt), nil
}

func generateKey(password string, salt *Salt) *[32]byte {
	hash := argon2.Key([]byte(password), salt.Bytes(), hashIterations, hashMemory, hashParallelism, hashLength)

	var secretKey [32]byte
	copy(secretKey[:], hash)
	return &secretKey
}

// encrypt some bytes and convert to hex
func encryptData(data []byte, secretKey *[32]byte) (string, error) {

	l := len(data)
	if 0 == l || l >= 16384 {
		return "", ErrCryptoFailed
	}

	// a fresh random nonce for every message
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); nil != err {
		return "", ErrCryptoFailed
	}

	ciphertext := secretbox.Seal(nonce[:], data, &nonce, secretKey)

	return hex.EncodeToString(ciphertext), nil
}

// decrypt a hex string produced by encryptData
func decryptData(ciphertext string, secretKey *[32]byte) ([]byte, error) {

	if "" == ciphertext {
		return nil, ErrCryptoFailed
	}

	encrypted, err := hex.DecodeString(ciphertext)
	if nil != err {
		return nil, err
	}
	if len(encrypted) <= 24 {
		return nil, ErrCryptoFailed
	}

	// nonce is stored in front of the sealed box
	var nonce [24]byte
	copy(nonce[:], encrypted[:24])

	decrypted, ok := secretbox.Open(nil, encrypted[24:], &nonce, secretKey)
	if !ok {
		return nil, ErrCryptoFailed
	}

	return decrypted, nil
}

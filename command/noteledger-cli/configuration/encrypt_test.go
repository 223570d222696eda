// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// encrypt and decrypt one string with various passwords
func TestEncryptDecrypt(t *testing.T) {

	plainText := []byte("The Quick Brown Fox Jumps Over The Lazy Dog")

	passwords := []string{"test", "123", "m,erRGhtk%$33ug62sd al/fajfb.adv"}

	for _, password := range passwords {
		salt, key, err := hashPassword(password)
		assert.Nil(t, err, "hash error")

		encrypted, err := encryptData(plainText, key)
		assert.Nil(t, err, "encrypt error")

		decrypted, err := decryptData(encrypted, generateKey(password, salt))
		assert.Nil(t, err, "decrypt error")
		assert.Equal(t, plainText, decrypted, "wrong plain text")

		_, err = decryptData(encrypted, generateKey(password+"x", salt))
		assert.Equal(t, ErrCryptoFailed, err, "decrypted with wrong password")
	}
}

func TestEncryptRejectsEmpty(t *testing.T) {
	_, key, err := hashPassword("password")
	assert.Nil(t, err, "hash error")

	_, err = encryptData(nil, key)
	assert.Equal(t, ErrCryptoFailed, err, "wrong error")

	_, err = decryptData("", key)
	assert.Equal(t, ErrCryptoFailed, err, "wrong error")

	_, err = decryptData("0011", key)
	assert.Equal(t, ErrCryptoFailed, err, "wrong error")
}

func TestSaltText(t *testing.T) {
	salt, err := MakeSalt()
	assert.Nil(t, err, "MakeSalt error")

	text, err := salt.MarshalText()
	assert.Nil(t, err, "MarshalText error")
	assert.Equal(t, salt.String(), string(text), "wrong text")

	var back Salt
	err = back.UnmarshalText(text)
	assert.Nil(t, err, "UnmarshalText error")
	assert.Equal(t, *salt, back, "wrong salt")

	err = back.UnmarshalText([]byte("0102"))
	assert.Equal(t, ErrInvalidSalt, err, "wrong error")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
)

// IdSize - bytes in an encoded id
const IdSize = 8

// OwnerKey - composite key of an owned record
//
// byte order of the encoded form equals (owner, id) order for keys of
// the same owner, so each owner's records form one contiguous range
type OwnerKey struct {
	Owner identity.Identity
	Id    uint64
}

// EncodeOwnerKey - owner ++ big endian id
func EncodeOwnerKey(owner identity.Identity, id uint64) []byte {
	key := make([]byte, len(owner)+IdSize)
	copy(key, owner)
	binary.BigEndian.PutUint64(key[len(owner):], id)
	return key
}

// DecodeOwnerKey - split the trailing id from the owner
func DecodeOwnerKey(key []byte) (OwnerKey, error) {
	if len(key) <= IdSize {
		return OwnerKey{}, fault.ErrInvalidKeyLength
	}
	n := len(key) - IdSize
	return OwnerKey{
		Owner: append(identity.Identity{}, key[:n]...),
		Id:    binary.BigEndian.Uint64(key[n:]),
	}, nil
}

// OwnerRange - first and last possible keys of one owner
func OwnerRange(owner identity.Identity) (first []byte, last []byte) {
	return EncodeOwnerKey(owner, 0), EncodeOwnerKey(owner, ^uint64(0))
}

// IdentityKey - raw owner bytes
func IdentityKey(owner identity.Identity) []byte {
	return append([]byte{}, owner...)
}

// Uint64Key - big endian id
func Uint64Key(id uint64) []byte {
	key := make([]byte, IdSize)
	binary.BigEndian.PutUint64(key, id)
	return key
}

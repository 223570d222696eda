// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/noteledger/fault"
)

// miscellaneous constants
const (
	// MaximumLength - longest identity accepted
	MaximumLength = 64

	checksumLength = 4

	anonymousCode      = 0x04
	selfAuthenticating = 0x02
)

// Identity - opaque caller identifier
//
// ordering and equality are on the raw bytes
type Identity []byte

// Anonymous - the identity of an unauthenticated caller
func Anonymous() Identity {
	return Identity{anonymousCode}
}

// FromPublicKey - self-authenticating identity of an ed25519 key
func FromPublicKey(publicKey []byte) (Identity, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidPublicKey
	}
	digest := sha3.Sum224(publicKey)
	return append(Identity(digest[:]), selfAuthenticating), nil
}

// FromBytes - copy raw bytes to an identity
func FromBytes(b []byte) (Identity, error) {
	if 0 == len(b) {
		return nil, fault.ErrCannotDecodeIdentity
	}
	if len(b) > MaximumLength {
		return nil, fault.ErrIdentityTooLong
	}
	return append(Identity{}, b...), nil
}

// FromBase58 - decode the checksummed text form
func FromBase58(s string) (Identity, error) {
	b, err := base58.Decode(s)
	if nil != err || len(b) <= checksumLength {
		return nil, fault.ErrCannotDecodeIdentity
	}

	n := len(b) - checksumLength
	checksum := sha3.Sum256(b[:n])
	if !bytes.Equal(checksum[:checksumLength], b[n:]) {
		return nil, fault.ErrCannotDecodeIdentity
	}
	return FromBytes(b[:n])
}

// IsAnonymous - true for the unauthenticated sentinel
func (id Identity) IsAnonymous() bool {
	return 1 == len(id) && anonymousCode == id[0]
}

// Bytes - raw bytes
func (id Identity) Bytes() []byte {
	return []byte(id)
}

// Equal - byte equality
func (id Identity) Equal(other Identity) bool {
	return bytes.Equal(id, other)
}

// Compare - byte order
func (id Identity) Compare(other Identity) int {
	return bytes.Compare(id, other)
}

// String - base58 of the bytes followed by a short checksum
func (id Identity) String() string {
	checksum := sha3.Sum256(id)
	buffer := make([]byte, 0, len(id)+checksumLength)
	buffer = append(buffer, id...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert to the base58 JSON form
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert from the base58 JSON form
func (id *Identity) UnmarshalText(s []byte) error {
	i, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*id = i
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auth - resolve request credentials to a caller
//
// A request is either unsigned (the anonymous caller) or carries an
// ed25519 public key, a unix timestamp, a random nonce and a signature
// over:
//
//   method ++ "|" ++ timestamp ++ "|" ++ nonce ++ "|" ++ hex(digest)
//
// where digest is sha3-256 over the call arguments, each one prefixed
// by its varint length. A signature is accepted once.
package auth

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/util"
)

// DefaultSkew - allowed clock difference between client and server
const DefaultSkew = 5 * time.Minute

// Credentials - optional signature block carried by every request
type Credentials struct {
	PublicKey []byte `json:"publicKey,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
	Nonce     uint64 `json:"nonce,string,omitempty"`
	Signature []byte `json:"signature,omitempty"`
}

// Caller - the resolved identity of a request
type Caller struct {
	Identity   identity.Identity
	Controller bool
}

// Gate - credential checker plus the controller set
type Gate struct {
	sync.RWMutex
	log         *logger.L
	skew        time.Duration
	now         func() time.Time
	controllers map[string]struct{}
	seen        *cache.Cache // signatures already accepted
}

// NewGate - create a gate with an initial controller set
func NewGate(skew time.Duration, controllers []identity.Identity) *Gate {
	g := &Gate{
		log:  logger.New("auth"),
		skew: skew,
		now:  time.Now,
		seen: cache.New(2*skew, skew),
	}
	g.SetControllers(controllers)
	return g
}

// SetClock - replace the time source
func (g *Gate) SetClock(now func() time.Time) {
	g.Lock()
	g.now = now
	g.Unlock()
}

// SetControllers - replace the controller set
func (g *Gate) SetControllers(controllers []identity.Identity) {
	m := make(map[string]struct{}, len(controllers))
	for _, c := range controllers {
		m[string(c)] = struct{}{}
	}

	g.Lock()
	g.controllers = m
	g.Unlock()

	g.log.Infof("controllers: %d", len(m))
}

// IsController - membership test
func (g *Gate) IsController(id identity.Identity) bool {
	g.RLock()
	defer g.RUnlock()
	_, ok := g.controllers[string(id)]
	return ok
}

// Resolve - verify credentials for a method and its arguments
//
// no credentials at all is the anonymous caller, never an error
func (g *Gate) Resolve(method string, credentials Credentials, arguments ...[]byte) (Caller, error) {
	if 0 == len(credentials.PublicKey) && 0 == len(credentials.Signature) {
		return Caller{Identity: identity.Anonymous()}, nil
	}

	id, err := identity.FromPublicKey(credentials.PublicKey)
	if nil != err {
		return Caller{}, err
	}

	if ed25519.SignatureSize != len(credentials.Signature) {
		return Caller{}, fault.ErrInvalidSignature
	}
	if !ed25519.Verify(credentials.PublicKey, SigningMessage(method, credentials.Timestamp, credentials.Nonce, arguments...), credentials.Signature) {
		g.log.Debugf("resolve: %s  bad signature from: %s", method, id)
		return Caller{}, fault.ErrInvalidSignature
	}

	g.RLock()
	now := g.now()
	g.RUnlock()

	signed := time.Unix(credentials.Timestamp, 0)
	if signed.Before(now.Add(-g.skew)) || signed.After(now.Add(g.skew)) {
		g.log.Debugf("resolve: %s  expired credentials from: %s", method, id)
		return Caller{}, fault.ErrExpiredCredentials
	}

	// anything older than the window is already rejected above
	if err := g.seen.Add(string(credentials.Signature), struct{}{}, 2*g.skew); nil != err {
		g.log.Warnf("resolve: %s  replayed credentials from: %s", method, id)
		return Caller{}, fault.ErrReplayedCredentials
	}

	return Caller{
		Identity:   id,
		Controller: g.IsController(id),
	}, nil
}

// SigningMessage - the bytes covered by the signature
func SigningMessage(method string, timestamp int64, nonce uint64, arguments ...[]byte) []byte {
	digest := ArgumentDigest(arguments...)
	return []byte(method +
		"|" + strconv.FormatInt(timestamp, 10) +
		"|" + strconv.FormatUint(nonce, 10) +
		"|" + hex.EncodeToString(digest[:]))
}

// ArgumentDigest - sha3-256 over length prefixed arguments
func ArgumentDigest(arguments ...[]byte) [32]byte {
	buffer := make([]byte, 0, 64)
	for _, a := range arguments {
		buffer = util.AppendBytes(buffer, a)
	}
	return sha3.Sum256(buffer)
}

// Uint64 - argument form of an integer
func Uint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// Sign - produce credentials for a method call with its arguments
func Sign(privateKey ed25519.PrivateKey, method string, timestamp time.Time, arguments ...[]byte) Credentials {
	var n [8]byte
	if _, err := rand.Read(n[:]); nil != err {
		fault.Panicf("auth: random nonce: %s", err)
	}
	nonce := binary.BigEndian.Uint64(n[:])

	ts := timestamp.Unix()
	return Credentials{
		PublicKey: []byte(privateKey.Public().(ed25519.PublicKey)),
		Timestamp: ts,
		Nonce:     nonce,
		Signature: ed25519.Sign(privateKey, SigningMessage(method, ts, nonce, arguments...)),
	}
}

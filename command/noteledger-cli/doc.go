// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// noteledger-cli - command line client for noteledgerd
//
// the configuration is kept in:
//   ${XDG_CONFIG_HOME}/noteledger-cli/noteledger-cli.json
//
// identities are ed25519 seeds encrypted with a password, every
// request that needs a caller is signed with the selected identity
//
// typical use:
//   noteledger-cli --identity=me setup --connect=127.0.0.1:2130 --description="my key" --new
//   noteledger-cli create --title=groceries --content=milk
//   noteledger-cli list
//   noteledger-cli transfer --receiver=<identity> --amount=10
package main

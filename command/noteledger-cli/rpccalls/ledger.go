// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/noteledger/amount"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/rpc/token"
)

// TransferData - the parameters for a transfer or mint request
type TransferData struct {
	To     identity.Identity
	Amount amount.Amount
}

// GetBalance - balance of any identity
func (client *Client) GetBalance(owner identity.Identity) (*token.BalanceReply, error) {

	args := token.BalanceArguments{
		Owner: owner,
	}

	client.printJson("Balance Request", args)

	reply := &token.BalanceReply{}
	err := client.client.Call("Ledger.Balance", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Balance Reply", reply)

	return reply, nil
}

// GetMyBalance - balance of the signing identity
func (client *Client) GetMyBalance() (*token.BalanceReply, error) {

	args := token.MyBalanceArguments{
		Credentials: client.credentials("Ledger.MyBalance"),
	}

	client.printJson("MyBalance Request", args)

	reply := &token.BalanceReply{}
	err := client.client.Call("Ledger.MyBalance", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("MyBalance Reply", reply)

	return reply, nil
}

// Transfer - move tokens from the signing identity
func (client *Client) Transfer(data *TransferData) (*token.TransferReply, error) {
	return client.transfer("Ledger.Transfer", data)
}

// Mint - create tokens, the signing identity must be a controller
func (client *Client) Mint(data *TransferData) (*token.TransferReply, error) {
	return client.transfer("Ledger.Mint", data)
}

func (client *Client) transfer(method string, data *TransferData) (*token.TransferReply, error) {

	args := token.TransferArguments{
		To:     data.To,
		Amount: data.Amount,
	}
	args.Credentials = client.credentials(method, args.SignedFields()...)

	client.printJson(method+" Request", args)

	reply := &token.TransferReply{}
	err := client.client.Call(method, args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson(method+" Reply", reply)

	return reply, nil
}

// GetTransfers - transfer events involving the signing identity
func (client *Client) GetTransfers() (*token.TransfersReply, error) {

	args := token.TransfersArguments{
		Credentials: client.credentials("Ledger.Transfers"),
	}

	client.printJson("Transfers Request", args)

	reply := &token.TransfersReply{}
	err := client.client.Call("Ledger.Transfers", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Transfers Reply", reply)

	return reply, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/bitmark-inc/noteledger/amount"
	"github.com/bitmark-inc/noteledger/counter"
	"github.com/bitmark-inc/noteledger/fault"
	"github.com/bitmark-inc/noteledger/fixtures"
	"github.com/bitmark-inc/noteledger/identity"
	"github.com/bitmark-inc/noteledger/ledger"
	"github.com/bitmark-inc/noteledger/storage"
)

var controller = identity.Identity{0xc0, 0x47}

func setupTestLedger(t *testing.T) (*storage.Database, *ledger.Ledger) {
	fixtures.SetupTestLogger()
	db, err := storage.Open(fixtures.DatabaseName("ledger"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	l := ledger.New(db.Pool.Balances, db.Pool.Transfers, counter.NewPersistent(db.Pool.TransferNextId))
	return db, l
}

func teardownTestLedger(db *storage.Database) {
	db.Close()
	fixtures.TeardownTestLogger()
}

// run f in a transaction; commit on success, abort on error
func run(t *testing.T, db *storage.Database, f func(storage.Transaction) error) error {
	trx, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return nil
}

func mint(t *testing.T, db *storage.Database, l *ledger.Ledger, to identity.Identity, value uint64) {
	err := run(t, db, func(trx storage.Transaction) error {
		return l.MintTo(trx, controller, true, to, amount.FromUint64(value), 1000)
	})
	assert.Nil(t, err, "mint")
}

func balance(t *testing.T, l *ledger.Ledger, id identity.Identity) string {
	b, err := l.BalanceOf(id)
	assert.Nil(t, err, "balance")
	return b.String()
}

func TestTransferWorkedExample(t *testing.T) {
	db, l := setupTestLedger(t)
	defer teardownTestLedger(db)

	mint(t, db, l, fixtures.Alice, 100)

	err := run(t, db, func(trx storage.Transaction) error {
		return l.Transfer(trx, fixtures.Alice, fixtures.Bob, amount.FromUint64(30), 2000)
	})
	assert.Nil(t, err, "transfer")

	assert.Equal(t, "70", balance(t, l, fixtures.Alice), "alice")
	assert.Equal(t, "30", balance(t, l, fixtures.Bob), "bob")

	events, err := l.TransfersFor(fixtures.Bob)
	assert.Nil(t, err, "bob transfers")
	assert.Equal(t, 1, len(events), "bob sees one event")
	assert.Equal(t, uint64(2), events[0].Id, "second event id")
	assert.True(t, fixtures.Alice.Equal(events[0].From), "from")
	assert.True(t, fixtures.Bob.Equal(events[0].To), "to")
	assert.Equal(t, "30", events[0].Amount.String(), "amount")
	assert.Equal(t, uint64(2000), events[0].Timestamp, "timestamp")

	events, err = l.TransfersFor(fixtures.Alice)
	assert.Nil(t, err, "alice transfers")
	assert.Equal(t, 2, len(events), "mint and transfer")
	assert.Equal(t, uint64(1), events[0].Id, "ascending")
}

// {A:100, B:0}: A->B 40 succeeds, then B->A 100 fails and changes nothing
func TestTransferThenOverdraw(t *testing.T) {
	db, l := setupTestLedger(t)
	defer teardownTestLedger(db)

	mint(t, db, l, fixtures.Alice, 100)
	assert.Equal(t, "100", balance(t, l, fixtures.Alice), "alice start")
	assert.Equal(t, "0", balance(t, l, fixtures.Bob), "bob start")

	err := run(t, db, func(trx storage.Transaction) error {
		return l.Transfer(trx, fixtures.Alice, fixtures.Bob, amount.FromUint64(40), 2000)
	})
	assert.Nil(t, err, "transfer 40")
	assert.Equal(t, "60", balance(t, l, fixtures.Alice), "alice after 40")
	assert.Equal(t, "40", balance(t, l, fixtures.Bob), "bob after 40")

	before, err := l.TransfersFor(fixtures.Bob)
	assert.Nil(t, err, "bob events")
	assert.Equal(t, 1, len(before), "one event for bob")

	err = run(t, db, func(trx storage.Transaction) error {
		return l.Transfer(trx, fixtures.Bob, fixtures.Alice, amount.FromUint64(100), 3000)
	})
	assert.Equal(t, fault.ErrInsufficientBalance, err, "overdraw")
	assert.Equal(t, "60", balance(t, l, fixtures.Alice), "alice unchanged")
	assert.Equal(t, "40", balance(t, l, fixtures.Bob), "bob unchanged")
	assert.Equal(t, uint64(3), l.NextTransferId(), "no event appended")

	after, err := l.TransfersFor(fixtures.Bob)
	assert.Nil(t, err, "bob events")
	assert.Equal(t, before, after, "log unchanged")
}

func TestTransfersForUnrelated(t *testing.T) {
	db, l := setupTestLedger(t)
	defer teardownTestLedger(db)

	mint(t, db, l, fixtures.Carol, 5)
	mint(t, db, l, fixtures.Alice, 50)

	carol, err := l.TransfersFor(fixtures.Carol)
	assert.Nil(t, err, "carol events")
	assert.Equal(t, 1, len(carol), "carol mint")

	for i := uint64(1); i <= 3; i += 1 {
		err := run(t, db, func(trx storage.Transaction) error {
			return l.Transfer(trx, fixtures.Alice, fixtures.Bob, amount.FromUint64(i), 2000+i)
		})
		assert.Nil(t, err, "alice to bob")
	}

	again, err := l.TransfersFor(fixtures.Carol)
	assert.Nil(t, err, "carol events")
	assert.Equal(t, carol, again, "unrelated transfers not visible to carol")

	bob, err := l.TransfersFor(fixtures.Bob)
	assert.Nil(t, err, "bob events")
	assert.Equal(t, 3, len(bob), "bob received three")
}

func TestTransferInsufficient(t *testing.T) {
	db, l := setupTestLedger(t)
	defer teardownTestLedger(db)

	mint(t, db, l, fixtures.Alice, 70)

	err := run(t, db, func(trx storage.Transaction) error {
		return l.Transfer(trx, fixtures.Alice, fixtures.Bob, amount.FromUint64(71), 2000)
	})
	assert.Equal(t, fault.ErrInsufficientBalance, err, "insufficient")

	assert.Equal(t, "70", balance(t, l, fixtures.Alice), "alice unchanged")
	assert.Equal(t, "0", balance(t, l, fixtures.Bob), "bob unchanged")
	assert.Equal(t, uint64(2), l.NextTransferId(), "no event appended")
}

func TestTransferNoOps(t *testing.T) {
	db, l := setupTestLedger(t)
	defer teardownTestLedger(db)

	mint(t, db, l, fixtures.Alice, 10)

	err := run(t, db, func(trx storage.Transaction) error {
		return l.Transfer(trx, fixtures.Alice, fixtures.Bob, amount.Zero, 2000)
	})
	assert.Nil(t, err, "zero amount")

	err = run(t, db, func(trx storage.Transaction) error {
		return l.Transfer(trx, fixtures.Alice, fixtures.Alice, amount.FromUint64(1000), 2000)
	})
	assert.Nil(t, err, "self transfer, even beyond balance")

	err = run(t, db, func(trx storage.Transaction) error {
		return l.Transfer(trx, fixtures.Carol, fixtures.Bob, amount.Zero, 2000)
	})
	assert.Nil(t, err, "zero from empty account")

	assert.Equal(t, "10", balance(t, l, fixtures.Alice), "alice")
	assert.Equal(t, "0", balance(t, l, fixtures.Bob), "bob")
	assert.Equal(t, uint64(2), l.NextTransferId(), "only the mint event")
}

func TestTransferAnonymous(t *testing.T) {
	db, l := setupTestLedger(t)
	defer teardownTestLedger(db)

	err := run(t, db, func(trx storage.Transaction) error {
		return l.Transfer(trx, identity.Anonymous(), fixtures.Bob, amount.Zero, 2000)
	})
	assert.Equal(t, fault.ErrUnauthenticated, err, "checked before no-op")
}

func TestTransferOverflow(t *testing.T) {
	db, l := setupTestLedger(t)
	defer teardownTestLedger(db)

	err := run(t, db, func(trx storage.Transaction) error {
		return l.MintTo(trx, controller, true, fixtures.Bob, amount.Max, 1000)
	})
	assert.Nil(t, err, "mint max")
	mint(t, db, l, fixtures.Alice, 5)

	err = run(t, db, func(trx storage.Transaction) error {
		return l.Transfer(trx, fixtures.Alice, fixtures.Bob, amount.FromUint64(1), 2000)
	})
	assert.Equal(t, fault.ErrBalanceOverflow, err, "transfer overflow")

	err = run(t, db, func(trx storage.Transaction) error {
		return l.MintTo(trx, controller, true, fixtures.Bob, amount.FromUint64(1), 3000)
	})
	assert.Equal(t, fault.ErrBalanceOverflow, err, "mint overflow")

	assert.Equal(t, "5", balance(t, l, fixtures.Alice), "alice unchanged")
	assert.Equal(t, amount.Max.String(), balance(t, l, fixtures.Bob), "bob unchanged")
}

func TestMint(t *testing.T) {
	db, l := setupTestLedger(t)
	defer teardownTestLedger(db)

	err := run(t, db, func(trx storage.Transaction) error {
		return l.MintTo(trx, fixtures.Carol, false, fixtures.Carol, amount.FromUint64(50), 1000)
	})
	assert.Equal(t, fault.ErrUnauthorized, err, "non controller")
	assert.Equal(t, "0", balance(t, l, fixtures.Carol), "carol unchanged")

	err = run(t, db, func(trx storage.Transaction) error {
		return l.MintTo(trx, controller, true, fixtures.Carol, amount.Zero, 1000)
	})
	assert.Nil(t, err, "zero mint")
	assert.Equal(t, uint64(1), l.NextTransferId(), "zero mint has no event")

	mint(t, db, l, fixtures.Carol, 50)
	assert.Equal(t, "50", balance(t, l, fixtures.Carol), "carol credited")
	assert.Equal(t, "0", balance(t, l, controller), "controller not debited")

	events, err := l.TransfersFor(controller)
	assert.Nil(t, err, "controller transfers")
	assert.Equal(t, 1, len(events), "mint event")
	assert.True(t, controller.Equal(events[0].From), "from is the controller")
}

func TestTransferConservation(t *testing.T) {
	accounts := []identity.Identity{fixtures.Alice, fixtures.Bob, fixtures.Carol}

	rapid.Check(t, func(rt *rapid.T) {
		db, l := setupTestLedger(t)
		defer teardownTestLedger(db)

		total := uint64(0)
		for _, a := range accounts {
			v := rapid.Uint64Range(0, 1000).Draw(rt, "initial")
			total += v
			if v > 0 {
				mint(t, db, l, a, v)
			}
		}
		minted := l.NextTransferId() - 1

		steps := rapid.IntRange(1, 20).Draw(rt, "steps")
		applied := uint64(0)
		for i := 0; i < steps; i += 1 {
			from := rapid.SampledFrom(accounts).Draw(rt, "from")
			to := rapid.SampledFrom(accounts).Draw(rt, "to")
			v := rapid.Uint64Range(0, 1500).Draw(rt, "amount")

			before, _ := l.BalanceOf(from)
			err := run(t, db, func(trx storage.Transaction) error {
				return l.Transfer(trx, from, to, amount.FromUint64(v), uint64(i))
			})
			switch {
			case 0 == v || from.Equal(to):
				if nil != err {
					rt.Fatalf("no-op transfer failed: %s", err)
				}
			case before.Cmp(amount.FromUint64(v)) < 0:
				if fault.ErrInsufficientBalance != err {
					rt.Fatalf("expected insufficient balance, got: %v", err)
				}
			default:
				if nil != err {
					rt.Fatalf("transfer failed: %s", err)
				}
				applied += 1
			}
		}

		sum := amount.Zero
		for _, a := range accounts {
			b, err := l.BalanceOf(a)
			if nil != err {
				rt.Fatalf("balance error: %s", err)
			}
			sum, _ = sum.Add(b)
		}
		if 0 != sum.Cmp(amount.FromUint64(total)) {
			rt.Fatalf("sum of balances: %s  expected: %d", sum, total)
		}
		if l.NextTransferId() != minted+applied+1 {
			rt.Fatalf("events: %d  expected: %d", l.NextTransferId()-1, minted+applied)
		}
	})
}

func TestScanTransfers(t *testing.T) {
	db, l := setupTestLedger(t)
	defer teardownTestLedger(db)

	mint(t, db, l, fixtures.Alice, 30)
	err := run(t, db, func(trx storage.Transaction) error {
		return l.Transfer(trx, fixtures.Alice, fixtures.Bob, amount.FromUint64(10), 2000)
	})
	assert.Nil(t, err, "transfer")

	ids := []uint64{}
	err = l.ScanTransfers(func(event ledger.TransferEvent) error {
		ids = append(ids, event.Id)
		return nil
	})
	assert.Nil(t, err, "scan")
	assert.Equal(t, []uint64{1, 2}, ids, "event ids")
}

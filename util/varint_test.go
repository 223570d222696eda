// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/noteledger/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		if result := util.ToVarint64(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToVarint64(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}

		b := append(append([]byte{}, item.encoded...), 0xff, 0x97)
		value, count := util.FromVarint64(b)
		if value != item.value || count != len(item.encoded) {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: %d, %d", i, b, value, count, item.value, len(item.encoded))
		}
	}
}

func TestFromVarint64Truncated(t *testing.T) {
	for i, b := range [][]byte{{}, {0x80}, {0xff, 0xff}} {
		value, count := util.FromVarint64(b)
		if 0 != value || 0 != count {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: 0, 0", i, b, value, count)
		}
	}
}

func TestAppendSplitBytes(t *testing.T) {
	buffer := util.AppendBytes(nil, []byte("title"))
	buffer = util.AppendBytes(buffer, []byte{})
	buffer = util.AppendBytes(buffer, bytes.Repeat([]byte{'x'}, 300))

	first, rest, ok := util.SplitBytes(buffer)
	assert.True(t, ok, "first field")
	assert.Equal(t, []byte("title"), first, "first value")

	second, rest, ok := util.SplitBytes(rest)
	assert.True(t, ok, "second field")
	assert.Equal(t, 0, len(second), "second value")

	third, rest, ok := util.SplitBytes(rest)
	assert.True(t, ok, "third field")
	assert.Equal(t, 300, len(third), "third length")
	assert.Equal(t, 0, len(rest), "remainder")
}

func TestSplitBytesOverrun(t *testing.T) {
	_, _, ok := util.SplitBytes([]byte{0x05, 'a', 'b'})
	assert.False(t, ok, "length past end")

	_, _, ok = util.SplitBytes([]byte{0x80})
	assert.False(t, ok, "truncated prefix")
}

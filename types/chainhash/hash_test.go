// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashFuncs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "empty",
			in:   "",
			out:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name: "abc",
			in:   "abc",
			out:  "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.out, hex.EncodeToString(HashB([]byte(tt.in))))
			assert.Equal(t, tt.out, HashH([]byte(tt.in)).String())
		})
	}
}

func TestHashConcat(t *testing.T) {
	left := HashH([]byte("left"))
	right := HashH([]byte("right"))

	want := sha256.Sum256(append(left.CloneBytes(), right[:]...))
	assert.Equal(t, Hash(want), HashConcat(left[:], right[:]))

	// Inputs longer than a pair of hashes go through the streaming path.
	long := make([]byte, 100)
	for i := range long {
		long[i] = byte(i)
	}
	want = sha256.Sum256(append(append([]byte{}, long...), right[:]...))
	assert.Equal(t, Hash(want), HashConcat(long, right[:]))
}

func TestNewHashFromStr(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Hash
		wantErr error
	}{
		{
			name: "zero",
			in:   "",
			want: ZeroHash,
		},
		{
			name: "prefixed",
			in:   "0x0102",
			want: Hash{0x01, 0x02},
		},
		{
			name: "odd length",
			in:   "123",
			want: Hash{0x12, 0x30},
		},
		{
			name: "full",
			in:   "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
			want: Hash{
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
				0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
				0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17,
				0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f,
			},
		},
		{
			name:    "too long",
			in:      "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20",
			wantErr: ErrHashStrSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewHashFromStr(tt.in)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}

	_, err := NewHashFromStr("zz")
	assert.Error(t, err)
}

func TestHashMethods(t *testing.T) {
	h := HashH([]byte("jax"))

	clone, err := NewHash(h.CloneBytes())
	require.NoError(t, err)
	assert.True(t, clone.IsEqual(&h))
	assert.False(t, clone.IsEqual(nil))
	assert.True(t, (*Hash)(nil).IsEqual(nil))

	_, err = NewHash([]byte{1, 2, 3})
	assert.Error(t, err)

	assert.True(t, ZeroHash.IsZero())
	assert.False(t, h.IsZero())

	text, err := h.MarshalText()
	require.NoError(t, err)

	var decoded Hash
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, h, decoded)
}

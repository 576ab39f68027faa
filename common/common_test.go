// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0a0b", ToHex([]byte{10, 11}))

	b, err := FromHex("0x0a0b")
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 11}, b)

	b, err = FromHex("a0b")
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 11}, b)

	_, err = FromHex("0xzz")
	assert.Error(t, err)
}

func TestHash(t *testing.T) {
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hex.EncodeToString(Sha256([]byte("abc"))))
	// sha256(sha256("abc"))
	sum := Sha2Sum([]byte("abc"))
	assert.Equal(t, "4f8b42c22dd3729b519ba6f68d2da7cc5b2d606d05daed5ad5128cc03e6c6358", hex.EncodeToString(sum[:]))
	// ripemd160(sha256(""))
	rim := Rimp160AfterSha256(nil)
	assert.Equal(t, "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb", hex.EncodeToString(rim[:]))
}

func TestCopyBytes(t *testing.T) {
	assert.Nil(t, CopyBytes(nil))
	src := []byte{1, 2, 3}
	dst := CopyBytes(src)
	dst[0] = 9
	assert.Equal(t, byte(1), src[0])
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds HMAC-SHA256 instances keyed with the integrity key.
// It must be initialised with InitHasherPool before Hash is called.
var hasherPool sync.Pool

// InitHasherPool configures the pool used by Hash. Every hasher in the pool
// is keyed with hashKey.
//
//	utils.InitHasherPool(cfg.App.HashKey)
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes the HMAC-SHA256 of data with a pooled hasher. The gateway
// client sends it in the HashSHA256 header and the simulator recomputes it
// to detect tampered bodies.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashHex is Hash encoded as lowercase hex.
func HashHex(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// HashString computes a one-off HMAC-SHA256 of data under hashKey without
// touching the pool and returns it hex encoded.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}

// EqualHashHex compares a hex digest received from a peer with the digest of
// data in constant time.
func EqualHashHex(data []byte, received string) bool {
	got, err := hex.DecodeString(received)
	if err != nil {
		return false
	}
	return hmac.Equal(got, Hash(data))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"
)

const testHashKey = "test-secret-key"

func TestInitHasherPoolAndHash(t *testing.T) {
	InitHasherPool(testHashKey)

	data := []byte(`{"spender":{"owner":"2vxsx-fae"},"amount":"100"}`)

	sum1 := Hash(data)
	sum2 := Hash(data)
	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write(data)
	if expected := h.Sum(nil); !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestHashHexMatchesHashString(t *testing.T) {
	InitHasherPool(testHashKey)

	data := "approve body"
	if got, want := HashHex([]byte(data)), HashString(data, testHashKey); got != want {
		t.Fatalf("pooled and one-off digests differ: %s vs %s", got, want)
	}
}

func TestHash_DifferentKeys(t *testing.T) {
	if HashString("x", "k1") == HashString("x", "k2") {
		t.Fatal("different keys must produce different digests")
	}
}

func TestEqualHashHex(t *testing.T) {
	InitHasherPool(testHashKey)
	body := []byte("payload")

	if !EqualHashHex(body, hex.EncodeToString(Hash(body))) {
		t.Error("expected matching digest to be accepted")
	}
	if EqualHashHex([]byte("tampered"), hex.EncodeToString(Hash(body))) {
		t.Error("expected tampered body to be rejected")
	}
	if EqualHashHex(body, "not-hex") {
		t.Error("expected malformed digest to be rejected")
	}
}

func TestHash_Concurrent(t *testing.T) {
	InitHasherPool(testHashKey)
	want := Hash([]byte("same"))

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !bytes.Equal(Hash([]byte("same")), want) {
				t.Error("concurrent hash mismatch")
			}
		}()
	}
	wg.Wait()
}

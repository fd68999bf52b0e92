// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Nat is an unsigned ledger quantity. On the wire it is a JSON string of
// decimal digits so that values above 2^53 survive JavaScript gateways.
// Plain JSON numbers are accepted on input.
type Nat uint64

// NatPtr returns a pointer to n converted to [Nat].
func NatPtr(n uint64) *Nat {
	v := Nat(n)
	return &v
}

// Uint64 returns n as uint64.
func (n Nat) Uint64() uint64 {
	return uint64(n)
}

// String returns the decimal representation of n.
func (n Nat) String() string {
	return strconv.FormatUint(uint64(n), 10)
}

// MarshalJSON implements [json.Marshaler].
func (n Nat) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// UnmarshalJSON implements [json.Unmarshaler].
func (n *Nat) UnmarshalJSON(b []byte) error {
	var s string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	} else {
		s = string(b)
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid nat %q: %w", s, err)
	}
	*n = Nat(v)
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash/crc32"
)

const subaccountLen = 32

var accountIDDomain = []byte("\x0Aaccount-id")

// DeriveAccountID returns the hex account id of the default subaccount of
// principalID.
func DeriveAccountID(principalID string) (string, error) {
	return DeriveSubaccountID(principalID, nil)
}

// DeriveSubaccountID returns the hex account id of (principalID, subaccount).
// A nil subaccount means 32 zero bytes.
func DeriveSubaccountID(principalID string, subaccount []byte) (string, error) {
	if subaccount != nil && len(subaccount) != subaccountLen {
		return "", fmt.Errorf("%w: subaccount must be %d bytes", ErrInvalidPrincipal, subaccountLen)
	}

	raw, err := DecodePrincipal(principalID)
	if err != nil {
		return "", err
	}

	return accountIDOf(raw, subaccount), nil
}

func accountIDOf(principal, subaccount []byte) string {
	if subaccount == nil {
		subaccount = make([]byte, subaccountLen)
	}

	h := sha256.New224()
	h.Write(accountIDDomain)
	h.Write(principal)
	h.Write(subaccount)
	sum := h.Sum(nil)

	out := make([]byte, 4, 4+len(sum))
	binary.BigEndian.PutUint32(out, crc32.ChecksumIEEE(sum))
	out = append(out, sum...)

	return hex.EncodeToString(out)
}

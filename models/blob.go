// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedBlob is the only at-rest representation of a secret: AES-256-GCM
// ciphertext together with the IV and the PBKDF2 salt needed to open it.
// Neither IV nor salt is secret. Both are drawn fresh for every encryption.
type EncryptedBlob struct {
	IV         []byte `json:"iv" cbor:"iv"`
	Salt       []byte `json:"salt" cbor:"salt"`
	Ciphertext []byte `json:"data" cbor:"data"`
}

// Clone returns a deep copy of the blob.
func (b *EncryptedBlob) Clone() *EncryptedBlob {
	if b == nil {
		return nil
	}

	return &EncryptedBlob{
		IV:         append([]byte(nil), b.IV...),
		Salt:       append([]byte(nil), b.Salt...),
		Ciphertext: append([]byte(nil), b.Ciphertext...),
	}
}

// WrappedPassword is the unlock password sealed under the process-wide
// session key. It carries no salt: the session key is derived once per
// process.
type WrappedPassword struct {
	IV         []byte `json:"iv" cbor:"iv"`
	Ciphertext []byte `json:"data" cbor:"data"`
}

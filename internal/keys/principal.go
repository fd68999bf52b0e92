// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

import (
	"crypto/sha256"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"strings"

	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// PubKeyBytesLenUncompressed is the length of an uncompressed SEC1
// secp256k1 public key.
const PubKeyBytesLenUncompressed = 65

const (
	selfAuthenticatingTag = 0x02
	maxPrincipalLen       = 29
	principalGroupLen     = 5
)

// secp256k1SPKIPrefix is the DER SubjectPublicKeyInfo header for an
// uncompressed secp256k1 point (id-ecPublicKey, secp256k1, BIT STRING of 66).
var secp256k1SPKIPrefix = []byte{
	0x30, 0x56, 0x30, 0x10, 0x06, 0x07, 0x2a, 0x86, 0x48, 0xce, 0x3d, 0x02, 0x01,
	0x06, 0x05, 0x2b, 0x81, 0x04, 0x00, 0x0a, 0x03, 0x42, 0x00,
}

// AnonymousPrincipal is the text form of the anonymous principal.
const AnonymousPrincipal = "2vxsx-fae"

var principalEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// DeriveIdentity computes the principal and default account id of km.
func DeriveIdentity(km models.KeyMaterial) (models.PublicIdentity, error) {
	if len(km.PublicKey) != PubKeyBytesLenUncompressed {
		return models.PublicIdentity{}, fmt.Errorf("%w: public key must be %d bytes, got %d",
			ErrInvalidKeyMaterial, PubKeyBytesLenUncompressed, len(km.PublicKey))
	}

	principal := SelfAuthenticatingPrincipal(km.PublicKey)
	text := EncodePrincipal(principal)

	return models.PublicIdentity{
		PrincipalID: text,
		AccountID:   accountIDOf(principal, nil),
	}, nil
}

// SelfAuthenticatingPrincipal returns SHA-224(DER(pub)) || 0x02.
func SelfAuthenticatingPrincipal(uncompressedPub []byte) []byte {
	der := make([]byte, 0, len(secp256k1SPKIPrefix)+len(uncompressedPub))
	der = append(der, secp256k1SPKIPrefix...)
	der = append(der, uncompressedPub...)

	sum := sha256.Sum224(der)
	return append(sum[:], selfAuthenticatingTag)
}

// EncodePrincipal renders raw principal bytes in the textual form:
// CRC32 (big-endian) || bytes, lowercase base32 without padding, grouped by
// five characters with dashes.
func EncodePrincipal(raw []byte) string {
	buf := make([]byte, 4, 4+len(raw))
	binary.BigEndian.PutUint32(buf, crc32.ChecksumIEEE(raw))
	buf = append(buf, raw...)

	enc := strings.ToLower(principalEncoding.EncodeToString(buf))

	var b strings.Builder
	for i := 0; i < len(enc); i += principalGroupLen {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(enc[i:min(i+principalGroupLen, len(enc))])
	}
	return b.String()
}

// DecodePrincipal parses the textual form back to raw bytes. The input must
// be canonical: lowercase, correctly grouped and with a matching checksum.
func DecodePrincipal(text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPrincipal)
	}

	compact := strings.ToUpper(strings.ReplaceAll(text, "-", ""))
	buf, err := principalEncoding.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrincipal, err)
	}
	if len(buf) < 4 || len(buf)-4 > maxPrincipalLen {
		return nil, fmt.Errorf("%w: bad length %d", ErrInvalidPrincipal, len(buf))
	}

	raw := buf[4:]
	if binary.BigEndian.Uint32(buf[:4]) != crc32.ChecksumIEEE(raw) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrInvalidPrincipal)
	}
	if EncodePrincipal(raw) != text {
		return nil, fmt.Errorf("%w: not in canonical form", ErrInvalidPrincipal)
	}

	return raw, nil
}

package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the size of every derived key in bytes (256 bits).
	KeySize = 32

	infoBodyEncryption = "coach-notes:body-encryption:v1"
	infoSearchBlinding = "coach-notes:search-blinding:v1"
)

// deriveKey derives a KeySize-byte sub-key from secret using HKDF-SHA256.
// info separates the domains of the derived keys.
func deriveKey(secret []byte, info string) ([]byte, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	reader := hkdf.New(sha256.New, secret, nil, []byte(info))

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	return key, nil
}

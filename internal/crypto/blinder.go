package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// BlindedTokenPrefix marks tokens produced by a [Blinder] inside searchable
// content, so they never collide with plain tokens.
const BlindedTokenPrefix = "#"

// blindedTokenBytes is the number of HMAC bytes kept per token.
const blindedTokenBytes = 12

type hmacBlinder struct {
	key []byte
}

// NewBlinder constructs a [Blinder] keyed by a sub-key derived from secret.
func NewBlinder(secret string) (Blinder, error) {
	key, err := deriveKey([]byte(secret), infoSearchBlinding)
	if err != nil {
		return nil, err
	}

	return &hmacBlinder{key: key}, nil
}

// Blind implements [Blinder] with a truncated HMAC-SHA256.
func (b *hmacBlinder) Blind(token string) string {
	mac := hmac.New(sha256.New, b.key)
	mac.Write([]byte(token))
	sum := mac.Sum(nil)

	return BlindedTokenPrefix + hex.EncodeToString(sum[:blindedTokenBytes])
}

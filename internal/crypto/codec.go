// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// blobPrefix versions the blob layout so the format can evolve.
const blobPrefix = "v1:"

// aesCodec is the AES-256-GCM implementation of [Codec].
type aesCodec struct {
	aead cipher.AEAD
}

// NewCodec constructs a [Codec] keyed by a sub-key derived from secret.
// Returns [ErrEmptySecret] when secret is empty.
func NewCodec(secret string) (Codec, error) {
	key, err := deriveKey([]byte(secret), infoBodyEncryption)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &aesCodec{aead: gcm}, nil
}

// Encrypt implements [Codec]. The blob is "v1:" followed by the standard
// Base64 encoding of nonce (12 bytes) ‖ ciphertext ‖ tag.
func (c *aesCodec) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)

	blob := make([]byte, 0, len(nonce)+len(sealed))
	blob = append(blob, nonce...)
	blob = append(blob, sealed...)

	return blobPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Codec].
func (c *aesCodec) Decrypt(blob string) (string, error) {
	encoded, ok := strings.CutPrefix(blob, blobPrefix)
	if !ok {
		return "", fmt.Errorf("%w: unknown blob format", ErrDecryption)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecryption, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(raw) < nonceSize+c.aead.Overhead() {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}

	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]

	// the auth tag check fails for tampered data and foreign keys alike
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return string(plaintext), nil
}

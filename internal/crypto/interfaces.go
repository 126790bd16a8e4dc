// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements field-level encryption of note bodies and the
// keyed blinding used to make encrypted bodies searchable without storing
// their plaintext tokens.
//
// Both primitives are keyed by sub-keys derived with HKDF-SHA256 from a single
// server-side secret, so the encryption key and the blinding key never
// coincide.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Codec encrypts and decrypts note bodies at rest.
//
// Encrypt uses a random nonce per call, so encrypting the same plaintext twice
// yields different blobs. Decrypt(Encrypt(p)) == p for every string p.
type Codec interface {
	// Encrypt returns the ciphertext blob for plaintext.
	Encrypt(plaintext string) (string, error)

	// Decrypt returns the plaintext of blob. Corrupted blobs and blobs sealed
	// with a different key fail with an error wrapping [ErrDecryption].
	Decrypt(blob string) (string, error)
}

// Blinder maps a search token to a keyed, irreversible token. Equal inputs
// map to equal outputs under the same key.
type Blinder interface {
	Blind(token string) string
}

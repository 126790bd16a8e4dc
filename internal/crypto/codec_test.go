package crypto

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func mustCodec(t interface{ Fatalf(string, ...any) }, secret string) Codec {
	c, err := NewCodec(secret)
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}
	return c
}

// TestCodec_RoundTrip checks decrypt(encrypt(p)) == p for arbitrary strings.
func TestCodec_RoundTrip(t *testing.T) {
	codec := mustCodec(t, testSecret)

	rapid.Check(t, func(t *rapid.T) {
		plaintext := rapid.String().Draw(t, "plaintext")

		blob, err := codec.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt error: %v", err)
		}

		got, err := codec.Decrypt(blob)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if got != plaintext {
			t.Fatalf("round trip mismatch: got %q, want %q", got, plaintext)
		}
	})
}

func TestCodec_EncryptIsRandomized(t *testing.T) {
	codec := mustCodec(t, testSecret)

	b1, err := codec.Encrypt("Client showed progress.")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	b2, err := codec.Encrypt("Client showed progress.")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if b1 == b2 {
		t.Fatalf("expected different blobs for repeated encryption")
	}
	if strings.Contains(b1, "progress") {
		t.Fatalf("blob leaks plaintext: %q", b1)
	}
	if !strings.HasPrefix(b1, blobPrefix) {
		t.Fatalf("blob %q has no version prefix", b1)
	}
}

func TestCodec_Decrypt_ForeignKey(t *testing.T) {
	codec := mustCodec(t, testSecret)
	other := mustCodec(t, "another secret of sufficient size!")

	blob, err := codec.Encrypt("session notes")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	got, err := other.Decrypt(blob)
	if !errors.Is(err, ErrDecryption) {
		t.Fatalf("expected ErrDecryption, got %v", err)
	}
	if got != "" {
		t.Fatalf("expected no plaintext on failure, got %q", got)
	}
}

func TestCodec_Decrypt_Corrupted(t *testing.T) {
	codec := mustCodec(t, testSecret)

	blob, err := codec.Encrypt("session notes")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(blob, blobPrefix))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	raw[len(raw)-1] ^= 0xFF
	tampered := blobPrefix + base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name string
		blob string
	}{
		{name: "tampered tag", blob: tampered},
		{name: "missing prefix", blob: strings.TrimPrefix(blob, blobPrefix)},
		{name: "not base64", blob: blobPrefix + "%%%"},
		{name: "too short", blob: blobPrefix + base64.StdEncoding.EncodeToString([]byte("short"))},
		{name: "empty", blob: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decrypt(tt.blob)
			if !errors.Is(err, ErrDecryption) {
				t.Fatalf("expected ErrDecryption, got %v", err)
			}
		})
	}
}

func TestNewCodec_EmptySecret(t *testing.T) {
	if _, err := NewCodec(""); !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("expected ErrEmptySecret, got %v", err)
	}
}

func TestBlinder_DeterministicAndKeyed(t *testing.T) {
	b1, err := NewBlinder(testSecret)
	if err != nil {
		t.Fatalf("NewBlinder error: %v", err)
	}
	b2, err := NewBlinder("another secret of sufficient size!")
	if err != nil {
		t.Fatalf("NewBlinder error: %v", err)
	}

	rapid.Check(t, func(t *rapid.T) {
		token := rapid.StringMatching(`[a-z]{2,12}`).Draw(t, "token")

		if b1.Blind(token) != b1.Blind(token) {
			t.Fatalf("blinding is not deterministic for %q", token)
		}
		if b1.Blind(token) == b2.Blind(token) {
			t.Fatalf("different keys produced the same blinded token for %q", token)
		}
		if !strings.HasPrefix(b1.Blind(token), BlindedTokenPrefix) {
			t.Fatalf("blinded token has no prefix")
		}
	})
}

func TestBlinder_DiffersFromCodecKey(t *testing.T) {
	k1, err := deriveKey([]byte(testSecret), infoBodyEncryption)
	if err != nil {
		t.Fatalf("deriveKey error: %v", err)
	}
	k2, err := deriveKey([]byte(testSecret), infoSearchBlinding)
	if err != nil {
		t.Fatalf("deriveKey error: %v", err)
	}
	if string(k1) == string(k2) {
		t.Fatalf("expected domain-separated keys")
	}
}

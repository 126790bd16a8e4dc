package search

import (
	"strings"

	"github.com/MKhiriev/go-coach-notes/internal/crypto"
)

// ContentBuilder derives the searchable content of notes.
type ContentBuilder struct {
	blinder crypto.Blinder
}

// NewContentBuilder constructs a [ContentBuilder]. blinder replaces body
// tokens of encrypted notes.
func NewContentBuilder(blinder crypto.Blinder) *ContentBuilder {
	return &ContentBuilder{blinder: blinder}
}

// Build returns the space separated tokens of title, body and tags, in this
// order. When encrypted is true every body token is replaced by its blinded
// form, so the plaintext body never reaches the index or the database.
func (b *ContentBuilder) Build(title, body string, tags []string, encrypted bool) string {
	tokens := Tokenize(title)

	for _, token := range Tokenize(body) {
		if encrypted {
			token = b.blinder.Blind(token)
		}
		tokens = append(tokens, token)
	}

	for _, tag := range tags {
		tokens = append(tokens, Tokenize(tag)...)
	}

	return strings.Join(tokens, " ")
}

// Blind exposes the blinded form of a query term.
func (b *ContentBuilder) Blind(term string) string {
	return b.blinder.Blind(term)
}

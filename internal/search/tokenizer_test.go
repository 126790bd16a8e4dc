package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-coach-notes/internal/crypto"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Élan", want: "elan"},
		{in: "CAFÉ crème", want: "cafe creme"},
		{in: "ﬁnal", want: "final"},
		{in: "Straße", want: "straße"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "punctuation", in: "Client showed progress.", want: []string{"client", "showed", "progress"}},
		{name: "single runes dropped", in: "a b cd 7 42", want: []string{"cd", "42"}},
		{name: "hyphenated", in: "self-care plan", want: []string{"self", "care", "plan"}},
		{name: "accents", in: "Réunion naïve", want: []string{"reunion", "naive"}},
		{name: "empty", in: "  ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" Progress", "goals", "PROGRESS", "", "  ", "Goals "})
	assert.Equal(t, []string{"progress", "goals"}, got)

	assert.NotNil(t, NormalizeTags(nil))
}

func newTestContentBuilder(t *testing.T) *ContentBuilder {
	t.Helper()
	blinder, err := crypto.NewBlinder("search test secret")
	require.NoError(t, err)
	return NewContentBuilder(blinder)
}

func TestContentBuilder_Build(t *testing.T) {
	b := newTestContentBuilder(t)

	plain := b.Build("Weekly check-in", "Client showed progress.", []string{"goals"}, false)
	assert.Equal(t, "weekly check in client showed progress goals", plain)

	encrypted := b.Build("Weekly check-in", "Client showed progress.", []string{"goals"}, true)
	assert.NotContains(t, encrypted, "client")
	assert.NotContains(t, encrypted, "progress")
	assert.Contains(t, encrypted, "weekly check in")
	assert.Contains(t, encrypted, b.Blind("progress"))
	assert.Contains(t, encrypted, "goals")
}

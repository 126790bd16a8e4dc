package utils

import "github.com/google/uuid"

// NewV7 returns a time-ordered UUIDv7 string. A random v4 id is returned
// if the v7 clock source fails.
func NewV7() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// NoteIDGenerator issues ids for new notes. Ids sort by creation time,
// which keeps the primary key index append-mostly.
type NoteIDGenerator struct{}

func NewNoteIDGenerator() NoteIDGenerator {
	return NoteIDGenerator{}
}

func (NoteIDGenerator) Generate() string {
	return NewV7()
}

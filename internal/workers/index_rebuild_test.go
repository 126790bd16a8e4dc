package workers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/internal/mock"
	"github.com/MKhiriev/go-coach-notes/models"
)

func TestIndexRebuildWorker_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteRepository(ctrl)
	index := mock.NewMockIndex(ctrl)

	stored := []models.Note{{ID: "n1"}, {ID: "n2"}}
	gomock.InOrder(
		notes.EXPECT().ListNotes(gomock.Any(), models.NoteListFilter{}).Return(stored, nil),
		index.EXPECT().Rebuild(stored),
		index.EXPECT().Len().Return(2),
	)

	err := NewIndexRebuildWorker(notes, index, logger.Nop()).Run(context.Background())

	require.NoError(t, err)
}

func TestIndexRebuildWorker_ListFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	notes := mock.NewMockNoteRepository(ctrl)
	index := mock.NewMockIndex(ctrl)

	notes.EXPECT().ListNotes(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	err := NewIndexRebuildWorker(notes, index, logger.Nop()).Run(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
}

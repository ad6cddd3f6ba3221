package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScanRecorder_Record(t *testing.T) {
	storage := &memoryStorage{}
	repo := &memoryScanRepo{}
	recorder := NewScanRecorder(storage, repo, zap.NewNop())

	id, err := recorder.Record(context.Background(), "Jane Doe.pdf", []byte("%PDF-1.4"), 62.5)

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, id, repo.created[0].ID)
	assert.Equal(t, "Jane Doe.pdf", repo.created[0].Filename)
	assert.Equal(t, 62.5, repo.created[0].Score)
	assert.Equal(t, []byte("%PDF-1.4"), storage.blobs[repo.created[0].FilePath])
}

func TestScanRecorder_RemovesBlobWhenInsertFails(t *testing.T) {
	storage := &memoryStorage{}
	recorder := NewScanRecorder(storage, &memoryScanRepo{err: errors.New("db down")}, zap.NewNop())

	_, err := recorder.Record(context.Background(), "cv.pdf", []byte("data"), 10)

	require.Error(t, err)
	assert.Len(t, storage.deleted, 1)
	assert.Empty(t, storage.blobs)
}

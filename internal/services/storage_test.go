package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	storage := NewLocalStorage(dir)
	ctx := context.Background()

	require.NoError(t, storage.EnsureReady(ctx))

	first, err := storage.Save(ctx, "CV.PDF", []byte("one"))
	require.NoError(t, err)
	second, err := storage.Save(ctx, "CV.PDF", []byte("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, ".pdf"))

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))

	require.NoError(t, storage.Delete(ctx, first))
	_, err = os.Stat(first)
	assert.True(t, os.IsNotExist(err))
	assert.Error(t, storage.Delete(ctx, first))
}

package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *AssetStore {
	t.Helper()
	store, err := NewAssetStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestSaveRoundTrip(t *testing.T) {
	store := newTestStore(t)
	content := []byte("%PDF-1.4 fake body")

	path, err := store.Save(bytes.NewReader(content), int64(len(content)), "application/pdf", "spring menu.pdf")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, "/uploads/"))

	stored, err := os.ReadFile(filepath.Join(store.Dir, filepath.Base(path)))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestSaveSanitizesFilename(t *testing.T) {
	store := newTestStore(t)

	path, err := store.Save(strings.NewReader("x"), 1, "image/png", "../we ird $(name).png")
	require.NoError(t, err)

	name := filepath.Base(path)
	assert.Regexp(t, regexp.MustCompile(`^\d+_[a-zA-Z0-9-_]+\.png$`), name)
	assert.NotContains(t, name, "..")
	assert.NotContains(t, name, " ")
}

func TestSaveRejectsUnsupportedType(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(strings.NewReader("#!/bin/sh"), 9, "application/x-sh", "run.sh")
	require.Error(t, err)
	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Unsupported file type.", appErr.Message)
}

func TestSaveRejectsOversizedPayload(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(strings.NewReader("tiny"), MaxAssetSize+1, "image/png", "big.png")
	require.Error(t, err)
	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Contains(t, appErr.Message, "size")
}

func TestSaveAcceptsDeclaredTypeWithoutSniffing(t *testing.T) {
	store := newTestStore(t)

	// declared-but-mismatched type is accepted as-is; that trust boundary
	// is part of the contract
	_, err := store.Save(strings.NewReader("not really a png"), 16, "image/png", "fake.png")
	assert.NoError(t, err)
}

func TestRemoveIsBestEffort(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Remove("/uploads/never-existed.png"))
	assert.NoError(t, store.Remove(""))

	path, err := store.Save(strings.NewReader("x"), 1, "image/gif", "pixel.gif")
	require.NoError(t, err)
	require.NoError(t, store.Remove(path))

	_, statErr := os.Stat(filepath.Join(store.Dir, filepath.Base(path)))
	assert.True(t, os.IsNotExist(statErr))
}

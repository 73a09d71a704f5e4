package game_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "goban/internal/errors"
	"goban/internal/usecase/game/mocks"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestImportDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.sgf"), handicapRecord)
	writeFile(t, filepath.Join(root, "nested", "b.SGF"), captureRecord)
	writeFile(t, filepath.Join(root, "small.sgf"), "(;SZ[9]\n;B[cc]\n")
	writeFile(t, filepath.Join(root, "notes.txt"), handicapRecord)

	store := new(mocks.GameStore)
	store.On("GenerateRecordID").Return("rec-a").Once()
	store.On("GenerateRecordID").Return("rec-b").Once()
	store.On("PutRecord", mock.Anything, mock.Anything).Return(nil)

	report, err := newUseCase(store).ImportDirectory(context.Background(), root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"rec-a", "rec-b"}, report.Imported)
	assert.Equal(t, []string{filepath.Join(root, "small.sgf")}, report.Rejected)
	store.AssertNumberOfCalls(t, "PutRecord", 2)
}

func TestImportDirectory_StoreFails(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.sgf"), handicapRecord)

	store := new(mocks.GameStore)
	store.On("GenerateRecordID").Return("rec-a")
	store.On("PutRecord", mock.Anything, mock.Anything).Return(errs.ErrInternal)

	_, err := newUseCase(store).ImportDirectory(context.Background(), root)
	assert.ErrorIs(t, err, errs.ErrInternal)
}

func TestImportDirectory_Missing(t *testing.T) {
	_, err := newUseCase(new(mocks.GameStore)).ImportDirectory(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

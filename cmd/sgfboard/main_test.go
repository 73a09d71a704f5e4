package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.sgf")
	require.NoError(t, os.WriteFile(path, []byte("(;SZ[19]\nAB[dd][pp]\n;B[dp];W[pd]\nRE[W+2.5]\n"), 0o600))
	pdfPath := filepath.Join(dir, "game.pdf")

	var out bytes.Buffer
	require.NoError(t, run(&out, path, pdfPath, true))

	assert.Contains(t, out.String(), "moves: 2  winner: white")
	assert.Contains(t, out.String(), "black group at D16 (3,3): 1 stones, 4 liberties")
	assert.Contains(t, out.String(), "white group at Q16 (15,3): 1 stones, 4 liberties")

	info, err := os.Stat(pdfPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRun_Rejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.sgf")
	require.NoError(t, os.WriteFile(path, []byte("(;SZ[9]\n;B[cc]\n"), 0o600))

	assert.Error(t, run(&bytes.Buffer{}, path, "", false))
}

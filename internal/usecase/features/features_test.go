package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goban/internal/domain/board"
	"goban/internal/grid"
)

func TestSparseThreshold(t *testing.T) {
	assert.InDelta(t, 240.33, SparseThreshold(361), 0.01)
	assert.InDelta(t, 53.67, SparseThreshold(81), 0.01)
}

func TestEncode_ChoosesSparseForFewStones(t *testing.T) {
	var g grid.Grid = grid.NewStandard()
	g, err := g.Set(board.Position{Column: 3, Row: 3}, board.Black)
	require.NoError(t, err)
	g, err = g.Set(board.Position{Column: 0, Row: 1}, board.White)
	require.NoError(t, err)

	v, err := Encode(g)
	require.NoError(t, err)
	assert.True(t, v.IsSparse())
	assert.Equal(t, 361, v.Size)
	// column-major: (0,1) -> 1, (3,3) -> 60
	assert.Equal(t, []int32{1, 60}, v.Indices)
	assert.Equal(t, []float64{2, 1}, v.Values)

	dense, err := Dense(g)
	require.NoError(t, err)
	assert.Equal(t, dense.Dense, v.ToDense())
}

func TestEncode_ChoosesDenseForFullBoard(t *testing.T) {
	dim := board.Dimension{Columns: 9, Rows: 9}
	c, err := grid.NewCompact(dim)
	require.NoError(t, err)
	var g grid.Grid = c
	for col := 0; col < 9; col++ {
		for row := 0; row < 9; row++ {
			g, err = g.Set(board.Position{Column: col, Row: row}, board.Sides[1+(col+row)%2])
			require.NoError(t, err)
		}
	}
	v, err := Encode(g)
	require.NoError(t, err)
	assert.False(t, v.IsSparse())
	assert.Len(t, v.Dense, 81)

	s, err := Sparse(g)
	require.NoError(t, err)
	assert.Len(t, s.Indices, 81)
	assert.Equal(t, v.Dense, s.ToDense())
}

func TestEncode_EmptyBoard(t *testing.T) {
	v, err := Encode(grid.NewStandard())
	require.NoError(t, err)
	assert.True(t, v.IsSparse())
	assert.Empty(t, v.Indices)
	assert.Len(t, v.ToDense(), 361)
}

package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goban/internal/domain/board"
	"goban/internal/grid"
)

func at(col, row int) board.Position {
	return board.Position{Column: col, Row: row}
}

func TestParse_RejectsHeader(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{name: "9x9", lines: []string{"(;SZ[9]", ";B[cc]"}},
		{name: "no lines", lines: nil},
		{name: "header not first", lines: []string{"", "(;SZ[19]"}},
		{name: "garbage", lines: []string{"hello"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Parse(tt.lines)
			assert.False(t, ok)
			_, ok = ParseTransitions(tt.lines)
			assert.False(t, ok)
		})
	}
}

func TestParse_HandicapAndMoves(t *testing.T) {
	g, ok := Parse([]string{"(;SZ[19]", "AB[dd][pp]", ";B[dp];W[pd]"})
	require.True(t, ok)

	want := map[board.Position]board.Side{
		at(3, 3):   board.Black,
		at(15, 15): board.Black,
		at(3, 15):  board.Black,
		at(15, 3):  board.White,
	}
	stones := 0
	sides, err := grid.Flatten(g.Board.Grid)
	require.NoError(t, err)
	for _, s := range sides {
		if s != board.Empty {
			stones++
		}
	}
	assert.Equal(t, len(want), stones)
	for p, s := range want {
		got, err := g.Board.Grid.Get(p)
		require.NoError(t, err)
		assert.Equal(t, s, got, "at %s", p)
	}
	assert.Equal(t, board.Empty, g.Winner)
	assert.Equal(t, 2, g.Board.Moves)
}

func TestParseTransitions_Order(t *testing.T) {
	rec, ok := ParseTransitions([]string{
		"(;SZ[19]KM[6.5]",
		"PB[someone]",
		"AB[dd][pp]",
		";B[dp];W[pd]",
		";B[qq]",
	})
	require.True(t, ok)
	assert.Equal(t, []board.Transition{
		board.Flip{At: at(3, 3), Side: board.Black},
		board.Flip{At: at(15, 15), Side: board.Black},
		board.Move{Number: 1, At: at(3, 15), Side: board.Black},
		board.Move{Number: 2, At: at(15, 3), Side: board.White},
		board.Move{Number: 3, At: at(16, 16), Side: board.Black},
	}, rec.Transitions)
	assert.Equal(t, 2, rec.Handicap)
	assert.Zero(t, rec.Skipped)
}

func TestParseTransitions_Winner(t *testing.T) {
	tests := []struct {
		line string
		want board.Side
	}{
		{line: "RE[B+R]", want: board.Black},
		{line: "RE[W+3.5]", want: board.White},
		{line: "RE[0]", want: board.White},
		{line: "RE", want: board.White},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			rec, ok := ParseTransitions([]string{"(;SZ[19]", tt.line})
			require.True(t, ok)
			assert.Equal(t, tt.want, rec.Winner)
		})
	}
}

func TestParseTransitions_SkipsBadTokens(t *testing.T) {
	rec, ok := ParseTransitions([]string{
		"(;SZ[19]",
		"AB[dd][zz][pp",
		";B[];W[tt];X[aa];B[ab];W",
	})
	require.True(t, ok)
	assert.Equal(t, []board.Transition{
		board.Flip{At: at(3, 3), Side: board.Black},
		board.Flip{At: at(15, 15), Side: board.Black},
		board.Move{Number: 1, At: at(0, 1), Side: board.Black},
	}, rec.Transitions)
	assert.Equal(t, 5, rec.Skipped)
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"(;SZ[19]", "AB[dd]", ";B[dp]"}, SplitLines("(;SZ[19]\r\nAB[dd]\n;B[dp]\n\n"))
	assert.Nil(t, SplitLines("   "))
}

func TestTranslator(t *testing.T) {
	for col := 0; col < 19; col++ {
		for row := 0; row < 19; row++ {
			p := at(col, row)
			s, err := Standard.Encode(p)
			require.NoError(t, err)
			back, err := Standard.Decode(s)
			require.NoError(t, err)
			assert.Equal(t, p, back)
		}
	}

	for _, bad := range []string{"", "a", "abc", "ta", "at", "A1"} {
		_, err := Standard.Decode(bad)
		assert.ErrorIs(t, err, ErrCoordinate, bad)
	}
	_, err := Standard.Encode(at(19, 0))
	assert.ErrorIs(t, err, ErrCoordinate)
}

func TestTranslator_ToStandard(t *testing.T) {
	tests := map[string]string{
		"dp": "D4",
		"aa": "A19",
		"ss": "T1",
		"ia": "J19",
		"hs": "H1",
	}
	for in, want := range tests {
		got, err := Standard.ToStandard(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestTranslator_Notation(t *testing.T) {
	got, err := Standard.Notation(at(3, 15))
	require.NoError(t, err)
	assert.Equal(t, "D4", got)

	_, err = Standard.Notation(at(-1, 0))
	assert.ErrorIs(t, err, ErrCoordinate)
}

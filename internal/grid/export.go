package grid

import (
	"encoding/binary"
	"strings"

	"github.com/cespare/xxhash/v2"

	"goban/internal/domain/board"
)

const unreadable = 0xff

// walk visits every position column-major: outer loop columns, inner rows.
func walk(d board.Dimension, fn func(p board.Position)) {
	for col := 0; col < d.Columns; col++ {
		for row := 0; row < d.Rows; row++ {
			fn(board.Position{Column: col, Row: row})
		}
	}
}

// Flatten lists every cell in column-major order.
func Flatten(g Grid) ([]board.Side, error) {
	out := make([]board.Side, 0, g.Dimension().Points())
	var firstErr error
	walk(g.Dimension(), func(p board.Position) {
		if firstErr != nil {
			return
		}
		side, err := g.Get(p)
		if err != nil {
			firstErr = err
			return
		}
		out = append(out, side)
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

func flattenAs[T any](g Grid, conv func(board.Side) T) ([]T, error) {
	sides, err := Flatten(g)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(sides))
	for i, s := range sides {
		out[i] = conv(s)
	}
	return out, nil
}

func FlattenInts(g Grid) ([]int, error) {
	return flattenAs(g, board.Side.Int)
}

func FlattenFloats(g Grid) ([]float64, error) {
	return flattenAs(g, board.Side.Float)
}

func FlattenChars(g Grid) ([]byte, error) {
	return flattenAs(g, board.Side.Char)
}

// codes is Flatten that never fails; unreadable cells get their own code.
func codes(g Grid) []byte {
	out := make([]byte, 0, g.Dimension().Points())
	walk(g.Dimension(), func(p board.Position) {
		side, err := g.Get(p)
		if err != nil {
			out = append(out, unreadable)
			return
		}
		out = append(out, byte(side))
	})
	return out
}

// Equal compares dimension and contents. Capture counters are not part of
// the comparison.
func Equal(a, b Grid) bool {
	if a.Dimension() != b.Dimension() {
		return false
	}
	return string(codes(a)) == string(codes(b))
}

// Hash is a non-cryptographic content hash consistent with Equal.
func Hash(g Grid) uint64 {
	d := g.Dimension()
	h := xxhash.New()
	dims := binary.LittleEndian.AppendUint32(nil, uint32(d.Columns))
	dims = binary.LittleEndian.AppendUint32(dims, uint32(d.Rows))
	_, _ = h.Write(dims)
	_, _ = h.Write(codes(g))
	return h.Sum64()
}

// Format renders rows top to bottom and columns left to right, cells
// separated by a space.
func Format(g Grid) string {
	d := g.Dimension()
	var sb strings.Builder
	sb.Grow(d.Points()*2 + d.Rows)
	for row := 0; row < d.Rows; row++ {
		for col := 0; col < d.Columns; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			side, err := g.Get(board.Position{Column: col, Row: row})
			if err != nil {
				sb.WriteByte('?')
				continue
			}
			sb.WriteByte(side.Char())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

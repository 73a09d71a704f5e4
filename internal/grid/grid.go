// Package grid stores Go board occupancy and answers spatial queries
// (neighbors, groups, liberties) over it.
//
// A Grid is a persistent value: Set and the capture counters return a new
// Grid and never modify the receiver, so any Grid may be shared between
// goroutines and kept as a history snapshot.
package grid

import (
	"errors"
	"sort"

	"goban/internal/domain/board"
)

var (
	// ErrPosition is returned for a position outside the grid dimension.
	ErrPosition = errors.New("position is out of range")
	// ErrSide is returned when a value outside {empty, black, white} is stored.
	ErrSide = errors.New("unknown side")
	// ErrCorruptCell is returned when a stored cell holds the unused code.
	ErrCorruptCell = errors.New("corrupted cell value")
	// ErrCaptureCount is returned when a capture counter would become negative.
	ErrCaptureCount = errors.New("capture count would be negative")
	// ErrDimension is returned by constructors for non-positive sizes.
	ErrDimension = errors.New("grid dimension must be positive")
)

// Grid is the storage contract the analyzer functions are written against.
type Grid interface {
	Dimension() board.Dimension
	Get(p board.Position) (board.Side, error)
	Set(p board.Position, side board.Side) (Grid, error)
	CapturedBlack() int
	CapturedWhite() int
	// AddCapturedBlack and AddCapturedWhite add n to the counter.
	AddCapturedBlack(n int) (Grid, error)
	AddCapturedWhite(n int) (Grid, error)
	IsLegalPosition(p board.Position) bool
}

// PositionSet is an unordered set of positions.
type PositionSet map[board.Position]struct{}

func NewPositionSet(ps ...board.Position) PositionSet {
	set := make(PositionSet, len(ps))
	for _, p := range ps {
		set[p] = struct{}{}
	}
	return set
}

func (s PositionSet) Add(p board.Position) {
	s[p] = struct{}{}
}

func (s PositionSet) Contains(p board.Position) bool {
	_, ok := s[p]
	return ok
}

func (s PositionSet) Len() int {
	return len(s)
}

// Sorted returns the members ordered by column, then row.
func (s PositionSet) Sorted() []board.Position {
	out := make([]board.Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Column != out[j].Column {
			return out[i].Column < out[j].Column
		}
		return out[i].Row < out[j].Row
	})
	return out
}

func inBounds(d board.Dimension, p board.Position) bool {
	return p.Column >= 0 && p.Column < d.Columns && p.Row >= 0 && p.Row < d.Rows
}

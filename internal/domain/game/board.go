package game

import (
	"fmt"

	"goban/internal/domain/board"
	"goban/internal/grid"
)

// Board is a grid assembled by replaying transitions.
type Board struct {
	Grid  grid.Grid
	Moves int
}

func NewBoard(dim board.Dimension) (*Board, error) {
	g, err := grid.NewCompact(dim)
	if err != nil {
		return nil, err
	}
	return &Board{Grid: g}, nil
}

// Apply returns the board after t. A Flip only places the stone. A Move
// also removes adjacent opposing groups left without liberties and adds
// them to the capture counters. Legality (ko, suicide, turn order) is not
// checked.
func (b *Board) Apply(t board.Transition) (*Board, error) {
	next, err := b.Grid.Set(t.Target(), t.Stone())
	if err != nil {
		return nil, fmt.Errorf("apply %T at %s: %w", t, t.Target(), err)
	}

	m, ok := t.(board.Move)
	if !ok {
		return &Board{Grid: next, Moves: b.Moves}, nil
	}

	opponent := m.Side.Opponent()
	for n := range grid.Neighbors(next, m.At) {
		side, err := next.Get(n)
		if err != nil || side != opponent || opponent == board.Empty {
			continue
		}
		if grid.IsAlive(next, n) {
			continue
		}
		next, err = capture(next, grid.IdentifyGroup(next, n), opponent)
		if err != nil {
			return nil, err
		}
	}
	return &Board{Grid: next, Moves: b.Moves + 1}, nil
}

func capture(g grid.Grid, group grid.PositionSet, side board.Side) (grid.Grid, error) {
	var err error
	for p := range group {
		if g, err = g.Set(p, board.Empty); err != nil {
			return nil, err
		}
	}
	if side == board.Black {
		return g.AddCapturedBlack(group.Len())
	}
	return g.AddCapturedWhite(group.Len())
}

// Assemble folds transitions in order over an empty board.
func Assemble(dim board.Dimension, transitions []board.Transition) (*Board, error) {
	return Replay(dim, transitions, nil)
}

// Replay is Assemble that reports every intermediate board to fn. A
// non-nil error from fn stops the replay.
func Replay(dim board.Dimension, transitions []board.Transition, fn func(step int, t board.Transition, b *Board) error) (*Board, error) {
	b, err := NewBoard(dim)
	if err != nil {
		return nil, err
	}
	for i, t := range transitions {
		if b, err = b.Apply(t); err != nil {
			return nil, fmt.Errorf("transition %d: %w", i+1, err)
		}
		if fn != nil {
			if err = fn(i+1, t, b); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// Game is a replayed record: the final board and the recorded winner
// (board.Empty when the record names none).
type Game struct {
	Board  *Board
	Winner board.Side
}

package grid

import "goban/internal/domain/board"

var offsets = [...]board.Position{
	{Column: -1, Row: 0},
	{Column: 1, Row: 0},
	{Column: 0, Row: -1},
	{Column: 0, Row: 1},
}

// sideAt reads a cell for the analyzer. Cells that cannot be read
// (out of range or corrupted) behave as walls: they match no side and are
// never liberties.
func sideAt(g Grid, p board.Position) (board.Side, bool) {
	side, err := g.Get(p)
	if err != nil {
		return board.Empty, false
	}
	return side, true
}

// Neighbors returns the orthogonally adjacent positions of p that lie on
// the grid. Edge points have three, corner points two.
func Neighbors(g Grid, p board.Position) PositionSet {
	set := make(PositionSet, len(offsets))
	for _, d := range offsets {
		q := board.Position{Column: p.Column + d.Column, Row: p.Row + d.Row}
		if g.IsLegalPosition(q) {
			set.Add(q)
		}
	}
	return set
}

// Liberties returns the empty neighbors of p. It is defined for empty
// points too; callers after group liberties should use GroupLiberties.
func Liberties(g Grid, p board.Position) PositionSet {
	set := make(PositionSet, len(offsets))
	for q := range Neighbors(g, p) {
		if side, ok := sideAt(g, q); ok && side == board.Empty {
			set.Add(q)
		}
	}
	return set
}

// IdentifyGroup returns every position connected to seed through
// orthogonal steps over the seed's side, seed included. An empty seed
// yields its whole empty region.
func IdentifyGroup(g Grid, seed board.Position) PositionSet {
	group := make(PositionSet)
	side, ok := sideAt(g, seed)
	if !ok {
		return group
	}

	work := []board.Position{seed}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		if group.Contains(p) {
			continue
		}
		group.Add(p)
		for q := range Neighbors(g, p) {
			if group.Contains(q) {
				continue
			}
			if s, ok := sideAt(g, q); ok && s == side {
				work = append(work, q)
			}
		}
	}
	return group
}

// GroupLiberties is the union of Liberties over the group containing p.
func GroupLiberties(g Grid, p board.Position) PositionSet {
	libs := make(PositionSet)
	for member := range IdentifyGroup(g, p) {
		for q := range Liberties(g, member) {
			libs.Add(q)
		}
	}
	return libs
}

// IsAlive reports whether the group containing p has at least one liberty.
func IsAlive(g Grid, p board.Position) bool {
	return GroupLiberties(g, p).Len() > 0
}

// Groups returns every stone group on the grid, ordered by the column-major
// position of each group's first stone.
func Groups(g Grid) []PositionSet {
	seen := make(PositionSet)
	var groups []PositionSet
	dim := g.Dimension()
	for col := 0; col < dim.Columns; col++ {
		for row := 0; row < dim.Rows; row++ {
			p := board.Position{Column: col, Row: row}
			if seen.Contains(p) {
				continue
			}
			if side, ok := sideAt(g, p); !ok || side == board.Empty {
				continue
			}
			group := IdentifyGroup(g, p)
			for q := range group {
				seen.Add(q)
			}
			groups = append(groups, group)
		}
	}
	return groups
}

// Territory assigns each empty region to the colour that alone borders
// it. Regions touching both colours, or none, are left out.
func Territory(g Grid) map[board.Side]PositionSet {
	out := map[board.Side]PositionSet{
		board.Black: make(PositionSet),
		board.White: make(PositionSet),
	}
	seen := make(PositionSet)
	dim := g.Dimension()
	for col := 0; col < dim.Columns; col++ {
		for row := 0; row < dim.Rows; row++ {
			p := board.Position{Column: col, Row: row}
			if seen.Contains(p) {
				continue
			}
			if side, ok := sideAt(g, p); !ok || side != board.Empty {
				continue
			}
			region := IdentifyGroup(g, p)
			borders := make(map[board.Side]bool, 2)
			for q := range region {
				seen.Add(q)
				for n := range Neighbors(g, q) {
					if s, ok := sideAt(g, n); ok && s != board.Empty {
						borders[s] = true
					}
				}
			}
			if len(borders) != 1 {
				continue
			}
			for owner := range borders {
				for q := range region {
					out[owner].Add(q)
				}
			}
		}
	}
	return out
}

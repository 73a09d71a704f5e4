package board

// Transition is one instruction that changes an intersection. Transitions
// are applied strictly in the order they were produced.
type Transition interface {
	Target() Position
	Stone() Side
}

// Flip places a stone without game-move semantics (handicap / setup stones).
type Flip struct {
	At   Position
	Side Side
}

func (f Flip) Target() Position { return f.At }
func (f Flip) Stone() Side      { return f.Side }

// Move is a numbered game move. Applying it may capture opponent stones.
type Move struct {
	Number int
	At     Position
	Side   Side
}

func (m Move) Target() Position { return m.At }
func (m Move) Stone() Side      { return m.Side }

package board

import "fmt"

// Position is an intersection address: Column and Row both count from zero.
// Bounds are only meaningful against a Dimension.
type Position struct {
	Column int `json:"col" bson:"col"`
	Row    int `json:"row" bson:"row"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Column, p.Row)
}

// Dimension is the board size in columns and rows.
type Dimension struct {
	Columns int `json:"columns" bson:"columns"`
	Rows    int `json:"rows" bson:"rows"`
}

// Standard is the 19x19 board.
var Standard = Dimension{Columns: 19, Rows: 19}

// Points returns the number of intersections.
func (d Dimension) Points() int {
	return d.Columns * d.Rows
}

func (d Dimension) String() string {
	return fmt.Sprintf("%dx%d", d.Columns, d.Rows)
}

// Side is the occupancy of an intersection.
type Side uint8

const (
	Empty Side = iota
	Black
	White
)

// Sides lists every Side in serialization order.
var Sides = [...]Side{Empty, Black, White}

func (s Side) Valid() bool {
	return s <= White
}

func (s Side) Int() int {
	return int(s)
}

func (s Side) Float() float64 {
	return float64(s)
}

// Char is the single-character display code used by the pretty printer
// and the record side tags.
func (s Side) Char() byte {
	switch s {
	case Black:
		return 'B'
	case White:
		return 'W'
	default:
		return '.'
	}
}

func (s Side) String() string {
	switch s {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return fmt.Sprintf("side(%d)", uint8(s))
	}
}

// Opponent returns the other player; Empty has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

var sideTags = map[byte]Side{
	'B': Black,
	'W': White,
}

// SideFromChar maps a record side tag to a player.
func SideFromChar(c byte) (Side, bool) {
	s, ok := sideTags[c]
	return s, ok
}

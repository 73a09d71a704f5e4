package record

import (
	"errors"
	"fmt"

	"goban/internal/domain/board"
)

var ErrCoordinate = errors.New("invalid sgf coordinate")

// Translator maps two-letter SGF coordinates ("dp": column d, row p) to
// positions and back. Letters a..s cover a 19x19 board.
type Translator struct {
	Size int
}

var Standard = Translator{Size: 19}

func (t Translator) Decode(coord string) (board.Position, error) {
	if len(coord) != 2 {
		return board.Position{}, fmt.Errorf("%w: %q", ErrCoordinate, coord)
	}
	col, row := int(coord[0])-'a', int(coord[1])-'a'
	if col < 0 || col >= t.Size || row < 0 || row >= t.Size {
		return board.Position{}, fmt.Errorf("%w: %q is off a %dx%[3]d board", ErrCoordinate, coord, t.Size)
	}
	return board.Position{Column: col, Row: row}, nil
}

func (t Translator) Encode(p board.Position) (string, error) {
	if p.Column < 0 || p.Column >= t.Size || p.Row < 0 || p.Row >= t.Size {
		return "", fmt.Errorf("%w: %s is off a %dx%[3]d board", ErrCoordinate, p, t.Size)
	}
	return string([]byte{byte('a' + p.Column), byte('a' + p.Row)}), nil
}

// Notation is ToStandard for a position, e.g. (3,15) -> "D4" on 19x19.
func (t Translator) Notation(p board.Position) (string, error) {
	coord, err := t.Encode(p)
	if err != nil {
		return "", err
	}
	return t.ToStandard(coord)
}

// ToStandard converts an SGF coordinate to the notation players read,
// e.g. "dp" -> "D4" on 19x19. The letter I is skipped.
func (t Translator) ToStandard(coord string) (string, error) {
	p, err := t.Decode(coord)
	if err != nil {
		return "", err
	}
	letter := byte('A' + p.Column)
	if letter >= 'I' {
		letter++
	}
	return fmt.Sprintf("%c%d", letter, t.Size-p.Row), nil
}

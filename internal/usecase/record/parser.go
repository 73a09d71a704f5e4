// Package record reads the line-oriented SGF subset used by the game
// archive and turns it into board transitions.
//
// Offsets are positional and must stay as they are for the stored files:
// the winner is line[3] of an RE line, AB coordinates sit at a stride of 4
// after the tag, and a move token keeps its coordinate at [2,4).
package record

import (
	"strings"

	"goban/internal/domain/board"
	"goban/internal/domain/game"
)

// Header is the required prefix of the first line.
const Header = "(;SZ[19]"

const (
	tagResult   = "RE"
	tagAddBlack = "AB"
	moveSep     = ";"
	abStride    = 4
)

// Record is a parsed game record before replay.
type Record struct {
	Transitions []board.Transition
	Winner      board.Side
	Handicap    int
	Skipped     int
}

// ParseTransitions runs the header check and the body scan. ok is false
// when the header is missing or names another size. Tokens that cannot be
// decoded (pass moves, unknown side tags, short tokens) are skipped and
// counted in Skipped.
func ParseTransitions(lines []string) (rec Record, ok bool) {
	if len(lines) == 0 || !strings.HasPrefix(lines[0], Header) {
		return Record{}, false
	}

	moves := 0
	for _, line := range lines[1:] {
		switch {
		case strings.HasPrefix(line, tagResult):
			rec.Winner = board.White
			if len(line) > 3 && line[3] == 'B' {
				rec.Winner = board.Black
			}
		case strings.HasPrefix(line, tagAddBlack):
			rest := line[len(tagAddBlack):]
			for i := 0; i+3 <= len(rest); i += abStride {
				p, err := Standard.Decode(rest[i+1 : i+3])
				if err != nil {
					rec.Skipped++
					continue
				}
				rec.Transitions = append(rec.Transitions, board.Flip{At: p, Side: board.Black})
				rec.Handicap++
			}
		case strings.HasPrefix(line, moveSep):
			for _, token := range strings.Split(line, moveSep) {
				if token == "" {
					continue
				}
				m, ok := decodeMove(token)
				if !ok {
					rec.Skipped++
					continue
				}
				moves++
				m.Number = moves
				rec.Transitions = append(rec.Transitions, m)
			}
		}
	}
	return rec, true
}

func decodeMove(token string) (board.Move, bool) {
	if len(token) < 4 {
		return board.Move{}, false
	}
	side, ok := board.SideFromChar(token[0])
	if !ok {
		return board.Move{}, false
	}
	p, err := Standard.Decode(token[2:4])
	if err != nil {
		return board.Move{}, false
	}
	return board.Move{At: p, Side: side}, true
}

// Parse builds the final board of a record. ok is false when the header
// check fails or a transition cannot be applied.
func Parse(lines []string) (game.Game, bool) {
	rec, ok := ParseTransitions(lines)
	if !ok {
		return game.Game{}, false
	}
	b, err := game.Assemble(board.Standard, rec.Transitions)
	if err != nil {
		return game.Game{}, false
	}
	return game.Game{Board: b, Winner: rec.Winner}, true
}

// SplitLines splits stored record text into lines, tolerating CRLF and
// surrounding blank space.
func SplitLines(text string) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

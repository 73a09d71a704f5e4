package game

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"goban/internal/domain/board"
	sgf "goban/internal/domain/sgf"
	"goban/internal/grid"
	"goban/internal/usecase/record"
)

// PrepareSetupSgf describes a position as a single SGF setup node with
// AB/AW stone lists.
func PrepareSetupSgf(g grid.Grid, winner board.Side) (sgf.SGF, error) {
	dim := g.Dimension()
	translator := record.Translator{Size: max(dim.Columns, dim.Rows)}

	stones := map[board.Side][]string{}
	for col := 0; col < dim.Columns; col++ {
		for row := 0; row < dim.Rows; row++ {
			p := board.Position{Column: col, Row: row}
			side, err := g.Get(p)
			if err != nil {
				return sgf.SGF{}, err
			}
			if side == board.Empty {
				continue
			}
			coord, err := translator.Encode(p)
			if err != nil {
				return sgf.SGF{}, err
			}
			stones[side] = append(stones[side], coord)
		}
	}

	size := strconv.Itoa(dim.Columns)
	if dim.Columns != dim.Rows {
		size = fmt.Sprintf("%d:%d", dim.Columns, dim.Rows)
	}
	props := map[string][]string{
		"FF": {"4"},
		"GM": {"1"},
		"SZ": {size},
	}
	if winner != board.Empty {
		props["RE"] = []string{fmt.Sprintf("%c+", winner.Char())}
	}
	if len(stones[board.Black]) > 0 {
		props["AB"] = stones[board.Black]
	}
	if len(stones[board.White]) > 0 {
		props["AW"] = stones[board.White]
	}

	return sgf.SGF{
		Root: &sgf.GameTree{
			Nodes: []sgf.Node{{Properties: props}},
		},
	}, nil
}

func SerializeSGF(s *sgf.SGF) string {
	var builder strings.Builder
	builder.WriteString("(")
	serializeGameTree(&builder, s.Root)
	builder.WriteString(")")
	return builder.String()
}

// fixed SGF property order
var orderedKeys = []string{"FF", "GM", "SZ", "PB", "PW", "DT", "RE", "KM", "RU", "AB", "AW", "C", "B", "W"}

func serializeGameTree(builder *strings.Builder, tree *sgf.GameTree) {
	for _, node := range tree.Nodes {
		builder.WriteString(";")

		used := make(map[string]bool, len(node.Properties))
		for _, key := range orderedKeys {
			if values, ok := node.Properties[key]; ok {
				used[key] = true
				writeProperty(builder, key, values)
			}
		}

		rest := make([]string, 0, len(node.Properties))
		for key := range node.Properties {
			if !used[key] {
				rest = append(rest, key)
			}
		}
		sort.Strings(rest)
		for _, key := range rest {
			writeProperty(builder, key, node.Properties[key])
		}
	}

	for _, child := range tree.Children {
		builder.WriteString("(")
		serializeGameTree(builder, child)
		builder.WriteString(")")
	}
}

func writeProperty(builder *strings.Builder, key string, values []string) {
	builder.WriteString(key)
	for _, v := range values {
		builder.WriteString("[")
		builder.WriteString(v)
		builder.WriteString("]")
	}
}

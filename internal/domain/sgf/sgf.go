package sgf

// GameTree is one SGF tree: the main line plus variations.
type GameTree struct {
	Nodes    []Node      // main line
	Children []*GameTree // variations
}

// Node is one SGF node. A property may repeat its value list, e.g. AB[aa][bb].
type Node struct {
	Properties map[string][]string
}

// SGF is the root of an SGF collection holding a single game.
type SGF struct {
	Root *GameTree
}

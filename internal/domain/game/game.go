package game

import (
	"time"

	"goban/internal/domain/board"
)

// Record is the archived summary of an imported game record.
type Record struct {
	RecordID      string          `json:"record_id" bson:"record_id"`
	CreatedAt     time.Time       `json:"created_at" bson:"created_at"`
	Dimension     board.Dimension `json:"dimension" bson:"dimension"`
	Winner        string          `json:"winner" bson:"winner"`
	Moves         int             `json:"moves" bson:"moves"`
	Handicap      int             `json:"handicap" bson:"handicap"`
	CapturedBlack int             `json:"captured_black" bson:"captured_black"`
	CapturedWhite int             `json:"captured_white" bson:"captured_white"`
	BoardHash     string          `json:"board_hash" bson:"board_hash"`
	SGF           string          `json:"-" bson:"sgf"`
}

type RecordCreateRequest struct {
	SGF string `json:"sgf"`
}

type RecordCreateResponse struct {
	RecordID string `json:"record_id"`
}

type BoardStateResponse struct {
	RecordID      string `json:"record_id"`
	Dimension     string `json:"dimension"`
	Board         string `json:"board"`
	Cells         string `json:"cells"`
	Winner        string `json:"winner"`
	Moves         int    `json:"moves"`
	CapturedBlack int    `json:"captured_black"`
	CapturedWhite int    `json:"captured_white"`
	Hash          uint64 `json:"hash"`
}

type GroupResponse struct {
	Position  board.Position   `json:"position"`
	Notation  string           `json:"notation"`
	Side      string           `json:"side"`
	Stones    []board.Position `json:"stones"`
	Liberties []board.Position `json:"liberties"`
	Alive     bool             `json:"alive"`
}

type TerritoryResponse struct {
	Black         int `json:"black"`
	White         int `json:"white"`
	CapturedBlack int `json:"captured_black"`
	CapturedWhite int `json:"captured_white"`
}

// FeatureResponse carries either Dense or Indices/Values.
type FeatureResponse struct {
	Size    int       `json:"size"`
	Sparse  bool      `json:"sparse"`
	Dense   []float64 `json:"dense,omitempty"`
	Indices []int32   `json:"indices,omitempty"`
	Values  []float64 `json:"values,omitempty"`
}

// ReplayFrame is one websocket message of a record replay.
type ReplayFrame struct {
	Step          int            `json:"step"`
	Kind          string         `json:"kind"`
	Side          string         `json:"side"`
	Position      board.Position `json:"position"`
	Notation      string         `json:"notation"`
	Board         string         `json:"board"`
	CapturedBlack int            `json:"captured_black"`
	CapturedWhite int            `json:"captured_white"`
}

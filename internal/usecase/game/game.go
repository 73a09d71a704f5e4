package game

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"goban/internal/domain/board"
	"goban/internal/domain/game"
	"goban/internal/errors"
	"goban/internal/grid"
	"goban/internal/usecase/diagram"
	"goban/internal/usecase/features"
	"goban/internal/usecase/record"
)

type GameStore interface {
	GenerateRecordID() string
	PutRecord(ctx context.Context, rec game.Record) error
	GetRecord(ctx context.Context, recordID string) (game.Record, error)
	LoadSGF(ctx context.Context, recordID string) (string, error)
}

type GameUseCase struct {
	store GameStore
	log   *zap.SugaredLogger
}

func NewGameUseCase(store GameStore, log *zap.SugaredLogger) *GameUseCase {
	return &GameUseCase{store: store, log: log}
}

// ImportRecord parses sgfText, replays it and archives the summary.
func (g *GameUseCase) ImportRecord(ctx context.Context, sgfText string) (game.Record, error) {
	rec, ok := record.ParseTransitions(record.SplitLines(sgfText))
	if !ok {
		return game.Record{}, errors.ErrRecordRejected
	}
	b, err := game.Assemble(board.Standard, rec.Transitions)
	if err != nil {
		return game.Record{}, fmt.Errorf("%w: %v", errors.ErrRecordCorrupted, err)
	}
	if rec.Skipped > 0 {
		g.log.Infof("record import: skipped %d undecodable tokens", rec.Skipped)
	}

	summary := game.Record{
		RecordID:      g.store.GenerateRecordID(),
		CreatedAt:     time.Now(),
		Dimension:     b.Grid.Dimension(),
		Winner:        rec.Winner.String(),
		Moves:         b.Moves,
		Handicap:      rec.Handicap,
		CapturedBlack: b.Grid.CapturedBlack(),
		CapturedWhite: b.Grid.CapturedWhite(),
		BoardHash:     strconv.FormatUint(grid.Hash(b.Grid), 16),
		SGF:           sgfText,
	}
	if err = g.store.PutRecord(ctx, summary); err != nil {
		return game.Record{}, err
	}
	return summary, nil
}

func (g *GameUseCase) loadRecord(ctx context.Context, recordID string) (record.Record, error) {
	text, err := g.store.LoadSGF(ctx, recordID)
	if err != nil {
		return record.Record{}, err
	}
	rec, ok := record.ParseTransitions(record.SplitLines(text))
	if !ok {
		return record.Record{}, fmt.Errorf("%w: stored record %s", errors.ErrRecordCorrupted, recordID)
	}
	return rec, nil
}

// LoadGame replays a stored record into its final board.
func (g *GameUseCase) LoadGame(ctx context.Context, recordID string) (game.Game, error) {
	rec, err := g.loadRecord(ctx, recordID)
	if err != nil {
		return game.Game{}, err
	}
	b, err := game.Assemble(board.Standard, rec.Transitions)
	if err != nil {
		return game.Game{}, fmt.Errorf("%w: %v", errors.ErrRecordCorrupted, err)
	}
	return game.Game{Board: b, Winner: rec.Winner}, nil
}

func (g *GameUseCase) BoardState(ctx context.Context, recordID string) (game.BoardStateResponse, error) {
	play, err := g.LoadGame(ctx, recordID)
	if err != nil {
		return game.BoardStateResponse{}, err
	}
	cells, err := grid.FlattenChars(play.Board.Grid)
	if err != nil {
		return game.BoardStateResponse{}, fmt.Errorf("%w: %v", errors.ErrRecordCorrupted, err)
	}
	return game.BoardStateResponse{
		RecordID:      recordID,
		Dimension:     play.Board.Grid.Dimension().String(),
		Board:         grid.Format(play.Board.Grid),
		Cells:         string(cells),
		Winner:        play.Winner.String(),
		Moves:         play.Board.Moves,
		CapturedBlack: play.Board.Grid.CapturedBlack(),
		CapturedWhite: play.Board.Grid.CapturedWhite(),
		Hash:          grid.Hash(play.Board.Grid),
	}, nil
}

// Group describes the group at p on the final board of the record. For an
// empty point the group is the surrounding empty region.
func (g *GameUseCase) Group(ctx context.Context, recordID string, p board.Position) (game.GroupResponse, error) {
	play, err := g.LoadGame(ctx, recordID)
	if err != nil {
		return game.GroupResponse{}, err
	}
	side, err := play.Board.Grid.Get(p)
	if err != nil {
		return game.GroupResponse{}, fmt.Errorf("%w: %s", errors.ErrInvalidPosition, p)
	}
	notation, _ := record.Standard.Notation(p)
	return game.GroupResponse{
		Position:  p,
		Notation:  notation,
		Side:      side.String(),
		Stones:    grid.IdentifyGroup(play.Board.Grid, p).Sorted(),
		Liberties: grid.GroupLiberties(play.Board.Grid, p).Sorted(),
		Alive:     grid.IsAlive(play.Board.Grid, p),
	}, nil
}

func (g *GameUseCase) Territory(ctx context.Context, recordID string) (game.TerritoryResponse, error) {
	play, err := g.LoadGame(ctx, recordID)
	if err != nil {
		return game.TerritoryResponse{}, err
	}
	terr := grid.Territory(play.Board.Grid)
	return game.TerritoryResponse{
		Black:         terr[board.Black].Len(),
		White:         terr[board.White].Len(),
		CapturedBlack: play.Board.Grid.CapturedBlack(),
		CapturedWhite: play.Board.Grid.CapturedWhite(),
	}, nil
}

func (g *GameUseCase) Features(ctx context.Context, recordID string, denseOnly bool) (game.FeatureResponse, error) {
	play, err := g.LoadGame(ctx, recordID)
	if err != nil {
		return game.FeatureResponse{}, err
	}
	encode := features.Encode
	if denseOnly {
		encode = features.Dense
	}
	v, err := encode(play.Board.Grid)
	if err != nil {
		return game.FeatureResponse{}, fmt.Errorf("%w: %v", errors.ErrRecordCorrupted, err)
	}
	return game.FeatureResponse{
		Size:    v.Size,
		Sparse:  v.IsSparse(),
		Dense:   v.Dense,
		Indices: v.Indices,
		Values:  v.Values,
	}, nil
}

// SetupSGF returns the final position of the record as an SGF setup node.
func (g *GameUseCase) SetupSGF(ctx context.Context, recordID string) (string, error) {
	play, err := g.LoadGame(ctx, recordID)
	if err != nil {
		return "", err
	}
	setup, err := PrepareSetupSgf(play.Board.Grid, play.Winner)
	if err != nil {
		return "", err
	}
	return SerializeSGF(&setup), nil
}

func (g *GameUseCase) Diagram(ctx context.Context, recordID string, w io.Writer) error {
	play, err := g.LoadGame(ctx, recordID)
	if err != nil {
		return err
	}
	return diagram.Render(w, play.Board.Grid, diagram.Options{
		Title:  "Record " + recordID,
		Winner: play.Winner,
	})
}

// Replay calls fn with one frame per transition, in record order.
func (g *GameUseCase) Replay(ctx context.Context, recordID string, fn func(game.ReplayFrame) error) error {
	rec, err := g.loadRecord(ctx, recordID)
	if err != nil {
		return err
	}
	_, err = game.Replay(board.Standard, rec.Transitions, func(step int, t board.Transition, b *game.Board) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		kind := "move"
		if _, ok := t.(board.Flip); ok {
			kind = "setup"
		}
		notation, _ := record.Standard.Notation(t.Target())
		return fn(game.ReplayFrame{
			Step:          step,
			Kind:          kind,
			Side:          t.Stone().String(),
			Position:      t.Target(),
			Notation:      notation,
			Board:         strings.TrimRight(grid.Format(b.Grid), "\n"),
			CapturedBlack: b.Grid.CapturedBlack(),
			CapturedWhite: b.Grid.CapturedWhite(),
		})
	})
	return err
}

func (g *GameUseCase) RecordSummary(ctx context.Context, recordID string) (game.Record, error) {
	return g.store.GetRecord(ctx, recordID)
}

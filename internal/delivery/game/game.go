package game

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"goban/internal/bootstrap"
	"goban/internal/domain/board"
	"goban/internal/domain/game"
	errs "goban/internal/errors"
	"goban/internal/httpresponse"
	gameuc "goban/internal/usecase/game"
	"goban/internal/utils"
)

type GameHandler struct {
	cfg    bootstrap.Config
	log    *zap.SugaredLogger
	gameUC *gameuc.GameUseCase
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewGameHandler(cfg bootstrap.Config, log *zap.SugaredLogger, gameUC *gameuc.GameUseCase) *GameHandler {
	return &GameHandler{
		cfg:    cfg,
		log:    log,
		gameUC: gameUC,
	}
}

// Routes mounts the record endpoints on r.
func (g *GameHandler) Routes(r chi.Router) {
	r.Post("/records", g.HandleImportRecord)
	r.Route("/records/{recordID}", func(r chi.Router) {
		r.Get("/", g.HandleBoardState)
		r.Get("/summary", g.HandleSummary)
		r.Get("/group", g.HandleGroup)
		r.Get("/territory", g.HandleTerritory)
		r.Get("/features", g.HandleFeatures)
		r.Get("/sgf", g.HandleSetupSGF)
		r.Get("/diagram.pdf", g.HandleDiagram)
		r.Get("/replay", g.HandleReplay)
	})
}

func (g *GameHandler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrRecordRejected), errors.Is(err, errs.ErrInvalidPosition):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrRecordCorrupted):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		g.log.Error(err)
		httpresponse.WriteResponseWithStatus(w, status,
			httpresponse.ErrorResponse{ErrorDescription: errs.ErrInternal.Error()})
		return
	}
	g.log.Debugf("request failed: %v", err)
	httpresponse.WriteResponseWithStatus(w, status, httpresponse.ErrorResponse{ErrorDescription: err.Error()})
}

// HandleImportRecord godoc
// @Summary Import a game record
// @Tags records
// @Accept json
// @Produce json
// @Param record body game.RecordCreateRequest true "SGF text"
// @Success 200 {object} game.RecordCreateResponse
// @Failure 400 {object} httpresponse.ErrorResponse
// @Failure 413 {object} httpresponse.ErrorResponse
// @Router /records [post]
func (g *GameHandler) HandleImportRecord(w http.ResponseWriter, r *http.Request) {
	var req game.RecordCreateRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpresponse.WriteResponseWithStatus(w, http.StatusRequestEntityTooLarge,
				httpresponse.ErrorResponse{ErrorDescription: "request body is too large"})
			return
		}
		g.log.Error("JSON decode error:", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: httpresponse.MALFORMEDJSON_errorDesc})
		return
	}

	rec, err := g.gameUC.ImportRecord(r.Context(), req.SGF)
	if err != nil {
		g.writeError(w, err)
		return
	}

	g.log.Info("New record imported with id: " + rec.RecordID)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, game.RecordCreateResponse{RecordID: rec.RecordID})
}

func (g *GameHandler) HandleBoardState(w http.ResponseWriter, r *http.Request) {
	state, err := g.gameUC.BoardState(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		g.writeError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, state)
}

func (g *GameHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	rec, err := g.gameUC.RecordSummary(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		g.writeError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, rec)
}

// HandleGroup godoc
// @Summary Group, liberties and status of the stone at col,row
// @Tags records
// @Produce json
// @Param col query int true "column, from 0"
// @Param row query int true "row, from 0"
// @Success 200 {object} game.GroupResponse
// @Router /records/{recordID}/group [get]
func (g *GameHandler) HandleGroup(w http.ResponseWriter, r *http.Request) {
	col, errCol := strconv.Atoi(r.URL.Query().Get("col"))
	row, errRow := strconv.Atoi(r.URL.Query().Get("row"))
	if errCol != nil || errRow != nil {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: "col and row must be integers"})
		return
	}

	resp, err := g.gameUC.Group(r.Context(), chi.URLParam(r, "recordID"), board.Position{Column: col, Row: row})
	if err != nil {
		g.writeError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

func (g *GameHandler) HandleTerritory(w http.ResponseWriter, r *http.Request) {
	resp, err := g.gameUC.Territory(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		g.writeError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

func (g *GameHandler) HandleFeatures(w http.ResponseWriter, r *http.Request) {
	denseOnly := g.cfg.FeatureDenseOnly || r.URL.Query().Get("dense") == "true"
	resp, err := g.gameUC.Features(r.Context(), chi.URLParam(r, "recordID"), denseOnly)
	if err != nil {
		g.writeError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

func (g *GameHandler) HandleSetupSGF(w http.ResponseWriter, r *http.Request) {
	text, err := g.gameUC.SetupSGF(r.Context(), chi.URLParam(r, "recordID"))
	if err != nil {
		g.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/x-go-sgf")
	_, _ = w.Write([]byte(text))
}

func (g *GameHandler) HandleDiagram(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := g.gameUC.Diagram(r.Context(), chi.URLParam(r, "recordID"), &buf); err != nil {
		g.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	_, _ = w.Write(buf.Bytes())
}

// HandleReplay upgrades to a websocket and sends one ReplayFrame per
// transition of the record, then closes the connection normally.
func (g *GameHandler) HandleReplay(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordID")

	// fail before the upgrade so plain HTTP clients get a status code
	if _, err := g.gameUC.RecordSummary(r.Context(), recordID); err != nil {
		g.writeError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Error("upgrade error:", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// reader loop only to notice the client going away
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	err = g.gameUC.Replay(ctx, recordID, func(frame game.ReplayFrame) error {
		return conn.WriteJSON(frame)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		g.log.Errorw("replay failed", "record_id", recordID, "error", err)
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "replay failed"))
		return
	}

	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replay complete"))
}

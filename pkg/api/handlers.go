package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/yourusername/urengine/internal/positionid"
	"github.com/yourusername/urengine/internal/simulate"
	"github.com/yourusername/urengine/pkg/engine"
	"github.com/yourusername/urengine/pkg/match"
	"github.com/yourusername/urengine/pkg/protocol"
	"github.com/yourusername/urengine/pkg/session"
)

// MaxSimulatedGames caps a single simulation request.
const MaxSimulatedGames = 100000

var errMissingTarget = errors.New("move needs either row and col or path")

// Handlers holds the HTTP handlers and the session they drive.
type Handlers struct {
	mu      sync.Mutex // guards sess
	sess    *session.Session
	version string
	pool    *WorkerPool
	events  *Broker
}

// NewHandlers creates handlers for sess. A nil pool disables simulation limits.
func NewHandlers(sess *session.Session, version string, pool *WorkerPool) *Handlers {
	return &Handlers{
		sess:    sess,
		version: version,
		pool:    pool,
		events:  NewBroker(),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, msg string, code string) {
	writeJSON(w, status, ErrorResponse{
		Error: msg,
		Code:  code,
	})
}

// classify maps a game error to an HTTP status and error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, session.ErrGameFinished):
		return http.StatusConflict, "GAME_FINISHED"
	case errors.Is(err, session.ErrRollPending):
		return http.StatusConflict, "ROLL_PENDING"
	case errors.Is(err, session.ErrNoRoll):
		return http.StatusConflict, "NO_ROLL"
	case errors.Is(err, engine.ErrNoSuchGridMapping):
		return http.StatusBadRequest, "NO_GRID_MAPPING"
	case errors.Is(err, errMissingTarget):
		return http.StatusBadRequest, "INVALID_REQUEST"
	}

	if o, ok := engine.OutcomeOf(err); ok {
		switch o {
		case engine.RollExhausted:
			return http.StatusUnprocessableEntity, "ROLL_EXHAUSTED"
		case engine.OutOfBounds:
			return http.StatusUnprocessableEntity, "OUT_OF_BOUNDS"
		case engine.NoSourceChecker:
			return http.StatusUnprocessableEntity, "NO_SOURCE_CHECKER"
		case engine.InvalidDestination:
			return http.StatusUnprocessableEntity, "INVALID_DESTINATION"
		}
		return http.StatusUnprocessableEntity, "INVALID_MOVE"
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}

func writeGameError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	writeError(w, status, err.Error(), code)
}

// decodeBody decodes an optional JSON body. An empty body leaves v untouched.
func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// stateOf builds the state payload. The caller holds h.mu.
func stateOf(sess *session.Session) StateResponse {
	b := sess.Board()
	st := StateResponse{
		GameID:     sess.ID(),
		PositionID: positionid.PositionID(&b),
		Turn:       b.Turn.String(),
		Phase:      b.Phase().String(),
		LegalMoves: b.LegalMoves(),
		LegalCells: []CellResponse{},
		Board:      protocol.RenderBoard(&b),
	}
	if st.LegalMoves == nil {
		st.LegalMoves = []int{}
	}
	if roll, ok := b.PendingRoll(); ok {
		st.Roll = &roll
	}
	for p := range b.Tracks {
		for i, n := range b.Tracks[p] {
			st.Tracks[p][i] = int(n)
		}
	}
	for _, idx := range st.LegalMoves {
		if c, ok := engine.Path.PathToGrid(b.Turn, idx); ok {
			st.LegalCells = append(st.LegalCells, CellResponse{Row: c.Row, Col: c.Col})
		}
	}
	if w, ok := b.Winner(); ok {
		st.Winner = w.String()
	}
	return st
}

// State returns the current game state.
func (h *Handlers) State() StateResponse {
	h.mu.Lock()
	defer h.mu.Unlock()
	return stateOf(h.sess)
}

// NewGame discards the current game and starts another.
func (h *Handlers) NewGame() StateResponse {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sess.Reset()
	st := stateOf(h.sess)
	h.events.Publish(Event{Type: "new", State: st})
	return st
}

// Roll throws the dice for the player to move.
func (h *Handlers) Roll() (RollResponse, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	res, err := h.sess.Roll()
	if err != nil {
		return RollResponse{}, err
	}
	st := stateOf(h.sess)
	h.events.Publish(Event{Type: "roll", State: st})
	return RollResponse{
		Player: res.Player.String(),
		Dice:   res.Throw.Dice,
		Total:  res.Throw.Total,
		Passed: res.Passed,
		State:  st,
	}, nil
}

// Move applies a move selected by cell or path index.
func (h *Handlers) Move(req MoveRequest) (MoveResponse, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var (
		m   engine.Move
		err error
	)
	switch {
	case req.Row != nil && req.Col != nil:
		m, err = h.sess.Click(*req.Row, *req.Col)
	case req.Path != nil:
		m, err = h.sess.Move(*req.Path)
	default:
		err = errMissingTarget
	}
	if err != nil {
		return MoveResponse{}, err
	}

	st := stateOf(h.sess)
	h.events.Publish(Event{Type: "move", State: st})
	return MoveResponse{
		Player:   m.Player.String(),
		From:     m.From,
		To:       m.To,
		Captured: m.Captured,
		Notation: match.FormatMove(m),
		State:    st,
	}, nil
}

// Pass hands the turn to the other player.
func (h *Handlers) Pass() (StateResponse, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.sess.Pass(); err != nil {
		return StateResponse{}, err
	}
	st := stateOf(h.sess)
	h.events.Publish(Event{Type: "pass", State: st})
	return st, nil
}

// History returns the record of the current game.
func (h *Handlers) History() (HistoryResponse, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	g := h.sess.Record()
	var sb strings.Builder
	if err := match.Format(&sb, g); err != nil {
		return HistoryResponse{}, fmt.Errorf("format transcript: %w", err)
	}

	resp := HistoryResponse{
		GameID:     g.ID,
		Actions:    make([]ActionResponse, 0, len(g.Actions)),
		Captures:   g.Captures(),
		Transcript: sb.String(),
	}
	if g.Winner >= 0 {
		resp.Winner = engine.Player(g.Winner).String()
	}
	for _, a := range g.Actions {
		resp.Actions = append(resp.Actions, actionResponse(a))
	}
	return resp, nil
}

func actionResponse(a match.Action) ActionResponse {
	ar := ActionResponse{Type: a.Type.String(), Player: a.Player.String()}
	switch a.Type {
	case match.ActionRoll:
		total := a.Throw.Total
		ar.Dice = a.Throw.Dice[:]
		ar.Total = &total
	case match.ActionMove:
		from, to := a.Move.From, a.Move.To
		ar.From = &from
		ar.To = &to
		ar.Captured = a.Move.Captured
	}
	return ar
}

// Health handles GET /api/health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	id := h.sess.ID()
	h.mu.Unlock()

	resp := HealthResponse{
		Status:      "ok",
		Version:     h.version,
		GameID:      id,
		Subscribers: h.events.Count(),
	}
	if h.pool != nil {
		stats := h.pool.Stats()
		resp.Pool = &stats
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleState handles GET /api/state
func (h *Handlers) HandleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.State())
}

// HandleLegal handles GET /api/legal
func (h *Handlers) HandleLegal(w http.ResponseWriter, r *http.Request) {
	st := h.State()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"turn":        st.Turn,
		"roll":        st.Roll,
		"legal_moves": st.LegalMoves,
		"legal_cells": st.LegalCells,
	})
}

// HandleNew handles POST /api/new
func (h *Handlers) HandleNew(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.NewGame())
}

// HandleRoll handles POST /api/roll
func (h *Handlers) HandleRoll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Roll()
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleMove handles POST /api/move
func (h *Handlers) HandleMove(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error(), "INVALID_JSON")
		return
	}

	resp, err := h.Move(req)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandlePass handles POST /api/pass
func (h *Handlers) HandlePass(w http.ResponseWriter, r *http.Request) {
	st, err := h.Pass()
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// HandleHistory handles GET /api/history
func (h *Handlers) HandleHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := h.History()
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleSimulate handles POST /api/simulate
func (h *Handlers) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error(), "INVALID_JSON")
		return
	}
	if req.Games < 0 || req.Games > MaxSimulatedGames {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("games must be between 0 and %d", MaxSimulatedGames), "INVALID_REQUEST")
		return
	}

	if h.pool != nil {
		if err := h.pool.Acquire(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "server busy", "SERVER_BUSY")
			return
		}
		defer h.pool.Release()
	}

	res, err := simulate.Run(r.Context(), simulate.Options{
		Games:   req.Games,
		Seed:    req.Seed,
		Workers: req.Workers,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "simulation failed: "+err.Error(), "SIMULATION_FAILED")
		return
	}

	writeJSON(w, http.StatusOK, SimulateResponse{
		Games:       res.Games,
		FirstWins:   res.Wins[engine.First],
		SecondWins:  res.Wins[engine.Second],
		Unfinished:  res.Unfinished,
		Captures:    res.Captures,
		Passes:      res.Passes,
		MeanTurns:   res.MeanTurns,
		StdDevTurns: res.StdDevTurns,
		MaxTurns:    res.MaxTurns,
	})
}

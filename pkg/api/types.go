// Package api provides an HTTP/JSON API for a hot-seat game of Ur.
//
// One server hosts one session. Both players act through the same
// endpoints; the session decides whose turn it is.
package api

// ============================================================================
// Request Types
// ============================================================================

// MoveRequest selects the checker to move, either by grid cell or by
// path index. Row and Col take precedence when both are present.
type MoveRequest struct {
	Row  *int `json:"row,omitempty"`  // Grid row 0-2
	Col  *int `json:"col,omitempty"`  // Grid column 0-7
	Path *int `json:"path,omitempty"` // Path index 0-15 for the player to move
}

// SimulateRequest is the request body for random self-play.
type SimulateRequest struct {
	Games   int   `json:"games,omitempty"`   // Number of games (default 1000)
	Seed    int64 `json:"seed,omitempty"`    // Random seed (0 = random)
	Workers int   `json:"workers,omitempty"` // Parallel workers (0 = GOMAXPROCS)
}

// ============================================================================
// Response Types
// ============================================================================

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HealthResponse is the response for GET /api/health.
type HealthResponse struct {
	Status      string     `json:"status"`
	Version     string     `json:"version"`
	GameID      string     `json:"game_id"`
	Subscribers int        `json:"subscribers"`
	Pool        *PoolStats `json:"pool,omitempty"`
}

// CellResponse is a grid coordinate.
type CellResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// StateResponse describes the current game.
type StateResponse struct {
	GameID     string         `json:"game_id"`
	PositionID string         `json:"position_id"`
	Turn       string         `json:"turn"`
	Phase      string         `json:"phase"`
	Roll       *int           `json:"roll,omitempty"` // Absent when no roll is pending
	Tracks     [2][16]int     `json:"tracks"`         // Checker counts per path index
	LegalMoves []int          `json:"legal_moves"`
	LegalCells []CellResponse `json:"legal_cells"` // Cells of LegalMoves, reserve excluded
	Winner     string         `json:"winner,omitempty"`
	Board      string         `json:"board"` // Text rendering
}

// RollResponse is the response for a roll.
type RollResponse struct {
	Player string        `json:"player"`
	Dice   [4]int        `json:"dice"`
	Total  int           `json:"total"`
	Passed bool          `json:"passed"` // Turn passed automatically for lack of moves
	State  StateResponse `json:"state"`
}

// MoveResponse is the response for an applied move.
type MoveResponse struct {
	Player   string        `json:"player"`
	From     int           `json:"from"`
	To       int           `json:"to"`
	Captured bool          `json:"captured"`
	Notation string        `json:"notation"`
	State    StateResponse `json:"state"`
}

// ActionResponse is one entry of the game record.
type ActionResponse struct {
	Type     string `json:"type"` // roll, move or pass
	Player   string `json:"player"`
	Dice     []int  `json:"dice,omitempty"`
	Total    *int   `json:"total,omitempty"`
	From     *int   `json:"from,omitempty"`
	To       *int   `json:"to,omitempty"`
	Captured bool   `json:"captured,omitempty"`
}

// HistoryResponse is the response for GET /api/history.
type HistoryResponse struct {
	GameID     string           `json:"game_id"`
	Actions    []ActionResponse `json:"actions"`
	Captures   [2]int           `json:"captures"`
	Winner     string           `json:"winner,omitempty"`
	Transcript string           `json:"transcript"`
}

// SimulateResponse summarizes a self-play run.
type SimulateResponse struct {
	Games       int     `json:"games"`
	FirstWins   int     `json:"first_wins"`
	SecondWins  int     `json:"second_wins"`
	Unfinished  int     `json:"unfinished"`
	Captures    int     `json:"captures"`
	Passes      int     `json:"passes"`
	MeanTurns   float64 `json:"mean_turns"`
	StdDevTurns float64 `json:"stddev_turns"`
	MaxTurns    int     `json:"max_turns"`
}

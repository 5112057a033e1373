package engine

import (
	"errors"
	"fmt"
)

// Outcome classifies the result of a move attempt.
type Outcome int

const (
	Moved              Outcome = iota // Move applied
	RollExhausted                     // No roll pending, or the roll is zero
	OutOfBounds                       // Source or destination outside the path
	NoSourceChecker                   // No own checker at the source index
	InvalidDestination                // Destination holds an own checker outside home
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case RollExhausted:
		return "roll exhausted"
	case OutOfBounds:
		return "out of bounds"
	case NoSourceChecker:
		return "no source checker"
	case InvalidDestination:
		return "invalid destination"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

var (
	// ErrInvalidMove matches every rejected move.
	ErrInvalidMove = errors.New("invalid move")
	// ErrNoSuchGridMapping matches a coordinate that is not on the active player's path.
	ErrNoSuchGridMapping = errors.New("no such grid mapping")
)

// MoveError reports why a move was rejected. The board is unchanged.
type MoveError struct {
	Outcome Outcome
	Player  Player
	From    int
	Roll    int // -1 when no roll was pending
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("invalid move for %s from %d with roll %d: %s", e.Player, e.From, e.Roll, e.Outcome)
}

// Is lets errors.Is match ErrInvalidMove and MoveErrors with the same outcome.
func (e *MoveError) Is(target error) bool {
	if target == ErrInvalidMove {
		return true
	}
	if t, ok := target.(*MoveError); ok {
		return e.Outcome == t.Outcome
	}
	return false
}

// GridError reports a coordinate with no path mapping.
type GridError struct {
	Player   Player
	Row, Col int
}

func (e *GridError) Error() string {
	return fmt.Sprintf("cell (%d,%d) is not on the %s player's path", e.Row, e.Col, e.Player)
}

func (e *GridError) Is(target error) bool {
	return target == ErrNoSuchGridMapping
}

// OutcomeOf extracts the outcome from an ApplyMove error.
// A nil error yields Moved.
func OutcomeOf(err error) (Outcome, bool) {
	if err == nil {
		return Moved, true
	}
	var me *MoveError
	if errors.As(err, &me) {
		return me.Outcome, true
	}
	return 0, false
}

// Move describes an applied move.
type Move struct {
	Player   Player
	From     int
	To       int
	Roll     int
	Captured bool // An opponent checker was sent back to reserve
}

// CheckMove validates a move from the given path index for the active
// player and returns its destination. The board is not modified.
func (b *Board) CheckMove(from int) (int, error) {
	roll, ok := b.PendingRoll()
	if !ok || roll == 0 {
		return 0, b.moveError(RollExhausted, from)
	}

	to := from + roll
	if from < 0 || to >= PathLength {
		return 0, b.moveError(OutOfBounds, from)
	}

	own := &b.Tracks[b.Turn]
	if own[from] < 1 {
		return 0, b.moveError(NoSourceChecker, from)
	}

	// Home stacks; everywhere else a cell holds at most one own checker.
	if own[to] > 0 && to != Home {
		return 0, b.moveError(InvalidDestination, from)
	}

	return to, nil
}

// ApplyMove moves one of the active player's checkers from the given path
// index by the pending roll. A lone opponent checker on the destination is
// captured when the destination is in the shared lane. On success the roll
// is cleared and the turn passes; on failure the board is unchanged.
func (b *Board) ApplyMove(from int) (Move, error) {
	to, err := b.CheckMove(from)
	if err != nil {
		return Move{}, err
	}

	m := Move{
		Player: b.Turn,
		From:   from,
		To:     to,
		Roll:   int(b.Roll),
	}

	own := &b.Tracks[b.Turn]
	own[from]--
	own[to]++

	// Private lanes never coincide, so capture is limited to the shared lane.
	opp := &b.Tracks[b.Turn.Opponent()]
	if InSharedLane(to) && opp[to] == 1 {
		opp[to] = 0
		opp[Reserve]++
		m.Captured = true
	}

	b.PassTurn()
	return m, nil
}

// LegalMoves returns the source indices the active player may move from
// with the pending roll. It is empty when no roll is pending, the roll is
// zero, or every move is blocked.
func (b *Board) LegalMoves() []int {
	var moves []int
	for from := 0; from < PathLength; from++ {
		if _, err := b.CheckMove(from); err == nil {
			moves = append(moves, from)
		}
	}
	return moves
}

func (b *Board) moveError(o Outcome, from int) *MoveError {
	return &MoveError{Outcome: o, Player: b.Turn, From: from, Roll: int(b.Roll)}
}

// Package session drives one Ur game on behalf of an input source.
//
// A Session owns a board, its dice and the game record, and gates every
// action on the turn state machine: roll only while awaiting a roll, move
// only with a roll taken, and nothing at all once the game is finished.
// The engine itself does not enforce these rules.
package session

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/urengine/pkg/engine"
	"github.com/yourusername/urengine/pkg/match"
)

var (
	ErrGameFinished = errors.New("game is finished")
	ErrRollPending  = errors.New("roll already taken this turn")
	ErrNoRoll       = errors.New("no roll taken this turn")
)

// Options configures a session.
type Options struct {
	Seed     int64 // Dice seed (0 = seed from crypto/rand)
	AutoPass bool  // Pass automatically after a roll with no legal move
	Verbose  bool  // Log every action
}

// Session is one game in progress. It is not safe for concurrent use.
type Session struct {
	opts   Options
	board  *engine.Board
	dice   *engine.Dice
	record *match.Game
}

// New creates a session with a fresh game.
func New(opts Options) (*Session, error) {
	s := &Session{opts: opts}
	if opts.Seed != 0 {
		s.dice = engine.NewDice(opts.Seed)
	} else {
		d, err := engine.NewRandomDice()
		if err != nil {
			return nil, fmt.Errorf("create dice: %w", err)
		}
		s.dice = d
	}
	s.Reset()
	return s, nil
}

// Reset discards the current game and starts a new one with the same dice.
func (s *Session) Reset() {
	s.board = engine.NewGame()
	s.record = match.NewGame(uuid.NewString(), time.Now())
	s.logf("new game %s", s.record.ID)
}

// ID returns the current game's ID.
func (s *Session) ID() string {
	return s.record.ID
}

// Board returns a copy of the current board.
func (s *Session) Board() engine.Board {
	return *s.board
}

// Record returns the current game record.
func (s *Session) Record() *match.Game {
	return s.record
}

// Options returns the session options.
func (s *Session) Options() Options {
	return s.opts
}

// RollResult describes a roll and what followed it.
type RollResult struct {
	Throw      engine.Throw
	Player     engine.Player
	LegalMoves []int
	Passed     bool // The turn was passed automatically
}

// Roll throws the dice for the player to move.
func (s *Session) Roll() (RollResult, error) {
	switch s.board.Phase() {
	case engine.Finished:
		return RollResult{}, ErrGameFinished
	case engine.RollTaken:
		return RollResult{}, ErrRollPending
	}

	player := s.board.Turn
	t := s.dice.Roll(s.board)
	s.record.AddRoll(player, t)
	s.logf("%s rolled %d", player, t.Total)

	res := RollResult{
		Throw:      t,
		Player:     player,
		LegalMoves: s.board.LegalMoves(),
	}
	if s.opts.AutoPass && len(res.LegalMoves) == 0 {
		s.pass()
		res.Passed = true
	}
	return res, nil
}

// Move moves the active player's checker from the given path index.
func (s *Session) Move(from int) (engine.Move, error) {
	switch s.board.Phase() {
	case engine.Finished:
		return engine.Move{}, ErrGameFinished
	case engine.AwaitingRoll:
		return engine.Move{}, ErrNoRoll
	}

	m, err := s.board.ApplyMove(from)
	if err != nil {
		s.logf("%s move from %d rejected: %v", s.board.Turn, from, err)
		return engine.Move{}, err
	}
	s.record.AddMove(m)
	s.logf("%s moved %s", m.Player, match.FormatMove(m))

	if w, ok := s.board.Winner(); ok {
		s.record.SetWinner(w)
		s.logf("%s wins game %s", w, s.record.ID)
	}
	return m, nil
}

// Click resolves a grid coordinate for the active player and moves from it.
func (s *Session) Click(row, col int) (engine.Move, error) {
	if s.board.IsFinished() {
		return engine.Move{}, ErrGameFinished
	}
	from, err := s.board.ActiveCell(row, col)
	if err != nil {
		return engine.Move{}, err
	}
	return s.Move(from)
}

// Pass hands the turn to the other player, discarding any pending roll.
func (s *Session) Pass() error {
	if s.board.IsFinished() {
		return ErrGameFinished
	}
	s.pass()
	return nil
}

func (s *Session) pass() {
	player := s.board.Turn
	s.board.PassTurn()
	s.record.AddPass(player)
	s.logf("%s passed", player)
}

// LegalMoves returns the legal source indices for the pending roll.
func (s *Session) LegalMoves() []int {
	return s.board.LegalMoves()
}

func (s *Session) logf(format string, args ...any) {
	if s.opts.Verbose {
		log.Printf(format, args...)
	}
}

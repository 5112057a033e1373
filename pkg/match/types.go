// Package match records the actions of an Ur game and formats them as a
// human-readable transcript.
package match

import (
	"time"

	"github.com/yourusername/urengine/pkg/engine"
)

// Game is the record of a single game.
type Game struct {
	ID      string    // Session-assigned game ID
	Started time.Time // When the game was created
	Actions []Action  // Sequence of game actions
	Winner  int       // 0 = first, 1 = second, -1 = not finished
}

// ActionType represents the type of game action.
type ActionType int

const (
	ActionRoll ActionType = iota // Dice roll
	ActionMove                   // Checker move
	ActionPass                   // Turn passed without moving
)

func (t ActionType) String() string {
	switch t {
	case ActionRoll:
		return "roll"
	case ActionMove:
		return "move"
	case ActionPass:
		return "pass"
	default:
		return "unknown"
	}
}

// Action represents a single game action.
type Action struct {
	Type   ActionType
	Player engine.Player
	Throw  engine.Throw // Dice thrown (for ActionRoll)
	Move   engine.Move  // Move made (for ActionMove)
}

// NewGame creates an empty record.
func NewGame(id string, started time.Time) *Game {
	return &Game{
		ID:      id,
		Started: started,
		Actions: make([]Action, 0),
		Winner:  -1,
	}
}

// AddRoll adds a dice roll action to the game.
func (g *Game) AddRoll(player engine.Player, t engine.Throw) {
	g.Actions = append(g.Actions, Action{
		Type:   ActionRoll,
		Player: player,
		Throw:  t,
	})
}

// AddMove adds a move action to the game.
func (g *Game) AddMove(m engine.Move) {
	g.Actions = append(g.Actions, Action{
		Type:   ActionMove,
		Player: m.Player,
		Move:   m,
	})
}

// AddPass adds a pass action to the game.
func (g *Game) AddPass(player engine.Player) {
	g.Actions = append(g.Actions, Action{
		Type:   ActionPass,
		Player: player,
	})
}

// SetWinner marks the game as won by the given player.
func (g *Game) SetWinner(player engine.Player) {
	g.Winner = int(player)
}

// Captures counts the captures made by each player.
func (g *Game) Captures() [2]int {
	var n [2]int
	for _, a := range g.Actions {
		if a.Type == ActionMove && a.Move.Captured {
			n[a.Player]++
		}
	}
	return n
}

package engine

// Phase is the turn state from the active player's perspective.
type Phase int

const (
	AwaitingRoll Phase = iota
	RollTaken
	Finished
)

func (p Phase) String() string {
	switch p {
	case AwaitingRoll:
		return "awaiting roll"
	case RollTaken:
		return "roll taken"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// PassTurn clears the pending roll and hands the turn to the other player.
// It applies regardless of prior state.
func (b *Board) PassTurn() {
	b.Roll = NoRoll
	b.Turn = b.Turn.Opponent()
}

// IsFinished reports whether either player has brought every checker home.
// The engine does not block further calls once this is true.
func (b *Board) IsFinished() bool {
	_, ok := b.Winner()
	return ok
}

// Winner returns the player with all checkers home, if any.
func (b *Board) Winner() (Player, bool) {
	for _, p := range []Player{First, Second} {
		if b.Tracks[p][Home] == NumCheckers {
			return p, true
		}
	}
	return First, false
}

// Phase reports where the board is in the turn state machine.
func (b *Board) Phase() Phase {
	switch {
	case b.IsFinished():
		return Finished
	case b.Roll == NoRoll:
		return AwaitingRoll
	default:
		return RollTaken
	}
}

// Package engine provides the rules engine for the Royal Game of Ur.
package engine

import "fmt"

const (
	NumCheckers = 7  // Checkers per player
	PathLength  = 16 // Path indices 0-15 for each player

	Reserve = 0  // Checkers not yet entered (or returned after capture)
	Home    = 15 // Checkers that finished the race

	SharedLaneStart = 5  // First index both paths pass through
	SharedLaneEnd   = 12 // Last index both paths pass through
)

// NoRoll marks a board with no pending dice value.
const NoRoll int8 = -1

// Player identifies whose turn it is and which track is active.
type Player int

const (
	First Player = iota
	Second
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	switch p {
	case First:
		return Second
	default:
		return First
	}
}

func (p Player) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

// Track holds one player's checker counts along their path.
// Index k is the number of checkers on path position k.
type Track [PathLength]int8

// NewTrack returns a track with every checker in reserve.
func NewTrack() Track {
	var t Track
	t[Reserve] = NumCheckers
	return t
}

// TrackOf builds a track from explicit counters.
// It panics if any counter is negative or the counters don't sum to NumCheckers.
func TrackOf(counts [PathLength]int8) Track {
	t := Track(counts)
	if err := t.Validate(); err != nil {
		panic(err)
	}
	return t
}

// Total returns the number of checkers on the track.
func (t Track) Total() int {
	n := 0
	for _, c := range t {
		n += int(c)
	}
	return n
}

// Validate checks the conservation and non-negativity invariants.
func (t Track) Validate() error {
	for i, c := range t {
		if c < 0 {
			return fmt.Errorf("negative counter %d at index %d", c, i)
		}
	}
	if n := t.Total(); n != NumCheckers {
		return fmt.Errorf("track holds %d checkers, want %d", n, NumCheckers)
	}
	return nil
}

// InSharedLane reports whether a path index is in the lane common to both players.
func InSharedLane(idx int) bool {
	return idx >= SharedLaneStart && idx <= SharedLaneEnd
}

// Board is the authoritative game state.
type Board struct {
	Tracks [2]Track // Indexed by Player
	Turn   Player   // Active player
	Roll   int8     // Pending dice value 0-4, or NoRoll
}

// NewGame returns the starting position: all checkers in reserve,
// First to move, no roll taken.
func NewGame() *Board {
	return &Board{
		Tracks: [2]Track{NewTrack(), NewTrack()},
		Turn:   First,
		Roll:   NoRoll,
	}
}

// Track returns the track of the given player.
func (b *Board) Track(p Player) *Track {
	return &b.Tracks[p]
}

// PendingRoll returns the pending dice value, if any.
func (b *Board) PendingRoll() (int, bool) {
	if b.Roll == NoRoll {
		return 0, false
	}
	return int(b.Roll), true
}

// Validate checks both tracks and the pending roll.
func (b *Board) Validate() error {
	for _, p := range []Player{First, Second} {
		if err := b.Tracks[p].Validate(); err != nil {
			return fmt.Errorf("%s track: %w", p, err)
		}
	}
	if b.Turn != First && b.Turn != Second {
		return fmt.Errorf("invalid turn %d", int(b.Turn))
	}
	if b.Roll != NoRoll && (b.Roll < 0 || b.Roll > MaxRoll) {
		return fmt.Errorf("invalid roll %d", b.Roll)
	}
	return nil
}

// EqualBoards returns true if two boards are identical.
func EqualBoards(b1, b2 *Board) bool {
	return b1.Tracks == b2.Tracks && b1.Turn == b2.Turn && b1.Roll == b2.Roll
}

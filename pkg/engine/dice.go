package engine

import (
	"math/rand"

	"github.com/yourusername/urengine/internal/random"
)

// Dice constants: four binary dice, each showing 0 or 1.
const (
	NumDice = 4
	MaxRoll = NumDice
)

// Throw is the result of one roll.
type Throw struct {
	Dice  [NumDice]int // Individual draws (0 or 1)
	Total int          // Sum of the draws, 0-4
}

// Dice produces movement values. Each instance owns its entropy source,
// so a seeded Dice yields a reproducible sequence.
type Dice struct {
	rng *rand.Rand
}

// NewDice creates dice driven by a seeded generator.
func NewDice(seed int64) *Dice {
	return &Dice{rng: rand.New(rand.NewSource(seed))}
}

// NewRandomDice creates dice seeded from crypto/rand.
func NewRandomDice() (*Dice, error) {
	seed, err := random.NewSeed()
	if err != nil {
		return nil, err
	}
	return NewDice(seed), nil
}

// Throw draws four fair binary dice without touching any board.
func (d *Dice) Throw() Throw {
	var t Throw
	for i := range t.Dice {
		t.Dice[i] = d.rng.Intn(2)
		t.Total += t.Dice[i]
	}
	return t
}

// Roll throws the dice and stores the total as the board's pending roll,
// overwriting any previous value. A zero roll does not pass the turn.
func (d *Dice) Roll(b *Board) Throw {
	t := d.Throw()
	b.Roll = int8(t.Total)
	return t
}

// RollWeights is the number of the 16 equally likely dice outcomes
// that sum to each total 0-4.
var RollWeights = [MaxRoll + 1]int{1, 4, 6, 4, 1}

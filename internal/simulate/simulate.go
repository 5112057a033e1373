// Package simulate plays random self-play games in parallel and checks
// the board invariants after every step.
package simulate

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/yourusername/urengine/pkg/engine"
)

// Options controls a simulation run.
type Options struct {
	Games    int   // Number of games to play (default 1000)
	Seed     int64 // RNG seed (0 = random)
	Workers  int   // Parallel workers (0 = GOMAXPROCS)
	MaxTurns int   // Abandon a game after this many turns (default 10000)
}

// Result aggregates a simulation run.
type Result struct {
	Games       int
	Wins        [2]int
	Unfinished  int
	Captures    int
	Passes      int // Turns passed on a zero roll or a fully blocked roll
	MeanTurns   float64
	StdDevTurns float64
	MaxTurns    int
}

// WinRate returns the share of finished games won by p.
func (r *Result) WinRate(p engine.Player) float64 {
	finished := r.Wins[engine.First] + r.Wins[engine.Second]
	if finished == 0 {
		return 0
	}
	return float64(r.Wins[p]) / float64(finished)
}

// partialResult holds the results from a single worker.
type partialResult struct {
	wins       [2]int
	unfinished int
	captures   int
	passes     int
	turns      []float64
	err        error
}

// DefaultOptions returns the defaults used by the CLI.
func DefaultOptions() Options {
	return Options{
		Games:    1000,
		MaxTurns: 10000,
	}
}

// Run plays opts.Games random games. It returns the first invariant
// violation found, or ctx.Err() if cancelled.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Games <= 0 {
		opts.Games = 1000
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Workers > opts.Games {
		opts.Workers = opts.Games
	}
	if opts.MaxTurns <= 0 {
		opts.MaxTurns = 10000
	}
	if opts.Seed == 0 {
		opts.Seed = rand.Int63()
	}

	perWorker := opts.Games / opts.Workers
	extra := opts.Games % opts.Workers

	results := make(chan partialResult, opts.Workers)
	var wg sync.WaitGroup

	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		games := perWorker
		if i < extra {
			games++
		}
		seed := opts.Seed + int64(i)*1000000

		go func(games int, seed int64) {
			defer wg.Done()
			results <- worker(ctx, games, seed, opts.MaxTurns)
		}(games, seed)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return aggregate(results, opts.Games)
}

func worker(ctx context.Context, games int, seed int64, maxTurns int) partialResult {
	var pr partialResult
	rng := rand.New(rand.NewSource(seed))
	dice := engine.NewDice(rng.Int63())

	for g := 0; g < games; g++ {
		if err := ctx.Err(); err != nil {
			pr.err = err
			return pr
		}
		if err := playGame(rng, dice, maxTurns, &pr); err != nil {
			pr.err = fmt.Errorf("game %d (seed %d): %w", g, seed, err)
			return pr
		}
	}
	return pr
}

// playGame plays one game with uniformly random move selection.
func playGame(rng *rand.Rand, dice *engine.Dice, maxTurns int, pr *partialResult) error {
	b := engine.NewGame()

	for turn := 1; turn <= maxTurns; turn++ {
		dice.Roll(b)

		legal := b.LegalMoves()
		if len(legal) == 0 {
			b.PassTurn()
			pr.passes++
		} else {
			from := legal[rng.Intn(len(legal))]
			m, err := b.ApplyMove(from)
			if err != nil {
				return fmt.Errorf("turn %d: legal move from %d rejected: %w", turn, from, err)
			}
			if m.Captured {
				pr.captures++
			}
		}

		if err := b.Validate(); err != nil {
			return fmt.Errorf("turn %d: %w", turn, err)
		}

		if w, ok := b.Winner(); ok {
			pr.wins[w]++
			pr.turns = append(pr.turns, float64(turn))
			return nil
		}
	}

	pr.unfinished++
	return nil
}

func aggregate(results <-chan partialResult, games int) (*Result, error) {
	r := &Result{Games: games}
	var turns []float64
	var firstErr error

	for pr := range results {
		if pr.err != nil && firstErr == nil {
			firstErr = pr.err
		}
		r.Wins[0] += pr.wins[0]
		r.Wins[1] += pr.wins[1]
		r.Unfinished += pr.unfinished
		r.Captures += pr.captures
		r.Passes += pr.passes
		turns = append(turns, pr.turns...)
	}
	if firstErr != nil {
		return nil, firstErr
	}

	if len(turns) > 0 {
		// Worker completion order varies; sort so sums are reproducible.
		sort.Float64s(turns)
		r.MeanTurns, r.StdDevTurns = stat.MeanStdDev(turns, nil)
		r.MaxTurns = int(turns[len(turns)-1])
	}
	return r, nil
}

package simulate

import (
	"context"
	"errors"
	"testing"

	"github.com/yourusername/urengine/pkg/engine"
)

func TestRunCompletesGames(t *testing.T) {
	res, err := Run(context.Background(), Options{Games: 200, Seed: 7, Workers: 4})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if res.Games != 200 {
		t.Errorf("Games = %d, want 200", res.Games)
	}
	if got := res.Wins[0] + res.Wins[1] + res.Unfinished; got != 200 {
		t.Errorf("wins + unfinished = %d, want 200", got)
	}
	if res.Unfinished != 0 {
		t.Errorf("Unfinished = %d, want 0", res.Unfinished)
	}
	// A game needs at least 7 moves per side times the shortest path.
	if res.MeanTurns < 2*engine.NumCheckers {
		t.Errorf("MeanTurns = %f, implausibly short", res.MeanTurns)
	}
	if res.Captures == 0 {
		t.Error("no captures in 200 random games")
	}
	if res.Passes == 0 {
		t.Error("no passes in 200 random games")
	}
}

func TestRunReproducible(t *testing.T) {
	opts := Options{Games: 50, Seed: 12345, Workers: 2}
	a, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	b, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if *a != *b {
		t.Errorf("same seed gave different results:\n%+v\n%+v", *a, *b)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Games: 10, Seed: 1, Workers: 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestRunMaxTurns(t *testing.T) {
	res, err := Run(context.Background(), Options{Games: 5, Seed: 3, Workers: 1, MaxTurns: 3})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if res.Unfinished != 5 {
		t.Errorf("Unfinished = %d, want 5", res.Unfinished)
	}
	if res.MeanTurns != 0 {
		t.Errorf("MeanTurns = %f, want 0 with no finished games", res.MeanTurns)
	}
}

func TestWinRate(t *testing.T) {
	r := &Result{Wins: [2]int{3, 1}}
	if got := r.WinRate(engine.First); got != 0.75 {
		t.Errorf("WinRate(First) = %f, want 0.75", got)
	}
	if got := (&Result{}).WinRate(engine.Second); got != 0 {
		t.Errorf("WinRate on empty result = %f, want 0", got)
	}
}

// urengine - play and analyze the Royal Game of Ur from the terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/yourusername/urengine/internal/config"
	"github.com/yourusername/urengine/internal/dicestats"
	"github.com/yourusername/urengine/internal/positionid"
	"github.com/yourusername/urengine/internal/simulate"
	"github.com/yourusername/urengine/pkg/engine"
	"github.com/yourusername/urengine/pkg/protocol"
	"github.com/yourusername/urengine/pkg/session"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "play":
		cmdPlay(args)
	case "stats":
		cmdStats(args)
	case "simulate":
		cmdSimulate(args)
	case "id":
		cmdID(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`urengine - Royal Game of Ur

Usage: urengine <command> [options]

Commands:
  play      Play a hot-seat game on stdin/stdout
  stats     Throw the dice and test them against binomial(4, 1/2)
  simulate  Play random games and report statistics
  id        Show the board for a position ID

Use "urengine <command> -h" for command-specific help.

Position ID Format:
  18 base64 characters encoding both tracks, the player to move
  and the pending roll. "urengine id" prints the starting position.`)
}

func cmdPlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "Dice seed (0 = random)")
	autoPass := fs.Bool("autopass", false, "Pass automatically when a roll has no legal move")
	verbose := fs.Bool("verbose", false, "Log every action to stderr")
	prompt := fs.Bool("prompt", true, "Print a prompt before each command")
	fs.Parse(args)

	sess, err := session.New(session.Options{Seed: *seed, AutoPass: *autoPass, Verbose: *verbose})
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	fmt.Print(protocol.RenderBoard(ptr(sess.Board())))
	srv := protocol.NewServer(sess, protocol.Options{Prompt: *prompt})
	if err := srv.Serve(os.Stdin, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func cmdStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	n := fs.Int("n", 160000, "Number of throws")
	seed := fs.Int64("seed", 0, "Dice seed (0 = random)")
	fs.Parse(args)

	if *n <= 0 {
		config.Exitf("Error: -n must be positive")
	}

	dice, err := newDice(*seed)
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	r := dicestats.Sample(dice, *n)
	freq := r.Frequency()

	p := message.NewPrinter(language.English)
	p.Printf("Threw %d rolls of %d dice.\n", r.Trials, engine.NumDice)
	for v := range r.Counts {
		p.Printf("  %d: %9d (%5.2f%%, expected %5.2f%%)\n",
			v, r.Counts[v], freq[v]*100, float64(engine.RollWeights[v])/16*100)
	}
	p.Printf("Chi-square: %.3f (p = %.4f)\n", r.ChiSquare, r.PValue)
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	defaults := simulate.DefaultOptions()
	games := fs.Int("games", defaults.Games, "Number of games to play")
	workers := fs.Int("workers", 0, "Number of worker goroutines (0 = auto)")
	maxTurns := fs.Int("max-turns", defaults.MaxTurns, "Abandon a game after N turns")
	seed := fs.Int64("seed", 0, "Random seed (0 = random)")
	fs.Parse(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	res, err := simulate.Run(ctx, simulate.Options{
		Games:    *games,
		Workers:  *workers,
		MaxTurns: *maxTurns,
		Seed:     *seed,
	})
	elapsed := time.Since(start)
	if err != nil {
		config.Exitf("Error during simulation: %v", err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("Simulation (%d games, %.1fs):\n", res.Games, elapsed.Seconds())
	p.Printf("  First wins:  %d (%.1f%%)\n", res.Wins[engine.First], res.WinRate(engine.First)*100)
	p.Printf("  Second wins: %d (%.1f%%)\n", res.Wins[engine.Second], res.WinRate(engine.Second)*100)
	if res.Unfinished > 0 {
		p.Printf("  Unfinished:  %d\n", res.Unfinished)
	}
	p.Printf("  Turns:       %.1f ± %.1f (max %d)\n", res.MeanTurns, res.StdDevTurns, res.MaxTurns)
	p.Printf("  Captures:    %d\n", res.Captures)
	p.Printf("  Passes:      %d\n", res.Passes)
}

func cmdID(args []string) {
	fs := flag.NewFlagSet("id", flag.ExitOnError)
	posFlag := fs.String("position", "", "Position ID")
	posShort := fs.String("p", "", "Position ID (short form)")
	fs.Parse(args)

	pos := *posFlag
	if pos == "" {
		pos = *posShort
	}

	b := engine.NewGame()
	if pos != "" {
		var err error
		if b, err = positionid.BoardFromPositionID(pos); err != nil {
			config.Exitf("Error: %v", err)
		}
	}

	fmt.Printf("Position ID: %s\n", positionid.PositionID(b))
	fmt.Print(protocol.RenderBoard(b))
}

func newDice(seed int64) (*engine.Dice, error) {
	if seed != 0 {
		return engine.NewDice(seed), nil
	}
	return engine.NewRandomDice()
}

func ptr(b engine.Board) *engine.Board {
	return &b
}

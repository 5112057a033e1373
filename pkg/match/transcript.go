package match

import (
	"fmt"
	"io"
	"strings"

	"github.com/yourusername/urengine/pkg/engine"
)

// Transcript format, one turn per line:
//
//  ; [Game "3f2c..."]
//  ; [Started "2026-01-02T15:04:05Z"]
//
//  1) first   1011 3: 0/3         second  0000 0: pass
//  2) first   0100 1: 3/4*        ...
//
// A '*' marks a capture. The final line names the winner.

// Format writes a transcript of the game.
func Format(w io.Writer, g *Game) error {
	if _, err := fmt.Fprintf(w, "; [Game %q]\n", g.ID); err != nil {
		return err
	}
	if !g.Started.IsZero() {
		if _, err := fmt.Fprintf(w, "; [Started %q]\n", g.Started.UTC().Format("2006-01-02T15:04:05Z")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	for i, turn := range turns(g.Actions) {
		if _, err := fmt.Fprintf(w, "%d) %s\n", i+1, strings.Join(turn, "    ")); err != nil {
			return err
		}
	}

	if g.Winner >= 0 {
		if _, err := fmt.Fprintf(w, "\nWinner: %s\n", engine.Player(g.Winner)); err != nil {
			return err
		}
	}
	return nil
}

// turns groups actions into lines of up to two half-turns (first, second).
func turns(actions []Action) [][]string {
	var lines [][]string
	var line []string
	var current string

	flush := func() {
		if current == "" {
			return
		}
		line = append(line, current)
		current = ""
		if len(line) == 2 {
			lines = append(lines, line)
			line = nil
		}
	}

	for _, a := range actions {
		switch a.Type {
		case ActionRoll:
			flush()
			if len(line) == 1 && a.Player == engine.First {
				// Second never moved this round.
				lines = append(lines, line)
				line = nil
			}
			current = fmt.Sprintf("%-7s %s %d:", a.Player, formatDice(a.Throw), a.Throw.Total)
		case ActionMove:
			current += " " + FormatMove(a.Move)
			flush()
		case ActionPass:
			if current == "" {
				current = fmt.Sprintf("%-7s", a.Player)
			}
			current += " pass"
			flush()
		}
	}
	flush()
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// FormatMove renders a move as "from/to", with '*' for a capture and
// "off" for home.
func FormatMove(m engine.Move) string {
	to := fmt.Sprintf("%d", m.To)
	if m.To == engine.Home {
		to = "off"
	}
	s := fmt.Sprintf("%d/%s", m.From, to)
	if m.Captured {
		s += "*"
	}
	return s
}

func formatDice(t engine.Throw) string {
	var sb strings.Builder
	for _, d := range t.Dice {
		sb.WriteByte(byte('0' + d))
	}
	return sb.String()
}

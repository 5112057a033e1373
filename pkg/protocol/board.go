package protocol

import (
	"fmt"
	"strings"

	"github.com/yourusername/urengine/pkg/engine"
)

// Checker marks used by the text board.
var marks = [2]string{engine.First: "X", engine.Second: "O"}

// RenderBoard draws the board as text, one grid row per line, followed by
// a status line. Reserve and home cells show checker counts.
//
//	    0  1  2  3  4  5  6  7
//	0  [ ][ ][ ][ ] 6  0 [ ][ ]
//	1  [ ][ ][X][ ][ ][ ][ ][ ]
//	2  [ ][ ][ ][ ] 7  0 [ ][ ]
func RenderBoard(b *engine.Board) string {
	var sb strings.Builder

	sb.WriteString("   ")
	for c := 0; c < engine.GridCols; c++ {
		fmt.Fprintf(&sb, " %d ", c)
	}
	sb.WriteByte('\n')

	for r := 0; r < engine.GridRows; r++ {
		fmt.Fprintf(&sb, "%d  ", r)
		for c := 0; c < engine.GridCols; c++ {
			sb.WriteString(cellText(b, r, c))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(Status(b))
	sb.WriteByte('\n')
	return sb.String()
}

func cellText(b *engine.Board, row, col int) string {
	onPath := false
	for _, p := range []engine.Player{engine.First, engine.Second} {
		idx, ok := engine.Path.GridToPath(p, row, col)
		if !ok {
			continue
		}
		onPath = true
		n := b.Tracks[p][idx]
		if idx == engine.Reserve || idx == engine.Home {
			return fmt.Sprintf("%2d ", n)
		}
		if n > 0 {
			return "[" + marks[p] + "]"
		}
	}
	if onPath {
		return "[ ]"
	}
	return "   "
}

// Status describes whose turn it is and the pending roll.
func Status(b *engine.Board) string {
	if w, ok := b.Winner(); ok {
		return fmt.Sprintf("%s (%s) wins", w, marks[w])
	}
	roll, ok := b.PendingRoll()
	if !ok {
		return fmt.Sprintf("%s (%s) to roll", b.Turn, marks[b.Turn])
	}
	return fmt.Sprintf("%s (%s) rolled %d, legal: %s", b.Turn, marks[b.Turn], roll, formatMoves(b.LegalMoves()))
}

func formatMoves(moves []int) string {
	if len(moves) == 0 {
		return "none"
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = fmt.Sprintf("%d", m)
	}
	return strings.Join(parts, " ")
}

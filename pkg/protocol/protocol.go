// Package protocol implements a line-oriented text protocol for playing a
// session: one command per line in, plain-text responses out.
//
// Protocol overview:
// - roll, pass, new act on the game
// - move <row> <col> moves the checker on a grid cell, path <index> by path index
// - board, legal, id, history inspect it
// - quit ends the conversation
package protocol

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yourusername/urengine/internal/positionid"
	"github.com/yourusername/urengine/pkg/match"
	"github.com/yourusername/urengine/pkg/session"
)

// Version is reported by the version command.
const Version = "urengine text protocol 1.0"

// Options configures the protocol server.
type Options struct {
	Prompt bool // Send "> " before each command
}

// Server executes protocol commands against a session.
type Server struct {
	sess    *session.Session
	options Options
}

// NewServer creates a protocol server for the given session.
func NewServer(sess *session.Session, opts Options) *Server {
	return &Server{sess: sess, options: opts}
}

// Serve reads commands from r until EOF or quit, writing responses to w.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)

	if s.options.Prompt {
		if _, err := io.WriteString(w, "> "); err != nil {
			return err
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if s.options.Prompt {
				if _, err := io.WriteString(w, "> "); err != nil {
					return err
				}
			}
			continue
		}

		response, quit := s.Execute(line)
		if _, err := io.WriteString(w, response); err != nil {
			return err
		}
		if quit {
			return nil
		}
		if s.options.Prompt {
			if _, err := io.WriteString(w, "> "); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

// Execute runs a single command and returns its response. quit is true
// when the command ends the conversation.
func (s *Server) Execute(line string) (response string, quit bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "Error: empty command\n", false
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch command {
	case "version":
		return Version + "\n", false

	case "help":
		return helpText, false

	case "exit", "quit":
		return "Goodbye\n", true

	case "new":
		s.sess.Reset()
		return fmt.Sprintf("new game %s\n", s.sess.ID()) + s.board(), false

	case "board", "show":
		return s.board(), false

	case "roll":
		return s.handleRoll(), false

	case "move":
		return s.handleMove(args), false

	case "path":
		return s.handlePath(args), false

	case "pass":
		if err := s.sess.Pass(); err != nil {
			return errorf(err), false
		}
		return "passed\n" + s.board(), false

	case "legal":
		b := s.sess.Board()
		return fmt.Sprintf("legal: %s\n", formatMoves(b.LegalMoves())), false

	case "id":
		b := s.sess.Board()
		return positionid.PositionID(&b) + "\n", false

	case "history":
		var buf bytes.Buffer
		if err := match.Format(&buf, s.sess.Record()); err != nil {
			return errorf(err), false
		}
		return buf.String(), false

	default:
		return fmt.Sprintf("Error: unknown command '%s'\n", command), false
	}
}

const helpText = `Available commands:
  roll              - Throw the dice
  move <row> <col>  - Move the checker on a board cell
  path <index>      - Move the checker at a path index (0 = reserve)
  pass              - Pass the turn
  board             - Show the board
  legal             - List legal path indices for the current roll
  id                - Show the position ID
  history           - Show the game transcript
  new               - Start a new game
  version           - Show version information
  exit              - Close the session
`

func (s *Server) handleRoll() string {
	res, err := s.sess.Roll()
	if err != nil {
		return errorf(err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s rolled", res.Player)
	for _, d := range res.Throw.Dice {
		fmt.Fprintf(&sb, " %d", d)
	}
	fmt.Fprintf(&sb, " = %d\n", res.Throw.Total)
	if res.Passed {
		sb.WriteString("no legal move, turn passed\n")
	} else if len(res.LegalMoves) == 0 {
		sb.WriteString("no legal move, pass to continue\n")
	}
	sb.WriteString(s.board())
	return sb.String()
}

func (s *Server) handleMove(args []string) string {
	if len(args) != 2 {
		return "Error: move requires row and column\n"
	}
	row, err1 := strconv.Atoi(args[0])
	col, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		return "Error: row and column must be integers\n"
	}

	m, err := s.sess.Click(row, col)
	if err != nil {
		return errorf(err)
	}
	return fmt.Sprintf("%s moved %s\n", m.Player, match.FormatMove(m)) + s.board()
}

func (s *Server) handlePath(args []string) string {
	if len(args) != 1 {
		return "Error: path requires an index\n"
	}
	from, err := strconv.Atoi(args[0])
	if err != nil {
		return "Error: index must be an integer\n"
	}

	m, err := s.sess.Move(from)
	if err != nil {
		return errorf(err)
	}
	return fmt.Sprintf("%s moved %s\n", m.Player, match.FormatMove(m)) + s.board()
}

func (s *Server) board() string {
	b := s.sess.Board()
	return RenderBoard(&b)
}

func errorf(err error) string {
	return fmt.Sprintf("Error: %v\n", err)
}

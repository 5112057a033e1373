package positionid

import (
	"errors"
	"strings"
	"testing"

	"github.com/yourusername/urengine/pkg/engine"
)

func TestPositionIDLength(t *testing.T) {
	id := PositionID(engine.NewGame())
	if len(id) != PositionIDLength {
		t.Errorf("len(PositionID) = %d, want %d", len(id), PositionIDLength)
	}
}

func TestPositionIDRoundTrip(t *testing.T) {
	boards := []*engine.Board{
		engine.NewGame(),
		{
			Tracks: [2]engine.Track{
				engine.TrackOf([engine.PathLength]int8{0: 2, 3: 1, 7: 1, 15: 3}),
				engine.TrackOf([engine.PathLength]int8{0: 1, 9: 1, 14: 1, 15: 4}),
			},
			Turn: engine.Second,
			Roll: 0,
		},
		{
			Tracks: [2]engine.Track{
				engine.TrackOf([engine.PathLength]int8{15: 7}),
				engine.TrackOf([engine.PathLength]int8{0: 7}),
			},
			Turn: engine.First,
			Roll: 4,
		},
	}

	for i, b := range boards {
		id := PositionID(b)
		got, err := BoardFromPositionID(id)
		if err != nil {
			t.Fatalf("board %d: BoardFromPositionID(%q): %v", i, id, err)
		}
		if !engine.EqualBoards(b, got) {
			t.Errorf("board %d: round trip = %+v, want %+v", i, *got, *b)
		}
	}
}

func TestPositionIDDistinct(t *testing.T) {
	a := engine.NewGame()
	b := engine.NewGame()
	b.Roll = 2
	c := engine.NewGame()
	c.PassTurn()

	ids := map[string]bool{}
	for _, board := range []*engine.Board{a, b, c} {
		ids[PositionID(board)] = true
	}
	if len(ids) != 3 {
		t.Errorf("got %d distinct IDs, want 3", len(ids))
	}
}

func TestBoardFromPositionIDInvalid(t *testing.T) {
	// All-zero key: both tracks empty.
	empty := encoding.EncodeToString(make([]byte, keyBytes))

	tests := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"too short", "AAAA"},
		{"bad characters", strings.Repeat("!", PositionIDLength)},
		{"no checkers", empty},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BoardFromPositionID(tc.id)
			if !errors.Is(err, ErrInvalidPositionID) {
				t.Errorf("error = %v, want ErrInvalidPositionID", err)
			}
		})
	}
}

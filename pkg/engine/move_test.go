package engine

import (
	"errors"
	"testing"
)

// boardWith returns a board with the given tracks, First to move and the given roll.
func boardWith(first, second [PathLength]int8, roll int8) *Board {
	return &Board{
		Tracks: [2]Track{TrackOf(first), TrackOf(second)},
		Turn:   First,
		Roll:   roll,
	}
}

func TestApplyMoveFromReserve(t *testing.T) {
	b := NewGame()
	b.Roll = 3

	m, err := b.ApplyMove(Reserve)
	if err != nil {
		t.Fatalf("ApplyMove error: %v", err)
	}

	if got := b.Tracks[First][0]; got != 6 {
		t.Errorf("First[0] = %d, want 6", got)
	}
	if got := b.Tracks[First][3]; got != 1 {
		t.Errorf("First[3] = %d, want 1", got)
	}
	if b.Turn != Second {
		t.Errorf("Turn = %v, want %v", b.Turn, Second)
	}
	if _, ok := b.PendingRoll(); ok {
		t.Error("roll still pending after move")
	}
	if m.From != 0 || m.To != 3 || m.Roll != 3 || m.Player != First || m.Captured {
		t.Errorf("Move = %+v, want first 0->3 roll 3 without capture", m)
	}
}

func TestApplyMoveCapture(t *testing.T) {
	b := boardWith(
		[PathLength]int8{0: 6, 7: 1},
		[PathLength]int8{0: 6, 9: 1},
		2,
	)

	m, err := b.ApplyMove(7)
	if err != nil {
		t.Fatalf("ApplyMove error: %v", err)
	}
	if !m.Captured {
		t.Error("Captured = false, want true")
	}

	second := b.Tracks[Second]
	if second[9] != 0 {
		t.Errorf("Second[9] = %d, want 0", second[9])
	}
	if second[0] != 7 {
		t.Errorf("Second[0] = %d, want 7", second[0])
	}
	first := b.Tracks[First]
	if first[7] != 0 || first[9] != 1 {
		t.Errorf("First[7], First[9] = %d, %d, want 0, 1", first[7], first[9])
	}
	for _, p := range []Player{First, Second} {
		if err := b.Tracks[p].Validate(); err != nil {
			t.Errorf("%s track after capture: %v", p, err)
		}
	}
}

func TestApplyMoveSecondPlayerCapture(t *testing.T) {
	b := boardWith(
		[PathLength]int8{0: 6, 12: 1},
		[PathLength]int8{0: 6, 8: 1},
		4,
	)
	b.Turn = Second

	m, err := b.ApplyMove(8)
	if err != nil {
		t.Fatalf("ApplyMove error: %v", err)
	}
	if !m.Captured {
		t.Error("Captured = false, want true")
	}
	if b.Tracks[First][12] != 0 || b.Tracks[First][0] != 7 {
		t.Errorf("First track = %v, want checker returned to reserve", b.Tracks[First])
	}
	if b.Turn != First {
		t.Errorf("Turn = %v, want %v", b.Turn, First)
	}
}

func TestApplyMoveHomeStacks(t *testing.T) {
	b := boardWith(
		[PathLength]int8{0: 3, 13: 1, 15: 3},
		[PathLength]int8{0: 7},
		2,
	)

	if _, err := b.ApplyMove(13); err != nil {
		t.Fatalf("ApplyMove error: %v", err)
	}
	if got := b.Tracks[First][Home]; got != 4 {
		t.Errorf("First[15] = %d, want 4", got)
	}
	if got := b.Tracks[First][13]; got != 0 {
		t.Errorf("First[13] = %d, want 0", got)
	}
}

func TestApplyMovePrivateLaneNeverCaptures(t *testing.T) {
	b := boardWith(
		[PathLength]int8{0: 6, 1: 1},
		[PathLength]int8{0: 5, 3: 1, 14: 1},
		2,
	)

	m, err := b.ApplyMove(1)
	if err != nil {
		t.Fatalf("ApplyMove error: %v", err)
	}
	if m.Captured {
		t.Error("Captured = true in private lane")
	}
	if b.Tracks[Second][3] != 1 || b.Tracks[Second][0] != 5 {
		t.Errorf("Second track changed: %v", b.Tracks[Second])
	}

	// Same for the upper private lane.
	b = boardWith(
		[PathLength]int8{0: 6, 12: 1},
		[PathLength]int8{0: 5, 3: 1, 14: 1},
		2,
	)
	if m, err = b.ApplyMove(12); err != nil {
		t.Fatalf("ApplyMove error: %v", err)
	}
	if m.Captured || b.Tracks[Second][14] != 1 {
		t.Errorf("capture at index 14: move %+v, second %v", m, b.Tracks[Second])
	}
}

func TestApplyMoveRejected(t *testing.T) {
	tests := []struct {
		name  string
		first [PathLength]int8
		roll  int8
		from  int
		want  Outcome
	}{
		{"no roll", [PathLength]int8{0: 7}, NoRoll, 0, RollExhausted},
		{"zero roll", [PathLength]int8{0: 7}, 0, 0, RollExhausted},
		{"past home", [PathLength]int8{0: 6, 14: 1}, 2, 14, OutOfBounds},
		{"from home", [PathLength]int8{0: 6, 15: 1}, 1, 15, OutOfBounds},
		{"negative source", [PathLength]int8{0: 7}, 1, -1, OutOfBounds},
		{"empty source", [PathLength]int8{0: 7}, 2, 4, NoSourceChecker},
		{"own checker on destination", [PathLength]int8{0: 5, 1: 1, 3: 1}, 2, 1, InvalidDestination},
		{"own checker in shared lane", [PathLength]int8{0: 5, 6: 1, 8: 1}, 2, 6, InvalidDestination},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardWith(tc.first, [PathLength]int8{0: 7}, tc.roll)
			before := *b

			_, err := b.ApplyMove(tc.from)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidMove) {
				t.Errorf("error %v does not match ErrInvalidMove", err)
			}
			got, ok := OutcomeOf(err)
			if !ok || got != tc.want {
				t.Errorf("Outcome = %v, want %v", got, tc.want)
			}
			if !errors.Is(err, &MoveError{Outcome: tc.want}) {
				t.Errorf("error %v does not match outcome %v", err, tc.want)
			}
			if !EqualBoards(b, &before) {
				t.Errorf("board changed on rejected move: got %+v, want %+v", *b, before)
			}
		})
	}
}

func TestZeroRollBlocksEveryMoveUntilPass(t *testing.T) {
	b := boardWith(
		[PathLength]int8{0: 4, 2: 1, 6: 1, 13: 1},
		[PathLength]int8{0: 7},
		0,
	)

	for from := 0; from < PathLength; from++ {
		_, err := b.ApplyMove(from)
		if o, _ := OutcomeOf(err); o != RollExhausted {
			t.Errorf("ApplyMove(%d) outcome = %v, want %v", from, o, RollExhausted)
		}
	}
	if len(b.LegalMoves()) != 0 {
		t.Errorf("LegalMoves = %v, want none", b.LegalMoves())
	}

	b.PassTurn()
	if b.Turn != Second {
		t.Errorf("Turn = %v, want %v", b.Turn, Second)
	}
	if b.Phase() != AwaitingRoll {
		t.Errorf("Phase = %v, want %v", b.Phase(), AwaitingRoll)
	}
}

func TestLegalMoves(t *testing.T) {
	b := boardWith(
		[PathLength]int8{0: 4, 1: 1, 3: 1, 14: 1},
		[PathLength]int8{0: 7},
		2,
	)

	// 0->2 ok, 1->3 blocked by own, 3->5 ok, 14->16 out of bounds.
	got := b.LegalMoves()
	want := []int{0, 3}
	if len(got) != len(want) {
		t.Fatalf("LegalMoves = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LegalMoves[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCheckMoveDoesNotMutate(t *testing.T) {
	b := NewGame()
	b.Roll = 4
	before := *b

	to, err := b.CheckMove(0)
	if err != nil {
		t.Fatalf("CheckMove error: %v", err)
	}
	if to != 4 {
		t.Errorf("destination = %d, want 4", to)
	}
	if !EqualBoards(b, &before) {
		t.Error("CheckMove modified the board")
	}
}

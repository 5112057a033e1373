package engine

import "testing"

func TestPassTurn(t *testing.T) {
	tests := []struct {
		name string
		turn Player
		roll int8
	}{
		{"first without roll", First, NoRoll},
		{"first with roll", First, 3},
		{"second with zero roll", Second, 0},
		{"second without roll", Second, NoRoll},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewGame()
			b.Turn = tc.turn
			b.Roll = tc.roll

			b.PassTurn()

			if b.Turn != tc.turn.Opponent() {
				t.Errorf("Turn = %v, want %v", b.Turn, tc.turn.Opponent())
			}
			if b.Roll != NoRoll {
				t.Errorf("Roll = %d, want NoRoll", b.Roll)
			}
		})
	}
}

func TestIsFinished(t *testing.T) {
	tests := []struct {
		name   string
		first  [PathLength]int8
		second [PathLength]int8
		want   bool
		winner Player
	}{
		{"new game", [PathLength]int8{0: 7}, [PathLength]int8{0: 7}, false, First},
		{"six home", [PathLength]int8{14: 1, 15: 6}, [PathLength]int8{0: 7}, false, First},
		{"first home", [PathLength]int8{15: 7}, [PathLength]int8{0: 3, 15: 4}, true, First},
		{"second home", [PathLength]int8{0: 7}, [PathLength]int8{15: 7}, true, Second},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardWith(tc.first, tc.second, NoRoll)
			if got := b.IsFinished(); got != tc.want {
				t.Errorf("IsFinished = %v, want %v", got, tc.want)
			}
			w, ok := b.Winner()
			if ok != tc.want {
				t.Errorf("Winner ok = %v, want %v", ok, tc.want)
			}
			if ok && w != tc.winner {
				t.Errorf("Winner = %v, want %v", w, tc.winner)
			}
			if tc.want && b.Phase() != Finished {
				t.Errorf("Phase = %v, want %v", b.Phase(), Finished)
			}
		})
	}
}

func TestPhase(t *testing.T) {
	b := NewGame()
	if b.Phase() != AwaitingRoll {
		t.Errorf("Phase = %v, want %v", b.Phase(), AwaitingRoll)
	}
	b.Roll = 2
	if b.Phase() != RollTaken {
		t.Errorf("Phase = %v, want %v", b.Phase(), RollTaken)
	}
	if _, err := b.ApplyMove(Reserve); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if b.Phase() != AwaitingRoll || b.Turn != Second {
		t.Errorf("after move: phase %v turn %v", b.Phase(), b.Turn)
	}
}

func TestFinishingMove(t *testing.T) {
	b := boardWith(
		[PathLength]int8{12: 1, 15: 6},
		[PathLength]int8{0: 7},
		3,
	)
	if _, err := b.ApplyMove(12); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if !b.IsFinished() {
		t.Error("IsFinished = false after last checker reached home")
	}
}

package solver

import (
	"errors"
	"testing"

	"github.com/SeamusWaldron/pocketcube"
)

func TestPermutationsMatchReferenceTables(t *testing.T) {
	tests := []struct {
		move pocketcube.Move
		want permutation
	}{
		{pocketcube.F, permutation{0, 1, 5, 6, 4, 16, 17, 7, 11, 8, 9, 10, 3, 13, 14, 2, 15, 12, 18, 19, 20, 21, 22, 23}},
		{pocketcube.FPrime, permutation{0, 1, 15, 12, 4, 2, 3, 7, 9, 10, 11, 8, 17, 13, 14, 16, 5, 6, 18, 19, 20, 21, 22, 23}},
		{pocketcube.U, permutation{3, 0, 1, 2, 8, 9, 6, 7, 12, 13, 10, 11, 20, 21, 14, 15, 16, 17, 18, 19, 4, 5, 22, 23}},
		{pocketcube.UPrime, permutation{1, 2, 3, 0, 20, 21, 6, 7, 4, 5, 10, 11, 8, 9, 14, 15, 16, 17, 18, 19, 12, 13, 22, 23}},
		{pocketcube.R, permutation{0, 9, 10, 3, 4, 5, 6, 7, 8, 17, 18, 11, 15, 12, 13, 14, 16, 23, 20, 19, 2, 21, 22, 1}},
		{pocketcube.RPrime, permutation{0, 23, 20, 3, 4, 5, 6, 7, 8, 1, 2, 11, 13, 14, 15, 12, 16, 9, 10, 19, 18, 21, 22, 17}},
	}

	for _, tt := range tests {
		t.Run(tt.move.String(), func(t *testing.T) {
			for n, m := range Moves {
				if m != tt.move {
					continue
				}
				if perms[n] != tt.want {
					t.Errorf("permutation = %v, want %v", perms[n], tt.want)
				}
				return
			}
			t.Fatalf("%s not in the move set", tt.move)
		})
	}
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name  string
		state pocketcube.State
		most  int
	}{
		{"solved", pocketcube.Solved, 0},
		{"F", "WWOOOYYOGGGGWRRWRRYYBBBB", 1},
		{"R U", pocketcube.ApplyMoves(pocketcube.Solved, []pocketcube.Move{pocketcube.R, pocketcube.U}), 2},
		{"sexy move", "WOGWBOOOGYGGRWRWYRYYBRBB", 4},
		{"R2 U2 F2", pocketcube.ApplyMoves(pocketcube.Solved, []pocketcube.Move{pocketcube.R2, pocketcube.U2, pocketcube.F2}), 3},
	}

	s := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves, err := s.Solve(tt.state)
			if err != nil {
				t.Fatalf("Solve: %v", err)
			}
			if len(moves) > tt.most {
				t.Errorf("got %d moves (%s), want at most %d", len(moves), pocketcube.FormatMoves(moves), tt.most)
			}
			if got := s.ApplyMoves(tt.state, moves); got != pocketcube.Solved {
				t.Errorf("%s leaves %s", pocketcube.FormatMoves(moves), got)
			}
		})
	}
}

func TestSolveRandomStates(t *testing.T) {
	s := New(WithSeed(42))
	for i := 0; i < 5; i++ {
		state := s.RandomState()
		moves, err := s.Solve(state)
		if err != nil {
			t.Fatalf("Solve(%s): %v", state, err)
		}
		if len(moves) > MaxDepth {
			t.Errorf("%s: %d moves exceeds %d", state, len(moves), MaxDepth)
		}
		if got := s.ApplyMoves(state, moves); got != pocketcube.Solved {
			t.Errorf("%s: solution leaves %s", state, got)
		}
	}
}

func TestSolveRejects(t *testing.T) {
	tests := []struct {
		name  string
		state pocketcube.State
		want  error
	}{
		{"short", "WWW", pocketcube.ErrInvalidState},
		{"unknown colour", "WWWWOOOOGGGGRRRRYYYYBBBX", pocketcube.ErrInvalidState},
		{"five white", "WWWWWOOOGGGGRRRRYYYYBBBB", pocketcube.ErrInvalidState},
		{"DLB moved", "BWWBOOOOWGGWRRRRGYYGBYYB", pocketcube.ErrUnsolvable},
		{"twisted corner", "WWGWOOOOGRGGWRRRYYYYBBBB", pocketcube.ErrUnsolvable},
	}

	s := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves, err := s.Solve(tt.state)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if moves != nil {
				t.Errorf("got moves %s", pocketcube.FormatMoves(moves))
			}
		})
	}
}

func TestRandomStateIsSeeded(t *testing.T) {
	a := New(WithSeed(7)).RandomState()
	b := New(WithSeed(7)).RandomState()
	if a != b {
		t.Errorf("same seed gave %s and %s", a, b)
	}
	if err := Check(a); err != nil {
		t.Errorf("random state %s fails Check: %v", a, err)
	}
}

func TestScramble(t *testing.T) {
	s := New(WithSeed(1))
	moves, state := s.Scramble(12)
	if len(moves) != 12 {
		t.Fatalf("got %d moves", len(moves))
	}
	if state != pocketcube.ApplyMoves(pocketcube.Solved, moves) {
		t.Error("scramble state does not match its moves")
	}
}

package pocketcube

import (
	"errors"
	"testing"
	"time"
)

// scriptedSolver returns fixed moves and applies them with the package
// geometry.
type scriptedSolver struct {
	moves []Move
	err   error
}

func (s scriptedSolver) Solve(State) ([]Move, error) {
	return s.moves, s.err
}

func (scriptedSolver) ApplyMoves(state State, moves []Move) State {
	return ApplyMoves(state, moves)
}

func (scriptedSolver) RandomState() State {
	return Solved
}

func scrambled(t *testing.T) (State, scriptedSolver) {
	t.Helper()
	// R U undone by U' R'.
	state := ApplyMoves(Solved, []Move{R, U})
	return state, scriptedSolver{moves: []Move{UPrime, RPrime}}
}

func TestBuildSolution(t *testing.T) {
	state, solver := scrambled(t)
	sol, err := BuildSolution(solver, state)
	if err != nil {
		t.Fatal(err)
	}
	if len(sol) != 3 {
		t.Fatalf("got %d transitions, want 3", len(sol))
	}

	if sol[0].Move != UPrime || sol[0].Start != state {
		t.Errorf("first transition = %+v", sol[0])
	}
	for i := 1; i < len(sol)-1; i++ {
		if sol[i].Start != sol[i-1].End {
			t.Errorf("transition %d does not chain", i)
		}
	}
	if sol[1].End != Solved {
		t.Errorf("last move ends at %s", sol[1].End)
	}
	if !sol[2].IsTerminal() || sol[2].Label() != "solved" {
		t.Errorf("missing solved marker: %+v", sol[2])
	}
	if got := FormatMoves(sol.Moves()); got != "U' R'" {
		t.Errorf("Moves() = %q", got)
	}
}

func TestBuildSolutionFailure(t *testing.T) {
	solver := scriptedSolver{err: ErrUnsolvable}
	sol, err := BuildSolution(solver, "WWWWOOOOGGGGRRRRYYYYBBBW")
	if !errors.Is(err, ErrUnsolvable) {
		t.Errorf("error = %v, want ErrUnsolvable", err)
	}
	if sol != nil {
		t.Errorf("failed solve returned %d transitions", len(sol))
	}
}

func TestBuildSolutionOfSolved(t *testing.T) {
	sol, err := BuildSolution(scriptedSolver{}, Solved)
	if err != nil {
		t.Fatal(err)
	}
	if len(sol) != 1 || sol[0] != SolvedMarker() {
		t.Errorf("solution of solved = %+v", sol)
	}
}

func TestSessionAutoPlaysToSolved(t *testing.T) {
	state, solver := scrambled(t)
	sol, err := BuildSolution(solver, state)
	if err != nil {
		t.Fatal(err)
	}

	p := NewPlayer(state, WithSpeed(3))
	s := NewSession(p)
	if err := s.Load(sol); err != nil {
		t.Fatal(err)
	}

	var events []Event
	for i := 0; !s.Finished(); i++ {
		if i > 10000 {
			t.Fatal("playback did not finish")
		}
		ev, done, err := s.Tick(time.Second / 60)
		if err != nil {
			t.Fatal(err)
		}
		if done {
			events = append(events, ev)
		}
	}

	if len(events) != 2 {
		t.Fatalf("got %d completions, want 2", len(events))
	}
	if events[0].State != sol[0].End || events[1].State != Solved {
		t.Errorf("events = %+v", events)
	}
	if p.State() != Solved {
		t.Errorf("state = %s, want solved", p.State())
	}
	if p.Status().Animating {
		t.Error("nothing should animate at the solved marker")
	}
}

func TestSessionSelectWithoutAutoPlay(t *testing.T) {
	state, solver := scrambled(t)
	sol, _ := BuildSolution(solver, state)

	p := NewPlayer(state)
	s := NewSession(p)
	if err := s.Load(sol); err != nil {
		t.Fatal(err)
	}
	if err := s.SetAutoPlay(false); err != nil {
		t.Fatal(err)
	}
	if p.Status().Animating {
		t.Error("turning auto-play off should cancel the move")
	}

	if err := s.Select(1); err != nil {
		t.Fatal(err)
	}
	if p.State() != sol[1].Start || p.Status().Animating {
		t.Errorf("select should rest at %s, got %s", sol[1].Start, p.State())
	}

	if err := s.SetAutoPlay(true); err != nil {
		t.Fatal(err)
	}
	if st := p.Status(); !st.Animating || st.Move != RPrime {
		t.Errorf("status after auto-play on = %+v", st)
	}

	if err := s.Select(len(sol)); err == nil {
		t.Error("select past the end should fail")
	}
}

func TestSessionSelectMarker(t *testing.T) {
	state, solver := scrambled(t)
	sol, _ := BuildSolution(solver, state)

	s := NewSession(NewPlayer(state))
	if err := s.Load(sol); err != nil {
		t.Fatal(err)
	}
	if err := s.Select(2); err != nil {
		t.Fatal(err)
	}
	if !s.Finished() || s.Player().State() != Solved {
		t.Error("selecting the marker should rest at solved")
	}
}

func TestSessionSetStateForgetsSolution(t *testing.T) {
	state, solver := scrambled(t)
	sol, _ := BuildSolution(solver, state)

	s := NewSession(NewPlayer(state))
	s.Load(sol)
	s.SetState(Solved)

	if s.Solution() != nil || s.Player().Status().Animating {
		t.Error("SetState should drop the solution and the move in flight")
	}
	if _, ok := s.Current(); ok {
		t.Error("no current transition expected")
	}
}

func TestTransitionRotation(t *testing.T) {
	if _, err := SolvedMarker().Rotation(); !errors.Is(err, ErrTerminalMove) {
		t.Errorf("marker rotation error = %v", err)
	}
	r, err := Transition{Move: RPrime}.Rotation()
	if err != nil {
		t.Fatal(err)
	}
	if r.Face != FaceR {
		t.Errorf("rotation face = %s", r.Face)
	}
}

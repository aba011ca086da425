package pocketcube

import "fmt"

// Solver is the external solving service.
type Solver interface {
	// Solve returns the moves that take state to Solved.
	// It fails with ErrUnsolvable or ErrInvalidState.
	Solve(state State) ([]Move, error)
	// ApplyMoves returns the state reached by applying moves. It is total.
	ApplyMoves(state State, moves []Move) State
	// RandomState returns a valid, solvable state.
	RandomState() State
}

// Transition is one step of a Solution: a move and the states on either side
// of it. The final transition of a Solution is the solved marker, whose Move
// is the zero Move.
type Transition struct {
	Move  Move
	Start State
	End   State
}

// IsTerminal reports whether t is the solved marker.
func (t Transition) IsTerminal() bool {
	return t.Move.IsZero()
}

// Label returns the move notation, or "solved" for the solved marker.
func (t Transition) Label() string {
	if t.IsTerminal() {
		return "solved"
	}
	return t.Move.Notation()
}

// Rotation returns the Move Table entry of t's move. The solved marker has
// none and fails with ErrTerminalMove.
func (t Transition) Rotation() (Rotation, error) {
	if t.IsTerminal() {
		return Rotation{}, ErrTerminalMove
	}
	return LookupRotation(t.Move.Face)
}

// Solution is an ordered list of transitions ending with the solved marker.
type Solution []Transition

// SolvedMarker returns the terminal transition.
func SolvedMarker() Transition {
	return Transition{Start: Solved, End: Solved}
}

// BuildSolution asks s for a solution to state and expands it into
// transitions. A failed solve returns the solver's error unchanged in
// meaning and no transitions.
func BuildSolution(s Solver, state State) (Solution, error) {
	moves, err := s.Solve(state)
	if err != nil {
		return nil, fmt.Errorf("solve %s: %w", state, err)
	}

	solution := make(Solution, 0, len(moves)+1)
	current := state
	for i, m := range moves {
		next := s.ApplyMoves(state, moves[:i+1])
		solution = append(solution, Transition{Move: m, Start: current, End: next})
		current = next
	}
	return append(solution, SolvedMarker()), nil
}

// Moves returns the moves of the solution without the solved marker.
func (sol Solution) Moves() []Move {
	moves := make([]Move, 0, len(sol))
	for _, t := range sol {
		if !t.IsTerminal() {
			moves = append(moves, t.Move)
		}
	}
	return moves
}

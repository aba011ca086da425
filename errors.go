package pocketcube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pocketcube package.
var (
	// Parsing errors
	ErrInvalidMove  = errors.New("pocketcube: invalid move")
	ErrInvalidState = errors.New("pocketcube: invalid cube state")

	// Configuration errors
	ErrInvalidSpeed = errors.New("pocketcube: animation speed must be positive")

	// Solver errors
	ErrUnsolvable = errors.New("pocketcube: cube state is unsolvable")

	// Playback errors
	ErrTerminalMove = errors.New("pocketcube: solved marker has no rotation")
)

// InvalidMoveError reports a move that is not in the move table.
// It matches ErrInvalidMove with errors.Is.
type InvalidMoveError struct {
	Notation string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("pocketcube: invalid move %q", e.Notation)
}

// Is reports whether target is ErrInvalidMove.
func (e *InvalidMoveError) Is(target error) bool {
	return target == ErrInvalidMove
}

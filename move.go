package pocketcube

import "strings"

// Face represents a cube face in standard notation.
type Face string

const (
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
)

// Faces lists every face in move table order.
var Faces = []Face{FaceF, FaceB, FaceR, FaceL, FaceU, FaceD}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise quarter turn, no suffix
	CCW    Turn = -1 // Counter-clockwise quarter turn, ' suffix
	Double Turn = 2  // Half turn, 2 suffix
)

// Move represents a single face turn.
// The zero Move carries no rotation and marks the end of a Solution.
type Move struct {
	Face Face
	Turn Turn
}

// Notation returns the standard cube notation string for this move.
// Examples: F, F', F2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// IsZero reports whether m is the zero Move.
func (m Move) IsZero() bool {
	return m.Face == ""
}

// Inverse returns the inverse of this move.
// F becomes F', F' becomes F, F2 stays F2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// QuarterTurns returns 2 for a half turn and 1 otherwise.
func (m Move) QuarterTurns() int {
	if m.Turn == Double {
		return 2
	}
	return 1
}

// ParseMove parses a standard notation string into a Move.
// The face letter must be one of F, B, R, L, U, D and may be followed
// by ' or 2. Anything else yields an *InvalidMoveError.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, &InvalidMoveError{Notation: s}
	}

	face := Face(s[:1])
	if _, ok := rotations[face]; !ok {
		return Move{}, &InvalidMoveError{Notation: s}
	}

	turn := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2", "2'":
			turn = Double
		default:
			return Move{}, &InvalidMoveError{Notation: s}
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "F U' R2"
// The first invalid token aborts parsing.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

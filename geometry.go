package pocketcube

import "github.com/go-gl/mathgl/mgl64"

// turn applies m exactly to the pieces resting on its face: each moves to
// its destination corner and its orientation gains the full rotation.
// Pieces are selected by the corner they occupy, not by identity.
func turn(pieces []Piece, r Rotation, m Move) {
	q := mgl64.QuatRotate(angle(m), r.Axis)
	for i := range pieces {
		c := pieces[i].Corner()
		if !r.Contains(c) {
			continue
		}
		pieces[i].Position = r.Destination(c, m).Home()
		pieces[i].Orientation = q.Mul(pieces[i].Orientation).Normalize()
	}
}

// ApplyMoves returns the state reached by turning s through moves. It works
// on the decoded pieces, so it is total: malformed input is padded the same
// way Decode pads it, and the zero Move is skipped.
func ApplyMoves(s State, moves []Move) State {
	pieces := Pieces(s)
	for _, m := range moves {
		if m.IsZero() {
			continue
		}
		r, err := LookupRotation(m.Face)
		if err != nil {
			continue
		}
		turn(pieces[:], r, m)
	}
	return Encode(pieces[:])
}

package pocketcube

import "github.com/go-gl/mathgl/mgl64"

// Rotation is a Move Table entry: the 4 corners a face turn moves and the
// axis it turns about.
type Rotation struct {
	Face Face
	// Cycle lists the corners in the order a clockwise turn carries them:
	// the piece at Cycle[i] moves to Cycle[(i+1)%4].
	Cycle [4]Corner
	// Axis is the outward unit normal of the face. A clockwise turn is a
	// negative rotation about it.
	Axis mgl64.Vec3
}

var rotations = map[Face]Rotation{
	FaceF: {Face: FaceF, Cycle: [4]Corner{ULF, URF, DRF, DLF}, Axis: mgl64.Vec3{0, 0, 1}},
	FaceB: {Face: FaceB, Cycle: [4]Corner{URB, ULB, DLB, DRB}, Axis: mgl64.Vec3{0, 0, -1}},
	FaceR: {Face: FaceR, Cycle: [4]Corner{DRF, URF, URB, DRB}, Axis: mgl64.Vec3{1, 0, 0}},
	FaceL: {Face: FaceL, Cycle: [4]Corner{ULB, ULF, DLF, DLB}, Axis: mgl64.Vec3{-1, 0, 0}},
	FaceU: {Face: FaceU, Cycle: [4]Corner{URF, ULF, ULB, URB}, Axis: mgl64.Vec3{0, 1, 0}},
	FaceD: {Face: FaceD, Cycle: [4]Corner{DLF, DRF, DRB, DLB}, Axis: mgl64.Vec3{0, -1, 0}},
}

// LookupRotation returns the Move Table entry for a face.
func LookupRotation(f Face) (Rotation, error) {
	r, ok := rotations[f]
	if !ok {
		return Rotation{}, &InvalidMoveError{Notation: string(f)}
	}
	return r, nil
}

// Contains reports whether c is one of the rotation's corners.
func (r Rotation) Contains(c Corner) bool {
	return r.index(c) >= 0
}

func (r Rotation) index(c Corner) int {
	for i, rc := range r.Cycle {
		if rc == c {
			return i
		}
	}
	return -1
}

// Destination returns the corner a piece at c occupies after m.
// Corners outside the face are returned unchanged.
func (r Rotation) Destination(c Corner, m Move) Corner {
	i := r.index(c)
	if i < 0 {
		return c
	}
	shift := 1
	switch m.Turn {
	case CCW:
		shift = 3
	case Double:
		shift = 2
	}
	return r.Cycle[(i+shift)%4]
}

// angle returns the signed rotation about Axis for m, in radians.
func angle(m Move) float64 {
	a := -float64(m.QuarterTurns()) * mgl64.DegToRad(90)
	if m.Turn == CCW {
		a = -a
	}
	return a
}

package pocketcube

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Corner names one of the 8 corner slots of the cube. A piece's identity is
// the corner it occupies when the cube is at rest after a reset.
type Corner int

// Corners in piece index order. The state lookup table depends on this order.
const (
	DLB Corner = iota
	DLF
	ULB
	ULF
	DRB
	DRF
	URB
	URF
)

// PieceCount is the number of corner pieces.
const PieceCount = 8

var cornerNames = [PieceCount]string{"DLB", "DLF", "ULB", "ULF", "DRB", "DRF", "URB", "URF"}

func (c Corner) String() string {
	if c < 0 || int(c) >= PieceCount {
		return "?"
	}
	return cornerNames[c]
}

// ParseCorner parses a corner label such as "ULF".
func ParseCorner(s string) (Corner, error) {
	for i, name := range cornerNames {
		if name == s {
			return Corner(i), nil
		}
	}
	return 0, fmt.Errorf("unknown corner %q", s)
}

// Home returns the fixed offset of the corner from the cube center.
// x points right, y up and z towards the front.
func (c Corner) Home() mgl64.Vec3 {
	v := mgl64.Vec3{-0.5, -0.5, -0.5}
	name := c.String()
	if name[0] == 'U' {
		v[1] = 0.5
	}
	if name[1] == 'R' {
		v[0] = 0.5
	}
	if name[2] == 'F' {
		v[2] = 0.5
	}
	return v
}

// cornerAt returns the corner whose octant contains p.
func cornerAt(p mgl64.Vec3) Corner {
	var c Corner
	if p[0] > 0 {
		c |= 4
	}
	if p[1] > 0 {
		c |= 2
	}
	if p[2] > 0 {
		c |= 1
	}
	return c
}

// Facelet slots of a piece, one per exposed axis.
const (
	Lateral  = 0 // faces along x
	Vertical = 1 // faces along y
	Frontal  = 2 // faces along z
)

// Piece is one corner cubie: its identity, current transform and the three
// facelet colors it carries.
type Piece struct {
	ID          Corner
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Colors      [3]Color // indexed by Lateral, Vertical, Frontal
}

// Home returns the resting position of the piece's identity corner.
func (p Piece) Home() mgl64.Vec3 {
	return p.ID.Home()
}

// Corner returns the corner slot the piece currently occupies.
func (p Piece) Corner() Corner {
	return cornerAt(p.Position)
}

// Normal returns the outward direction of facelet slot k in world space.
func (p Piece) Normal(k int) mgl64.Vec3 {
	var n mgl64.Vec3
	n[k] = 1
	if p.Home()[k] < 0 {
		n[k] = -1
	}
	return p.Orientation.Rotate(n)
}

// AtRest reports whether the piece sits exactly on a corner slot with an
// axis-aligned orientation, within eps.
func (p Piece) AtRest(eps float64) bool {
	if !p.Position.ApproxEqualThreshold(p.Corner().Home(), eps) {
		return false
	}
	for k := 0; k < 3; k++ {
		n := p.Normal(k)
		if _, ok := axisOf(n, eps); !ok {
			return false
		}
	}
	return true
}

// axisOf returns the index of the axis n is aligned with.
func axisOf(n mgl64.Vec3, eps float64) (int, bool) {
	for k := 0; k < 3; k++ {
		if mgl64.Abs(mgl64.Abs(n[k])-1) <= eps {
			return k, true
		}
	}
	return 0, false
}

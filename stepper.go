package pocketcube

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BaseRate is the per-tick rotation, in radians, of a quarter turn at speed
// 1 before easing.
const BaseRate = 0.05

// easePeak shapes the ease curve: the step factor runs from easePeak-1 at
// the ends of a turn to easePeak at its midpoint.
const easePeak = 1.1

// Stepper animates one move over the pieces it was built with. Each call to
// Step advances the rotation by one tick; it has no notion of time.
type Stepper struct {
	move      Move
	rotation  Rotation
	target    float64 // total angle in radians
	remaining float64
	direction float64
	speed     float64

	pieces   []Piece
	affected []int
	start    []Piece
}

// checkSpeed rejects speeds that would never finish a turn.
func checkSpeed(speed float64) error {
	if !(speed > 0) || math.IsInf(speed, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidSpeed, speed)
	}
	return nil
}

// NewStepper prepares m over pieces. The pieces currently resting on m's
// face are the ones that will turn. The slice is mutated in place by Step
// and Snap.
func NewStepper(pieces []Piece, m Move, speed float64) (*Stepper, error) {
	r, err := LookupRotation(m.Face)
	if err != nil {
		return nil, err
	}
	if err := checkSpeed(speed); err != nil {
		return nil, err
	}

	target := float64(m.QuarterTurns()) * math.Pi / 2
	direction := -1.0
	if m.Turn == CCW {
		direction = 1
	}

	s := &Stepper{
		move:      m,
		rotation:  r,
		target:    target,
		remaining: target,
		direction: direction,
		speed:     speed,
		pieces:    pieces,
	}
	for i, p := range pieces {
		if r.Contains(p.Corner()) {
			s.affected = append(s.affected, i)
			s.start = append(s.start, p)
		}
	}
	return s, nil
}

// Step advances the animation by one tick. It returns false once the full
// angle has been applied, without touching the pieces.
func (s *Stepper) Step() bool {
	if s.remaining <= 0 {
		return false
	}

	x := (2*s.remaining - s.target) / s.target
	theta := (easePeak - x*x) * BaseRate * float64(s.move.QuarterTurns()) * s.speed
	// The last tick lands on the target instead of overshooting it.
	theta = min(theta, s.remaining)
	s.remaining -= theta

	q := mgl64.QuatRotate(theta*s.direction, s.rotation.Axis)
	for _, i := range s.affected {
		s.pieces[i].Position = q.Rotate(s.pieces[i].Position)
		s.pieces[i].Orientation = q.Mul(s.pieces[i].Orientation).Normalize()
	}
	return true
}

// Snap places the affected pieces at their exact post-move transforms,
// computed from where they started, discarding any drift from stepping.
func (s *Stepper) Snap() {
	pieces := make([]Piece, len(s.affected))
	copy(pieces, s.start)
	turn(pieces, s.rotation, s.move)
	for n, i := range s.affected {
		s.pieces[i] = pieces[n]
	}
	s.remaining = 0
}

// Move returns the move being animated.
func (s *Stepper) Move() Move {
	return s.move
}

// Target returns the total rotation angle in radians.
func (s *Stepper) Target() float64 {
	return s.target
}

// Remaining returns the angle still to be applied in radians.
func (s *Stepper) Remaining() float64 {
	return max(s.remaining, 0)
}

// Rotated returns the angle applied so far in radians.
func (s *Stepper) Rotated() float64 {
	return s.target - s.Remaining()
}

// Affected returns the indices of the turning pieces.
func (s *Stepper) Affected() []int {
	return s.affected
}

// Done reports whether the full angle has been applied.
func (s *Stepper) Done() bool {
	return s.remaining <= 0
}

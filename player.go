package pocketcube

import (
	"fmt"
	"time"
)

// Handle is the completion notification for one Rotate call. Done is closed
// when the move finishes; a preempted move's Done is never closed.
type Handle struct {
	move     Move
	done     chan struct{}
	settled  bool
	canceled bool
}

func newHandle(m Move) *Handle {
	return &Handle{move: m, done: make(chan struct{})}
}

// Done returns a channel closed when the move completes.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Move returns the move the handle belongs to.
func (h *Handle) Move() Move {
	return h.move
}

// Settled reports whether the move completed.
func (h *Handle) Settled() bool {
	return h.settled
}

// Canceled reports whether the move was discarded before completing.
func (h *Handle) Canceled() bool {
	return h.canceled
}

func (h *Handle) settle() {
	if h.settled || h.canceled {
		return
	}
	h.settled = true
	close(h.done)
}

// Event is produced when a move completes.
type Event struct {
	Move  Move
	State State // the committed canonical state
}

// Status describes the Player's state machine: idle, or animating a move
// with some angle left.
type Status struct {
	Animating bool
	Move      Move
	Remaining float64 // radians
}

type animation struct {
	stepper *Stepper
	end     State
	handle  *Handle
}

// Player owns the canonical state, the 8 piece transforms and the single
// active animation slot. It is driven by one caller: Rotate starts a move,
// Tick or Frame advance it, and completion commits the move's end state.
// Player is not safe for concurrent use.
type Player struct {
	cfg     *config
	state   State
	pieces  [PieceCount]Piece
	active  *animation
	elapsed time.Duration
}

// NewPlayer creates a player resting at state.
func NewPlayer(state State, opts ...Option) *Player {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	p := &Player{cfg: cfg, state: state}
	p.Reset()
	return p
}

// State returns the canonical state.
func (p *Player) State() State {
	return p.state
}

// SetState replaces the canonical state, discards any in-flight move and
// resets the pieces.
func (p *Player) SetState(s State) {
	p.discard()
	p.state = s
	p.Reset()
}

// SetSpeed changes the speed used by moves started afterwards.
func (p *Player) SetSpeed(speed float64) error {
	if err := checkSpeed(speed); err != nil {
		return err
	}
	p.cfg.speed = speed
	return nil
}

// Speed returns the current speed multiplier.
func (p *Player) Speed() float64 {
	return p.cfg.speed
}

// Reset places every piece at the resting transform the canonical state
// gives it. It is idempotent and leaves the active slot alone.
func (p *Player) Reset() {
	resetPieces(p.pieces[:], p.state)
}

// Snapshot returns a copy of the piece transforms.
func (p *Player) Snapshot() []Piece {
	out := make([]Piece, PieceCount)
	copy(out, p.pieces[:])
	return out
}

// Status returns the state machine's current state.
func (p *Player) Status() Status {
	if p.active == nil {
		return Status{}
	}
	return Status{
		Animating: true,
		Move:      p.active.stepper.Move(),
		Remaining: p.active.stepper.Remaining(),
	}
}

// Rotate starts animating the move named by notation, to be committed as
// end when it finishes. An empty end is replaced by ApplyMoves of the
// current state. A move already in flight is discarded, its handle never
// settles, and the pieces are reset before the new move starts. Invalid
// input leaves the player untouched.
func (p *Player) Rotate(notation string, end State) (*Handle, error) {
	m, err := ParseMove(notation)
	if err != nil {
		return nil, err
	}
	if err := checkSpeed(p.cfg.speed); err != nil {
		return nil, err
	}

	if p.discard() {
		p.Reset()
	}
	if end == "" {
		end = ApplyMoves(p.state, []Move{m})
	}

	st, err := NewStepper(p.pieces[:], m, p.cfg.speed)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", m, err)
	}

	h := newHandle(m)
	p.active = &animation{stepper: st, end: end, handle: h}
	p.elapsed = 0
	p.cfg.logger.Printf("rotate %s from %s", m, p.state)
	return h, nil
}

// Play starts t. The solved marker has nothing to animate: its end state is
// committed at once and the returned handle is already settled.
func (p *Player) Play(t Transition) (*Handle, error) {
	if t.IsTerminal() {
		p.SetState(t.End)
		h := newHandle(t.Move)
		h.settle()
		return h, nil
	}
	return p.Rotate(t.Move.Notation(), t.End)
}

// Cancel discards the in-flight move, if any, and resets the pieces.
func (p *Player) Cancel() {
	p.discard()
	p.Reset()
}

// discard clears the active slot without settling it.
func (p *Player) discard() bool {
	if p.active == nil {
		return false
	}
	p.active.handle.canceled = true
	p.cfg.logger.Printf("discard %s", p.active.stepper.Move())
	p.active = nil
	p.elapsed = 0
	return true
}

// Tick advances the active move by the elapsed time dt, running one step
// per frame interval. It reports the completion event if the move finished.
func (p *Player) Tick(dt time.Duration) (Event, bool) {
	if p.active == nil {
		return Event{}, false
	}
	p.elapsed += dt
	for p.elapsed >= p.cfg.frameInterval {
		p.elapsed -= p.cfg.frameInterval
		if ev, done := p.Frame(); done {
			return ev, true
		}
	}
	return Event{}, false
}

// Frame runs exactly one step of the active move. When the stepper reports
// it is finished the move is committed and its event returned.
func (p *Player) Frame() (Event, bool) {
	if p.active == nil {
		return Event{}, false
	}
	if p.active.stepper.Step() {
		return Event{}, false
	}
	return p.complete(), true
}

func (p *Player) complete() Event {
	a := p.active
	a.stepper.Snap()
	if got := Encode(p.pieces[:]); got != a.end {
		p.cfg.logger.Printf("%s: animated state %s differs from declared %s", a.stepper.Move(), got, a.end)
	}

	p.state = a.end
	p.active = nil
	p.elapsed = 0
	p.Reset()
	a.handle.settle()
	p.cfg.logger.Printf("complete %s at %s", a.stepper.Move(), p.state)

	return Event{Move: a.stepper.Move(), State: p.state}
}

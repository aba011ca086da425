package pocketcube

import (
	"fmt"
	"time"
)

// Session plays a Solution through a Player, one transition at a time.
type Session struct {
	player   *Player
	solution Solution
	index    int
	autoPlay bool
}

// NewSession creates a session over p with auto-play enabled and no
// solution loaded.
func NewSession(p *Player) *Session {
	return &Session{player: p, autoPlay: true}
}

// Player returns the underlying player.
func (s *Session) Player() *Player {
	return s.player
}

// Load replaces the solution, rewinds to its first transition and turns
// auto-play on. The player's state is left as it is.
func (s *Session) Load(sol Solution) error {
	s.player.Cancel()
	s.solution = sol
	s.index = 0
	s.autoPlay = true
	return s.start()
}

// Clear drops the solution and any move in flight.
func (s *Session) Clear() {
	s.player.Cancel()
	s.solution = nil
	s.index = 0
}

// SetState replaces the canonical state and forgets the solution, which no
// longer applies to it.
func (s *Session) SetState(state State) {
	s.Clear()
	s.player.SetState(state)
}

// Select jumps to transition i: the player is put in that transition's start
// state and, with auto-play on, the move starts.
func (s *Session) Select(i int) error {
	if i < 0 || i >= len(s.solution) {
		return fmt.Errorf("select %d: solution has %d transitions", i, len(s.solution))
	}
	s.player.SetState(s.solution[i].Start)
	s.index = i
	return s.start()
}

// SetAutoPlay turns auto-play on or off. Turning it off cancels the move in
// flight; turning it on starts the current transition.
func (s *Session) SetAutoPlay(on bool) error {
	if on == s.autoPlay {
		return nil
	}
	s.autoPlay = on
	if !on {
		s.player.Cancel()
		return nil
	}
	return s.start()
}

// AutoPlay reports whether auto-play is on.
func (s *Session) AutoPlay() bool {
	return s.autoPlay
}

// Solution returns the loaded solution.
func (s *Session) Solution() Solution {
	return s.solution
}

// Index returns the position of the current transition.
func (s *Session) Index() int {
	return s.index
}

// Current returns the current transition, if a solution is loaded.
func (s *Session) Current() (Transition, bool) {
	if s.index >= len(s.solution) {
		return Transition{}, false
	}
	return s.solution[s.index], true
}

// Finished reports whether playback reached the solved marker.
func (s *Session) Finished() bool {
	t, ok := s.Current()
	return ok && t.IsTerminal()
}

// Tick drives the player. When a move completes under auto-play the
// session advances and starts the next transition.
func (s *Session) Tick(dt time.Duration) (Event, bool, error) {
	ev, done := s.player.Tick(dt)
	if !done {
		return ev, false, nil
	}
	if s.autoPlay && s.index+1 < len(s.solution) {
		s.index++
		if err := s.start(); err != nil {
			return ev, true, err
		}
	}
	return ev, true, nil
}

func (s *Session) start() error {
	if !s.autoPlay || s.player.Status().Animating {
		return nil
	}
	t, ok := s.Current()
	if !ok || t.IsTerminal() {
		return nil
	}
	_, err := s.player.Play(t)
	return err
}

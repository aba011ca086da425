// Package solver finds optimal pocket cube solutions by bidirectional
// breadth-first search over the F, U and R face turns.
package solver

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"

	"github.com/SeamusWaldron/pocketcube"
)

// MaxDepth is the longest optimal solution in the F/U/R half-turn metric.
const MaxDepth = 11

// DefaultScrambleMoves is the random walk length used by RandomState.
const DefaultScrambleMoves = 25

// Moves is the move set the solver searches. Keeping the DLB corner fixed
// means every reachable state has a unique solved orientation.
var Moves = []pocketcube.Move{
	pocketcube.F, pocketcube.FPrime, pocketcube.F2,
	pocketcube.U, pocketcube.UPrime, pocketcube.U2,
	pocketcube.R, pocketcube.RPrime, pocketcube.R2,
}

type key [pocketcube.StateLength]byte

// permutation maps each facelet index to the index it takes its sticker
// from: next[i] = prev[p[i]].
type permutation [pocketcube.StateLength]int

var (
	perms    = buildPermutations()
	inverses = buildInverses()
)

// buildPermutations derives the facelet permutation of each move by turning
// a state whose stickers are all distinct.
func buildPermutations() []permutation {
	var labels [pocketcube.StateLength]byte
	for i := range labels {
		labels[i] = byte('a' + i)
	}
	out := make([]permutation, len(Moves))
	for n, m := range Moves {
		turned := pocketcube.ApplyMoves(pocketcube.State(labels[:]), []pocketcube.Move{m})
		for i := 0; i < pocketcube.StateLength; i++ {
			out[n][i] = int(turned[i] - 'a')
		}
	}
	return out
}

func buildInverses() []int {
	out := make([]int, len(Moves))
	for n, m := range Moves {
		inv := m.Inverse()
		for j, other := range Moves {
			if other == inv {
				out[n] = j
			}
		}
	}
	return out
}

func (p *permutation) apply(k key) key {
	var out key
	for i, from := range p {
		out[i] = k[from]
	}
	return out
}

// Option configures a Solver.
type Option func(*Solver)

// WithSeed makes RandomState deterministic.
func WithSeed(seed uint64) Option {
	return func(s *Solver) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithScrambleMoves sets the random walk length of RandomState.
func WithScrambleMoves(n int) Option {
	return func(s *Solver) {
		if n > 0 {
			s.scrambleMoves = n
		}
	}
}

// WithLogger sets the logger for search statistics.
func WithLogger(l *log.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// Solver is the in-process solving service. Solve may be called
// concurrently; RandomState and Scramble may not.
type Solver struct {
	rng           *rand.Rand
	scrambleMoves int
	logger        *log.Logger
}

// New creates a solver.
func New(opts ...Option) *Solver {
	s := &Solver{
		rng:           rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		scrambleMoves: DefaultScrambleMoves,
		logger:        log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check reports whether state is well formed for the solver: 24 stickers,
// four of each colour and the orange, yellow and blue corner at DLB.
func Check(state pocketcube.State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	counts := make(map[byte]int, len(pocketcube.Colors))
	for i := 0; i < len(state); i++ {
		counts[state[i]]++
	}
	for _, c := range pocketcube.Colors {
		if n := counts[byte(c)]; n != 4 {
			return fmt.Errorf("%w: %d %s stickers", pocketcube.ErrInvalidState, n, c.Name())
		}
	}
	if state[7] != byte(pocketcube.Orange) || state[19] != byte(pocketcube.Yellow) || state[22] != byte(pocketcube.Blue) {
		return fmt.Errorf("%w: orange, yellow and blue corner must be at DLB", pocketcube.ErrUnsolvable)
	}
	return nil
}

type visit struct {
	prev  key
	move  int
	depth int
}

// Solve returns an optimal move sequence taking state to Solved.
func (s *Solver) Solve(state pocketcube.State) ([]pocketcube.Move, error) {
	if err := Check(state); err != nil {
		return nil, err
	}

	var start, goal key
	copy(start[:], state)
	copy(goal[:], pocketcube.Solved)
	if start == goal {
		return nil, nil
	}

	fwd := map[key]visit{start: {move: -1}}
	bwd := map[key]visit{goal: {move: -1}}
	fFront, bFront := []key{start}, []key{goal}
	fDepth, bDepth := 0, 0

	for fDepth+bDepth < MaxDepth {
		var meet key
		found := false
		best := MaxDepth + 1

		if len(fFront) <= len(bFront) {
			var next []key
			for _, k := range fFront {
				for n := range Moves {
					to := perms[n].apply(k)
					if _, ok := fwd[to]; ok {
						continue
					}
					fwd[to] = visit{prev: k, move: n, depth: fDepth + 1}
					next = append(next, to)
					if v, ok := bwd[to]; ok && fDepth+1+v.depth < best {
						meet, found, best = to, true, fDepth+1+v.depth
					}
				}
			}
			fFront = next
			fDepth++
		} else {
			var next []key
			for _, k := range bFront {
				for n := range Moves {
					// from applies Moves[n] to reach k
					from := perms[inverses[n]].apply(k)
					if _, ok := bwd[from]; ok {
						continue
					}
					bwd[from] = visit{prev: k, move: n, depth: bDepth + 1}
					next = append(next, from)
					if v, ok := fwd[from]; ok && v.depth+bDepth+1 < best {
						meet, found, best = from, true, v.depth+bDepth+1
					}
				}
			}
			bFront = next
			bDepth++
		}

		if found {
			s.logger.Printf("solved %s in %d moves, %d states visited", state, best, len(fwd)+len(bwd))
			return path(fwd, bwd, meet), nil
		}
	}

	s.logger.Printf("no solution for %s within %d moves", state, MaxDepth)
	return nil, fmt.Errorf("%w: %s", pocketcube.ErrUnsolvable, state)
}

// path joins the forward chain ending at meet with the backward chain
// leaving it.
func path(fwd, bwd map[key]visit, meet key) []pocketcube.Move {
	var head []pocketcube.Move
	for k := meet; fwd[k].move >= 0; k = fwd[k].prev {
		head = append(head, Moves[fwd[k].move])
	}
	for i, j := 0, len(head)-1; i < j; i, j = i+1, j-1 {
		head[i], head[j] = head[j], head[i]
	}
	for k := meet; bwd[k].move >= 0; k = bwd[k].prev {
		head = append(head, Moves[bwd[k].move])
	}
	return head
}

// ApplyMoves returns state after moves.
func (s *Solver) ApplyMoves(state pocketcube.State, moves []pocketcube.Move) pocketcube.State {
	return pocketcube.ApplyMoves(state, moves)
}

// RandomState returns the state reached by a random walk from Solved.
func (s *Solver) RandomState() pocketcube.State {
	_, state := s.Scramble(s.scrambleMoves)
	return state
}

// Scramble returns a random walk of n moves and the state it produces.
func (s *Solver) Scramble(n int) ([]pocketcube.Move, pocketcube.State) {
	moves := make([]pocketcube.Move, n)
	for i := range moves {
		moves[i] = Moves[s.rng.IntN(len(Moves))]
	}
	return moves, pocketcube.ApplyMoves(pocketcube.Solved, moves)
}

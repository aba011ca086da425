// Package pocketcube models and animates a 2x2x2 twisty puzzle.
//
// # Features
//
//   - Canonical 24-character state strings decoded into 8 corner pieces
//   - A static move table for the 6 faces and their ', 2 variants
//   - Eased, tick-driven rotation of the turning pieces
//   - A playback controller with a single animation slot
//   - Sequenced playback of solver output
//
// # Quick Start
//
// Animate a single move, driving the player from a frame loop:
//
//	p := pocketcube.NewPlayer(pocketcube.Solved)
//	h, err := p.Rotate("U", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for !h.Settled() {
//	    p.Tick(16 * time.Millisecond)
//	    draw(p.Snapshot())
//	}
//
// # Playing a Solution
//
// A Solver turns a state into moves; BuildSolution expands them into
// transitions that a Session plays back:
//
//	sol, err := pocketcube.BuildSolution(solver, state)
//	if err != nil {
//	    return err
//	}
//	s := pocketcube.NewSession(pocketcube.NewPlayer(state))
//	s.Load(sol)
//	for !s.Finished() {
//	    s.Tick(16 * time.Millisecond)
//	}
//
// # State Strings
//
// A state lists 24 facelet colors grouped by face in the order U, L, F, R,
// D, B using the letters W, O, G, R, Y, B. The solved cube is
// "WWWWOOOOGGGGRRRRYYYYBBBB". Decoding never fails: short input is padded
// with white so the cube can always be drawn.
package pocketcube

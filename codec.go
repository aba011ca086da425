package pocketcube

import "github.com/go-gl/mathgl/mgl64"

// stateLookup maps a state index to the facelet it colors, encoded as
// piece*3 + slot (see Lateral, Vertical, Frontal).
var stateLookup = [StateLength]int{
	7, 19, 22, 10, 6, 9, 3, 0, 11, 23, 17, 5,
	21, 18, 12, 15, 4, 16, 13, 1, 20, 8, 2, 14,
}

// Facelets holds the three colors of each piece, indexed by Corner.
type Facelets [PieceCount][3]Color

// Decode assigns every character of s to the facelet it belongs to.
// It never fails: input shorter than StateLength is padded with Filler,
// extra characters are ignored and unknown colors are kept as-is.
func Decode(s State) Facelets {
	var f Facelets
	for idx, facelet := range stateLookup {
		c := Filler
		if idx < len(s) {
			c = Color(s[idx])
		}
		f[facelet/3][facelet%3] = c
	}
	return f
}

// Pieces returns the resting pieces for s: every piece at its home corner
// with zero rotation, colored by Decode.
func Pieces(s State) [PieceCount]Piece {
	var pieces [PieceCount]Piece
	resetPieces(pieces[:], s)
	return pieces
}

func resetPieces(pieces []Piece, s State) {
	facelets := Decode(s)
	for i := range pieces {
		c := Corner(i)
		pieces[i] = Piece{
			ID:          c,
			Position:    c.Home(),
			Orientation: mgl64.QuatIdent(),
			Colors:      facelets[i],
		}
	}
}

// Encode reads the state back out of a piece snapshot. Each sticker is taken
// from the piece nearest its corner whose facelet normal points closest to
// the sticker's face, so pieces caught mid-turn read as the nearest quarter.
// Stickers no piece covers are reported as Filler.
func Encode(pieces []Piece) State {
	var occupant [PieceCount]int
	for i := range occupant {
		occupant[i] = -1
	}
	for i, p := range pieces {
		occupant[p.Corner()] = i
	}

	out := make([]byte, StateLength)
	for idx, facelet := range stateLookup {
		out[idx] = byte(Filler)
		slot := Corner(facelet / 3)
		axis := facelet % 3

		var want mgl64.Vec3
		want[axis] = 1
		if slot.Home()[axis] < 0 {
			want[axis] = -1
		}

		q := occupant[slot]
		if q < 0 {
			continue
		}
		best := 0.0
		for k := 0; k < 3; k++ {
			if d := pieces[q].Normal(k).Dot(want); d > best {
				best = d
				out[idx] = byte(pieces[q].Colors[k])
			}
		}
	}
	return State(out)
}

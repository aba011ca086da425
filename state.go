package pocketcube

import (
	"fmt"
	"strings"
)

// Color is a facelet color code. Any byte may be stored; only the six
// letters below are valid.
type Color byte

const (
	White  Color = 'W' // Up face when solved
	Orange Color = 'O' // Left face when solved
	Green  Color = 'G' // Front face when solved
	Red    Color = 'R' // Right face when solved
	Yellow Color = 'Y' // Down face when solved
	Blue   Color = 'B' // Back face when solved
)

// Filler pads states shorter than StateLength.
const Filler = White

// Colors lists the valid colors in face-group order.
var Colors = []Color{White, Orange, Green, Red, Yellow, Blue}

func (c Color) String() string {
	return string(rune(c))
}

// Name returns the color's display name, or "" for an unknown code.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Orange:
		return "orange"
	case Green:
		return "green"
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	default:
		return ""
	}
}

// Valid reports whether c is one of the six color codes.
func (c Color) Valid() bool {
	return c.Name() != ""
}

// StateLength is the number of facelets in a canonical state.
const StateLength = 24

// State is the canonical 24-character cube state. Characters are grouped by
// face in the order U, L, F, R, D, B, four per face, each face read
// clockwise starting top-left.
type State string

// Solved is the solved cube.
const Solved State = "WWWWOOOOGGGGRRRRYYYYBBBB"

// Validate checks the length and alphabet of s.
func (s State) Validate() error {
	if len(s) != StateLength {
		return fmt.Errorf("%w: want %d facelets, got %d", ErrInvalidState, StateLength, len(s))
	}
	for i := 0; i < len(s); i++ {
		if !Color(s[i]).Valid() {
			return fmt.Errorf("%w: unknown color %q at %d", ErrInvalidState, s[i], i)
		}
	}
	return nil
}

// Grouped formats s as space-separated groups of four, one per face.
func (s State) Grouped() string {
	var groups []string
	for i := 0; i < len(s); i += 4 {
		end := min(i+4, len(s))
		groups = append(groups, string(s[i:end]))
	}
	return strings.Join(groups, " ")
}

// Sanitize uppercases input and drops every character outside the color
// alphabet. The result is not padded or truncated.
func Sanitize(input string) State {
	var b strings.Builder
	for _, r := range strings.ToUpper(input) {
		if r < 0x80 && Color(r).Valid() {
			b.WriteRune(r)
		}
	}
	return State(b.String())
}

func (s State) String() string {
	return string(s)
}

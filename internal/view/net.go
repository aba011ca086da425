// Package view renders cube states and piece snapshots for the terminal.
package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/SeamusWaldron/pocketcube"
)

// face-group offsets into a state, laid out as a cross:
//
//	   U
//	L  F  R  B
//	   D
const (
	offsetU = 0
	offsetL = 4
	offsetF = 8
	offsetR = 12
	offsetD = 16
	offsetB = 20
)

var palette = map[pocketcube.Color]lipgloss.Color{
	pocketcube.White:  lipgloss.Color("15"),
	pocketcube.Orange: lipgloss.Color("208"),
	pocketcube.Green:  lipgloss.Color("34"),
	pocketcube.Red:    lipgloss.Color("196"),
	pocketcube.Yellow: lipgloss.Color("226"),
	pocketcube.Blue:   lipgloss.Color("27"),
}

var unknownColor = lipgloss.Color("240")

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241"))

// Cell renders one sticker.
type Cell func(c pocketcube.Color) string

// Swatch renders a sticker as a colored block.
func Swatch(c pocketcube.Color) string {
	bg, ok := palette[c]
	if !ok {
		bg = unknownColor
	}
	return lipgloss.NewStyle().Background(bg).Render("  ")
}

// Letter renders a sticker as its color code.
func Letter(c pocketcube.Color) string {
	return c.String()
}

// Net renders s as a colored cross.
func Net(s pocketcube.State) string {
	return NetWith(s, Swatch)
}

// NetWith renders s as a cross using cell for each sticker. Short states
// are padded with the filler color.
func NetWith(s pocketcube.State, cell Cell) string {
	if len(s) < pocketcube.StateLength {
		s += pocketcube.State(strings.Repeat(pocketcube.Filler.String(), pocketcube.StateLength-len(s)))
	}

	u := face(s, offsetU, cell)
	gap := strings.Repeat(" ", lipgloss.Width(u))

	upper := lipgloss.JoinHorizontal(lipgloss.Top, gap, u)
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		face(s, offsetL, cell),
		face(s, offsetF, cell),
		face(s, offsetR, cell),
		face(s, offsetB, cell),
	)
	lower := lipgloss.JoinHorizontal(lipgloss.Top, gap, face(s, offsetD, cell))
	return lipgloss.JoinVertical(lipgloss.Left, upper, middle, lower)
}

// face renders the four stickers of one group, read clockwise from the
// top-left.
func face(s pocketcube.State, offset int, cell Cell) string {
	at := func(i int) string { return cell(pocketcube.Color(s[offset+i])) }
	return at(0) + at(1) + "\n" + at(3) + at(2)
}

// Frame renders the state shown by a live piece snapshot.
func Frame(pieces []pocketcube.Piece) string {
	return Net(pocketcube.Encode(pieces))
}

// PieceTable lists each piece's corner, position, rotation angle and
// colors.
func PieceTable(pieces []pocketcube.Piece) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-5s %-6s %-22s %7s  %s", "piece", "at", "position", "angle", "colors")))
	b.WriteString("\n")
	for _, p := range pieces {
		colors := p.Colors[pocketcube.Lateral].String() +
			p.Colors[pocketcube.Vertical].String() +
			p.Colors[pocketcube.Frontal].String()
		fmt.Fprintf(&b, "%-5s %-6s (%+.2f, %+.2f, %+.2f)  %6.1f°  %s\n",
			p.ID, p.Corner(), p.Position.X(), p.Position.Y(), p.Position.Z(),
			Angle(p.Orientation), colors)
	}
	return b.String()
}

// Angle returns the rotation angle of q in degrees.
func Angle(q mgl64.Quat) float64 {
	w := math.Min(math.Abs(q.Normalize().W), 1)
	return mgl64.RadToDeg(2 * math.Acos(w))
}

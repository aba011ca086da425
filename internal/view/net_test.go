package view

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/SeamusWaldron/pocketcube"
)

func lines(s string) []string {
	out := strings.Split(s, "\n")
	for i := range out {
		out[i] = strings.TrimRight(out[i], " ")
	}
	return out
}

func TestNetLayout(t *testing.T) {
	tests := []struct {
		name  string
		state pocketcube.State
		want  []string
	}{
		{
			name:  "solved",
			state: pocketcube.Solved,
			want:  []string{"  WW", "  WW", "OOGGRRBB", "OOGGRRBB", "  YY", "  YY"},
		},
		{
			name:  "after U",
			state: "WWWWGGOORRGGBBRRYYYYOOBB",
			want:  []string{"  WW", "  WW", "GGRRBBOO", "OOGGRRBB", "  YY", "  YY"},
		},
		{
			name:  "short input padded",
			state: "YO",
			want:  []string{"  YO", "  WW", "WWWWWWWW", "WWWWWWWW", "  WW", "  WW"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lines(NetWith(tt.state, Letter))
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("net:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(tt.want, "\n"))
			}
		})
	}
}

func TestFrameMatchesState(t *testing.T) {
	state := pocketcube.State("WOGWBOOOGYGGRWRWYRYYBRBB")
	pieces := pocketcube.Pieces(state)
	if Frame(pieces[:]) != Net(state) {
		t.Error("frame of resting pieces should render the state")
	}
}

func TestAngle(t *testing.T) {
	if a := Angle(mgl64.QuatIdent()); a != 0 {
		t.Errorf("identity angle = %v", a)
	}
	q := mgl64.QuatRotate(-math.Pi/2, mgl64.Vec3{0, 1, 0})
	if a := Angle(q); math.Abs(a-90) > 1e-9 {
		t.Errorf("quarter turn angle = %v", a)
	}
}

func TestPieceTable(t *testing.T) {
	pieces := pocketcube.Pieces(pocketcube.Solved)
	table := PieceTable(pieces[:])
	if got := len(strings.Split(strings.TrimSpace(table), "\n")); got != pocketcube.PieceCount+1 {
		t.Errorf("table has %d lines, want %d", got, pocketcube.PieceCount+1)
	}
	for _, want := range []string{"URF", "DLB", "(+0.50, +0.50, +0.50)", "OYB"} {
		if !strings.Contains(table, want) {
			t.Errorf("table missing %q:\n%s", want, table)
		}
	}
}

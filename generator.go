package filler

import (
	"fmt"
	"math/rand/v2"
	"slices"
)

// Source supplies uniformly distributed integers in [0, n). *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// StartCoordinates returns the corner p starts from: bottom left for
// PlayerOne, top right for PlayerTwo. p must be PlayerOne or PlayerTwo.
func StartCoordinates(p Player) Coordinates {
	if p == PlayerOne {
		return Coordinates{LastRow, 0}
	}
	return Coordinates{0, LastCol}
}

// Generate builds a starting board. No two orthogonally adjacent cells share a
// color, the two corners differ, and each player owns only their corner. A
// nil src uses the process-wide generator.
func Generate(src Source) Grid {
	if src == nil {
		src = globalSource{}
	}

	g := newGrid()
	for i := range Rows {
		for j := range Cols {
			// Only the cells above and to the left are placed yet.
			forbidden := make([]Color, 0, 2)
			if i > 0 {
				forbidden = append(forbidden, g.cells[i-1][j].Color)
			}
			if j > 0 {
				forbidden = append(forbidden, g.cells[i][j-1].Color)
			}
			g.cells[i][j].Color = pick(src, forbidden)
		}
	}

	g.cell(StartCoordinates(PlayerOne)).Owner = PlayerOne
	g.cell(StartCoordinates(PlayerTwo)).Owner = PlayerTwo
	separateCorners(&g, src)

	return g
}

// separateCorners redraws player two's corner when it has player one's color.
// The replacement also avoids every neighbour of the corner so the board stays
// free of adjacent matches.
func separateCorners(g *Grid, src Source) {
	one := g.cell(StartCoordinates(PlayerOne))
	two := g.cell(StartCoordinates(PlayerTwo))
	if one.Color != two.Color {
		return
	}

	forbidden := []Color{one.Color}
	for _, n := range two.Coordinates.Neighbors() {
		forbidden = append(forbidden, g.Cell(n).Color)
	}
	prev := two.Color
	two.Color = pick(src, forbidden)
	log.Debugw("redrew starting corner", "player", PlayerTwo, "from", prev, "to", two.Color)
}

// pick draws uniformly from the palette minus forbidden. At most three colors
// are ever forbidden, so running out means a bug in the caller.
func pick(src Source, forbidden []Color) Color {
	choices := make([]Color, 0, len(palette))
	for _, c := range palette {
		if !slices.Contains(forbidden, c) {
			choices = append(choices, c)
		}
	}
	if len(choices) == 0 {
		panic(fmt.Sprintf("filler: no color left after excluding %v", forbidden))
	}

	return choices[src.IntN(len(choices))]
}

package filler

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func generated(t *testing.T) map[string]Grid {
	t.Helper()
	boards := map[string]Grid{
		"first":  Generate(fixedSource(0)),
		"last":   Generate(fixedSource(5)),
		"middle": Generate(fixedSource(2)),
		"global": Generate(nil),
	}
	for seed := range uint64(300) {
		boards[fmt.Sprintf("seed%d", seed)] = Generate(rand.New(rand.NewPCG(seed, seed)))
	}
	return boards
}

func TestGenerateNoAdjacentMatches(t *testing.T) {
	for name, g := range generated(t) {
		t.Run(name, func(t *testing.T) {
			for i := range Rows {
				for j := range Cols {
					c := g.At(i, j)
					if !c.Color.Valid() {
						t.Fatalf("%v has invalid color %v", c.Coordinates, c.Color)
					}
					for _, n := range c.Coordinates.Neighbors() {
						if g.Cell(n).Color == c.Color {
							t.Errorf("%v and %v are both %v\n%s", c.Coordinates, n, c.Color, g.String())
						}
					}
				}
			}
		})
	}
}

func TestGenerateStartingCorners(t *testing.T) {
	one, two := StartCoordinates(PlayerOne), StartCoordinates(PlayerTwo)
	for name, g := range generated(t) {
		t.Run(name, func(t *testing.T) {
			if g.Cell(one).Color == g.Cell(two).Color {
				t.Errorf("both corners are %v", g.Cell(one).Color)
			}
			if g.Cell(one).Owner != PlayerOne {
				t.Errorf("%v owned by %v", one, g.Cell(one).Owner)
			}
			if g.Cell(two).Owner != PlayerTwo {
				t.Errorf("%v owned by %v", two, g.Cell(two).Owner)
			}
			if n := g.Count(NoPlayer); n != Rows*Cols-2 {
				t.Errorf("%d unowned cells, want %d", n, Rows*Cols-2)
			}
		})
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(rand.New(rand.NewPCG(7, 11)))
	b := Generate(rand.New(rand.NewPCG(7, 11)))
	if a != b {
		t.Errorf("same seed gave different boards:\n%s\n\n%s", a.String(), b.String())
	}
}

func TestSeparateCorners(t *testing.T) {
	g := withCorners(paint(t,
		"pkpkpkyr",
		"kpkpkpkg",
		"pkpkpkpk",
		"kpkpkpkp",
		"pkpkpkpk",
		"kpkpkpkp",
		"rkpkpkpk",
	))

	// Red, Yellow and Green are excluded, leaving Blue, Purple, Black.
	separateCorners(&g, fixedSource(0))
	if got := g.Cell(StartCoordinates(PlayerTwo)).Color; got != Blue {
		t.Errorf("corner redrawn to %v, want Blue", got)
	}
	if got := g.Cell(StartCoordinates(PlayerOne)).Color; got != Red {
		t.Errorf("player one's corner changed to %v", got)
	}

	// Distinct corners are left alone.
	before := g
	separateCorners(&g, fixedSource(0))
	if g != before {
		t.Errorf("distinct corners were redrawn")
	}
}

func TestPickSkipsForbidden(t *testing.T) {
	forbidden := []Color{Red, Blue, Black}
	for i := range 10 {
		c := pick(fixedSource(i), forbidden)
		if c == Red || c == Blue || c == Black {
			t.Errorf("pick returned forbidden %v", c)
		}
	}
}

func TestPickPanicsWhenPaletteExhausted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("pick did not panic")
		}
	}()
	pick(fixedSource(0), Colors())
}

package filler

import (
	"fmt"
	"strings"
)

// Board dimensions.
const (
	Rows    = 7
	Cols    = 8
	LastRow = Rows - 1
	LastCol = Cols - 1
)

// Coordinates address a cell by row and column, both counted from zero at the
// top left.
type Coordinates struct {
	Row int
	Col int
}

// InBounds reports whether c addresses a cell of the board.
func (c Coordinates) InBounds() bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Neighbors returns the in-bounds orthogonal neighbours of c: four inside the
// board, three on an edge and two in a corner. There is no wraparound.
func (c Coordinates) Neighbors() []Coordinates {
	out := make([]Coordinates, 0, 4)
	if c.Row > 0 {
		out = append(out, Coordinates{c.Row - 1, c.Col})
	}
	if c.Col > 0 {
		out = append(out, Coordinates{c.Row, c.Col - 1})
	}
	if c.Row < LastRow {
		out = append(out, Coordinates{c.Row + 1, c.Col})
	}
	if c.Col < LastCol {
		out = append(out, Coordinates{c.Row, c.Col + 1})
	}
	return out
}

// Cell is a single square of the board.
type Cell struct {
	Owner       Player
	Color       Color
	Coordinates Coordinates
}

// Owned reports whether some player has captured the cell.
func (c Cell) Owned() bool {
	return c.Owner != NoPlayer
}

// Grid is the fixed size board. It is a value: copying a Grid gives an
// independent snapshot. Only the generator and the capture routine in this
// package write to it.
type Grid struct {
	cells [Rows][Cols]Cell
}

func newGrid() Grid {
	var g Grid
	for i := range Rows {
		for j := range Cols {
			g.cells[i][j].Coordinates = Coordinates{i, j}
		}
	}
	return g
}

// Cell returns the cell at c. It panics if c is out of bounds.
func (g *Grid) Cell(c Coordinates) Cell {
	return g.cells[c.Row][c.Col]
}

// At returns the cell at row, col. It panics if either is out of bounds.
func (g *Grid) At(row, col int) Cell {
	return g.cells[row][col]
}

// Row returns a copy of row i.
func (g *Grid) Row(i int) [Cols]Cell {
	return g.cells[i]
}

// Neighbors returns the in-bounds orthogonal neighbours of c.
func (g *Grid) Neighbors(c Coordinates) []Coordinates {
	return c.Neighbors()
}

func (g *Grid) cell(c Coordinates) *Cell {
	return &g.cells[c.Row][c.Col]
}

// Owned returns the coordinates of every cell owned by p in row-major order.
func (g *Grid) Owned(p Player) []Coordinates {
	var out []Coordinates
	for i := range Rows {
		for j := range Cols {
			if g.cells[i][j].Owner == p {
				out = append(out, g.cells[i][j].Coordinates)
			}
		}
	}
	return out
}

// Count returns how many cells p owns.
func (g *Grid) Count(p Player) int {
	n := 0
	for i := range Rows {
		for j := range Cols {
			if g.cells[i][j].Owner == p {
				n++
			}
		}
	}
	return n
}

// String renders one color key per cell, a row per line. Owned cells are
// upper case.
func (g *Grid) String() string {
	var sb strings.Builder
	for i := range Rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := range Cols {
			c := g.cells[i][j]
			k := c.Color.Key()
			if c.Owned() {
				k = strings.ToUpper(k)
			}
			sb.WriteString(k)
		}
	}
	return sb.String()
}

package filler

// capture plays color c for player p on g. Every cell p owns is repainted c,
// and every unowned cell of color c reachable from p's territory through
// cells of color c is annexed. It returns the number of annexed cells.
//
// The walk is breadth first over an explicit queue. A cell is claimed when it
// is queued, so each cell enters the queue at most once and the work is
// bounded by the board size whatever the coloring.
func capture(g *Grid, p Player, c Color) int {
	queue := g.Owned(p)
	annexed := 0
	for len(queue) > 0 {
		at := queue[0]
		queue = queue[1:]

		g.cell(at).Color = c
		for _, n := range at.Neighbors() {
			next := g.cell(n)
			if next.Owner == NoPlayer && next.Color == c {
				next.Owner = p
				annexed++
				queue = append(queue, n)
			}
		}
	}

	return annexed
}

package variability

// MaxCell locates the maximum value in the grid. Ties go to the cell that
// comes first in row-major scan order.
func MaxCell(g *Grid) (row, col int, max float64) {
	max = g.Values[0]
	for i, v := range g.Values[1:] {
		if v > max {
			max = v
			row = (i + 1) / g.Width
			col = (i + 1) % g.Width
		}
	}
	return row, col, max
}

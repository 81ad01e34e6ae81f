// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing
func Format(X mat.Matrix) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// Grid arranges the values of v, one per cell of a grid with r rows and
// c columns, for printing. The value of cell (x, y) is v[y*c+x], and
// rows are ordered from the largest y at the top to y = 0 at the
// bottom.
func Grid(v mat.Vector, r, c int) (*mat.Dense, error) {
	if v.Len() != r*c {
		return nil, fmt.Errorf("grid: cannot arrange %d values in a (%d, "+
			"%d) grid", v.Len(), r, c)
	}

	grid := mat.NewDense(r, c, nil)
	for y := 0; y < r; y++ {
		for x := 0; x < c; x++ {
			grid.Set(r-1-y, x, v.AtVec(y*c+x))
		}
	}
	return grid, nil
}

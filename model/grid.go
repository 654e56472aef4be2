package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
)

// Grid is a fixed-size matrix of cell states stored row-major.
type Grid struct {
	rows  int
	cols  int
	cells [][]bool
}

// NewGrid creates a new grid with the specified dimensions, all cells dead
func NewGrid(rows, cols int) *Grid {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Reset resizes the grid to new dimensions and kills every cell
func (g *Grid) Reset(rows, cols int) {
	g.rows = rows
	g.cols = cols

	// Reuse row slices where the width already matches
	if len(g.cells) != rows {
		g.cells = make([][]bool, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != cols {
			g.cells[i] = make([]bool, cols)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for i := range g.rows {
		clear(g.cells[i])
	}
}

// InBounds reports whether (row, col) addresses a cell of the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Set sets a cell to alive (true) or dead (false); out of range is ignored
func (g *Grid) Set(row, col int, alive bool) {
	if g.InBounds(row, col) {
		g.cells[row][col] = alive
	}
}

// Get returns the state of a cell; out of range reads as dead
func (g *Grid) Get(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[row][col]
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for i := range g.rows {
		for j := range g.cols {
			if g.cells[i][j] {
				count++
			}
		}
	}
	return
}

// Randomize sets every cell alive with probability 0.5 and returns the live count
func (g *Grid) Randomize(rng *rand.Rand) (count int) {
	for i := range g.rows {
		for j := range g.cols {
			alive := rng.IntN(2) == 1
			g.cells[i][j] = alive
			if alive {
				count++
			}
		}
	}
	return
}

// Matrix returns a deep copy of the grid as 0/1 integers
func (g *Grid) Matrix() [][]int {
	out := make([][]int, g.rows)
	for i := range g.rows {
		row := make([]int, g.cols)
		for j := range g.cols {
			if g.cells[i][j] {
				row[j] = 1
			}
		}
		out[i] = row
	}
	return out
}

// Hash returns an MD5 digest of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	row := make([]byte, g.cols)
	for i := range g.rows {
		for j := range g.cols {
			if g.cells[i][j] {
				row[j] = 1
			} else {
				row[j] = 0
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

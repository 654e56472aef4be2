package model

import (
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Fill selects the initial content of a freshly built engine.
type Fill int

const (
	FillRandom Fill = iota
	FillEmpty
)

// Engine owns the Game of Life state: two same-shape buffers, the generation
// counter, the live cell count and the boundary policy.
//
// Engine is not safe for concurrent use. Callers driving Step from a timer
// while also accepting edits must serialize access themselves.
type Engine struct {
	// buffers[cur] is the authoritative grid, the other is scratch space
	// for the next generation.
	buffers [2]*Grid
	cur     int

	generation int
	aliveCount int
	mode       BoundaryMode

	rng     *rand.Rand
	workers int
	pool    *GridPool
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithRand injects the random source used by random fills.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithSeed seeds a deterministic PCG source.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = newRand(seed)
	}
}

// WithBoundaryMode sets the initial boundary mode.
func WithBoundaryMode(mode BoundaryMode) Option {
	return func(e *Engine) {
		e.mode = mode
	}
}

// WithWorkers splits Step across n goroutines by row bands. n <= 1 keeps
// the step on the calling goroutine.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithPool recycles buffers through pool when the engine is resized.
func WithPool(pool *GridPool) Option {
	return func(e *Engine) {
		e.pool = pool
	}
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// NewEngine creates an engine of rows x cols filled according to fill.
func NewEngine(rows, cols int, fill Fill, opts ...Option) (*Engine, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewEngine] %dx%d", rows, cols)
	}

	e := &Engine{mode: Finite, workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = newRand(time.Now().UnixNano())
	}

	e.allocate(rows, cols)
	if fill == FillRandom {
		e.aliveCount = e.grid().Randomize(e.rng)
	}
	return e, nil
}

func (e *Engine) grid() *Grid    { return e.buffers[e.cur] }
func (e *Engine) scratch() *Grid { return e.buffers[e.cur^1] }

func (e *Engine) allocate(rows, cols int) {
	for i := range e.buffers {
		GridToPool(e.buffers[i], e.pool)
		if e.pool != nil {
			e.buffers[i] = e.pool.Get(rows, cols)
		} else {
			e.buffers[i] = NewGrid(rows, cols)
		}
	}
	e.cur = 0
	e.generation = 0
	e.aliveCount = 0
}

// Rows returns the number of grid rows
func (e *Engine) Rows() int { return e.grid().Rows() }

// Cols returns the number of grid columns
func (e *Engine) Cols() int { return e.grid().Cols() }

// Generation returns the number of steps since the last reset
func (e *Engine) Generation() int { return e.generation }

// AliveCount returns the number of live cells in the current generation
func (e *Engine) AliveCount() int { return e.aliveCount }

// BoundaryMode returns the active boundary mode
func (e *Engine) BoundaryMode() BoundaryMode { return e.mode }

// Alive reports whether a cell is alive; out of range reads as dead
func (e *Engine) Alive(row, col int) bool { return e.grid().Get(row, col) }

// Cells exposes the current generation for rendering. The view reads the
// engine's live buffer, so it always shows the latest generation.
func (e *Engine) Cells() View { return View{e: e} }

// View is a read-only window onto an engine's current generation.
type View struct {
	e *Engine
}

func (v View) Rows() int { return v.e.Rows() }

func (v View) Cols() int { return v.e.Cols() }

func (v View) Alive(row, col int) bool { return v.e.Alive(row, col) }

// Hash returns a digest of the current generation
func (e *Engine) Hash() string { return e.grid().Hash() }

// SetBoundaryMode changes the boundary mode used by the next Step
func (e *Engine) SetBoundaryMode(mode BoundaryMode) { e.mode = mode }

// Reseed replaces the random source with a deterministic one
func (e *Engine) Reseed(seed int64) { e.rng = newRand(seed) }

// ToggleCell flips one cell and reports whether anything changed.
// Coordinates outside the grid are ignored.
func (e *Engine) ToggleCell(row, col int) bool {
	g := e.grid()
	if !g.InBounds(row, col) {
		return false
	}
	alive := !g.cells[row][col]
	g.cells[row][col] = alive
	if alive {
		e.aliveCount++
	} else {
		e.aliveCount--
	}
	return true
}

// SetCell forces one cell to the given state. Coordinates outside the grid
// are ignored.
func (e *Engine) SetCell(row, col int, alive bool) {
	e.write(row, col, alive)
}

// write sets a cell and keeps aliveCount in step; it reports whether the
// cell was inside the grid.
func (e *Engine) write(row, col int, alive bool) bool {
	g := e.grid()
	if !g.InBounds(row, col) {
		return false
	}
	was := g.cells[row][col]
	switch {
	case alive && !was:
		e.aliveCount++
	case !alive && was:
		e.aliveCount--
	}
	g.cells[row][col] = alive
	return true
}

// PlacePattern overwrites the grid with pattern anchored at (originRow,
// originCol). Pattern cells landing outside the grid are dropped. It
// returns the number of cells written.
func (e *Engine) PlacePattern(originRow, originCol int, pattern [][]int) (written int) {
	for i, row := range pattern {
		for j, v := range row {
			if e.write(originRow+i, originCol+j, v != 0) {
				written++
			}
		}
	}
	return
}

// Clear kills every cell and resets the generation counter
func (e *Engine) Clear() {
	e.grid().Clear()
	e.generation = 0
	e.aliveCount = 0
}

// Randomize refills the grid with a fair coin per cell and resets the
// generation counter
func (e *Engine) Randomize() {
	e.aliveCount = e.grid().Randomize(e.rng)
	e.generation = 0
}

// Resize reallocates both buffers at the new shape and reseeds them randomly.
// The previous content is not preserved.
func (e *Engine) Resize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "[Resize] %dx%d", rows, cols)
	}
	e.allocate(rows, cols)
	e.aliveCount = e.grid().Randomize(e.rng)
	return nil
}

// LoadState replaces the grid with matrix, which must match the current
// shape exactly. Non-zero values are alive. On error the engine is unchanged.
func (e *Engine) LoadState(matrix [][]int) error {
	rows, cols := e.Rows(), e.Cols()
	if len(matrix) != rows {
		return errors.Wrapf(ErrDimensionMismatch, "[LoadState] current grid: %dx%d, loaded pattern: %dx%d",
			rows, cols, len(matrix), rowWidth(matrix))
	}
	for i, row := range matrix {
		if len(row) != cols {
			return errors.Wrapf(ErrDimensionMismatch, "[LoadState] current grid: %dx%d, loaded pattern row %d has %d columns",
				rows, cols, i, len(row))
		}
	}

	g := e.grid()
	count := 0
	for i, row := range matrix {
		for j, v := range row {
			alive := v != 0
			g.cells[i][j] = alive
			if alive {
				count++
			}
		}
	}
	e.aliveCount = count
	e.generation = 0
	return nil
}

func rowWidth(matrix [][]int) int {
	if len(matrix) == 0 {
		return 0
	}
	return len(matrix[0])
}

// ExportState returns a deep copy of the current generation as 0/1 rows
func (e *Engine) ExportState() [][]int {
	return e.grid().Matrix()
}

// CountLiveNeighbors counts live cells in the Moore neighborhood of
// (row, col) under the active boundary mode.
func (e *Engine) CountLiveNeighbors(row, col int) int {
	return countLiveNeighbors(e.grid(), e.mode, row, col)
}

func countLiveNeighbors(g *Grid, mode BoundaryMode, row, col int) (count int) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c, ok := mode.resolve(row+dr, col+dc, g.rows, g.cols)
			if ok && g.cells[r][c] {
				count++
			}
		}
	}
	return
}

// Step advances one generation. The next generation is computed only from
// the current buffer into scratch, then the two buffers trade places.
func (e *Engine) Step() {
	e.generation++

	src, dst := e.grid(), e.scratch()
	if e.workers <= 1 || src.rows < 2 {
		e.aliveCount = stepRows(src, dst, e.mode, 0, src.rows)
	} else {
		e.aliveCount = e.stepParallel(src, dst)
	}

	e.cur ^= 1
}

func (e *Engine) stepParallel(src, dst *Grid) int {
	var (
		eg            errgroup.Group
		numWorkers    = min(e.workers, src.rows)
		rowsPerWorker = (src.rows + numWorkers - 1) / numWorkers // Ceiling division
		counts        = make([]int, numWorkers)
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, src.rows)
		)
		if startRow >= src.rows {
			break
		}

		eg.Go(func() error {
			counts[i] = stepRows(src, dst, e.mode, startRow, endRow)
			return nil
		})
	}
	// Workers never fail; Wait is the join point.
	_ = eg.Wait()

	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

// stepRows writes rows [startRow, endRow) of the next generation into dst
// and returns how many of them are alive.
func stepRows(src, dst *Grid, mode BoundaryMode, startRow, endRow int) (alive int) {
	for i := startRow; i < endRow; i++ {
		for j := range src.cols {
			next := rules.ApplyConwayRules(countLiveNeighbors(src, mode, i, j), src.cells[i][j])
			dst.cells[i][j] = next
			if next {
				alive++
			}
		}
	}
	return
}

// Package maze grows a perfect maze one unit of work at a time using a
// randomized depth-first traversal with an explicit stack.
package maze

import (
	"strconv"

	"maze-gen/internal/core"
)

// Maze holds the cell grid, the traversal stack and the generation counters.
// The stack top is both the active cell and the render cursor.
type Maze struct {
	grid    *core.ByteGrid
	stack   []core.Point
	visited int
	stats   Stats
}

// New allocates a maze of w*h cells. Call Reset before stepping.
func New(w, h int) *Maze {
	g := core.NewByteGrid(w, h)
	return &Maze{grid: g, stack: make([]core.Point, 0, g.W*g.H)}
}

// Name identifies the generator.
func (m *Maze) Name() string { return "backtracker" }

// Size returns the grid dimensions.
func (m *Maze) Size() core.Size { return core.Size{W: m.grid.W, H: m.grid.H} }

// Total returns the number of cells.
func (m *Maze) Total() int { return m.grid.W * m.grid.H }

// Visited returns the number of visited cells.
func (m *Maze) Visited() int { return m.visited }

// Done reports whether every cell has been visited.
func (m *Maze) Done() bool { return m.visited >= m.Total() }

// At returns the flags of cell (x, y), or zero outside the grid.
func (m *Maze) At(x, y int) Flags { return Flags(m.grid.At(x, y)) }

// StackDepth returns the current length of the traversal stack.
func (m *Maze) StackDepth() int { return len(m.stack) }

// Stack returns a copy of the traversal stack, bottom first.
func (m *Maze) Stack() []core.Point {
	return append([]core.Point(nil), m.stack...)
}

// Cursor returns the stack top. ok is false before the first Reset.
func (m *Maze) Cursor() (p core.Point, ok bool) {
	if len(m.stack) == 0 {
		return core.Point{}, false
	}
	return m.stack[len(m.stack)-1], true
}

// Stats returns the counters collected since the last Reset.
func (m *Maze) Stats() Stats { return m.stats }

// Reset clears every cell and starts a new traversal from a uniformly random
// cell.
func (m *Maze) Reset(rng *core.RNG) {
	m.grid.Clear()
	m.stack = m.stack[:0]
	start := rng.Point(m.grid.W, m.grid.H)
	m.grid.Or(start.X, start.Y, uint8(Visited))
	m.stack = append(m.stack, start)
	m.visited = 1
	m.stats = Stats{Start: start, MaxDepth: 1}
}

// Step performs one unit of work: carve into a random unvisited neighbor of
// the stack top, or pop the stack when there is none. It reports whether the
// maze changed; once every cell is visited it is a no-op.
func (m *Maze) Step(rng *core.RNG) bool {
	// The visited count is the only terminal guard; the stack is not read
	// once generation is complete.
	if m.Done() || len(m.stack) == 0 {
		return false
	}
	cur := m.stack[len(m.stack)-1]

	var open [4]Direction
	n := 0
	for _, d := range Directions {
		dx, dy := d.Delta()
		nx, ny := cur.X+dx, cur.Y+dy
		if !m.grid.InBounds(nx, ny) {
			continue
		}
		if Flags(m.grid.At(nx, ny)).Has(Visited) {
			continue
		}
		open[n] = d
		n++
	}

	m.stats.Steps++
	if n == 0 {
		m.stack = m.stack[:len(m.stack)-1]
		m.stats.Backtracks++
		return true
	}

	d := open[rng.IntN(n)]
	next := m.carve(cur, d)
	m.stack = append(m.stack, next)
	m.visited++
	if len(m.stack) > m.stats.MaxDepth {
		m.stats.MaxDepth = len(m.stack)
	}
	return true
}

// Run steps until the maze is complete and returns the number of steps taken.
func (m *Maze) Run(rng *core.RNG) int {
	steps := 0
	for m.Step(rng) {
		steps++
	}
	return steps
}

// carve opens the mirrored passage between cur and its neighbor in d, marks
// the neighbor visited and returns it.
func (m *Maze) carve(cur core.Point, d Direction) core.Point {
	dx, dy := d.Delta()
	next := cur.Add(dx, dy)
	m.grid.Or(cur.X, cur.Y, uint8(d.Path()))
	m.grid.Or(next.X, next.Y, uint8(d.Opposite().Path()|Visited))
	return next
}

// Parameters reports the generation progress for HUD display.
func (m *Maze) Parameters() core.ParameterSnapshot {
	st := m.stats
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Generation",
			Params: []core.Parameter{
				{Key: "visited", Label: "Visited", Value: strconv.Itoa(m.visited) + "/" + strconv.Itoa(m.Total())},
				{Key: "stack", Label: "Stack", Value: strconv.Itoa(len(m.stack))},
				{Key: "steps", Label: "Steps", Value: strconv.Itoa(st.Steps)},
				{Key: "backtracks", Label: "Backtracks", Value: strconv.Itoa(st.Backtracks)},
				{Key: "max_depth", Label: "Max depth", Value: strconv.Itoa(st.MaxDepth)},
			},
		},
	}}
}

package maze

import (
	"testing"

	"maze-gen/internal/core"

	"github.com/stretchr/testify/require"
)

func requireMirrored(t *testing.T, m *Maze) {
	t.Helper()
	size := m.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := m.At(x, y)
			for _, d := range Directions {
				if !c.Has(d.Path()) {
					continue
				}
				dx, dy := d.Delta()
				nx, ny := x+dx, y+dy
				require.True(t, nx >= 0 && nx < size.W && ny >= 0 && ny < size.H,
					"cell (%d,%d) has a %v passage leaving the grid", x, y, d)
				require.True(t, m.At(nx, ny).Has(d.Opposite().Path()),
					"cell (%d,%d) %v passage not mirrored on (%d,%d)", x, y, d, nx, ny)
			}
		}
	}
}

// requireSpanningTree checks that the passage graph connects every cell with
// exactly one fewer edge than there are cells.
func requireSpanningTree(t *testing.T, m *Maze) {
	t.Helper()
	size := m.Size()
	require.Equal(t, m.Total()-1, m.Passages())

	seen := make([]bool, m.Total())
	queue := []core.Point{{}}
	seen[0] = true
	reached := 1
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		c := m.At(p.X, p.Y)
		for _, d := range Directions {
			if !c.Has(d.Path()) {
				continue
			}
			dx, dy := d.Delta()
			n := p.Add(dx, dy)
			idx := n.Y*size.W + n.X
			if seen[idx] {
				continue
			}
			seen[idx] = true
			reached++
			queue = append(queue, n)
		}
	}
	require.Equal(t, m.Total(), reached, "passage graph is not connected")
}

func TestResetStartsSingleVisitedCell(t *testing.T) {
	m := New(7, 4)
	m.Reset(core.NewRNG(3))

	require.Equal(t, 1, m.Visited())
	require.Equal(t, 1, m.StackDepth())
	cur, ok := m.Cursor()
	require.True(t, ok)
	require.Equal(t, Visited, m.At(cur.X, cur.Y))

	count := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 7; x++ {
			if m.At(x, y).Has(Visited) {
				count++
			}
		}
	}
	require.Equal(t, 1, count)
}

func TestResetClearsPreviousMaze(t *testing.T) {
	m := New(6, 6)
	rng := core.NewRNG(11)
	m.Reset(rng)
	m.Run(rng)
	require.True(t, m.Done())

	m.Reset(rng)
	require.Equal(t, 1, m.Visited())
	require.Equal(t, 1, m.StackDepth())
	require.Zero(t, m.Passages())
	require.Zero(t, m.Stats().Steps)
}

func TestSingleCellIsComplete(t *testing.T) {
	m := New(1, 1)
	rng := core.NewRNG(1)
	m.Reset(rng)

	require.Equal(t, 1, m.Visited())
	require.True(t, m.Done())
	for i := 0; i < 5; i++ {
		require.False(t, m.Step(rng))
	}
	require.Equal(t, 1, m.StackDepth())
	require.Equal(t, Visited, m.At(0, 0))
}

func TestTwoCellsCarveInOneStep(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		m := New(2, 1)
		rng := core.NewRNG(seed)
		m.Reset(rng)
		require.Equal(t, 1, m.StackDepth())

		require.True(t, m.Step(rng))
		require.Equal(t, 2, m.Visited())
		require.True(t, m.Done())
		require.Equal(t, Visited|PathEast, m.At(0, 0))
		require.Equal(t, Visited|PathWest, m.At(1, 0))
		require.False(t, m.Step(rng))
	}
}

func TestTenByTenCompletesAsSpanningTree(t *testing.T) {
	m := New(10, 10)
	rng := core.NewRNG(42)
	m.Reset(rng)

	prev := m.Visited()
	steps := 0
	for !m.Done() {
		require.True(t, m.Step(rng))
		steps++
		require.GreaterOrEqual(t, m.Visited(), prev)
		require.LessOrEqual(t, m.Visited(), m.Total())
		prev = m.Visited()
		requireMirrored(t, m)
	}
	require.Equal(t, 100, m.Visited())
	require.GreaterOrEqual(t, steps, 99)
	require.Equal(t, 99, m.Stats().Carves())
	require.Equal(t, steps, m.Stats().Steps)
	requireSpanningTree(t, m)

	before := make([]uint8, len(m.grid.Cells()))
	copy(before, m.grid.Cells())
	stack := m.Stack()

	require.False(t, m.Step(rng))
	require.Equal(t, before, m.grid.Cells())
	require.Equal(t, stack, m.Stack())
	require.Equal(t, 100, m.Visited())
}

func TestPerfectMazeAcrossShapes(t *testing.T) {
	shapes := []core.Size{{W: 1, H: 9}, {W: 9, H: 1}, {W: 3, H: 3}, {W: 17, H: 5}, {W: 32, H: 32}}
	for _, s := range shapes {
		for seed := int64(1); seed <= 4; seed++ {
			m := New(s.W, s.H)
			rng := core.NewRNG(seed)
			m.Reset(rng)
			m.Run(rng)
			require.True(t, m.Done(), "%dx%d seed %d", s.W, s.H, seed)
			requireMirrored(t, m)
			requireSpanningTree(t, m)
			require.NotZero(t, m.StackDepth(), "stack must not empty at completion")
		}
	}
}

func TestSameSeedSameMaze(t *testing.T) {
	a, b := New(20, 12), New(20, 12)
	ra, rb := core.NewRNG(99), core.NewRNG(99)
	a.Reset(ra)
	b.Reset(rb)
	a.Run(ra)
	b.Run(rb)
	require.Equal(t, a.grid.Cells(), b.grid.Cells())
	require.Equal(t, a.Stats(), b.Stats())
}

func TestStepNeverCarvesIntoVisitedCells(t *testing.T) {
	m := New(8, 8)
	rng := core.NewRNG(5)
	m.Reset(rng)
	for !m.Done() {
		depth := m.StackDepth()
		visited := m.Visited()
		m.Step(rng)
		if m.StackDepth() > depth {
			require.Equal(t, visited+1, m.Visited())
			cur, _ := m.Cursor()
			require.True(t, m.At(cur.X, cur.Y).Has(Visited))
		} else {
			require.Equal(t, depth-1, m.StackDepth())
			require.Equal(t, visited, m.Visited())
		}
	}
}

func TestStatsAndParameters(t *testing.T) {
	m := New(12, 9)
	rng := core.NewRNG(8)
	m.Reset(rng)
	m.Run(rng)

	st := m.Stats()
	require.Equal(t, m.Total()-1, st.Carves())
	require.GreaterOrEqual(t, st.MaxDepth, 2)
	require.LessOrEqual(t, st.MaxDepth, m.Total())
	require.Greater(t, m.DeadEnds(), 0)

	p, ok := m.Parameters().Lookup("visited")
	require.True(t, ok)
	require.Equal(t, "108/108", p.Value)
}

func TestDirectionHelpers(t *testing.T) {
	cases := []struct {
		d        Direction
		opposite Direction
		path     Flags
		dx, dy   int
	}{
		{North, South, PathNorth, 0, -1},
		{East, West, PathEast, 1, 0},
		{South, North, PathSouth, 0, 1},
		{West, East, PathWest, -1, 0},
	}
	for _, tc := range cases {
		dx, dy := tc.d.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Fatalf("%v delta = (%d,%d), want (%d,%d)", tc.d, dx, dy, tc.dx, tc.dy)
		}
		if tc.d.Opposite() != tc.opposite {
			t.Fatalf("%v opposite = %v, want %v", tc.d, tc.d.Opposite(), tc.opposite)
		}
		if tc.d.Path() != tc.path {
			t.Fatalf("%v path = %d, want %d", tc.d, tc.d.Path(), tc.path)
		}
	}
}

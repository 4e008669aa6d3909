package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"maze-gen/internal/core"
	"maze-gen/internal/maze"

	log "github.com/sirupsen/logrus"
)

type result struct {
	seed       int64
	steps      int
	backtracks int
	maxDepth   int
	deadEnds   int
}

func (r result) String() string {
	return fmt.Sprintf("seed=%d steps=%d backtracks=%d maxDepth=%d deadEnds=%d",
		r.seed, r.steps, r.backtracks, r.maxDepth, r.deadEnds)
}

func generate(w, h int, seed int64) result {
	m := maze.New(w, h)
	rng := core.NewRNG(seed)
	m.Reset(rng)
	m.Run(rng)
	st := m.Stats()
	return result{
		seed:       seed,
		steps:      st.Steps,
		backtracks: st.Backtracks,
		maxDepth:   st.MaxDepth,
		deadEnds:   m.DeadEnds(),
	}
}

func main() {
	width := flag.Int("w", 100, "maze width in cells")
	height := flag.Int("h", 50, "maze height in cells")
	count := flag.Int("n", 64, "number of mazes to generate")
	first := flag.Int64("seed", 1, "first seed; seeds run consecutively")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	if *width <= 0 || *height <= 0 || *count <= 0 {
		log.Fatalf("width, height and count must be positive (got %dx%d, n=%d)", *width, *height, *count)
	}
	if *workers <= 0 {
		*workers = 1
	}

	seeds := make(chan int64)
	results := make([]result, *count)
	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range seeds {
				results[seed-*first] = generate(*width, *height, seed)
			}
		}()
	}
	for i := 0; i < *count; i++ {
		seeds <- *first + int64(i)
	}
	close(seeds)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].deadEnds > results[j].deadEnds })

	var steps, deadEnds, depth int
	for _, r := range results {
		steps += r.steps
		deadEnds += r.deadEnds
		depth += r.maxDepth
	}
	n := float64(len(results))
	log.WithFields(log.Fields{
		"width":   *width,
		"height":  *height,
		"mazes":   len(results),
		"workers": *workers,
	}).Info("sweep complete")
	fmt.Printf("mean steps %.1f, mean dead ends %.1f, mean max depth %.1f\n",
		float64(steps)/n, float64(deadEnds)/n, float64(depth)/n)
	fmt.Println("most dead ends:", results[0])
	fmt.Println("fewest dead ends:", results[len(results)-1])
}

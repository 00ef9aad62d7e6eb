package render

import "github.com/gogpu/toon/internal/parallel"

// bandRows splits rows [0, height) into contiguous bands, one task per
// band, and runs them on the pool. Every pixel is written by exactly one
// invocation, so no synchronization beyond the pool's join is needed.
func bandRows(pool *parallel.WorkerPool, height int, fn func(y0, y1 int)) {
	workers := pool.Workers()
	if workers > height {
		workers = height
	}
	if workers <= 1 || !pool.IsRunning() {
		fn(0, height)
		return
	}

	band := (height + workers - 1) / workers

	work := make([]func(), 0, workers)
	for y0 := 0; y0 < height; y0 += band {
		y1 := y0 + band
		if y1 > height {
			y1 = height
		}
		work = append(work, func() { fn(y0, y1) })
	}
	pool.ExecuteAll(work)
}

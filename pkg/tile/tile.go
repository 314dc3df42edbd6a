// Package tile implements the tile-based parallel work scheduler: it
// partitions an image into square tiles and drives a fixed worker pool
// over them, agnostic to what actually renders each tile.
package tile

import (
	"sync"
	"sync/atomic"
)

// DefaultSize and DefaultWorkers are the scheduler's default tile side
// and worker pool size.
const (
	DefaultSize    = 32
	DefaultWorkers = 16
)

// Tile is a disjoint rectangular region of the image, [X0, X1) x [Y0, Y1).
type Tile struct {
	X0, Y0, X1, Y1 int
}

// Width and Height return the tile's pixel extent.
func (t Tile) Width() int  { return t.X1 - t.X0 }
func (t Tile) Height() int { return t.Y1 - t.Y0 }

// Partition splits a width x height image into tiles of side `size` in
// row-major order, ceil(width/size) * ceil(height/size) tiles in all; the
// last row and column are clipped to the image, so they may be narrower
// or shorter than `size`.
func Partition(width, height, size int) []Tile {
	if size <= 0 {
		size = DefaultSize
	}

	var tiles []Tile
	for y := 0; y < height; y += size {
		y1 := y + size
		if y1 > height {
			y1 = height
		}
		for x := 0; x < width; x += size {
			x1 := x + size
			if x1 > width {
				x1 = width
			}
			tiles = append(tiles, Tile{X0: x, Y0: y, X1: x1, Y1: y1})
		}
	}
	return tiles
}

// RenderFunc renders the pixels within a tile's bounds into whatever
// buffer the caller closed over. The scheduler never inspects what it
// draws.
type RenderFunc func(t Tile)

// Progress is an atomic, monotonically increasing completed-tile counter.
// A nil *Progress is valid and simply means nobody is watching.
type Progress struct {
	completed int64
	total     int64
}

// NewProgress returns a Progress tracking completion against total tiles.
func NewProgress(total int) *Progress {
	return &Progress{total: int64(total)}
}

// Completed returns the number of tiles finished so far.
func (p *Progress) Completed() int64 {
	if p == nil {
		return 0
	}
	return atomic.LoadInt64(&p.completed)
}

// Total returns the tile count Progress was constructed with.
func (p *Progress) Total() int64 {
	if p == nil {
		return 0
	}
	return p.total
}

// Percent returns completion as a value in [0, 100].
func (p *Progress) Percent() float64 {
	if p == nil || p.total == 0 {
		return 100
	}
	return 100 * float64(p.Completed()) / float64(p.total)
}

// Increment atomically advances the completed-tile count by one. Safe to
// call from multiple goroutines and safe on a nil *Progress.
func (p *Progress) Increment() {
	if p == nil {
		return
	}
	atomic.AddInt64(&p.completed, 1)
}

// Scheduler runs a fixed pool of NumWorkers goroutines that draw tiles
// from a shared queue until it is empty, each tile moving from queued to
// in-flight to complete; there is no retry path, since rendering a tile
// is pure computation that cannot fail.
type Scheduler struct {
	NumWorkers int
}

// NewScheduler returns a Scheduler with numWorkers goroutines, falling
// back to DefaultWorkers for a non-positive count.
func NewScheduler(numWorkers int) *Scheduler {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkers
	}
	return &Scheduler{NumWorkers: numWorkers}
}

// Run dispatches tiles to the worker pool in row-major order and blocks
// until every tile has been rendered exactly once. render and progress
// are called concurrently from multiple goroutines; render must only
// touch the disjoint rectangle its tile describes.
func (s *Scheduler) Run(tiles []Tile, render RenderFunc, progress *Progress) {
	queue := make(chan Tile, len(tiles))
	for _, t := range tiles {
		queue <- t
	}
	close(queue)

	var wg sync.WaitGroup
	for i := 0; i < s.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range queue {
				render(t)
				progress.Increment()
			}
		}()
	}
	wg.Wait()
}

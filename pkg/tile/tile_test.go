package tile

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionCoversExactlyEveryPixelOnce(t *testing.T) {
	const width, height, size = 100, 70, 32

	tiles := Partition(width, height, size)

	covered := make([][]bool, height)
	for i := range covered {
		covered[i] = make([]bool, width)
	}

	for _, tl := range tiles {
		for y := tl.Y0; y < tl.Y1; y++ {
			for x := tl.X0; x < tl.X1; x++ {
				assert.False(t, covered[y][x], "pixel (%d,%d) covered by more than one tile", x, y)
				covered[y][x] = true
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			assert.True(t, covered[y][x], "pixel (%d,%d) never covered", x, y)
		}
	}
}

func TestPartitionTileCount(t *testing.T) {
	// T = ceil(W/B) * ceil(H/B).
	tiles := Partition(100, 70, 32)
	assert.Len(t, tiles, 4*3)
}

func TestPartitionRemainderTilesAreClipped(t *testing.T) {
	tiles := Partition(100, 70, 32)

	var sawNarrowTile, sawShortTile bool
	for _, tl := range tiles {
		if tl.Width() != 32 {
			sawNarrowTile = true
		}
		if tl.Height() != 32 {
			sawShortTile = true
		}
	}

	assert.True(t, sawNarrowTile)
	assert.True(t, sawShortTile)
}

func TestSchedulerRendersEveryTileExactlyOnce(t *testing.T) {
	tiles := Partition(64, 64, 16)
	scheduler := NewScheduler(4)
	progress := NewProgress(len(tiles))

	var mu sync.Mutex
	seen := make(map[Tile]int)

	scheduler.Run(tiles, func(tl Tile) {
		mu.Lock()
		seen[tl]++
		mu.Unlock()
	}, progress)

	assert.Equal(t, len(tiles), len(seen))
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
	assert.Equal(t, int64(len(tiles)), progress.Completed())
	assert.InDelta(t, 100.0, progress.Percent(), 1e-9)
}

func TestSchedulerWritesOnlyWithinTileBounds(t *testing.T) {
	const width, height = 48, 48
	buf := make([][]int32, height)
	for i := range buf {
		buf[i] = make([]int32, width)
	}

	tiles := Partition(width, height, 16)
	scheduler := NewScheduler(8)

	scheduler.Run(tiles, func(tl Tile) {
		for y := tl.Y0; y < tl.Y1; y++ {
			for x := tl.X0; x < tl.X1; x++ {
				atomic.AddInt32(&buf[y][x], 1)
			}
		}
	}, nil)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			assert.Equal(t, int32(1), buf[y][x])
		}
	}
}

func TestNilProgressIsSafeToUse(t *testing.T) {
	var p *Progress
	assert.Equal(t, int64(0), p.Completed())
	assert.Equal(t, int64(0), p.Total())
	assert.Equal(t, 100.0, p.Percent())
	p.Increment() // must not panic
}

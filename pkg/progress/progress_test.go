package progress

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvorsen-dev/pathtracer/pkg/tile"
)

func newSimBar(t *testing.T) (*Bar, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(40, 10)
	require.NoError(t, screen.Init())
	return NewBarWithScreen(screen), screen
}

func TestDrawFillsProportionally(t *testing.T) {
	bar, screen := newSimBar(t)
	defer bar.Close()

	bar.Draw(50)

	width, height := screen.Size()
	row := height / 2

	var filled, empty int
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, row)
		switch r {
		case '█':
			filled++
		case '░':
			empty++
		}
	}

	assert.True(t, filled > 0)
	assert.True(t, empty > 0)
	assert.Equal(t, filled, empty)
}

func TestDrawAtZeroPercentHasNoFilledCells(t *testing.T) {
	bar, screen := newSimBar(t)
	defer bar.Close()

	bar.Draw(0)

	width, height := screen.Size()
	row := height / 2
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, row)
		assert.NotEqual(t, rune('█'), r)
	}
}

func TestWatchReturnsWhenProgressCompletes(t *testing.T) {
	bar, _ := newSimBar(t)
	defer bar.Close()

	progress := tile.NewProgress(1)
	done := make(chan struct{})

	go func() {
		bar.Watch(progress, time.Millisecond)
		close(done)
	}()

	time.Sleep(2 * time.Millisecond)
	progress.Increment()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after progress completed")
	}
}

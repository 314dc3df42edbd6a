// Package progress renders a terminal progress bar that tracks a
// render's tile completion counter.
package progress

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/halvorsen-dev/pathtracer/pkg/tile"
)

// Bar draws a single-line progress bar to a tcell screen.
type Bar struct {
	screen tcell.Screen
}

// NewBar creates a Bar backed by a real terminal screen.
func NewBar() (*Bar, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &Bar{screen: screen}, nil
}

// NewBarWithScreen wraps an already-initialized screen, letting tests
// supply a tcell.SimulationScreen instead of a real terminal.
func NewBarWithScreen(screen tcell.Screen) *Bar {
	return &Bar{screen: screen}
}

// Close tears down the underlying screen.
func (b *Bar) Close() {
	b.screen.Fini()
}

// Watch polls progress at the given interval, redrawing the bar, until
// progress reaches 100%.
func (b *Bar) Watch(progress *tile.Progress, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		pct := progress.Percent()
		b.Draw(pct)
		if pct >= 100 {
			return
		}
	}
}

// Draw renders the bar at the given completion percentage (0-100) to the
// middle row of the screen.
func (b *Bar) Draw(pct float64) {
	width, height := b.screen.Size()
	b.screen.Clear()

	label := fmt.Sprintf(" %5.1f%%", pct)
	barWidth := width - len(label)
	if barWidth < 1 {
		barWidth = 1
	}
	filled := int(float64(barWidth) * pct / 100)

	row := height / 2
	for x := 0; x < barWidth; x++ {
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		r := '░'
		if x < filled {
			style = tcell.StyleDefault.Foreground(tcell.ColorGreen)
			r = '█'
		}
		b.screen.SetContent(x, row, r, nil, style)
	}

	for i, r := range label {
		b.screen.SetContent(barWidth+i, row, r, nil, tcell.StyleDefault)
	}

	b.screen.Show()
}

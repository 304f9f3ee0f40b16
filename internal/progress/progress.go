// Package progress reports run completion on the terminal.
//
// The reporter is initialized with the total job count before dispatch
// begins and receives one increment per completed job, success and failure
// alike. Increments arrive concurrently from every worker, so the counter is
// atomic and rendering is serialized separately — job accounting never waits
// on a redraw of another worker's tick beyond the draw mutex.
package progress

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	bubbles "github.com/charmbracelet/bubbles/progress"
)

// Reporter receives one Add per completed job and a final Finish once all
// workers have joined. Implementations must tolerate high-frequency,
// concurrent Add calls cheaply.
type Reporter interface {
	Add(delta int)
	Finish()
}

// Nop is the reporter used when the progress bar is disabled. All methods do
// nothing.
type Nop struct{}

// Add implements Reporter.
func (Nop) Add(int) {}

// Finish implements Reporter.
func (Nop) Finish() {}

// barWidth is the rendered width of the bar itself, excluding the
// position/total suffix.
const barWidth = 40

// Bar renders an in-place terminal progress bar. The done counter is atomic;
// a separate mutex serializes redraws so concurrent ticks cannot tear the
// carriage-return rewrite.
type Bar struct {
	total int
	done  atomic.Int64

	mu    sync.Mutex
	model bubbles.Model
	w     io.Writer
}

// NewBar creates a Bar over the given writer, initialized with the total job
// count. The writer should be stderr so the bar never mixes with job output
// on stdout.
func NewBar(total int, w io.Writer) *Bar {
	return &Bar{
		total: total,
		model: bubbles.New(bubbles.WithDefaultGradient(), bubbles.WithWidth(barWidth)),
		w:     w,
	}
}

// Add records delta completed jobs and redraws the bar in place.
func (b *Bar) Add(delta int) {
	done := b.done.Add(int64(delta))
	b.draw(done)
}

// Finish redraws the bar one last time at its final position and terminates
// the line, so subsequent output starts cleanly.
func (b *Bar) Finish() {
	b.draw(b.done.Load())
	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintln(b.w)
}

func (b *Bar) draw(done int64) {
	pct := 1.0
	if b.total > 0 {
		pct = float64(done) / float64(b.total)
	}
	if pct > 1.0 {
		pct = 1.0
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	fmt.Fprintf(b.w, "\r%s %d/%d", b.model.ViewAs(pct), done, b.total)
}

// Done returns the number of completed jobs recorded so far.
func (b *Bar) Done() int {
	return int(b.done.Load())
}

package progress

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBar_ConcurrentAdds verifies that increments from many goroutines are
// all accounted for — the reporter's one hard requirement.
func TestBar_ConcurrentAdds(t *testing.T) {
	var buf strings.Builder
	b := NewBar(800, &buf)

	const workers = 8
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				b.Add(1)
			}
		}()
	}
	wg.Wait()
	b.Finish()

	assert.Equal(t, 800, b.Done())
}

// TestBar_RendersPositionAndTotal verifies the position/total suffix the
// bar appends after the gradient bar.
func TestBar_RendersPositionAndTotal(t *testing.T) {
	var buf strings.Builder
	b := NewBar(4, &buf)

	b.Add(1)
	b.Add(1)

	assert.Contains(t, buf.String(), "2/4")
}

// TestBar_FinishTerminatesLine verifies that Finish ends the in-place
// rewrite with a newline so following output starts on a fresh line.
func TestBar_FinishTerminatesLine(t *testing.T) {
	var buf strings.Builder
	b := NewBar(1, &buf)

	b.Add(1)
	b.Finish()

	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

// TestNop_DoesNothing pins that the disabled reporter is safe to call from
// any number of workers.
func TestNop_DoesNothing(t *testing.T) {
	var n Nop
	n.Add(1)
	n.Finish()
}

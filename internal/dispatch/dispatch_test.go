package dispatch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain guards against goroutine leaks from the concurrency tests below.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestClaim_SequentialOrder verifies that a single caller receives the
// indices 0..total-1 in increasing order, then exhaustion.
func TestClaim_SequentialOrder(t *testing.T) {
	d := New(3)

	for want := 0; want < 3; want++ {
		got, ok := d.Claim()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := d.Claim()
	assert.False(t, ok, "dispatcher should be exhausted after total claims")
}

// TestClaim_StrictUpperBound verifies the end-of-range boundary: the last
// claimable index is total-1, never total. An index equal to the total would
// alias index 0's offset tuple through modular wraparound and re-run it.
func TestClaim_StrictUpperBound(t *testing.T) {
	d := New(1)

	got, ok := d.Claim()
	require.True(t, ok)
	assert.Equal(t, 0, got)

	// Repeated claims after exhaustion must keep returning no-work.
	for i := 0; i < 5; i++ {
		_, ok := d.Claim()
		assert.False(t, ok)
	}
}

// TestClaim_ZeroTotal verifies that an empty index space is exhausted from
// the very first claim.
func TestClaim_ZeroTotal(t *testing.T) {
	d := New(0)

	_, ok := d.Claim()
	assert.False(t, ok)
}

// TestClaim_ConcurrentExhaustivenessAndUniqueness verifies the core
// dispatcher guarantee under real contention: across many goroutines, the
// union of all claimed indices is exactly {0, ..., total-1} with no
// duplicates and no gaps, regardless of scheduling.
func TestClaim_ConcurrentExhaustivenessAndUniqueness(t *testing.T) {
	const (
		total   = 10000
		workers = 32
	)

	d := New(total)

	// Each worker records its own claims locally to avoid synchronizing on
	// anything but the dispatcher itself during the race.
	claimed := make([][]int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for {
				idx, ok := d.Claim()
				if !ok {
					return
				}
				claimed[w] = append(claimed[w], idx)
			}
		}(w)
	}
	wg.Wait()

	seen := make([]bool, total)
	count := 0
	for w := range claimed {
		for _, idx := range claimed[w] {
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, total, "claimed index must stay strictly below the total")
			require.False(t, seen[idx], "index %d was claimed twice", idx)
			seen[idx] = true
			count++
		}
	}
	assert.Equal(t, total, count, "every index must be claimed exactly once")
}

// TestClaim_ConcurrentSingleJob verifies the size = 1 boundary for a worker
// count far greater than the work: exactly one goroutine wins index 0.
func TestClaim_ConcurrentSingleJob(t *testing.T) {
	const workers = 16

	d := New(1)

	var mu sync.Mutex
	var winners []int
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if idx, ok := d.Claim(); ok {
				mu.Lock()
				winners = append(winners, idx)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, winners, 1, "exactly one worker should claim the single job")
	assert.Equal(t, 0, winners[0])
}

// Package dispatch hands out unique job indices to concurrent workers.
//
// The dispatcher is the only mutable shared state tied to correctness in a
// run. It wraps a single counter behind an atomic fetch-and-increment: the
// "is there still work" check and the increment are one indivisible
// operation, so no two workers can ever observe the same index as unclaimed.
package dispatch

import "sync/atomic"

// Dispatcher hands out the linear job indices 0..total-1, each exactly once,
// in strictly increasing claim order. It is safe for concurrent use by any
// number of workers.
//
// Claims are strictly bounded to [0, total): the counter itself may run past
// the total as drained workers race on the final claims, but no index >=
// total is ever returned.
type Dispatcher struct {
	next  atomic.Int64
	total int64
}

// New creates a Dispatcher over the index range [0, total). A total of zero
// yields a dispatcher that is exhausted from the start.
func New(total int) *Dispatcher {
	return &Dispatcher{total: int64(total)}
}

// Claim atomically reserves the next job index. It returns the claimed index
// and true, or 0 and false once the index space is exhausted.
//
// The fetch-and-increment is a single atomic primitive; there is no window
// between reading the counter and advancing it. Failed jobs are never
// re-queued — a claimed index is spent whether or not its command succeeds.
func (d *Dispatcher) Claim() (int, bool) {
	n := d.next.Add(1) - 1
	if n >= d.total {
		return 0, false
	}
	return int(n), true
}

// Total returns the size of the index space this dispatcher was created for.
func (d *Dispatcher) Total() int {
	return int(d.total)
}

package space

import "fmt"

// Space describes the combination space spanned by the wordlist lengths, in
// declaration order. It is immutable after New and safe to share across
// workers.
type Space struct {
	sizes []int
	total int
}

// New builds a Space from the wordlist lengths in declaration order.
// Every size must be at least 1; a zero-length dimension would make the
// space empty and every index unreachable.
//
// Zero dimensions is allowed: the empty product is 1, so a run with no
// wordlists (an index token only, or a pure literal command) is a single
// job at index 0.
func New(sizes []int) (Space, error) {
	total := 1
	for k, size := range sizes {
		if size < 1 {
			return Space{}, fmt.Errorf("wordlist %d has length %d, need at least 1", k, size)
		}
		total *= size
	}

	// Copy to keep the Space immutable even if the caller mutates its slice.
	owned := make([]int, len(sizes))
	copy(owned, sizes)

	return Space{sizes: owned, total: total}, nil
}

// Total returns the number of combinations: the product of all wordlist
// lengths. Valid linear indices are [0, Total()).
func (s Space) Total() int {
	return s.total
}

// Dimensions returns the number of wordlists spanning the space.
func (s Space) Dimensions() int {
	return len(s.sizes)
}

// Offsets decomposes a linear index into per-wordlist offsets:
//
//	offsets[k] = (i / (sizes[0] * ... * sizes[k-1])) mod sizes[k]
//
// i.e. repeated divmod across the wordlists in declaration order, so the
// first-declared wordlist varies fastest as i increases. The mapping is a
// bijection over [0, Total()).
//
// The dispatcher guarantees i is within [0, Total()) during a run; indices
// outside that range would alias an in-range tuple through modular
// wraparound, so Offsets panics on them to surface the bug instead.
func (s Space) Offsets(i int) []int {
	if i < 0 || i >= s.total {
		panic(fmt.Sprintf("space: index %d outside [0, %d)", i, s.total))
	}

	offsets := make([]int, len(s.sizes))
	for k, size := range s.sizes {
		offsets[k] = i % size
		i /= size
	}
	return offsets
}

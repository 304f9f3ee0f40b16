// Package space models the combination space of a run: the cartesian product
// of all wordlists, addressed by a single linear job index.
//
// The mapping between a linear index and a tuple of per-wordlist offsets is a
// mixed-radix decomposition, treating each wordlist's length as that
// dimension's numeric base. The first-declared wordlist varies fastest; this
// ordering is an observable contract (it determines what `--show K` prints)
// and is covered by tests.
package space

// Package runner drives a run: a fixed pool of workers claiming job indices
// from the dispatcher, rendering each into a concrete command and executing
// it, until the combination space is exhausted.
//
// The pool is created once and joined once — no resizing, no work stealing,
// no re-queueing. The compiled template, the wordlists and the combination
// space are shared read-only across all workers; the dispatcher's claim
// counter is the only correctness-relevant shared mutable state.
package runner

import (
	"golang.org/x/sync/errgroup"

	"github.com/mmr-tortoise/fanout/internal/dispatch"
	"github.com/mmr-tortoise/fanout/internal/model"
	"github.com/mmr-tortoise/fanout/internal/progress"
	"github.com/mmr-tortoise/fanout/internal/space"
	"github.com/mmr-tortoise/fanout/internal/template"
)

// Executor runs one rendered command. Satisfied by *shell.Executor; the
// interface exists so runner tests can record executions without spawning
// processes.
type Executor interface {
	Execute(command string, jobIndex int)
}

// Runner owns everything a run needs. All fields are set before Run and
// never mutated afterwards.
type Runner struct {
	// Template is the compiled command template, shared by all workers.
	Template template.Template

	// Wordlists are the loaded wordlists in declaration order.
	Wordlists []model.Wordlist

	// Space is the combination space spanned by the wordlist lengths.
	Space space.Space

	// Workers is the fixed pool size. Values below 1 are treated as 1.
	Workers int

	// Executor runs each rendered command.
	Executor Executor

	// Progress receives one tick per completed job. Use progress.Nop{}
	// when the bar is disabled.
	Progress progress.Reporter
}

// Run executes every job in the combination space and blocks until all
// workers have drained and joined.
//
// There is no cancellation and no per-job deadline: once started, the run
// claims and executes indices until the space is exhausted. Individual job
// failures are handled inside the executor and never surface here, so Run
// always returns nil; the error signature mirrors the errgroup join.
func (r *Runner) Run() error {
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	d := dispatch.New(r.Space.Total())

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				idx, ok := d.Claim()
				if !ok {
					return nil
				}

				command := r.Template.Render(r.Wordlists, r.Space.Offsets(idx), idx)
				r.Executor.Execute(command, idx)
				r.Progress.Add(1)
			}
		})
	}

	return g.Wait()
}

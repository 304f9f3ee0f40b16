package shell

import (
	"fmt"
	"io"
	"sync"

	"github.com/mmr-tortoise/fanout/internal/ux"
)

// Sink is the pair of output channels that workers write job results to.
// A mutex serializes writes so that one job's output is never interleaved
// mid-line with another's; ordering across jobs is not guaranteed and
// callers must not rely on it.
type Sink struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
}

// NewSink creates a Sink over the given stdout- and stderr-like writers.
func NewSink(out, err io.Writer) *Sink {
	return &Sink{out: out, err: err}
}

// JobOutput emits a successful job's captured stdout verbatim on the output
// channel, as one atomic write.
func (s *Sink) JobOutput(text string) {
	if text == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprint(s.out, text)
}

// JobError emits a failed job's captured stderr on the error channel,
// prefixed with the job's index so failures remain traceable when many jobs
// run concurrently.
func (s *Sink) JobError(jobIndex int, text string) {
	if text == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.err, "%s %s", ux.Render(ux.Styles.Muted, fmt.Sprintf("[job %d]", jobIndex)), ux.Render(ux.Styles.Error, text))
}

// Warnf emits a non-fatal warning on the error channel. Warnings are never
// suppressed: unlike job output, they indicate the tool itself could not do
// its work (for example the shell failed to launch).
func (s *Sink) Warnf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.err, "%s %s\n", ux.WarnLabel(), fmt.Sprintf(format, args...))
}

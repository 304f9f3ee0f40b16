package shell

import (
	"errors"
	"os/exec"
	"strings"
)

// defaultShell is the shell every rendered command runs through, as
// `sh -c <command>`. Using the POSIX shell keeps pipes, redirections and
// quoting inside templates working the way users wrote them.
const defaultShell = "sh"

// Executor runs rendered commands as subprocesses and classifies the
// outcome. It is stateless apart from its sink and flags, and safe for
// concurrent use by all workers.
type Executor struct {
	sink     *Sink
	suppress bool
}

// NewExecutor creates an Executor writing to the given sink. When suppress
// is true, per-job stdout and stderr are dropped; spawn-failure warnings are
// still emitted.
func NewExecutor(sink *Sink, suppress bool) *Executor {
	return &Executor{sink: sink, suppress: suppress}
}

// Execute runs one rendered command through the shell and reports the
// outcome on the sink. No outcome is fatal: whether the command succeeds,
// exits non-zero, or cannot be launched at all, the worker is expected to
// move on to its next claim.
func (e *Executor) Execute(command string, jobIndex int) {
	// #nosec G204 — running caller-supplied commands is this tool's purpose
	cmd := exec.Command(defaultShell, "-c", command)

	// Capture stdout and stderr separately: success emits stdout verbatim,
	// failure emits stderr tagged with the job index.
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		if !e.suppress {
			e.sink.JobOutput(stdout.String())
		}
		return
	}

	// A non-zero exit carries an *exec.ExitError; anything else means the
	// process never started (shell missing, fork failure, ...).
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if !e.suppress {
			e.sink.JobError(jobIndex, stderr.String())
		}
		return
	}

	e.sink.Warnf("failed to execute `%s`: %v", command, err)
}

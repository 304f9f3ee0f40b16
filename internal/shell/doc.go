// Package shell executes rendered commands through the system shell and
// routes their output to the run's output and error channels.
//
// Every execution has one of three outcomes, none of which is fatal to the
// batch:
//
//   - exit status 0: captured stdout is emitted verbatim
//   - non-zero exit: captured stderr is emitted tagged with the job index
//   - the shell could not be launched: a warning naming the command and the
//     underlying cause is emitted
//
// The Sink serializes writes so each job's output appears as one atomic
// unit; interleaving across jobs is otherwise unspecified.
package shell

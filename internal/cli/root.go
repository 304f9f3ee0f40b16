// Package cli implements the cobra-based command-line surface for fanout.
//
// fanout is a single-verb tool, so the root command does the work itself:
// it assembles the run configuration from flags and the optional jobfile,
// performs all pre-run validation, and either prints one rendered command
// (--show) or executes the whole batch across the worker pool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/fanout/internal/model"
	"github.com/mmr-tortoise/fanout/internal/ux"
)

// verbose enables detailed trace output on stderr for debugging.
var verbose bool

// Version, Commit and Date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "fanout [flags] <command>",
		Short: "Run a templated shell command across wordlist combinations",
		Long: `fanout substitutes wordlist values into a command template, enumerates every
combination, and executes the resulting commands concurrently across a fixed
worker pool.

Each wordlist is registered as 'path:identifier'; every occurrence of the
identifier in the command is replaced per job. With two wordlists the command
runs once for every pair of values (a cartesian product), the first-declared
wordlist varying fastest. An optional --index-token identifier is replaced
with the job's own index.

A failing command never stops the batch: its stderr is reported tagged with
the job index and the run carries on. The process exits non-zero only for
configuration or wordlist errors.

Examples:
  fanout -f hosts.txt:HOST 'ping -c1 HOST'
  fanout -f hosts.txt:HOST -f ports.txt:PORT -t 50 'curl http://HOST:PORT/'
  fanout -f words.txt:W --index-token N 'mv W W-N.bak'
  fanout -f words.txt:W --show 3 'echo W'
  fanout --jobfile run.yaml`,

		// The command template is the single positional argument. It may
		// also come from a jobfile, so zero arguments is accepted here and
		// checked during config assembly.
		Args: cobra.MaximumNArgs(1),

		// SilenceUsage prevents cobra from printing usage on every error.
		// SilenceErrors prevents cobra from printing errors automatically;
		// Execute formats them itself.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, flags)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.files, "file", "f", nil, "Wordlist as 'path:identifier', repeatable; order is declaration order")
	cmd.Flags().IntVarP(&flags.threads, "threads", "t", defaultThreads, "Number of worker threads")
	cmd.Flags().IntVarP(&flags.show, "show", "s", 0, "Render and print the command for index N, then exit without executing")
	cmd.Flags().BoolVar(&flags.noOutput, "no-output", false, "Don't show command stdout or stderr")
	cmd.Flags().BoolVarP(&flags.progressBar, "progress", "p", false, "Enable the progress bar")
	cmd.Flags().StringVar(&flags.indexToken, "index-token", "", "Identifier replaced with the job's own index")
	cmd.Flags().StringVar(&flags.jobfilePath, "jobfile", "", "Read run configuration from a YAML or JSONC file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by the command and translates them into
// appropriate OS exit codes. CLIError types carry their own exit codes;
// other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		printError(err)

		if cliErr, ok := err.(*model.CLIError); ok {
			os.Exit(int(cliErr.Code))
		}
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs a fatal error on stderr with the styled "error:" label.
func printError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", ux.ErrorLabel(), err)
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

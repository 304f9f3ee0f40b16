// run.go assembles the run configuration from flags and the optional
// jobfile, validates it, and drives the batch.
//
// Orchestration steps:
//  1. Merge jobfile values under explicitly-set flags
//  2. Validate identifiers against the command template
//  3. Load wordlists (fatal on read failure, before any job runs)
//  4. Build the combination space and compile the template
//  5. Either print one rendered command (--show) or run the worker pool
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/fanout/internal/jobfile"
	"github.com/mmr-tortoise/fanout/internal/model"
	"github.com/mmr-tortoise/fanout/internal/progress"
	"github.com/mmr-tortoise/fanout/internal/runner"
	"github.com/mmr-tortoise/fanout/internal/shell"
	"github.com/mmr-tortoise/fanout/internal/space"
	"github.com/mmr-tortoise/fanout/internal/template"
	"github.com/mmr-tortoise/fanout/internal/ux"
	"github.com/mmr-tortoise/fanout/internal/wordlist"
)

// defaultThreads is the worker pool size when neither the --threads flag nor
// the jobfile specifies one.
const defaultThreads = 10

// rootFlags holds the flag values bound in NewRootCommand.
type rootFlags struct {
	files       []string // --file: 'path:identifier' specs in declaration order
	threads     int      // --threads: worker pool size
	show        int      // --show: render-only index
	noOutput    bool     // --no-output: suppress per-job stdout/stderr
	progressBar bool     // --progress: enable the progress bar
	indexToken  string   // --index-token: identifier replaced with the job index
	jobfilePath string   // --jobfile: declarative run configuration file
}

// runConfig is the fully merged run configuration: jobfile values overlaid
// by explicitly-set flags and the positional command argument.
type runConfig struct {
	command    string
	specs      []wordlist.FileSpec
	threads    int
	show       int
	showSet    bool
	noOutput   bool
	progress   bool
	indexToken string
}

// buildRunConfig merges the jobfile (if any) under the command line.
// Explicitly-set flags and the positional command argument always win;
// the jobfile only fills in what the invocation left unsaid. changed
// reports whether a flag was set explicitly.
func buildRunConfig(args []string, flags *rootFlags, changed func(name string) bool) (*runConfig, error) {
	cfg := &runConfig{
		threads:    flags.threads,
		show:       flags.show,
		showSet:    changed("show"),
		noOutput:   flags.noOutput,
		progress:   flags.progressBar,
		indexToken: flags.indexToken,
	}

	if len(args) == 1 {
		cfg.command = args[0]
	}
	for _, arg := range flags.files {
		spec, err := wordlist.ParseFileSpec(arg)
		if err != nil {
			return nil, err
		}
		cfg.specs = append(cfg.specs, spec)
	}

	if flags.jobfilePath == "" {
		return cfg, nil
	}

	jf, err := jobfile.Load(flags.jobfilePath)
	if err != nil {
		return nil, err
	}
	VerboseLog("Loaded jobfile: %s", flags.jobfilePath)

	if cfg.command == "" {
		cfg.command = jf.Command
	}
	if len(cfg.specs) == 0 {
		for _, ref := range jf.Wordlists {
			cfg.specs = append(cfg.specs, wordlist.FileSpec{Path: ref.Path, Identifier: ref.Identifier})
		}
	}
	if !changed("threads") && jf.Threads > 0 {
		cfg.threads = jf.Threads
	}
	if !changed("index-token") && jf.IndexToken != "" {
		cfg.indexToken = jf.IndexToken
	}
	if !changed("no-output") {
		cfg.noOutput = jf.NoOutput
	}
	if !changed("progress") {
		cfg.progress = jf.Progress
	}

	return cfg, nil
}

// validateConfig performs all pre-run validation that does not require file
// access: the command is present, every identifier is well formed, pairwise
// distinct, distinct from the index token, and occurs as a literal substring
// of the command. Violations abort the run before any wordlist is read.
func validateConfig(cfg *runConfig) error {
	if cfg.command == "" {
		return model.NewCLIError(model.ExitConfigError, "missing command template (pass it as an argument or in a jobfile)")
	}

	if cfg.indexToken != "" {
		if err := model.ValidateIdentifier(cfg.indexToken); err != nil {
			return model.WrapCLIError(model.ExitConfigError, "invalid index token", err)
		}
		if !strings.Contains(cfg.command, cfg.indexToken) {
			return model.NewCLIError(
				model.ExitConfigError,
				fmt.Sprintf("index token %q is not in command", cfg.indexToken),
			)
		}
	}

	seen := make(map[string]bool, len(cfg.specs))
	for _, spec := range cfg.specs {
		if err := model.ValidateIdentifier(spec.Identifier); err != nil {
			return model.WrapCLIError(model.ExitConfigError, "invalid wordlist identifier", err)
		}
		if spec.Identifier == cfg.indexToken {
			return model.NewCLIError(
				model.ExitConfigError,
				fmt.Sprintf("identifier %q collides with the index token", spec.Identifier),
			)
		}
		if seen[spec.Identifier] {
			return model.NewCLIError(
				model.ExitConfigError,
				fmt.Sprintf("wordlist identifier %q already exists", spec.Identifier),
			)
		}
		seen[spec.Identifier] = true

		if !strings.Contains(cfg.command, spec.Identifier) {
			return model.NewCLIError(
				model.ExitConfigError,
				fmt.Sprintf("wordlist identifier %q is not in command", spec.Identifier),
			)
		}
	}

	return nil
}

// loadWordlists reads every wordlist in declaration order. A file that
// cannot be read, or that contains no values, aborts the run before any job
// executes.
func loadWordlists(specs []wordlist.FileSpec) ([]model.Wordlist, error) {
	wordlists := make([]model.Wordlist, 0, len(specs))
	for _, spec := range specs {
		values, err := wordlist.Load(spec.Path)
		if err != nil {
			return nil, err
		}
		if len(values) == 0 {
			return nil, model.NewCLIError(
				model.ExitWordlistError,
				fmt.Sprintf("wordlist %q (%s) is empty", spec.Identifier, spec.Path),
			)
		}
		VerboseLog("Loaded wordlist %q: %d values from %s", spec.Identifier, len(values), spec.Path)
		wordlists = append(wordlists, model.Wordlist{Identifier: spec.Identifier, Values: values})
	}
	return wordlists, nil
}

// runRoot is the main orchestration function behind the root command.
func runRoot(cmd *cobra.Command, args []string, flags *rootFlags) error {
	cfg, err := buildRunConfig(args, flags, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}

	wordlists, err := loadWordlists(cfg.specs)
	if err != nil {
		return err
	}

	sizes := make([]int, len(wordlists))
	identifiers := make([]string, len(wordlists))
	for k, w := range wordlists {
		sizes[k] = w.Len()
		identifiers[k] = w.Identifier
	}

	s, err := space.New(sizes)
	if err != nil {
		return model.WrapCLIError(model.ExitConfigError, "invalid combination space", err)
	}
	VerboseLog("Combination space: %d jobs across %d wordlists", s.Total(), s.Dimensions())

	tpl := template.Compile(cfg.command, cfg.indexToken, identifiers)

	// --show renders one command and terminates with no side effects
	// beyond the print: no workers, no execution, no progress.
	if cfg.showSet {
		if cfg.show < 0 || cfg.show >= s.Total() {
			return model.NewCLIError(
				model.ExitConfigError,
				fmt.Sprintf("show index %d out of range, total combination count is %d", cfg.show, s.Total()),
			)
		}
		fmt.Fprintln(cmd.OutOrStdout(), tpl.Render(wordlists, s.Offsets(cfg.show), cfg.show))
		return nil
	}

	var reporter progress.Reporter = progress.Nop{}
	if cfg.progress && ux.StderrIsTerminal() {
		reporter = progress.NewBar(s.Total(), os.Stderr)
	}

	r := &runner.Runner{
		Template:  tpl,
		Wordlists: wordlists,
		Space:     s,
		Workers:   cfg.threads,
		Executor:  shell.NewExecutor(shell.NewSink(os.Stdout, os.Stderr), cfg.noOutput),
		Progress:  reporter,
	}

	VerboseLog("Starting %d workers", cfg.threads)
	if err := r.Run(); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "run failed", err)
	}
	reporter.Finish()

	// Individual job failures were reported inline and are deliberately
	// not reflected in the exit status: the run completed.
	return nil
}

// Package jobfile loads the optional declarative run configuration.
//
// A jobfile carries the same settings as the command line — the command
// template, the ordered wordlists, thread count and output switches — in a
// file that can be versioned alongside the scripts it drives. Two formats
// are supported, selected by file extension: YAML (.yaml/.yml) and JSONC
// (.json/.jsonc), the latter because hand-maintained JSON config files
// almost always grow comments.
//
// Explicitly-set command-line flags always override jobfile values; the
// jobfile only fills in what the invocation left unsaid.
package jobfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/fanout/internal/model"
)

// WordlistRef names one wordlist in a jobfile: the identifier used in the
// command and the file to load values from. Declaration order in the file is
// the wordlist declaration order of the run.
type WordlistRef struct {
	Identifier string `yaml:"identifier" json:"identifier"`
	Path       string `yaml:"path" json:"path"`
}

// Jobfile is the declarative form of a run. Zero values mean "not set":
// the CLI layer merges these under its own flags, so a jobfile may specify
// as little as the command alone.
type Jobfile struct {
	// Command is the raw command template.
	Command string `yaml:"command" json:"command"`

	// Wordlists lists the wordlists in declaration order.
	Wordlists []WordlistRef `yaml:"wordlists" json:"wordlists"`

	// Threads is the worker pool size. 0 means unset.
	Threads int `yaml:"threads" json:"threads"`

	// IndexToken is the identifier substituted with the job's own index.
	IndexToken string `yaml:"indexToken" json:"indexToken"`

	// NoOutput suppresses per-job stdout/stderr when true.
	NoOutput bool `yaml:"noOutput" json:"noOutput"`

	// Progress enables the progress bar when true.
	Progress bool `yaml:"progress" json:"progress"`
}

// Load reads and parses a jobfile, choosing the parser by extension.
func Load(path string) (*Jobfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitConfigError,
			fmt.Sprintf("could not read jobfile %q", path),
			err,
		)
	}

	var jf Jobfile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &jf); err != nil {
			return nil, model.WrapCLIError(
				model.ExitConfigError,
				fmt.Sprintf("could not parse jobfile %q", path),
				err,
			)
		}
	case ".json", ".jsonc":
		// Strip // and /* */ comments and trailing commas, then parse with
		// the standard library. Unknown fields are silently ignored.
		if err := json.Unmarshal(jsonc.ToJSON(data), &jf); err != nil {
			return nil, model.WrapCLIError(
				model.ExitConfigError,
				fmt.Sprintf("could not parse jobfile %q", path),
				err,
			)
		}
	default:
		return nil, model.NewCLIError(
			model.ExitConfigError,
			fmt.Sprintf("unsupported jobfile extension %q (want .yaml, .yml, .json or .jsonc)", ext),
		)
	}

	for _, ref := range jf.Wordlists {
		if ref.Identifier == "" || ref.Path == "" {
			return nil, model.NewCLIError(
				model.ExitConfigError,
				fmt.Sprintf("jobfile %q: every wordlist needs both an identifier and a path", path),
			)
		}
	}

	return &jf, nil
}

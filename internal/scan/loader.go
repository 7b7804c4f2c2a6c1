package scan

import (
	"fmt"
	"os"
	"os/exec"
)

// Loader obtains the scannable text of one file. Most files are read
// directly; a file whose identifiers are produced by macros is read in its
// preprocessor-expanded form instead.
type Loader interface {
	Load(path string) ([]byte, error)
}

// FileLoader reads the raw file contents.
type FileLoader struct{}

// Load returns the bytes of the file at path.
func (FileLoader) Load(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ExpandLoader runs a C-preprocessor-compatible command against the file and
// returns its stdout. The subprocess is synchronous and released as soon as
// the output is captured.
type ExpandLoader struct {
	Command string // preprocessor executable, e.g. "g++"
	Flag    string // "preprocess only, write to stdout" flag, e.g. "-E"
}

// NewExpandLoader returns an ExpandLoader invoking command with the
// conventional -E flag.
func NewExpandLoader(command string) ExpandLoader {
	return ExpandLoader{Command: command, Flag: "-E"}
}

// Load expands the file at path and returns the preprocessor output. Any
// invocation failure is returned to the caller; swallowing it would turn
// macro-generated identifiers into false "unused" findings.
func (e ExpandLoader) Load(path string) ([]byte, error) {
	out, err := exec.Command(e.Command, e.Flag, path).Output()
	if err != nil {
		return nil, fmt.Errorf("expand %s with %s: %w", path, e.Command, err)
	}
	return out, nil
}

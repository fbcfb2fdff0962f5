// Package doctor gathers the state of the Python toolchain and the virtual
// environment for status reporting. All gathering is best-effort: individual
// probe failures produce empty fields, never errors.
package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/hpkotak/venvctl/internal/platform"
	"github.com/hpkotak/venvctl/internal/python"
	"github.com/hpkotak/venvctl/internal/venv"
)

const probeTimeout = 2 * time.Second

// InterpreterStatus reports one candidate invocation name.
type InterpreterStatus struct {
	Name    string
	Path    string // empty when not on PATH
	Version string // empty when the probe failed
}

// VenvStatus reports the environment directory.
type VenvStatus struct {
	Dir     string
	Exists  bool
	Version string
	Home    string
	Prompt  string
}

// Snapshot holds the gathered state.
type Snapshot struct {
	OS           string
	Arch         string
	Shell        string
	CWD          string
	Interpreters []InterpreterStatus
	Venv         VenvStatus
}

// Package-level function variables for testability.
var (
	lookPath  = exec.LookPath
	versionFn = python.Version
)

// Gather collects the snapshot for the environment at dir, probing the
// given interpreter names (empty means the per-OS defaults).
func Gather(dir string, names []string) Snapshot {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	if len(names) == 0 {
		names = python.Candidates()
	}

	s := Snapshot{
		OS:    platform.OS(),
		Arch:  runtime.GOARCH,
		Shell: platform.Shell(),
	}
	s.CWD, _ = os.Getwd()

	for _, name := range names {
		st := InterpreterStatus{Name: name}
		if path, err := lookPath(name); err == nil {
			st.Path = path
			if v, err := versionFn(ctx, path); err == nil {
				st.Version = v
			}
		}
		s.Interpreters = append(s.Interpreters, st)
	}

	s.Venv = VenvStatus{Dir: dir, Exists: venv.Exists(dir)}
	if info, err := venv.Read(dir); err == nil {
		s.Venv.Version = info.Version
		s.Venv.Home = info.Home
		s.Venv.Prompt = info.Prompt
	}

	return s
}

// Format renders the snapshot for terminal display.
func (s Snapshot) Format() string {
	var b strings.Builder

	fmt.Fprintf(&b, "OS: %s (%s)\n", s.OS, s.Arch)
	fmt.Fprintf(&b, "Shell: %s\n", s.Shell)
	if s.CWD != "" {
		fmt.Fprintf(&b, "Working directory: %s\n", s.CWD)
	}

	fmt.Fprintf(&b, "Interpreters:\n")
	for _, st := range s.Interpreters {
		switch {
		case st.Path == "":
			fmt.Fprintf(&b, "  [!!] %s: not found\n", st.Name)
		case st.Version == "":
			fmt.Fprintf(&b, "  [ok] %s (%s)\n", st.Name, st.Path)
		default:
			fmt.Fprintf(&b, "  [ok] %s: %s (%s)\n", st.Name, st.Version, st.Path)
		}
	}

	fmt.Fprintf(&b, "Virtual environment: %s\n", s.Venv.Dir)
	if !s.Venv.Exists {
		fmt.Fprintf(&b, "  [!!] not provisioned (run 'venvctl provision')\n")
		return b.String()
	}

	line := "  [ok] provisioned"
	if s.Venv.Version != "" {
		line += ", Python " + s.Venv.Version
	}
	if s.Venv.Prompt != "" {
		line += fmt.Sprintf(", prompt %q", s.Venv.Prompt)
	}
	b.WriteString(line + "\n")
	if s.Venv.Home != "" {
		fmt.Fprintf(&b, "  base interpreter: %s\n", s.Venv.Home)
	}

	return b.String()
}

// Package python locates CPython interpreters on the execution path.
// Discovery walks an ordered candidate list: a name missing from PATH falls
// through to the next one, so "python3 else python" degrades the way the
// shell's || chain would.
package python

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNotFound means no candidate invocation name resolved on PATH.
var ErrNotFound = errors.New("no python interpreter found")

// Interpreter is a resolved interpreter invocation.
type Interpreter struct {
	Name string // invocation name that resolved (e.g., "python3")
	Path string // absolute path reported by the lookup
}

// Package-level function variables for testability.
var (
	lookPath      = exec.LookPath
	execCommandFn = defaultExecCommand
)

func defaultExecCommand(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	return string(out), err
}

// Candidates returns the default invocation names in preference order.
// Windows installs typically expose "python" (and the "py" launcher) while
// Unix systems ship "python3" first.
func Candidates() []string {
	if runtime.GOOS == "windows" {
		return []string{"python", "python3", "py"}
	}
	return []string{"python3", "python"}
}

// Find returns the first name from names that resolves on PATH. An empty
// list means Candidates(). Only lookup failures fall through; Find never
// executes anything, so a broken interpreter is the caller's problem.
func Find(names []string) (Interpreter, error) {
	if len(names) == 0 {
		names = Candidates()
	}
	for _, name := range names {
		path, err := lookPath(name)
		if err != nil {
			continue
		}
		return Interpreter{Name: name, Path: path}, nil
	}
	return Interpreter{}, ErrNotFound
}

// Version probes the interpreter for its version string (e.g. "Python 3.12.1").
func Version(ctx context.Context, path string) (string, error) {
	out, err := execCommandFn(ctx, path, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

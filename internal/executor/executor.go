// Package executor handles user confirmation and child process execution.
// Confirm uses injectable io.Reader/io.Writer for testability.
package executor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/hpkotak/venvctl/internal/platform"
)

// Confirm prompts the user for yes/no confirmation.
// defaultYes controls what happens when the user presses Enter without input.
// in and out are injectable for testing.
func Confirm(prompt string, defaultYes bool, in io.Reader, out io.Writer) bool {
	hint := "[Y/n]"
	if !defaultYes {
		hint = "[y/N]"
	}
	_, _ = fmt.Fprintf(out, "%s %s: ", prompt, hint)

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}

	input := strings.TrimSpace(strings.ToLower(scanner.Text()))

	switch input {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return false
	}
}

// RunQuiet executes a shell command with all output discarded. Used for
// scoped attempts whose outcome matters but whose output does not.
func RunQuiet(command string) error {
	shell := platform.Shell()
	return exec.Command(shell, "-c", command).Run()
}

// RunArgv executes argv directly (no shell interpolation) with the given
// replacement environment, inheriting stdin/stdout/stderr. A nil env keeps
// the parent environment. Non-zero exit codes are returned as data, not as
// Go errors; only failures to start the process are errors.
func RunArgv(argv []string, env []string) (int, error) {
	if len(argv) == 0 {
		return 0, fmt.Errorf("empty command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("executing %s: %w", argv[0], err)
	}
	return 0, nil
}

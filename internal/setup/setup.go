// Package setup handles first-run onboarding: detecting interpreters and
// writing the initial config. The wizard never installs anything; a missing
// interpreter is reported, not fixed.
package setup

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/hpkotak/venvctl/internal/config"
	"github.com/hpkotak/venvctl/internal/platform"
	"github.com/hpkotak/venvctl/internal/python"
	"golang.org/x/term"
)

const probeTimeout = 2 * time.Second

// Package-level function variables for testability.
var (
	lookPath   = exec.LookPath
	versionFn  = python.Version
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// detected is one interpreter found during the scan.
type detected struct {
	name    string
	path    string
	version string
}

// Run executes the interactive setup flow.
// in and out are injectable for testability.
func Run(in io.Reader, out io.Writer) error {
	if !isTerminal() {
		return fmt.Errorf("setup is interactive and needs a terminal")
	}

	// One scanner for the whole flow: a scanner buffers past the line it
	// returns, so handing the reader to a second scanner would lose input.
	sc := bufio.NewScanner(in)

	_, _ = fmt.Fprintln(out, "venvctl Setup")
	_, _ = fmt.Fprintln(out, "=============")
	_, _ = fmt.Fprintf(out, "Platform: %s\n\n", platform.OS())

	found := scanInterpreters()

	cfg := config.Default()

	name, err := selectInterpreter(found, sc, out)
	if err != nil {
		return err
	}
	if name != "" {
		cfg.Interpreters = orderCandidates(name)
	}

	dir, err := askVenvDir(sc, out)
	if err != nil {
		return err
	}
	cfg.Venv.Dir = dir

	_, _ = fmt.Fprint(out, "Shell prompt name for the environment (optional): ")
	cfg.Venv.Prompt = readLine(sc)

	if err := cfg.Validate(); err != nil {
		return err
	}

	path := config.Path()
	if askYesNo(sc, out, "Save to the project file "+config.LocalPath()+" instead of the home config?", false) {
		path = config.LocalPath()
		err = config.SaveLocal(cfg)
	} else {
		err = config.Save(cfg)
	}
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	_, _ = fmt.Fprintf(out, "\n[ok] Config saved to %s\n", path)
	_, _ = fmt.Fprintln(out, "Ready! Try: venvctl provision")
	return nil
}

// scanInterpreters probes the default candidate names on PATH.
func scanInterpreters() []detected {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	var found []detected
	for _, name := range python.Candidates() {
		path, err := lookPath(name)
		if err != nil {
			continue
		}
		d := detected{name: name, path: path}
		if v, err := versionFn(ctx, path); err == nil {
			d.version = v
		}
		found = append(found, d)
	}
	return found
}

// selectInterpreter shows the scan results and asks for a default. The
// empty return means no interpreter was found and the per-OS defaults stay
// in effect.
func selectInterpreter(found []detected, sc *bufio.Scanner, out io.Writer) (string, error) {
	if len(found) == 0 {
		_, _ = fmt.Fprintln(out, "[!!] No Python interpreter found on PATH.")
		_, _ = fmt.Fprintln(out, "     Install one from https://python.org and re-run setup,")
		_, _ = fmt.Fprintln(out, "     or continue now; provisioning will fail until then.")
		_, _ = fmt.Fprintln(out)
		return "", nil
	}

	_, _ = fmt.Fprintln(out, "Detected interpreters:")
	for i, d := range found {
		if d.version != "" {
			_, _ = fmt.Fprintf(out, "  %d. %s: %s (%s)\n", i+1, d.name, d.version, d.path)
		} else {
			_, _ = fmt.Fprintf(out, "  %d. %s (%s)\n", i+1, d.name, d.path)
		}
	}
	_, _ = fmt.Fprint(out, "\nSelect default interpreter [1]: ")

	input := readLine(sc)

	idx := 0
	if input != "" {
		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(found) {
			return "", fmt.Errorf("invalid selection: %s", input)
		}
		idx = n - 1
	}

	selected := found[idx].name
	_, _ = fmt.Fprintf(out, "[ok] Selected: %s\n\n", selected)
	return selected, nil
}

// orderCandidates puts name first and keeps the remaining defaults as
// fallbacks in their usual order.
func orderCandidates(name string) []string {
	ordered := []string{name}
	for _, c := range python.Candidates() {
		if c != name {
			ordered = append(ordered, c)
		}
	}
	return ordered
}

func askVenvDir(sc *bufio.Scanner, out io.Writer) (string, error) {
	_, _ = fmt.Fprintf(out, "Environment directory [%s]: ", config.DefaultVenvDir)
	dir := readLine(sc)
	if dir == "" {
		dir = config.DefaultVenvDir
	}
	if dir == "." || dir == ".." {
		return "", fmt.Errorf("%q is not a usable environment directory", dir)
	}
	return dir, nil
}

func askYesNo(sc *bufio.Scanner, out io.Writer, prompt string, defaultYes bool) bool {
	hint := "[Y/n]"
	if !defaultYes {
		hint = "[y/N]"
	}
	_, _ = fmt.Fprintf(out, "%s %s: ", prompt, hint)

	switch strings.ToLower(readLine(sc)) {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	default:
		return false
	}
}

// readLine reads the next line, trimming whitespace.
func readLine(sc *bufio.Scanner) string {
	sc.Scan()
	return strings.TrimSpace(sc.Text())
}

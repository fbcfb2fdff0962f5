package python

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// mockLookPath returns a lookup function that resolves only the given names.
func mockLookPath(available map[string]string) func(string) (string, error) {
	return func(name string) (string, error) {
		if path, ok := available[name]; ok {
			return path, nil
		}
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
}

func saveFuncVars(t *testing.T) func() {
	t.Helper()
	origLookPath := lookPath
	origExec := execCommandFn
	return func() {
		lookPath = origLookPath
		execCommandFn = origExec
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name      string
		names     []string
		available map[string]string
		wantName  string
		wantPath  string
		wantErr   error
	}{
		{
			name:      "first candidate wins",
			names:     []string{"python3", "python"},
			available: map[string]string{"python3": "/usr/bin/python3", "python": "/usr/bin/python"},
			wantName:  "python3",
			wantPath:  "/usr/bin/python3",
		},
		{
			name:      "missing primary falls through to fallback",
			names:     []string{"python3", "python"},
			available: map[string]string{"python": "/usr/local/bin/python"},
			wantName:  "python",
			wantPath:  "/usr/local/bin/python",
		},
		{
			name:      "no candidate available",
			names:     []string{"python3", "python"},
			available: map[string]string{},
			wantErr:   ErrNotFound,
		},
		{
			name:      "order respected over availability",
			names:     []string{"python", "python3"},
			available: map[string]string{"python3": "/usr/bin/python3", "python": "/opt/py/python"},
			wantName:  "python",
			wantPath:  "/opt/py/python",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore := saveFuncVars(t)
			defer restore()
			lookPath = mockLookPath(tt.available)

			got, err := Find(tt.names)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Find() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Find() error = %v", err)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if got.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", got.Path, tt.wantPath)
			}
		})
	}
}

func TestFindDefaultsToCandidates(t *testing.T) {
	restore := saveFuncVars(t)
	defer restore()

	var asked []string
	lookPath = func(name string) (string, error) {
		asked = append(asked, name)
		return "", fmt.Errorf("not found")
	}

	_, err := Find(nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Find(nil) error = %v, want ErrNotFound", err)
	}

	want := Candidates()
	if len(asked) != len(want) {
		t.Fatalf("looked up %d names, want %d", len(asked), len(want))
	}
	for i := range want {
		if asked[i] != want[i] {
			t.Errorf("lookup[%d] = %q, want %q", i, asked[i], want[i])
		}
	}
}

func TestCandidatesNonEmpty(t *testing.T) {
	if len(Candidates()) == 0 {
		t.Fatal("Candidates() returned an empty list")
	}
}

func TestVersion(t *testing.T) {
	restore := saveFuncVars(t)
	defer restore()

	t.Run("trims probe output", func(t *testing.T) {
		execCommandFn = func(_ context.Context, name string, args ...string) (string, error) {
			if len(args) != 1 || args[0] != "--version" {
				t.Errorf("probe args = %v, want [--version]", args)
			}
			return "Python 3.12.1\n", nil
		}

		got, err := Version(context.Background(), "/usr/bin/python3")
		if err != nil {
			t.Fatalf("Version() error = %v", err)
		}
		if got != "Python 3.12.1" {
			t.Errorf("Version() = %q, want %q", got, "Python 3.12.1")
		}
	})

	t.Run("probe failure propagates", func(t *testing.T) {
		execCommandFn = func(_ context.Context, _ string, _ ...string) (string, error) {
			return "", fmt.Errorf("exit status 1")
		}

		if _, err := Version(context.Background(), "/usr/bin/python3"); err == nil {
			t.Fatal("Version() error = nil, want error")
		}
	})
}

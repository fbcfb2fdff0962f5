package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/hpkotak/venvctl/internal/config"
	"github.com/hpkotak/venvctl/internal/python"
	"github.com/hpkotak/venvctl/internal/venv"
)

func TestRunProvision(t *testing.T) {
	tests := []struct {
		name       string
		cfg        *config.Config // nil means no config file
		dirFlag    string
		promptFlag string
		createErr  error
		wantDir    string
		wantNames  []string
		wantPrompt string
		wantErr    error
	}{
		{
			name:    "defaults",
			wantDir: "venv",
		},
		{
			name: "config drives dir, candidates and prompt",
			cfg: &config.Config{
				Interpreters: []string{"python3.12", "python3"},
				Venv:         config.Venv{Dir: ".venv", Prompt: "proj"},
			},
			wantDir:    ".venv",
			wantNames:  []string{"python3.12", "python3"},
			wantPrompt: "proj",
		},
		{
			name:    "dir flag wins over config",
			cfg:     &config.Config{Venv: config.Venv{Dir: ".venv"}},
			dirFlag: "env2",
			wantDir: "env2",
		},
		{
			name:       "prompt flag wins over config",
			cfg:        &config.Config{Venv: config.Venv{Dir: "venv", Prompt: "fromcfg"}},
			promptFlag: "fromflag",
			wantDir:    "venv",
			wantPrompt: "fromflag",
		},
		{
			name:      "no interpreter found",
			createErr: fmt.Errorf("locating interpreter: %w", python.ErrNotFound),
			wantDir:   "venv",
			wantErr:   python.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore := saveCmdVars(t)
			defer restore()
			isolateEnv(t)

			if tt.cfg != nil {
				writeHomeConfig(t, tt.cfg)
			}
			dirFlag = tt.dirFlag
			promptFlag = tt.promptFlag

			var gotDir string
			var gotOpts venv.CreateOptions
			venvCreate = func(_ context.Context, dir string, opts venv.CreateOptions) error {
				gotDir = dir
				gotOpts = opts
				return tt.createErr
			}

			out := &bytes.Buffer{}
			ioOut = out

			err := runProvision(provisionCmd, nil)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("runProvision() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("runProvision() error = %v", err)
			}

			if gotDir != tt.wantDir {
				t.Errorf("create dir = %q, want %q", gotDir, tt.wantDir)
			}
			if len(gotOpts.Interpreters) != len(tt.wantNames) {
				t.Errorf("candidates = %v, want %v", gotOpts.Interpreters, tt.wantNames)
			} else {
				for i := range tt.wantNames {
					if gotOpts.Interpreters[i] != tt.wantNames[i] {
						t.Errorf("candidates = %v, want %v", gotOpts.Interpreters, tt.wantNames)
						break
					}
				}
			}
			if gotOpts.Prompt != tt.wantPrompt {
				t.Errorf("prompt = %q, want %q", gotOpts.Prompt, tt.wantPrompt)
			}

			if !strings.Contains(out.String(), "[ok] Virtual environment ready at "+tt.wantDir) {
				t.Errorf("output missing ready line:\n%s", out.String())
			}
			if !strings.Contains(out.String(), "venvctl activate") {
				t.Errorf("output missing activation hint:\n%s", out.String())
			}
		})
	}
}

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		action  action
		noTUI   bool
		config  string
		wantErr string
	}{
		{name: "none", args: nil, action: actionRun},
		{name: "short help", args: []string{"-h"}, action: actionHelp},
		{name: "long help", args: []string{"--help"}, action: actionHelp},
		{name: "short version", args: []string{"-v"}, action: actionVersion},
		{name: "long version", args: []string{"--version"}, action: actionVersion},
		{name: "short no tui", args: []string{"-nt"}, action: actionRun, noTUI: true},
		{name: "long no tui", args: []string{"--no-tui"}, action: actionRun, noTUI: true},
		{name: "config", args: []string{"--config", "/tmp/c.toml"}, action: actionRun, config: "/tmp/c.toml"},
		{name: "help wins", args: []string{"-nt", "-h"}, action: actionHelp},
		{name: "unknown flag", args: []string{"--bogus"}, wantErr: "bogus"},
		{name: "extra arg", args: []string{"pics"}, wantErr: `unexpected argument "pics"`},
		{name: "extra after flag", args: []string{"-nt", "now"}, wantErr: `unexpected argument "now"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("parseArgs(%q) error = %v, want %q", tt.args, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseArgs(%q) returned error: %v", tt.args, err)
			}
			if got.action != tt.action {
				t.Fatalf("action = %v, want %v", got.action, tt.action)
			}
			if got.opts.NoTUI != tt.noTUI {
				t.Fatalf("NoTUI = %v, want %v", got.opts.NoTUI, tt.noTUI)
			}
			if got.opts.ConfigPath != tt.config {
				t.Fatalf("ConfigPath = %q, want %q", got.opts.ConfigPath, tt.config)
			}
		})
	}
}

func TestRunHelpAndVersion(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"--help"}, &out, &errOut); code != 0 {
		t.Fatalf("help exit = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "--no-tui") {
		t.Fatalf("usage missing --no-tui:\n%s", out.String())
	}

	out.Reset()
	if code := run([]string{"-v"}, &out, &errOut); code != 0 {
		t.Fatalf("version exit = %d, want 0", code)
	}
	if got := out.String(); got != "walt "+version+"\n" {
		t.Fatalf("version output = %q", got)
	}
}

func TestRunBadArgsExitsZero(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"--nope"}, &out, &errOut); code != 0 {
		t.Fatalf("exit = %d, want 0", code)
	}
	if !strings.Contains(errOut.String(), "walt --help") {
		t.Fatalf("stderr missing usage hint: %q", errOut.String())
	}
	if out.Len() != 0 {
		t.Fatalf("stdout = %q, want empty", out.String())
	}
}

func TestRunFatalExitsOne(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"--config", "/dev/null/nope/config.toml", "-nt"}, &out, &errOut)
	// /dev/null is not a directory, so opening the config fails before any
	// setter is probed.
	if code != 1 || !strings.HasPrefix(errOut.String(), "walt: ") {
		t.Fatalf("exit = %d stderr = %q, want 1 with walt: prefix", code, errOut.String())
	}
}

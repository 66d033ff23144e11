package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const triangle = `v 1.0 0.0 0.0
v 0.0 1.0 0.0
v -1.0 0.0 0.0
vn 0.0 0.0 1.0
f 1/1/1 2/1/1 3/1/1
`

func TestRun(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	if err := os.WriteFile("in.obj", []byte(triangle), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	tests := []struct {
		name      string
		args      []string
		wantCode  int
		wantUsage bool
		wantOut   string
	}{
		{name: "no args", args: nil, wantCode: 0, wantUsage: true},
		{name: "one arg", args: []string{"in.obj"}, wantCode: 0, wantUsage: true},
		{name: "help flag", args: []string{"-h"}, wantCode: 0, wantUsage: true},
		{name: "convert", args: []string{"in.obj", "out.obj"}, wantCode: 0, wantOut: "out.obj"},
		{name: "flags before paths", args: []string{"-object", "moon", "in.obj", "moon.obj"}, wantCode: 0, wantOut: "moon.obj"},
		{name: "missing input", args: []string{"absent.obj", "never.obj"}, wantCode: 1},
		{name: "unknown flag", args: []string{"-nope", "in.obj", "x.obj"}, wantCode: 2, wantUsage: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)

			if code != tt.wantCode {
				t.Fatalf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, stderr.String())
			}
			if got := strings.HasPrefix(stdout.String(), "usage: sphereuv"); got != tt.wantUsage {
				t.Errorf("usage printed = %v, want %v; stdout: %q", got, tt.wantUsage, stdout.String())
			}
			if tt.wantOut == "" {
				return
			}

			data, err := os.ReadFile(filepath.Clean(tt.wantOut))
			if err != nil {
				t.Fatalf("output not written: %v", err)
			}
			if !strings.Contains(string(data), "\nf 1/1/1 2/2/1 3/3/1\n") {
				t.Errorf("unexpected output:\n%s", data)
			}
		})
	}
}

func TestRun_ObjectFlag(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	in := filepath.Join(dir, "in.obj")
	out := filepath.Join(dir, "out.obj")
	if err := os.WriteFile(in, []byte(triangle), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-object", "deimos", in, out}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d (stderr: %s)", code, stderr.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.Contains(string(data), "\no deimos\n") {
		t.Errorf("object flag not applied:\n%s", data)
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AndreyAkinshin/buildreport/internal/errors"
)

const sampleReport = `
entries:
  - task: Build
    duration: 1s
  - task: Test
    duration: 2s
  - task: Publish
    status: skipped
  - task: Default
    status: delegated
`

// newTestDir creates a working directory with its own project config so
// discovery never reaches a config outside the test.
func newTestDir(t *testing.T, config string) string {
	t.Helper()
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, ".buildreport")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte(config), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

type result struct {
	stdout string
	stderr string
	code   int
}

func runCLI(t *testing.T, dir, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := newApp(strings.NewReader(stdin), &stdout, &stderr, dir)
	a.getenv = func(string) string { return "" }
	code := a.run(args)
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func TestRun_NoArgsShowsHelp(t *testing.T) {
	t.Parallel()
	res := runCLI(t, newTestDir(t, `{}`), "")

	if res.code != errors.ExitSuccess {
		t.Errorf("exit code = %d, want 0", res.code)
	}
	for _, want := range []string{"Usage:", "Report Commands:", "Utility Commands:", "print", "version", "--config"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("help missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestRun_SubcommandHelp(t *testing.T) {
	t.Parallel()
	res := runCLI(t, newTestDir(t, `{}`), "", "print", "--help")

	if res.code != errors.ExitSuccess {
		t.Errorf("exit code = %d, want 0", res.code)
	}
	for _, want := range []string{"Print a build report", "--format", "--verbosity", "Global Flags:"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("help missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestRun_Version(t *testing.T) {
	t.Parallel()
	for _, args := range [][]string{{"version"}, {"--version"}} {
		res := runCLI(t, newTestDir(t, `{}`), "", args...)
		if res.code != errors.ExitSuccess {
			t.Errorf("%v: exit code = %d, want 0", args, res.code)
		}
		if !strings.HasPrefix(res.stdout, "buildreport "+Version) {
			t.Errorf("%v: stdout = %q", args, res.stdout)
		}
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()
	res := runCLI(t, newTestDir(t, `{}`), "", "explode")

	if res.code == errors.ExitSuccess {
		t.Error("exit code = 0, want failure")
	}
	if !strings.Contains(res.stderr, "buildreport:") {
		t.Errorf("stderr = %q, want error prefix", res.stderr)
	}
}

func TestRun_InputErrors(t *testing.T) {
	t.Parallel()
	dir := newTestDir(t, `{}`)
	path := writeFile(t, dir, "report.yaml", sampleReport)

	tests := []struct {
		name string
		args []string
	}{
		{"missing argument", []string{"print"}},
		{"too many arguments", []string{"print", path, path}},
		{"unknown flag", []string{"print", "--shout", path}},
		{"bad verbosity", []string{"print", "--verbosity", "loud", path}},
		{"bad color", []string{"print", "--color", "rainbow", path}},
		{"bad format", []string{"print", "--format", "pdf", path}},
		{"quiet and verbose", []string{"print", "-q", "-v", path}},
		{"xlsx without output", []string{"print", "--format", "xlsx", path}},
		{"unknown input format", []string{"print", "--input", "junit", path}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := runCLI(t, dir, "", tt.args...)
			if res.code != errors.ExitInputError {
				t.Errorf("exit code = %d, want %d (stderr: %s)", res.code, errors.ExitInputError, res.stderr)
			}
			if res.stdout != "" {
				t.Errorf("stdout = %q, want empty", res.stdout)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("discovered", func(t *testing.T) {
		t.Parallel()
		res := runCLI(t, newTestDir(t, `{"verbosity": "verbose"}`), "", "config", "validate")
		if res.code != errors.ExitSuccess {
			t.Fatalf("exit code = %d, stderr = %s", res.code, res.stderr)
		}
		if !strings.Contains(res.stdout, "is valid") {
			t.Errorf("stdout = %q", res.stdout)
		}
	})

	t.Run("explicit with warnings", func(t *testing.T) {
		t.Parallel()
		dir := newTestDir(t, `{}`)
		path := writeFile(t, dir, "custom.json", `{"theme": "dark"}`)
		res := runCLI(t, dir, "", "config", "validate", path)
		if res.code != errors.ExitSuccess {
			t.Fatalf("exit code = %d, stderr = %s", res.code, res.stderr)
		}
		if !strings.Contains(res.stderr, `warning: unknown field "theme"`) {
			t.Errorf("stderr = %q, want unknown field warning", res.stderr)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		dir := newTestDir(t, `{}`)
		path := writeFile(t, dir, "bad.json", `{"format": "pdf"}`)
		res := runCLI(t, dir, "", "config", "validate", path)
		if res.code != errors.ExitConfigError {
			t.Errorf("exit code = %d, want %d", res.code, errors.ExitConfigError)
		}
		if !strings.Contains(res.stderr, "bad.json") {
			t.Errorf("stderr = %q, want file name", res.stderr)
		}
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		dir := newTestDir(t, `{}`)
		res := runCLI(t, dir, "", "config", "validate", filepath.Join(dir, "nope.json"))
		if res.code != errors.ExitRuntimeError {
			t.Errorf("exit code = %d, want %d", res.code, errors.ExitRuntimeError)
		}
		if !strings.Contains(res.stderr, "not found") {
			t.Errorf("stderr = %q", res.stderr)
		}
	})
}

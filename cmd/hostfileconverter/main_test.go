package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func scenarioDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.hosts"), "# comment\n0.0.0.0 ads.example.com\n\n127.0.0.1 blogspot.com\n")
	writeFile(t, filepath.Join(dir, "b.hosts"), "tracker.example.net\n0.0.0.0 ads.example.com\n")
	return dir
}

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"-h", "--help"} {
		code, stdout, _ := execute(t, arg)
		if code != 0 {
			t.Errorf("%s: exit = %d; want 0", arg, code)
		}
		for _, flag := range []string{"--output", "--path", "--format", "--stats", "--config", "--sort"} {
			if !strings.Contains(stdout, flag) {
				t.Errorf("%s: help does not mention %s", arg, flag)
			}
		}
	}
}

func TestRunUsageErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--bogus"}},
		{"missing value", []string{"-o"}},
		{"positional argument", []string{"extra"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			code, stdout, _ := execute(t, append([]string{"-p", dir}, tc.args...)...)
			if code != 2 {
				t.Fatalf("exit = %d; want 2", code)
			}
			if !strings.Contains(stdout, "Usage:") {
				t.Errorf("usage not printed to stdout: %q", stdout)
			}
			if _, err := os.Stat(filepath.Join(dir, "hosts.out")); !os.IsNotExist(err) {
				t.Errorf("output file created on usage error (err=%v)", err)
			}
		})
	}
}

func TestRunUnknownFormatLeavesOutputUntouched(t *testing.T) {
	t.Parallel()

	dir := scenarioDir(t)
	out := filepath.Join(dir, "hosts.out")
	writeFile(t, out, "previous\n")

	code, stdout, _ := execute(t, "-p", dir, "-f", "bogus")
	if code != 3 {
		t.Fatalf("exit = %d; want 3", code)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Errorf("usage not printed to stdout: %q", stdout)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "previous\n" {
		t.Errorf("output = %q; want untouched", b)
	}
}

func TestRunDefaultFormat(t *testing.T) {
	t.Parallel()

	dir := scenarioDir(t)
	code, stdout, stderr := execute(t, "-p", dir, "--sort")
	if code != 0 {
		t.Fatalf("exit = %d; stderr: %s", code, stderr)
	}
	if stdout != "" {
		t.Errorf("stdout = %q; want nothing without --stats", stdout)
	}

	b, err := os.ReadFile(filepath.Join(dir, "hosts.out"))
	if err != nil {
		t.Fatal(err)
	}
	want := "address=/ads.example.com/127.0.0.1\naddress=/tracker.example.net/127.0.0.1\n"
	if string(b) != want {
		t.Errorf("output = %q; want %q", b, want)
	}
}

func TestRunStatsAndFormat(t *testing.T) {
	t.Parallel()

	dir := scenarioDir(t)
	code, stdout, stderr := execute(t, "-p", dir, "-o", "blocked.conf", "-f", "hosts", "-s", "--sort")
	if code != 0 {
		t.Fatalf("exit = %d; stderr: %s", code, stderr)
	}

	for _, want := range []string{
		"a.hosts has 4 lines, relevant: 2 split: 2 unfiltered lines 1\n",
		"b.hosts has 2 lines, relevant: 2 split: 2 unfiltered lines 2\n",
		"overall line count 6, unique unfiltered domains: 2",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stats output missing %q:\n%s", want, stdout)
		}
	}

	b, err := os.ReadFile(filepath.Join(dir, "blocked.conf"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "127.0.0.1 ads.example.com\n127.0.0.1 tracker.example.net\n"; string(b) != want {
		t.Errorf("output = %q; want %q", b, want)
	}
}

func TestRunConfigFileAndFlagOverride(t *testing.T) {
	t.Parallel()

	dir := scenarioDir(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, cfgPath, "format: unbound\nsort: true\ndenylist:\n  - tracker.example.net\n")

	code, _, stderr := execute(t, "-p", dir, "-c", cfgPath, "-f", "hosts")
	if code != 0 {
		t.Fatalf("exit = %d; stderr: %s", code, stderr)
	}
	b, err := os.ReadFile(filepath.Join(dir, "hosts.out"))
	if err != nil {
		t.Fatal(err)
	}
	// blogspot.com is only denied by the built-in list, which the config replaced.
	want := "127.0.0.1 ads.example.com\n127.0.0.1 blogspot.com\n"
	if string(b) != want {
		t.Errorf("output = %q; want %q", b, want)
	}
}

func TestRunMissingConfigIsUsageError(t *testing.T) {
	t.Parallel()

	code, stdout, _ := execute(t, "-p", t.TempDir(), "-c", filepath.Join(t.TempDir(), "absent.yaml"))
	if code != 2 {
		t.Fatalf("exit = %d; want 2", code)
	}
	if !strings.Contains(stdout, "config.load") {
		t.Errorf("stdout = %q; want config error", stdout)
	}
}

func TestRunMissingDirectoryIsIOError(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := execute(t, "-p", filepath.Join(t.TempDir(), "nope"))
	if code != 1 {
		t.Fatalf("exit = %d; want 1", code)
	}
	if strings.Contains(stdout, "Usage:") {
		t.Errorf("usage printed for I/O error")
	}
	if !strings.Contains(stderr, "Error:") {
		t.Errorf("stderr = %q; want error message", stderr)
	}
}

func TestRunMetricsFile(t *testing.T) {
	t.Parallel()

	dir := scenarioDir(t)
	metricsPath := filepath.Join(t.TempDir(), "hostfileconverter.prom")
	code, _, stderr := execute(t, "-p", dir, "--metrics-file", metricsPath)
	if code != 0 {
		t.Fatalf("exit = %d; stderr: %s", code, stderr)
	}
	b, err := os.ReadFile(metricsPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "hostfileconverter_unique_domains 2") {
		t.Errorf("metrics textfile missing unique domain gauge:\n%s", b)
	}
}

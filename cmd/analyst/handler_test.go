package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/rules"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	h := New()
	var out, errOut bytes.Buffer
	h.rootCmd.SetOut(&out)
	h.rootCmd.SetErr(&errOut)
	h.rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))

	err := h.Execute()
	return out.String(), errOut.String(), err
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAnalyzeStdout(t *testing.T) {
	path := writeSource(t, t.TempDir(), "app.py", "def f(a):\n    return a / 0\n")

	out, _, err := run(t, "analyze", "--format", "json", "--output", "-", "--model", "local", path)
	if err != nil {
		t.Fatal(err)
	}

	var r types.AnalysisReport
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("stdout is not a JSON report: %v\n%s", err, out)
	}
	if r.SelectedModel != "local" {
		t.Errorf("selected_model = %q, want local", r.SelectedModel)
	}
	if r.SeverityCount[types.SeverityCritical] == 0 {
		t.Error("expected a critical issue for the division by zero")
	}
}

func TestAnalyzeWritesDefaultPaths(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.py", "x = 1\n")
	b := writeSource(t, dir, "b.py", "def broken(:\n")
	reports := filepath.Join(dir, "reports")

	_, errOut, err := run(t, "analyze", "--output-dir", reports, a, b)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"report_a.md", "report_b.md"} {
		content, err := os.ReadFile(filepath.Join(reports, name))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(content), "# Code Analysis Report") {
			t.Errorf("%s does not look like a markdown report", name)
		}
	}
	if !strings.Contains(errOut, "syntax error:") {
		t.Errorf("summary does not mention the syntax error:\n%s", errOut)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	dir := t.TempDir()
	a := writeSource(t, dir, "a.py", "x = 1\n")
	b := writeSource(t, dir, "b.py", "y = 2\n")

	tests := []struct {
		name string
		args []string
	}{
		{"no files", []string{"analyze"}},
		{"missing file", []string{"analyze", filepath.Join(dir, "missing.py")}},
		{"bad format", []string{"analyze", "--format", "pdf", a}},
		{"output with many files", []string{"analyze", "--output", "-", a, b}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := run(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestRulesList(t *testing.T) {
	out, _, err := run(t, "rules", "list")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if want := len(rules.Default().Rules()) + 1; len(lines) != want {
		t.Errorf("got %d lines, want %d", len(lines), want)
	}
	if !strings.HasPrefix(lines[0], "CODE") {
		t.Errorf("missing header: %q", lines[0])
	}
}

func TestRulesShow(t *testing.T) {
	out, _, err := run(t, "rules", "show", "LGC001")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "LGC001: ") {
		t.Errorf("unexpected output: %q", out)
	}

	if _, _, err := run(t, "rules", "show", "NOPE001"); err == nil {
		t.Error("expected an error for an unknown rule")
	}
}

func TestRulesExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "issues")

	if _, _, err := run(t, "rules", "export", dir); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(rules.Default().Rules()) {
		t.Errorf("exported %d files, want %d", len(entries), len(rules.Default().Rules()))
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "analyst dev\n" {
		t.Errorf("version output = %q", out)
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "analyst.toml")
	if err := os.WriteFile(cfg, []byte("[practices]\nmax_line_length = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := writeSource(t, dir, "app.py", "value_name = 1\n")

	out, _, err := run(t, "--config", cfg, "analyze", "-f", "json", "-o", "-", path)
	if err != nil {
		t.Fatal(err)
	}

	var r types.AnalysisReport
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, issue := range r.Issues {
		if issue.Code == "FMT001" {
			found = true
		}
	}
	if !found {
		t.Errorf("line length limit from --config not applied: %+v", r.Issues)
	}
}

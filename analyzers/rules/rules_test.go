package rules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/go-test/deep"

	"github.com/devtrivedi96/Code-analyst-ai/types"
)

func TestReadMarkdown(t *testing.T) {
	cases := []struct {
		content  string
		expected string
	}{
		{"# Sample", "<h1>Sample</h1>\n"},
		{"`Sample`", "<p><code>Sample</code></p>\n"},
		{"[link](https://example.com)", `<p><a href="https://example.com" rel="nofollow">link</a></p>` + "\n"},
	}

	for _, tc := range cases {
		actual, err := readMarkdown(tc.content)
		if err != nil {
			t.Error(err)
		}

		if actual != tc.expected {
			t.Errorf("expected: %q, got: %q", tc.expected, actual)
		}
	}
}

func TestRead(t *testing.T) {
	normal := `
[[issues]]
issue_code = "B002"
category = "style"
severity = "Minor"
title = "second"
description = "## Description"

[[issues]]
issue_code = "A001"
category = "security"
severity = "Critical"
title = "first"
description = "` + "`code`" + `"
`

	c, err := Read(strings.NewReader(normal))
	if err != nil {
		t.Fatal(err)
	}

	want := []Rule{
		{
			Code:            "A001",
			Category:        types.CategorySecurity,
			Severity:        types.SeverityCritical,
			Title:           "first",
			Description:     "`code`",
			DescriptionHTML: "<p><code>code</code></p>\n",
		},
		{
			Code:            "B002",
			Category:        types.CategoryStyle,
			Severity:        types.SeverityMinor,
			Title:           "second",
			Description:     "## Description",
			DescriptionHTML: "<h2>Description</h2>\n",
		},
	}

	if diff := deep.Equal(c.Rules(), want); diff != nil {
		t.Errorf("rules differ: %v", diff)
	}
}

func TestReadErrors(t *testing.T) {
	cases := map[string]string{
		"blank":            ``,
		"missing code":     "[[issues]]\ncategory = \"style\"\nseverity = \"Minor\"\n",
		"invalid severity": "[[issues]]\nissue_code = \"A1\"\ncategory = \"style\"\nseverity = \"Blocker\"\n",
		"missing category": "[[issues]]\nissue_code = \"A1\"\nseverity = \"Minor\"\n",
		"duplicate code":   "[[issues]]\nissue_code = \"A1\"\ncategory = \"style\"\nseverity = \"Minor\"\n[[issues]]\nissue_code = \"A1\"\ncategory = \"style\"\nseverity = \"Minor\"\n",
		"malformed":        "[[issues]\n",
	}

	for name, content := range cases {
		if _, err := Read(strings.NewReader(content)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if len(c.Rules()) == 0 {
		t.Fatal("built-in catalog is empty")
	}

	rule, ok := c.Lookup("LGC001")
	if !ok {
		t.Fatal("LGC001 not found")
	}
	if rule.Severity != types.SeverityCritical || rule.Category != types.CategoryDivisionByZero {
		t.Errorf("unexpected rule: %+v", rule)
	}
	if !strings.Contains(rule.DescriptionHTML, "<code>") {
		t.Errorf("expected rendered description, got %q", rule.DescriptionHTML)
	}

	if _, ok := c.Lookup("NOPE"); ok {
		t.Error("unexpected rule for unknown code")
	}
}

func TestIssue(t *testing.T) {
	d := types.Diagnostic{Code: "SEC002", Line: 3, Message: "m", Suggestion: "s"}

	got, ok := Default().Issue(d)
	if !ok {
		t.Fatal("SEC002 not found")
	}

	want := types.Issue{
		Line:       3,
		Code:       "SEC002",
		Category:   types.CategorySecurity,
		Severity:   types.SeverityCritical,
		Message:    "m",
		Suggestion: "s",
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}

	if _, ok := Default().Issue(types.Diagnostic{Code: "NOPE"}); ok {
		t.Error("expected unknown code to be rejected")
	}
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "issues")
	c := Default()

	if err := c.Export(dir); err != nil {
		t.Fatal(err)
	}

	for _, rule := range c.Rules() {
		content, err := os.ReadFile(filepath.Join(dir, rule.Code+".toml"))
		if err != nil {
			t.Fatal(err)
		}

		var got Rule
		if err := toml.Unmarshal(content, &got); err != nil {
			t.Fatalf("%s: %v", rule.Code, err)
		}

		rule.DescriptionHTML = ""
		if diff := deep.Equal(got, rule); diff != nil {
			t.Errorf("%s: exported rule differs: %v", rule.Code, diff)
		}
	}
}

package analysistest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-test/deep"

	"github.com/devtrivedi96/Code-analyst-ai/types"
)

const annotated = `import os  # an ordinary comment

total = 1 / 0  # raise: LGC001
value = eval(text)  # raise: SEC003, LGC005
# raise-file: SML005
`

func report(issues ...ParsedIssue) types.AnalysisReport {
	var r types.AnalysisReport
	for _, p := range issues {
		r.Issues = append(r.Issues, types.Issue{Code: p.IssueCode, Line: p.Line})
	}
	return r
}

func TestParseAnnotations(t *testing.T) {
	got, err := ParseAnnotations([]byte(annotated))
	if err != nil {
		t.Fatal(err)
	}

	want := []ParsedIssue{
		{IssueCode: "LGC001", Line: 3},
		{IssueCode: "SEC003", Line: 4},
		{IssueCode: "LGC005", Line: 4},
		{IssueCode: "SML005", Line: types.NoLine},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

func TestVerify(t *testing.T) {
	type test struct {
		description string
		report      types.AnalysisReport
		prefixes    []string
		wantErr     bool
	}

	tests := []test{
		{
			description: "exact match in another order",
			report: report(
				ParsedIssue{"SML005", types.NoLine},
				ParsedIssue{"LGC005", 4},
				ParsedIssue{"SEC003", 4},
				ParsedIssue{"LGC001", 3},
			),
		},
		{
			description: "missing issue",
			report:      report(ParsedIssue{"LGC001", 3}),
			wantErr:     true,
		},
		{
			description: "wrong line",
			report: report(
				ParsedIssue{"SML005", types.NoLine},
				ParsedIssue{"LGC005", 4},
				ParsedIssue{"SEC003", 4},
				ParsedIssue{"LGC001", 2},
			),
			wantErr: true,
		},
		{
			description: "prefix filter ignores other issues",
			report: report(
				ParsedIssue{"LGC001", 3},
				ParsedIssue{"LGC005", 4},
				ParsedIssue{"FMT001", 1},
			),
			prefixes: []string{"LGC"},
		},
		{
			description: "duplicate report",
			report: report(
				ParsedIssue{"LGC001", 3},
				ParsedIssue{"LGC001", 3},
				ParsedIssue{"LGC005", 4},
			),
			prefixes: []string{"LGC"},
			wantErr:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			err := Verify(tc.report, []byte(annotated), tc.prefixes...)
			if (err != nil) != tc.wantErr {
				t.Errorf("Verify() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sample.py"), []byte(annotated), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("# raise: X001\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	analyze := func(string) types.AnalysisReport {
		return report(ParsedIssue{"LGC001", 3}, ParsedIssue{"LGC005", 4})
	}

	if err := Run(dir, analyze, "LGC"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Run(dir, analyze, "SEC"); err == nil {
		t.Error("expected a mismatch for SEC issues")
	}
	if err := Run(t.TempDir(), analyze); err == nil {
		t.Error("expected an error for an empty directory")
	}
}

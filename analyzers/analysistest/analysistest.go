// Package analysistest verifies analysis reports against expectations
// annotated in Python testdata:
//
//	result = total / 0  # raise: LGC001
//
// Issues that are not tied to a line are annotated anywhere with
// `# raise-file: CODE`.
package analysistest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/pyast"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

// ParsedIssue represents an issue parsed from an annotation comment.
type ParsedIssue struct {
	IssueCode string
	Line      int
}

func (p ParsedIssue) String() string {
	return fmt.Sprintf("%s@%d", p.IssueCode, p.Line)
}

var annotation = regexp.MustCompile(`#\s*raise(-file)?:\s*(.+)$`)

// AnalyzeFunc produces a report for one source text.
type AnalyzeFunc func(src string) types.AnalysisReport

// Run analyzes every .py file under directory and verifies each report
// against the file's annotations. Only issues whose code starts with one of
// prefixes are compared; no prefixes compares every issue.
func Run(directory string, analyze AnalyzeFunc, prefixes ...string) error {
	files, err := getFilenames(directory)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no testdata found in %s", directory)
	}

	for _, filename := range files {
		content, err := os.ReadFile(filename)
		if err != nil {
			return err
		}

		if err := Verify(analyze(string(content)), content, prefixes...); err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
	}

	return nil
}

// getFilenames returns the Python files below directory in lexical order.
func getFilenames(directory string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(directory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".py" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// ParseAnnotations returns the issues annotated in src.
func ParseAnnotations(src []byte) ([]ParsedIssue, error) {
	lang := pyast.Language()

	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, err
	}

	// create a query for fetching comments
	query, err := sitter.NewQuery([]byte("(comment) @comment"), lang)
	if err != nil {
		return nil, err
	}

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, tree.RootNode())

	var parsedIssues []ParsedIssue
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}

		for _, c := range m.Captures {
			groups := annotation.FindStringSubmatch(c.Node.Content(src))
			if groups == nil {
				continue
			}

			line := int(c.Node.StartPoint().Row) + 1
			if groups[1] != "" {
				line = types.NoLine
			}
			for _, code := range strings.Split(groups[2], ",") {
				if code = strings.TrimSpace(code); code != "" {
					parsedIssues = append(parsedIssues, ParsedIssue{IssueCode: code, Line: line})
				}
			}
		}
	}

	return parsedIssues, nil
}

// Verify compares the report's issues with the annotations in src.
func Verify(report types.AnalysisReport, src []byte, prefixes ...string) error {
	expected, err := ParseAnnotations(src)
	if err != nil {
		return err
	}

	var reported []ParsedIssue
	for _, issue := range report.Issues {
		reported = append(reported, ParsedIssue{IssueCode: issue.Code, Line: issue.Line})
	}

	return compare(filter(expected, prefixes), filter(reported, prefixes))
}

func filter(issues []ParsedIssue, prefixes []string) []ParsedIssue {
	if len(prefixes) == 0 {
		return issues
	}

	var out []ParsedIssue
	for _, issue := range issues {
		for _, p := range prefixes {
			if strings.HasPrefix(issue.IssueCode, p) {
				out = append(out, issue)
				break
			}
		}
	}
	return out
}

// compare reports the issues that are expected but missing and those that
// are reported but not expected.
func compare(expected, reported []ParsedIssue) error {
	count := make(map[ParsedIssue]int)
	for _, p := range expected {
		count[p]++
	}
	for _, p := range reported {
		count[p]--
	}

	var missing, unexpected []string
	for p, n := range count {
		for ; n > 0; n-- {
			missing = append(missing, p.String())
		}
		for ; n < 0; n++ {
			unexpected = append(unexpected, p.String())
		}
	}

	if len(missing) == 0 && len(unexpected) == 0 {
		return nil
	}

	sort.Strings(missing)
	sort.Strings(unexpected)
	return fmt.Errorf("mismatch between annotated and reported issues: missing %v, unexpected %v", missing, unexpected)
}

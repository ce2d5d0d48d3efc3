// Package report renders analysis reports as JSON, Markdown or sanitized
// HTML.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/devtrivedi96/Code-analyst-ai/types"
)

// Format is an output format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatMarkdown, FormatHTML}

// ParseFormat returns the format named s. "md" is accepted for Markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

// Extension returns the file extension used for f.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	}
	return ".json"
}

// DefaultPath returns <dir>/report_<name><ext> for a source file.
func DefaultPath(dir, source string, f Format) string {
	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return filepath.Join(dir, fmt.Sprintf("report_%s%s", name, f.Extension()))
}

// Write renders r in format f. source names the analyzed file in the
// Markdown and HTML headings.
func Write(w io.Writer, f Format, source string, r types.AnalysisReport) error {
	switch f {
	case FormatJSON:
		return JSON(w, r)
	case FormatMarkdown:
		return Markdown(w, source, r)
	case FormatHTML:
		return HTML(w, source, r)
	}
	return fmt.Errorf("unknown report format %q", f)
}

// JSON writes r as indented JSON.
func JSON(w io.Writer, r types.AnalysisReport) error {
	data, err := json.MarshalIndent(r, "", "\t")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	_, err = w.Write(data)
	return err
}

// HTML writes r as a standalone HTML document rendered from its Markdown
// form and sanitized.
func HTML(w io.Writer, source string, r types.AnalysisReport) error {
	var md bytes.Buffer
	if err := Markdown(&md, source, r); err != nil {
		return err
	}

	body, err := readMarkdown(md.Bytes())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n%s</body>\n</html>\n",
		bluemonday.StrictPolicy().Sanitize(title(source)), body)
	return err
}

// readMarkdown renders GitHub-flavored Markdown and sanitizes the result.
func readMarkdown(content []byte) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	var buf bytes.Buffer
	if err := md.Convert(content, &buf); err != nil {
		return "", err
	}

	return bluemonday.UGCPolicy().Sanitize(buf.String()), nil
}

func title(source string) string {
	if source == "" {
		return "Code Analysis Report"
	}
	return "Code Analysis Report: " + source
}

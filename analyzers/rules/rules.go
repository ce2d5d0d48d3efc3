// Package rules holds the catalog of every rule the analyzers can report:
// its category, its fixed severity and a Markdown description.
package rules

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/microcosm-cc/bluemonday"
	tomlv2 "github.com/pelletier/go-toml/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/devtrivedi96/Code-analyst-ai/types"
)

//go:embed issues.toml
var builtin []byte

// Rule describes one rule.
type Rule struct {
	Code        string         `toml:"issue_code" json:"code"`
	Category    types.Category `toml:"category" json:"category"`
	Severity    types.Severity `toml:"severity" json:"severity"`
	Title       string         `toml:"title" json:"title"`
	Description string         `toml:"description" json:"description"`
	// DescriptionHTML is the sanitized HTML rendering of Description.
	DescriptionHTML string `toml:"-" json:"description_html"`
}

// issuesTOML is used for decoding rules from a TOML file.
type issuesTOML struct {
	Issues []Rule `toml:"issues"`
}

// Catalog is an immutable set of rules indexed by code.
type Catalog struct {
	rules  []Rule
	byCode map[string]int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Read(bytes.NewReader(builtin))
		if err != nil {
			panic(fmt.Sprintf("rules: invalid built-in catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Read decodes a catalog from TOML, validates every rule and renders its
// description. Rules are sorted by code.
func Read(r io.Reader) (*Catalog, error) {
	var doc issuesTOML
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}
	if len(doc.Issues) == 0 {
		return nil, errors.New("no rules found")
	}

	c := &Catalog{byCode: make(map[string]int, len(doc.Issues))}
	for _, rule := range doc.Issues {
		if err := rule.validate(); err != nil {
			return nil, err
		}
		if _, ok := c.byCode[rule.Code]; ok {
			return nil, fmt.Errorf("duplicate rule code %s", rule.Code)
		}

		desc, err := readMarkdown(rule.Description)
		if err != nil {
			return nil, fmt.Errorf("render description of %s: %w", rule.Code, err)
		}
		rule.DescriptionHTML = desc

		c.byCode[rule.Code] = -1
		c.rules = append(c.rules, rule)
	}

	sort.Slice(c.rules, func(i, j int) bool {
		return c.rules[i].Code < c.rules[j].Code
	})
	for i, rule := range c.rules {
		c.byCode[rule.Code] = i
	}

	return c, nil
}

func (r *Rule) validate() error {
	if r.Code == "" {
		return errors.New("invalid rule code: code is empty")
	}
	if !r.Severity.Valid() {
		return fmt.Errorf("rule %s: invalid severity %q", r.Code, r.Severity)
	}
	if r.Category == "" {
		return fmt.Errorf("rule %s: category is empty", r.Code)
	}
	return nil
}

// Rules returns every rule, sorted by code.
func (c *Catalog) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Lookup returns the rule with the given code.
func (c *Catalog) Lookup(code string) (Rule, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return Rule{}, false
	}
	return c.rules[i], true
}

// Issue turns a diagnostic into an issue with the category and severity of
// its rule. ok is false when the code is not in the catalog.
func (c *Catalog) Issue(d types.Diagnostic) (issue types.Issue, ok bool) {
	rule, ok := c.Lookup(d.Code)
	if !ok {
		return types.Issue{}, false
	}

	return types.Issue{
		Line:       d.Line,
		Code:       d.Code,
		Category:   rule.Category,
		Severity:   rule.Severity,
		Message:    d.Message,
		Suggestion: d.Suggestion,
	}, true
}

// Export writes every rule to <dir>/<code>.toml, creating dir if needed.
func (c *Catalog) Export(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, rule := range c.rules {
		path := filepath.Join(dir, fmt.Sprintf("%s.toml", rule.Code))
		if err := writeFile(path, rule); err != nil {
			return fmt.Errorf("export %s: %w", rule.Code, err)
		}
	}

	return nil
}

func writeFile(path string, rule Rule) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if err := rule.Write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Write writes the rule as a standalone TOML document.
func (r Rule) Write(w io.Writer) error {
	content, err := tomlv2.Marshal(r)
	if err != nil {
		return err
	}

	_, err = w.Write(content)
	return err
}

// readMarkdown is a helper utility used for parsing and sanitizing markdown content.
func readMarkdown(content string) (string, error) {
	// use the Github-flavored Markdown extension
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return "", err
	}

	return bluemonday.UGCPolicy().Sanitize(buf.String()), nil
}

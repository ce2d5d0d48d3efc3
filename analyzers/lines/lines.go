// Package lines splits source text into lines and exposes comment-stripped
// and string-masked views of each line for the line-based checks.
package lines

import (
	"strings"
)

const tabWidth = 8

// Line is one newline-delimited line of source text.
type Line struct {
	// Number is the 1-based line number.
	Number int
	// Raw is the line without its line terminator.
	Raw string
	// Code is Raw with the trailing comment removed and trailing spaces trimmed.
	Code string
	// Bare is Code with the contents of string literals replaced by spaces.
	Bare string
	// Indent is the width of the leading whitespace, tabs expanded to 8 columns.
	Indent int
	// Continuation is set when the line starts inside an open bracket, a
	// multi-line string, or after a backslash continuation.
	Continuation bool
}

// Stripped returns Code without surrounding whitespace.
func (l Line) Stripped() string {
	return strings.TrimSpace(l.Code)
}

// Blank reports whether the line holds no code. Comment-only lines are blank.
func (l Line) Blank() bool {
	return strings.TrimSpace(l.Code) == ""
}

// Comment reports whether the line holds only a comment.
func (l Line) Comment() bool {
	return l.Blank() && strings.HasPrefix(strings.TrimSpace(l.Raw), "#")
}

// scanner tracks string literal and bracket state across lines.
type scanner struct {
	quote  byte
	triple bool
	depth  int
	// openIndent is the indentation of the line that opened the outermost
	// bracket still open.
	openIndent int
}

// statementKeywords never start a line inside a bracketed expression.
var statementKeywords = map[string]bool{
	"assert": true, "break": true, "class": true, "continue": true,
	"def": true, "del": true, "elif": true, "except": true, "finally": true,
	"from": true, "global": true, "import": true, "nonlocal": true,
	"pass": true, "raise": true, "return": true, "try": true, "while": true,
	"with": true,
}

// clauseKeywords also occur inside comprehensions and conditional
// expressions, so they only end an open bracket as a block header at or left
// of the opening line.
var clauseKeywords = map[string]bool{
	"async": true, "else": true, "for": true, "if": true,
}

// leadingWord returns the identifier at the start of s.
func leadingWord(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '_' && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return s[:i]
		}
	}
	return s
}

// abandonsBracket reports whether text starts a new statement while a
// bracket is still open, which only happens when the bracket is never closed.
func (s *scanner) abandonsBracket(text string) bool {
	if s.depth == 0 || s.quote != 0 {
		return false
	}

	code := strings.TrimSpace(StripComment(text))
	word := leadingWord(code)
	switch {
	case statementKeywords[word]:
		return true
	case clauseKeywords[word]:
		return IndentOf(text) <= s.openIndent && strings.HasSuffix(code, ":")
	}
	return false
}

// Split splits src into lines. A trailing newline does not start a new line,
// so "a\nb\n" has two lines and "" has none.
func Split(src string) []Line {
	if src == "" {
		return nil
	}

	raw := strings.Split(src, "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	out := make([]Line, 0, len(raw))
	var s scanner
	continued := false
	for i, text := range raw {
		text = strings.TrimSuffix(text, "\r")

		if !continued && s.abandonsBracket(text) {
			s.depth = 0
		}

		startsInside := continued || s.quote != 0 || s.depth > 0
		code, bare := s.scan(text)

		out = append(out, Line{
			Number:       i + 1,
			Raw:          text,
			Code:         code,
			Bare:         bare,
			Indent:       IndentOf(text),
			Continuation: startsInside,
		})

		continued = strings.HasSuffix(code, "\\")
	}

	return out
}

// Count returns the number of lines in src, counting blank lines.
func Count(src string) int {
	if src == "" {
		return 0
	}
	n := strings.Count(src, "\n")
	if !strings.HasSuffix(src, "\n") {
		n++
	}
	return n
}

// scan returns the comment-stripped and the string-masked form of one line,
// carrying multi-line string and bracket state over to the next line.
func (s *scanner) scan(text string) (string, string) {
	bare := []byte(text)
	end := len(text)

loop:
	for i := 0; i < len(text); i++ {
		c := text[i]

		if s.quote != 0 {
			switch {
			case c == '\\':
				bare[i] = ' '
				if i+1 < len(text) {
					i++
					bare[i] = ' '
				}
			case c == s.quote && !s.triple:
				s.quote = 0
			case c == s.quote && s.triple && strings.HasPrefix(text[i:], strings.Repeat(string(c), 3)):
				i += 2
				s.quote = 0
				s.triple = false
			default:
				bare[i] = ' '
			}
			continue
		}

		switch c {
		case '#':
			end = i
			break loop
		case '\'', '"':
			s.quote = c
			if strings.HasPrefix(text[i:], strings.Repeat(string(c), 3)) {
				s.triple = true
				i += 2
			}
		case '(', '[', '{':
			if s.depth == 0 {
				s.openIndent = IndentOf(text)
			}
			s.depth++
		case ')', ']', '}':
			if s.depth > 0 {
				s.depth--
			}
		}
	}

	// single-quoted strings cannot span lines
	if s.quote != 0 && !s.triple {
		s.quote = 0
	}

	code := strings.TrimRight(text[:end], " \t")
	return code, string(bare[:len(code)])
}

// StripComment removes a trailing comment from a single line, ignoring '#'
// characters inside string literals.
func StripComment(text string) string {
	var s scanner
	code, _ := s.scan(text)
	return code
}

// MaskStrings replaces the contents of string literals in a single line with
// spaces, keeping the quotes, and drops the trailing comment.
func MaskStrings(text string) string {
	var s scanner
	_, bare := s.scan(text)
	return bare
}

// IndentOf returns the width of the leading whitespace of text.
func IndentOf(text string) int {
	width := 0
	for _, r := range text {
		switch r {
		case ' ':
			width++
		case '\t':
			width += tabWidth - width%tabWidth
		default:
			return width
		}
	}
	return width
}

// BracketDelta returns the number of opening brackets minus closing brackets
// in a string-masked line.
func BracketDelta(bare string) int {
	delta := 0
	for i := 0; i < len(bare); i++ {
		switch bare[i] {
		case '(', '[', '{':
			delta++
		case ')', ']', '}':
			delta--
		}
	}
	return delta
}

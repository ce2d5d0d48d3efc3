package practices

import (
	"strings"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/lines"
)

// statement is one logical statement of a block with its indentation.
type statement struct {
	line   int
	indent int
	text   string
}

// block returns the statements of the block opened by the header at index
// i, stopping at the first statement indented no deeper than the header.
// A one-line body is returned as a single statement.
func block(src []lines.Line, i int) []statement {
	header := src[i]
	if inline := inlineStatement(header.Bare); inline != "" {
		return []statement{{line: header.Number, indent: header.Indent + 1, text: inline}}
	}

	var out []statement
	for _, l := range src[i+1:] {
		if l.Blank() || l.Continuation {
			continue
		}
		if l.Indent <= header.Indent {
			break
		}
		out = append(out, statement{line: l.Number, indent: l.Indent, text: strings.TrimSpace(l.Bare)})
	}
	return out
}

// span returns the number of the last non-blank line of the block opened
// at index i, or the header's own number for an empty block.
func span(src []lines.Line, i int) int {
	header := src[i]
	last := header.Number
	for _, l := range src[i+1:] {
		if l.Blank() {
			continue
		}
		if !l.Continuation && l.Indent <= header.Indent {
			break
		}
		last = l.Number
	}
	return last
}

// inlineStatement returns the text after the colon that ends a compound
// statement header, or "" when the body starts on the next line.
func inlineStatement(bare string) string {
	depth := 0
	for i := 0; i < len(bare); i++ {
		switch bare[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ':':
			if depth == 0 && (i+1 == len(bare) || bare[i+1] != '=') {
				return strings.TrimSpace(bare[i+1:])
			}
		}
	}
	return ""
}

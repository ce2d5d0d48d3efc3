package practices

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers/checks"
	"github.com/devtrivedi96/Code-analyst-ai/types"
)

var (
	queryToken    = regexp.MustCompile(`(?i)query`)
	concatenation = regexp.MustCompile(`\+`)
	credential    = regexp.MustCompile(`(?i)\b\w*(?:password|passwd|api_key|apikey|secret|access_token)\w*\s*=\s*[rbuf]{0,2}(?:"[^"]|'[^'])`)
	dynamicCall   = regexp.MustCompile(`(?:^|[^\w.])(eval|exec)\s*\(`)
	modeCall      = regexp.MustCompile(`\b(?:chmod|fchmod|lchmod|mkdir|makedirs|open|mode|umask)\b`)
	modeLiteral   = regexp.MustCompile(`\b0[oO]?([0-7]{3,4})\b`)
)

// queryConcatenation flags lines that mention a query and build a string
// with `+`.
func (c *Checker) queryConcatenation(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic
	for _, l := range p.Lines {
		if !queryToken.MatchString(l.Code) || !concatenation.MatchString(l.Bare) {
			continue
		}
		if !strings.ContainsAny(l.Bare, `"'`) {
			continue
		}
		out = append(out, types.Diagnostic{
			Code:       CodeQueryConcatenation,
			Line:       l.Number,
			Message:    fmt.Sprintf("Potential SQL injection risk: %s", l.Stripped()),
			Suggestion: "Use parameterized queries instead of string concatenation",
		})
	}
	return out, nil
}

func (c *Checker) hardcodedCredentials(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic
	for _, l := range p.Lines {
		if !credential.MatchString(l.Code) {
			continue
		}
		out = append(out, types.Diagnostic{
			Code:       CodeHardcodedCredential,
			Line:       l.Number,
			Message:    "Hardcoded credentials found",
			Suggestion: "Use environment variables for sensitive data, e.g. os.environ['API_KEY']",
		})
	}
	return out, nil
}

func (c *Checker) dynamicExecution(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic
	for _, l := range p.Lines {
		m := dynamicCall.FindStringSubmatch(l.Bare)
		if m == nil {
			continue
		}
		out = append(out, types.Diagnostic{
			Code:       CodeDynamicExecution,
			Line:       l.Number,
			Message:    fmt.Sprintf("Dangerous %s() usage: %s", m[1], l.Stripped()),
			Suggestion: "Avoid eval/exec. Use safer alternatives like ast.literal_eval()",
		})
	}
	return out, nil
}

// permissiveModes flags octal mode literals that grant write access to
// everyone, on lines that set file permissions.
func (c *Checker) permissiveModes(p *checks.Pass) ([]types.Diagnostic, error) {
	var out []types.Diagnostic
	for _, l := range p.Lines {
		if !modeCall.MatchString(l.Bare) {
			continue
		}
		for _, m := range modeLiteral.FindAllStringSubmatch(l.Bare, -1) {
			if !worldWritable(m[1]) {
				continue
			}
			out = append(out, types.Diagnostic{
				Code:       CodePermissiveMode,
				Line:       l.Number,
				Message:    fmt.Sprintf("Insecure file permissions: mode %s is world-writable", m[0]),
				Suggestion: "Use restrictive permissions like 0o755 or 0o644",
			})
			break
		}
	}
	return out, nil
}

func worldWritable(octal string) bool {
	mode, err := strconv.ParseUint(octal, 8, 32)
	if err != nil {
		return false
	}
	return mode&0o002 != 0
}

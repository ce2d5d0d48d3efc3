package types

// NoLine marks an issue that is not tied to a specific line.
const NoLine = -1

// Severity ranks an issue. Each rule has exactly one severity.
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityMajor    Severity = "Major"
	SeverityMinor    Severity = "Minor"
)

// Severities lists every severity, highest first.
var Severities = []Severity{SeverityCritical, SeverityMajor, SeverityMinor}

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityMajor, SeverityMinor:
		return true
	}
	return false
}

// Category groups rules by the kind of problem they detect.
type Category string

const (
	CategoryNaming                Category = "naming"
	CategoryMagicLiteral          Category = "magic-literal"
	CategoryErrorHandling         Category = "error-handling"
	CategoryDuplication           Category = "duplication"
	CategoryWildcardImport        Category = "wildcard-import"
	CategoryStyle                 Category = "style"
	CategoryDivisionByZero        Category = "division-by-zero"
	CategoryInfiniteLoop          Category = "infinite-loop"
	CategoryUndefinedVariable     Category = "undefined-variable"
	CategoryConstantCondition     Category = "constant-condition"
	CategoryAssignmentInCondition Category = "assignment-in-condition"
	CategoryUnreachableCode       Category = "unreachable-code"
	CategoryTypeMismatch          Category = "type-mismatch"
	CategorySecurity              Category = "security"
	CategoryPerformance           Category = "performance"
	CategoryMaintainability       Category = "maintainability"
)

// Issue is one detected problem. Issues are values and are never mutated
// after the aggregator produces them.
type Issue struct {
	Line       int      `json:"line" toml:"line"`
	Code       string   `json:"code" toml:"code"`
	Category   Category `json:"category" toml:"category"`
	Severity   Severity `json:"severity" toml:"severity"`
	Message    string   `json:"message" toml:"message"`
	Suggestion string   `json:"suggestion" toml:"suggestion"`
}

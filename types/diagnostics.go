package types

// Diagnostic is the raw output of a single check before the rule catalog
// assigns a category and severity to it.
type Diagnostic struct {
	Code       string
	Line       int
	Message    string
	Suggestion string
}

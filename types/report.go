package types

// QualityMetrics holds the size and complexity figures of one source text.
type QualityMetrics struct {
	LineCount       int     `json:"line_count"`
	ComplexityScore float64 `json:"complexity_score"`
	FunctionCount   int     `json:"function_count"`
}

// SeverityCount maps every severity to the number of issues carrying it.
type SeverityCount map[Severity]int

// Total returns the sum of all counts.
func (c SeverityCount) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// CountSeverities derives a SeverityCount from issues. Severities that do not
// occur are present with a zero count.
func CountSeverities(issues []Issue) SeverityCount {
	counts := make(SeverityCount, len(Severities))
	for _, s := range Severities {
		counts[s] = 0
	}
	for _, issue := range issues {
		counts[issue.Severity]++
	}
	return counts
}

// AnalysisReport is the result of analyzing one source text.
type AnalysisReport struct {
	SyntaxValid         bool           `json:"syntax_valid"`
	SyntaxError         string         `json:"syntax_error,omitempty"`
	QualityMetrics      QualityMetrics `json:"quality_metrics"`
	Issues              []Issue        `json:"issues"`
	SeverityCount       SeverityCount  `json:"severity_count"`
	SelectedModel       string         `json:"selected_model,omitempty"`
	ModelRecommendation string         `json:"model_recommendation,omitempty"`
}

// HasCritical reports whether any critical issue was found.
func (r *AnalysisReport) HasCritical() bool {
	return r.SeverityCount[SeverityCritical] > 0
}

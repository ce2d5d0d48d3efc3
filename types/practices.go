package types

// Finding is a style or practice concern. Line is NoLine when the finding
// applies to the whole text.
type Finding struct {
	Code       string `json:"code"`
	Line       int    `json:"line"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
}

// Practices groups the findings of the style/practice checker.
type Practices struct {
	Formatting          []Finding `json:"pep8_violations"`
	Performance         []Finding `json:"performance_issues"`
	Security            []Finding `json:"security_issues"`
	Maintainability     []Finding `json:"maintainability"`
	SelectedModel       string    `json:"selected_model,omitempty"`
	ModelRecommendation string    `json:"model_recommendation"`
}

// All returns every finding in check order.
func (p Practices) All() []Finding {
	all := make([]Finding, 0, len(p.Formatting)+len(p.Performance)+len(p.Security)+len(p.Maintainability))
	all = append(all, p.Formatting...)
	all = append(all, p.Performance...)
	all = append(all, p.Security...)
	all = append(all, p.Maintainability...)
	return all
}

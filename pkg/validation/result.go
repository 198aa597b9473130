package validation

// Issue describes one finding against a document.
type Issue struct {
	Path    string `json:"path"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result collects the findings for one section. Valid is false when any
// error-level issue was recorded; warnings never fail a section.
type Result struct {
	Section  string  `json:"section"`
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
}

func (r *Result) addError(issue Issue) {
	r.Errors = append(r.Errors, issue)
	r.Valid = false
}

func (r *Result) addWarning(issue Issue) {
	r.Warnings = append(r.Warnings, issue)
}

// Merge folds another result's findings into r.
func (r *Result) Merge(other Result) {
	for _, issue := range other.Errors {
		r.addError(issue)
	}
	for _, issue := range other.Warnings {
		r.addWarning(issue)
	}
}

// AllValid reports whether every result in the slice passed.
func AllValid(results []Result) bool {
	for _, res := range results {
		if !res.Valid {
			return false
		}
	}
	return true
}

package schedule

// FieldError points at a specific problem in a schedule document so the
// editing UI can highlight the offending field.
type FieldError struct {
	Day     string `json:"day"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is the structured outcome of schedule validation.
// Errors block persistence; Warnings flag accepted-but-suspect data
// (overlapping breaks, breaks outside the open window, dropped periods).
type ValidationResult struct {
	Valid    bool         `json:"valid"`
	Errors   []FieldError `json:"errors,omitempty"`
	Warnings []FieldError `json:"warnings,omitempty"`
}

// AddError appends a field error and marks the result invalid.
func (r *ValidationResult) AddError(day, field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, FieldError{Day: day, Field: field, Message: message})
}

// AddWarning appends a warning without affecting validity.
func (r *ValidationResult) AddWarning(day, field, message string) {
	r.Warnings = append(r.Warnings, FieldError{Day: day, Field: field, Message: message})
}

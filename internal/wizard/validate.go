package wizard

// FieldErrors maps a field name to its user-facing error message.
type FieldErrors map[string]string

// StepResult is the outcome of validating one or more steps.
type StepResult struct {
	Valid       bool
	FieldErrors FieldErrors
}

// ValidateStep runs one step's rules against the draft. It is pure,
// synchronous and never mutates the draft; rule failures are reported as
// field errors, never as Go errors. An out-of-range index is reported as an
// invalid result rather than a panic, since step indices come from clients.
func ValidateStep(steps []Step, index int, d *Draft) StepResult {
	if index < 0 || index >= len(steps) {
		return StepResult{Valid: false, FieldErrors: FieldErrors{"step": "Unknown wizard step"}}
	}

	fieldErrors := FieldErrors{}
	for _, rule := range steps[index].Rules {
		field, message := rule(d)
		if message == "" {
			continue
		}
		// Keep the first failure per field; later rules on the same
		// field usually depend on the earlier ones passing.
		if _, seen := fieldErrors[field]; !seen {
			fieldErrors[field] = message
		}
	}

	return StepResult{Valid: len(fieldErrors) == 0, FieldErrors: fieldErrors}
}

// ValidateAll runs every step's rules and merges the field errors. The
// pipeline uses it as a defensive re-check at submit time even though the
// wizard UI already gated navigation step by step.
func ValidateAll(steps []Step, d *Draft) StepResult {
	fieldErrors := FieldErrors{}
	for index := range steps {
		result := ValidateStep(steps, index, d)
		for field, message := range result.FieldErrors {
			if _, seen := fieldErrors[field]; !seen {
				fieldErrors[field] = message
			}
		}
	}

	return StepResult{Valid: len(fieldErrors) == 0, FieldErrors: fieldErrors}
}
